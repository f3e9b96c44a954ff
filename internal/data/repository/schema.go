package repository

import (
	"context"
	"fmt"

	"event-planner/pkg/database"
)

// Bookings and vendors are stored as JSON documents. The columns next to
// the document exist for lookups only.
const schema = `
CREATE TABLE IF NOT EXISTS bookings (
	id          UUID PRIMARY KEY,
	venue_id    TEXT        NOT NULL,
	status      TEXT        NOT NULL,
	start_date  TIMESTAMPTZ NOT NULL,
	end_date    TIMESTAMPTZ NOT NULL,
	document    JSONB       NOT NULL,
	created_at  TIMESTAMPTZ NOT NULL,
	updated_at  TIMESTAMPTZ NOT NULL
);

CREATE INDEX IF NOT EXISTS bookings_venue_idx ON bookings (venue_id, start_date);
CREATE INDEX IF NOT EXISTS bookings_status_idx ON bookings (status, end_date);

CREATE TABLE IF NOT EXISTS vendors (
	id       TEXT PRIMARY KEY,
	document JSONB NOT NULL
);
`

func EnsureSchema(ctx context.Context, db database.PgxIface) error {
	if _, err := db.Exec(ctx, schema); err != nil {
		return fmt.Errorf("ensure schema: %w", err)
	}
	return nil
}
