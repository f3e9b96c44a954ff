package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"event-planner/internal/data/entity"
	"event-planner/pkg/database"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

// VendorRepository is the vendor catalogue.
type VendorRepository interface {
	// FindByID returns nil, nil when no vendor has the id.
	FindByID(ctx context.Context, id string) (*entity.Vendor, error)
	Save(ctx context.Context, vendor *entity.Vendor) error
}

type vendorRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewVendorRepository(db database.PgxIface, log *zap.Logger) VendorRepository {
	return &vendorRepository{
		db:  db,
		log: log.With(zap.String("repository", "vendor")),
	}
}

func (r *vendorRepository) FindByID(ctx context.Context, id string) (*entity.Vendor, error) {
	query := `SELECT document FROM vendors WHERE id = $1`

	var doc []byte
	err := r.db.QueryRow(ctx, query, id).Scan(&doc)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find vendor by ID",
			zap.Error(err),
			zap.String("vendor_id", id),
		)
		return nil, fmt.Errorf("find vendor by ID %s: %w", id, err)
	}

	var vendor entity.Vendor
	if err := json.Unmarshal(doc, &vendor); err != nil {
		return nil, fmt.Errorf("decode vendor %s: %w", id, err)
	}

	return &vendor, nil
}

func (r *vendorRepository) Save(ctx context.Context, vendor *entity.Vendor) error {
	query := `
		INSERT INTO vendors (id, document) VALUES ($1, $2)
		ON CONFLICT (id) DO UPDATE SET document = EXCLUDED.document
	`

	doc, err := json.Marshal(vendor)
	if err != nil {
		return fmt.Errorf("encode vendor %s: %w", vendor.ID, err)
	}

	if _, err := r.db.Exec(ctx, query, vendor.ID, string(doc)); err != nil {
		r.log.Error("Failed to save vendor",
			zap.Error(err),
			zap.String("vendor_id", vendor.ID),
		)
		return fmt.Errorf("save vendor %s: %w", vendor.ID, err)
	}

	return nil
}
