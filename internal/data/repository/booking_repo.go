package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"event-planner/internal/data/entity"
	"event-planner/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type BookingRepository interface {
	Create(ctx context.Context, booking *entity.Booking) error
	Update(ctx context.Context, booking *entity.Booking) error
	// FindByID returns nil, nil when no booking has the id.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error)
	FindByVenue(ctx context.Context, venueID string, limit, offset int) ([]*entity.Booking, error)
	CountByVenue(ctx context.Context, venueID string) (int64, error)

	// Business queries
	FindActiveByVenue(ctx context.Context, venueID string) ([]*entity.Booking, error)
	FindByStatus(ctx context.Context, status entity.BookingStatus) ([]*entity.Booking, error)
}

type bookingRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewBookingRepository(db database.PgxIface, log *zap.Logger) BookingRepository {
	return &bookingRepository{
		db:  db,
		log: log.With(zap.String("repository", "booking")),
	}
}

func (r *bookingRepository) Create(ctx context.Context, booking *entity.Booking) error {
	query := `
		INSERT INTO bookings (id, venue_id, status, start_date, end_date, document, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	doc, err := json.Marshal(booking)
	if err != nil {
		return fmt.Errorf("encode booking %s: %w", booking.ID, err)
	}

	_, err = r.db.Exec(ctx, query,
		booking.ID,
		booking.VenueID,
		booking.Status,
		booking.StartDate,
		booking.EndDate,
		string(doc),
		booking.CreatedAt,
		booking.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create booking",
			zap.Error(err),
			zap.String("booking_id", booking.ID.String()),
			zap.String("venue_id", booking.VenueID),
		)
		return fmt.Errorf("create booking %s: %w", booking.ID, err)
	}

	return nil
}

func (r *bookingRepository) Update(ctx context.Context, booking *entity.Booking) error {
	query := `
		UPDATE bookings
		SET status = $2, start_date = $3, end_date = $4, document = $5, updated_at = $6
		WHERE id = $1
	`

	doc, err := json.Marshal(booking)
	if err != nil {
		return fmt.Errorf("encode booking %s: %w", booking.ID, err)
	}

	tag, err := r.db.Exec(ctx, query,
		booking.ID,
		booking.Status,
		booking.StartDate,
		booking.EndDate,
		string(doc),
		booking.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to update booking",
			zap.Error(err),
			zap.String("booking_id", booking.ID.String()),
		)
		return fmt.Errorf("update booking %s: %w", booking.ID, err)
	}

	if tag.RowsAffected() == 0 {
		return fmt.Errorf("update booking %s: %w", booking.ID, ErrNotFound)
	}

	return nil
}

func (r *bookingRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Booking, error) {
	query := `SELECT document FROM bookings WHERE id = $1`

	var doc []byte
	err := r.db.QueryRow(ctx, query, id).Scan(&doc)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find booking by ID",
			zap.Error(err),
			zap.String("booking_id", id.String()),
		)
		return nil, fmt.Errorf("find booking by ID %s: %w", id, err)
	}

	return decodeBooking(doc)
}

func (r *bookingRepository) FindByVenue(ctx context.Context, venueID string, limit, offset int) ([]*entity.Booking, error) {
	query := `
		SELECT document FROM bookings
		WHERE venue_id = $1
		ORDER BY start_date ASC
		LIMIT $2 OFFSET $3
	`

	bookings, err := r.queryDocuments(ctx, query, venueID, limit, offset)
	if err != nil {
		r.log.Error("Failed to find bookings by venue",
			zap.Error(err),
			zap.String("venue_id", venueID),
		)
		return nil, fmt.Errorf("find bookings by venue %s: %w", venueID, err)
	}

	return bookings, nil
}

func (r *bookingRepository) CountByVenue(ctx context.Context, venueID string) (int64, error) {
	query := `SELECT COUNT(*) FROM bookings WHERE venue_id = $1`

	var count int64
	if err := r.db.QueryRow(ctx, query, venueID).Scan(&count); err != nil {
		r.log.Error("Failed to count bookings by venue",
			zap.Error(err),
			zap.String("venue_id", venueID),
		)
		return 0, fmt.Errorf("count bookings by venue %s: %w", venueID, err)
	}

	return count, nil
}

func (r *bookingRepository) FindActiveByVenue(ctx context.Context, venueID string) ([]*entity.Booking, error) {
	query := `
		SELECT document FROM bookings
		WHERE venue_id = $1 AND status <> $2
		ORDER BY start_date ASC
	`

	bookings, err := r.queryDocuments(ctx, query, venueID, entity.BookingStatusCancelled)
	if err != nil {
		r.log.Error("Failed to find active bookings by venue",
			zap.Error(err),
			zap.String("venue_id", venueID),
		)
		return nil, fmt.Errorf("find active bookings by venue %s: %w", venueID, err)
	}

	return bookings, nil
}

func (r *bookingRepository) FindByStatus(ctx context.Context, status entity.BookingStatus) ([]*entity.Booking, error) {
	query := `
		SELECT document FROM bookings
		WHERE status = $1
		ORDER BY end_date ASC
	`

	bookings, err := r.queryDocuments(ctx, query, status)
	if err != nil {
		r.log.Error("Failed to find bookings by status",
			zap.Error(err),
			zap.String("status", string(status)),
		)
		return nil, fmt.Errorf("find bookings by status %s: %w", status, err)
	}

	return bookings, nil
}

func (r *bookingRepository) queryDocuments(ctx context.Context, query string, args ...any) ([]*entity.Booking, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var bookings []*entity.Booking
	for rows.Next() {
		var doc []byte
		if err := rows.Scan(&doc); err != nil {
			return nil, err
		}

		booking, err := decodeBooking(doc)
		if err != nil {
			return nil, err
		}
		bookings = append(bookings, booking)
	}

	return bookings, rows.Err()
}

func decodeBooking(doc []byte) (*entity.Booking, error) {
	var booking entity.Booking
	if err := json.Unmarshal(doc, &booking); err != nil {
		return nil, fmt.Errorf("decode booking: %w", err)
	}
	return &booking, nil
}
