package repository

import (
	"event-planner/pkg/database"

	"go.uber.org/zap"
)

type Repository struct {
	Booking BookingRepository
	Vendor  VendorRepository
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		Booking: NewBookingRepository(db, log),
		Vendor:  NewVendorRepository(db, log),
	}
}

// NewMemoryRepository keeps everything in process. Used when no database
// is configured and in tests.
func NewMemoryRepository() *Repository {
	return &Repository{
		Booking: NewMemoryBookingRepository(),
		Vendor:  NewMemoryVendorRepository(),
	}
}
