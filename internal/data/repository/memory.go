package repository

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"

	"event-planner/internal/data/entity"

	"github.com/google/uuid"
)

var ErrNotFound = errors.New("record not found")

type memoryBookingRepository struct {
	mu       sync.RWMutex
	bookings map[uuid.UUID]entity.Booking
}

func NewMemoryBookingRepository() BookingRepository {
	return &memoryBookingRepository{bookings: make(map[uuid.UUID]entity.Booking)}
}

func (r *memoryBookingRepository) Create(_ context.Context, booking *entity.Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.bookings[booking.ID]; ok {
		return fmt.Errorf("create booking %s: duplicate id", booking.ID)
	}
	r.bookings[booking.ID] = *booking
	return nil
}

func (r *memoryBookingRepository) Update(_ context.Context, booking *entity.Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.bookings[booking.ID]; !ok {
		return fmt.Errorf("update booking %s: %w", booking.ID, ErrNotFound)
	}
	r.bookings[booking.ID] = *booking
	return nil
}

func (r *memoryBookingRepository) FindByID(_ context.Context, id uuid.UUID) (*entity.Booking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	booking, ok := r.bookings[id]
	if !ok {
		return nil, nil
	}
	return &booking, nil
}

func (r *memoryBookingRepository) FindByVenue(_ context.Context, venueID string, limit, offset int) ([]*entity.Booking, error) {
	all := r.filter(func(b *entity.Booking) bool { return b.VenueID == venueID })
	if offset >= len(all) {
		return nil, nil
	}
	return all[offset:min(offset+limit, len(all))], nil
}

func (r *memoryBookingRepository) CountByVenue(_ context.Context, venueID string) (int64, error) {
	return int64(len(r.filter(func(b *entity.Booking) bool { return b.VenueID == venueID }))), nil
}

func (r *memoryBookingRepository) FindActiveByVenue(_ context.Context, venueID string) ([]*entity.Booking, error) {
	return r.filter(func(b *entity.Booking) bool {
		return b.VenueID == venueID && b.Status != entity.BookingStatusCancelled
	}), nil
}

func (r *memoryBookingRepository) FindByStatus(_ context.Context, status entity.BookingStatus) ([]*entity.Booking, error) {
	return r.filter(func(b *entity.Booking) bool { return b.Status == status }), nil
}

// filter returns copies of the matching bookings ordered by start date.
func (r *memoryBookingRepository) filter(match func(*entity.Booking) bool) []*entity.Booking {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []*entity.Booking
	for _, b := range r.bookings {
		if match(&b) {
			out = append(out, &b)
		}
	}
	slices.SortFunc(out, func(a, b *entity.Booking) int {
		if c := a.StartDate.Compare(b.StartDate); c != 0 {
			return c
		}
		return a.CreatedAt.Compare(b.CreatedAt)
	})
	return out
}

type memoryVendorRepository struct {
	mu      sync.RWMutex
	vendors map[string]entity.Vendor
}

func NewMemoryVendorRepository() VendorRepository {
	return &memoryVendorRepository{vendors: make(map[string]entity.Vendor)}
}

func (r *memoryVendorRepository) FindByID(_ context.Context, id string) (*entity.Vendor, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	vendor, ok := r.vendors[id]
	if !ok {
		return nil, nil
	}
	return &vendor, nil
}

func (r *memoryVendorRepository) Save(_ context.Context, vendor *entity.Vendor) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.vendors[vendor.ID] = *vendor
	return nil
}
