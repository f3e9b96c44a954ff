package usecase

import (
	"time"

	"event-planner/internal/data/repository"
	"event-planner/internal/engine/lifecycle"
	"event-planner/pkg/events"
	"event-planner/pkg/lock"
	"event-planner/pkg/metrics"

	"go.uber.org/zap"
)

type Service struct {
	Booking BookingService
	Budget  BudgetService
}

// Infra is the shared infrastructure the services run on.
type Infra struct {
	Locker    lock.VenueLocker
	Publisher events.Publisher
	Metrics   *metrics.Metrics
	// Clock defaults to time.Now.
	Clock func() time.Time
}

func NewService(repo *repository.Repository, infra Infra, log *zap.Logger) *Service {
	if infra.Clock == nil {
		infra.Clock = time.Now
	}
	manager := lifecycle.NewManager(lifecycle.WithClock(infra.Clock))

	return &Service{
		Booking: NewBookingService(repo, manager, infra, log),
		Budget:  NewBudgetService(repo.Vendor, infra.Metrics, log),
	}
}
