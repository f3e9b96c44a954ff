package usecase

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"event-planner/internal/data/entity"
	"event-planner/internal/data/repository"
	"event-planner/internal/dto/request"
	"event-planner/pkg/events"
	"event-planner/pkg/lock"
	"event-planner/pkg/metrics"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type recordingPublisher struct {
	mu     sync.Mutex
	events []events.Event
	err    error
}

func (p *recordingPublisher) Publish(_ context.Context, event events.Event) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, event)
	return p.err
}

func (p *recordingPublisher) Close() error { return nil }

func (p *recordingPublisher) types() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]string, 0, len(p.events))
	for _, e := range p.events {
		out = append(out, e.Type)
	}
	return out
}

type testEnv struct {
	svc       *Service
	repo      *repository.Repository
	publisher *recordingPublisher
	metrics   *metrics.Metrics
	now       time.Time
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	env := &testEnv{
		repo:      repository.NewMemoryRepository(),
		publisher: &recordingPublisher{},
		metrics:   metrics.New(prometheus.NewRegistry()),
		now:       time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC),
	}
	env.svc = NewService(env.repo, Infra{
		Locker:    lock.NewLocalLocker(),
		Publisher: env.publisher,
		Metrics:   env.metrics,
		Clock:     func() time.Time { return env.now },
	}, zap.NewNop())

	return env
}

func eventDay(hour int) time.Time {
	return time.Date(2026, 5, 10, hour, 0, 0, 0, time.UTC)
}

func createRequest(venueID string, startHour, endHour int) *request.CreateBookingRequest {
	return &request.CreateBookingRequest{
		EventName: "Spring Gala",
		EventType: "gala",
		VenueID:   venueID,
		Customer: request.CustomerRequest{
			Name:  "Dana Reyes",
			Email: "dana@example.com",
		},
		StartDate:     eventDay(startHour),
		EndDate:       eventDay(endHour),
		AttendeeCount: 120,
		TotalAmount:   1000,
		DepositAmount: 500,
	}
}

func (env *testEnv) mustCreate(t *testing.T, venueID string, startHour, endHour int) string {
	t.Helper()
	resp, err := env.svc.Booking.CreateBooking(context.Background(), createRequest(venueID, startHour, endHour))
	require.NoError(t, err)
	return resp.ID
}

func seedVendor(t *testing.T, repo *repository.Repository) {
	t.Helper()
	require.NoError(t, repo.Vendor.Save(context.Background(), &entity.Vendor{
		ID:   "vendor-1",
		Name: "Golden Fork Catering",
		Packages: []entity.VendorPackage{
			{
				ID:        "buffet",
				BasePrice: 10,
				PriceType: entity.PriceTypePerPerson,
				AdditionalFees: []entity.AdditionalFee{
					{Name: "service", Amount: 10, Type: entity.FeeTypePercentage},
				},
			},
		},
	}))
}

var errBroker = errors.New("broker down")
