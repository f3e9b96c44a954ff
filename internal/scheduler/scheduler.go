// Package scheduler runs the periodic maintenance jobs of the service.
package scheduler

import (
	"context"
	"fmt"
	"time"

	"event-planner/internal/dto/response"

	"github.com/go-co-op/gocron/v2"
	"go.uber.org/zap"
)

const jobTimeout = time.Minute

type Completer interface {
	CompleteFinishedBookings(ctx context.Context) (*response.CompletionResponse, error)
}

type Scheduler struct {
	sched     gocron.Scheduler
	completer Completer
	log       *zap.Logger
}

// New registers the completion job every interval. Nothing runs before Start.
func New(completer Completer, interval time.Duration, log *zap.Logger) (*Scheduler, error) {
	sched, err := gocron.NewScheduler()
	if err != nil {
		return nil, fmt.Errorf("create scheduler: %w", err)
	}

	s := &Scheduler{
		sched:     sched,
		completer: completer,
		log:       log.With(zap.String("component", "scheduler")),
	}

	_, err = sched.NewJob(
		gocron.DurationJob(interval),
		gocron.NewTask(s.completeFinished),
		gocron.WithName("complete-finished-bookings"),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
		gocron.WithStartAt(gocron.WithStartImmediately()),
	)
	if err != nil {
		_ = sched.Shutdown()
		return nil, fmt.Errorf("register completion job: %w", err)
	}

	return s, nil
}

func (s *Scheduler) Start() {
	s.sched.Start()
	s.log.Info("Scheduler started", zap.Int("jobs", len(s.sched.Jobs())))
}

func (s *Scheduler) Shutdown() error {
	return s.sched.Shutdown()
}

func (s *Scheduler) completeFinished() {
	ctx, cancel := context.WithTimeout(context.Background(), jobTimeout)
	defer cancel()

	resp, err := s.completer.CompleteFinishedBookings(ctx)
	if err != nil {
		s.log.Error("Completion job failed", zap.Error(err))
	}
	if resp != nil && len(resp.Completed) > 0 {
		s.log.Info("Completion job finished", zap.Strings("completed", resp.Completed))
	}
}
