// Package lock serialises writes to one venue's calendar so that the
// availability check and the insert of a booking happen as one step.
package lock

import (
	"context"
	"errors"
	"fmt"
	"sync"
)

var ErrLockTimeout = errors.New("venue lock not acquired")

// Unlock releases a held lock.
type Unlock func() error

type VenueLocker interface {
	Lock(ctx context.Context, venueID string) (Unlock, error)
}

// LocalLocker locks venues within this process only.
type LocalLocker struct {
	mu     sync.Mutex
	venues map[string]chan struct{}
}

func NewLocalLocker() *LocalLocker {
	return &LocalLocker{venues: make(map[string]chan struct{})}
}

func (l *LocalLocker) Lock(ctx context.Context, venueID string) (Unlock, error) {
	slot := l.slot(venueID)

	select {
	case slot <- struct{}{}:
	case <-ctx.Done():
		return nil, fmt.Errorf("venue %s: %w: %w", venueID, ErrLockTimeout, ctx.Err())
	}

	var once sync.Once
	return func() error {
		once.Do(func() { <-slot })
		return nil
	}, nil
}

func (l *LocalLocker) slot(venueID string) chan struct{} {
	l.mu.Lock()
	defer l.mu.Unlock()

	slot, ok := l.venues[venueID]
	if !ok {
		slot = make(chan struct{}, 1)
		l.venues[venueID] = slot
	}
	return slot
}
