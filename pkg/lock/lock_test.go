package lock

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalLocker(t *testing.T) {
	locker := NewLocalLocker()
	ctx := context.Background()

	unlock, err := locker.Lock(ctx, "hall-a")
	require.NoError(t, err)

	// other venues are independent
	unlockB, err := locker.Lock(ctx, "hall-b")
	require.NoError(t, err)
	require.NoError(t, unlockB())

	timeoutCtx, cancel := context.WithTimeout(ctx, 20*time.Millisecond)
	defer cancel()
	_, err = locker.Lock(timeoutCtx, "hall-a")
	assert.ErrorIs(t, err, ErrLockTimeout)
	assert.ErrorIs(t, err, context.DeadlineExceeded)

	require.NoError(t, unlock())
	// a second unlock is a no-op
	require.NoError(t, unlock())

	again, err := locker.Lock(ctx, "hall-a")
	require.NoError(t, err)
	require.NoError(t, again())
}

func TestLocalLocker_Serialises(t *testing.T) {
	locker := NewLocalLocker()
	ctx := context.Background()

	unlock, err := locker.Lock(ctx, "hall-a")
	require.NoError(t, err)

	acquired := make(chan struct{})
	go func() {
		next, err := locker.Lock(ctx, "hall-a")
		if err == nil {
			close(acquired)
			_ = next()
		}
	}()

	select {
	case <-acquired:
		t.Fatal("lock acquired while held")
	case <-time.After(20 * time.Millisecond):
	}

	require.NoError(t, unlock())

	select {
	case <-acquired:
	case <-time.After(time.Second):
		t.Fatal("lock not acquired after release")
	}
}

func TestRedisLocker(t *testing.T) {
	db, mock := redismock.NewClientMock()
	locker := NewRedisLocker(db, 10*time.Second,
		WithRetryInterval(time.Millisecond),
		WithTokenFunc(func() string { return "token-1" }),
	)
	key := keyPrefix + "hall-a"

	mock.ExpectSetNX(key, "token-1", 10*time.Second).SetVal(false)
	mock.ExpectSetNX(key, "token-1", 10*time.Second).SetVal(true)
	mock.ExpectEval(releaseScript, []string{key}, "token-1").SetVal(int64(1))

	unlock, err := locker.Lock(context.Background(), "hall-a")
	require.NoError(t, err)
	require.NoError(t, unlock())

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRedisLocker_Errors(t *testing.T) {
	db, mock := redismock.NewClientMock()
	locker := NewRedisLocker(db, time.Second, WithTokenFunc(func() string { return "token-1" }))
	key := keyPrefix + "hall-a"

	mock.ExpectSetNX(key, "token-1", time.Second).SetErr(errors.New("connection refused"))

	_, err := locker.Lock(context.Background(), "hall-a")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "connection refused")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	mock.ExpectSetNX(key, "token-1", time.Second).SetVal(false)

	_, err = locker.Lock(ctx, "hall-a")
	assert.ErrorIs(t, err, ErrLockTimeout)

	assert.NoError(t, mock.ExpectationsWereMet())
}
