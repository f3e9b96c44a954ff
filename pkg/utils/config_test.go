package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_EnvironmentOnly(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("PORT", "9090")
	t.Setenv("STORAGE_DRIVER", "postgres")
	t.Setenv("LOCK_TTL_SECONDS", "3")

	config, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "9090", config.App.Port)
	assert.Equal(t, "postgres", config.Storage.Driver)
	assert.Equal(t, 3*time.Second, config.Redis.LockTTL)
	assert.Equal(t, "event-planner.bookings", config.RabbitMQ.Exchange)
	assert.Equal(t, 15*time.Minute, config.Scheduler.CompletionInterval)
	assert.Equal(t, "info", config.Log.Level)
	assert.Equal(t, 7, config.Log.MaxBackups)
}
