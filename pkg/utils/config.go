package utils

import (
	"errors"
	"io/fs"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	App       AppConfig
	Log       LogConfig
	Storage   StorageConfig
	Database  DatabaseConfig
	Redis     RedisConfig
	RabbitMQ  RabbitMQConfig
	Scheduler SchedulerConfig
}

type AppConfig struct {
	Name  string
	Port  string
	Debug bool
}

// LogConfig controls the zap core. An empty Path logs to stdout only.
type LogConfig struct {
	Path       string
	Level      string
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
}

// StorageConfig selects the booking store: "postgres" or "memory".
type StorageConfig struct {
	Driver string
}

type DatabaseConfig struct {
	Host     string
	Port     string
	Name     string
	User     string
	Password string
	SSLMode  string
	MaxConns int32
}

// RedisConfig enables the shared venue lock when URL is set.
type RedisConfig struct {
	URL     string
	LockTTL time.Duration
}

// RabbitMQConfig enables lifecycle event publishing when URL is set.
type RabbitMQConfig struct {
	URL      string
	Exchange string
}

type SchedulerConfig struct {
	CompletionInterval time.Duration
}

func LoadConfig() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.SetConfigType("env")

	// Set defaults
	viper.SetDefault("APP_NAME", "event-planner")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("DEBUG", false)
	viper.SetDefault("LOG_PATH", "logs/")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("LOG_MAX_SIZE_MB", 10)
	viper.SetDefault("LOG_MAX_BACKUPS", 7)
	viper.SetDefault("LOG_MAX_AGE_DAYS", 28)
	viper.SetDefault("STORAGE_DRIVER", "memory")
	viper.SetDefault("DB_PORT", "5432")
	viper.SetDefault("DB_SSLMODE", "disable")
	viper.SetDefault("DB_MAX_CONNS", 10)
	viper.SetDefault("LOCK_TTL_SECONDS", 10)
	viper.SetDefault("RABBITMQ_EXCHANGE", "event-planner.bookings")
	viper.SetDefault("COMPLETION_INTERVAL_MINUTES", 15)

	viper.AutomaticEnv()

	// .env is optional, the environment alone is enough
	if err := viper.ReadInConfig(); err != nil {
		var pathErr *fs.PathError
		if !errors.As(err, &pathErr) {
			return nil, err
		}
	}

	config := &Config{
		App: AppConfig{
			Name:  viper.GetString("APP_NAME"),
			Port:  viper.GetString("PORT"),
			Debug: viper.GetBool("DEBUG"),
		},
		Log: LogConfig{
			Path:       viper.GetString("LOG_PATH"),
			Level:      viper.GetString("LOG_LEVEL"),
			MaxSizeMB:  viper.GetInt("LOG_MAX_SIZE_MB"),
			MaxBackups: viper.GetInt("LOG_MAX_BACKUPS"),
			MaxAgeDays: viper.GetInt("LOG_MAX_AGE_DAYS"),
		},
		Storage: StorageConfig{
			Driver: viper.GetString("STORAGE_DRIVER"),
		},
		Database: DatabaseConfig{
			Host:     viper.GetString("DB_HOST"),
			Port:     viper.GetString("DB_PORT"),
			Name:     viper.GetString("DB_NAME"),
			User:     viper.GetString("DB_USER"),
			Password: viper.GetString("DB_PASS"),
			SSLMode:  viper.GetString("DB_SSLMODE"),
			MaxConns: viper.GetInt32("DB_MAX_CONNS"),
		},
		Redis: RedisConfig{
			URL:     viper.GetString("REDIS_URL"),
			LockTTL: time.Duration(viper.GetInt("LOCK_TTL_SECONDS")) * time.Second,
		},
		RabbitMQ: RabbitMQConfig{
			URL:      viper.GetString("RABBITMQ_URL"),
			Exchange: viper.GetString("RABBITMQ_EXCHANGE"),
		},
		Scheduler: SchedulerConfig{
			CompletionInterval: time.Duration(viper.GetInt("COMPLETION_INTERVAL_MINUTES")) * time.Minute,
		},
	}

	return config, nil
}
