package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/mlopes/wordflash/internal/config"
)

func validConfig() config.Config {
	return config.Config{
		Addr:                  ":8080",
		DBPath:                "test.db",
		LogLevel:              "INFO",
		DueLimit:              20,
		DailyGoal:             10,
		ReminderIntervalMins:  60,
		NotificationStartHour: 8,
		NotificationEndHour:   22,
	}
}

func TestValidate_ValidConfig(t *testing.T) {
	assert.NoError(t, validConfig().Validate())
}

func TestValidate_EmptyAddr(t *testing.T) {
	cfg := validConfig()
	cfg.Addr = ""

	err := cfg.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "ADDR cannot be empty")
}

func TestValidate_EmptyDBPath(t *testing.T) {
	cfg := validConfig()
	cfg.DBPath = ""

	err := cfg.Validate()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "DB_PATH cannot be empty")
}

func TestValidate_LogLevels(t *testing.T) {
	tests := []struct {
		level string
		ok    bool
	}{
		{"DEBUG", true},
		{"INFO", true},
		{"WARN", true},
		{"ERROR", true},
		{"debug", true}, // case-insensitive
		{"INVALID", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run("level "+tt.level, func(t *testing.T) {
			cfg := validConfig()
			cfg.LogLevel = tt.level

			err := cfg.Validate()
			if tt.ok {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), "LOG_LEVEL")
			}
		})
	}
}

func TestValidate_InvalidDueLimit(t *testing.T) {
	for _, limit := range []int{0, -5} {
		cfg := validConfig()
		cfg.DueLimit = limit

		err := cfg.Validate()
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "DUE_LIMIT")
	}
}

func TestValidate_InvalidNotificationHours(t *testing.T) {
	cfg := validConfig()
	cfg.NotificationStartHour = -1
	cfg.NotificationEndHour = 24

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "NOTIFICATION_START_HOUR")
	assert.Contains(t, err.Error(), "NOTIFICATION_END_HOUR")
}

func TestValidate_MultipleErrors(t *testing.T) {
	cfg := config.Config{}

	err := cfg.Validate()
	require.Error(t, err)

	errStr := err.Error()
	assert.Contains(t, errStr, "ADDR cannot be empty")
	assert.Contains(t, errStr, "DB_PATH cannot be empty")
	assert.Contains(t, errStr, "LOG_LEVEL")
	assert.Contains(t, errStr, "DUE_LIMIT")
	assert.Contains(t, errStr, "REMINDER_INTERVAL_MINUTES")
}

func TestLoad_EnvironmentVariables(t *testing.T) {
	t.Setenv("ADDR", ":9090")
	t.Setenv("DB_PATH", "custom.db")
	t.Setenv("DUE_LIMIT", "5")
	t.Setenv("REVIEW_REMINDERS", "false")

	cfg := config.Load()

	assert.Equal(t, ":9090", cfg.Addr)
	assert.Equal(t, "custom.db", cfg.DBPath)
	assert.Equal(t, 5, cfg.DueLimit)
	assert.False(t, cfg.ReviewReminders)
}
