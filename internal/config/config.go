package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds every recognized setting. Learner preferences that the source
// system kept in a loose settings bag are explicit fields here.
type Config struct {
	Addr     string
	DBPath   string
	LogLevel string

	// Due-set and statistics behavior.
	DueLimit          int
	StatsMissingAsNew bool

	// Reminder scheduler.
	ReviewReminders       bool
	DailyGoal             int
	ReminderIntervalMins  int
	NotificationStartHour int
	NotificationEndHour   int
}

// Load reads configuration from a .env file (if present) and environment
// variables, applying defaults when values are missing or invalid.
func Load() Config {
	// Ignore error so the app still starts when .env is absent in production.
	_ = godotenv.Load()

	return Config{
		Addr:                  envOr("ADDR", ":8080"),
		DBPath:                envOr("DB_PATH", "file:wordflash.db"),
		LogLevel:              envOr("LOG_LEVEL", "INFO"),
		DueLimit:              envIntOr("DUE_LIMIT", 20),
		StatsMissingAsNew:     envBoolOr("STATS_MISSING_AS_NEW", true),
		ReviewReminders:       envBoolOr("REVIEW_REMINDERS", true),
		DailyGoal:             envIntOr("DAILY_GOAL", 10),
		ReminderIntervalMins:  envIntOr("REMINDER_INTERVAL_MINUTES", 60),
		NotificationStartHour: envIntOr("NOTIFICATION_START_HOUR", 8),
		NotificationEndHour:   envIntOr("NOTIFICATION_END_HOUR", 22),
	}
}

// Validate checks the configuration and reports every problem at once.
func (c Config) Validate() error {
	var problems []string

	if c.Addr == "" {
		problems = append(problems, "ADDR cannot be empty")
	}
	if c.DBPath == "" {
		problems = append(problems, "DB_PATH cannot be empty")
	}
	switch strings.ToUpper(c.LogLevel) {
	case "DEBUG", "INFO", "WARN", "WARNING", "ERROR":
	default:
		problems = append(problems, fmt.Sprintf("LOG_LEVEL %q is not a valid level", c.LogLevel))
	}
	if c.DueLimit <= 0 {
		problems = append(problems, "DUE_LIMIT must be positive")
	}
	if c.DailyGoal < 0 {
		problems = append(problems, "DAILY_GOAL cannot be negative")
	}
	if c.ReminderIntervalMins <= 0 {
		problems = append(problems, "REMINDER_INTERVAL_MINUTES must be positive")
	}
	if c.NotificationStartHour < 0 || c.NotificationStartHour > 23 {
		problems = append(problems, "NOTIFICATION_START_HOUR must be between 0 and 23")
	}
	if c.NotificationEndHour < 0 || c.NotificationEndHour > 23 {
		problems = append(problems, "NOTIFICATION_END_HOUR must be between 0 and 23")
	}

	if len(problems) > 0 {
		return fmt.Errorf("invalid configuration: %s", strings.Join(problems, "; "))
	}
	return nil
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envIntOr(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
		log.Printf("invalid value for %s=%q, using default %d", key, v, def)
	}
	return def
}

func envBoolOr(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
		log.Printf("invalid value for %s=%q, using default %t", key, v, def)
	}
	return def
}
