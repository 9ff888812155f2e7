package config

import (
	"os"
	"strings"

	"github.com/diegoclair/friday-rota/internal/domain"
)

type Config struct {
	ConfigPath         string
	DefaultMembers     []string
	ReminderCron       string
	SlackSigningSecret string
	Port               string
	LogLevel           string
}

func Load() *Config {
	return &Config{
		ConfigPath:         getEnv("ROTA_CONFIG_PATH", domain.DefaultConfigPath),
		DefaultMembers:     getList("ROTA_DEFAULT_MEMBERS", domain.DefaultMembers),
		ReminderCron:       getEnv("ROTA_REMINDER_CRON", domain.DefaultReminderCron),
		SlackSigningSecret: getEnv("SLACK_SIGNING_SECRET", ""),
		Port:               getEnv("PORT", "3000"),
		LogLevel:           getEnv("LOG_LEVEL", "info"),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getList reads a comma separated list, skipping blank entries
func getList(key string, defaultValue []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return append([]string(nil), defaultValue...)
	}

	var out []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
