package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Config contains the runtime settings read from the environment.
type Config struct {
	Port     int
	LogLevel string

	// DatabaseURL is the sqlite DSN for the delivery log.
	DatabaseURL string

	// LINE push delivery. Deliveries are only logged when any of these is empty.
	ChannelSecret      string
	ChannelAccessToken string
	NotifyUserID       string

	MetricsNamespace string
}

// Load reads environment variables and applies defaults.
func Load() (Config, error) {
	cfg := Config{
		LogLevel:           envOrDefault("LOG_LEVEL", "info"),
		DatabaseURL:        envOrDefault("BLUEPRINT_DB_URL", "file::memory:?cache=shared"),
		ChannelSecret:      strings.TrimSpace(os.Getenv("CHANNEL_SECRET")),
		ChannelAccessToken: strings.TrimSpace(os.Getenv("CHANNEL_ACCESS_TOKEN")),
		NotifyUserID:       strings.TrimSpace(os.Getenv("NOTIFY_USER_ID")),
		MetricsNamespace:   envOrDefault("METRICS_NAMESPACE", "countdown"),
	}

	port, err := strconv.Atoi(envOrDefault("PORT", "8080"))
	if err != nil || port <= 0 || port > 65535 {
		return Config{}, fmt.Errorf("invalid PORT %q", os.Getenv("PORT"))
	}
	cfg.Port = port

	return cfg, nil
}

// LineEnabled reports whether LINE push delivery is fully configured.
func (c Config) LineEnabled() bool {
	return c.ChannelSecret != "" && c.ChannelAccessToken != "" && c.NotifyUserID != ""
}

func envOrDefault(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}
