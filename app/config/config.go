package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"
)

const (
	DefaultListenAddr      = "0.0.0.0:8080"
	DefaultShutdownTimeout = 5 * time.Second
)

// Config holds the server settings read from the environment.
type Config struct {
	ListenAddr      string
	Debug           bool
	LogFormat       string
	ShutdownTimeout time.Duration
}

// Load reads LISTEN_ADDR, DEBUG, LOG_FORMAT and SHUTDOWN_TIMEOUT.
func Load() (Config, error) {
	return load(os.Getenv)
}

func load(getenv func(string) string) (Config, error) {
	cfg := Config{
		ListenAddr:      DefaultListenAddr,
		LogFormat:       "text",
		ShutdownTimeout: DefaultShutdownTimeout,
	}
	if v := getenv("LISTEN_ADDR"); v != "" {
		cfg.ListenAddr = v
	}
	if v := getenv("DEBUG"); v != "" {
		dbg, err := strconv.ParseBool(v)
		if err != nil {
			return Config{}, fmt.Errorf("invalid DEBUG: %w", err)
		}
		cfg.Debug = dbg
	}
	if v := strings.ToLower(getenv("LOG_FORMAT")); v != "" {
		if v != "text" && v != "json" {
			return Config{}, fmt.Errorf("invalid LOG_FORMAT %q", v)
		}
		cfg.LogFormat = v
	}
	if v := getenv("SHUTDOWN_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return Config{}, fmt.Errorf("invalid SHUTDOWN_TIMEOUT: %w", err)
		}
		if d <= 0 {
			return Config{}, fmt.Errorf("invalid SHUTDOWN_TIMEOUT: must be greater than zero")
		}
		cfg.ShutdownTimeout = d
	}
	return cfg, nil
}

// NewLogger builds the application logger for cfg.
func (c Config) NewLogger() *log.Logger {
	logger := log.New()
	if c.LogFormat == "json" {
		logger.SetFormatter(&log.JSONFormatter{})
	}
	if c.Debug {
		logger.SetLevel(log.DebugLevel)
	}
	return logger
}
