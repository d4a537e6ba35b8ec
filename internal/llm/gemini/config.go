package gemini

import (
	"log/slog"
	"os"
	"time"
)

// Config for the Gemini client.
type Config struct {
	APIKey      string        // if empty, falls back to env GEMINI_API_KEY, then ambient credentials
	Model       string        // e.g. "models/gemini-2.5-flash"
	Temperature float32       // 0..2
	Timeout     time.Duration // per-call deadline
}

func (c Config) withDefaults() Config {
	if c.APIKey == "" {
		c.APIKey = os.Getenv("GEMINI_API_KEY")
	}
	if c.Model == "" {
		c.Model = "models/gemini-2.5-flash"
	}
	if c.Temperature == 0 {
		c.Temperature = 0.3
	}
	if c.Timeout <= 0 {
		c.Timeout = 45 * time.Second
	}
	return c
}

func defaultLogger(logger *slog.Logger) *slog.Logger {
	if logger == nil {
		return slog.Default()
	}
	return logger
}
