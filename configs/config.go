package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

func Config(key string) string {
	err := godotenv.Load(".env")
	if err != nil {
		log.Println("Warning: .env file not found, reading from system environment variables")
	}

	return os.Getenv(key)
}

const defaultDurations = "60,90"

// AllowedDurations parses the lesson-duration whitelist from
// ALLOWED_DURATIONS_MIN (comma-separated minutes). A malformed or
// non-positive entry is a deployment bug, not a per-request condition,
// so it is returned as an error for main to fail fast on.
func AllowedDurations() ([]time.Duration, error) {
	raw := Config("ALLOWED_DURATIONS_MIN")
	if raw == "" {
		raw = defaultDurations
	}

	var out []time.Duration
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		minutes, err := strconv.Atoi(part)
		if err != nil {
			return nil, fmt.Errorf("invalid duration %q in ALLOWED_DURATIONS_MIN: %w", part, err)
		}
		if minutes <= 0 {
			return nil, fmt.Errorf("non-positive duration %d in ALLOWED_DURATIONS_MIN", minutes)
		}
		out = append(out, time.Duration(minutes)*time.Minute)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("ALLOWED_DURATIONS_MIN is empty")
	}
	return out, nil
}
