package config

import (
	"os"
	"strconv"
)

// FromEnv applies environment variable overrides on top of cfg.
// Unset variables leave the existing values in place.
func FromEnv(cfg Config) Config {
	if v := os.Getenv("TASKPULSE_ADDR"); v != "" {
		cfg.Server.Addr = v
	}
	if v := os.Getenv("TASKPULSE_DATA_DIR"); v != "" {
		cfg.Data.Dir = v
	}
	if v := getEnvInt("TASKPULSE_STATS_WINDOW_DAYS"); v > 0 {
		cfg.Stats.WindowDays = v
	}
	if v := os.Getenv("TASKPULSE_SUGGEST_ENABLED"); v != "" {
		cfg.Suggest.Enabled = v == "1" || v == "true" || v == "yes"
	}
	if v := getEnvInt("TASKPULSE_SUGGEST_TIMEOUT_SECONDS"); v > 0 {
		cfg.Suggest.TimeoutSeconds = v
	}
	return cfg
}

func getEnvInt(key string) int {
	val := os.Getenv(key)
	if val == "" {
		return 0
	}
	num, err := strconv.Atoi(val)
	if err != nil {
		return 0
	}
	return num
}
