package config

import (
	"os"
	"strconv"
	"sync"
	"time"
)

// AppConfig holds global application configuration
var AppConfig *Config
var once sync.Once

type Config struct {
	AppName   string
	Port      string
	Env       string
	Debug     bool
	// AuthDelay is the simulated network latency of the mock login.
	AuthDelay time.Duration
	// SessionTTL bounds how long an issued session token stays valid.
	SessionTTL time.Duration
}

// LoadAppConfig initializes the global AppConfig variable
func LoadAppConfig() {
	once.Do(func() {
		AppConfig = &Config{
			AppName:    GetEnv("APP_NAME", "inventorypro"),
			Port:       os.Getenv("PORT"),
			Env:        os.Getenv("APP_ENV"),
			Debug:      os.Getenv("DEBUG") == "true",
			AuthDelay:  durationMsEnv("AUTH_DELAY_MS", 1000),
			SessionTTL: durationMsEnv("SESSION_TTL_MS", int64(24*time.Hour/time.Millisecond)),
		}
	})
}

func durationMsEnv(key string, defMs int64) time.Duration {
	if v := os.Getenv(key); v != "" {
		if ms, err := strconv.ParseInt(v, 10, 64); err == nil && ms >= 0 {
			return time.Duration(ms) * time.Millisecond
		}
	}
	return time.Duration(defMs) * time.Millisecond
}
