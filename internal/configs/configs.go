package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"
)

type Config struct {
	AppURL                 string
	DatabaseDSN            string
	RateLimit              int
	ShutdownTimeoutSeconds int
	PageSizeDefault        int
	PageSizeMaximum        int
	JWTSecret              string
	JWTIssuer              string
	JWTTTL                 time.Duration
	RedisAddr              string
	RedisEventsStream      string
	LogLevel               string
}

func Load() (Config, error) {
	appHost := getEnv("APP_HOST", "127.0.0.1")
	appPort := getEnv("APP_PORT", "8080")

	var errs []error
	intVal := func(key string, def int) int {
		v, err := getEnvAsInt(key, def)
		if err != nil {
			errs = append(errs, err)
		}
		return v
	}

	cfg := Config{
		AppURL:                 fmt.Sprintf("%s:%s", appHost, appPort),
		DatabaseDSN:            getEnv("DATABASE_DSN", "tasks.db"),
		RateLimit:              intVal("RATE_LIMIT_PER_MINUTE", 120),
		ShutdownTimeoutSeconds: intVal("SHUTDOWN_TIMEOUT_SECONDS", 20),
		PageSizeDefault:        intVal("PAGE_SIZE_DEFAULT", 100),
		PageSizeMaximum:        intVal("PAGE_SIZE_MAXIMUM", 500),
		JWTSecret:              getEnv("JWT_SECRET", ""),
		JWTIssuer:              getEnv("JWT_ISSUER", "task-tracker"),
		JWTTTL:                 time.Duration(intVal("JWT_TTL_MINUTES", 60)) * time.Minute,
		RedisEventsStream:      getEnv("REDIS_EVENTS_STREAM", "timeline_events"),
		LogLevel:               getEnv("LOG_LEVEL", "info"),
	}

	if redisHost := os.Getenv("REDIS_HOST"); redisHost != "" {
		cfg.RedisAddr = fmt.Sprintf("%s:%s", redisHost, getEnv("REDIS_PORT", "6379"))
	}

	if len(errs) > 0 {
		return cfg, errors.Join(errs...)
	}
	return cfg, validate(cfg)
}

func validate(cfg Config) error {
	var errs []error
	if cfg.DatabaseDSN == "" {
		errs = append(errs, errors.New("DATABASE_DSN must not be empty"))
	}
	if cfg.RateLimit <= 0 {
		errs = append(errs, errors.New("RATE_LIMIT_PER_MINUTE must be greater than 0"))
	}
	if cfg.ShutdownTimeoutSeconds <= 0 {
		errs = append(errs, errors.New("SHUTDOWN_TIMEOUT_SECONDS must be greater than 0"))
	}
	if cfg.PageSizeMaximum <= 0 {
		errs = append(errs, errors.New("PAGE_SIZE_MAXIMUM must be greater than 0"))
	}
	if cfg.PageSizeDefault <= 0 || cfg.PageSizeDefault > cfg.PageSizeMaximum {
		errs = append(errs, errors.New("PAGE_SIZE_DEFAULT must be between 1 and PAGE_SIZE_MAXIMUM"))
	}
	if cfg.JWTSecret == "" {
		errs = append(errs, errors.New("JWT_SECRET must not be empty"))
	}
	if cfg.JWTTTL <= 0 {
		errs = append(errs, errors.New("JWT_TTL_MINUTES must be greater than 0"))
	}
	return errors.Join(errs...)
}

func getEnv(key, defaultVal string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultVal
}

func getEnvAsInt(key string, defaultVal int) (int, error) {
	if v := os.Getenv(key); v != "" {
		i, err := strconv.Atoi(v)
		if err != nil {
			return defaultVal, fmt.Errorf("invalid integer value for %s", key)
		}
		return i, nil
	}
	return defaultVal, nil
}
