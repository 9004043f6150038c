package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"manpower/internal/domain/finance"
)

type Config struct {
	Addr           string
	DatabaseURL    string
	Environment    string
	AllowedOrigin  string
	RunMigrations  bool
	MetricsEnabled bool

	OvertimeMultiplier  float64
	GosiRate            float64
	DeductionRate       float64
	ExpectedWorkingDays float64
	TrendWeeks          int
}

func Load() Config {
	return Config{
		Addr:           getEnv("APP_ADDR", ":8080"),
		DatabaseURL:    getEnv("DATABASE_URL", ""),
		Environment:    getEnv("APP_ENV", "development"),
		AllowedOrigin:  getEnv("ALLOWED_ORIGIN", "http://localhost:3000"),
		RunMigrations:  getEnvBool("RUN_MIGRATIONS", true),
		MetricsEnabled: getEnvBool("METRICS_ENABLED", true),

		OvertimeMultiplier:  getEnvFloat("OVERTIME_MULTIPLIER", 1.5),
		GosiRate:            getEnvFloat("GOSI_RATE", 0.11),
		DeductionRate:       getEnvFloat("DEDUCTION_RATE", 0.02),
		ExpectedWorkingDays: getEnvFloat("EXPECTED_WORKING_DAYS", 22),
		TrendWeeks:          getEnvInt("TREND_WEEKS", 5),
	}
}

// RatePolicy maps the configured rates into the calculation policy.
func (c Config) RatePolicy() finance.RatePolicy {
	return finance.RatePolicy{
		OvertimeMultiplier:  c.OvertimeMultiplier,
		GosiRate:            c.GosiRate,
		DeductionRate:       c.DeductionRate,
		ExpectedWorkingDays: c.ExpectedWorkingDays,
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return fallback
	}
	return parsed
}

func getEnvInt(key string, fallback int) int {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return parsed
}

func getEnvFloat(key string, fallback float64) float64 {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return fallback
	}
	return parsed
}

func (c Config) Validate() error {
	if c.OvertimeMultiplier < 1 {
		return fmt.Errorf("OVERTIME_MULTIPLIER must be at least 1")
	}
	if c.GosiRate < 0 || c.GosiRate >= 1 {
		return fmt.Errorf("GOSI_RATE must be in [0, 1)")
	}
	if c.DeductionRate < 0 || c.DeductionRate >= 1 {
		return fmt.Errorf("DEDUCTION_RATE must be in [0, 1)")
	}
	if c.ExpectedWorkingDays <= 0 || c.ExpectedWorkingDays > 31 {
		return fmt.Errorf("EXPECTED_WORKING_DAYS must be in (0, 31]")
	}
	if c.TrendWeeks <= 0 {
		return fmt.Errorf("TREND_WEEKS must be positive")
	}
	if c.Environment == "production" && strings.TrimSpace(c.DatabaseURL) == "" {
		return fmt.Errorf("DATABASE_URL is required in production")
	}
	return nil
}
