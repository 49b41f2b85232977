package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments, security settings
// - default: Standard circulation policy values shared across deployments
// -----------------------------------------------------------------------------

type Config struct {
	Policy PolicyConfig
	Log    LogConfig
}

// PolicyConfig carries every circulation policy knob. The defaults are the
// library's standard rules; deployments override them per branch.
type PolicyConfig struct {
	LoanPeriodDays        int    `envconfig:"LOAN_PERIOD_DAYS" default:"14"`
	MaxRenewals           int    `envconfig:"MAX_RENEWALS" default:"2"`
	MaxActiveLoans        int    `envconfig:"MAX_ACTIVE_LOANS_PER_MEMBER" default:"3"`
	ReservationWindowDays int    `envconfig:"RESERVATION_WINDOW_DAYS" default:"3"`
	DailyFineRate         string `envconfig:"DAILY_FINE_RATE" default:"0.50"`
	MaxPermittedFine      string `envconfig:"MAX_PERMITTED_FINE" default:"10.00"`
}

type LogConfig struct {
	Level      string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone   string `envconfig:"LOG_TIMEZONE" default:"UTC"`
	TimeFormat string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Policy: PolicyConfig{
			LoanPeriodDays:        14,
			MaxRenewals:           2,
			MaxActiveLoans:        3,
			ReservationWindowDays: 3,
			DailyFineRate:         "0.50",
			MaxPermittedFine:      "10.00",
		},
		Log: LogConfig{
			Level:      "error", // Error level only for tests
			TimeZone:   "UTC",
			TimeFormat: "2006-01-02 15:04:05.000",
		},
	}
}
