// Package config loads engine parameters from the environment.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/shopspring/decimal"
)

// Config carries the tunable rates and the reference timezone of the engine.
type Config struct {
	// TierP1MonthlyRate and TierP2MonthlyRate are the preset refinancing
	// monthly rates, in percent.
	TierP1MonthlyRate decimal.Decimal
	TierP2MonthlyRate decimal.Decimal

	// MoraDailyRate is the daily late-fee percentage applied to unpaid
	// open-ended cycle interest.
	MoraDailyRate decimal.Decimal

	// UTCOffsetHours fixes the reference timezone for calendar-date
	// comparisons, so cycle boundaries do not drift across client locales.
	UTCOffsetHours int
}

// Load reads configuration from the environment, falling back to defaults.
func Load() Config {
	return Config{
		TierP1MonthlyRate: getEnvDecimal("LEDGER_TIER_P1_RATE", decimal.NewFromInt(25)),
		TierP2MonthlyRate: getEnvDecimal("LEDGER_TIER_P2_RATE", decimal.NewFromInt(15)),
		MoraDailyRate:     getEnvDecimal("LEDGER_MORA_DAILY_RATE", decimal.NewFromFloat(2.5)),
		UTCOffsetHours:    getEnvInt("LEDGER_UTC_OFFSET_HOURS", -3),
	}
}

// Location returns the fixed reference location derived from the offset.
func (c Config) Location() *time.Location {
	name := fmt.Sprintf("UTC%+d", c.UTCOffsetHours)
	return time.FixedZone(name, c.UTCOffsetHours*3600)
}

func getEnvDecimal(key string, fallback decimal.Decimal) decimal.Decimal {
	if v := os.Getenv(key); v != "" {
		if d, err := decimal.NewFromString(v); err == nil {
			return d
		}
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return fallback
}
