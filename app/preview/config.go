package preview

import (
	"github.com/shopspring/decimal"

	"github.com/Resolvr-io/deadcat-sub000/models"
)

// Config represents the configuration for the preview module
type Config struct {
	ExecutionFeeRate decimal.Decimal `env:"EXECUTION_FEE_RATE"`
	WinFeeRate       decimal.Decimal `env:"WIN_FEE_RATE"`
	MinContracts     decimal.Decimal `env:"MIN_CONTRACTS"`
	MinAmountSats    int64           `env:"MIN_AMOUNT_SATS"`
}

func (c *Config) Validate() error {
	one := decimal.NewFromInt(1)

	type validation struct {
		ok  bool
		err error
	}

	checks := []validation{
		{c.ExecutionFeeRate.GreaterThanOrEqual(decimal.Zero) &&
			c.ExecutionFeeRate.LessThan(one), models.ErrInvalidExecutionFeeRate},
		{c.WinFeeRate.GreaterThanOrEqual(decimal.Zero) &&
			c.WinFeeRate.LessThan(one), models.ErrInvalidWinFeeRate},
		{c.MinContracts.IsPositive(), models.ErrInvalidMinContracts},
		{c.MinAmountSats > 0, models.ErrInvalidMinContracts},
	}

	for _, v := range checks {
		if !v.ok {
			return v.err
		}
	}
	return nil
}

// GetDefaultConfig returns the default preview configuration
func GetDefaultConfig() *Config {
	return &Config{
		ExecutionFeeRate: decimal.NewFromFloat(0.01), // 1% of matched notional
		WinFeeRate:       decimal.NewFromFloat(0.02), // 2% of winnings, opens only
		MinContracts:     decimal.NewFromFloat(0.01),
		MinAmountSats:    1,
	}
}
