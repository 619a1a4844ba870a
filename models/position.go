package models

import (
	"github.com/shopspring/decimal"
)

// Position holds the caller's token balances for one market, as reported by
// the external wallet service. Contract counts are fractional (0.01 granularity)
// so they are carried as decimals; only satoshi amounts are integers.
type Position struct {
	MarketID     string          `json:"market_id"`
	YesContracts decimal.Decimal `json:"yes_contracts"`
	NoContracts  decimal.Decimal `json:"no_contracts"`
}

// ContractsFor returns the held contract count for one side.
func (p *Position) ContractsFor(side Side) decimal.Decimal {
	if p == nil {
		return decimal.Zero
	}
	if side == SideYes {
		return p.YesContracts
	}
	return p.NoContracts
}

// Validate checks the balances reported by the wallet service.
func (p *Position) Validate() error {
	if p.MarketID == "" {
		return ErrInvalidMarketID
	}
	if p.YesContracts.IsNegative() || p.NoContracts.IsNegative() {
		return ErrNegativePosition
	}
	return nil
}
