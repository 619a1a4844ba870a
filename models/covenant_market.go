package models

import (
	"math"
)

// SatsPerFullContract is the satoshi value of one fully-correct contract.
// A YES price and its complementary NO price always sum to this total.
const SatsPerFullContract int64 = 100

// CovenantState represents the on-chain lifecycle phase of a market covenant
type CovenantState int

const (
	CovenantStateDormant     CovenantState = 0
	CovenantStateUnresolved  CovenantState = 1
	CovenantStateResolvedYes CovenantState = 2
	CovenantStateResolvedNo  CovenantState = 3
)

func (s CovenantState) String() string {
	switch s {
	case CovenantStateDormant:
		return "dormant"
	case CovenantStateUnresolved:
		return "unresolved"
	case CovenantStateResolvedYes:
		return "resolved_yes"
	case CovenantStateResolvedNo:
		return "resolved_no"
	default:
		return "unknown"
	}
}

// Valid reports whether the state is one of the four covenant phases.
func (s CovenantState) Valid() bool {
	return s >= CovenantStateDormant && s <= CovenantStateResolvedNo
}

// Resolved reports whether an oracle outcome has been committed.
func (s CovenantState) Resolved() bool {
	return s == CovenantStateResolvedYes || s == CovenantStateResolvedNo
}

// Side represents the outcome side of a binary market
type Side string

const (
	SideYes Side = "yes"
	SideNo  Side = "no"
)

func (s Side) Valid() bool {
	return s == SideYes || s == SideNo
}

// Opposite returns the complementary side.
func (s Side) Opposite() Side {
	if s == SideYes {
		return SideNo
	}
	return SideYes
}

// OrderIntent distinguishes opening a new position from closing an existing one
type OrderIntent string

const (
	IntentOpen  OrderIntent = "open"
	IntentClose OrderIntent = "close"
)

func (i OrderIntent) Valid() bool {
	return i == IntentOpen || i == IntentClose
}

// OrderType represents the execution semantics of an order
type OrderType string

const (
	OrderTypeMarket OrderType = "market"
	OrderTypeLimit  OrderType = "limit"
)

func (t OrderType) Valid() bool {
	return t == OrderTypeMarket || t == OrderTypeLimit
}

// SizeMode represents how the caller expresses order size
type SizeMode string

const (
	SizeByAmount    SizeMode = "amount"
	SizeByContracts SizeMode = "contracts"
)

func (m SizeMode) Valid() bool {
	return m == SizeByAmount || m == SizeByContracts
}

// Market is a point-in-time snapshot of one binary-outcome covenant contract.
// Snapshots arrive from an external sync service and are never mutated here;
// every derived quantity is recomputed from a copy of the snapshot it is given.
type Market struct {
	ID                  string        `json:"id"`
	State               CovenantState `json:"state"`
	ExpiryHeight        int64         `json:"expiry_height"`
	CurrentHeight       int64         `json:"current_height"`
	CollateralPerToken  int64         `json:"collateral_per_token_sats"`
	YesPriceProbability float64       `json:"yes_price_probability"`
}

// Expired reports whether the chain tip has reached the covenant's expiry height.
func (m *Market) Expired() bool {
	return m.CurrentHeight >= m.ExpiryHeight
}

// Validate checks snapshot integrity before it is accepted into the registry.
func (m *Market) Validate() error {
	if m.ID == "" {
		return ErrInvalidMarketID
	}
	if !m.State.Valid() {
		return ErrInvalidCovenantState
	}
	if m.CollateralPerToken <= 0 {
		return ErrInvalidCollateralPerToken
	}
	if math.IsNaN(m.YesPriceProbability) || m.YesPriceProbability <= 0 || m.YesPriceProbability >= 1 {
		return ErrInvalidProbability
	}
	if m.ExpiryHeight < 0 || m.CurrentHeight < 0 {
		return ErrInvalidBlockHeight
	}
	return nil
}
