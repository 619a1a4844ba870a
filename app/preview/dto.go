package preview

import (
	"github.com/shopspring/decimal"

	"github.com/Resolvr-io/deadcat-sub000/app/covenant"
	"github.com/Resolvr-io/deadcat-sub000/app/orderbook"
	"github.com/Resolvr-io/deadcat-sub000/models"
)

// PreviewRequest represents one full set of order parameters. Every relevant
// input change (price tick, size edit, side toggle) produces a fresh request;
// nothing is patched incrementally.
type PreviewRequest struct {
	MarketID       string             `json:"market_id" validate:"required"`
	Side           models.Side        `json:"side" validate:"required"`
	Intent         models.OrderIntent `json:"intent" validate:"required"`
	OrderType      models.OrderType   `json:"order_type" validate:"required"`
	SizeMode       models.SizeMode    `json:"size_mode" validate:"required"`
	AmountSats     int64              `json:"amount_sats,omitempty"`
	Contracts      decimal.Decimal    `json:"contracts,omitempty"`
	LimitPriceSats int64              `json:"limit_price_sats,omitempty"`
}

// Validate checks the enum fields and the limit-price requirement. Size
// fields are deliberately not validated here: out-of-range sizes are floored
// by the engine, never rejected.
func (r *PreviewRequest) Validate() error {
	if !r.Side.Valid() {
		return models.ErrInvalidSide
	}
	if !r.Intent.Valid() {
		return models.ErrInvalidOrderIntent
	}
	if !r.OrderType.Valid() {
		return models.ErrInvalidOrderType
	}
	if !r.SizeMode.Valid() {
		return models.ErrInvalidSizeMode
	}
	if r.OrderType == models.OrderTypeLimit && r.LimitPriceSats <= 0 {
		return models.ErrInvalidLimitPrice
	}
	return nil
}

// TradePreview is the single decision-support result: what would happen if
// the caller submitted this order right now. Advisory only; the settlement
// backend confirms the real outcome.
type TradePreview struct {
	MarketID  string             `json:"market_id"`
	Side      models.Side        `json:"side"`
	Intent    models.OrderIntent `json:"intent"`
	OrderType models.OrderType   `json:"order_type"`

	ReferencePriceSats int64           `json:"reference_price_sats"`
	RequestedContracts decimal.Decimal `json:"requested_contracts"`
	FilledContracts    decimal.Decimal `json:"filled_contracts"`
	IsPartial          bool            `json:"is_partial"`

	AvgPriceSats       decimal.Decimal `json:"avg_price_sats"`
	BestPriceSats      int64           `json:"best_price_sats"`
	WorstPriceSats     int64           `json:"worst_price_sats"`
	SlippageSats       int64           `json:"slippage_sats"`
	ExecutionPriceSats decimal.Decimal `json:"execution_price_sats"`

	NotionalSats     int64           `json:"notional_sats"`
	ExecutedSats     decimal.Decimal `json:"executed_sats"`
	ExecutionFeeSats int64           `json:"execution_fee_sats"`
	WinFeeSats       int64           `json:"win_fee_sats"`
	GrossPayoutSats  int64           `json:"gross_payout_sats"`
	NetIfCorrectSats int64           `json:"net_if_correct_sats"`

	PositionContracts decimal.Decimal `json:"position_contracts"`
	ExceedsPosition   bool            `json:"exceeds_position"`
}

// PreviewResponse wraps the preview with the covenant gates so a UI can
// render the whole order panel from one round trip.
type PreviewResponse struct {
	Preview      *TradePreview         `json:"preview"`
	Availability covenant.Availability `json:"availability"`
}

// OrderbookResponse carries the synthetic ladder for one side and intent.
type OrderbookResponse struct {
	MarketID      string             `json:"market_id"`
	Side          models.Side        `json:"side"`
	Intent        models.OrderIntent `json:"intent"`
	BasePriceSats int64              `json:"base_price_sats"`
	Levels        []orderbook.Level  `json:"levels"`
}
