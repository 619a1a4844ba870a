package registry

import (
	"github.com/shopspring/decimal"

	"github.com/Resolvr-io/deadcat-sub000/models"
)

// PutMarketRequest carries one market snapshot from the external sync
// process. The market id comes from the URL path.
type PutMarketRequest struct {
	State               int     `json:"state" validate:"gte=0,lte=3"`
	ExpiryHeight        int64   `json:"expiry_height" validate:"gte=0"`
	CurrentHeight       int64   `json:"current_height" validate:"gte=0"`
	CollateralPerToken  int64   `json:"collateral_per_token_sats" validate:"required,gt=0"`
	YesPriceProbability float64 `json:"yes_price_probability" validate:"required,gt=0,lt=1"`
}

// ToMarket builds the snapshot value for the given id.
func (r *PutMarketRequest) ToMarket(id string) *models.Market {
	return &models.Market{
		ID:                  id,
		State:               models.CovenantState(r.State),
		ExpiryHeight:        r.ExpiryHeight,
		CurrentHeight:       r.CurrentHeight,
		CollateralPerToken:  r.CollateralPerToken,
		YesPriceProbability: r.YesPriceProbability,
	}
}

// PutPositionRequest carries the caller's held token amounts for one market,
// as reported by the external wallet service.
type PutPositionRequest struct {
	YesContracts decimal.Decimal `json:"yes_contracts"`
	NoContracts  decimal.Decimal `json:"no_contracts"`
}

// ToPosition builds the position value for the given market id.
func (r *PutPositionRequest) ToPosition(marketID string) *models.Position {
	return &models.Position{
		MarketID:     marketID,
		YesContracts: r.YesContracts,
		NoContracts:  r.NoContracts,
	}
}
