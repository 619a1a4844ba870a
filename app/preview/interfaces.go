package preview

import (
	"context"

	"github.com/Resolvr-io/deadcat-sub000/models"
)

// MarketGetter supplies point-in-time market snapshots from the registry.
type MarketGetter interface {
	GetMarket(ctx context.Context, id string) (*models.Market, error)
}

// PositionGetter supplies the caller's held token amounts per market. Used
// only for the advisory over-sell check; the engine never mutates positions.
type PositionGetter interface {
	GetPosition(ctx context.Context, marketID string) (*models.Position, error)
}

// Engine defines the interface for the pure preview computation. It operates
// on one immutable snapshot of inputs per call and keeps no state between
// calls.
type Engine interface {
	BuildPreview(market *models.Market, position *models.Position, req *PreviewRequest) *TradePreview
}

// Service defines the interface for preview business logic
type Service interface {
	BuildPreview(ctx context.Context, req *PreviewRequest) (*PreviewResponse, error)
	GetOrderbook(ctx context.Context, marketID string, side models.Side, intent models.OrderIntent) (*OrderbookResponse, error)
}
