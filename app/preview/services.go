package preview

import (
	"context"

	"github.com/Resolvr-io/deadcat-sub000/app/covenant"
	"github.com/Resolvr-io/deadcat-sub000/app/orderbook"
	"github.com/Resolvr-io/deadcat-sub000/internal/logger"
	"github.com/Resolvr-io/deadcat-sub000/models"
)

// service implements the Service interface
type service struct {
	markets   MarketGetter
	positions PositionGetter
	engine    Engine
	logger    logger.Logger
}

// NewService creates a new preview service
func NewService(markets MarketGetter, positions PositionGetter, engine Engine, l logger.Logger) Service {
	if l == nil {
		l = logger.NewNullLogger()
	}
	return &service{
		markets:   markets,
		positions: positions,
		engine:    engine,
		logger:    l,
	}
}

// BuildPreview loads one consistent snapshot of the market and the caller's
// position, then runs the pure engine over it.
func (s *service) BuildPreview(ctx context.Context, req *PreviewRequest) (*PreviewResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	market, err := s.markets.GetMarket(ctx, req.MarketID)
	if err != nil {
		return nil, err
	}

	position, err := s.positions.GetPosition(ctx, req.MarketID)
	if err != nil {
		// A missing position just means zero holdings; the preview stays
		// useful without the over-sell check being meaningful.
		s.logger.Debug("position lookup failed, assuming empty", map[string]interface{}{
			"market_id": req.MarketID,
		})
		position = &models.Position{MarketID: req.MarketID}
	}

	preview := s.engine.BuildPreview(market, position, req)

	return &PreviewResponse{
		Preview:      preview,
		Availability: covenant.PathAvailability(market),
	}, nil
}

// GetOrderbook returns the synthetic ladder the preview would execute against.
func (s *service) GetOrderbook(ctx context.Context, marketID string, side models.Side, intent models.OrderIntent) (*OrderbookResponse, error) {
	if !side.Valid() {
		return nil, models.ErrInvalidSide
	}
	if !intent.Valid() {
		return nil, models.ErrInvalidOrderIntent
	}

	market, err := s.markets.GetMarket(ctx, marketID)
	if err != nil {
		return nil, err
	}

	return &OrderbookResponse{
		MarketID:      market.ID,
		Side:          side,
		Intent:        intent,
		BasePriceSats: orderbook.BasePriceSats(market, side),
		Levels:        orderbook.Levels(market, side, intent),
	}, nil
}
