package registry

import (
	"context"

	"github.com/Resolvr-io/deadcat-sub000/models"
)

// Repository defines the interface for snapshot storage. Implementations
// hold point-in-time records pushed by the external sync process; nothing
// here is authoritative state.
type Repository interface {
	GetMarket(id string) (*models.Market, error)
	PutMarket(m *models.Market) error
	ListMarkets() []models.Market

	GetPosition(marketID string) (*models.Position, error)
	PutPosition(p *models.Position) error
}

// Service defines the interface for registry business logic. GetMarket and
// GetPosition satisfy the MarketGetter/PositionGetter interfaces the engine
// modules consume.
type Service interface {
	GetMarket(ctx context.Context, id string) (*models.Market, error)
	PutMarket(ctx context.Context, m *models.Market) error
	ListMarkets(ctx context.Context) ([]models.Market, error)

	GetPosition(ctx context.Context, marketID string) (*models.Position, error)
	PutPosition(ctx context.Context, p *models.Position) error
}
