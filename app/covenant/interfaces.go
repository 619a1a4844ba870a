package covenant

import (
	"context"

	"github.com/Resolvr-io/deadcat-sub000/models"
)

// MarketGetter supplies point-in-time market snapshots from the registry.
type MarketGetter interface {
	GetMarket(ctx context.Context, id string) (*models.Market, error)
}
