package registry

import (
	"sort"
	"sync"

	"github.com/Resolvr-io/deadcat-sub000/models"
)

// memoryRepository is the in-process snapshot store. Records are copied on
// the way in and out so callers always hold an immutable snapshot.
type memoryRepository struct {
	mu        sync.RWMutex
	markets   map[string]models.Market
	positions map[string]models.Position
}

// NewRepository creates a new in-memory snapshot repository
func NewRepository() Repository {
	return &memoryRepository{
		markets:   make(map[string]models.Market),
		positions: make(map[string]models.Position),
	}
}

func (r *memoryRepository) GetMarket(id string) (*models.Market, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	m, ok := r.markets[id]
	if !ok {
		return nil, models.ErrMarketNotFound
	}
	return &m, nil
}

func (r *memoryRepository) PutMarket(m *models.Market) error {
	if err := m.Validate(); err != nil {
		return err
	}

	r.mu.Lock()
	r.markets[m.ID] = *m
	r.mu.Unlock()
	return nil
}

func (r *memoryRepository) ListMarkets() []models.Market {
	r.mu.RLock()
	out := make([]models.Market, 0, len(r.markets))
	for _, m := range r.markets {
		out = append(out, m)
	}
	r.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// GetPosition never fails on absence: an unknown market simply means zero
// holdings, which keeps the over-sell check advisory.
func (r *memoryRepository) GetPosition(marketID string) (*models.Position, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.positions[marketID]
	if !ok {
		return &models.Position{MarketID: marketID}, nil
	}
	return &p, nil
}

func (r *memoryRepository) PutPosition(p *models.Position) error {
	if err := p.Validate(); err != nil {
		return err
	}

	r.mu.Lock()
	r.positions[p.MarketID] = *p
	r.mu.Unlock()
	return nil
}
