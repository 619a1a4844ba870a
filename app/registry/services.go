package registry

import (
	"context"
	"errors"

	"github.com/Resolvr-io/deadcat-sub000/internal/cache"
	"github.com/Resolvr-io/deadcat-sub000/internal/logger"
	"github.com/Resolvr-io/deadcat-sub000/models"
)

const marketKeyPrefix = "registry:market:"

// service implements the Service interface
type service struct {
	repo      Repository
	snapshots cache.Cache[models.Market]
	config    *Config
	logger    logger.Logger
}

// NewService creates a new registry service. The snapshot cache may be
// memory- or Redis-backed; Redis lets several preview instances share one
// view of the sync feed.
func NewService(repo Repository, snapshots cache.Cache[models.Market], config *Config, l logger.Logger) Service {
	if config == nil {
		config = GetDefaultConfig()
	}
	if l == nil {
		l = logger.NewNullLogger()
	}
	return &service{
		repo:      repo,
		snapshots: snapshots,
		config:    config,
		logger:    l,
	}
}

func (s *service) GetMarket(ctx context.Context, id string) (*models.Market, error) {
	if id == "" {
		return nil, models.ErrInvalidMarketID
	}

	if s.snapshots != nil {
		if m, err := s.snapshots.Get(ctx, marketKeyPrefix+id); err == nil {
			return &m, nil
		} else if !errors.Is(err, cache.ErrCacheMiss) {
			s.logger.Debug("snapshot cache read failed", map[string]interface{}{
				"market_id": id, "error": err.Error(),
			})
		}
	}

	m, err := s.repo.GetMarket(id)
	if err != nil {
		return nil, err
	}
	s.cacheMarket(ctx, m)
	return m, nil
}

func (s *service) PutMarket(ctx context.Context, m *models.Market) error {
	if err := s.repo.PutMarket(m); err != nil {
		return err
	}
	s.cacheMarket(ctx, m)

	s.logger.Info("market snapshot ingested", map[string]interface{}{
		"market_id": m.ID,
		"state":     m.State.String(),
		"height":    m.CurrentHeight,
	})
	return nil
}

func (s *service) ListMarkets(_ context.Context) ([]models.Market, error) {
	return s.repo.ListMarkets(), nil
}

func (s *service) GetPosition(_ context.Context, marketID string) (*models.Position, error) {
	if marketID == "" {
		return nil, models.ErrInvalidMarketID
	}
	return s.repo.GetPosition(marketID)
}

func (s *service) PutPosition(_ context.Context, p *models.Position) error {
	return s.repo.PutPosition(p)
}

// cacheMarket is best effort; a cold or broken cache only costs a repo read.
func (s *service) cacheMarket(ctx context.Context, m *models.Market) {
	if s.snapshots == nil {
		return
	}
	if err := s.snapshots.Set(ctx, marketKeyPrefix+m.ID, *m, s.config.SnapshotTTL); err != nil {
		s.logger.Debug("snapshot cache write failed", map[string]interface{}{
			"market_id": m.ID, "error": err.Error(),
		})
	}
}
