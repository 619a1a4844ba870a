package registry

import (
	"github.com/gin-gonic/gin"

	"github.com/Resolvr-io/deadcat-sub000/internal/cache"
	"github.com/Resolvr-io/deadcat-sub000/internal/logger"
	"github.com/Resolvr-io/deadcat-sub000/models"
)

// Dependencies represent the dependencies needed for the registry module
type Dependencies struct {
	Snapshots cache.Cache[models.Market]
	Config    *Config
	Logger    logger.Logger
}

// Init mounts the registry routes and returns the service so other modules
// can consume it as their market and position source.
func Init(r *gin.RouterGroup, deps Dependencies) Service {
	if deps.Config == nil {
		deps.Config = GetDefaultConfig()
	}

	repo := NewRepository()
	srvs := NewService(repo, deps.Snapshots, deps.Config, deps.Logger)
	handler := NewHandler(srvs)

	r.GET("/markets", handler.ListMarkets)
	r.GET("/markets/:id", handler.GetMarket)
	r.PUT("/markets/:id", handler.PutMarket)
	r.GET("/markets/:id/position", handler.GetPosition)
	r.PUT("/markets/:id/position", handler.PutPosition)

	return srvs
}
