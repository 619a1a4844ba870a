package preview

import (
	"github.com/gin-gonic/gin"

	"github.com/Resolvr-io/deadcat-sub000/internal/logger"
)

// Dependencies represent the dependencies needed for the preview module
type Dependencies struct {
	Markets   MarketGetter
	Positions PositionGetter
	Config    *Config
	Logger    logger.Logger
}

func Init(r *gin.RouterGroup, deps Dependencies) {
	if deps.Config == nil {
		deps.Config = GetDefaultConfig()
	}

	engine := NewEngine(deps.Config)
	srvs := NewService(deps.Markets, deps.Positions, engine, deps.Logger)
	handler := NewHandler(srvs)

	r.POST("/previews", handler.BuildPreview)
	r.GET("/markets/:id/orderbook", handler.GetOrderbook)
}
