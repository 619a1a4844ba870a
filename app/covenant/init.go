package covenant

import (
	"github.com/gin-gonic/gin"
)

// Dependencies represent the dependencies needed for the covenant module
type Dependencies struct {
	Markets MarketGetter
}

func Init(r *gin.RouterGroup, deps Dependencies) {
	handler := NewHandler(deps.Markets)

	r.GET("/markets/:id/availability", handler.GetAvailability)
	r.POST("/collateral/quote", handler.QuoteCollateral)
}
