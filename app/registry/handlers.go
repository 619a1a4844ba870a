package registry

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/Resolvr-io/deadcat-sub000/app/api"
	"github.com/Resolvr-io/deadcat-sub000/models"
)

// Handler handles HTTP requests for the snapshot registry
type Handler struct {
	service   Service
	validator *validator.Validate
}

// NewHandler creates a new registry handler
func NewHandler(service Service) *Handler {
	return &Handler{
		service:   service,
		validator: validator.New(),
	}
}

func (h *Handler) ListMarkets(c *gin.Context) {
	markets, err := h.service.ListMarkets(c.Request.Context())
	if err != nil {
		api.InternalErrorResponse(c, "Failed to list markets")
		return
	}
	api.SuccessResponseWithMeta(c, 200, "Market snapshots", markets, api.ListMeta{Count: len(markets)})
}

func (h *Handler) GetMarket(c *gin.Context) {
	market, err := h.service.GetMarket(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, models.ErrMarketNotFound) {
			api.NotFoundResponse(c, "Market")
			return
		}
		api.InternalErrorResponse(c, "Failed to load market snapshot")
		return
	}
	api.SuccessResponse(c, 200, "Market snapshot", market)
}

// PutMarket ingests one snapshot pushed by the external sync process.
func (h *Handler) PutMarket(c *gin.Context) {
	var req PutMarketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		api.ValidationErrorResponse(c, err.Error())
		return
	}
	if err := h.validator.Struct(&req); err != nil {
		api.ValidationErrorResponse(c, err.Error())
		return
	}

	market := req.ToMarket(c.Param("id"))
	if err := h.service.PutMarket(c.Request.Context(), market); err != nil {
		api.ErrorResponse(c, 400, "INVALID_SNAPSHOT", err.Error(), nil)
		return
	}
	api.SuccessResponse(c, 200, "Market snapshot ingested", market)
}

func (h *Handler) GetPosition(c *gin.Context) {
	position, err := h.service.GetPosition(c.Request.Context(), c.Param("id"))
	if err != nil {
		api.InternalErrorResponse(c, "Failed to load position")
		return
	}
	api.SuccessResponse(c, 200, "Position", position)
}

// PutPosition ingests held token balances reported by the wallet service.
func (h *Handler) PutPosition(c *gin.Context) {
	var req PutPositionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		api.ValidationErrorResponse(c, err.Error())
		return
	}

	position := req.ToPosition(c.Param("id"))
	if err := h.service.PutPosition(c.Request.Context(), position); err != nil {
		api.ErrorResponse(c, 400, "INVALID_POSITION", err.Error(), nil)
		return
	}
	api.SuccessResponse(c, 200, "Position ingested", position)
}
