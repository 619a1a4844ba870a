package preview

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/Resolvr-io/deadcat-sub000/app/api"
	"github.com/Resolvr-io/deadcat-sub000/models"
)

// Handler handles HTTP requests for trade previews
type Handler struct {
	service   Service
	validator *validator.Validate
}

// NewHandler creates a new preview handler
func NewHandler(service Service) *Handler {
	return &Handler{
		service:   service,
		validator: validator.New(),
	}
}

// BuildPreview computes a trade preview for one full order parameter set.
func (h *Handler) BuildPreview(c *gin.Context) {
	var req PreviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		api.ValidationErrorResponse(c, err.Error())
		return
	}
	if err := h.validator.Struct(&req); err != nil {
		api.ValidationErrorResponse(c, err.Error())
		return
	}

	resp, err := h.service.BuildPreview(c.Request.Context(), &req)
	if err != nil {
		h.respondError(c, err)
		return
	}

	api.SuccessResponse(c, 200, "Trade preview", resp)
}

// GetOrderbook returns the synthetic ladder for a market side and intent.
func (h *Handler) GetOrderbook(c *gin.Context) {
	marketID := c.Param("id")
	side := models.Side(c.DefaultQuery("side", string(models.SideYes)))
	intent := models.OrderIntent(c.DefaultQuery("intent", string(models.IntentOpen)))

	resp, err := h.service.GetOrderbook(c.Request.Context(), marketID, side, intent)
	if err != nil {
		h.respondError(c, err)
		return
	}

	api.SuccessResponse(c, 200, "Synthetic orderbook", resp)
}

func (h *Handler) respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, models.ErrMarketNotFound):
		api.NotFoundResponse(c, "Market")
	case errors.Is(err, models.ErrInvalidSide),
		errors.Is(err, models.ErrInvalidOrderIntent),
		errors.Is(err, models.ErrInvalidOrderType),
		errors.Is(err, models.ErrInvalidSizeMode),
		errors.Is(err, models.ErrInvalidLimitPrice):
		api.ErrorResponse(c, 400, "INVALID_ORDER_PARAMS", err.Error(), nil)
	default:
		api.InternalErrorResponse(c, "Failed to build preview")
	}
}
