package covenant

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/Resolvr-io/deadcat-sub000/app/api"
	"github.com/Resolvr-io/deadcat-sub000/models"
)

// Handler handles HTTP requests for covenant path queries
type Handler struct {
	markets   MarketGetter
	validator *validator.Validate
}

// NewHandler creates a new covenant handler
func NewHandler(markets MarketGetter) *Handler {
	return &Handler{
		markets:   markets,
		validator: validator.New(),
	}
}

// GetAvailability returns the legal covenant paths for a market snapshot.
// Availability is advisory: the settlement backend is the final arbiter of
// an illegal action, this endpoint only gates what a UI should offer.
func (h *Handler) GetAvailability(c *gin.Context) {
	market, ok := h.lookupMarket(c)
	if !ok {
		return
	}

	api.SuccessResponse(c, 200, "Covenant path availability", AvailabilityResponse{
		MarketID: market.ID,
		State:    market.State.String(),
		Expired:  market.Expired(),
		Paths:    PathAvailability(market),
	})
}

// QuoteCollateral returns the exact satoshi amount a covenant path moves for
// the requested unit count.
func (h *Handler) QuoteCollateral(c *gin.Context) {
	var req CollateralQuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		api.ValidationErrorResponse(c, err.Error())
		return
	}
	if err := h.validator.Struct(&req); err != nil {
		api.ValidationErrorResponse(c, err.Error())
		return
	}
	if !req.Path.Valid() {
		api.ErrorResponse(c, 400, "INVALID_PATH", "unknown collateral path", nil)
		return
	}

	market, err := h.markets.GetMarket(c.Request.Context(), req.MarketID)
	if err != nil {
		if errors.Is(err, models.ErrMarketNotFound) {
			api.NotFoundResponse(c, "Market")
			return
		}
		api.InternalErrorResponse(c, "Failed to load market snapshot")
		return
	}

	paths := PathAvailability(market)
	cpt := market.CollateralPerToken

	resp := CollateralQuoteResponse{
		MarketID: market.ID,
		Path:     req.Path,
		Units:    req.Units,
	}
	switch req.Path {
	case PathIssue:
		resp.AmountSats = IssuanceCollateral(req.Units, cpt)
		resp.Available = paths.InitialIssue || paths.Issue
	case PathCancel:
		resp.AmountSats = CancellationRefund(req.Units, cpt)
		resp.Available = paths.Cancel
	case PathRedeem:
		resp.AmountSats = ResolutionRedeemPayout(req.Units, cpt)
		resp.Available = paths.Redeem
	case PathExpiryRedeem:
		resp.AmountSats = ExpiryRedeemPayout(req.Units, cpt)
		resp.Available = paths.ExpiryRedeem
	}

	api.SuccessResponse(c, 200, "Collateral quote", resp)
}

func (h *Handler) lookupMarket(c *gin.Context) (*models.Market, bool) {
	id := c.Param("id")
	if id == "" {
		api.ValidationErrorResponse(c, "market id is required")
		return nil, false
	}
	market, err := h.markets.GetMarket(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, models.ErrMarketNotFound) {
			api.NotFoundResponse(c, "Market")
			return nil, false
		}
		api.InternalErrorResponse(c, "Failed to load market snapshot")
		return nil, false
	}
	return market, true
}
