package covenant

// CollateralPath names a quotable covenant path.
type CollateralPath string

const (
	PathIssue        CollateralPath = "issue"
	PathCancel       CollateralPath = "cancel"
	PathRedeem       CollateralPath = "redeem"
	PathExpiryRedeem CollateralPath = "expiry_redeem"
)

func (p CollateralPath) Valid() bool {
	switch p {
	case PathIssue, PathCancel, PathRedeem, PathExpiryRedeem:
		return true
	}
	return false
}

// CollateralQuoteRequest asks for the exact satoshi amount a covenant path
// would move for a given unit count. Units are pairs for issue/cancel and
// tokens for the redemption paths.
type CollateralQuoteRequest struct {
	MarketID string         `json:"market_id" validate:"required"`
	Path     CollateralPath `json:"path" validate:"required"`
	Units    int64          `json:"units" validate:"required,gt=0"`
}

// CollateralQuoteResponse carries the quoted amount together with whether the
// path is currently legal, so a submission layer can parametrize its call and
// a UI can disable what the covenant would reject.
type CollateralQuoteResponse struct {
	MarketID   string         `json:"market_id"`
	Path       CollateralPath `json:"path"`
	Units      int64          `json:"units"`
	AmountSats int64          `json:"amount_sats"`
	Available  bool           `json:"available"`
}

// AvailabilityResponse pairs the derived path gates with the snapshot facts
// they were derived from.
type AvailabilityResponse struct {
	MarketID string       `json:"market_id"`
	State    string       `json:"state"`
	Expired  bool         `json:"expired"`
	Paths    Availability `json:"paths"`
}
