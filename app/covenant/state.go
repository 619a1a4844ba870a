package covenant

import (
	"github.com/Resolvr-io/deadcat-sub000/models"
)

// Availability is the set of covenant paths legal for one market snapshot.
// It is derived, never stored. Every layer that needs to know whether an
// action is legal (handlers, submission clients, tests) must derive it from
// PathAvailability and nothing else, so legality can never diverge.
type Availability struct {
	InitialIssue bool `json:"initial_issue"`
	Issue        bool `json:"issue"`
	Resolve      bool `json:"resolve"`
	Cancel       bool `json:"cancel"`
	Redeem       bool `json:"redeem"`
	ExpiryRedeem bool `json:"expiry_redeem"`
}

// PathAvailability maps a market's state and expiry condition to its legal
// paths. Total over all states; no side effects.
//
// Cancellation stays legal after expiry because it only unwinds collateral
// that is already matched.
func PathAvailability(m *models.Market) Availability {
	expired := m.Expired()
	unresolved := m.State == models.CovenantStateUnresolved
	return Availability{
		InitialIssue: m.State == models.CovenantStateDormant,
		Issue:        unresolved && !expired,
		Resolve:      unresolved && !expired,
		Cancel:       unresolved,
		ExpiryRedeem: unresolved && expired,
		Redeem:       m.State.Resolved(),
	}
}
