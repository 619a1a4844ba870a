package models

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func validMarket() *Market {
	return &Market{
		ID:                  "event-42",
		State:               CovenantStateUnresolved,
		ExpiryHeight:        850000,
		CurrentHeight:       840000,
		CollateralPerToken:  5000,
		YesPriceProbability: 0.62,
	}
}

func TestCovenantStateString(t *testing.T) {
	assert.Equal(t, "dormant", CovenantStateDormant.String())
	assert.Equal(t, "unresolved", CovenantStateUnresolved.String())
	assert.Equal(t, "resolved_yes", CovenantStateResolvedYes.String())
	assert.Equal(t, "resolved_no", CovenantStateResolvedNo.String())
	assert.Equal(t, "unknown", CovenantState(42).String())
}

func TestCovenantStateValid(t *testing.T) {
	for s := CovenantStateDormant; s <= CovenantStateResolvedNo; s++ {
		assert.True(t, s.Valid(), "state %d", s)
	}
	assert.False(t, CovenantState(-1).Valid())
	assert.False(t, CovenantState(4).Valid())
}

func TestCovenantStateResolved(t *testing.T) {
	assert.False(t, CovenantStateDormant.Resolved())
	assert.False(t, CovenantStateUnresolved.Resolved())
	assert.True(t, CovenantStateResolvedYes.Resolved())
	assert.True(t, CovenantStateResolvedNo.Resolved())
}

func TestSideOpposite(t *testing.T) {
	assert.Equal(t, SideNo, SideYes.Opposite())
	assert.Equal(t, SideYes, SideNo.Opposite())
}

func TestEnumValidity(t *testing.T) {
	assert.True(t, SideYes.Valid())
	assert.False(t, Side("maybe").Valid())

	assert.True(t, IntentOpen.Valid())
	assert.False(t, OrderIntent("hold").Valid())

	assert.True(t, OrderTypeLimit.Valid())
	assert.False(t, OrderType("stop").Valid())

	assert.True(t, SizeByAmount.Valid())
	assert.False(t, SizeMode("lots").Valid())
}

func TestMarketExpired(t *testing.T) {
	m := validMarket()
	m.ExpiryHeight = 100

	m.CurrentHeight = 99
	assert.False(t, m.Expired())

	// Expiry is inclusive at the boundary height.
	m.CurrentHeight = 100
	assert.True(t, m.Expired())

	m.CurrentHeight = 101
	assert.True(t, m.Expired())
}

func TestMarketValidate(t *testing.T) {
	assert.NoError(t, validMarket().Validate())

	cases := []struct {
		name    string
		mutate  func(*Market)
		wantErr error
	}{
		{"empty id", func(m *Market) { m.ID = "" }, ErrInvalidMarketID},
		{"unknown state", func(m *Market) { m.State = 9 }, ErrInvalidCovenantState},
		{"zero collateral", func(m *Market) { m.CollateralPerToken = 0 }, ErrInvalidCollateralPerToken},
		{"negative collateral", func(m *Market) { m.CollateralPerToken = -1 }, ErrInvalidCollateralPerToken},
		{"probability zero", func(m *Market) { m.YesPriceProbability = 0 }, ErrInvalidProbability},
		{"probability one", func(m *Market) { m.YesPriceProbability = 1 }, ErrInvalidProbability},
		{"probability NaN", func(m *Market) { m.YesPriceProbability = math.NaN() }, ErrInvalidProbability},
		{"negative height", func(m *Market) { m.CurrentHeight = -1 }, ErrInvalidBlockHeight},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			m := validMarket()
			tc.mutate(m)
			assert.ErrorIs(t, m.Validate(), tc.wantErr)
		})
	}
}
