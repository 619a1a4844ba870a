package preview

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Resolvr-io/deadcat-sub000/models"
)

func testMarket() *models.Market {
	return &models.Market{
		ID:                  "event-42",
		State:               models.CovenantStateUnresolved,
		ExpiryHeight:        850000,
		CurrentHeight:       840000,
		CollateralPerToken:  5000,
		YesPriceProbability: 0.62,
	}
}

func emptyPosition() *models.Position {
	return &models.Position{MarketID: "event-42"}
}

func TestBuildPreviewMarketOpen(t *testing.T) {
	engine := NewEngine(GetDefaultConfig())

	// 10 contracts fill entirely at the first ladder level (63 x 25).
	p := engine.BuildPreview(testMarket(), emptyPosition(), &PreviewRequest{
		MarketID:  "event-42",
		Side:      models.SideYes,
		Intent:    models.IntentOpen,
		OrderType: models.OrderTypeMarket,
		SizeMode:  models.SizeByContracts,
		Contracts: decimal.NewFromInt(10),
	})

	assert.Equal(t, int64(62), p.ReferencePriceSats)
	assert.True(t, p.FilledContracts.Equal(decimal.NewFromInt(10)))
	assert.False(t, p.IsPartial)
	assert.True(t, p.AvgPriceSats.Equal(decimal.NewFromInt(63)))
	assert.Equal(t, int64(63), p.BestPriceSats)
	assert.Equal(t, int64(63), p.WorstPriceSats)
	assert.Equal(t, int64(0), p.SlippageSats)
	assert.True(t, p.ExecutionPriceSats.Equal(decimal.NewFromInt(63)))

	// Intended spend prices off the probability mid, not the fill.
	assert.Equal(t, int64(620), p.NotionalSats)
	assert.True(t, p.ExecutedSats.Equal(decimal.NewFromInt(630)))

	// 1% of 630 rounds to 6; 2% of the 370-sat winning margin rounds to 7.
	assert.Equal(t, int64(6), p.ExecutionFeeSats)
	assert.Equal(t, int64(7), p.WinFeeSats)
	assert.Equal(t, int64(1000), p.GrossPayoutSats)
	assert.Equal(t, int64(987), p.NetIfCorrectSats)

	assert.True(t, p.PositionContracts.IsZero())
	assert.False(t, p.ExceedsPosition)
}

func TestBuildPreviewAmountModeMatchesContractMode(t *testing.T) {
	engine := NewEngine(GetDefaultConfig())

	// 620 sats at reference price 62 buys exactly 10 contracts.
	byAmount := engine.BuildPreview(testMarket(), emptyPosition(), &PreviewRequest{
		MarketID:   "event-42",
		Side:       models.SideYes,
		Intent:     models.IntentOpen,
		OrderType:  models.OrderTypeMarket,
		SizeMode:   models.SizeByAmount,
		AmountSats: 620,
	})
	byContracts := engine.BuildPreview(testMarket(), emptyPosition(), &PreviewRequest{
		MarketID:  "event-42",
		Side:      models.SideYes,
		Intent:    models.IntentOpen,
		OrderType: models.OrderTypeMarket,
		SizeMode:  models.SizeByContracts,
		Contracts: decimal.NewFromInt(10),
	})

	assert.True(t, byAmount.RequestedContracts.Equal(byContracts.RequestedContracts))
	assert.True(t, byAmount.ExecutedSats.Equal(byContracts.ExecutedSats))
	assert.Equal(t, byContracts.NetIfCorrectSats, byAmount.NetIfCorrectSats)
	assert.Equal(t, int64(620), byAmount.NotionalSats)
}

func TestBuildPreviewLimitOrder(t *testing.T) {
	engine := NewEngine(GetDefaultConfig())

	// Limit 64 executes 25 contracts at 63 and 5 at 64.
	p := engine.BuildPreview(testMarket(), emptyPosition(), &PreviewRequest{
		MarketID:       "event-42",
		Side:           models.SideYes,
		Intent:         models.IntentOpen,
		OrderType:      models.OrderTypeLimit,
		SizeMode:       models.SizeByContracts,
		Contracts:      decimal.NewFromInt(30),
		LimitPriceSats: 64,
	})

	assert.Equal(t, int64(64), p.ReferencePriceSats)
	assert.True(t, p.FilledContracts.Equal(decimal.NewFromInt(30)))
	assert.True(t, p.ExecutedSats.Equal(decimal.NewFromInt(1895)))

	// Limit orders quote the stated price, not the weighted average.
	assert.True(t, p.ExecutionPriceSats.Equal(decimal.NewFromInt(64)))

	assert.Equal(t, int64(19), p.ExecutionFeeSats)
	assert.Equal(t, int64(22), p.WinFeeSats)
	assert.Equal(t, int64(3000), p.GrossPayoutSats)
	assert.Equal(t, int64(2959), p.NetIfCorrectSats)
}

func TestBuildPreviewLimitClampsReference(t *testing.T) {
	engine := NewEngine(GetDefaultConfig())

	p := engine.BuildPreview(testMarket(), emptyPosition(), &PreviewRequest{
		MarketID:       "event-42",
		Side:           models.SideYes,
		Intent:         models.IntentOpen,
		OrderType:      models.OrderTypeLimit,
		SizeMode:       models.SizeByContracts,
		Contracts:      decimal.NewFromInt(1),
		LimitPriceSats: 400,
	})

	assert.Equal(t, int64(99), p.ReferencePriceSats)
}

func TestBuildPreviewClose(t *testing.T) {
	engine := NewEngine(GetDefaultConfig())
	position := &models.Position{
		MarketID:     "event-42",
		YesContracts: decimal.NewFromInt(4),
	}

	// Closing walks the downward ladder; first level is 61 x 25.
	p := engine.BuildPreview(testMarket(), position, &PreviewRequest{
		MarketID:  "event-42",
		Side:      models.SideYes,
		Intent:    models.IntentClose,
		OrderType: models.OrderTypeMarket,
		SizeMode:  models.SizeByContracts,
		Contracts: decimal.NewFromInt(10),
	})

	assert.True(t, p.ExecutedSats.Equal(decimal.NewFromInt(610)))
	assert.Equal(t, int64(6), p.ExecutionFeeSats)

	// Win fees apply to opens only.
	assert.Equal(t, int64(0), p.WinFeeSats)
	assert.Equal(t, int64(994), p.NetIfCorrectSats)

	// Selling 10 against 4 held is flagged but never rejected.
	assert.True(t, p.PositionContracts.Equal(decimal.NewFromInt(4)))
	assert.True(t, p.ExceedsPosition)
}

func TestBuildPreviewCloseWithinPosition(t *testing.T) {
	engine := NewEngine(GetDefaultConfig())
	position := &models.Position{
		MarketID:     "event-42",
		YesContracts: decimal.NewFromInt(50),
	}

	p := engine.BuildPreview(testMarket(), position, &PreviewRequest{
		MarketID:  "event-42",
		Side:      models.SideYes,
		Intent:    models.IntentClose,
		OrderType: models.OrderTypeMarket,
		SizeMode:  models.SizeByContracts,
		Contracts: decimal.NewFromInt(10),
	})

	assert.False(t, p.ExceedsPosition)
}

func TestBuildPreviewFloorsTinySizes(t *testing.T) {
	engine := NewEngine(GetDefaultConfig())

	p := engine.BuildPreview(testMarket(), emptyPosition(), &PreviewRequest{
		MarketID:  "event-42",
		Side:      models.SideYes,
		Intent:    models.IntentOpen,
		OrderType: models.OrderTypeMarket,
		SizeMode:  models.SizeByContracts,
		Contracts: decimal.NewFromFloat(0.001),
	})

	assert.True(t, p.RequestedContracts.Equal(decimal.NewFromFloat(0.01)))
}

func TestBuildPreviewNetNeverNegative(t *testing.T) {
	// Even with an extreme fee rate and a 99-sat entry the clamp holds.
	cfg := GetDefaultConfig()
	cfg.ExecutionFeeRate = decimal.NewFromFloat(0.5)
	engine := NewEngine(cfg)

	m := testMarket()
	m.YesPriceProbability = 0.98

	p := engine.BuildPreview(m, emptyPosition(), &PreviewRequest{
		MarketID:  "event-42",
		Side:      models.SideYes,
		Intent:    models.IntentOpen,
		OrderType: models.OrderTypeMarket,
		SizeMode:  models.SizeByContracts,
		Contracts: decimal.NewFromInt(10),
	})

	require.GreaterOrEqual(t, p.NetIfCorrectSats, int64(0))
}

func TestBuildPreviewWinFeeRoundsToZeroNearRedemption(t *testing.T) {
	// Buying at 99 leaves a 1-sat winning margin per contract; 2% of that
	// rounds away entirely.
	engine := NewEngine(GetDefaultConfig())

	m := testMarket()
	m.YesPriceProbability = 0.99

	p := engine.BuildPreview(m, emptyPosition(), &PreviewRequest{
		MarketID:       "event-42",
		Side:           models.SideYes,
		Intent:         models.IntentOpen,
		OrderType:      models.OrderTypeLimit,
		SizeMode:       models.SizeByContracts,
		Contracts:      decimal.NewFromInt(10),
		LimitPriceSats: 99,
	})

	assert.True(t, p.ExecutedSats.Equal(decimal.NewFromInt(990)))
	assert.Equal(t, int64(0), p.WinFeeSats)
}
