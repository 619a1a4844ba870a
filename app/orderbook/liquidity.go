package orderbook

import (
	"math"

	"github.com/shopspring/decimal"

	"github.com/Resolvr-io/deadcat-sub000/models"
)

// NumLevels is the depth of the synthetic ladder.
const NumLevels = 8

const (
	baseLevelSize   = 12
	levelSizeSpread = 34
	levelSeedStep   = 11
)

// Level is one rung of the synthetic ladder. Levels are ephemeral: recomputed
// per preview request, never persisted.
type Level struct {
	PriceSats          int64           `json:"price_sats"`
	ContractsAvailable decimal.Decimal `json:"contracts_available"`
}

// ClampPrice forces a price into [1, SatsPerFullContract-1]. A zero-priced
// side is meaningless and the two sides must strictly sum to the full total,
// so the boundaries are excluded rather than rejected.
func ClampPrice(p int64) int64 {
	if p < 1 {
		return 1
	}
	if max := models.SatsPerFullContract - 1; p > max {
		return max
	}
	return p
}

// BasePriceSats anchors the ladder at the probability-implied mid price for
// one side. The NO side prices off the complement.
func BasePriceSats(m *models.Market, side models.Side) int64 {
	prob := m.YesPriceProbability
	if side == models.SideNo {
		prob = 1 - prob
	}
	return ClampPrice(int64(math.Round(prob * float64(models.SatsPerFullContract))))
}

// seedFor derives a stable per-market seed by summing the id's character
// codes. Deliberately a plain character-code sum rather than a real hash:
// golden tests pin exact ladder values, so the derivation must stay
// reproducible byte for byte.
func seedFor(id string) int64 {
	var seed int64
	for _, r := range id {
		seed += int64(r)
	}
	return seed
}

// Levels generates the synthetic ladder for one side and intent. There is no
// real book behind it; it exists to give previews a believable execution
// curve. Opening steps away from mid upward (consuming depth costs more),
// closing steps downward (unwinding recovers less). The slice is ordered by
// consumption priority and must be walked as produced.
func Levels(m *models.Market, side models.Side, intent models.OrderIntent) []Level {
	base := BasePriceSats(m, side)
	seed := seedFor(m.ID)

	levels := make([]Level, 0, NumLevels)
	for i := int64(0); i < NumLevels; i++ {
		offset := i + 1
		if intent == models.IntentClose {
			offset = -(i + 1)
		}
		size := baseLevelSize + (seed+i*levelSeedStep)%levelSizeSpread
		levels = append(levels, Level{
			PriceSats:          ClampPrice(base + offset),
			ContractsAvailable: decimal.NewFromInt(size),
		})
	}
	return levels
}
