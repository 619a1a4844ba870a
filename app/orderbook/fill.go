package orderbook

import (
	"github.com/shopspring/decimal"

	"github.com/Resolvr-io/deadcat-sub000/models"
)

var (
	// MinContracts is the smallest meaningful request; smaller sizes are
	// floored rather than rejected.
	MinContracts = decimal.NewFromFloat(0.01)

	// partialEpsilon absorbs decimal rounding when comparing filled against
	// requested size.
	partialEpsilon = decimal.NewFromFloat(0.0001)
)

// FillEstimate describes how much of a requested size would execute against
// the synthetic ladder. It is a value result: no fill ever fails, absence of
// liquidity just yields zero filled contracts and a partial flag.
type FillEstimate struct {
	AvgPriceSats       decimal.Decimal `json:"avg_price_sats"`
	BestPriceSats      int64           `json:"best_price_sats"`
	WorstPriceSats     int64           `json:"worst_price_sats"`
	FilledContracts    decimal.Decimal `json:"filled_contracts"`
	RequestedContracts decimal.Decimal `json:"requested_contracts"`
	TotalSats          decimal.Decimal `json:"total_sats"`
	IsPartial          bool            `json:"is_partial"`
}

// SlippageSats is the absolute price distance between the best and worst
// levels touched while filling.
func (f *FillEstimate) SlippageSats() int64 {
	d := f.WorstPriceSats - f.BestPriceSats
	if d < 0 {
		return -d
	}
	return d
}

// EstimateFill walks the ladder in generator order and simulates execution.
// Market orders may consume every level; limit orders only levels at or
// inside the limit (at or below for opens, at or above for closes). The
// limit price doubles as the fallback reference when nothing fills, so the
// estimate never divides by zero.
func EstimateFill(levels []Level, requested decimal.Decimal, intent models.OrderIntent,
	orderType models.OrderType, limitPriceSats int64) FillEstimate {
	request := requested
	if request.LessThan(MinContracts) {
		request = MinContracts
	}

	executable := levels
	if orderType == models.OrderTypeLimit {
		executable = make([]Level, 0, len(levels))
		for _, lv := range levels {
			open := intent == models.IntentOpen && lv.PriceSats <= limitPriceSats
			cls := intent == models.IntentClose && lv.PriceSats >= limitPriceSats
			if open || cls {
				executable = append(executable, lv)
			}
		}
	}

	// The generator already orders levels by consumption priority; do not
	// re-sort.
	remaining := request
	filled := decimal.Zero
	total := decimal.Zero
	var worst int64
	touched := false
	for _, lv := range executable {
		if !remaining.IsPositive() {
			break
		}
		take := remaining
		if lv.ContractsAvailable.LessThan(take) {
			take = lv.ContractsAvailable
		}
		filled = filled.Add(take)
		total = total.Add(take.Mul(decimal.NewFromInt(lv.PriceSats)))
		remaining = remaining.Sub(take)
		worst = lv.PriceSats
		touched = true
	}

	avg := decimal.NewFromInt(limitPriceSats)
	if filled.IsPositive() {
		avg = total.Div(filled)
	}

	best := limitPriceSats
	if len(executable) > 0 {
		best = executable[0].PriceSats
	}
	if !touched {
		worst = best
	}

	return FillEstimate{
		AvgPriceSats:       avg,
		BestPriceSats:      best,
		WorstPriceSats:     worst,
		FilledContracts:    filled,
		RequestedContracts: request,
		TotalSats:          total,
		IsPartial:          filled.Add(partialEpsilon).LessThan(request),
	}
}
