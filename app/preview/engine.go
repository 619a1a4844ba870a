package preview

import (
	"github.com/shopspring/decimal"

	"github.com/Resolvr-io/deadcat-sub000/app/orderbook"
	"github.com/Resolvr-io/deadcat-sub000/models"
)

// previewEngine implements the Engine interface
type previewEngine struct {
	config *Config
}

// NewEngine creates a new preview engine
func NewEngine(config *Config) Engine {
	return &previewEngine{
		config: config,
	}
}

// BuildPreview composes a fill simulation with fees and the caller's held
// position into one TradePreview. Every quantity is computed fresh from the
// given snapshot; nothing is cached across calls.
func (pe *previewEngine) BuildPreview(market *models.Market, position *models.Position, req *PreviewRequest) *TradePreview {
	referencePrice := orderbook.BasePriceSats(market, req.Side)
	if req.OrderType == models.OrderTypeLimit {
		referencePrice = orderbook.ClampPrice(req.LimitPriceSats)
	}

	requested := pe.resolveRequestedContracts(req, referencePrice)

	levels := orderbook.Levels(market, req.Side, req.Intent)
	fill := orderbook.EstimateFill(levels, requested, req.Intent, req.OrderType, referencePrice)

	// Limit orders execute at their stated price; market orders at the
	// fill's weighted average.
	executionPrice := fill.AvgPriceSats
	if req.OrderType == models.OrderTypeLimit {
		executionPrice = decimal.NewFromInt(referencePrice)
	}

	// Notional reflects intended spend, not the fill, so a partial fill
	// still previews what the caller asked to commit.
	var notional int64
	if req.SizeMode == models.SizeByAmount {
		notional = req.AmountSats
		if notional < pe.config.MinAmountSats {
			notional = pe.config.MinAmountSats
		}
	} else {
		notional = fill.RequestedContracts.Mul(decimal.NewFromInt(referencePrice)).Round(0).IntPart()
	}

	executed := fill.TotalSats
	executionFee := executed.Mul(pe.config.ExecutionFeeRate).Round(0).IntPart()

	// A fully-correct contract always redeems for the full per-contract total.
	gross := fill.FilledContracts.Mul(decimal.NewFromInt(models.SatsPerFullContract)).Floor().IntPart()

	var winFee int64
	if req.Intent == models.IntentOpen {
		margin := decimal.NewFromInt(gross).Sub(executed)
		if margin.IsNegative() {
			margin = decimal.Zero
		}
		winFee = margin.Mul(pe.config.WinFeeRate).Round(0).IntPart()
	}

	net := gross - executionFee - winFee
	if net < 0 {
		net = 0
	}

	held := position.ContractsFor(req.Side)

	return &TradePreview{
		MarketID:           market.ID,
		Side:               req.Side,
		Intent:             req.Intent,
		OrderType:          req.OrderType,
		ReferencePriceSats: referencePrice,
		RequestedContracts: fill.RequestedContracts,
		FilledContracts:    fill.FilledContracts,
		IsPartial:          fill.IsPartial,
		AvgPriceSats:       fill.AvgPriceSats,
		BestPriceSats:      fill.BestPriceSats,
		WorstPriceSats:     fill.WorstPriceSats,
		SlippageSats:       fill.SlippageSats(),
		ExecutionPriceSats: executionPrice,
		NotionalSats:       notional,
		ExecutedSats:       executed,
		ExecutionFeeSats:   executionFee,
		WinFeeSats:         winFee,
		GrossPayoutSats:    gross,
		NetIfCorrectSats:   net,
		PositionContracts:  held,
		ExceedsPosition:    req.Intent == models.IntentClose && fill.RequestedContracts.GreaterThan(held),
	}
}

// resolveRequestedContracts turns the caller's size input into a contract
// count. Amount-mode sizing divides the monetary amount by the reference
// price; both modes floor at the minimum granularity instead of rejecting.
func (pe *previewEngine) resolveRequestedContracts(req *PreviewRequest, referencePriceSats int64) decimal.Decimal {
	var contracts decimal.Decimal
	if req.SizeMode == models.SizeByContracts {
		contracts = req.Contracts
	} else {
		amount := req.AmountSats
		if amount < pe.config.MinAmountSats {
			amount = pe.config.MinAmountSats
		}
		contracts = decimal.NewFromInt(amount).Div(decimal.NewFromInt(referencePriceSats))
	}

	if contracts.LessThan(pe.config.MinContracts) {
		return pe.config.MinContracts
	}
	return contracts
}
