package models

import "errors"

var (
	ErrInvalidMarketID           = errors.New("invalid market ID")
	ErrInvalidCovenantState      = errors.New("invalid covenant state")
	ErrInvalidCollateralPerToken = errors.New("collateral per token must be positive")
	ErrInvalidProbability        = errors.New("yes price probability must be in (0,1)")
	ErrInvalidBlockHeight        = errors.New("block heights cannot be negative")
	ErrMarketNotFound            = errors.New("market not found")

	ErrInvalidSide        = errors.New("invalid market side")
	ErrInvalidOrderIntent = errors.New("invalid order intent")
	ErrInvalidOrderType   = errors.New("invalid order type")
	ErrInvalidSizeMode    = errors.New("invalid size mode")
	ErrInvalidLimitPrice  = errors.New("limit price required for limit orders")

	ErrNegativePosition = errors.New("position balances cannot be negative")

	ErrInvalidExecutionFeeRate = errors.New("invalid execution fee rate")
	ErrInvalidWinFeeRate       = errors.New("invalid win fee rate")
	ErrInvalidMinContracts     = errors.New("invalid minimum contract size")
	ErrInvalidSnapshotTTL      = errors.New("invalid snapshot cache TTL")
)
