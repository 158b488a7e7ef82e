package models

import "errors"

var (
	ErrInvalidTimeframe  = errors.New("invalid timeframe label")
	ErrInvalidSymbol     = errors.New("invalid symbol")
	ErrInvalidTimestamp  = errors.New("invalid timestamp")
	ErrInvalidPrice      = errors.New("invalid price")
	ErrInvalidBar        = errors.New("invalid bar (prices outside low/high range)")
	ErrInvalidVolume     = errors.New("invalid volume")
	ErrOutOfOrderBar     = errors.New("bar timestamps must be strictly increasing")
	ErrEmptySeries       = errors.New("series has no bars")
	ErrZeroPreviousClose = errors.New("previous close is zero")
)
