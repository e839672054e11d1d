package domain

import "errors"

var (
	ErrUnknownCurrency = errors.New("unknown currency")
	ErrInvalidAmount   = errors.New("invalid amount")
	ErrInvalidRate     = errors.New("rate must be positive")
	ErrRateUnavailable = errors.New("no rate for pair")
)
