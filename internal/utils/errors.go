package utils

import "errors"

// Common application errors used across services.
var (
	ErrProductNotFound  = errors.New("PRODUCT_NOT_FOUND")
	ErrInvalidPrice     = errors.New("INVALID_PRICE")
	ErrInvalidStock     = errors.New("INVALID_STOCK")
	ErrInvalidThreshold = errors.New("INVALID_THRESHOLD")
	ErrMissingField     = errors.New("MISSING_FIELD")
	ErrInvalidToken     = errors.New("INVALID_TOKEN")
)
