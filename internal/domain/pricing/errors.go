package pricing

import "errors"

// Invalid-configuration errors. These indicate catalog-data or caller
// bugs, never user input: the engine fails loudly instead of producing a
// best-effort total.
var (
	ErrNegativeVolume      = errors.New("pricing: volume must be non-negative")
	ErrNegativePercentage  = errors.New("pricing: percentage must be non-negative")
	ErrInvalidInstallments = errors.New("pricing: installment count must not be negative")
	ErrUnknownPricingMode  = errors.New("pricing: unknown pricing mode")
	ErrUnknownAdjustment   = errors.New("pricing: unknown adjustment type")
)
