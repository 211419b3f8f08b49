// Package pricing implements the quote calculation engine: a pure,
// deterministic function that turns a selected package, a set of
// optional modules/services, a usage volume, a financing configuration
// and a set of manual price overrides into a fully itemized,
// tax-inclusive, two-bucket financial total.
//
// The engine holds no state between calls and performs no I/O. Callers
// re-invoke Compute on every relevant input change; identical inputs
// always produce structurally identical results, so it is safe to call
// from any number of request handlers concurrently.
package pricing

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/facturalink/cotizador-api/internal/domain/entity"
	"github.com/facturalink/cotizador-api/internal/domain/enum"
)

// Config is the caller-assembled quote configuration. Financing plan
// fields arrive here already resolved (the service maps a plan id to its
// adjustment type, rate and installment count).
type Config struct {
	PaymentMode           enum.PaymentMode
	InstallmentCount      int
	AdjustmentType        enum.AdjustmentType
	AdjustmentRatePct     float64
	ManualDiscountPct     float64
	VATPct                float64
	IncludeImplementation bool
}

// Input carries everything Compute needs. Package may be nil when the
// caller has not selected one yet; Items must be in catalog display
// order, since line results preserve it.
type Input struct {
	Package   *entity.Package
	Items     []entity.LineItem
	Volume    int
	Config    Config
	Overrides OverrideMap
}

// LineResult is one row of the desglose shown next to the totals.
type LineResult struct {
	Category    string  `json:"category"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Amount      float64 `json:"amount"`
	IsOneTime   bool    `json:"is_one_time"`
}

// Quote is the fully computed result. Every monetary field is rounded to
// two decimals exactly once, when it is placed here; GrandTotal is the
// sum of the two already-rounded bucket totals, so
// GrandTotal == OneTimeTotal + RecurringTotal holds exactly.
type Quote struct {
	LineResults []LineResult `json:"line_results"`

	OneTimeSubtotal float64 `json:"one_time_subtotal"`
	OneTimeTax      float64 `json:"one_time_tax"`
	OneTimeTotal    float64 `json:"one_time_total"`

	RecurringSubtotalBase float64 `json:"recurring_subtotal_base"`
	AdjustmentAmount      float64 `json:"adjustment_amount"`
	AdjustmentPct         float64 `json:"adjustment_pct"`
	ManualDiscountAmount  float64 `json:"manual_discount_amount"`
	RecurringNet          float64 `json:"recurring_net"`
	RecurringTax          float64 `json:"recurring_tax"`
	RecurringTotal        float64 `json:"recurring_total"`

	GrandTotal        float64 `json:"grand_total"`
	InstallmentAmount float64 `json:"installment_amount"`
	InstallmentCount  int     `json:"installment_count"`
	IsFinanced        bool    `json:"is_financed"`
}

var oneHundred = decimal.NewFromInt(100)

// Compute runs the full quote calculation. It returns (nil, nil) when no
// package is selected — an expected intermediate state of the wizard,
// not an error — and a typed error for invalid configuration or catalog
// data.
func Compute(in Input) (*Quote, error) {
	if err := validate(in); err != nil {
		return nil, err
	}
	if in.Package == nil {
		return nil, nil
	}

	cfg := in.Config
	volume := decimal.NewFromInt(int64(in.Volume))

	// Resolve the package price and implementation fee. The override,
	// when present, wins even at zero.
	packagePrice := in.Overrides.Resolve(
		PackageOverrideKey(in.Package.ID),
		decimal.NewFromFloat(in.Package.AnnualPrice),
	)

	implementation := decimal.Zero
	if cfg.IncludeImplementation {
		implementation = in.Overrides.Resolve(
			ImplementationOverrideKey,
			decimal.NewFromFloat(in.Package.ImplementationCost),
		)
	}

	// Resolve every selected item and classify into buckets.
	oneTimeSubtotal := implementation
	recurringBase := packagePrice

	type resolvedItem struct {
		item    entity.LineItem
		amount  decimal.Decimal
		oneTime bool
	}
	resolved := make([]resolvedItem, 0, len(in.Items))

	for _, item := range in.Items {
		amount := catalogPrice(item, volume)
		amount = in.Overrides.Resolve(ItemOverrideKey(item.ID), amount)

		oneTime := isOneTime(item)
		if oneTime {
			oneTimeSubtotal = oneTimeSubtotal.Add(amount)
		} else {
			recurringBase = recurringBase.Add(amount)
		}
		resolved = append(resolved, resolvedItem{item: item, amount: amount, oneTime: oneTime})
	}

	// Manual discount and financing adjustment are both taken from the
	// untouched recurring base; neither compounds on the other.
	manualDiscount := recurringBase.
		Mul(decimal.NewFromFloat(cfg.ManualDiscountPct)).
		Div(oneHundred)

	adjustment, adjustmentPct := planAdjustment(recurringBase, cfg)

	recurringNet := recurringBase.Add(adjustment).Sub(manualDiscount)
	if recurringNet.IsNegative() {
		// Over-discounting is a configuration mistake, not a crash.
		recurringNet = decimal.Zero
	}

	vat := decimal.NewFromFloat(cfg.VATPct)
	recurringTax := recurringNet.Mul(vat).Div(oneHundred)
	oneTimeTax := oneTimeSubtotal.Mul(vat).Div(oneHundred)

	// Bucket totals are rounded first; the grand total is their exact
	// sum so that the additivity invariant survives rounding.
	recurringTotal := recurringNet.Add(recurringTax).Round(2)
	oneTimeTotal := oneTimeSubtotal.Add(oneTimeTax).Round(2)
	grandTotal := oneTimeTotal.Add(recurringTotal)

	installments := cfg.InstallmentCount
	if installments < 1 {
		installments = 1
	}
	installmentAmount := recurringTotal
	if installments > 1 {
		installmentAmount = recurringTotal.Div(decimal.NewFromInt(int64(installments)))
	}

	isFinanced := cfg.AdjustmentType == enum.AdjustmentTypeSurcharge && installments > 1

	// Desglose: package row, implementation row (when charged), then one
	// row per selected item in catalog order.
	lines := make([]LineResult, 0, len(resolved)+2)
	lines = append(lines, LineResult{
		Category: "Package",
		Name:     in.Package.Name,
		Amount:   round2(packagePrice),
	})
	if cfg.IncludeImplementation && implementation.IsPositive() {
		lines = append(lines, LineResult{
			Category:  "Implementation",
			Name:      "Implementación",
			Amount:    round2(implementation),
			IsOneTime: true,
		})
	}
	for _, r := range resolved {
		lines = append(lines, LineResult{
			Category:    r.item.Category.String(),
			Name:        r.item.Name,
			Description: r.item.Description,
			Amount:      round2(r.amount),
			IsOneTime:   r.oneTime,
		})
	}

	return &Quote{
		LineResults:           lines,
		OneTimeSubtotal:       round2(oneTimeSubtotal),
		OneTimeTax:            round2(oneTimeTax),
		OneTimeTotal:          round2(oneTimeTotal),
		RecurringSubtotalBase: round2(recurringBase),
		AdjustmentAmount:      round2(adjustment),
		AdjustmentPct:         adjustmentPct,
		ManualDiscountAmount:  round2(manualDiscount),
		RecurringNet:          round2(recurringNet),
		RecurringTax:          round2(recurringTax),
		RecurringTotal:        round2(recurringTotal),
		GrandTotal:            round2(grandTotal),
		InstallmentAmount:     round2(installmentAmount),
		InstallmentCount:      installments,
		IsFinanced:            isFinanced,
	}, nil
}

// catalogPrice returns the item's catalog contribution for its pricing
// mode, before any override is applied.
func catalogPrice(item entity.LineItem, volume decimal.Decimal) decimal.Decimal {
	switch item.PricingMode {
	case enum.PricingModeFixedRecurring:
		return decimal.NewFromFloat(item.AnnualPrice)
	case enum.PricingModeVolumeBased:
		return decimal.NewFromFloat(item.UnitPrice).Mul(volume)
	case enum.PricingModeOneTime:
		return decimal.NewFromFloat(item.OneTimePrice)
	}
	return decimal.Zero
}

// isOneTime classifies an item into the one-time bucket. Volume-based
// items are recurring unless the catalog flags them as billed once.
func isOneTime(item entity.LineItem) bool {
	if item.PricingMode == enum.PricingModeOneTime {
		return true
	}
	return item.PricingMode == enum.PricingModeVolumeBased && item.BilledOnce
}

// planAdjustment applies the financing plan's discount or surcharge to
// the recurring base. The discount is returned negative; the caller
// inverts the sign for "savings" display.
func planAdjustment(base decimal.Decimal, cfg Config) (decimal.Decimal, float64) {
	rate := decimal.NewFromFloat(cfg.AdjustmentRatePct)
	switch cfg.AdjustmentType {
	case enum.AdjustmentTypeDiscount:
		return base.Mul(rate).Div(oneHundred).Neg(), cfg.AdjustmentRatePct
	case enum.AdjustmentTypeSurcharge:
		return base.Mul(rate).Div(oneHundred), cfg.AdjustmentRatePct
	}
	return decimal.Zero, 0
}

func validate(in Input) error {
	if in.Volume < 0 {
		return fmt.Errorf("%w: %d", ErrNegativeVolume, in.Volume)
	}
	cfg := in.Config
	if cfg.AdjustmentRatePct < 0 || cfg.ManualDiscountPct < 0 || cfg.VATPct < 0 {
		return ErrNegativePercentage
	}
	if cfg.InstallmentCount < 0 {
		return fmt.Errorf("%w: %d", ErrInvalidInstallments, cfg.InstallmentCount)
	}
	if !cfg.AdjustmentType.IsValid() {
		return fmt.Errorf("%w: %d", ErrUnknownAdjustment, int(cfg.AdjustmentType))
	}
	for _, item := range in.Items {
		if !item.PricingMode.IsValid() {
			return fmt.Errorf("%w: item %q has mode %d", ErrUnknownPricingMode, item.Name, int(item.PricingMode))
		}
	}
	return nil
}

// round2 rounds a monetary amount to two decimal places, half up. This
// is the single rounding point of the engine: intermediate values stay
// exact decimals.
func round2(d decimal.Decimal) float64 {
	return d.Round(2).InexactFloat64()
}
