package pricing

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/facturalink/cotizador-api/internal/domain/entity"
	"github.com/facturalink/cotizador-api/internal/domain/enum"
)

func basicPackage() *entity.Package {
	return &entity.Package{
		ID:                 uuid.New(),
		Name:               "Emprendedor",
		AnnualPrice:        1200,
		MonthlyPrice:       100,
		ImplementationCost: 300,
		DTECapacity:        500,
	}
}

func baseConfig() Config {
	return Config{
		PaymentMode:      enum.PaymentModeAnnual,
		InstallmentCount: 1,
		AdjustmentType:   enum.AdjustmentTypeNone,
		VATPct:           13,
	}
}

func TestComputeAnnualPackageOnly(t *testing.T) {
	quote, err := Compute(Input{
		Package: basicPackage(),
		Volume:  400,
		Config:  baseConfig(),
	})
	require.NoError(t, err)
	require.NotNil(t, quote)

	assert.Equal(t, 1200.0, quote.RecurringSubtotalBase)
	assert.Equal(t, 1200.0, quote.RecurringNet)
	assert.Equal(t, 156.0, quote.RecurringTax)
	assert.Equal(t, 1356.0, quote.RecurringTotal)
	assert.Equal(t, 0.0, quote.OneTimeSubtotal)
	assert.Equal(t, 1356.0, quote.GrandTotal)
	assert.Equal(t, 1356.0, quote.InstallmentAmount)
	assert.Equal(t, 1, quote.InstallmentCount)
	assert.False(t, quote.IsFinanced)
}

func TestComputeWithImplementation(t *testing.T) {
	cfg := baseConfig()
	cfg.IncludeImplementation = true

	quote, err := Compute(Input{Package: basicPackage(), Volume: 400, Config: cfg})
	require.NoError(t, err)
	require.NotNil(t, quote)

	assert.Equal(t, 300.0, quote.OneTimeSubtotal)
	assert.Equal(t, 39.0, quote.OneTimeTax)
	assert.Equal(t, 339.0, quote.OneTimeTotal)
	assert.Equal(t, 1356.0, quote.RecurringTotal)
	assert.Equal(t, 1695.0, quote.GrandTotal)
}

func TestComputePlanDiscount(t *testing.T) {
	cfg := baseConfig()
	cfg.AdjustmentType = enum.AdjustmentTypeDiscount
	cfg.AdjustmentRatePct = 10

	quote, err := Compute(Input{Package: basicPackage(), Volume: 400, Config: cfg})
	require.NoError(t, err)
	require.NotNil(t, quote)

	assert.Equal(t, -120.0, quote.AdjustmentAmount)
	assert.Equal(t, 10.0, quote.AdjustmentPct)
	assert.Equal(t, 1080.0, quote.RecurringNet)
	assert.Equal(t, 140.40, quote.RecurringTax)
	assert.Equal(t, 1220.40, quote.RecurringTotal)
	assert.False(t, quote.IsFinanced)
}

func TestComputePlanSurchargeWithInstallments(t *testing.T) {
	cfg := baseConfig()
	cfg.AdjustmentType = enum.AdjustmentTypeSurcharge
	cfg.AdjustmentRatePct = 20
	cfg.InstallmentCount = 12

	quote, err := Compute(Input{Package: basicPackage(), Volume: 400, Config: cfg})
	require.NoError(t, err)
	require.NotNil(t, quote)

	assert.Equal(t, 240.0, quote.AdjustmentAmount)
	assert.Equal(t, 1440.0, quote.RecurringNet)
	assert.Equal(t, 187.20, quote.RecurringTax)
	assert.Equal(t, 1627.20, quote.RecurringTotal)
	assert.Equal(t, 135.60, quote.InstallmentAmount)
	assert.Equal(t, 12, quote.InstallmentCount)
	assert.True(t, quote.IsFinanced)
}

func TestComputeManualDiscount(t *testing.T) {
	cfg := baseConfig()
	cfg.ManualDiscountPct = 5

	quote, err := Compute(Input{Package: basicPackage(), Volume: 400, Config: cfg})
	require.NoError(t, err)
	require.NotNil(t, quote)

	assert.Equal(t, 60.0, quote.ManualDiscountAmount)
	assert.Equal(t, 1140.0, quote.RecurringNet)
}

func TestComputeManualDiscountDoesNotCompoundWithPlan(t *testing.T) {
	// Both reductions come off the untouched base: 1200 - 120 - 60,
	// not (1200 - 120) * 0.95.
	cfg := baseConfig()
	cfg.AdjustmentType = enum.AdjustmentTypeDiscount
	cfg.AdjustmentRatePct = 10
	cfg.ManualDiscountPct = 5

	quote, err := Compute(Input{Package: basicPackage(), Volume: 400, Config: cfg})
	require.NoError(t, err)
	require.NotNil(t, quote)

	assert.Equal(t, -120.0, quote.AdjustmentAmount)
	assert.Equal(t, 60.0, quote.ManualDiscountAmount)
	assert.Equal(t, 1020.0, quote.RecurringNet)
}

func TestComputeOverDiscountClampsAtZero(t *testing.T) {
	cfg := baseConfig()
	cfg.AdjustmentType = enum.AdjustmentTypeDiscount
	cfg.AdjustmentRatePct = 60
	cfg.ManualDiscountPct = 50

	quote, err := Compute(Input{Package: basicPackage(), Volume: 400, Config: cfg})
	require.NoError(t, err)
	require.NotNil(t, quote)

	assert.Equal(t, 0.0, quote.RecurringNet)
	assert.Equal(t, 0.0, quote.RecurringTax)
	assert.Equal(t, 0.0, quote.RecurringTotal)
}

func TestComputeZeroOverrideBeatsCatalogDefault(t *testing.T) {
	pkg := basicPackage()
	item := entity.LineItem{
		ID:          uuid.New(),
		Category:    enum.ItemCategoryModule,
		Name:        "Sucursales",
		PricingMode: enum.PricingModeFixedRecurring,
		AnnualPrice: 500,
	}
	overrides := OverrideMap{ItemOverrideKey(item.ID): 0}

	quote, err := Compute(Input{
		Package:   pkg,
		Items:     []entity.LineItem{item},
		Volume:    400,
		Config:    baseConfig(),
		Overrides: overrides,
	})
	require.NoError(t, err)
	require.NotNil(t, quote)

	// The item's 500 must not leak back in because the override is 0.
	assert.Equal(t, 1200.0, quote.RecurringSubtotalBase)
	require.Len(t, quote.LineResults, 2)
	assert.Equal(t, 0.0, quote.LineResults[1].Amount)
}

func TestComputePackageOverride(t *testing.T) {
	pkg := basicPackage()
	overrides := OverrideMap{PackageOverrideKey(pkg.ID): 1000}

	quote, err := Compute(Input{Package: pkg, Volume: 400, Config: baseConfig(), Overrides: overrides})
	require.NoError(t, err)
	require.NotNil(t, quote)

	assert.Equal(t, 1000.0, quote.RecurringSubtotalBase)
	assert.Equal(t, 1000.0, quote.LineResults[0].Amount)
}

func TestComputeVolumeBasedItem(t *testing.T) {
	item := entity.LineItem{
		ID:          uuid.New(),
		Category:    enum.ItemCategoryService,
		Name:        "DTE adicionales",
		PricingMode: enum.PricingModeVolumeBased,
		UnitPrice:   0.25,
	}

	quote, err := Compute(Input{
		Package: basicPackage(),
		Items:   []entity.LineItem{item},
		Volume:  400,
		Config:  baseConfig(),
	})
	require.NoError(t, err)
	require.NotNil(t, quote)

	// 0.25 * 400 lands in the recurring bucket.
	assert.Equal(t, 1300.0, quote.RecurringSubtotalBase)
	assert.Equal(t, 0.0, quote.OneTimeSubtotal)
}

func TestComputeVolumeBasedOverrideReplacesComputedValue(t *testing.T) {
	item := entity.LineItem{
		ID:          uuid.New(),
		Category:    enum.ItemCategoryService,
		Name:        "DTE adicionales",
		PricingMode: enum.PricingModeVolumeBased,
		UnitPrice:   0.25,
	}
	overrides := OverrideMap{ItemOverrideKey(item.ID): 80}

	quote, err := Compute(Input{
		Package:   basicPackage(),
		Items:     []entity.LineItem{item},
		Volume:    400,
		Config:    baseConfig(),
		Overrides: overrides,
	})
	require.NoError(t, err)
	require.NotNil(t, quote)

	assert.Equal(t, 1280.0, quote.RecurringSubtotalBase)
}

func TestComputeBilledOnceVolumeItemIsOneTime(t *testing.T) {
	item := entity.LineItem{
		ID:          uuid.New(),
		Category:    enum.ItemCategoryService,
		Name:        "Personalización de formatos",
		PricingMode: enum.PricingModeVolumeBased,
		UnitPrice:   0.50,
		BilledOnce:  true,
	}

	quote, err := Compute(Input{
		Package: basicPackage(),
		Items:   []entity.LineItem{item},
		Volume:  400,
		Config:  baseConfig(),
	})
	require.NoError(t, err)
	require.NotNil(t, quote)

	assert.Equal(t, 200.0, quote.OneTimeSubtotal)
	assert.Equal(t, 1200.0, quote.RecurringSubtotalBase)
	require.Len(t, quote.LineResults, 2)
	assert.True(t, quote.LineResults[1].IsOneTime)
}

func TestComputeOneTimeItemsCarrySeparateTax(t *testing.T) {
	item := entity.LineItem{
		ID:           uuid.New(),
		Category:     enum.ItemCategoryService,
		Name:         "Capacitación",
		PricingMode:  enum.PricingModeOneTime,
		OneTimePrice: 150,
	}

	quote, err := Compute(Input{
		Package: basicPackage(),
		Items:   []entity.LineItem{item},
		Volume:  400,
		Config:  baseConfig(),
	})
	require.NoError(t, err)
	require.NotNil(t, quote)

	assert.Equal(t, 150.0, quote.OneTimeSubtotal)
	assert.Equal(t, 19.50, quote.OneTimeTax)
	assert.Equal(t, 169.50, quote.OneTimeTotal)
	assert.Equal(t, 156.0, quote.RecurringTax)
}

func TestComputeNilPackageReturnsNilNotError(t *testing.T) {
	quote, err := Compute(Input{Volume: 0, Config: baseConfig()})
	require.NoError(t, err)
	assert.Nil(t, quote)
}

func TestComputeInstallmentCountZeroClampsToOne(t *testing.T) {
	cfg := baseConfig()
	cfg.InstallmentCount = 0

	quote, err := Compute(Input{Package: basicPackage(), Volume: 400, Config: cfg})
	require.NoError(t, err)
	require.NotNil(t, quote)

	assert.Equal(t, 1, quote.InstallmentCount)
	assert.Equal(t, quote.RecurringTotal, quote.InstallmentAmount)
}

func TestComputeInvalidInputs(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Input)
		wantErr error
	}{
		{
			name:    "negative volume",
			mutate:  func(in *Input) { in.Volume = -1 },
			wantErr: ErrNegativeVolume,
		},
		{
			name:    "negative manual discount",
			mutate:  func(in *Input) { in.Config.ManualDiscountPct = -5 },
			wantErr: ErrNegativePercentage,
		},
		{
			name:    "negative vat",
			mutate:  func(in *Input) { in.Config.VATPct = -13 },
			wantErr: ErrNegativePercentage,
		},
		{
			name:    "negative installments",
			mutate:  func(in *Input) { in.Config.InstallmentCount = -3 },
			wantErr: ErrInvalidInstallments,
		},
		{
			name: "unknown pricing mode",
			mutate: func(in *Input) {
				in.Items = []entity.LineItem{{Name: "broken", PricingMode: enum.PricingMode(9)}}
			},
			wantErr: ErrUnknownPricingMode,
		},
		{
			name:    "unknown adjustment type",
			mutate:  func(in *Input) { in.Config.AdjustmentType = enum.AdjustmentType(7) },
			wantErr: ErrUnknownAdjustment,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := Input{Package: basicPackage(), Volume: 400, Config: baseConfig()}
			tt.mutate(&in)
			quote, err := Compute(in)
			assert.Nil(t, quote)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestComputeIsPure(t *testing.T) {
	cfg := baseConfig()
	cfg.IncludeImplementation = true
	cfg.AdjustmentType = enum.AdjustmentTypeSurcharge
	cfg.AdjustmentRatePct = 15
	cfg.InstallmentCount = 6
	cfg.ManualDiscountPct = 3

	in := Input{
		Package: basicPackage(),
		Items: []entity.LineItem{
			{ID: uuid.New(), Name: "Sucursales", PricingMode: enum.PricingModeFixedRecurring, AnnualPrice: 500},
			{ID: uuid.New(), Name: "Capacitación", PricingMode: enum.PricingModeOneTime, OneTimePrice: 150},
		},
		Volume:    750,
		Config:    cfg,
		Overrides: OverrideMap{ImplementationOverrideKey: 250},
	}

	first, err := Compute(in)
	require.NoError(t, err)
	second, err := Compute(in)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestComputeGrandTotalIsExactBucketSum(t *testing.T) {
	// Awkward percentages that force rounding at the bucket totals.
	cfg := baseConfig()
	cfg.IncludeImplementation = true
	cfg.VATPct = 12.5
	cfg.ManualDiscountPct = 3.33
	cfg.AdjustmentType = enum.AdjustmentTypeDiscount
	cfg.AdjustmentRatePct = 7.77

	pkg := basicPackage()
	pkg.AnnualPrice = 999.99
	pkg.ImplementationCost = 123.45

	quote, err := Compute(Input{
		Package: pkg,
		Items: []entity.LineItem{
			{ID: uuid.New(), Name: "DTE adicionales", PricingMode: enum.PricingModeVolumeBased, UnitPrice: 0.0333},
		},
		Volume: 777,
		Config: cfg,
	})
	require.NoError(t, err)
	require.NotNil(t, quote)

	assert.Equal(t, quote.OneTimeTotal+quote.RecurringTotal, quote.GrandTotal)
}

func TestComputeLineResultOrder(t *testing.T) {
	cfg := baseConfig()
	cfg.IncludeImplementation = true

	items := []entity.LineItem{
		{ID: uuid.New(), Category: enum.ItemCategoryModule, Name: "Sucursales", PricingMode: enum.PricingModeFixedRecurring, AnnualPrice: 500},
		{ID: uuid.New(), Category: enum.ItemCategoryService, Name: "Capacitación", PricingMode: enum.PricingModeOneTime, OneTimePrice: 150},
	}

	quote, err := Compute(Input{Package: basicPackage(), Items: items, Volume: 400, Config: cfg})
	require.NoError(t, err)
	require.NotNil(t, quote)

	require.Len(t, quote.LineResults, 4)
	assert.Equal(t, "Package", quote.LineResults[0].Category)
	assert.Equal(t, "Implementation", quote.LineResults[1].Category)
	assert.Equal(t, "Sucursales", quote.LineResults[2].Name)
	assert.Equal(t, "Capacitación", quote.LineResults[3].Name)
	assert.True(t, quote.LineResults[3].IsOneTime)
}

func TestComputeImplementationRowOmittedWhenZero(t *testing.T) {
	cfg := baseConfig()
	cfg.IncludeImplementation = true

	quote, err := Compute(Input{
		Package:   basicPackage(),
		Volume:    400,
		Config:    cfg,
		Overrides: OverrideMap{ImplementationOverrideKey: 0},
	})
	require.NoError(t, err)
	require.NotNil(t, quote)

	assert.Equal(t, 0.0, quote.OneTimeSubtotal)
	require.Len(t, quote.LineResults, 1)
	assert.Equal(t, "Package", quote.LineResults[0].Category)
}
