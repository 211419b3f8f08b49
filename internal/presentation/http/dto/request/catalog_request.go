package request

// CreatePackageRequest represents a package tier creation request
type CreatePackageRequest struct {
	Name               string  `json:"name" binding:"required,min=2,max=255"`
	AnnualPrice        float64 `json:"annual_price" binding:"min=0"`
	MonthlyPrice       float64 `json:"monthly_price" binding:"min=0"`
	ImplementationCost float64 `json:"implementation_cost" binding:"min=0"`
	DTECapacity        int     `json:"dte_capacity" binding:"required,min=1"`
	DisplayOrder       int     `json:"display_order" binding:"min=0"`
	IsActive           *bool   `json:"is_active"`
}

// UpdatePackageRequest represents a package tier update request
type UpdatePackageRequest struct {
	Name               *string  `json:"name" binding:"omitempty,min=2,max=255"`
	AnnualPrice        *float64 `json:"annual_price" binding:"omitempty,min=0"`
	MonthlyPrice       *float64 `json:"monthly_price" binding:"omitempty,min=0"`
	ImplementationCost *float64 `json:"implementation_cost" binding:"omitempty,min=0"`
	DTECapacity        *int     `json:"dte_capacity" binding:"omitempty,min=1"`
	DisplayOrder       *int     `json:"display_order" binding:"omitempty,min=0"`
	IsActive           *bool    `json:"is_active"`
}

// CreateLineItemRequest represents a catalog item creation request
type CreateLineItemRequest struct {
	Category     int     `json:"category" binding:"min=0,max=1"`
	Name         string  `json:"name" binding:"required,min=2,max=255"`
	Description  string  `json:"description"`
	PricingMode  int     `json:"pricing_mode" binding:"min=0,max=2"`
	AnnualPrice  float64 `json:"annual_price" binding:"min=0"`
	MonthlyPrice float64 `json:"monthly_price" binding:"min=0"`
	OneTimePrice float64 `json:"one_time_price" binding:"min=0"`
	UnitPrice    float64 `json:"unit_price" binding:"min=0"`
	BilledOnce   bool    `json:"billed_once"`
	DisplayOrder int     `json:"display_order" binding:"min=0"`
	IsActive     *bool   `json:"is_active"`
}

// UpdateLineItemRequest represents a catalog item update request
type UpdateLineItemRequest struct {
	Name         *string  `json:"name" binding:"omitempty,min=2,max=255"`
	Description  *string  `json:"description"`
	PricingMode  *int     `json:"pricing_mode" binding:"omitempty,min=0,max=2"`
	AnnualPrice  *float64 `json:"annual_price" binding:"omitempty,min=0"`
	MonthlyPrice *float64 `json:"monthly_price" binding:"omitempty,min=0"`
	OneTimePrice *float64 `json:"one_time_price" binding:"omitempty,min=0"`
	UnitPrice    *float64 `json:"unit_price" binding:"omitempty,min=0"`
	BilledOnce   *bool    `json:"billed_once"`
	DisplayOrder *int     `json:"display_order" binding:"omitempty,min=0"`
	IsActive     *bool    `json:"is_active"`
}

// CreateFinancingPlanRequest represents a financing plan creation request
type CreateFinancingPlanRequest struct {
	Title             string  `json:"title" binding:"required,min=2,max=255"`
	TermMonths        int     `json:"term_months" binding:"required,min=1"`
	InstallmentCount  int     `json:"installment_count" binding:"min=0"`
	AdjustmentType    int     `json:"adjustment_type" binding:"min=0,max=2"`
	AdjustmentRatePct float64 `json:"adjustment_rate_pct" binding:"min=0,max=100"`
	IsPopular         bool    `json:"is_popular"`
	DisplayOrder      int     `json:"display_order" binding:"min=0"`
	ShowBreakdown     bool    `json:"show_breakdown"`
	IsActive          *bool   `json:"is_active"`
}

// UpdateFinancingPlanRequest represents a financing plan update request
type UpdateFinancingPlanRequest struct {
	Title             *string  `json:"title" binding:"omitempty,min=2,max=255"`
	TermMonths        *int     `json:"term_months" binding:"omitempty,min=1"`
	InstallmentCount  *int     `json:"installment_count" binding:"omitempty,min=0"`
	AdjustmentType    *int     `json:"adjustment_type" binding:"omitempty,min=0,max=2"`
	AdjustmentRatePct *float64 `json:"adjustment_rate_pct" binding:"omitempty,min=0,max=100"`
	IsPopular         *bool    `json:"is_popular"`
	DisplayOrder      *int     `json:"display_order" binding:"omitempty,min=0"`
	ShowBreakdown     *bool    `json:"show_breakdown"`
	IsActive          *bool    `json:"is_active"`
}
