package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/facturalink/cotizador-api/internal/domain/entity"
	"github.com/facturalink/cotizador-api/internal/domain/enum"
	"github.com/facturalink/cotizador-api/internal/domain/pricing"
	"github.com/facturalink/cotizador-api/internal/domain/repository"
	infraRepo "github.com/facturalink/cotizador-api/internal/infrastructure/repository"
	"github.com/facturalink/cotizador-api/pkg/apperror"
	"github.com/facturalink/cotizador-api/pkg/utils"
)

// CatalogService manages the quoting catalog: package tiers, optional
// modules/services and financing plans
type CatalogService struct {
	packageRepo repository.PackageRepository
	itemRepo    repository.LineItemRepository
	planRepo    repository.FinancingPlanRepository
}

// NewCatalogService creates a new catalog service
func NewCatalogService(
	packageRepo repository.PackageRepository,
	itemRepo repository.LineItemRepository,
	planRepo repository.FinancingPlanRepository,
) *CatalogService {
	return &CatalogService{
		packageRepo: packageRepo,
		itemRepo:    itemRepo,
		planRepo:    planRepo,
	}
}

// CreatePackageInput represents the input for creating a package tier
type CreatePackageInput struct {
	Name               string
	AnnualPrice        float64
	MonthlyPrice       float64
	ImplementationCost float64
	DTECapacity        int
	DisplayOrder       int
	IsActive           bool
}

// CreatePackage creates a new package tier
func (s *CatalogService) CreatePackage(ctx context.Context, input *CreatePackageInput) (*entity.Package, error) {
	tenantID, ok := infraRepo.GetTenantID(ctx)
	if !ok {
		return nil, apperror.NewBadRequestError("Tenant context required")
	}

	if input.AnnualPrice < 0 || input.MonthlyPrice < 0 || input.ImplementationCost < 0 {
		return nil, apperror.NewBadRequestError("Prices must not be negative")
	}
	if input.DTECapacity <= 0 {
		return nil, apperror.NewBadRequestError("DTE capacity must be positive")
	}

	slug := utils.Slugify(input.Name)
	existing, err := s.packageRepo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperror.NewConflictError("A package with this name already exists")
	}

	pkg := &entity.Package{
		TenantID:           tenantID,
		Name:               input.Name,
		Slug:               slug,
		AnnualPrice:        input.AnnualPrice,
		MonthlyPrice:       input.MonthlyPrice,
		ImplementationCost: input.ImplementationCost,
		DTECapacity:        input.DTECapacity,
		DisplayOrder:       input.DisplayOrder,
		IsActive:           input.IsActive,
	}

	if err := s.packageRepo.Create(ctx, pkg); err != nil {
		return nil, err
	}

	return pkg, nil
}

// GetPackage retrieves a package by ID
func (s *CatalogService) GetPackage(ctx context.Context, id uuid.UUID) (*entity.Package, error) {
	pkg, err := s.packageRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if pkg == nil {
		return nil, apperror.NewNotFoundError("Package")
	}
	return pkg, nil
}

// ListPackages lists package tiers in display order
func (s *CatalogService) ListPackages(ctx context.Context, activeOnly bool) ([]entity.Package, error) {
	return s.packageRepo.List(ctx, activeOnly)
}

// SuggestPackage returns the cheapest adequate tier for the given
// monthly document volume
func (s *CatalogService) SuggestPackage(ctx context.Context, volume int) (*entity.Package, error) {
	if volume <= 0 {
		return nil, apperror.NewBadRequestError("Volume must be positive")
	}

	catalog, err := s.packageRepo.List(ctx, true)
	if err != nil {
		return nil, err
	}

	pkg := pricing.SelectPackage(catalog, volume)
	if pkg == nil {
		return nil, apperror.NewNotFoundError("Package")
	}
	return pkg, nil
}

// UpdatePackageInput represents the input for updating a package tier
type UpdatePackageInput struct {
	ID                 uuid.UUID
	Name               *string
	AnnualPrice        *float64
	MonthlyPrice       *float64
	ImplementationCost *float64
	DTECapacity        *int
	DisplayOrder       *int
	IsActive           *bool
}

// UpdatePackage updates a package tier
func (s *CatalogService) UpdatePackage(ctx context.Context, input *UpdatePackageInput) (*entity.Package, error) {
	pkg, err := s.packageRepo.GetByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	if pkg == nil {
		return nil, apperror.NewNotFoundError("Package")
	}

	if input.Name != nil {
		pkg.Name = *input.Name
		pkg.Slug = utils.Slugify(*input.Name)
	}
	if input.AnnualPrice != nil {
		if *input.AnnualPrice < 0 {
			return nil, apperror.NewBadRequestError("Prices must not be negative")
		}
		pkg.AnnualPrice = *input.AnnualPrice
	}
	if input.MonthlyPrice != nil {
		if *input.MonthlyPrice < 0 {
			return nil, apperror.NewBadRequestError("Prices must not be negative")
		}
		pkg.MonthlyPrice = *input.MonthlyPrice
	}
	if input.ImplementationCost != nil {
		if *input.ImplementationCost < 0 {
			return nil, apperror.NewBadRequestError("Prices must not be negative")
		}
		pkg.ImplementationCost = *input.ImplementationCost
	}
	if input.DTECapacity != nil {
		if *input.DTECapacity <= 0 {
			return nil, apperror.NewBadRequestError("DTE capacity must be positive")
		}
		pkg.DTECapacity = *input.DTECapacity
	}
	if input.DisplayOrder != nil {
		pkg.DisplayOrder = *input.DisplayOrder
	}
	if input.IsActive != nil {
		pkg.IsActive = *input.IsActive
	}

	if err := s.packageRepo.Update(ctx, pkg); err != nil {
		return nil, err
	}

	return pkg, nil
}

// DeletePackage deletes a package tier
func (s *CatalogService) DeletePackage(ctx context.Context, id uuid.UUID) error {
	pkg, err := s.packageRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if pkg == nil {
		return apperror.NewNotFoundError("Package")
	}
	return s.packageRepo.Delete(ctx, id)
}

// CreateLineItemInput represents the input for creating a catalog item
type CreateLineItemInput struct {
	Category     enum.ItemCategory
	Name         string
	Description  string
	PricingMode  enum.PricingMode
	AnnualPrice  float64
	MonthlyPrice float64
	OneTimePrice float64
	UnitPrice    float64
	BilledOnce   bool
	DisplayOrder int
	IsActive     bool
}

// CreateLineItem creates a new module or service catalog item
func (s *CatalogService) CreateLineItem(ctx context.Context, input *CreateLineItemInput) (*entity.LineItem, error) {
	tenantID, ok := infraRepo.GetTenantID(ctx)
	if !ok {
		return nil, apperror.NewBadRequestError("Tenant context required")
	}

	if !input.Category.IsValid() {
		return nil, apperror.NewBadRequestError("Invalid item category")
	}
	if !input.PricingMode.IsValid() {
		return nil, apperror.NewBadRequestError("Invalid pricing mode")
	}
	if input.AnnualPrice < 0 || input.MonthlyPrice < 0 || input.OneTimePrice < 0 || input.UnitPrice < 0 {
		return nil, apperror.NewBadRequestError("Prices must not be negative")
	}

	item := &entity.LineItem{
		TenantID:     tenantID,
		Category:     input.Category,
		Name:         input.Name,
		Description:  input.Description,
		PricingMode:  input.PricingMode,
		AnnualPrice:  input.AnnualPrice,
		MonthlyPrice: input.MonthlyPrice,
		OneTimePrice: input.OneTimePrice,
		UnitPrice:    input.UnitPrice,
		BilledOnce:   input.BilledOnce,
		DisplayOrder: input.DisplayOrder,
		IsActive:     input.IsActive,
	}

	if err := s.itemRepo.Create(ctx, item); err != nil {
		return nil, err
	}

	return item, nil
}

// GetLineItem retrieves a catalog item by ID
func (s *CatalogService) GetLineItem(ctx context.Context, id uuid.UUID) (*entity.LineItem, error) {
	item, err := s.itemRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, apperror.NewNotFoundError("Line item")
	}
	return item, nil
}

// ListLineItems lists catalog items, optionally filtered by category
func (s *CatalogService) ListLineItems(ctx context.Context, category *enum.ItemCategory, activeOnly bool) ([]entity.LineItem, error) {
	if category != nil && !category.IsValid() {
		return nil, apperror.NewBadRequestError("Invalid item category")
	}
	return s.itemRepo.List(ctx, category, activeOnly)
}

// UpdateLineItemInput represents the input for updating a catalog item
type UpdateLineItemInput struct {
	ID           uuid.UUID
	Name         *string
	Description  *string
	PricingMode  *enum.PricingMode
	AnnualPrice  *float64
	MonthlyPrice *float64
	OneTimePrice *float64
	UnitPrice    *float64
	BilledOnce   *bool
	DisplayOrder *int
	IsActive     *bool
}

// UpdateLineItem updates a catalog item
func (s *CatalogService) UpdateLineItem(ctx context.Context, input *UpdateLineItemInput) (*entity.LineItem, error) {
	item, err := s.itemRepo.GetByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, apperror.NewNotFoundError("Line item")
	}

	if input.Name != nil {
		item.Name = *input.Name
	}
	if input.Description != nil {
		item.Description = *input.Description
	}
	if input.PricingMode != nil {
		if !input.PricingMode.IsValid() {
			return nil, apperror.NewBadRequestError("Invalid pricing mode")
		}
		item.PricingMode = *input.PricingMode
	}
	if input.AnnualPrice != nil {
		if *input.AnnualPrice < 0 {
			return nil, apperror.NewBadRequestError("Prices must not be negative")
		}
		item.AnnualPrice = *input.AnnualPrice
	}
	if input.MonthlyPrice != nil {
		if *input.MonthlyPrice < 0 {
			return nil, apperror.NewBadRequestError("Prices must not be negative")
		}
		item.MonthlyPrice = *input.MonthlyPrice
	}
	if input.OneTimePrice != nil {
		if *input.OneTimePrice < 0 {
			return nil, apperror.NewBadRequestError("Prices must not be negative")
		}
		item.OneTimePrice = *input.OneTimePrice
	}
	if input.UnitPrice != nil {
		if *input.UnitPrice < 0 {
			return nil, apperror.NewBadRequestError("Prices must not be negative")
		}
		item.UnitPrice = *input.UnitPrice
	}
	if input.BilledOnce != nil {
		item.BilledOnce = *input.BilledOnce
	}
	if input.DisplayOrder != nil {
		item.DisplayOrder = *input.DisplayOrder
	}
	if input.IsActive != nil {
		item.IsActive = *input.IsActive
	}

	if err := s.itemRepo.Update(ctx, item); err != nil {
		return nil, err
	}

	return item, nil
}

// DeleteLineItem deletes a catalog item
func (s *CatalogService) DeleteLineItem(ctx context.Context, id uuid.UUID) error {
	item, err := s.itemRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if item == nil {
		return apperror.NewNotFoundError("Line item")
	}
	return s.itemRepo.Delete(ctx, id)
}

// CreateFinancingPlanInput represents the input for creating a financing plan
type CreateFinancingPlanInput struct {
	Title             string
	TermMonths        int
	InstallmentCount  int
	AdjustmentType    enum.AdjustmentType
	AdjustmentRatePct float64
	IsPopular         bool
	DisplayOrder      int
	ShowBreakdown     bool
	IsActive          bool
}

// CreateFinancingPlan creates a new financing plan
func (s *CatalogService) CreateFinancingPlan(ctx context.Context, input *CreateFinancingPlanInput) (*entity.FinancingPlan, error) {
	tenantID, ok := infraRepo.GetTenantID(ctx)
	if !ok {
		return nil, apperror.NewBadRequestError("Tenant context required")
	}

	if !input.AdjustmentType.IsValid() {
		return nil, apperror.NewBadRequestError("Invalid adjustment type")
	}
	if input.AdjustmentRatePct < 0 {
		return nil, apperror.NewBadRequestError("Adjustment rate must not be negative")
	}
	if input.InstallmentCount < 0 {
		return nil, apperror.NewBadRequestError("Installment count must not be negative")
	}

	plan := &entity.FinancingPlan{
		TenantID:          tenantID,
		Title:             input.Title,
		TermMonths:        input.TermMonths,
		InstallmentCount:  input.InstallmentCount,
		AdjustmentType:    input.AdjustmentType,
		AdjustmentRatePct: input.AdjustmentRatePct,
		IsPopular:         input.IsPopular,
		DisplayOrder:      input.DisplayOrder,
		ShowBreakdown:     input.ShowBreakdown,
		IsActive:          input.IsActive,
	}

	if err := s.planRepo.Create(ctx, plan); err != nil {
		return nil, err
	}

	return plan, nil
}

// GetFinancingPlan retrieves a financing plan by ID
func (s *CatalogService) GetFinancingPlan(ctx context.Context, id uuid.UUID) (*entity.FinancingPlan, error) {
	plan, err := s.planRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if plan == nil {
		return nil, apperror.NewNotFoundError("Financing plan")
	}
	return plan, nil
}

// ListFinancingPlans lists financing plans in display order
func (s *CatalogService) ListFinancingPlans(ctx context.Context, activeOnly bool) ([]entity.FinancingPlan, error) {
	return s.planRepo.List(ctx, activeOnly)
}

// UpdateFinancingPlanInput represents the input for updating a financing plan
type UpdateFinancingPlanInput struct {
	ID                uuid.UUID
	Title             *string
	TermMonths        *int
	InstallmentCount  *int
	AdjustmentType    *enum.AdjustmentType
	AdjustmentRatePct *float64
	IsPopular         *bool
	DisplayOrder      *int
	ShowBreakdown     *bool
	IsActive          *bool
}

// UpdateFinancingPlan updates a financing plan
func (s *CatalogService) UpdateFinancingPlan(ctx context.Context, input *UpdateFinancingPlanInput) (*entity.FinancingPlan, error) {
	plan, err := s.planRepo.GetByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	if plan == nil {
		return nil, apperror.NewNotFoundError("Financing plan")
	}

	if input.Title != nil {
		plan.Title = *input.Title
	}
	if input.TermMonths != nil {
		plan.TermMonths = *input.TermMonths
	}
	if input.InstallmentCount != nil {
		if *input.InstallmentCount < 0 {
			return nil, apperror.NewBadRequestError("Installment count must not be negative")
		}
		plan.InstallmentCount = *input.InstallmentCount
	}
	if input.AdjustmentType != nil {
		if !input.AdjustmentType.IsValid() {
			return nil, apperror.NewBadRequestError("Invalid adjustment type")
		}
		plan.AdjustmentType = *input.AdjustmentType
	}
	if input.AdjustmentRatePct != nil {
		if *input.AdjustmentRatePct < 0 {
			return nil, apperror.NewBadRequestError("Adjustment rate must not be negative")
		}
		plan.AdjustmentRatePct = *input.AdjustmentRatePct
	}
	if input.IsPopular != nil {
		plan.IsPopular = *input.IsPopular
	}
	if input.DisplayOrder != nil {
		plan.DisplayOrder = *input.DisplayOrder
	}
	if input.ShowBreakdown != nil {
		plan.ShowBreakdown = *input.ShowBreakdown
	}
	if input.IsActive != nil {
		plan.IsActive = *input.IsActive
	}

	if err := s.planRepo.Update(ctx, plan); err != nil {
		return nil, err
	}

	return plan, nil
}

// DeleteFinancingPlan deletes a financing plan
func (s *CatalogService) DeleteFinancingPlan(ctx context.Context, id uuid.UUID) error {
	plan, err := s.planRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if plan == nil {
		return apperror.NewNotFoundError("Financing plan")
	}
	return s.planRepo.Delete(ctx, id)
}
