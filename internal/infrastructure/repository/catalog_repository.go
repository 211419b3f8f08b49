package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/facturalink/cotizador-api/internal/domain/entity"
	"github.com/facturalink/cotizador-api/internal/domain/enum"
	domainRepo "github.com/facturalink/cotizador-api/internal/domain/repository"
	"gorm.io/gorm"
)

type packageRepository struct {
	db *gorm.DB
}

// NewPackageRepository creates a new package repository
func NewPackageRepository(db *gorm.DB) domainRepo.PackageRepository {
	return &packageRepository{db: db}
}

func (r *packageRepository) Create(ctx context.Context, pkg *entity.Package) error {
	return r.db.WithContext(ctx).Create(pkg).Error
}

func (r *packageRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Package, error) {
	var pkg entity.Package
	err := r.db.WithContext(ctx).Scopes(TenantScope(ctx)).First(&pkg, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &pkg, err
}

func (r *packageRepository) GetBySlug(ctx context.Context, slug string) (*entity.Package, error) {
	var pkg entity.Package
	err := r.db.WithContext(ctx).Scopes(TenantScope(ctx)).First(&pkg, "slug = ?", slug).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &pkg, err
}

func (r *packageRepository) Update(ctx context.Context, pkg *entity.Package) error {
	return r.db.WithContext(ctx).Save(pkg).Error
}

func (r *packageRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Scopes(TenantScope(ctx)).Delete(&entity.Package{}, "id = ?", id).Error
}

func (r *packageRepository) List(ctx context.Context, activeOnly bool) ([]entity.Package, error) {
	var packages []entity.Package
	query := r.db.WithContext(ctx).Scopes(TenantScope(ctx)).Model(&entity.Package{})
	if activeOnly {
		query = query.Where("is_active = ?", true)
	}
	err := query.Order("display_order ASC, dte_capacity ASC").Find(&packages).Error
	return packages, err
}

type lineItemRepository struct {
	db *gorm.DB
}

// NewLineItemRepository creates a new line item repository
func NewLineItemRepository(db *gorm.DB) domainRepo.LineItemRepository {
	return &lineItemRepository{db: db}
}

func (r *lineItemRepository) Create(ctx context.Context, item *entity.LineItem) error {
	return r.db.WithContext(ctx).Create(item).Error
}

func (r *lineItemRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.LineItem, error) {
	var item entity.LineItem
	err := r.db.WithContext(ctx).Scopes(TenantScope(ctx)).First(&item, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &item, err
}

func (r *lineItemRepository) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]entity.LineItem, error) {
	if len(ids) == 0 {
		return []entity.LineItem{}, nil
	}
	var items []entity.LineItem
	err := r.db.WithContext(ctx).Scopes(TenantScope(ctx)).
		Where("id IN ?", ids).
		Order("display_order ASC").
		Find(&items).Error
	return items, err
}

func (r *lineItemRepository) Update(ctx context.Context, item *entity.LineItem) error {
	return r.db.WithContext(ctx).Save(item).Error
}

func (r *lineItemRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Scopes(TenantScope(ctx)).Delete(&entity.LineItem{}, "id = ?", id).Error
}

func (r *lineItemRepository) List(ctx context.Context, category *enum.ItemCategory, activeOnly bool) ([]entity.LineItem, error) {
	var items []entity.LineItem
	query := r.db.WithContext(ctx).Scopes(TenantScope(ctx)).Model(&entity.LineItem{})
	if category != nil {
		query = query.Where("category = ?", *category)
	}
	if activeOnly {
		query = query.Where("is_active = ?", true)
	}
	err := query.Order("display_order ASC, name ASC").Find(&items).Error
	return items, err
}

type financingPlanRepository struct {
	db *gorm.DB
}

// NewFinancingPlanRepository creates a new financing plan repository
func NewFinancingPlanRepository(db *gorm.DB) domainRepo.FinancingPlanRepository {
	return &financingPlanRepository{db: db}
}

func (r *financingPlanRepository) Create(ctx context.Context, plan *entity.FinancingPlan) error {
	return r.db.WithContext(ctx).Create(plan).Error
}

func (r *financingPlanRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.FinancingPlan, error) {
	var plan entity.FinancingPlan
	err := r.db.WithContext(ctx).Scopes(TenantScope(ctx)).First(&plan, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &plan, err
}

func (r *financingPlanRepository) Update(ctx context.Context, plan *entity.FinancingPlan) error {
	return r.db.WithContext(ctx).Save(plan).Error
}

func (r *financingPlanRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Scopes(TenantScope(ctx)).Delete(&entity.FinancingPlan{}, "id = ?", id).Error
}

func (r *financingPlanRepository) List(ctx context.Context, activeOnly bool) ([]entity.FinancingPlan, error) {
	var plans []entity.FinancingPlan
	query := r.db.WithContext(ctx).Scopes(TenantScope(ctx)).Model(&entity.FinancingPlan{})
	if activeOnly {
		query = query.Where("is_active = ?", true)
	}
	err := query.Order("display_order ASC, term_months ASC").Find(&plans).Error
	return plans, err
}
