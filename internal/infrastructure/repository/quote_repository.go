package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/facturalink/cotizador-api/internal/domain/entity"
	"github.com/facturalink/cotizador-api/internal/domain/enum"
	domainRepo "github.com/facturalink/cotizador-api/internal/domain/repository"
	"gorm.io/gorm"
)

type quoteRepository struct {
	db *gorm.DB
}

// NewQuoteRepository creates a new quote repository
func NewQuoteRepository(db *gorm.DB) domainRepo.QuoteRepository {
	return &quoteRepository{db: db}
}

// Create persists the quote and its detail rows in a single transaction;
// GORM cascades the Details association on create.
func (r *quoteRepository) Create(ctx context.Context, quote *entity.Quote) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(quote).Error
	})
}

func (r *quoteRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Quote, error) {
	var quote entity.Quote
	err := r.db.WithContext(ctx).Scopes(TenantScope(ctx)).
		Preload("Details", func(db *gorm.DB) *gorm.DB {
			return db.Order("quote_details.sort_order ASC")
		}).
		Preload("Lead").
		Preload("Customer").
		Preload("FinancingPlan").
		First(&quote, "quotes.id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &quote, err
}

func (r *quoteRepository) GetByReference(ctx context.Context, reference string) (*entity.Quote, error) {
	var quote entity.Quote
	err := r.db.WithContext(ctx).Scopes(TenantScope(ctx)).
		Preload("Details", func(db *gorm.DB) *gorm.DB {
			return db.Order("quote_details.sort_order ASC")
		}).
		First(&quote, "reference = ?", reference).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &quote, err
}

func (r *quoteRepository) Update(ctx context.Context, quote *entity.Quote) error {
	return r.db.WithContext(ctx).Save(quote).Error
}

func (r *quoteRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Scopes(TenantScope(ctx)).Delete(&entity.Quote{}, "id = ?", id).Error
}

func (r *quoteRepository) List(ctx context.Context, params *domainRepo.QuoteFilterParams) ([]entity.Quote, int64, error) {
	var quotes []entity.Quote
	var total int64

	query := r.db.WithContext(ctx).Scopes(TenantScope(ctx)).Model(&entity.Quote{})

	if params.Search != "" {
		query = query.Where("reference ILIKE ? OR customer_name ILIKE ? OR package_name ILIKE ?",
			"%"+params.Search+"%", "%"+params.Search+"%", "%"+params.Search+"%")
	}

	if params.Status != nil {
		query = query.Where("status = ?", *params.Status)
	}

	if params.LeadID != nil {
		query = query.Where("lead_id = ?", *params.LeadID)
	}

	if params.CustomerID != nil {
		query = query.Where("customer_id = ?", *params.CustomerID)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	// Sorting
	sortBy := "created_at"
	sortOrder := "DESC"
	if params.SortBy != "" {
		sortBy = params.SortBy
	}
	if params.SortOrder != "" && (params.SortOrder == "ASC" || params.SortOrder == "asc") {
		sortOrder = "ASC"
	}

	params.Pagination.Validate()
	err := query.Offset(params.Pagination.Offset()).Limit(params.Pagination.PerPage).
		Preload("Lead").
		Order(sortBy + " " + sortOrder).
		Find(&quotes).Error

	return quotes, total, err
}

func (r *quoteRepository) ListByLead(ctx context.Context, leadID uuid.UUID) ([]entity.Quote, error) {
	var quotes []entity.Quote
	err := r.db.WithContext(ctx).Scopes(TenantScope(ctx)).
		Where("lead_id = ?", leadID).
		Order("created_at DESC").
		Find(&quotes).Error
	return quotes, err
}

func (r *quoteRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status enum.QuoteStatus) error {
	return r.db.WithContext(ctx).Scopes(TenantScope(ctx)).
		Model(&entity.Quote{}).
		Where("id = ?", id).
		Update("status", status).Error
}

// GetNextReferenceNumber counts the tenant's quotes including
// soft-deleted ones so references are never reissued.
func (r *quoteRepository) GetNextReferenceNumber(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Unscoped().Scopes(TenantScope(ctx)).
		Model(&entity.Quote{}).
		Count(&count).Error
	return count + 1, err
}

func (r *quoteRepository) ExpireStale(ctx context.Context) (int64, error) {
	result := r.db.WithContext(ctx).Scopes(TenantScope(ctx)).
		Model(&entity.Quote{}).
		Where("status = ? AND valid_until IS NOT NULL AND valid_until < ?", enum.QuoteStatusSent, time.Now()).
		Update("status", enum.QuoteStatusExpired)
	return result.RowsAffected, result.Error
}
