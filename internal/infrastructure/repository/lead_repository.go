package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/facturalink/cotizador-api/internal/domain/entity"
	"github.com/facturalink/cotizador-api/internal/domain/enum"
	domainRepo "github.com/facturalink/cotizador-api/internal/domain/repository"
	"github.com/facturalink/cotizador-api/pkg/pagination"
	"gorm.io/gorm"
)

type leadRepository struct {
	db *gorm.DB
}

// NewLeadRepository creates a new lead repository
func NewLeadRepository(db *gorm.DB) domainRepo.LeadRepository {
	return &leadRepository{db: db}
}

func (r *leadRepository) Create(ctx context.Context, lead *entity.Lead) error {
	return r.db.WithContext(ctx).Create(lead).Error
}

func (r *leadRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Lead, error) {
	var lead entity.Lead
	err := r.db.WithContext(ctx).Scopes(TenantScope(ctx)).First(&lead, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &lead, err
}

func (r *leadRepository) GetByEmail(ctx context.Context, email string) (*entity.Lead, error) {
	var lead entity.Lead
	err := r.db.WithContext(ctx).Scopes(TenantScope(ctx)).First(&lead, "email = ?", email).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &lead, err
}

func (r *leadRepository) Update(ctx context.Context, lead *entity.Lead) error {
	return r.db.WithContext(ctx).Save(lead).Error
}

func (r *leadRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Scopes(TenantScope(ctx)).Delete(&entity.Lead{}, "id = ?", id).Error
}

func (r *leadRepository) List(ctx context.Context, params *domainRepo.LeadFilterParams) ([]entity.Lead, int64, error) {
	var leads []entity.Lead
	var total int64

	query := r.db.WithContext(ctx).Scopes(TenantScope(ctx)).Model(&entity.Lead{})

	if params.Search != "" {
		query = query.Where("name ILIKE ? OR company ILIKE ? OR email ILIKE ?",
			"%"+params.Search+"%", "%"+params.Search+"%", "%"+params.Search+"%")
	}

	if params.Stage != nil {
		query = query.Where("stage = ?", *params.Stage)
	}

	if params.Source != "" {
		query = query.Where("source = ?", params.Source)
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
		Order(sortBy + " " + sortOrder).
		Find(&leads).Error

	return leads, total, err
}

// ListWithCursor returns leads using cursor-based pagination
// Fetches limit+1 items to detect if there are more results
func (r *leadRepository) ListWithCursor(ctx context.Context, params *domainRepo.LeadCursorFilterParams) ([]entity.Lead, error) {
	var leads []entity.Lead

	params.Cursor.Validate()
	query := r.db.WithContext(ctx).Scopes(TenantScope(ctx)).Model(&entity.Lead{})

	if params.Search != "" {
		query = query.Where("name ILIKE ? OR company ILIKE ? OR email ILIKE ?",
			"%"+params.Search+"%", "%"+params.Search+"%", "%"+params.Search+"%")
	}

	if params.Stage != nil {
		query = query.Where("stage = ?", *params.Stage)
	}

	if params.Source != "" {
		query = query.Where("source = ?", params.Source)
	}

	cursor, err := params.Cursor.DecodeCursor()
	if err != nil {
		return nil, err
	}

	// Apply cursor-based filtering using created_at and id
	if cursor != nil {
		if params.Cursor.Direction == pagination.CursorDirectionNext {
			query = query.Where("(created_at, id) > (?, ?)", cursor.CreatedAt, cursor.ID)
		} else {
			query = query.Where("(created_at, id) < (?, ?)", cursor.CreatedAt, cursor.ID)
		}
	}

	err = query.Limit(params.Cursor.Limit + 1).
		Order("created_at ASC, id ASC").
		Find(&leads).Error

	return leads, err
}

func (r *leadRepository) ListByStage(ctx context.Context, stage enum.LeadStage) ([]entity.Lead, error) {
	var leads []entity.Lead
	err := r.db.WithContext(ctx).Scopes(TenantScope(ctx)).
		Where("stage = ?", stage).
		Order("position ASC, created_at ASC").
		Find(&leads).Error
	return leads, err
}

func (r *leadRepository) UpdateStage(ctx context.Context, id uuid.UUID, stage enum.LeadStage, position int) error {
	return r.db.WithContext(ctx).Scopes(TenantScope(ctx)).
		Model(&entity.Lead{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{"stage": stage, "position": position}).Error
}

func (r *leadRepository) ListAll(ctx context.Context) ([]entity.Lead, error) {
	var leads []entity.Lead
	err := r.db.WithContext(ctx).Scopes(TenantScope(ctx)).
		Order("created_at ASC").
		Find(&leads).Error
	return leads, err
}
