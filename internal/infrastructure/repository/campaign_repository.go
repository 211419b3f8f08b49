package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/facturalink/cotizador-api/internal/domain/entity"
	domainRepo "github.com/facturalink/cotizador-api/internal/domain/repository"
	"github.com/facturalink/cotizador-api/pkg/pagination"
	"gorm.io/gorm"
)

type campaignRepository struct {
	db *gorm.DB
}

// NewCampaignRepository creates a new campaign repository
func NewCampaignRepository(db *gorm.DB) domainRepo.CampaignRepository {
	return &campaignRepository{db: db}
}

func (r *campaignRepository) Create(ctx context.Context, campaign *entity.Campaign) error {
	return r.db.WithContext(ctx).Create(campaign).Error
}

func (r *campaignRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Campaign, error) {
	var campaign entity.Campaign
	err := r.db.WithContext(ctx).Scopes(TenantScope(ctx)).First(&campaign, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &campaign, err
}

func (r *campaignRepository) Update(ctx context.Context, campaign *entity.Campaign) error {
	return r.db.WithContext(ctx).Save(campaign).Error
}

func (r *campaignRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Scopes(TenantScope(ctx)).Delete(&entity.Campaign{}, "id = ?", id).Error
}

func (r *campaignRepository) List(ctx context.Context, params *pagination.PaginationParams, search string) ([]entity.Campaign, int64, error) {
	var campaigns []entity.Campaign
	var total int64

	query := r.db.WithContext(ctx).Scopes(TenantScope(ctx)).Model(&entity.Campaign{})

	if search != "" {
		query = query.Where("name ILIKE ? OR subject ILIKE ?",
			"%"+search+"%", "%"+search+"%")
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	params.Validate()
	err := query.Offset(params.Offset()).Limit(params.PerPage).
		Order("created_at DESC").
		Find(&campaigns).Error

	return campaigns, total, err
}
