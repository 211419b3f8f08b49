package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/facturalink/cotizador-api/internal/domain/enum"
)

// FinancingPlan represents an admin-defined payment schedule that either
// discounts (prepay incentive) or surcharges (installment interest) the
// recurring bucket of a quote
type FinancingPlan struct {
	ID                uuid.UUID           `gorm:"type:uuid;primary_key" json:"id"`
	TenantID          uuid.UUID           `gorm:"type:uuid;not null;index" json:"tenant_id"`
	Title             string              `gorm:"size:255;not null" json:"title"`
	TermMonths        int                 `gorm:"default:12" json:"term_months"`
	InstallmentCount  int                 `gorm:"default:1" json:"installment_count"`
	AdjustmentType    enum.AdjustmentType `gorm:"default:0" json:"adjustment_type"`
	AdjustmentRatePct float64             `gorm:"type:decimal(5,2);default:0" json:"adjustment_rate_pct"`
	IsPopular         bool                `gorm:"default:false" json:"is_popular"`
	DisplayOrder      int                 `gorm:"default:0" json:"display_order"`
	ShowBreakdown     bool                `gorm:"default:true" json:"show_breakdown"`
	IsActive          bool                `gorm:"default:true" json:"is_active"`
	CreatedAt         time.Time           `json:"created_at"`
	UpdatedAt         time.Time           `json:"updated_at"`
	DeletedAt         gorm.DeletedAt      `gorm:"index" json:"-"`

	// Relationships
	Tenant Tenant `gorm:"foreignKey:TenantID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new financing plan
func (fp *FinancingPlan) BeforeCreate(tx *gorm.DB) error {
	if fp.ID == uuid.Nil {
		fp.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the FinancingPlan model
func (FinancingPlan) TableName() string {
	return "financing_plans"
}
