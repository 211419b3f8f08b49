package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/facturalink/cotizador-api/internal/domain/enum"
)

// Package represents a pre-priced DTE service tier scaled to a maximum
// annual document volume
type Package struct {
	ID                 uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	TenantID           uuid.UUID      `gorm:"type:uuid;not null;index" json:"tenant_id"`
	Name               string         `gorm:"size:255;not null" json:"name"`
	Slug               string         `gorm:"size:255;not null;index" json:"slug"`
	AnnualPrice        float64        `gorm:"type:decimal(15,2);default:0" json:"annual_price"`
	MonthlyPrice       float64        `gorm:"type:decimal(15,2);default:0" json:"monthly_price"`
	ImplementationCost float64        `gorm:"type:decimal(15,2);default:0" json:"implementation_cost"`
	DTECapacity        int            `gorm:"not null;default:0;column:dte_capacity" json:"dte_capacity"`
	DisplayOrder       int            `gorm:"default:0" json:"display_order"`
	IsActive           bool           `gorm:"default:true" json:"is_active"`
	CreatedAt          time.Time      `json:"created_at"`
	UpdatedAt          time.Time      `json:"updated_at"`
	DeletedAt          gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Tenant Tenant `gorm:"foreignKey:TenantID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new package
func (p *Package) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Package model
func (Package) TableName() string {
	return "packages"
}

// LineItem represents a selectable module or professional service with
// one of three pricing modes. Exactly one of AnnualPrice, OneTimePrice,
// UnitPrice is authoritative depending on PricingMode; MonthlyPrice is a
// display-derived convenience field.
type LineItem struct {
	ID           uuid.UUID        `gorm:"type:uuid;primary_key" json:"id"`
	TenantID     uuid.UUID        `gorm:"type:uuid;not null;index" json:"tenant_id"`
	Category     enum.ItemCategory `gorm:"default:0" json:"category"`
	Name         string           `gorm:"size:255;not null" json:"name"`
	Description  string           `gorm:"type:text" json:"description"`
	PricingMode  enum.PricingMode `gorm:"default:0" json:"pricing_mode"`
	AnnualPrice  float64          `gorm:"type:decimal(15,2);default:0" json:"annual_price"`
	MonthlyPrice float64          `gorm:"type:decimal(15,2);default:0" json:"monthly_price"`
	OneTimePrice float64          `gorm:"type:decimal(15,2);default:0" json:"one_time_price"`
	UnitPrice    float64          `gorm:"type:decimal(15,4);default:0" json:"unit_price"`
	// BilledOnce marks a volume-based item as an upfront charge (e.g. a
	// per-document customization fee billed a single time) instead of a
	// recurring one.
	BilledOnce   bool           `gorm:"default:false" json:"billed_once"`
	DisplayOrder int            `gorm:"default:0" json:"display_order"`
	IsActive     bool           `gorm:"default:true" json:"is_active"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Tenant Tenant `gorm:"foreignKey:TenantID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new line item
func (li *LineItem) BeforeCreate(tx *gorm.DB) error {
	if li.ID == uuid.Nil {
		li.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the LineItem model
func (LineItem) TableName() string {
	return "line_items"
}
