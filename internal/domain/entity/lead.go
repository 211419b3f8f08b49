package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/facturalink/cotizador-api/internal/domain/enum"
)

// Lead represents a sales prospect moving through the kanban pipeline
type Lead struct {
	ID              uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	TenantID        uuid.UUID      `gorm:"type:uuid;not null;index" json:"tenant_id"`
	UserID          uuid.UUID      `gorm:"type:uuid;not null;index" json:"user_id"`
	Name            string         `gorm:"size:255;not null" json:"name"`
	Company         *string        `gorm:"size:255" json:"company,omitempty"`
	Email           *string        `gorm:"size:255" json:"email,omitempty"`
	Phone           *string        `gorm:"size:50" json:"phone,omitempty"`
	TaxID           *string        `gorm:"size:50;column:tax_id" json:"tax_id,omitempty"`
	Source          *string        `gorm:"size:100" json:"source,omitempty"`
	Stage           enum.LeadStage `gorm:"default:0;index" json:"stage"`
	Position        int            `gorm:"default:0" json:"position"`
	EstimatedVolume int            `gorm:"default:0" json:"estimated_volume"`
	Notes           *string        `gorm:"type:text" json:"notes,omitempty"`
	CreatedAt       time.Time      `json:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at"`
	DeletedAt       gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Tenant Tenant  `gorm:"foreignKey:TenantID" json:"-"`
	User   User    `gorm:"foreignKey:UserID" json:"-"`
	Quotes []Quote `gorm:"foreignKey:LeadID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new lead
func (l *Lead) BeforeCreate(tx *gorm.DB) error {
	if l.ID == uuid.Nil {
		l.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Lead model
func (Lead) TableName() string {
	return "leads"
}
