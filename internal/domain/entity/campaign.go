package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/facturalink/cotizador-api/internal/domain/enum"
)

// Campaign represents a marketing blast targeted at a slice of the lead
// pipeline
type Campaign struct {
	ID          uuid.UUID            `gorm:"type:uuid;primary_key" json:"id"`
	TenantID    uuid.UUID            `gorm:"type:uuid;not null;index" json:"tenant_id"`
	UserID      uuid.UUID            `gorm:"type:uuid;not null;index" json:"user_id"`
	Name        string               `gorm:"size:255;not null" json:"name"`
	Channel     enum.CampaignChannel `gorm:"default:0" json:"channel"`
	Subject     string               `gorm:"size:255" json:"subject"`
	Body        string               `gorm:"type:text" json:"body"`
	TargetStage *enum.LeadStage      `json:"target_stage,omitempty"`
	Status      enum.CampaignStatus  `gorm:"default:0;index" json:"status"`
	SentCount   int                  `gorm:"default:0" json:"sent_count"`
	FailedCount int                  `gorm:"default:0" json:"failed_count"`
	SentAt      *time.Time           `json:"sent_at,omitempty"`
	CreatedAt   time.Time            `json:"created_at"`
	UpdatedAt   time.Time            `json:"updated_at"`
	DeletedAt   gorm.DeletedAt       `gorm:"index" json:"-"`

	// Relationships
	Tenant Tenant `gorm:"foreignKey:TenantID" json:"-"`
	User   User   `gorm:"foreignKey:UserID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new campaign
func (c *Campaign) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Campaign model
func (Campaign) TableName() string {
	return "campaigns"
}
