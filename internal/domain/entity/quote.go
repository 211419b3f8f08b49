package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/facturalink/cotizador-api/internal/domain/enum"
)

// Quote represents a persisted snapshot of a computed quote: the chosen
// package/plan, the configuration the agent entered, the itemized
// breakdown and all totals as the engine produced them
type Quote struct {
	ID           uuid.UUID  `gorm:"type:uuid;primary_key" json:"id"`
	TenantID     uuid.UUID  `gorm:"type:uuid;not null;index" json:"tenant_id"`
	UserID       uuid.UUID  `gorm:"type:uuid;not null;index" json:"user_id"`
	LeadID       *uuid.UUID `gorm:"type:uuid;index" json:"lead_id,omitempty"`
	CustomerID   *uuid.UUID `gorm:"type:uuid;index" json:"customer_id,omitempty"`
	Reference    string     `gorm:"size:100;unique;not null" json:"reference"`
	CustomerName string     `gorm:"size:255" json:"customer_name"`

	// Selection
	PackageID       uuid.UUID  `gorm:"type:uuid;not null;index" json:"package_id"`
	PackageName     string     `gorm:"size:255" json:"package_name"`
	Volume          int        `gorm:"default:0" json:"volume"`
	FinancingPlanID *uuid.UUID `gorm:"type:uuid;index" json:"financing_plan_id,omitempty"`

	// Configuration as entered
	PaymentMode           enum.PaymentMode    `gorm:"default:0" json:"payment_mode"`
	InstallmentCount      int                 `gorm:"default:1" json:"installment_count"`
	AdjustmentType        enum.AdjustmentType `gorm:"default:0" json:"adjustment_type"`
	AdjustmentRatePct     float64             `gorm:"type:decimal(5,2);default:0" json:"adjustment_rate_pct"`
	ManualDiscountPct     float64             `gorm:"type:decimal(5,2);default:0" json:"manual_discount_pct"`
	VATPct                float64             `gorm:"type:decimal(5,2);default:0;column:vat_pct" json:"vat_pct"`
	IncludeImplementation bool                `gorm:"default:true" json:"include_implementation"`

	// Computed totals (engine output, already rounded)
	OneTimeSubtotal       float64 `gorm:"type:decimal(15,2);default:0" json:"one_time_subtotal"`
	OneTimeTax            float64 `gorm:"type:decimal(15,2);default:0" json:"one_time_tax"`
	OneTimeTotal          float64 `gorm:"type:decimal(15,2);default:0" json:"one_time_total"`
	RecurringSubtotalBase float64 `gorm:"type:decimal(15,2);default:0" json:"recurring_subtotal_base"`
	AdjustmentAmount      float64 `gorm:"type:decimal(15,2);default:0" json:"adjustment_amount"`
	ManualDiscountAmount  float64 `gorm:"type:decimal(15,2);default:0" json:"manual_discount_amount"`
	RecurringNet          float64 `gorm:"type:decimal(15,2);default:0" json:"recurring_net"`
	RecurringTax          float64 `gorm:"type:decimal(15,2);default:0" json:"recurring_tax"`
	RecurringTotal        float64 `gorm:"type:decimal(15,2);default:0" json:"recurring_total"`
	GrandTotal            float64 `gorm:"type:decimal(15,2);default:0" json:"grand_total"`
	InstallmentAmount     float64 `gorm:"type:decimal(15,2);default:0" json:"installment_amount"`
	IsFinanced            bool    `gorm:"default:false" json:"is_financed"`

	Status     enum.QuoteStatus `gorm:"default:0;index" json:"status"`
	ValidUntil *time.Time       `gorm:"type:date" json:"valid_until,omitempty"`
	Note       *string          `gorm:"type:text" json:"note,omitempty"`
	SentAt     *time.Time       `json:"sent_at,omitempty"`
	CreatedAt  time.Time        `json:"created_at"`
	UpdatedAt  time.Time        `json:"updated_at"`
	DeletedAt  gorm.DeletedAt   `gorm:"index" json:"-"`

	// Relationships
	Tenant        Tenant         `gorm:"foreignKey:TenantID" json:"-"`
	User          User           `gorm:"foreignKey:UserID" json:"-"`
	Lead          *Lead          `gorm:"foreignKey:LeadID" json:"lead,omitempty"`
	Customer      *Customer      `gorm:"foreignKey:CustomerID" json:"customer,omitempty"`
	Package       Package        `gorm:"foreignKey:PackageID" json:"-"`
	FinancingPlan *FinancingPlan `gorm:"foreignKey:FinancingPlanID" json:"financing_plan,omitempty"`
	Details       []QuoteDetail  `gorm:"foreignKey:QuoteID" json:"details,omitempty"`
}

// BeforeCreate generates a UUID before creating a new quote
func (q *Quote) BeforeCreate(tx *gorm.DB) error {
	if q.ID == uuid.Nil {
		q.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Quote model
func (Quote) TableName() string {
	return "quotes"
}

// QuoteDetail represents one row of the desglose: a resolved line with
// its display amount and bucket flag
type QuoteDetail struct {
	ID          uuid.UUID      `gorm:"type:uuid;primary_key" json:"id"`
	QuoteID     uuid.UUID      `gorm:"type:uuid;not null;index" json:"quote_id"`
	Category    string         `gorm:"size:50;not null" json:"category"`
	Name        string         `gorm:"size:255;not null" json:"name"`
	Description string         `gorm:"type:text" json:"description"`
	Amount      float64        `gorm:"type:decimal(15,2);not null" json:"amount"`
	IsOneTime   bool           `gorm:"default:false" json:"is_one_time"`
	SortOrder   int            `gorm:"default:0" json:"sort_order"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Quote Quote `gorm:"foreignKey:QuoteID" json:"-"`
}

// BeforeCreate generates a UUID before creating a new quote detail
func (qd *QuoteDetail) BeforeCreate(tx *gorm.DB) error {
	if qd.ID == uuid.Nil {
		qd.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the QuoteDetail model
func (QuoteDetail) TableName() string {
	return "quote_details"
}
