package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/facturalink/cotizador-api/internal/domain/entity"
	"github.com/facturalink/cotizador-api/internal/domain/enum"
	"github.com/facturalink/cotizador-api/pkg/pagination"
)

// LeadRepository defines the interface for lead data operations
type LeadRepository interface {
	Create(ctx context.Context, lead *entity.Lead) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Lead, error)
	GetByEmail(ctx context.Context, email string) (*entity.Lead, error)
	Update(ctx context.Context, lead *entity.Lead) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, params *LeadFilterParams) ([]entity.Lead, int64, error)
	ListWithCursor(ctx context.Context, params *LeadCursorFilterParams) ([]entity.Lead, error)
	// ListByStage returns all leads in a stage ordered by board position,
	// used to render a kanban column without pagination.
	ListByStage(ctx context.Context, stage enum.LeadStage) ([]entity.Lead, error)
	// UpdateStage moves a lead to a stage at a given board position
	UpdateStage(ctx context.Context, id uuid.UUID, stage enum.LeadStage, position int) error
	// ListAll returns every lead of the tenant, used for CSV export
	ListAll(ctx context.Context) ([]entity.Lead, error)
}

// LeadFilterParams contains filtering parameters for lead queries
type LeadFilterParams struct {
	Pagination *pagination.PaginationParams
	Search     string
	Stage      *enum.LeadStage
	Source     string
	SortBy     string
	SortOrder  string
}

// LeadCursorFilterParams contains cursor-based filtering parameters for lead queries
type LeadCursorFilterParams struct {
	Cursor *pagination.CursorParams
	Search string
	Stage  *enum.LeadStage
	Source string
}
