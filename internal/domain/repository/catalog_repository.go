package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/facturalink/cotizador-api/internal/domain/entity"
	"github.com/facturalink/cotizador-api/internal/domain/enum"
)

// PackageRepository defines the interface for package tier data operations
type PackageRepository interface {
	Create(ctx context.Context, pkg *entity.Package) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Package, error)
	GetBySlug(ctx context.Context, slug string) (*entity.Package, error)
	Update(ctx context.Context, pkg *entity.Package) error
	Delete(ctx context.Context, id uuid.UUID) error
	// List returns packages ordered by display order. When activeOnly is
	// set, disabled tiers are excluded (the public wizard view).
	List(ctx context.Context, activeOnly bool) ([]entity.Package, error)
}

// LineItemRepository defines the interface for module/service catalog operations
type LineItemRepository interface {
	Create(ctx context.Context, item *entity.LineItem) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.LineItem, error)
	// GetByIDs retrieves multiple items by their IDs in a single query (prevents N+1)
	GetByIDs(ctx context.Context, ids []uuid.UUID) ([]entity.LineItem, error)
	Update(ctx context.Context, item *entity.LineItem) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, category *enum.ItemCategory, activeOnly bool) ([]entity.LineItem, error)
}

// FinancingPlanRepository defines the interface for financing plan data operations
type FinancingPlanRepository interface {
	Create(ctx context.Context, plan *entity.FinancingPlan) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.FinancingPlan, error)
	Update(ctx context.Context, plan *entity.FinancingPlan) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, activeOnly bool) ([]entity.FinancingPlan, error)
}
