package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/facturalink/cotizador-api/internal/domain/entity"
	"github.com/facturalink/cotizador-api/internal/domain/enum"
	"github.com/facturalink/cotizador-api/pkg/pagination"
)

// QuoteRepository defines the interface for persisted quote operations
type QuoteRepository interface {
	// Create persists the quote together with its detail rows in one
	// transaction
	Create(ctx context.Context, quote *entity.Quote) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Quote, error)
	GetByReference(ctx context.Context, reference string) (*entity.Quote, error)
	Update(ctx context.Context, quote *entity.Quote) error
	Delete(ctx context.Context, id uuid.UUID) error
	List(ctx context.Context, params *QuoteFilterParams) ([]entity.Quote, int64, error)
	ListByLead(ctx context.Context, leadID uuid.UUID) ([]entity.Quote, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status enum.QuoteStatus) error
	// GetNextReferenceNumber returns the next sequential number for the
	// tenant's quote references
	GetNextReferenceNumber(ctx context.Context) (int64, error)
	// ExpireStale marks sent quotes whose validity date has passed as
	// expired, returning how many were updated
	ExpireStale(ctx context.Context) (int64, error)
}

// QuoteFilterParams contains filtering parameters for quote queries
type QuoteFilterParams struct {
	Pagination *pagination.PaginationParams
	Search     string
	Status     *enum.QuoteStatus
	LeadID     *uuid.UUID
	CustomerID *uuid.UUID
	SortBy     string
	SortOrder  string
}
