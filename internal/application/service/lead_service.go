package service

import (
	"bytes"
	"context"
	"encoding/csv"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/facturalink/cotizador-api/internal/domain/entity"
	"github.com/facturalink/cotizador-api/internal/domain/enum"
	"github.com/facturalink/cotizador-api/internal/domain/repository"
	infraRepo "github.com/facturalink/cotizador-api/internal/infrastructure/repository"
	"github.com/facturalink/cotizador-api/pkg/apperror"
	"github.com/facturalink/cotizador-api/pkg/pagination"
)

// LeadService handles pipeline lead operations
type LeadService struct {
	leadRepo repository.LeadRepository
}

// NewLeadService creates a new lead service
func NewLeadService(leadRepo repository.LeadRepository) *LeadService {
	return &LeadService{leadRepo: leadRepo}
}

// CreateLeadInput represents the create lead input
type CreateLeadInput struct {
	UserID          uuid.UUID
	Name            string
	Company         *string
	Email           *string
	Phone           *string
	TaxID           *string
	Source          *string
	EstimatedVolume int
	Notes           *string
}

// CreateLead creates a new lead in the New stage
func (s *LeadService) CreateLead(ctx context.Context, input *CreateLeadInput) (*entity.Lead, error) {
	tenantID, ok := infraRepo.GetTenantID(ctx)
	if !ok {
		return nil, apperror.NewBadRequestError("Tenant context required")
	}

	if input.EstimatedVolume < 0 {
		return nil, apperror.NewBadRequestError("Estimated volume must not be negative")
	}

	lead := &entity.Lead{
		TenantID:        tenantID,
		UserID:          input.UserID,
		Name:            input.Name,
		Company:         input.Company,
		Email:           input.Email,
		Phone:           input.Phone,
		TaxID:           input.TaxID,
		Source:          input.Source,
		Stage:           enum.LeadStageNew,
		EstimatedVolume: input.EstimatedVolume,
		Notes:           input.Notes,
	}

	if err := s.leadRepo.Create(ctx, lead); err != nil {
		return nil, err
	}

	return lead, nil
}

// GetLead retrieves a lead by ID
func (s *LeadService) GetLead(ctx context.Context, id uuid.UUID) (*entity.Lead, error) {
	lead, err := s.leadRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if lead == nil {
		return nil, apperror.NewNotFoundError("Lead")
	}
	return lead, nil
}

// ListLeadsInput represents the input for listing leads
type ListLeadsInput struct {
	Pagination *pagination.PaginationParams
	Search     string
	Stage      *enum.LeadStage
	Source     string
	SortBy     string
	SortOrder  string
}

// ListLeads lists leads with filtering
func (s *LeadService) ListLeads(ctx context.Context, input *ListLeadsInput) (*pagination.PaginatedResult[entity.Lead], error) {
	if input.Stage != nil && !input.Stage.IsValid() {
		return nil, apperror.NewBadRequestError("Invalid pipeline stage")
	}

	params := &repository.LeadFilterParams{
		Pagination: input.Pagination,
		Search:     input.Search,
		Stage:      input.Stage,
		Source:     input.Source,
		SortBy:     input.SortBy,
		SortOrder:  input.SortOrder,
	}

	leads, total, err := s.leadRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(input.Pagination.Page, input.Pagination.PerPage, total)
	return pagination.NewPaginatedResult(leads, pag), nil
}

// BoardColumn is one kanban column: a stage and its ordered leads
type BoardColumn struct {
	Stage enum.LeadStage `json:"stage"`
	Leads []entity.Lead  `json:"leads"`
}

// GetBoard returns the full kanban board, one column per stage
func (s *LeadService) GetBoard(ctx context.Context) ([]BoardColumn, error) {
	stages := []enum.LeadStage{
		enum.LeadStageNew,
		enum.LeadStageContacted,
		enum.LeadStageQuoteSent,
		enum.LeadStageNegotiation,
		enum.LeadStageWon,
		enum.LeadStageLost,
	}

	board := make([]BoardColumn, 0, len(stages))
	for _, stage := range stages {
		leads, err := s.leadRepo.ListByStage(ctx, stage)
		if err != nil {
			return nil, err
		}
		if leads == nil {
			leads = []entity.Lead{}
		}
		board = append(board, BoardColumn{Stage: stage, Leads: leads})
	}

	return board, nil
}

// MoveLead moves a lead to a new stage and board position
func (s *LeadService) MoveLead(ctx context.Context, id uuid.UUID, stage enum.LeadStage, position int) (*entity.Lead, error) {
	if !stage.IsValid() {
		return nil, apperror.NewBadRequestError("Invalid pipeline stage")
	}

	lead, err := s.leadRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if lead == nil {
		return nil, apperror.NewNotFoundError("Lead")
	}

	if err := s.leadRepo.UpdateStage(ctx, id, stage, position); err != nil {
		return nil, err
	}

	lead.Stage = stage
	lead.Position = position
	return lead, nil
}

// UpdateLeadInput represents the update lead input
type UpdateLeadInput struct {
	ID              uuid.UUID
	Name            *string
	Company         *string
	Email           *string
	Phone           *string
	TaxID           *string
	Source          *string
	EstimatedVolume *int
	Notes           *string
}

// UpdateLead updates a lead
func (s *LeadService) UpdateLead(ctx context.Context, input *UpdateLeadInput) (*entity.Lead, error) {
	lead, err := s.leadRepo.GetByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	if lead == nil {
		return nil, apperror.NewNotFoundError("Lead")
	}

	if input.Name != nil {
		lead.Name = *input.Name
	}
	if input.Company != nil {
		lead.Company = input.Company
	}
	if input.Email != nil {
		lead.Email = input.Email
	}
	if input.Phone != nil {
		lead.Phone = input.Phone
	}
	if input.TaxID != nil {
		lead.TaxID = input.TaxID
	}
	if input.Source != nil {
		lead.Source = input.Source
	}
	if input.EstimatedVolume != nil {
		if *input.EstimatedVolume < 0 {
			return nil, apperror.NewBadRequestError("Estimated volume must not be negative")
		}
		lead.EstimatedVolume = *input.EstimatedVolume
	}
	if input.Notes != nil {
		lead.Notes = input.Notes
	}

	if err := s.leadRepo.Update(ctx, lead); err != nil {
		return nil, err
	}

	return lead, nil
}

// DeleteLead deletes a lead
func (s *LeadService) DeleteLead(ctx context.Context, id uuid.UUID) error {
	lead, err := s.leadRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if lead == nil {
		return apperror.NewNotFoundError("Lead")
	}
	return s.leadRepo.Delete(ctx, id)
}

// ExportCSV renders every lead of the tenant as a CSV document
func (s *LeadService) ExportCSV(ctx context.Context) ([]byte, error) {
	leads, err := s.leadRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	header := []string{"Name", "Company", "Email", "Phone", "Tax ID", "Source", "Stage", "Estimated Volume", "Created At"}
	if err := w.Write(header); err != nil {
		return nil, err
	}

	deref := func(s *string) string {
		if s == nil {
			return ""
		}
		return *s
	}

	for _, lead := range leads {
		record := []string{
			lead.Name,
			deref(lead.Company),
			deref(lead.Email),
			deref(lead.Phone),
			deref(lead.TaxID),
			deref(lead.Source),
			lead.Stage.String(),
			strconv.Itoa(lead.EstimatedVolume),
			lead.CreatedAt.Format(time.RFC3339),
		}
		if err := w.Write(record); err != nil {
			return nil, err
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}
