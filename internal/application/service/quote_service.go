package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/facturalink/cotizador-api/internal/domain/entity"
	"github.com/facturalink/cotizador-api/internal/domain/enum"
	"github.com/facturalink/cotizador-api/internal/domain/pricing"
	"github.com/facturalink/cotizador-api/internal/domain/repository"
	infraRepo "github.com/facturalink/cotizador-api/internal/infrastructure/repository"
	"github.com/facturalink/cotizador-api/pkg/apperror"
	"github.com/facturalink/cotizador-api/pkg/email"
	"github.com/facturalink/cotizador-api/pkg/pagination"
)

// QuoteService computes quotes through the pricing engine and manages
// their persisted lifecycle
type QuoteService struct {
	quoteRepo    repository.QuoteRepository
	packageRepo  repository.PackageRepository
	itemRepo     repository.LineItemRepository
	planRepo     repository.FinancingPlanRepository
	leadRepo     repository.LeadRepository
	customerRepo repository.CustomerRepository
	tenantRepo   repository.TenantRepository
	emailService *email.EmailService
}

// NewQuoteService creates a new quote service
func NewQuoteService(
	quoteRepo repository.QuoteRepository,
	packageRepo repository.PackageRepository,
	itemRepo repository.LineItemRepository,
	planRepo repository.FinancingPlanRepository,
	leadRepo repository.LeadRepository,
	customerRepo repository.CustomerRepository,
	tenantRepo repository.TenantRepository,
	emailService *email.EmailService,
) *QuoteService {
	return &QuoteService{
		quoteRepo:    quoteRepo,
		packageRepo:  packageRepo,
		itemRepo:     itemRepo,
		planRepo:     planRepo,
		leadRepo:     leadRepo,
		customerRepo: customerRepo,
		tenantRepo:   tenantRepo,
		emailService: emailService,
	}
}

// QuoteConfigInput is the wizard state sent by the client: a selection
// plus configuration. Every compute and create call carries the full
// configuration; the engine is re-run from scratch each time.
type QuoteConfigInput struct {
	PackageID             uuid.UUID
	ItemIDs               []uuid.UUID
	Volume                int
	FinancingPlanID       *uuid.UUID
	PaymentMode           enum.PaymentMode
	ManualDiscountPct     float64
	VATPct                *float64
	IncludeImplementation *bool
	Overrides             map[string]float64
}

// resolvedQuote bundles the engine result with the catalog records it
// was computed from
type resolvedQuote struct {
	result   *pricing.Quote
	pkg      *entity.Package
	plan     *entity.FinancingPlan
	settings entity.TenantSettings
	config   pricing.Config
	volume   int
}

func (s *QuoteService) resolve(ctx context.Context, input *QuoteConfigInput) (*resolvedQuote, error) {
	tenantID, ok := infraRepo.GetTenantID(ctx)
	if !ok {
		return nil, apperror.NewBadRequestError("Tenant context required")
	}

	tenant, err := s.tenantRepo.GetByID(ctx, tenantID)
	if err != nil {
		return nil, err
	}
	if tenant == nil {
		return nil, apperror.NewNotFoundError("Tenant")
	}
	settings := tenant.Settings

	pkg, err := s.packageRepo.GetByID(ctx, input.PackageID)
	if err != nil {
		return nil, err
	}
	if pkg == nil {
		return nil, apperror.NewNotFoundError("Package")
	}

	items, err := s.itemRepo.GetByIDs(ctx, input.ItemIDs)
	if err != nil {
		return nil, err
	}
	if len(items) != len(input.ItemIDs) {
		return nil, apperror.NewNotFoundError("Line item")
	}

	var plan *entity.FinancingPlan
	if input.FinancingPlanID != nil {
		plan, err = s.planRepo.GetByID(ctx, *input.FinancingPlanID)
		if err != nil {
			return nil, err
		}
		if plan == nil {
			return nil, apperror.NewNotFoundError("Financing plan")
		}
	}

	vatPct := settings.VATPct
	if input.VATPct != nil {
		vatPct = *input.VATPct
	}

	includeImplementation := settings.DefaultIncludeImplementation
	if input.IncludeImplementation != nil {
		includeImplementation = *input.IncludeImplementation
	}

	cfg := pricing.Config{
		PaymentMode:           input.PaymentMode,
		InstallmentCount:      1,
		AdjustmentType:        enum.AdjustmentTypeNone,
		ManualDiscountPct:     input.ManualDiscountPct,
		VATPct:                vatPct,
		IncludeImplementation: includeImplementation,
	}
	if plan != nil {
		cfg.InstallmentCount = plan.InstallmentCount
		cfg.AdjustmentType = plan.AdjustmentType
		cfg.AdjustmentRatePct = plan.AdjustmentRatePct
	}

	result, err := pricing.Compute(pricing.Input{
		Package:   pkg,
		Items:     items,
		Volume:    input.Volume,
		Config:    cfg,
		Overrides: pricing.OverrideMap(input.Overrides),
	})
	if err != nil {
		return nil, apperror.NewBadRequestError(err.Error())
	}

	return &resolvedQuote{
		result:   result,
		pkg:      pkg,
		plan:     plan,
		settings: settings,
		config:   cfg,
		volume:   input.Volume,
	}, nil
}

// ComputeQuote runs the pricing engine without persisting anything. This
// backs the wizard's live preview.
func (s *QuoteService) ComputeQuote(ctx context.Context, input *QuoteConfigInput) (*pricing.Quote, error) {
	resolved, err := s.resolve(ctx, input)
	if err != nil {
		return nil, err
	}
	return resolved.result, nil
}

// CreateQuoteInput represents the input for persisting a computed quote
type CreateQuoteInput struct {
	UserID     uuid.UUID
	LeadID     *uuid.UUID
	CustomerID *uuid.UUID
	Note       *string
	Config     QuoteConfigInput
}

// CreateQuote computes the quote and persists it as a Draft snapshot
// with a sequential tenant reference
func (s *QuoteService) CreateQuote(ctx context.Context, input *CreateQuoteInput) (*entity.Quote, error) {
	tenantID, ok := infraRepo.GetTenantID(ctx)
	if !ok {
		return nil, apperror.NewBadRequestError("Tenant context required")
	}

	resolved, err := s.resolve(ctx, &input.Config)
	if err != nil {
		return nil, err
	}

	// Resolve the display name for the quote header
	var customerName string
	if input.LeadID != nil {
		lead, err := s.leadRepo.GetByID(ctx, *input.LeadID)
		if err != nil {
			return nil, err
		}
		if lead == nil {
			return nil, apperror.NewNotFoundError("Lead")
		}
		customerName = lead.Name
	}
	if input.CustomerID != nil {
		customer, err := s.customerRepo.GetByID(ctx, *input.CustomerID)
		if err != nil {
			return nil, err
		}
		if customer == nil {
			return nil, apperror.NewNotFoundError("Customer")
		}
		customerName = customer.Name
	}

	nextNum, err := s.quoteRepo.GetNextReferenceNumber(ctx)
	if err != nil {
		return nil, err
	}
	prefix := resolved.settings.QuotePrefix
	if prefix == "" {
		prefix = "COT-"
	}
	reference := fmt.Sprintf("%s%06d", prefix, nextNum)

	var validUntil *time.Time
	if days := resolved.settings.QuoteValidityDays; days > 0 {
		t := time.Now().AddDate(0, 0, days)
		validUntil = &t
	}

	result := resolved.result
	quote := &entity.Quote{
		TenantID:     tenantID,
		UserID:       input.UserID,
		LeadID:       input.LeadID,
		CustomerID:   input.CustomerID,
		Reference:    reference,
		CustomerName: customerName,

		PackageID:       resolved.pkg.ID,
		PackageName:     resolved.pkg.Name,
		Volume:          resolved.volume,
		FinancingPlanID: input.Config.FinancingPlanID,

		PaymentMode:           resolved.config.PaymentMode,
		InstallmentCount:      result.InstallmentCount,
		AdjustmentType:        resolved.config.AdjustmentType,
		AdjustmentRatePct:     resolved.config.AdjustmentRatePct,
		ManualDiscountPct:     resolved.config.ManualDiscountPct,
		VATPct:                resolved.config.VATPct,
		IncludeImplementation: resolved.config.IncludeImplementation,

		OneTimeSubtotal:       result.OneTimeSubtotal,
		OneTimeTax:            result.OneTimeTax,
		OneTimeTotal:          result.OneTimeTotal,
		RecurringSubtotalBase: result.RecurringSubtotalBase,
		AdjustmentAmount:      result.AdjustmentAmount,
		ManualDiscountAmount:  result.ManualDiscountAmount,
		RecurringNet:          result.RecurringNet,
		RecurringTax:          result.RecurringTax,
		RecurringTotal:        result.RecurringTotal,
		GrandTotal:            result.GrandTotal,
		InstallmentAmount:     result.InstallmentAmount,
		IsFinanced:            result.IsFinanced,

		Status:     enum.QuoteStatusDraft,
		ValidUntil: validUntil,
		Note:       input.Note,
	}

	details := make([]entity.QuoteDetail, 0, len(result.LineResults))
	for i, line := range result.LineResults {
		details = append(details, entity.QuoteDetail{
			Category:    line.Category,
			Name:        line.Name,
			Description: line.Description,
			Amount:      line.Amount,
			IsOneTime:   line.IsOneTime,
			SortOrder:   i,
		})
	}
	quote.Details = details

	if err := s.quoteRepo.Create(ctx, quote); err != nil {
		return nil, err
	}

	return s.quoteRepo.GetByID(ctx, quote.ID)
}

// GetQuote retrieves a quote by ID with its breakdown
func (s *QuoteService) GetQuote(ctx context.Context, id uuid.UUID) (*entity.Quote, error) {
	quote, err := s.quoteRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if quote == nil {
		return nil, apperror.NewNotFoundError("Quote")
	}
	return quote, nil
}

// ListQuotesInput represents the input for listing quotes
type ListQuotesInput struct {
	Pagination *pagination.PaginationParams
	Search     string
	Status     *enum.QuoteStatus
	LeadID     *uuid.UUID
	CustomerID *uuid.UUID
	SortBy     string
	SortOrder  string
}

// ListQuotes lists quotes with filtering
func (s *QuoteService) ListQuotes(ctx context.Context, input *ListQuotesInput) (*pagination.PaginatedResult[entity.Quote], error) {
	params := &repository.QuoteFilterParams{
		Pagination: input.Pagination,
		Search:     input.Search,
		Status:     input.Status,
		LeadID:     input.LeadID,
		CustomerID: input.CustomerID,
		SortBy:     input.SortBy,
		SortOrder:  input.SortOrder,
	}

	quotes, total, err := s.quoteRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(input.Pagination.Page, input.Pagination.PerPage, total)
	return pagination.NewPaginatedResult(quotes, pag), nil
}

// quoteTransitions defines the allowed status moves: a draft is sent,
// and only a sent quote can be resolved.
var quoteTransitions = map[enum.QuoteStatus][]enum.QuoteStatus{
	enum.QuoteStatusDraft: {enum.QuoteStatusSent},
	enum.QuoteStatusSent:  {enum.QuoteStatusAccepted, enum.QuoteStatusRejected, enum.QuoteStatusExpired},
}

func canTransition(from, to enum.QuoteStatus) bool {
	for _, allowed := range quoteTransitions[from] {
		if allowed == to {
			return true
		}
	}
	return false
}

// UpdateQuoteStatus moves a quote through its lifecycle
func (s *QuoteService) UpdateQuoteStatus(ctx context.Context, id uuid.UUID, status enum.QuoteStatus) (*entity.Quote, error) {
	quote, err := s.quoteRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if quote == nil {
		return nil, apperror.NewNotFoundError("Quote")
	}

	if !canTransition(quote.Status, status) {
		return nil, apperror.NewBadRequestError(
			fmt.Sprintf("Cannot move quote from %s to %s", quote.Status.String(), status.String()))
	}

	if err := s.quoteRepo.UpdateStatus(ctx, id, status); err != nil {
		return nil, err
	}
	quote.Status = status

	// A won or lost quote resolves its lead's pipeline stage too
	if quote.LeadID != nil {
		switch status {
		case enum.QuoteStatusAccepted:
			_ = s.leadRepo.UpdateStage(ctx, *quote.LeadID, enum.LeadStageWon, 0)
		case enum.QuoteStatusRejected:
			_ = s.leadRepo.UpdateStage(ctx, *quote.LeadID, enum.LeadStageLost, 0)
		}
	}

	return quote, nil
}

// SendQuoteInput represents the input for emailing a quote
type SendQuoteInput struct {
	ID uuid.UUID
	// Email overrides the recipient; when empty the lead's or
	// customer's address is used
	Email string
}

// SendQuote emails the quote summary to the prospect and marks the
// quote as sent
func (s *QuoteService) SendQuote(ctx context.Context, input *SendQuoteInput) (*entity.Quote, error) {
	quote, err := s.quoteRepo.GetByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	if quote == nil {
		return nil, apperror.NewNotFoundError("Quote")
	}

	if quote.Status != enum.QuoteStatusDraft && quote.Status != enum.QuoteStatusSent {
		return nil, apperror.NewBadRequestError("Only draft or sent quotes can be emailed")
	}

	recipient := input.Email
	if recipient == "" {
		if quote.Lead != nil && quote.Lead.Email != nil {
			recipient = *quote.Lead.Email
		} else if quote.Customer != nil && quote.Customer.Email != nil {
			recipient = *quote.Customer.Email
		}
	}
	if recipient == "" {
		return nil, apperror.NewBadRequestError("Quote has no recipient email address")
	}

	tenantID, _ := infraRepo.GetTenantID(ctx)
	taxLabel := "IVA"
	if tenant, err := s.tenantRepo.GetByID(ctx, tenantID); err == nil && tenant != nil && tenant.Settings.TaxLabel != "" {
		taxLabel = tenant.Settings.TaxLabel
	}

	data := email.QuoteEmailData{
		Reference:         quote.Reference,
		CustomerName:      quote.CustomerName,
		PackageName:       quote.PackageName,
		TaxLabel:          taxLabel,
		OneTimeTotal:      formatAmount(quote.OneTimeTotal),
		RecurringTotal:    formatAmount(quote.RecurringTotal),
		GrandTotal:        formatAmount(quote.GrandTotal),
		InstallmentCount:  quote.InstallmentCount,
		InstallmentAmount: formatAmount(quote.InstallmentAmount),
	}
	if quote.ValidUntil != nil {
		data.ValidUntil = quote.ValidUntil.Format("02/01/2006")
	}
	for _, d := range quote.Details {
		data.Lines = append(data.Lines, email.QuoteLineData{
			Name:      d.Name,
			Amount:    formatAmount(d.Amount),
			IsOneTime: d.IsOneTime,
		})
	}

	if err := s.emailService.SendQuoteEmail(recipient, data); err != nil {
		return nil, apperror.NewAppError(502, "Failed to send quote email: "+err.Error())
	}

	now := time.Now()
	quote.SentAt = &now
	if quote.Status == enum.QuoteStatusDraft {
		quote.Status = enum.QuoteStatusSent
	}
	if err := s.quoteRepo.Update(ctx, quote); err != nil {
		return nil, err
	}

	// Sending the first quote advances the lead on the board
	if quote.LeadID != nil {
		if lead, err := s.leadRepo.GetByID(ctx, *quote.LeadID); err == nil && lead != nil {
			if lead.Stage == enum.LeadStageNew || lead.Stage == enum.LeadStageContacted {
				_ = s.leadRepo.UpdateStage(ctx, lead.ID, enum.LeadStageQuoteSent, lead.Position)
			}
		}
	}

	return quote, nil
}

// DeleteQuote deletes a quote
func (s *QuoteService) DeleteQuote(ctx context.Context, id uuid.UUID) error {
	quote, err := s.quoteRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if quote == nil {
		return apperror.NewNotFoundError("Quote")
	}
	return s.quoteRepo.Delete(ctx, id)
}

// ExpireStaleQuotes marks sent quotes past their validity date as
// expired, returning how many were updated
func (s *QuoteService) ExpireStaleQuotes(ctx context.Context) (int64, error) {
	return s.quoteRepo.ExpireStale(ctx)
}

func formatAmount(v float64) string {
	return fmt.Sprintf("%.2f", v)
}
