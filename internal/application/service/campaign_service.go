package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/facturalink/cotizador-api/internal/domain/entity"
	"github.com/facturalink/cotizador-api/internal/domain/enum"
	"github.com/facturalink/cotizador-api/internal/domain/repository"
	infraRepo "github.com/facturalink/cotizador-api/internal/infrastructure/repository"
	"github.com/facturalink/cotizador-api/pkg/apperror"
	"github.com/facturalink/cotizador-api/pkg/email"
	"github.com/facturalink/cotizador-api/pkg/pagination"
)

// CampaignService handles outreach campaigns over the lead base
type CampaignService struct {
	campaignRepo repository.CampaignRepository
	leadRepo     repository.LeadRepository
	emailService *email.EmailService
}

// NewCampaignService creates a new campaign service
func NewCampaignService(
	campaignRepo repository.CampaignRepository,
	leadRepo repository.LeadRepository,
	emailService *email.EmailService,
) *CampaignService {
	return &CampaignService{
		campaignRepo: campaignRepo,
		leadRepo:     leadRepo,
		emailService: emailService,
	}
}

// CreateCampaignInput represents the create campaign input
type CreateCampaignInput struct {
	UserID      uuid.UUID
	Name        string
	Channel     enum.CampaignChannel
	Subject     string
	Body        string
	TargetStage *enum.LeadStage
}

// CreateCampaign creates a campaign in Draft status
func (s *CampaignService) CreateCampaign(ctx context.Context, input *CreateCampaignInput) (*entity.Campaign, error) {
	tenantID, ok := infraRepo.GetTenantID(ctx)
	if !ok {
		return nil, apperror.NewBadRequestError("Tenant context required")
	}

	if input.TargetStage != nil && !input.TargetStage.IsValid() {
		return nil, apperror.NewBadRequestError("Invalid pipeline stage")
	}
	if input.Channel == enum.CampaignChannelEmail && input.Subject == "" {
		return nil, apperror.NewBadRequestError("Email campaigns require a subject")
	}

	campaign := &entity.Campaign{
		TenantID:    tenantID,
		UserID:      input.UserID,
		Name:        input.Name,
		Channel:     input.Channel,
		Subject:     input.Subject,
		Body:        input.Body,
		TargetStage: input.TargetStage,
		Status:      enum.CampaignStatusDraft,
	}

	if err := s.campaignRepo.Create(ctx, campaign); err != nil {
		return nil, err
	}

	return campaign, nil
}

// GetCampaign retrieves a campaign by ID
func (s *CampaignService) GetCampaign(ctx context.Context, id uuid.UUID) (*entity.Campaign, error) {
	campaign, err := s.campaignRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if campaign == nil {
		return nil, apperror.NewNotFoundError("Campaign")
	}
	return campaign, nil
}

// ListCampaigns lists the tenant's campaigns
func (s *CampaignService) ListCampaigns(ctx context.Context, params *pagination.PaginationParams, search string) (*pagination.PaginatedResult[entity.Campaign], error) {
	campaigns, total, err := s.campaignRepo.List(ctx, params, search)
	if err != nil {
		return nil, err
	}

	pag := pagination.NewPagination(params.Page, params.PerPage, total)
	return pagination.NewPaginatedResult(campaigns, pag), nil
}

// UpdateCampaignInput represents the update campaign input
type UpdateCampaignInput struct {
	ID          uuid.UUID
	Name        *string
	Subject     *string
	Body        *string
	TargetStage *enum.LeadStage
}

// UpdateCampaign updates a draft campaign
func (s *CampaignService) UpdateCampaign(ctx context.Context, input *UpdateCampaignInput) (*entity.Campaign, error) {
	campaign, err := s.campaignRepo.GetByID(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	if campaign == nil {
		return nil, apperror.NewNotFoundError("Campaign")
	}
	if campaign.Status != enum.CampaignStatusDraft {
		return nil, apperror.NewBadRequestError("Only draft campaigns can be edited")
	}

	if input.Name != nil {
		campaign.Name = *input.Name
	}
	if input.Subject != nil {
		campaign.Subject = *input.Subject
	}
	if input.Body != nil {
		campaign.Body = *input.Body
	}
	if input.TargetStage != nil {
		if !input.TargetStage.IsValid() {
			return nil, apperror.NewBadRequestError("Invalid pipeline stage")
		}
		campaign.TargetStage = input.TargetStage
	}

	if err := s.campaignRepo.Update(ctx, campaign); err != nil {
		return nil, err
	}

	return campaign, nil
}

// DeleteCampaign deletes a campaign
func (s *CampaignService) DeleteCampaign(ctx context.Context, id uuid.UUID) error {
	campaign, err := s.campaignRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if campaign == nil {
		return apperror.NewNotFoundError("Campaign")
	}
	return s.campaignRepo.Delete(ctx, id)
}

// SendCampaign dispatches a campaign to its target leads. Only the
// email channel is wired; WhatsApp and Telegram are stored for later
// integration and rejected at send time.
func (s *CampaignService) SendCampaign(ctx context.Context, id uuid.UUID) (*entity.Campaign, error) {
	campaign, err := s.campaignRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if campaign == nil {
		return nil, apperror.NewNotFoundError("Campaign")
	}
	if campaign.Status != enum.CampaignStatusDraft && campaign.Status != enum.CampaignStatusFailed {
		return nil, apperror.NewBadRequestError("Campaign has already been sent")
	}
	if campaign.Channel != enum.CampaignChannelEmail {
		return nil, apperror.NewBadRequestError(
			campaign.Channel.String() + " channel is not configured for this tenant")
	}

	var leads []entity.Lead
	if campaign.TargetStage != nil {
		leads, err = s.leadRepo.ListByStage(ctx, *campaign.TargetStage)
	} else {
		leads, err = s.leadRepo.ListAll(ctx)
	}
	if err != nil {
		return nil, err
	}

	campaign.Status = enum.CampaignStatusSending
	if err := s.campaignRepo.Update(ctx, campaign); err != nil {
		return nil, err
	}

	sent, failed := 0, 0
	for _, lead := range leads {
		if lead.Email == nil || *lead.Email == "" {
			continue
		}
		if err := s.emailService.SendCampaignEmail(*lead.Email, campaign.Subject, campaign.Body, lead.Name); err != nil {
			failed++
			continue
		}
		sent++
	}

	now := time.Now()
	campaign.SentCount = sent
	campaign.FailedCount = failed
	campaign.SentAt = &now
	if sent == 0 && failed > 0 {
		campaign.Status = enum.CampaignStatusFailed
	} else {
		campaign.Status = enum.CampaignStatusSent
	}

	if err := s.campaignRepo.Update(ctx, campaign); err != nil {
		return nil, err
	}

	return campaign, nil
}
