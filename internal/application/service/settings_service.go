package service

import (
	"context"

	"github.com/facturalink/cotizador-api/internal/domain/entity"
	"github.com/facturalink/cotizador-api/internal/domain/repository"
	infraRepo "github.com/facturalink/cotizador-api/internal/infrastructure/repository"
	"github.com/facturalink/cotizador-api/pkg/apperror"
)

// SettingsService handles tenant settings: quoting defaults, branding
// and feature flags
type SettingsService struct {
	tenantRepo repository.TenantRepository
}

// NewSettingsService creates a new settings service
func NewSettingsService(tenantRepo repository.TenantRepository) *SettingsService {
	return &SettingsService{tenantRepo: tenantRepo}
}

// GetSettings retrieves the current tenant's settings
func (s *SettingsService) GetSettings(ctx context.Context) (*entity.TenantSettings, error) {
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

	return &tenant.Settings, nil
}

// UpdateSettingsInput represents the input for updating tenant settings.
// Nil fields are left unchanged.
type UpdateSettingsInput struct {
	LogoURL        *string
	PrimaryColor   *string
	SecondaryColor *string

	Currency   *string
	Timezone   *string
	Locale     *string
	DateFormat *string

	VATPct                       *float64
	TaxLabel                     *string
	QuotePrefix                  *string
	QuoteValidityDays            *int
	DefaultIncludeImplementation *bool

	EmailNotifications *bool
	WebhookURL         *string

	Features *entity.TenantFeatures
}

// UpdateSettings updates the current tenant's settings
func (s *SettingsService) UpdateSettings(ctx context.Context, input *UpdateSettingsInput) (*entity.TenantSettings, error) {
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

	settings := &tenant.Settings

	if input.LogoURL != nil {
		settings.LogoURL = *input.LogoURL
	}
	if input.PrimaryColor != nil {
		settings.PrimaryColor = *input.PrimaryColor
	}
	if input.SecondaryColor != nil {
		settings.SecondaryColor = *input.SecondaryColor
	}
	if input.Currency != nil {
		settings.Currency = *input.Currency
	}
	if input.Timezone != nil {
		settings.Timezone = *input.Timezone
	}
	if input.Locale != nil {
		settings.Locale = *input.Locale
	}
	if input.DateFormat != nil {
		settings.DateFormat = *input.DateFormat
	}
	if input.VATPct != nil {
		if *input.VATPct < 0 {
			return nil, apperror.NewBadRequestError("VAT percentage must not be negative")
		}
		settings.VATPct = *input.VATPct
	}
	if input.TaxLabel != nil {
		settings.TaxLabel = *input.TaxLabel
	}
	if input.QuotePrefix != nil {
		settings.QuotePrefix = *input.QuotePrefix
	}
	if input.QuoteValidityDays != nil {
		if *input.QuoteValidityDays < 0 {
			return nil, apperror.NewBadRequestError("Quote validity days must not be negative")
		}
		settings.QuoteValidityDays = *input.QuoteValidityDays
	}
	if input.DefaultIncludeImplementation != nil {
		settings.DefaultIncludeImplementation = *input.DefaultIncludeImplementation
	}
	if input.EmailNotifications != nil {
		settings.EmailNotifications = *input.EmailNotifications
	}
	if input.WebhookURL != nil {
		settings.WebhookURL = *input.WebhookURL
	}
	if input.Features != nil {
		settings.Features = *input.Features
	}

	if err := s.tenantRepo.Update(ctx, tenant); err != nil {
		return nil, err
	}

	return settings, nil
}
