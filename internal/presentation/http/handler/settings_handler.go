package handler

import (
	"github.com/facturalink/cotizador-api/internal/application/service"
	"github.com/facturalink/cotizador-api/internal/domain/entity"
	"github.com/facturalink/cotizador-api/internal/presentation/http/dto/response"
	"github.com/gin-gonic/gin"
)

// SettingsHandler handles tenant settings HTTP requests
type SettingsHandler struct {
	settingsService *service.SettingsService
}

// NewSettingsHandler creates a new settings handler
func NewSettingsHandler(settingsService *service.SettingsService) *SettingsHandler {
	return &SettingsHandler{settingsService: settingsService}
}

// GetSettings retrieves the current tenant's settings
func (h *SettingsHandler) GetSettings(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	settings, err := h.settingsService.GetSettings(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Settings retrieved successfully", settings)
}

// UpdateSettings updates the current tenant's settings
func (h *SettingsHandler) UpdateSettings(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	var req struct {
		LogoURL        *string `json:"logo_url"`
		PrimaryColor   *string `json:"primary_color"`
		SecondaryColor *string `json:"secondary_color"`

		Currency   *string `json:"currency"`
		Timezone   *string `json:"timezone"`
		Locale     *string `json:"locale"`
		DateFormat *string `json:"date_format"`

		VATPct                       *float64 `json:"vat_pct" binding:"omitempty,min=0,max=100"`
		TaxLabel                     *string  `json:"tax_label"`
		QuotePrefix                  *string  `json:"quote_prefix"`
		QuoteValidityDays            *int     `json:"quote_validity_days" binding:"omitempty,min=0"`
		DefaultIncludeImplementation *bool    `json:"default_include_implementation"`

		EmailNotifications *bool   `json:"email_notifications"`
		WebhookURL         *string `json:"webhook_url"`

		Features *entity.TenantFeatures `json:"features"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	settings, err := h.settingsService.UpdateSettings(c.Request.Context(), &service.UpdateSettingsInput{
		LogoURL:                      req.LogoURL,
		PrimaryColor:                 req.PrimaryColor,
		SecondaryColor:               req.SecondaryColor,
		Currency:                     req.Currency,
		Timezone:                     req.Timezone,
		Locale:                       req.Locale,
		DateFormat:                   req.DateFormat,
		VATPct:                       req.VATPct,
		TaxLabel:                     req.TaxLabel,
		QuotePrefix:                  req.QuotePrefix,
		QuoteValidityDays:            req.QuoteValidityDays,
		DefaultIncludeImplementation: req.DefaultIncludeImplementation,
		EmailNotifications:           req.EmailNotifications,
		WebhookURL:                   req.WebhookURL,
		Features:                     req.Features,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Settings updated successfully", settings)
}
