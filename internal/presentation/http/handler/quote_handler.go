package handler

import (
	"fmt"

	"github.com/facturalink/cotizador-api/internal/application/service"
	"github.com/facturalink/cotizador-api/internal/domain/enum"
	"github.com/facturalink/cotizador-api/internal/presentation/http/dto/response"
	"github.com/facturalink/cotizador-api/pkg/pagination"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// QuoteHandler handles quote-related HTTP requests
type QuoteHandler struct {
	quoteService *service.QuoteService
}

// NewQuoteHandler creates a new quote handler
func NewQuoteHandler(quoteService *service.QuoteService) *QuoteHandler {
	return &QuoteHandler{quoteService: quoteService}
}

// QuoteConfigRequest represents the pricing configuration in a request
type QuoteConfigRequest struct {
	PackageID             string             `json:"package_id" binding:"required"`
	ItemIDs               []string           `json:"item_ids"`
	Volume                int                `json:"volume" binding:"min=0"`
	FinancingPlanID       *string            `json:"financing_plan_id"`
	PaymentMode           enum.PaymentMode   `json:"payment_mode"`
	ManualDiscountPct     float64            `json:"manual_discount_pct" binding:"min=0,max=100"`
	VATPct                *float64           `json:"vat_pct"`
	IncludeImplementation *bool              `json:"include_implementation"`
	Overrides             map[string]float64 `json:"overrides"`
}

// CreateQuoteRequest represents the create quote request body
type CreateQuoteRequest struct {
	LeadID     *string            `json:"lead_id"`
	CustomerID *string            `json:"customer_id"`
	Note       *string            `json:"note"`
	Config     QuoteConfigRequest `json:"config" binding:"required"`
}

func (r *QuoteConfigRequest) toInput() (*service.QuoteConfigInput, error) {
	packageID, err := uuid.Parse(r.PackageID)
	if err != nil {
		return nil, fmt.Errorf("invalid package ID")
	}

	itemIDs := make([]uuid.UUID, len(r.ItemIDs))
	for i, raw := range r.ItemIDs {
		id, err := uuid.Parse(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid item ID")
		}
		itemIDs[i] = id
	}

	var planID *uuid.UUID
	if r.FinancingPlanID != nil && *r.FinancingPlanID != "" {
		id, err := uuid.Parse(*r.FinancingPlanID)
		if err != nil {
			return nil, fmt.Errorf("invalid financing plan ID")
		}
		planID = &id
	}

	return &service.QuoteConfigInput{
		PackageID:             packageID,
		ItemIDs:               itemIDs,
		Volume:                r.Volume,
		FinancingPlanID:       planID,
		PaymentMode:           r.PaymentMode,
		ManualDiscountPct:     r.ManualDiscountPct,
		VATPct:                r.VATPct,
		IncludeImplementation: r.IncludeImplementation,
		Overrides:             r.Overrides,
	}, nil
}

// List handles listing quotes
// @Summary List Quotes
// @Description Get all quotes with pagination and filtering
// @Tags quotes
// @Security BearerAuth
// @Produce json
// @Param page query int false "Page number"
// @Param per_page query int false "Items per page"
// @Param search query string false "Search term"
// @Param status query string false "Status filter"
// @Param lead_id query string false "Lead filter"
// @Success 200 {object} response.APIResponse
// @Router /quotes [get]
func (h *QuoteHandler) List(c *gin.Context) {
	page := 1
	perPage := 15
	if p := c.Query("page"); p != "" {
		if parsed, err := parsePositiveInt(p); err == nil {
			page = parsed
		}
	}
	if pp := c.Query("per_page"); pp != "" {
		if parsed, err := parsePositiveInt(pp); err == nil {
			perPage = parsed
		}
	}

	input := &service.ListQuotesInput{
		Pagination: &pagination.PaginationParams{
			Page:    page,
			PerPage: perPage,
		},
		Search:    c.Query("search"),
		SortBy:    c.Query("sort_by"),
		SortOrder: c.Query("sort_order"),
	}

	if s := c.Query("status"); s != "" {
		if parsed, err := parseNonNegativeInt(s); err == nil {
			st := enum.QuoteStatus(parsed)
			input.Status = &st
		}
	}
	if l := c.Query("lead_id"); l != "" {
		if id, err := uuid.Parse(l); err == nil {
			input.LeadID = &id
		}
	}
	if cu := c.Query("customer_id"); cu != "" {
		if id, err := uuid.Parse(cu); err == nil {
			input.CustomerID = &id
		}
	}

	result, err := h.quoteService.ListQuotes(c.Request.Context(), input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Quotes retrieved successfully", result)
}

// Get handles getting a single quote
// @Summary Get Quote
// @Description Get a quote by ID with its line details
// @Tags quotes
// @Security BearerAuth
// @Produce json
// @Param id path string true "Quote ID"
// @Success 200 {object} response.APIResponse
// @Router /quotes/{id} [get]
func (h *QuoteHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid quote ID")
		return
	}

	quote, err := h.quoteService.GetQuote(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Quote retrieved successfully", quote)
}

// Compute handles the stateless pricing preview used by the quoting
// wizard. Nothing is persisted.
// @Summary Compute Quote
// @Description Compute a pricing preview without saving
// @Tags quotes
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body QuoteConfigRequest true "Pricing configuration"
// @Success 200 {object} response.APIResponse
// @Router /quotes/compute [post]
func (h *QuoteHandler) Compute(c *gin.Context) {
	var req QuoteConfigRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	input, err := req.toInput()
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	result, err := h.quoteService.ComputeQuote(c.Request.Context(), input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Quote computed successfully", result)
}

// Create handles creating a quote
// @Summary Create Quote
// @Description Compute and persist a quote as a draft
// @Tags quotes
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body CreateQuoteRequest true "Quote data"
// @Success 201 {object} response.APIResponse
// @Router /quotes [post]
func (h *QuoteHandler) Create(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	var req CreateQuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	config, err := req.Config.toInput()
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	var leadID *uuid.UUID
	if req.LeadID != nil && *req.LeadID != "" {
		parsed, err := uuid.Parse(*req.LeadID)
		if err != nil {
			response.BadRequest(c, "Invalid lead ID")
			return
		}
		leadID = &parsed
	}

	var customerID *uuid.UUID
	if req.CustomerID != nil && *req.CustomerID != "" {
		parsed, err := uuid.Parse(*req.CustomerID)
		if err != nil {
			response.BadRequest(c, "Invalid customer ID")
			return
		}
		customerID = &parsed
	}

	quote, err := h.quoteService.CreateQuote(c.Request.Context(), &service.CreateQuoteInput{
		UserID:     *userID,
		LeadID:     leadID,
		CustomerID: customerID,
		Note:       req.Note,
		Config:     *config,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Quote created successfully", quote)
}

// UpdateStatus handles quote lifecycle transitions
// @Summary Update Quote Status
// @Description Transition a quote to a new lifecycle status
// @Tags quotes
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Quote ID"
// @Success 200 {object} response.APIResponse
// @Router /quotes/{id}/status [patch]
func (h *QuoteHandler) UpdateStatus(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid quote ID")
		return
	}

	var req struct {
		Status enum.QuoteStatus `json:"status"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	quote, err := h.quoteService.UpdateQuoteStatus(c.Request.Context(), id, req.Status)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Quote status updated successfully", quote)
}

// Send handles emailing a quote to the prospect
// @Summary Send Quote
// @Description Email the quote summary and mark the quote as sent
// @Tags quotes
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Quote ID"
// @Success 200 {object} response.APIResponse
// @Router /quotes/{id}/send [post]
func (h *QuoteHandler) Send(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid quote ID")
		return
	}

	var req struct {
		Email string `json:"email" binding:"omitempty,email"`
	}
	// Body is optional; an empty body means use the lead's address
	_ = c.ShouldBindJSON(&req)

	quote, err := h.quoteService.SendQuote(c.Request.Context(), &service.SendQuoteInput{
		ID:    id,
		Email: req.Email,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Quote sent successfully", quote)
}

// Delete handles deleting a quote
// @Summary Delete Quote
// @Description Delete a quote by ID
// @Tags quotes
// @Security BearerAuth
// @Param id path string true "Quote ID"
// @Success 204
// @Router /quotes/{id} [delete]
func (h *QuoteHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid quote ID")
		return
	}

	if err := h.quoteService.DeleteQuote(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}

// ExpireStale handles expiring quotes past their validity date
// @Summary Expire Stale Quotes
// @Description Mark sent quotes past their validity date as expired
// @Tags quotes
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.APIResponse
// @Router /quotes/expire-stale [post]
func (h *QuoteHandler) ExpireStale(c *gin.Context) {
	count, err := h.quoteService.ExpireStaleQuotes(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Stale quotes expired", gin.H{"expired": count})
}

// Helper functions for parsing query parameters
func parsePositiveInt(s string) (int, error) {
	var result int
	_, err := fmt.Sscanf(s, "%d", &result)
	if err != nil || result < 1 {
		return 1, err
	}
	return result, nil
}

func parseNonNegativeInt(s string) (int, error) {
	var result int
	_, err := fmt.Sscanf(s, "%d", &result)
	if err != nil || result < 0 {
		return 0, err
	}
	return result, nil
}
