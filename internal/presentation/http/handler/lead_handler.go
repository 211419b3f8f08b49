package handler

import (
	"strconv"
	"time"

	"github.com/facturalink/cotizador-api/internal/application/service"
	"github.com/facturalink/cotizador-api/internal/domain/enum"
	"github.com/facturalink/cotizador-api/internal/presentation/http/dto/response"
	"github.com/facturalink/cotizador-api/pkg/pagination"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// LeadHandler handles lead-related HTTP requests
type LeadHandler struct {
	leadService *service.LeadService
}

// NewLeadHandler creates a new lead handler
func NewLeadHandler(leadService *service.LeadService) *LeadHandler {
	return &LeadHandler{leadService: leadService}
}

// parseLeadStage parses a stage query value, accepting both the stage
// name ("Won") and its numeric form
func parseLeadStage(s string) (enum.LeadStage, bool) {
	if n, err := strconv.Atoi(s); err == nil {
		stage := enum.LeadStage(n)
		return stage, stage.IsValid()
	}
	var stage enum.LeadStage
	if err := stage.UnmarshalJSON([]byte(strconv.Quote(s))); err != nil {
		return 0, false
	}
	// Unknown names fall through to the zero value; reject them unless
	// the caller actually asked for it
	if stage == enum.LeadStageNew && s != "New" {
		return 0, false
	}
	return stage, true
}

// List handles listing leads
// @Summary List Leads
// @Description Get all leads with pagination and filtering
// @Tags leads
// @Security BearerAuth
// @Produce json
// @Param page query int false "Page number"
// @Param per_page query int false "Items per page"
// @Param search query string false "Search term"
// @Param stage query string false "Pipeline stage filter"
// @Param source query string false "Source filter"
// @Success 200 {object} response.APIResponse
// @Router /leads [get]
func (h *LeadHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	perPage, _ := strconv.Atoi(c.DefaultQuery("per_page", "15"))

	input := &service.ListLeadsInput{
		Pagination: &pagination.PaginationParams{
			Page:    page,
			PerPage: perPage,
		},
		Search:    c.Query("search"),
		Source:    c.Query("source"),
		SortBy:    c.Query("sort_by"),
		SortOrder: c.Query("sort_order"),
	}

	if s := c.Query("stage"); s != "" {
		stage, ok := parseLeadStage(s)
		if !ok {
			response.BadRequest(c, "Invalid pipeline stage")
			return
		}
		input.Stage = &stage
	}

	result, err := h.leadService.ListLeads(c.Request.Context(), input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Leads retrieved successfully", result)
}

// Board handles the kanban board view: one column per pipeline stage,
// leads ordered by their board position
// @Summary Lead Board
// @Description Get the kanban board grouped by pipeline stage
// @Tags leads
// @Security BearerAuth
// @Produce json
// @Success 200 {object} response.APIResponse
// @Router /leads/board [get]
func (h *LeadHandler) Board(c *gin.Context) {
	board, err := h.leadService.GetBoard(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Board retrieved successfully", board)
}

// Get handles getting a single lead
// @Summary Get Lead
// @Description Get a lead by ID
// @Tags leads
// @Security BearerAuth
// @Produce json
// @Param id path string true "Lead ID"
// @Success 200 {object} response.APIResponse
// @Router /leads/{id} [get]
func (h *LeadHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid lead ID")
		return
	}

	lead, err := h.leadService.GetLead(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Lead retrieved successfully", lead)
}

// Create handles creating a lead
// @Summary Create Lead
// @Description Create a new lead in the New stage
// @Tags leads
// @Security BearerAuth
// @Accept json
// @Produce json
// @Success 201 {object} response.APIResponse
// @Router /leads [post]
func (h *LeadHandler) Create(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	var req struct {
		Name            string  `json:"name" binding:"required,min=2,max=255"`
		Company         *string `json:"company"`
		Email           *string `json:"email" binding:"omitempty,email"`
		Phone           *string `json:"phone"`
		TaxID           *string `json:"tax_id"`
		Source          *string `json:"source"`
		EstimatedVolume int     `json:"estimated_volume" binding:"min=0"`
		Notes           *string `json:"notes"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	lead, err := h.leadService.CreateLead(c.Request.Context(), &service.CreateLeadInput{
		UserID:          *userID,
		Name:            req.Name,
		Company:         req.Company,
		Email:           req.Email,
		Phone:           req.Phone,
		TaxID:           req.TaxID,
		Source:          req.Source,
		EstimatedVolume: req.EstimatedVolume,
		Notes:           req.Notes,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Lead created successfully", lead)
}

// Update handles updating a lead
// @Summary Update Lead
// @Description Update an existing lead
// @Tags leads
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Lead ID"
// @Success 200 {object} response.APIResponse
// @Router /leads/{id} [put]
func (h *LeadHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid lead ID")
		return
	}

	var req struct {
		Name            *string `json:"name" binding:"omitempty,min=2,max=255"`
		Company         *string `json:"company"`
		Email           *string `json:"email" binding:"omitempty,email"`
		Phone           *string `json:"phone"`
		TaxID           *string `json:"tax_id"`
		Source          *string `json:"source"`
		EstimatedVolume *int    `json:"estimated_volume" binding:"omitempty,min=0"`
		Notes           *string `json:"notes"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	lead, err := h.leadService.UpdateLead(c.Request.Context(), &service.UpdateLeadInput{
		ID:              id,
		Name:            req.Name,
		Company:         req.Company,
		Email:           req.Email,
		Phone:           req.Phone,
		TaxID:           req.TaxID,
		Source:          req.Source,
		EstimatedVolume: req.EstimatedVolume,
		Notes:           req.Notes,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Lead updated successfully", lead)
}

// Move handles dragging a lead to a new stage or board position
// @Summary Move Lead
// @Description Move a lead to a pipeline stage and board position
// @Tags leads
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Lead ID"
// @Success 200 {object} response.APIResponse
// @Router /leads/{id}/move [patch]
func (h *LeadHandler) Move(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid lead ID")
		return
	}

	var req struct {
		Stage    enum.LeadStage `json:"stage"`
		Position int            `json:"position" binding:"min=0"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	lead, err := h.leadService.MoveLead(c.Request.Context(), id, req.Stage, req.Position)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Lead moved successfully", lead)
}

// Delete handles deleting a lead
// @Summary Delete Lead
// @Description Delete a lead by ID
// @Tags leads
// @Security BearerAuth
// @Param id path string true "Lead ID"
// @Success 204
// @Router /leads/{id} [delete]
func (h *LeadHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid lead ID")
		return
	}

	if err := h.leadService.DeleteLead(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}

// Export streams the tenant's leads as a CSV download
// @Summary Export Leads
// @Description Download all leads as CSV
// @Tags leads
// @Security BearerAuth
// @Produce text/csv
// @Success 200
// @Router /leads/export [get]
func (h *LeadHandler) Export(c *gin.Context) {
	data, err := h.leadService.ExportCSV(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	filename := "leads-" + time.Now().Format("2006-01-02") + ".csv"
	c.Header("Content-Disposition", "attachment; filename="+filename)
	c.Data(200, "text/csv", data)
}
