package handler

import (
	"strconv"

	"github.com/facturalink/cotizador-api/internal/application/service"
	"github.com/facturalink/cotizador-api/internal/domain/enum"
	"github.com/facturalink/cotizador-api/internal/presentation/http/dto/response"
	"github.com/facturalink/cotizador-api/pkg/pagination"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// CampaignHandler handles outreach campaign HTTP requests
type CampaignHandler struct {
	campaignService *service.CampaignService
}

// NewCampaignHandler creates a new campaign handler
func NewCampaignHandler(campaignService *service.CampaignService) *CampaignHandler {
	return &CampaignHandler{campaignService: campaignService}
}

// List handles listing campaigns
// @Summary List Campaigns
// @Description Get all campaigns with pagination
// @Tags campaigns
// @Security BearerAuth
// @Produce json
// @Param page query int false "Page number"
// @Param per_page query int false "Items per page"
// @Param search query string false "Search term"
// @Success 200 {object} response.APIResponse
// @Router /campaigns [get]
func (h *CampaignHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	perPage, _ := strconv.Atoi(c.DefaultQuery("per_page", "15"))

	params := &pagination.PaginationParams{
		Page:    page,
		PerPage: perPage,
	}

	result, err := h.campaignService.ListCampaigns(c.Request.Context(), params, c.Query("search"))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Campaigns retrieved successfully", result)
}

// Get handles getting a single campaign
func (h *CampaignHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid campaign ID")
		return
	}

	campaign, err := h.campaignService.GetCampaign(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Campaign retrieved successfully", campaign)
}

// Create handles creating a campaign
// @Summary Create Campaign
// @Description Create a new campaign in draft status
// @Tags campaigns
// @Security BearerAuth
// @Accept json
// @Produce json
// @Success 201 {object} response.APIResponse
// @Router /campaigns [post]
func (h *CampaignHandler) Create(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	var req struct {
		Name        string          `json:"name" binding:"required,min=2,max=255"`
		Channel     int             `json:"channel" binding:"min=0,max=2"`
		Subject     string          `json:"subject"`
		Body        string          `json:"body" binding:"required"`
		TargetStage *enum.LeadStage `json:"target_stage"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	campaign, err := h.campaignService.CreateCampaign(c.Request.Context(), &service.CreateCampaignInput{
		UserID:      *userID,
		Name:        req.Name,
		Channel:     enum.CampaignChannel(req.Channel),
		Subject:     req.Subject,
		Body:        req.Body,
		TargetStage: req.TargetStage,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Campaign created successfully", campaign)
}

// Update handles updating a draft campaign
func (h *CampaignHandler) Update(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid campaign ID")
		return
	}

	var req struct {
		Name        *string         `json:"name" binding:"omitempty,min=2,max=255"`
		Subject     *string         `json:"subject"`
		Body        *string         `json:"body"`
		TargetStage *enum.LeadStage `json:"target_stage"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	campaign, err := h.campaignService.UpdateCampaign(c.Request.Context(), &service.UpdateCampaignInput{
		ID:          id,
		Name:        req.Name,
		Subject:     req.Subject,
		Body:        req.Body,
		TargetStage: req.TargetStage,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Campaign updated successfully", campaign)
}

// Delete handles deleting a campaign
func (h *CampaignHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid campaign ID")
		return
	}

	if err := h.campaignService.DeleteCampaign(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}

// Send handles dispatching a campaign to its target leads
// @Summary Send Campaign
// @Description Dispatch the campaign to every targeted lead
// @Tags campaigns
// @Security BearerAuth
// @Produce json
// @Param id path string true "Campaign ID"
// @Success 200 {object} response.APIResponse
// @Router /campaigns/{id}/send [post]
func (h *CampaignHandler) Send(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid campaign ID")
		return
	}

	campaign, err := h.campaignService.SendCampaign(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Campaign dispatched", campaign)
}
