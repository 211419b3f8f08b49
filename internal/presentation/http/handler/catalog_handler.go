package handler

import (
	"strconv"

	"github.com/facturalink/cotizador-api/internal/application/service"
	"github.com/facturalink/cotizador-api/internal/domain/enum"
	"github.com/facturalink/cotizador-api/internal/presentation/http/dto/request"
	"github.com/facturalink/cotizador-api/internal/presentation/http/dto/response"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// CatalogHandler handles the quoting catalog: package tiers, line items
// and financing plans
type CatalogHandler struct {
	catalogService *service.CatalogService
}

// NewCatalogHandler creates a new catalog handler
func NewCatalogHandler(catalogService *service.CatalogService) *CatalogHandler {
	return &CatalogHandler{catalogService: catalogService}
}

// ListPackages handles listing package tiers
// @Summary List Packages
// @Description Get all package tiers ordered for display
// @Tags catalog
// @Security BearerAuth
// @Produce json
// @Param active query bool false "Only active packages"
// @Success 200 {object} response.APIResponse
// @Router /catalog/packages [get]
func (h *CatalogHandler) ListPackages(c *gin.Context) {
	activeOnly := c.Query("active") == "true"

	packages, err := h.catalogService.ListPackages(c.Request.Context(), activeOnly)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Packages retrieved successfully", packages)
}

// SuggestPackage handles suggesting the package tier for a DTE volume
// @Summary Suggest Package
// @Description Get the smallest package tier covering the given annual volume
// @Tags catalog
// @Security BearerAuth
// @Produce json
// @Param volume query int true "Annual DTE volume"
// @Success 200 {object} response.APIResponse
// @Router /catalog/packages/suggest [get]
func (h *CatalogHandler) SuggestPackage(c *gin.Context) {
	volume, err := strconv.Atoi(c.Query("volume"))
	if err != nil || volume < 0 {
		response.BadRequest(c, "Invalid volume")
		return
	}

	pkg, err := h.catalogService.SuggestPackage(c.Request.Context(), volume)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Package suggested successfully", pkg)
}

// GetPackage handles getting a single package tier
func (h *CatalogHandler) GetPackage(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid package ID")
		return
	}

	pkg, err := h.catalogService.GetPackage(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Package retrieved successfully", pkg)
}

// CreatePackage handles creating a package tier
func (h *CatalogHandler) CreatePackage(c *gin.Context) {
	var req request.CreatePackageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	pkg, err := h.catalogService.CreatePackage(c.Request.Context(), &service.CreatePackageInput{
		Name:               req.Name,
		AnnualPrice:        req.AnnualPrice,
		MonthlyPrice:       req.MonthlyPrice,
		ImplementationCost: req.ImplementationCost,
		DTECapacity:        req.DTECapacity,
		DisplayOrder:       req.DisplayOrder,
		IsActive:           isActive,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Package created successfully", pkg)
}

// UpdatePackage handles updating a package tier
func (h *CatalogHandler) UpdatePackage(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid package ID")
		return
	}

	var req request.UpdatePackageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	pkg, err := h.catalogService.UpdatePackage(c.Request.Context(), &service.UpdatePackageInput{
		ID:                 id,
		Name:               req.Name,
		AnnualPrice:        req.AnnualPrice,
		MonthlyPrice:       req.MonthlyPrice,
		ImplementationCost: req.ImplementationCost,
		DTECapacity:        req.DTECapacity,
		DisplayOrder:       req.DisplayOrder,
		IsActive:           req.IsActive,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Package updated successfully", pkg)
}

// DeletePackage handles deleting a package tier
func (h *CatalogHandler) DeletePackage(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid package ID")
		return
	}

	if err := h.catalogService.DeletePackage(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}

// ListLineItems handles listing catalog line items
// @Summary List Line Items
// @Description Get catalog items, optionally filtered by category
// @Tags catalog
// @Security BearerAuth
// @Produce json
// @Param category query int false "Category filter (0=module, 1=service)"
// @Param active query bool false "Only active items"
// @Success 200 {object} response.APIResponse
// @Router /catalog/items [get]
func (h *CatalogHandler) ListLineItems(c *gin.Context) {
	activeOnly := c.Query("active") == "true"

	var category *enum.ItemCategory
	if raw := c.Query("category"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || !enum.ItemCategory(parsed).IsValid() {
			response.BadRequest(c, "Invalid category")
			return
		}
		cat := enum.ItemCategory(parsed)
		category = &cat
	}

	items, err := h.catalogService.ListLineItems(c.Request.Context(), category, activeOnly)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Line items retrieved successfully", items)
}

// GetLineItem handles getting a single catalog item
func (h *CatalogHandler) GetLineItem(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid item ID")
		return
	}

	item, err := h.catalogService.GetLineItem(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Line item retrieved successfully", item)
}

// CreateLineItem handles creating a catalog item
func (h *CatalogHandler) CreateLineItem(c *gin.Context) {
	var req request.CreateLineItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	item, err := h.catalogService.CreateLineItem(c.Request.Context(), &service.CreateLineItemInput{
		Category:     enum.ItemCategory(req.Category),
		Name:         req.Name,
		Description:  req.Description,
		PricingMode:  enum.PricingMode(req.PricingMode),
		AnnualPrice:  req.AnnualPrice,
		MonthlyPrice: req.MonthlyPrice,
		OneTimePrice: req.OneTimePrice,
		UnitPrice:    req.UnitPrice,
		BilledOnce:   req.BilledOnce,
		DisplayOrder: req.DisplayOrder,
		IsActive:     isActive,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Line item created successfully", item)
}

// UpdateLineItem handles updating a catalog item
func (h *CatalogHandler) UpdateLineItem(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid item ID")
		return
	}

	var req request.UpdateLineItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	var pricingMode *enum.PricingMode
	if req.PricingMode != nil {
		pm := enum.PricingMode(*req.PricingMode)
		pricingMode = &pm
	}

	item, err := h.catalogService.UpdateLineItem(c.Request.Context(), &service.UpdateLineItemInput{
		ID:           id,
		Name:         req.Name,
		Description:  req.Description,
		PricingMode:  pricingMode,
		AnnualPrice:  req.AnnualPrice,
		MonthlyPrice: req.MonthlyPrice,
		OneTimePrice: req.OneTimePrice,
		UnitPrice:    req.UnitPrice,
		BilledOnce:   req.BilledOnce,
		DisplayOrder: req.DisplayOrder,
		IsActive:     req.IsActive,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Line item updated successfully", item)
}

// DeleteLineItem handles deleting a catalog item
func (h *CatalogHandler) DeleteLineItem(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid item ID")
		return
	}

	if err := h.catalogService.DeleteLineItem(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}

// ListFinancingPlans handles listing financing plans
// @Summary List Financing Plans
// @Description Get financing plans ordered for display
// @Tags catalog
// @Security BearerAuth
// @Produce json
// @Param active query bool false "Only active plans"
// @Success 200 {object} response.APIResponse
// @Router /catalog/plans [get]
func (h *CatalogHandler) ListFinancingPlans(c *gin.Context) {
	activeOnly := c.Query("active") == "true"

	plans, err := h.catalogService.ListFinancingPlans(c.Request.Context(), activeOnly)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Financing plans retrieved successfully", plans)
}

// GetFinancingPlan handles getting a single financing plan
func (h *CatalogHandler) GetFinancingPlan(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid plan ID")
		return
	}

	plan, err := h.catalogService.GetFinancingPlan(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Financing plan retrieved successfully", plan)
}

// CreateFinancingPlan handles creating a financing plan
func (h *CatalogHandler) CreateFinancingPlan(c *gin.Context) {
	var req request.CreateFinancingPlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	plan, err := h.catalogService.CreateFinancingPlan(c.Request.Context(), &service.CreateFinancingPlanInput{
		Title:             req.Title,
		TermMonths:        req.TermMonths,
		InstallmentCount:  req.InstallmentCount,
		AdjustmentType:    enum.AdjustmentType(req.AdjustmentType),
		AdjustmentRatePct: req.AdjustmentRatePct,
		IsPopular:         req.IsPopular,
		DisplayOrder:      req.DisplayOrder,
		ShowBreakdown:     req.ShowBreakdown,
		IsActive:          isActive,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Financing plan created successfully", plan)
}

// UpdateFinancingPlan handles updating a financing plan
func (h *CatalogHandler) UpdateFinancingPlan(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid plan ID")
		return
	}

	var req request.UpdateFinancingPlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	var adjustmentType *enum.AdjustmentType
	if req.AdjustmentType != nil {
		at := enum.AdjustmentType(*req.AdjustmentType)
		adjustmentType = &at
	}

	plan, err := h.catalogService.UpdateFinancingPlan(c.Request.Context(), &service.UpdateFinancingPlanInput{
		ID:                id,
		Title:             req.Title,
		TermMonths:        req.TermMonths,
		InstallmentCount:  req.InstallmentCount,
		AdjustmentType:    adjustmentType,
		AdjustmentRatePct: req.AdjustmentRatePct,
		IsPopular:         req.IsPopular,
		DisplayOrder:      req.DisplayOrder,
		ShowBreakdown:     req.ShowBreakdown,
		IsActive:          req.IsActive,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Financing plan updated successfully", plan)
}

// DeleteFinancingPlan handles deleting a financing plan
func (h *CatalogHandler) DeleteFinancingPlan(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid plan ID")
		return
	}

	if err := h.catalogService.DeleteFinancingPlan(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}
