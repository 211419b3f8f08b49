package routes

import (
	"time"

	"github.com/facturalink/cotizador-api/internal/config"
	domainRepo "github.com/facturalink/cotizador-api/internal/domain/repository"
	"github.com/facturalink/cotizador-api/internal/presentation/http/handler"
	"github.com/facturalink/cotizador-api/internal/presentation/http/middleware"
	"github.com/facturalink/cotizador-api/pkg/utils"
	"github.com/gin-gonic/gin"
)

// Handlers holds all the HTTP handlers used for route registration.
type Handlers struct {
	Auth      *handler.AuthHandler
	Tenant    *handler.TenantHandler
	Catalog   *handler.CatalogHandler
	Lead      *handler.LeadHandler
	Quote     *handler.QuoteHandler
	Campaign  *handler.CampaignHandler
	Customer  *handler.CustomerHandler
	Dashboard *handler.DashboardHandler
	Settings  *handler.SettingsHandler
	User      *handler.UserHandler
}

// Deps holds shared dependencies needed by the routes.
type Deps struct {
	JWTManager      *utils.JWTManager
	Cfg             *config.Config
	TenantRepo      domainRepo.TenantRepository
	IdempotencyRepo domainRepo.IdempotencyRepository
}

// Setup creates the Gin router and registers all routes.
func Setup(h *Handlers, deps *Deps) *gin.Engine {
	router := gin.New()

	// Global middleware
	router.Use(gin.Recovery())
	router.Use(middleware.LoggerMiddleware())
	router.Use(middleware.CORSMiddleware(&deps.Cfg.CORS))

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"service": deps.Cfg.App.Name,
		})
	})

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		// Public routes (no authentication required)
		registerAuthRoutes(v1, h)

		// Protected routes (authentication required)
		protected := v1.Group("")
		protected.Use(middleware.AuthMiddleware(deps.JWTManager))
		protected.Use(middleware.TenantMiddleware(deps.TenantRepo))

		// Per-tenant rate limiter
		rateLimiter := middleware.NewTenantRateLimiter(middleware.RateLimiterConfig{
			RequestsPerSecond: float64(deps.Cfg.RateLimit.Requests) / float64(deps.Cfg.RateLimit.Duration),
			BurstSize:         deps.Cfg.RateLimit.Requests,
			CleanupInterval:   5 * time.Minute,
			EntryTTL:          10 * time.Minute,
		})
		protected.Use(rateLimiter.Middleware())

		registerProtectedRoutes(protected, h, deps)
	}

	return router
}

func registerAuthRoutes(v1 *gin.RouterGroup, h *Handlers) {
	auth := v1.Group("/auth")
	{
		auth.POST("/login", h.Auth.Login)
		auth.POST("/register", h.Auth.Register)
		auth.POST("/refresh", h.Auth.RefreshToken)
		auth.POST("/forgot-password", h.Auth.ForgotPassword)
		auth.POST("/reset-password", h.Auth.ResetPassword)
		// Google OAuth routes
		auth.GET("/google", h.Auth.GoogleRedirect)
		auth.GET("/google/callback", h.Auth.GoogleCallback)
	}
}

func registerProtectedRoutes(protected *gin.RouterGroup, h *Handlers, deps *Deps) {
	// Auth/Profile routes
	protected.POST("/auth/logout", h.Auth.Logout)
	protected.GET("/profile", h.Auth.GetProfile)
	protected.PUT("/profile", h.Auth.UpdateProfile)
	protected.PUT("/profile/password", h.Auth.ChangePassword)

	// Tenant settings
	settings := protected.Group("/settings")
	settings.Use(middleware.RequireTenant())
	settings.Use(middleware.RequirePermission("manage-settings"))
	{
		settings.GET("", h.Settings.GetSettings)
		settings.PUT("", h.Settings.UpdateSettings)
	}

	// Dashboard
	dashboard := protected.Group("/dashboard")
	dashboard.Use(middleware.RequireTenant())
	dashboard.Use(middleware.RequirePermission("view-dashboard"))
	{
		dashboard.GET("", h.Dashboard.GetStats)
	}

	// Tenants
	registerTenantRoutes(protected, h)

	// Quoting catalog
	registerCatalogRoutes(protected, h)

	// Leads
	registerLeadRoutes(protected, h)

	// Quotes
	registerQuoteRoutes(protected, h, deps)

	// Campaigns
	registerCampaignRoutes(protected, h)

	// Customers
	registerCustomerRoutes(protected, h)

	// Users (Admin)
	registerUserRoutes(protected, h)

	// Roles (Admin)
	registerRoleRoutes(protected, h)

	// Permissions (Admin)
	registerPermissionRoutes(protected, h)

	// Super Admin routes
	registerAdminRoutes(protected, h)
}

func registerTenantRoutes(protected *gin.RouterGroup, h *Handlers) {
	tenants := protected.Group("/tenants")
	{
		tenants.GET("", h.Tenant.ListTenants)
		tenants.POST("", h.Tenant.CreateTenant)
		tenants.GET("/current", h.Tenant.GetCurrentTenant)
		tenants.PUT("/current", h.Tenant.UpdateTenant)
		tenants.GET("/current/members", h.Tenant.ListMembers)
		tenants.POST("/current/members", h.Tenant.InviteMember)
		tenants.PUT("/current/members/:user_id", h.Tenant.UpdateMemberRole)
		tenants.DELETE("/current/members/:user_id", h.Tenant.RemoveMember)
	}
}

func registerCatalogRoutes(protected *gin.RouterGroup, h *Handlers) {
	catalog := protected.Group("/catalog")
	catalog.Use(middleware.RequireTenant())
	{
		// Reads are open to any member so the quoting wizard can load
		// the catalog
		catalog.GET("/packages", h.Catalog.ListPackages)
		catalog.GET("/packages/suggest", h.Catalog.SuggestPackage)
		catalog.GET("/packages/:id", h.Catalog.GetPackage)
		catalog.GET("/items", h.Catalog.ListLineItems)
		catalog.GET("/items/:id", h.Catalog.GetLineItem)
		catalog.GET("/plans", h.Catalog.ListFinancingPlans)
		catalog.GET("/plans/:id", h.Catalog.GetFinancingPlan)

		manage := catalog.Group("")
		manage.Use(middleware.RequirePermission("manage-catalog"))
		{
			manage.POST("/packages", h.Catalog.CreatePackage)
			manage.PUT("/packages/:id", h.Catalog.UpdatePackage)
			manage.DELETE("/packages/:id", h.Catalog.DeletePackage)
			manage.POST("/items", h.Catalog.CreateLineItem)
			manage.PUT("/items/:id", h.Catalog.UpdateLineItem)
			manage.DELETE("/items/:id", h.Catalog.DeleteLineItem)
			manage.POST("/plans", h.Catalog.CreateFinancingPlan)
			manage.PUT("/plans/:id", h.Catalog.UpdateFinancingPlan)
			manage.DELETE("/plans/:id", h.Catalog.DeleteFinancingPlan)
		}
	}
}

func registerLeadRoutes(protected *gin.RouterGroup, h *Handlers) {
	leads := protected.Group("/leads")
	leads.Use(middleware.RequireTenant())
	leads.Use(middleware.RequirePermission("manage-leads"))
	{
		leads.GET("", h.Lead.List)
		leads.POST("", h.Lead.Create)
		leads.GET("/board", h.Lead.Board)
		leads.GET("/export", h.Lead.Export)
		leads.GET("/:id", h.Lead.Get)
		leads.PUT("/:id", h.Lead.Update)
		leads.PATCH("/:id/move", h.Lead.Move)
		leads.DELETE("/:id", h.Lead.Delete)
	}
}

func registerQuoteRoutes(protected *gin.RouterGroup, h *Handlers, deps *Deps) {
	quotes := protected.Group("/quotes")
	quotes.Use(middleware.RequireTenant())
	quotes.Use(middleware.RequirePermission("manage-quotes"))
	{
		quotes.GET("", h.Quote.List)
		quotes.POST("/compute", h.Quote.Compute)
		// Quote creation uses idempotency middleware to prevent duplicates
		quotes.POST("", middleware.Idempotency(middleware.IdempotencyConfig{
			Repo: deps.IdempotencyRepo,
		}), h.Quote.Create)
		quotes.POST("/expire-stale", h.Quote.ExpireStale)
		quotes.GET("/:id", h.Quote.Get)
		quotes.PATCH("/:id/status", h.Quote.UpdateStatus)
		quotes.POST("/:id/send", middleware.RequirePermission("send-quotes"), h.Quote.Send)
		quotes.DELETE("/:id", h.Quote.Delete)
	}
}

func registerCampaignRoutes(protected *gin.RouterGroup, h *Handlers) {
	campaigns := protected.Group("/campaigns")
	campaigns.Use(middleware.RequireTenant())
	campaigns.Use(middleware.RequirePermission("manage-campaigns"))
	{
		campaigns.GET("", h.Campaign.List)
		campaigns.POST("", h.Campaign.Create)
		campaigns.GET("/:id", h.Campaign.Get)
		campaigns.PUT("/:id", h.Campaign.Update)
		campaigns.POST("/:id/send", h.Campaign.Send)
		campaigns.DELETE("/:id", h.Campaign.Delete)
	}
}

func registerCustomerRoutes(protected *gin.RouterGroup, h *Handlers) {
	customers := protected.Group("/customers")
	customers.Use(middleware.RequirePermission("manage-customers"))
	{
		customers.GET("", h.Customer.List)
		customers.POST("", h.Customer.Create)
		customers.GET("/:id", h.Customer.Get)
		customers.PUT("/:id", h.Customer.Update)
		customers.DELETE("/:id", h.Customer.Delete)
	}
}

func registerUserRoutes(protected *gin.RouterGroup, h *Handlers) {
	users := protected.Group("/users")
	users.Use(middleware.RequirePermission("manage-users"))
	{
		users.GET("", h.User.List)
		users.GET("/:id", h.User.Get)
		users.PUT("/:id/roles", h.User.UpdateRoles)
		users.DELETE("/:id", h.User.Delete)
	}
}

func registerRoleRoutes(protected *gin.RouterGroup, h *Handlers) {
	roles := protected.Group("/roles")
	roles.Use(middleware.RequirePermission("manage-users"))
	{
		roles.GET("", h.User.ListRoles)
	}
}

func registerPermissionRoutes(protected *gin.RouterGroup, h *Handlers) {
	permissions := protected.Group("/permissions")
	permissions.Use(middleware.RequirePermission("manage-users"))
	{
		permissions.GET("", h.User.ListPermissions)
	}
}

func registerAdminRoutes(protected *gin.RouterGroup, h *Handlers) {
	admin := protected.Group("/admin")
	admin.Use(middleware.RequireRole("super-admin"))
	{
		admin.GET("/tenants", h.Tenant.ListAllTenants)
		admin.POST("/tenants/assign-user", h.Tenant.AssignUserToTenant)
	}
}
