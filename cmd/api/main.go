package main

import (
	"log"
	"os"

	"github.com/facturalink/cotizador-api/internal/application/service"
	"github.com/facturalink/cotizador-api/internal/config"
	"github.com/facturalink/cotizador-api/internal/infrastructure/database"
	"github.com/facturalink/cotizador-api/internal/infrastructure/repository"
	"github.com/facturalink/cotizador-api/internal/presentation/http/handler"
	"github.com/facturalink/cotizador-api/internal/presentation/http/routes"
	"github.com/facturalink/cotizador-api/pkg/email"
	"github.com/facturalink/cotizador-api/pkg/oauth"
	"github.com/facturalink/cotizador-api/pkg/utils"
	"github.com/gin-gonic/gin"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Connect to database
	db, err := database.NewPostgresDB(&cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Run auto-migrations
	if err := database.AutoMigrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Seed default roles and permissions
	if err := database.SeedDefaultData(db); err != nil {
		log.Printf("Warning: Failed to seed default data: %v", err)
	}

	// Initialize JWT manager
	jwtManager := utils.NewJWTManager(
		cfg.JWT.Secret,
		cfg.JWT.ExpiryHours,
		cfg.JWT.RefreshExpiryHours,
	)

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	roleRepo := repository.NewRoleRepository(db)
	permissionRepo := repository.NewPermissionRepository(db)
	tenantRepo := repository.NewTenantRepository(db)
	packageRepo := repository.NewPackageRepository(db)
	lineItemRepo := repository.NewLineItemRepository(db)
	financingPlanRepo := repository.NewFinancingPlanRepository(db)
	leadRepo := repository.NewLeadRepository(db)
	quoteRepo := repository.NewQuoteRepository(db)
	campaignRepo := repository.NewCampaignRepository(db)
	customerRepo := repository.NewCustomerRepository(db)
	idempotencyRepo := repository.NewIdempotencyRepository(db)
	analyticsRepo := repository.NewAnalyticsRepository(db)
	passwordResetRepo := repository.NewPasswordResetTokenRepository(db)

	// Initialize email service
	emailService := email.NewEmailService(email.EmailConfig{
		SMTPHost:     cfg.Email.SMTPHost,
		SMTPPort:     cfg.Email.SMTPPort,
		SMTPUsername: cfg.Email.SMTPUsername,
		SMTPPassword: cfg.Email.SMTPPassword,
		FromName:     cfg.Email.FromName,
		FromEmail:    cfg.Email.FromEmail,
		FrontendURL:  cfg.Email.FrontendURL,
	})

	// Initialize Google OAuth service
	googleOAuthService := oauth.NewGoogleOAuthService(oauth.GoogleOAuthConfig{
		ClientID:           cfg.OAuth.GoogleClientID,
		ClientSecret:       cfg.OAuth.GoogleClientSecret,
		RedirectURL:        cfg.OAuth.GoogleRedirectURL,
		FrontendSuccessURL: cfg.OAuth.FrontendSuccessURL,
		FrontendErrorURL:   cfg.OAuth.FrontendErrorURL,
	})

	// Initialize services
	authService := service.NewAuthService(userRepo, roleRepo, passwordResetRepo, jwtManager, emailService, googleOAuthService)
	tenantService := service.NewTenantService(tenantRepo, packageRepo, financingPlanRepo)
	catalogService := service.NewCatalogService(packageRepo, lineItemRepo, financingPlanRepo)
	leadService := service.NewLeadService(leadRepo)
	quoteService := service.NewQuoteService(quoteRepo, packageRepo, lineItemRepo, financingPlanRepo, leadRepo, customerRepo, tenantRepo, emailService)
	campaignService := service.NewCampaignService(campaignRepo, leadRepo, emailService)
	customerService := service.NewCustomerService(customerRepo)
	dashboardService := service.NewDashboardService(analyticsRepo)
	settingsService := service.NewSettingsService(tenantRepo)
	userService := service.NewUserService(userRepo, roleRepo, permissionRepo)

	// Initialize handlers
	handlers := &routes.Handlers{
		Auth:      handler.NewAuthHandler(authService, tenantService),
		Tenant:    handler.NewTenantHandler(tenantService),
		Catalog:   handler.NewCatalogHandler(catalogService),
		Lead:      handler.NewLeadHandler(leadService),
		Quote:     handler.NewQuoteHandler(quoteService),
		Campaign:  handler.NewCampaignHandler(campaignService),
		Customer:  handler.NewCustomerHandler(customerService),
		Dashboard: handler.NewDashboardHandler(dashboardService),
		Settings:  handler.NewSettingsHandler(settingsService),
		User:      handler.NewUserHandler(userService),
	}

	// Setup routes
	router := routes.Setup(handlers, &routes.Deps{
		JWTManager:      jwtManager,
		Cfg:             cfg,
		TenantRepo:      tenantRepo,
		IdempotencyRepo: idempotencyRepo,
	})

	// Get port from environment or use default
	port := cfg.App.Port
	if port == "" {
		port = "8080"
	}

	log.Printf("Starting %s server on port %s...", cfg.App.Name, port)
	log.Printf("Environment: %s", cfg.App.Env)

	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
		os.Exit(1)
	}
}
