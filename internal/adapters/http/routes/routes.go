package routes

import (
	"fastpay-network/internal/adapters/http/handlers"
	"fastpay-network/internal/adapters/http/middleware"
	"fastpay-network/internal/adapters/persistence"
	"fastpay-network/internal/config"
	"fastpay-network/internal/core/services"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
)

// Setup configures all routes for the application
func Setup(app *fiber.App, store *persistence.Store, notify *services.NotificationService, cfg *config.Config) {
	// Initialize services
	authService := services.NewAuthService(store, cfg)
	accountService := services.NewAccountService(store, notify)
	codeService := services.NewCodeService(store, notify)
	transferService := services.NewTransferService(store, notify)
	depositService := services.NewDepositService(store, notify)
	financingService := services.NewFinancingService(store, notify)
	journalService := services.NewJournalService(store)
	siteService := services.NewSiteService(store, notify)
	dashboardService := services.NewDashboardService(store)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler()
	authHandler := handlers.NewAuthHandler(authService, accountService)
	accountHandler := handlers.NewAccountHandler(accountService)
	codeHandler := handlers.NewCodeHandler(codeService)
	transferHandler := handlers.NewTransferHandler(transferService)
	depositHandler := handlers.NewDepositHandler(depositService)
	financingHandler := handlers.NewFinancingHandler(financingService)
	journalHandler := handlers.NewJournalHandler(journalService)
	siteHandler := handlers.NewSiteHandler(siteService, notify)
	dashboardHandler := handlers.NewDashboardHandler(dashboardService)

	// Health check & root routes
	app.Get("/", healthHandler.Root)
	app.Get("/health", healthHandler.HealthCheck)

	// Swagger documentation
	app.Get("/swagger/*", swagger.HandlerDefault)

	// API v1 group
	apiV1 := app.Group("/api/v1")
	setupAPIV1Routes(apiV1, authHandler, accountHandler, codeHandler,
		transferHandler, depositHandler, financingHandler, journalHandler,
		siteHandler, dashboardHandler, cfg)
}

// setupAPIV1Routes configures API v1 routes
func setupAPIV1Routes(
	router fiber.Router,
	authHandler *handlers.AuthHandler,
	accountHandler *handlers.AccountHandler,
	codeHandler *handlers.CodeHandler,
	transferHandler *handlers.TransferHandler,
	depositHandler *handlers.DepositHandler,
	financingHandler *handlers.FinancingHandler,
	journalHandler *handlers.JournalHandler,
	siteHandler *handlers.SiteHandler,
	dashboardHandler *handlers.DashboardHandler,
	cfg *config.Config,
) {
	// Auth routes (public, rate limited)
	authRoutes := router.Group("/auth")
	setupAuthRoutes(authRoutes, authHandler, cfg)

	// Public site routes
	siteRoutes := router.Group("/site")
	setupSiteRoutes(siteRoutes, siteHandler)

	// Wallet routes (authenticated users)
	walletRoutes := router.Group("/wallet")
	walletRoutes.Use(middleware.AuthMiddleware(cfg))
	setupWalletRoutes(walletRoutes, accountHandler, transferHandler,
		codeHandler, depositHandler, financingHandler, journalHandler,
		dashboardHandler)

	// Merchant routes (Merchant/Admin)
	merchantRoutes := router.Group("/merchant")
	merchantRoutes.Use(middleware.AuthMiddleware(cfg))
	merchantRoutes.Use(middleware.MerchantOrAdmin())
	setupMerchantRoutes(merchantRoutes, codeHandler, dashboardHandler)

	// Admin routes (Admin only)
	adminRoutes := router.Group("/admin")
	adminRoutes.Use(middleware.AuthMiddleware(cfg))
	adminRoutes.Use(middleware.AdminOnly())
	setupAdminRoutes(adminRoutes, accountHandler, codeHandler, depositHandler,
		financingHandler, journalHandler, siteHandler, dashboardHandler)
}

// setupAuthRoutes configures authentication routes
func setupAuthRoutes(router fiber.Router, handler *handlers.AuthHandler, cfg *config.Config) {
	// Public routes
	router.Post("/register", middleware.AuthRateLimiter(), handler.Register)
	router.Post("/login", middleware.AuthRateLimiter(), handler.Login)
	router.Post("/refresh", middleware.AuthRateLimiter(), handler.Refresh)

	// Protected routes
	router.Get("/me", middleware.AuthMiddleware(cfg), handler.Me)
	router.Put("/password", middleware.AuthMiddleware(cfg), handler.ChangePassword)
}

// setupSiteRoutes configures the public site content routes
func setupSiteRoutes(router fiber.Router, handler *handlers.SiteHandler) {
	router.Get("/config", handler.GetConfig)
	router.Get("/services", handler.ListServices)
	router.Get("/pages", handler.ListPages)
}

// setupWalletRoutes configures routes for authenticated account holders
func setupWalletRoutes(
	router fiber.Router,
	accountHandler *handlers.AccountHandler,
	transferHandler *handlers.TransferHandler,
	codeHandler *handlers.CodeHandler,
	depositHandler *handlers.DepositHandler,
	financingHandler *handlers.FinancingHandler,
	journalHandler *handlers.JournalHandler,
	dashboardHandler *handlers.DashboardHandler,
) {
	router.Get("/dashboard", dashboardHandler.User)
	router.Put("/profile", accountHandler.UpdateProfile)
	router.Post("/cards", accountHandler.LinkCard)

	router.Post("/transfer", transferHandler.Send)
	router.Post("/redeem", codeHandler.Redeem)
	router.Get("/history", journalHandler.Mine)

	router.Get("/deposits", depositHandler.Mine)
	router.Post("/deposits", depositHandler.Open)
	router.Post("/deposits/:id/cancel", depositHandler.Cancel)

	router.Get("/financing", financingHandler.Mine)
}

// setupMerchantRoutes configures merchant code issuance routes
func setupMerchantRoutes(
	router fiber.Router,
	codeHandler *handlers.CodeHandler,
	dashboardHandler *handlers.DashboardHandler,
) {
	router.Get("/dashboard", dashboardHandler.Merchant)
	router.Get("/codes", codeHandler.Mine)
	router.Post("/codes", codeHandler.Issue)
}

// setupAdminRoutes configures administration routes
func setupAdminRoutes(
	router fiber.Router,
	accountHandler *handlers.AccountHandler,
	codeHandler *handlers.CodeHandler,
	depositHandler *handlers.DepositHandler,
	financingHandler *handlers.FinancingHandler,
	journalHandler *handlers.JournalHandler,
	siteHandler *handlers.SiteHandler,
	dashboardHandler *handlers.DashboardHandler,
) {
	router.Get("/dashboard", dashboardHandler.Admin)

	// Account management
	router.Get("/accounts", accountHandler.List)
	router.Post("/accounts", accountHandler.Save)
	router.Get("/accounts/:id", accountHandler.Get)
	router.Put("/accounts/:id", accountHandler.Save)
	router.Delete("/accounts/:id", accountHandler.Delete)
	router.Patch("/accounts/:id/status", accountHandler.SetStatus)
	router.Get("/accounts/:id/journal", journalHandler.ForAccount)

	// Code administration
	router.Get("/codes", codeHandler.List)
	router.Post("/codes", codeHandler.Issue)
	router.Patch("/codes/:code/disabled", codeHandler.SetDisabled)

	// Deposit administration
	router.Get("/deposits", depositHandler.List)
	router.Post("/deposits/:id/mature", depositHandler.Mature)
	router.Post("/deposits/mature-due", depositHandler.MatureDue)

	// Financing administration
	router.Get("/financing", financingHandler.List)
	router.Post("/financing", financingHandler.Grant)
	router.Patch("/financing/:id/status", financingHandler.SetStatus)

	// Ledger journal
	router.Get("/journal", journalHandler.List)

	// Site content
	router.Put("/site/config", siteHandler.UpdateConfig)
	router.Post("/site/services", siteHandler.SaveService)
	router.Delete("/site/services/:id", siteHandler.DeleteService)
	router.Post("/site/pages", siteHandler.SavePage)
	router.Delete("/site/pages/:id", siteHandler.DeletePage)

	// Notifications
	router.Get("/notifications", siteHandler.Notifications)
	router.Post("/notifications/read", siteHandler.MarkNotificationsRead)
}
