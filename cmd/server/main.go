package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"fastpay-network/internal/adapters/http/middleware"
	"fastpay-network/internal/adapters/http/routes"
	"fastpay-network/internal/adapters/persistence"
	"fastpay-network/internal/config"
	"fastpay-network/internal/core/services"

	"github.com/gofiber/fiber/v2"

	_ "fastpay-network/docs" // Swagger docs
)

// @title FastPay Network API
// @version 1.0
// @description Simulated digital payments platform: wallet transfers, top-up codes, term deposits and salary financing.
// @termsOfService http://swagger.io/terms/

// @contact.name API Support
// @contact.email support@fastpay.network

// @host localhost:3000
// @BasePath /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ Failed to load configuration: %v", err)
	}

	// Open the ledger store (seeds a default snapshot on first run)
	file := persistence.NewFileStore(cfg.Snapshot.Path)
	store, err := persistence.Open(file)
	if err != nil {
		log.Fatalf("❌ Failed to open ledger snapshot: %v", err)
	}
	log.Printf("✅ Ledger loaded from %s", cfg.Snapshot.Path)

	// Admin notification feed, shared across services
	notify := services.NewNotificationService()

	// Deposit maturity sweep (disabled unless DEPOSIT_MATURITY_CRON is set)
	depositService := services.NewDepositService(store, notify)
	maturityService := services.NewMaturityService(depositService, cfg.Maturity.CronSpec)
	if err := maturityService.Start(); err != nil {
		log.Fatalf("❌ Failed to start maturity sweep: %v", err)
	}
	defer maturityService.Stop()

	// Create Fiber app
	app := fiber.New(fiber.Config{
		AppName:      "FastPay Network API v1.0",
		ErrorHandler: middleware.CustomErrorHandler,
	})

	// Setup middlewares
	middleware.Setup(app, cfg)

	// Setup routes
	routes.Setup(app, store, notify, cfg)

	// Graceful shutdown
	go gracefulShutdown(app)

	// Start server
	log.Printf("🚀 Server starting on port %s [MODE: %s]", cfg.Port, cfg.AppMode)
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatalf("❌ Failed to start server: %v", err)
	}
}

// gracefulShutdown handles graceful shutdown
func gracefulShutdown(app *fiber.App) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("🛑 Shutting down server...")
	if err := app.Shutdown(); err != nil {
		log.Printf("❌ Error during shutdown: %v", err)
	}
	log.Println("✅ Server stopped gracefully")
}
