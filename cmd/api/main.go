package main

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/madhuram-pos/pos-api/internal/application/service"
	"github.com/madhuram-pos/pos-api/internal/config"
	"github.com/madhuram-pos/pos-api/internal/infrastructure/database"
	"github.com/madhuram-pos/pos-api/internal/infrastructure/repository"
	"github.com/madhuram-pos/pos-api/internal/presentation/http/handler"
	"github.com/madhuram-pos/pos-api/internal/presentation/http/routes"
	"github.com/madhuram-pos/pos-api/pkg/printer"
	"github.com/madhuram-pos/pos-api/pkg/totals"
	"github.com/madhuram-pos/pos-api/pkg/utils"
)

func main() {
	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})

	cfg := config.Load()

	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := database.New(&cfg.Database)
	if err != nil {
		logger.WithError(err).Fatal("Failed to connect to database")
	}

	if err := database.AutoMigrate(db); err != nil {
		logger.WithError(err).Fatal("Failed to run migrations")
	}

	if err := database.SeedMenu(db); err != nil {
		logger.WithError(err).Warn("Failed to seed default menu")
	}

	// Repositories
	menuRepo := repository.NewMenuRepository(db)
	billRepo := repository.NewBillRepository(db)
	settingsRepo := repository.NewSettingsRepository(db)
	idempotencyRepo := repository.NewIdempotencyRepository(db)

	// Services
	tokenManager := utils.NewTokenManager(cfg.Admin.JWTSecret, cfg.Admin.SessionMinutes)
	authService := service.NewAuthService(cfg.Admin, tokenManager, logger)
	sequenceService := service.NewSequenceService(settingsRepo, cfg.Billing.NumberWidth, nil)
	billingService := service.NewBillingService(billRepo, sequenceService, totals.Policy{TaxEnabled: cfg.Billing.TaxEnabled}, nil, logger)
	menuService := service.NewMenuService(menuRepo, nil, logger)
	settingsService := service.NewSettingsService(settingsRepo)

	thermalPrinter, err := printer.NewPrinterFromConfig(cfg.Printer.Type, cfg.Printer.USBPath, cfg.Printer.Address)
	if err != nil {
		logger.WithError(err).Warn("Failed to initialize printer, using null printer")
		thermalPrinter = printer.NewNullPrinter()
	}
	printerService := service.NewPrinterService(thermalPrinter, billRepo, cfg.Store, cfg.Printer.Width, cfg.Billing.TaxEnabled, nil, logger)

	handlers := &routes.Handlers{
		Auth:     handler.NewAuthHandler(authService),
		Menu:     handler.NewMenuHandler(menuService),
		Bill:     handler.NewBillHandler(billingService),
		Sequence: handler.NewSequenceHandler(sequenceService),
		Settings: handler.NewSettingsHandler(settingsService),
		Printer:  handler.NewPrinterHandler(printerService),
	}

	// Expired idempotency keys pile up one per finalize; sweep hourly.
	go func() {
		ticker := time.NewTicker(time.Hour)
		defer ticker.Stop()
		for range ticker.C {
			if err := idempotencyRepo.DeleteExpired(context.Background()); err != nil {
				logger.WithError(err).Warn("Idempotency key cleanup failed")
			}
		}
	}()

	router := routes.Setup(handlers, &routes.Deps{
		Cfg:             cfg,
		AuthService:     authService,
		IdempotencyRepo: idempotencyRepo,
		Logger:          logger,
	})

	logger.WithFields(logrus.Fields{
		"port":   cfg.App.Port,
		"env":    cfg.App.Env,
		"driver": cfg.Database.Driver,
	}).Info("Starting server")

	if err := router.Run(":" + cfg.App.Port); err != nil {
		logger.WithError(err).Fatal("Server exited")
	}
}
