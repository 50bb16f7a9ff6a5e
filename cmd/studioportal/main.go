// Package main is the entry point for the studio portal server.
// It loads configuration, connects to services, sets up routing, and starts
// the HTTP server with graceful shutdown support.
package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"studioportal/internal/auth"
	"studioportal/internal/cache"
	"studioportal/internal/catalog"
	"studioportal/internal/config"
	"studioportal/internal/console"
	"studioportal/internal/dashboard"
	"studioportal/internal/database"
	"studioportal/internal/handlers"
	"studioportal/internal/lifecycle"
	"studioportal/internal/metrics"
	"studioportal/internal/middleware"
	"studioportal/internal/payments"
	"studioportal/internal/router"
	"studioportal/internal/store"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))
	slog.SetDefault(logger)

	// Load configuration from environment variables.
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	slog.Info("configuration loaded",
		"env", cfg.Env,
		"addr", cfg.Addr(),
	)

	// Connect to PostgreSQL.
	db, err := database.Connect(cfg.DSN())
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	// Run pending migrations.
	if err := database.Migrate(db); err != nil {
		slog.Error("failed to run migrations", "error", err)
		os.Exit(1)
	}

	// Seed development data (no-op if data already exists).
	if cfg.IsDev() {
		if err := database.Seed(db); err != nil {
			slog.Error("failed to seed database", "error", err)
			os.Exit(1)
		}
	}

	// Connect to Redis (catalog snapshot cache + profile cache).
	redisClient, err := cache.Connect(cfg.RedisHost, cfg.RedisPort, cfg.RedisPassword)
	if err != nil {
		slog.Error("failed to connect to redis", "error", err)
		os.Exit(1)
	}
	defer redisClient.Close()

	catalogCache := cache.NewCatalogCache(redisClient, cache.DefaultCatalogTTL)
	profileCache := cache.NewProfileCache(redisClient, cache.DefaultProfileTTL)

	// Initialize data stores.
	profileStore := store.NewProfileStore(db)
	categoryStore := store.NewCategoryStore(db)
	templateStore := store.NewTemplateStore(db)
	orderStore := store.NewOrderStore(db)
	projectStore := store.NewProjectStore(db)
	invoiceStore := store.NewInvoiceStore(db)
	messageStore := store.NewMessageStore(db)
	campaignStore := store.NewCampaignStore(db)
	contactStore := store.NewContactStore(db)
	settingStore := store.NewSiteSettingStore(db)

	if n, err := templateStore.Count(); err == nil {
		slog.Info("template catalog ready", "templates", n)
	}

	// Initialize services.
	catalogService := catalog.New(categoryStore, templateStore, catalogCache)
	lifecycleManager := lifecycle.NewManager(orderStore, projectStore, invoiceStore)
	adminConsole := console.New(contactStore, messageStore, campaignStore)
	dashboardService := dashboard.New(projectStore, invoiceStore, messageStore, orderStore)
	paymentService := payments.New(settingStore)

	verifier := auth.NewVerifier(cfg.AuthSecret)
	httpMetrics := metrics.New()
	limiter := middleware.NewRateLimiter(cfg.RateLimitPerMinute, time.Minute)
	defer limiter.Stop()

	// Create handler groups with their dependencies.
	publicHandlers := handlers.NewPublic(catalogService, campaignStore, contactStore)
	portalHandlers := handlers.NewPortal(dashboardService, projectStore, invoiceStore, orderStore, messageStore, profileStore, profileCache)
	adminHandlers := handlers.NewAdmin(lifecycleManager, adminConsole, paymentService, catalogService, orderStore, projectStore, invoiceStore, profileStore, templateStore, categoryStore)

	// Set up the chi router with all middleware and routes.
	r := router.New(verifier, limiter, httpMetrics, publicHandlers, portalHandlers, adminHandlers)

	srv := &http.Server{
		Addr:         cfg.Addr(),
		Handler:      r,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	// Start the server in a goroutine so we can listen for shutdown signals.
	go func() {
		slog.Info("server starting", "addr", cfg.Addr())
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown: wait for SIGINT or SIGTERM, then drain connections.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit
	slog.Info("shutdown signal received", "signal", sig)

	// Give active requests up to 30 seconds to complete.
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("server stopped gracefully")
}
