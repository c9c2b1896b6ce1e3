package main

import (
	"context"
	"crypto/tls"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"

	"github.com/regenplastics/leads-platform/internal/api/router"
	appconfig "github.com/regenplastics/leads-platform/internal/config"
	"github.com/regenplastics/leads-platform/internal/http/handlers"
	"github.com/regenplastics/leads-platform/internal/leads"
	"github.com/regenplastics/leads-platform/internal/notify"
	"github.com/regenplastics/leads-platform/internal/observability/metrics"
	"github.com/regenplastics/leads-platform/internal/ratelimit"
	"github.com/regenplastics/leads-platform/internal/sheets"
	"github.com/regenplastics/leads-platform/internal/site"
	"github.com/regenplastics/leads-platform/internal/tracker"
	"github.com/regenplastics/leads-platform/pkg/logging"
)

const serviceName = "regen-website-leads-api"

func main() {
	// Local development convenience; ignored when no .env file exists.
	_ = godotenv.Load()

	cfg := appconfig.Load()
	logger := logging.New(cfg.LogLevel, cfg.LogFormat)
	logger.Info("starting leads platform API server",
		"env", cfg.Env,
		"port", cfg.Port,
	)

	ctx := context.Background()

	// Spreadsheet persistence. Without a sheet id the intake endpoint reports
	// a configuration error per request rather than crashing at boot.
	var leadStore *sheets.LeadStore
	var siteStore *site.Store
	if cfg.SpreadsheetID != "" {
		sheetsAPI := buildSheetsAPI(ctx, cfg, logger)
		leadStore = sheets.NewLeadStore(sheetsAPI, cfg.LeadsSheetName, logger)
		siteStore = site.NewStore(sheetsAPI, cfg.SiteSheetName, logger)
	} else {
		logger.Warn("SHEET_ID not set; lead intake will reject submissions")
	}

	// Shared rate-limit state: Redis when configured, in-process otherwise.
	var cache ratelimit.SharedCache
	if cfg.RedisAddr != "" {
		cache = ratelimit.NewRedisCache(buildRedisClient(cfg))
		logger.Info("rate limiting backed by redis", "addr", cfg.RedisAddr)
	} else {
		cache = ratelimit.NewMemoryCache(cfg.LockWaitTimeout)
		logger.Warn("rate limiting is in-process only; configure REDIS_ADDR for multi-node deployments")
	}
	limiter := ratelimit.NewLimiter(cache, ratelimit.Config{
		MaxPerEmail:     cfg.MaxPerEmailPerMin,
		MaxGlobal:       cfg.MaxGlobalPerMin,
		DuplicateWindow: cfg.DuplicateWindow,
		CounterWindow:   cfg.CounterWindow,
	}, logger)

	leadMetrics := metrics.NewLeadMetrics(nil)

	var sender notify.EmailSender
	if sg := notify.NewSendGridSender(notify.SendGridConfig{
		APIKey:    cfg.SendGridAPIKey,
		FromEmail: cfg.SendGridFromEmail,
		FromName:  cfg.SendGridFromName,
	}, logger); sg != nil {
		sender = sg
	}

	var notifier leads.Notifier
	if svc := notify.NewService(sender, cfg.NotifyEmail, logger); svc != nil {
		notifier = svc
	}

	var store leads.Store
	if leadStore != nil {
		store = leadStore
	}
	leadsSvc := leads.NewService(limiter, store, notifier, leadMetrics, logger, leads.Options{
		MinFillTime: cfg.MinFillTime,
		MaxFormAge:  cfg.MaxFormAge,
	})

	routerCfg := &router.Config{
		Logger:             logger,
		LeadsHandler:       leads.NewHandler(leadsSvc, cfg.APIKey, cfg.AppVersion, cfg.CORSOrigin, logger),
		HealthHandler:      handlers.NewHealthHandler(serviceName, cfg.AppVersion, cfg.CORSOrigin),
		SiteHandler:        site.NewHandler(siteStore, cfg.APIKey, cfg.CORSOrigin, logger),
		TrackerHandler:     tracker.NewHandler(tracker.NewInMemoryRepository(), cfg.APIKey, cfg.CORSOrigin, logger),
		MetricsHandler:     promhttp.Handler(),
		CORSOrigin:         cfg.CORSOrigin,
		IPRatePerSecond:    cfg.IPRatePerSecond,
		IPRateBurst:        cfg.IPRateBurst,
		DisableIPRateLimit: cfg.DisableIPRateLimit,
	}
	r := router.New(routerCfg)

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("server listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	logger.Info("server stopped")
}

// buildSheetsAPI returns the Google-backed store, falling back to in-memory
// persistence when the client cannot be constructed (credentials missing in
// local development).
func buildSheetsAPI(ctx context.Context, cfg *appconfig.Config, logger *logging.Logger) sheets.API {
	client, err := sheets.NewGoogleClient(ctx, cfg.SpreadsheetID, cfg.GoogleCredentialsJSON, logger)
	if err != nil {
		logger.Warn("sheets client unavailable, using in-memory store", "error", err)
		return sheets.NewMemory()
	}
	return client
}

func buildRedisClient(cfg *appconfig.Config) *redis.Client {
	opts := &redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
	}
	if cfg.RedisTLS {
		opts.TLSConfig = &tls.Config{MinVersion: tls.VersionTLS12}
	}
	return redis.NewClient(opts)
}
