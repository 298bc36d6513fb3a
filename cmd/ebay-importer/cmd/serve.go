package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humaecho"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"github.com/devyassinepro/ebay-importer/internal/api/handlers"
	"github.com/devyassinepro/ebay-importer/internal/api/middleware"
	"github.com/devyassinepro/ebay-importer/internal/config"
	"github.com/devyassinepro/ebay-importer/internal/importer"
	"github.com/devyassinepro/ebay-importer/internal/notify"
	"github.com/devyassinepro/ebay-importer/internal/scraper"
	"github.com/devyassinepro/ebay-importer/internal/shopify"
	"github.com/devyassinepro/ebay-importer/internal/store"
	"github.com/devyassinepro/ebay-importer/pkg/logger"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the API server and price sync scheduler",
	RunE:  runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	cliLog := log.NewWithOptions(os.Stderr, log.Options{
		Level: parseLogLevel(cfg.Logging.Level),
	})
	appLog := logger.New(cfg.Logging.Level, cfg.Logging.Format)

	connectCtx, cancelConnect := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancelConnect()

	st, err := store.NewPostgresStore(
		connectCtx,
		cfg.Database.DSN(),
		store.WithPoolSize(cfg.Database.PoolSize),
	)
	if err != nil {
		return fmt.Errorf("connecting to database: %w", err)
	}
	defer st.Close()

	if err := st.Migrate(connectCtx); err != nil {
		return fmt.Errorf("running migrations: %w", err)
	}

	rl := scraper.NewRateLimiter(
		cfg.Scraper.RateLimit.PerSecond,
		cfg.Scraper.RateLimit.Burst,
		cfg.Scraper.RateLimit.DailyLimit,
	)
	sc := scraper.New(scraper.NewClient(
		scraper.WithEndpoint(cfg.Scraper.Endpoint),
		scraper.WithAPIHost(cfg.Scraper.APIHost),
		scraper.WithAPIKey(cfg.Scraper.APIKey),
		scraper.WithRateLimiter(rl),
	))

	sh := shopify.NewClient(
		cfg.Shopify.Shop,
		cfg.Shopify.AccessToken,
		shopify.WithAPIVersion(cfg.Shopify.APIVersion),
	)

	impOpts := []importer.Option{importer.WithLogger(appLog)}
	if cfg.Notifications.Discord.Enabled {
		impOpts = append(impOpts,
			importer.WithNotifier(notify.NewDiscordNotifier(cfg.Notifications.Discord.WebhookURL)))
		cliLog.Info("discord notifications enabled")
	}
	imp := importer.New(st, sc, sh, impOpts...)

	var sched *importer.Scheduler
	if cfg.Sync.Enabled {
		sched, err = importer.NewScheduler(
			imp,
			cfg.Shopify.Shop,
			cfg.Sync.Interval,
			cfg.Sync.Batch,
			appLog,
		)
		if err != nil {
			return fmt.Errorf("creating sync scheduler: %w", err)
		}
		sched.Start()
		cliLog.Info("price sync scheduler started",
			"interval", cfg.Sync.Interval, "batch", cfg.Sync.Batch)
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middleware.Recovery(appLog))
	e.Use(middleware.RequestLog(appLog))
	e.Use(middleware.Metrics())

	// Health endpoints stay on plain Echo, outside the OpenAPI surface.
	health := handlers.NewHealthHandler(st)
	e.GET("/healthz", health.Healthz)
	e.GET("/readyz", health.Readyz)

	// Prometheus metrics.
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	api := humaecho.New(e, huma.DefaultConfig("eBay Importer API", Version))

	handlers.RegisterScrapeRoutes(api, handlers.NewScrapeHandler(sc))
	handlers.RegisterImportRoutes(api, handlers.NewImportsHandler(imp))
	handlers.RegisterHistoryRoutes(api, handlers.NewHistoryHandler(st, imp))
	handlers.RegisterSettingsRoutes(api, handlers.NewSettingsHandler(st))
	handlers.RegisterQuotaRoutes(api, handlers.NewQuotaHandler(rl))

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	cliLog.Info("starting server", "addr", addr, "shop", cfg.Shopify.Shop)

	e.Server.ReadTimeout = cfg.Server.ReadTimeout
	e.Server.WriteTimeout = cfg.Server.WriteTimeout

	// Start server in a goroutine.
	go func() {
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			cliLog.Error("server error", "err", err)
		}
	}()

	// Wait for interrupt signal.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	cliLog.Info("shutting down server")

	if sched != nil {
		<-sched.Stop().Done()
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		return fmt.Errorf("shutting down server: %w", err)
	}

	cliLog.Info("server stopped")
	return nil
}
