package main

import (
	"context"
	"database/sql"
	"errors"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gofiber/contrib/otelfiber"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/swagger"
	_ "github.com/joho/godotenv/autoload"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/bwdtc/bridgewater-dems/docs"
	"github.com/bwdtc/bridgewater-dems/internal/config"
	"github.com/bwdtc/bridgewater-dems/internal/content"
	"github.com/bwdtc/bridgewater-dems/internal/database"
	"github.com/bwdtc/bridgewater-dems/internal/database/migration"
	"github.com/bwdtc/bridgewater-dems/internal/forms"
	handlers "github.com/bwdtc/bridgewater-dems/internal/http/handler"
	"github.com/bwdtc/bridgewater-dems/internal/http/middleware"
	"github.com/bwdtc/bridgewater-dems/internal/logger"
	"github.com/bwdtc/bridgewater-dems/internal/mail"
	"github.com/bwdtc/bridgewater-dems/internal/metrics"
	"github.com/bwdtc/bridgewater-dems/internal/otel"
	"github.com/bwdtc/bridgewater-dems/internal/repository"
	"github.com/bwdtc/bridgewater-dems/internal/repository/postgres"
	"github.com/bwdtc/bridgewater-dems/internal/service"
	"github.com/bwdtc/bridgewater-dems/internal/storage"
)

// @title Bridgewater DTC Site API
// @version 1.0
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// Load configuration from environment variables (.env auto-loaded if present)
	cfg := config.Load()

	if err := logger.Init(cfg.Log.Level, cfg.Log.Development); err != nil {
		panic(err)
	}
	defer logger.Sync()
	log := logger.Get()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := otel.Init(ctx, log)
	if err != nil {
		log.Fatal("failed to initialize tracing", zap.Error(err))
	}
	defer func() {
		sctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = shutdownTracing(sctx)
	}()

	// PostgreSQL is optional: it backs the postgres storage backend and the submission archive.
	var db *sql.DB
	if cfg.Database.Enabled() {
		db, err = database.NewPostgres(ctx, cfg.Database)
		if err != nil {
			log.Fatal("failed to connect to database", zap.Error(err))
		}
		defer db.Close()

		if err := migration.EnsureMigrated(ctx, db, log, cfg.Database.Host); err != nil {
			log.Fatal("database migration failed", zap.Error(err))
		}
	}

	store, err := storage.New(ctx, cfg, db)
	if err != nil {
		log.Fatal("failed to initialize storage", zap.String("backend", cfg.StorageBackend), zap.Error(err))
	}
	if c, ok := store.(io.Closer); ok {
		defer c.Close()
	}
	log.Info("storage ready", zap.String("component", "storage"), zap.String("backend", cfg.StorageBackend))

	var archive repository.SubmissionRepository
	if db != nil && cfg.ArchiveSubmissions {
		archive = postgres.NewSubmissionPostgres(db)
	}

	sender := mail.NewRetrySender(
		mail.NewLogSender(log, map[mail.Kind]time.Duration{
			mail.KindAdminNotification: cfg.Mail.SendDelay,
			mail.KindDonorConfirmation: cfg.Mail.ConfirmDelay,
		}),
		cfg.Mail.Timeout,
	)

	contentSvc := service.NewContentService(store, content.DefaultDocument(), log)
	submissionSvc := service.NewSubmissionService(store, contentSvc, sender, archive, service.SubmissionConfig{
		From:              cfg.Mail.From,
		DefaultRecipients: cfg.Mail.DefaultRecipients,
	}, log)
	formSvc := service.NewFormService(contentSvc, forms.NewClient(cfg.Forms), log)

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	metrics.RegisterCollectors(reg)
	promMW, err := middleware.NewPrometheusMiddleware(reg)
	if err != nil {
		log.Fatal("failed to register http metrics", zap.Error(err))
	}

	app := fiber.New(fiber.Config{
		ErrorHandler: handlers.ErrorHandler(),
		BodyLimit:    1 << 20,
	})

	// Register global middleware
	app.Use(otelfiber.Middleware())
	app.Use(middleware.RequestID())
	app.Use(middleware.Logger(log))
	app.Use(promMW.Handler())

	app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(reg, promhttp.HandlerOpts{})))

	formLimiter := middleware.NewRateLimiter(cfg.RateLimit.RPS, cfg.RateLimit.Burst)
	go formLimiter.Run(ctx, time.Minute)

	handlers.RegisterRoutes(app, handlers.Dependencies{
		Store:       store,
		Content:     contentSvc,
		Submissions: submissionSvc,
		Forms:       formSvc,
		AdminToken:  cfg.AdminToken,
		FormLimit:   formLimiter.Handler(),
	})

	// Swagger UI with dynamic host and scheme
	app.Get("/swagger/*", func(c *fiber.Ctx) error {
		scheme := c.Protocol()
		if proto := c.Get("X-Forwarded-Proto"); proto != "" {
			scheme = strings.Split(proto, ",")[0]
		}

		docs.SwaggerInfo.Host = c.Get("Host")
		docs.SwaggerInfo.Schemes = []string{scheme}

		return swagger.HandlerDefault(c)
	})

	if cfg.AdminToken == "" {
		log.Warn("ADMIN_TOKEN not set, admin routes disabled", zap.String("component", "http"))
	}

	go func() {
		<-ctx.Done()
		sctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := app.ShutdownWithContext(sctx); err != nil {
			log.Error("graceful shutdown failed", zap.Error(err))
		}
	}()

	addr := ":" + cfg.Port
	log.Info("listening", zap.String("component", "http"), zap.String("addr", addr))
	if err := app.Listen(addr); err != nil && !errors.Is(err, context.Canceled) {
		log.Fatal("failed to start server", zap.Error(err))
	}
}
