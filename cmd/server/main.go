// Package main is the entry point for the service. It wires all dependencies
// using samber/do v2, starts the HTTP server, and handles graceful shutdown
// on SIGINT/SIGTERM.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	nethttp "net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/samber/do/v2"

	"github.com/taskmind/taskmind/internal/adapters/ai"
	authadapter "github.com/taskmind/taskmind/internal/adapters/auth"
	adapthttp "github.com/taskmind/taskmind/internal/adapters/http"
	"github.com/taskmind/taskmind/internal/adapters/http/handlers"
	"github.com/taskmind/taskmind/internal/adapters/http/middleware"
	"github.com/taskmind/taskmind/internal/adapters/mail"
	"github.com/taskmind/taskmind/internal/adapters/store/postgres"
	"github.com/taskmind/taskmind/internal/app"
	"github.com/taskmind/taskmind/internal/platform/config"
	"github.com/taskmind/taskmind/internal/platform/health"
	"github.com/taskmind/taskmind/internal/platform/httpclient"
	"github.com/taskmind/taskmind/internal/platform/logging"
	"github.com/taskmind/taskmind/internal/platform/telemetry"
	"github.com/taskmind/taskmind/internal/ports"

	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

const (
	serverShutdownTimeout = 15 * time.Second
	otelShutdownTimeout   = 5 * time.Second
	dbConnectTimeout      = 10 * time.Second
)

// Named client instances in the DI container. Both are *httpclient.Client
// but carry different base URLs, breakers, and limiters.
const (
	clientGemini = "gemini"
	clientResend = "resend"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	profile := os.Getenv("APP_PROFILE")
	if profile == "" {
		return errors.New("APP_PROFILE environment variable is required (e.g. local, prod)")
	}

	// Bootstrap: config, logger, telemetry.
	cfg, err := config.Load(profile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logger := logging.New(cfg.Log.Level, cfg.Log.Format, os.Stderr)

	ctx := context.Background()
	otel, err := initTelemetry(ctx, cfg)
	if err != nil {
		return fmt.Errorf("initializing telemetry: %w", err)
	}

	dbCtx, dbCancel := context.WithTimeout(ctx, dbConnectTimeout)
	db, err := postgres.Open(dbCtx, cfg.DB.DSN, cfg.DB.MaxOpenConns, cfg.DB.ConnMaxLifetime)
	dbCancel()
	if err != nil {
		return fmt.Errorf("connecting to postgres: %w", err)
	}
	defer func() { _ = db.Close() }()

	// DI container.
	injector := do.New()

	do.ProvideValue(injector, cfg)
	do.ProvideValue(injector, logger)
	do.ProvideValue(injector, otel.metrics)
	do.ProvideValue(injector, db)

	registerDependencies(injector, cfg, logger)

	// Resolve the server (eagerly wires the full graph).
	server, err := do.Invoke[*adapthttp.Server](injector)
	if err != nil {
		return fmt.Errorf("resolving server: %w", err)
	}

	// Register health checkers after the graph is wired.
	registry := do.MustInvoke[ports.HealthRegistry](injector)
	registry.Register(postgres.NewHealthChecker(db))
	registry.Register(do.MustInvokeNamed[*httpclient.Client](injector, clientGemini))
	registry.Register(do.MustInvokeNamed[*httpclient.Client](injector, clientResend))

	// Start server in background.
	serverErr := make(chan error, 1)
	go func() {
		serverErr <- server.Start()
	}()

	// Wait for shutdown signal or server error.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-quit:
		logger.Info("received shutdown signal", slog.String("signal", sig.String()))
	case err := <-serverErr:
		return fmt.Errorf("server failed: %w", err)
	}

	// Graceful shutdown: drain HTTP requests.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), serverShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", slog.Any("error", err))
	}

	// Wait for Start() goroutine to return.
	<-serverErr

	// Flush telemetry.
	otelCtx, otelCancel := context.WithTimeout(context.Background(), otelShutdownTimeout)
	defer otelCancel()

	if err := otel.Shutdown(otelCtx); err != nil {
		logger.Error("telemetry shutdown error", slog.Any("error", err))
	}

	logger.Info("shutdown complete")
	return nil
}

// otelProviders bundles OpenTelemetry provider lifecycle. All fields are nil
// when telemetry is disabled.
type otelProviders struct {
	tracer  *sdktrace.TracerProvider
	meter   *sdkmetric.MeterProvider
	metrics *telemetry.Metrics
}

// Shutdown flushes both providers. Nil-safe.
func (o *otelProviders) Shutdown(ctx context.Context) error {
	var errs []error
	if o.tracer != nil {
		if err := o.tracer.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("tracer shutdown: %w", err))
		}
	}
	if o.meter != nil {
		if err := o.meter.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("meter shutdown: %w", err))
		}
	}
	return errors.Join(errs...)
}

func initTelemetry(ctx context.Context, cfg *config.Config) (*otelProviders, error) {
	if !cfg.Telemetry.Enabled {
		return &otelProviders{}, nil
	}

	tp, err := telemetry.InitTracer(ctx,
		cfg.Telemetry.ServiceName,
		cfg.Telemetry.Exporter,
		cfg.Telemetry.Endpoint,
	)
	if err != nil {
		return nil, fmt.Errorf("init tracer: %w", err)
	}

	mp, err := telemetry.InitMeter(ctx,
		cfg.Telemetry.ServiceName,
		cfg.Telemetry.Exporter,
		cfg.Telemetry.Endpoint,
	)
	if err != nil {
		_ = tp.Shutdown(ctx)
		return nil, fmt.Errorf("init meter: %w", err)
	}

	metrics, err := telemetry.NewMetrics(mp)
	if err != nil {
		_ = tp.Shutdown(ctx)
		_ = mp.Shutdown(ctx)
		return nil, fmt.Errorf("creating metrics: %w", err)
	}

	return &otelProviders{
		tracer:  tp,
		meter:   mp,
		metrics: metrics,
	}, nil
}

func registerDependencies(injector *do.RootScope, cfg *config.Config, logger *slog.Logger) {
	// Outbound clients.
	do.ProvideNamed(injector, clientGemini, func(i do.Injector) (*httpclient.Client, error) {
		metrics := do.MustInvoke[*telemetry.Metrics](i)
		return httpclient.New(&cfg.AI.Client, clientGemini, metrics, logger), nil
	})

	do.ProvideNamed(injector, clientResend, func(i do.Injector) (*httpclient.Client, error) {
		metrics := do.MustInvoke[*telemetry.Metrics](i)
		return httpclient.New(&cfg.Mail.Client, clientResend, metrics, logger), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.Generator, error) {
		client := do.MustInvokeNamed[*httpclient.Client](i, clientGemini)
		return ai.NewGeminiClient(client, cfg.AI.Model, cfg.AI.APIKey, logger), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.Mailer, error) {
		client := do.MustInvokeNamed[*httpclient.Client](i, clientResend)
		return mail.NewResendClient(client, cfg.Mail.APIKey, cfg.Mail.From, logger), nil
	})

	// Persistence.
	do.Provide(injector, func(i do.Injector) (ports.TodoStore, error) {
		db := do.MustInvoke[*sqlx.DB](i)
		return postgres.NewTodoStore(db), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.UserStore, error) {
		db := do.MustInvoke[*sqlx.DB](i)
		return postgres.NewUserStore(db), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.FeedbackStore, error) {
		db := do.MustInvoke[*sqlx.DB](i)
		return postgres.NewFeedbackStore(db), nil
	})

	// Identity.
	do.Provide(injector, func(i do.Injector) (ports.Authenticator, error) {
		db := do.MustInvoke[*sqlx.DB](i)
		return authadapter.NewProvider(db, []byte(cfg.Auth.TokenSecret), cfg.Auth.TokenTTL, logger), nil
	})

	// Application services.
	do.Provide(injector, func(i do.Injector) (ports.TodoService, error) {
		store := do.MustInvoke[ports.TodoStore](i)
		return app.NewTodoService(store, logger), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.AuthService, error) {
		auth := do.MustInvoke[ports.Authenticator](i)
		return app.NewAuthService(auth, logger), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.AccountService, error) {
		users := do.MustInvoke[ports.UserStore](i)
		todos := do.MustInvoke[ports.TodoStore](i)
		feedback := do.MustInvoke[ports.FeedbackStore](i)
		auth := do.MustInvoke[ports.Authenticator](i)
		return app.NewAccountService(users, todos, feedback, auth, logger), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.FeedbackService, error) {
		store := do.MustInvoke[ports.FeedbackStore](i)
		return app.NewFeedbackService(store, logger), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.AssistService, error) {
		generator := do.MustInvoke[ports.Generator](i)
		return app.NewAssistService(generator, logger), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.SweepService, error) {
		todos := do.MustInvoke[ports.TodoStore](i)
		users := do.MustInvoke[ports.UserStore](i)
		mailer := do.MustInvoke[ports.Mailer](i)
		return app.NewSweepService(todos, users, mailer, cfg.Sweep.OverdueAfter, logger), nil
	})

	do.Provide(injector, func(_ do.Injector) (ports.HealthRegistry, error) {
		return health.New(), nil
	})

	// HTTP layer.
	do.Provide(injector, func(i do.Injector) (nethttp.Handler, error) {
		metrics := do.MustInvoke[*telemetry.Metrics](i)
		authenticator := do.MustInvoke[ports.Authenticator](i)

		h := adapthttp.Handlers{
			Auth:     handlers.NewAuthHandler(do.MustInvoke[ports.AuthService](i), do.MustInvoke[ports.AccountService](i)),
			Todo:     handlers.NewTodoHandler(do.MustInvoke[ports.TodoService](i)),
			Feedback: handlers.NewFeedbackHandler(do.MustInvoke[ports.FeedbackService](i)),
			Assist:   handlers.NewAssistHandler(do.MustInvoke[ports.AssistService](i)),
			Sweep:    handlers.NewSweepHandler(do.MustInvoke[ports.SweepService](i), cfg.Sweep.Secret),
			Health:   handlers.NewHealthHandler(do.MustInvoke[ports.HealthRegistry](i)),
		}

		return adapthttp.NewRouter(h, authenticator,
			middleware.Recovery(logger),
			middleware.RequestID(),
			middleware.CorrelationID(),
			middleware.OpenTelemetry(metrics),
			middleware.Logging(logger),
			middleware.Timeout(cfg.Server.WriteTimeout),
		), nil
	})

	do.Provide(injector, func(i do.Injector) (*adapthttp.Server, error) {
		handler := do.MustInvoke[nethttp.Handler](i)
		return adapthttp.NewServer(cfg.Server, handler, logger), nil
	})
}
