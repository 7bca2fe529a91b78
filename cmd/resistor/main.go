// Package main is the entry point for the resistor calculator. It wires all
// dependencies using samber/do v2, picks the dialog surface, and runs one
// prompt -> decode -> display round trip.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/samber/do/v2"

	"github.com/jsamuelsen11/resistor-calculator/internal/adapters/console"
	"github.com/jsamuelsen11/resistor-calculator/internal/adapters/tui"
	"github.com/jsamuelsen11/resistor-calculator/internal/app"
	"github.com/jsamuelsen11/resistor-calculator/internal/platform/config"
	"github.com/jsamuelsen11/resistor-calculator/internal/platform/health"
	"github.com/jsamuelsen11/resistor-calculator/internal/platform/logging"
	"github.com/jsamuelsen11/resistor-calculator/internal/platform/telemetry"
	"github.com/jsamuelsen11/resistor-calculator/internal/ports"

	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

const otelShutdownTimeout = 5 * time.Second

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Bootstrap: config, logger, telemetry.
	cfg, err := config.Load(os.Getenv("APP_PROFILE"))
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logger := logging.New(cfg.Log.Level, cfg.Log.Format, os.Stderr)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	ctx = logging.WithLogger(ctx, logger)

	providers, err := initTelemetry(ctx, cfg)
	if err != nil {
		return fmt.Errorf("initializing telemetry: %w", err)
	}
	defer func() {
		otelCtx, cancel := context.WithTimeout(context.Background(), otelShutdownTimeout)
		defer cancel()
		if err := providers.Shutdown(otelCtx); err != nil {
			logger.Error("telemetry shutdown error", slog.Any("error", err))
		}
	}()

	injector := newInjector(ctx, cfg, logger, providers.metrics, os.Stdin, os.Stdout)

	svc, err := do.Invoke[ports.DecoderService](injector)
	if err != nil {
		return fmt.Errorf("resolving decoder: %w", err)
	}

	if err := svc.Run(ctx); err != nil {
		return fmt.Errorf("running decoder: %w", err)
	}

	logger.Debug("run complete")
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

	metrics, err := telemetry.NewMetrics(mp, cfg.Telemetry.ServiceName)
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

// newInjector builds the DI container. The dialog surface reads from in and
// writes to out; ctx bounds the preflight checks run while selecting it.
func newInjector(
	ctx context.Context,
	cfg *config.Config,
	logger *slog.Logger,
	metrics *telemetry.Metrics,
	in, out *os.File,
) *do.RootScope {
	injector := do.New()

	do.ProvideValue(injector, cfg)
	do.ProvideValue(injector, logger)
	do.ProvideValue(injector, metrics)

	do.Provide(injector, func(_ do.Injector) (*tui.TerminalCheck, error) {
		return tui.NewTerminalCheck(in, out), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.HealthRegistry, error) {
		registry := health.New()
		registry.Register(do.MustInvoke[*tui.TerminalCheck](i))
		return registry, nil
	})

	do.Provide(injector, func(i do.Injector) (ports.UserInteraction, error) {
		c := do.MustInvoke[*config.Config](i)
		l := do.MustInvoke[*slog.Logger](i)
		registry := do.MustInvoke[ports.HealthRegistry](i)
		return selectInteraction(ctx, c.UI.Mode, registry, in, out, l), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.DecoderService, error) {
		c := do.MustInvoke[*config.Config](i)
		l := do.MustInvoke[*slog.Logger](i)
		ui := do.MustInvoke[ports.UserInteraction](i)
		m := do.MustInvoke[*telemetry.Metrics](i)
		return app.NewDecoderService(ui, c.UI.Title, m, l), nil
	})

	return injector
}

// selectInteraction returns the dialog surface for mode. In auto mode the
// terminal UI is used only when every preflight check passes.
func selectInteraction(
	ctx context.Context,
	mode string,
	registry ports.HealthRegistry,
	in, out *os.File,
	logger *slog.Logger,
) ports.UserInteraction {
	switch mode {
	case config.UIModeTUI:
		return tui.New(in, out)
	case config.UIModeConsole:
		return console.New(in, out)
	}

	if err := registry.Ready(ctx); err != nil {
		logger.Debug("terminal UI unavailable, using console",
			slog.String("operation", "selectInteraction"),
			slog.Any("error", err),
		)
		return console.New(in, out)
	}
	return tui.New(in, out)
}
