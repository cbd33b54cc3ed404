package formats

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/0xalexb/hjarta-formats/config"
	"github.com/0xalexb/hjarta-formats/config/dispatch"
	"github.com/0xalexb/hjarta-formats/config/provider"
	"github.com/0xalexb/hjarta-formats/config/registry"
	"github.com/0xalexb/hjarta-formats/logging"

	"github.com/VictoriaMetrics/metrics"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
)

var errAppNotInitialized = errors.New("app not initialized")

// App is a configured starting point for application using Fx.
//
// Besides the logger and its config the container holds a sealed
// *registry.Registry, a *dispatch.Dispatcher (also as config.Dispatcher) and
// the *metrics.Set the dispatcher counts into.
type App struct {
	app *fx.App
}

// NewApp creates a new instance of App with Fx configured.
func NewApp(opts ...Option) *App {
	var options Options

	for _, apply := range opts {
		apply(&options)
	}

	return &App{
		app: configure(&options),
	}
}

func configure(options *Options) *fx.App {
	loggerConfig := logging.LoggerConfig{Level: options.LogLevel, Format: options.LogFormat}
	logger := createLogger(loggerConfig, os.Stderr)
	slog.SetDefault(logger)

	return fx.New(
		fx.WithLogger(func() fxevent.Logger {
			return &fxevent.SlogLogger{Logger: logger}
		}),
		fx.Supply(loggerConfig),
		fx.Supply(logger),
		fx.Provide(
			newMetricsSet,
			newRegistry(options.Providers, !options.DisableBundled),
			fx.Annotate(
				newDispatcher,
				fx.As(fx.Self()),
				fx.As(new(config.Dispatcher)),
			),
		),
		fx.Options(options.Modules...),
	)
}

func createLogger(config logging.LoggerConfig, w io.Writer) *slog.Logger {
	return logging.NewLogger(config, w)
}

// newMetricsSet exposes the dispatch counters through the global
// metrics.WritePrometheus while the app is running.
func newMetricsSet(lc fx.Lifecycle) *metrics.Set {
	set := metrics.NewSet()

	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			metrics.RegisterSet(set)

			return nil
		},
		OnStop: func(_ context.Context) error {
			metrics.UnregisterSet(set)

			return nil
		},
	})

	return set
}

type registryParams struct {
	fx.In

	Logger    *slog.Logger
	Providers []provider.Provider `group:"config_providers"`
}

// newRegistry returns an Fx constructor for the registry. Explicit providers
// are registered first, then the group members, then the bundled providers.
// The registry is sealed before it is handed out.
func newRegistry(explicit []provider.Provider, bundled bool) func(registryParams) (*registry.Registry, error) {
	return func(params registryParams) (*registry.Registry, error) {
		reg := registry.New(registry.WithLogger(params.Logger))

		providers := make([]provider.Provider, 0, len(explicit)+len(params.Providers))
		providers = append(providers, explicit...)
		providers = append(providers, params.Providers...)

		if bundled {
			providers = append(providers, BundledProviders()...)
		}

		for _, p := range providers {
			err := reg.Register(p)
			if err != nil {
				return nil, fmt.Errorf("failed to register provider: %w", err)
			}
		}

		reg.Seal()
		params.Logger.Debug("provider registry sealed", slog.Int("providers", reg.Len()))

		return reg, nil
	}
}

func newDispatcher(reg *registry.Registry, set *metrics.Set, logger *slog.Logger) *dispatch.Dispatcher {
	return dispatch.New(reg, dispatch.WithMetricsSet(set), dispatch.WithLogger(logger))
}

// Start starts the Fx application.
func (app *App) Start() error {
	if app != nil && app.app != nil {
		err := app.app.Start(context.Background())
		if err != nil {
			return fmt.Errorf("failed to start app: %w", err)
		}

		return nil
	}

	return errAppNotInitialized
}

// Run starts the application and blocks until an OS signal is received, then shuts down gracefully.
func (app *App) Run() {
	if app == nil || app.app == nil {
		slog.Error("attempted to run an uninitialized app")

		return
	}

	app.app.Run()
}

// Stop stops the Fx application gracefully.
func (app *App) Stop() error {
	if app != nil && app.app != nil {
		err := app.app.Stop(context.Background())
		if err != nil {
			return fmt.Errorf("failed to stop app: %w", err)
		}

		return nil
	}

	return errAppNotInitialized
}
