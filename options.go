package formats

import (
	"github.com/0xalexb/hjarta-formats/config/provider"

	"go.uber.org/fx"
)

// Options holds configuration settings for the application.
type Options struct {
	Modules        []fx.Option
	Providers      []provider.Provider
	LogLevel       string
	LogFormat      string
	DisableBundled bool
}

// Option defines a function type for applying configuration options.
type Option func(*Options)

// WithModules adds Fx modules to the application.
func WithModules(modules ...fx.Option) Option {
	return func(opts *Options) {
		opts.Modules = append(opts.Modules, modules...)
	}
}

// WithProviders registers providers ahead of the config_providers group and
// the bundled providers. Among providers of equal priority the earlier one wins.
func WithProviders(providers ...provider.Provider) Option {
	return func(opts *Options) {
		opts.Providers = append(opts.Providers, providers...)
	}
}

// WithoutBundledProviders leaves the JSON, properties, YAML and TOML
// providers out of the registry.
func WithoutBundledProviders() Option {
	return func(opts *Options) {
		opts.DisableBundled = true
	}
}

// WithLogLevel sets the log level for the application.
// Valid levels are: "debug", "info", "warn", "error".
// If not set or invalid, defaults to "info".
func WithLogLevel(level string) Option {
	return func(opts *Options) {
		opts.LogLevel = level
	}
}

// WithLogFormat selects the log handler, "json" (default) or "text".
func WithLogFormat(format string) Option {
	return func(opts *Options) {
		opts.LogFormat = format
	}
}
