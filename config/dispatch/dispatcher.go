package dispatch

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"

	"github.com/0xalexb/hjarta-formats/config/format"
	"github.com/0xalexb/hjarta-formats/config/provider"

	"github.com/VictoriaMetrics/metrics"
)

// ErrNilInput is returned when Dispatch is called without an input.
var ErrNilInput = errors.New("input must not be nil")

// Resolver looks up candidate providers. *registry.Registry implements it.
type Resolver interface {
	ResolveForExtension(ext string) []provider.Provider
	ResolveForMimeType(mime string) []provider.Provider
	ResolveBySyntaxHint(syntax format.Format) (provider.Provider, bool)
	All() []provider.Provider
}

// Hint narrows down the candidates for one Dispatch call. Empty fields fall
// back to the options and to what the input declares.
type Hint struct {
	Syntax    format.Format
	Extension string
	MimeType  string
}

// Option configures a Dispatcher.
type Option func(*Dispatcher)

// WithMetricsSet records dispatch counters into set instead of a private set.
func WithMetricsSet(set *metrics.Set) Option {
	return func(d *Dispatcher) {
		if set != nil {
			d.metrics = set
		}
	}
}

// WithLogger sets the logger. Defaults to slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(d *Dispatcher) {
		if logger != nil {
			d.logger = logger
		}
	}
}

// Dispatcher runs the fallback chain over the candidates of a Resolver.
type Dispatcher struct {
	resolver Resolver
	metrics  *metrics.Set
	logger   *slog.Logger
}

// New creates a Dispatcher resolving candidates from resolver.
func New(resolver Resolver, opts ...Option) *Dispatcher {
	dispatcher := &Dispatcher{
		resolver: resolver,
		metrics:  nil,
		logger:   nil,
	}

	for _, apply := range opts {
		apply(dispatcher)
	}

	if dispatcher.metrics == nil {
		dispatcher.metrics = metrics.NewSet()
	}

	if dispatcher.logger == nil {
		dispatcher.logger = slog.Default()
	}

	return dispatcher
}

// Metrics returns the set dispatch counters are recorded in.
func (d *Dispatcher) Metrics() *metrics.Set {
	return d.metrics
}

// Dispatch parses in with the first candidate provider that accepts it.
func (d *Dispatcher) Dispatch(in provider.Input, opts provider.Options, hint Hint) (provider.Value, error) {
	return d.dispatch(in, opts, hint, nil)
}

func (d *Dispatcher) dispatch(in provider.Input, opts provider.Options, hint Hint, chain []string) (provider.Value, error) {
	if in == nil {
		return nil, ErrNilInput
	}

	origin := in.Origin()
	if opts.OriginDescription != "" {
		origin.Description = opts.OriginDescription
	}

	if opts.Includer == nil {
		opts.Includer = d.Includer()
	}

	candidates, lookup := d.candidates(in, opts, hint)
	if len(candidates) == 0 {
		d.countFailure("no_provider")

		return nil, provider.NoProviderFailure(origin, lookup)
	}

	inc := newIncludeContext(in, opts, chain)

	var last error

	for _, candidate := range candidates {
		name := formatName(candidate)

		value, err := d.attempt(candidate, in, origin, opts, inc)
		if err == nil {
			d.metrics.GetOrCreateCounter(fmt.Sprintf(`config_dispatch_success_total{format=%q}`, name)).Inc()

			return value, nil
		}

		if errors.Is(err, errMissing) {
			d.logger.Debug("config input missing, using empty object", slog.String("origin", origin.String()))

			return map[string]any{}, nil
		}

		if provider.IsIOFailure(err) {
			d.countFailure("io")
			d.logger.Warn("config input could not be read",
				slog.String("origin", origin.String()),
				slog.String("format", name),
				slog.Any("error", err),
			)

			return nil, err
		}

		if len(candidates) == 1 {
			d.countFailure("syntax")

			return nil, err
		}

		d.metrics.GetOrCreateCounter(fmt.Sprintf(`config_dispatch_declined_total{format=%q}`, name)).Inc()
		d.logger.Debug("config provider declined input",
			slog.String("origin", origin.String()),
			slog.String("format", name),
			slog.Any("error", err),
		)

		last = err
	}

	d.countFailure("all_failed")
	d.logger.Warn("no config provider could parse input",
		slog.String("origin", origin.String()),
		slog.Int("attempts", len(candidates)),
	)

	return nil, provider.AllProvidersFailed(origin, len(candidates), last)
}

// errMissing marks an absent input that AllowMissing turns into an empty object.
var errMissing = errors.New("input missing")

func (d *Dispatcher) attempt(
	candidate provider.Provider,
	in provider.Input,
	origin provider.Origin,
	opts provider.Options,
	inc provider.IncludeContext,
) (provider.Value, error) {
	reader, err := in.Open()
	if err != nil && opts.AllowMissing && errors.Is(err, fs.ErrNotExist) {
		return nil, errMissing
	}

	d.metrics.GetOrCreateCounter(fmt.Sprintf(`config_dispatch_attempts_total{format=%q}`, formatName(candidate))).Inc()

	if err != nil {
		return nil, provider.IOFailure(origin, err)
	}

	defer func() {
		closeErr := reader.Close()
		if closeErr != nil {
			d.logger.Debug("closing config input", slog.String("origin", origin.String()), slog.Any("error", closeErr))
		}
	}()

	tracked := &trackingReader{reader: reader, err: nil}

	value, err := candidate.RawParseValue(tracked, origin, opts, inc)
	if tracked.err != nil {
		if err != nil && errors.Is(err, tracked.err) {
			return nil, provider.IOFailure(origin, err)
		}

		return nil, provider.IOFailure(origin, tracked.err)
	}

	if err != nil {
		if provider.IsIOFailure(err) {
			return nil, err
		}

		return nil, syntaxFailure(origin, formatName(candidate), err)
	}

	return value, nil
}

func (d *Dispatcher) candidates(in provider.Input, opts provider.Options, hint Hint) ([]provider.Provider, string) {
	syntax := hint.Syntax
	if syntax == nil {
		syntax = opts.Syntax
	}

	if syntax != nil {
		found, ok := d.resolver.ResolveBySyntaxHint(syntax)
		if !ok {
			return nil, fmt.Sprintf("syntax %q", syntax.Name())
		}

		return []provider.Provider{found}, ""
	}

	ext := hint.Extension
	if ext == "" {
		ext = in.Extension()
	}

	mime := hint.MimeType
	if mime == "" {
		mime = in.MimeType()
	}

	var lookup string

	if ext != "" {
		found := d.resolver.ResolveForExtension(ext)
		if len(found) > 0 {
			return found, ""
		}

		lookup = fmt.Sprintf("extension %q", format.NormalizeExtension(ext))
	}

	if mime != "" {
		found := d.resolver.ResolveForMimeType(mime)
		if len(found) > 0 {
			return found, ""
		}

		if lookup == "" {
			lookup = fmt.Sprintf("mime type %q", format.NormalizeMimeType(mime))
		}
	}

	if lookup != "" {
		return nil, lookup
	}

	return d.resolver.All(), "any format"
}

func (d *Dispatcher) countFailure(kind string) {
	d.metrics.GetOrCreateCounter(fmt.Sprintf(`config_dispatch_failures_total{kind=%q}`, kind)).Inc()
}

// syntaxFailure tags err as a syntax failure of the named format.
func syntaxFailure(origin provider.Origin, name string, err error) error {
	var failure *provider.Error
	if errors.As(err, &failure) {
		return err
	}

	return &provider.Error{Kind: provider.ErrSyntax, Origin: origin, Format: name, Attempts: 0, Err: err}
}

// trackingReader remembers the first read error other than io.EOF, which lets
// the dispatcher tell read failures from grammar failures.
type trackingReader struct {
	reader io.Reader
	err    error
}

func (t *trackingReader) Read(p []byte) (int, error) {
	n, err := t.reader.Read(p)
	if err != nil && !errors.Is(err, io.EOF) && t.err == nil {
		t.err = err
	}

	return n, err //nolint:wrapcheck // io.Reader contract
}

func formatName(p provider.Provider) string {
	f := p.Format()
	if f == nil {
		return fmt.Sprintf("%T", p)
	}

	return f.Name()
}
