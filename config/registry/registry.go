package registry

import (
	"cmp"
	"errors"
	"fmt"
	"log/slog"
	"reflect"
	"slices"
	"sync"
	"sync/atomic"

	"github.com/0xalexb/hjarta-formats/config/format"
	"github.com/0xalexb/hjarta-formats/config/provider"
)

// ErrNilProvider is returned when registering a nil provider.
var ErrNilProvider = errors.New("provider must not be nil")

// ErrSealed is returned when registering into a sealed registry.
var ErrSealed = errors.New("registry is sealed")

// ErrNotComparable is returned when registering a provider whose dynamic type
// cannot be compared, which would make re-registration undetectable. Register
// a pointer instead.
var ErrNotComparable = errors.New("provider type is not comparable")

// ErrUndeclared is returned when a provider declares an extension or mime type
// its format does not recognize.
var ErrUndeclared = errors.New("declared outside of format")

// Option configures a Registry.
type Option func(*Registry)

// WithLogger sets the logger used for registration events. Defaults to slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(r *Registry) {
		if logger != nil {
			r.logger = logger
		}
	}
}

type entry struct {
	provider provider.Provider
	priority provider.Priority
	seq      int
}

// Registry holds registered providers. It is safe for concurrent use.
type Registry struct {
	mu      sync.RWMutex
	entries []*entry
	byExt   map[string][]*entry
	byMime  map[string][]*entry
	sealed  atomic.Bool
	logger  *slog.Logger
}

// New creates an empty registry.
func New(opts ...Option) *Registry {
	reg := &Registry{
		entries: nil,
		byExt:   make(map[string][]*entry),
		byMime:  make(map[string][]*entry),
		logger:  nil,
	}

	for _, apply := range opts {
		apply(reg)
	}

	if reg.logger == nil {
		reg.logger = slog.Default()
	}

	return reg
}

// Register adds p. Registering a provider that is already present is a no-op.
// Providers are told apart by identity, so p must be of a comparable type;
// pointers always are.
//
// The priority of p is read once, here, and used for every later lookup.
func (r *Registry) Register(p provider.Provider) error {
	if p == nil {
		return ErrNilProvider
	}

	if r.sealed.Load() {
		return ErrSealed
	}

	if !reflect.TypeOf(p).Comparable() {
		return fmt.Errorf("%T: %w", p, ErrNotComparable)
	}

	extensions, mimeTypes, err := declaredSets(p)
	if err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.sealed.Load() {
		return ErrSealed
	}

	if r.indexOf(p) >= 0 {
		return nil
	}

	item := &entry{
		provider: p,
		priority: provider.PriorityOf(p),
		seq:      len(r.entries),
	}

	r.entries = append(r.entries, item)

	for _, ext := range extensions {
		r.byExt[ext] = insertOrdered(r.byExt[ext], item)
	}

	for _, mime := range mimeTypes {
		r.byMime[mime] = insertOrdered(r.byMime[mime], item)
	}

	r.logger.Debug("config provider registered",
		slog.String("format", formatName(p)),
		slog.Int("priority", int(item.priority)),
		slog.Any("extensions", extensions),
		slog.Any("mime_types", mimeTypes),
	)

	return nil
}

// MustRegister registers p and panics on error. Useful during startup.
func MustRegister(r *Registry, p provider.Provider) {
	err := r.Register(p)
	if err != nil {
		panic(fmt.Sprintf("registering %s provider: %v", formatName(p), err))
	}
}

// Seal prevents further registrations. It returns true if this call sealed the registry.
func (r *Registry) Seal() bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	return !r.sealed.Swap(true)
}

// Sealed reports whether the registry accepts no more registrations.
func (r *Registry) Sealed() bool {
	return r.sealed.Load()
}

// Len returns the number of registered providers.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.entries)
}

// ResolveForExtension returns the providers handling ext, in the order they
// should be tried. Case and a leading dot are ignored. The result is never nil.
func (r *Registry) ResolveForExtension(ext string) []provider.Provider {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return providersOf(r.byExt[format.NormalizeExtension(ext)])
}

// ResolveForMimeType returns the providers handling mime, in the order they
// should be tried. Case and mime parameters are ignored. The result is never nil.
func (r *Registry) ResolveForMimeType(mime string) []provider.Provider {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return providersOf(r.byMime[format.NormalizeMimeType(mime)])
}

// ResolveBySyntaxHint returns the most preferred provider implementing syntax.
func (r *Registry) ResolveBySyntaxHint(syntax format.Format) (provider.Provider, bool) {
	if syntax == nil {
		return nil, false
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	var best *entry

	for _, item := range r.entries {
		if !format.Same(item.provider.Format(), syntax) {
			continue
		}

		if best == nil || item.priority < best.priority {
			best = item
		}
	}

	if best == nil {
		return nil, false
	}

	return best.provider, true
}

// All returns every provider ordered by priority, then registration order.
func (r *Registry) All() []provider.Provider {
	r.mu.RLock()
	sorted := slices.Clone(r.entries)
	r.mu.RUnlock()

	slices.SortStableFunc(sorted, compareEntries)

	return providersOf(sorted)
}

func (r *Registry) indexOf(p provider.Provider) int {
	return slices.IndexFunc(r.entries, func(item *entry) bool {
		return format.Identical(item.provider, p)
	})
}

// declaredSets returns the normalized extensions and mime types of p and
// checks that they stay within its format.
func declaredSets(p provider.Provider) ([]string, []string, error) {
	extensions := normalize(provider.ExtensionsOf(p), format.NormalizeExtension)
	mimeTypes := normalize(provider.MimeTypesOf(p), format.NormalizeMimeType)

	f := p.Format()
	if f == nil || provider.IsOwnFormat(p) {
		return extensions, mimeTypes, nil
	}

	for _, ext := range extensions {
		if !format.HasExtension(f, ext) {
			return nil, nil, fmt.Errorf("%s provider: extension %q: %w", formatName(p), ext, ErrUndeclared)
		}
	}

	for _, mime := range mimeTypes {
		if !format.HasMimeType(f, mime) {
			return nil, nil, fmt.Errorf("%s provider: mime type %q: %w", formatName(p), mime, ErrUndeclared)
		}
	}

	return extensions, mimeTypes, nil
}

// insertOrdered inserts item after every entry of lower or equal priority.
func insertOrdered(list []*entry, item *entry) []*entry {
	pos, _ := slices.BinarySearchFunc(list, item, func(existing, target *entry) int {
		if existing.priority <= target.priority {
			return -1
		}

		return 1
	})

	return slices.Insert(list, pos, item)
}

func compareEntries(a, b *entry) int {
	c := cmp.Compare(a.priority, b.priority)
	if c != 0 {
		return c
	}

	return cmp.Compare(a.seq, b.seq)
}

func providersOf(list []*entry) []provider.Provider {
	result := make([]provider.Provider, 0, len(list))

	for _, item := range list {
		result = append(result, item.provider)
	}

	return result
}

func normalize(values []string, normalizeValue func(string) string) []string {
	result := make([]string, 0, len(values))

	for _, value := range values {
		value = normalizeValue(value)
		if value == "" || slices.Contains(result, value) {
			continue
		}

		result = append(result, value)
	}

	return result
}

func formatName(p provider.Provider) string {
	if p == nil {
		return "<nil>"
	}

	f := p.Format()
	if f == nil {
		return fmt.Sprintf("%T", p)
	}

	return f.Name()
}
