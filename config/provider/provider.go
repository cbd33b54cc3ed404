package provider

import (
	"cmp"
	"io"

	"github.com/0xalexb/hjarta-formats/config/format"
)

// Priority orders providers; lower values are tried first.
type Priority int

// Reserved priority tiers. New built-in tiers go below PriorityConf so that the
// values of custom providers never have to change.
const (
	PriorityConf Priority = iota - 3
	PriorityJSON
	PriorityProperties
	PriorityCustom
)

// Value is a parsed config value. Providers usually return map[string]any at
// the root with nested maps, []any, strings, numbers, booleans and nil below it.
type Value = any

// Provider parses one config format.
type Provider interface {
	// Format identifies the syntax this provider implements. It must be stable
	// for the lifetime of the provider.
	Format() format.Format

	// RawParseValue reads the whole of r and returns the parsed value.
	// inc may be nil when the caller cannot resolve nested includes;
	// implementations must check before using it.
	RawParseValue(r io.Reader, origin Origin, opts Options, inc IncludeContext) (Value, error)
}

// Prioritizer is implemented by providers that override the default priority.
// Priority must be free of side effects and return the same value on every call.
type Prioritizer interface {
	Priority() Priority
}

// Declarer is implemented by providers that handle only part of their
// format's extensions or mime types. The declared values must be a subset of
// the format's own.
type Declarer interface {
	DeclaredExtensions() []string
	DeclaredMimeTypes() []string
}

// PriorityOf returns the priority of p: its own when it implements
// Prioritizer, otherwise the tier of its format.
//
// Built-in tiers go to the format.Conf, format.JSON and format.Properties
// values themselves. A separate descriptor with the same extensions and mime
// types is a custom format here, even though format.Same matches it against
// those values when resolving a syntax hint.
func PriorityOf(p Provider) Priority {
	if prioritizer, ok := p.(Prioritizer); ok {
		return prioritizer.Priority()
	}

	switch p.Format() {
	case format.Conf:
		return PriorityConf
	case format.JSON:
		return PriorityJSON
	case format.Properties:
		return PriorityProperties
	default:
		return PriorityCustom
	}
}

// ExtensionsOf returns the extensions p handles.
func ExtensionsOf(p Provider) []string {
	if declarer, ok := p.(Declarer); ok {
		return nonNil(declarer.DeclaredExtensions())
	}

	f, ok := delegate(p)
	if !ok {
		return []string{}
	}

	return nonNil(f.Extensions())
}

// MimeTypesOf returns the mime types p handles.
func MimeTypesOf(p Provider) []string {
	if declarer, ok := p.(Declarer); ok {
		return nonNil(declarer.DeclaredMimeTypes())
	}

	f, ok := delegate(p)
	if !ok {
		return []string{}
	}

	return nonNil(f.MimeTypes())
}

// IsOwnFormat reports whether p returns itself from Format.
func IsOwnFormat(p Provider) bool {
	return format.Identical(p.Format(), p)
}

// Compare orders a before b by ascending priority.
//
// A provider compares equal to itself regardless of priority. A nil b yields
// -1, meaning a sorts before an absent provider; this keeps sorting of slices
// with holes well defined. CompareAbsent spells that case out.
func Compare(a, b Provider) int {
	if format.Identical(a, b) {
		return 0
	}

	if b == nil {
		return -1
	}

	if a == nil {
		return 1
	}

	return cmp.Compare(PriorityOf(a), PriorityOf(b))
}

// CompareAbsent is Compare(p, nil): a present provider always sorts first.
func CompareAbsent(p Provider) int {
	if p == nil {
		return 0
	}

	return -1
}

// delegate returns the format p delegates to. A provider that is its own
// format has nothing to delegate to.
func delegate(p Provider) (format.Format, bool) {
	f := p.Format()
	if f == nil || format.Identical(f, p) {
		return nil, false
	}

	return f, true
}

func nonNil(values []string) []string {
	if values == nil {
		return []string{}
	}

	return values
}
