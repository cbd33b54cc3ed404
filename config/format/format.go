package format

import (
	"errors"
	"fmt"
	"reflect"
	"slices"
	"strings"
)

// ErrEmptyName is returned when a descriptor is constructed without a name.
var ErrEmptyName = errors.New("format name must not be empty")

// Format identifies a config syntax and the inputs it is recognized by.
//
// Implementations must return the same values on every call and must not hand
// out slices they keep using internally.
type Format interface {
	Name() string
	Extensions() []string
	MimeTypes() []string
}

// Descriptor is an immutable Format value.
type Descriptor struct {
	name       string
	extensions []string
	mimeTypes  []string
}

//nolint:gochecknoglobals // well-known syntaxes, compared by identity.
var (
	// Conf is the HOCON syntax, the most preferred built-in.
	Conf = MustNew("conf", []string{"conf"}, []string{"application/hocon"})
	// JSON is the JSON syntax.
	JSON = MustNew("json", []string{"json"}, []string{"application/json"})
	// Properties is the Java properties syntax.
	Properties = MustNew("properties", []string{"properties"}, []string{"text/x-java-properties"})
	// YAML is the YAML syntax handled by the bundled YAML provider.
	YAML = MustNew("yaml", []string{"yaml", "yml"}, []string{"application/yaml", "application/x-yaml", "text/yaml"})
	// TOML is the TOML syntax handled by the bundled TOML provider.
	TOML = MustNew("toml", []string{"toml"}, []string{"application/toml"})
)

// New creates a Descriptor. Extensions and mime types are normalized,
// de-duplicated and sorted; empty entries are dropped.
func New(name string, extensions, mimeTypes []string) (*Descriptor, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyName
	}

	return &Descriptor{
		name:       name,
		extensions: normalizeSet(extensions, NormalizeExtension),
		mimeTypes:  normalizeSet(mimeTypes, NormalizeMimeType),
	}, nil
}

// MustNew is like New but panics on error. Useful for package level descriptors.
func MustNew(name string, extensions, mimeTypes []string) *Descriptor {
	d, err := New(name, extensions, mimeTypes)
	if err != nil {
		panic(fmt.Sprintf("format %q: %v", name, err))
	}

	return d
}

// Name returns the diagnostic name of the format.
func (d *Descriptor) Name() string {
	return d.name
}

// Extensions returns a copy of the recognized extensions.
func (d *Descriptor) Extensions() []string {
	return slices.Clone(d.extensions)
}

// MimeTypes returns a copy of the recognized mime types.
func (d *Descriptor) MimeTypes() []string {
	return slices.Clone(d.mimeTypes)
}

// String implements fmt.Stringer.
func (d *Descriptor) String() string {
	return d.name
}

// NormalizeExtension lowercases ext and strips surrounding space and a leading dot.
func NormalizeExtension(ext string) string {
	return strings.TrimPrefix(strings.ToLower(strings.TrimSpace(ext)), ".")
}

// NormalizeMimeType lowercases mime and drops any parameters, so
// "Application/JSON; charset=utf-8" becomes "application/json".
func NormalizeMimeType(mime string) string {
	mediaType, _, _ := strings.Cut(mime, ";")

	return strings.ToLower(strings.TrimSpace(mediaType))
}

// Equal reports whether a and b recognize the same extensions and mime types.
// A nil format only equals another nil format.
func Equal(a, b Format) bool {
	if isNil(a) || isNil(b) {
		return isNil(a) && isNil(b)
	}

	return slices.Equal(normalizeSet(a.Extensions(), NormalizeExtension), normalizeSet(b.Extensions(), NormalizeExtension)) &&
		slices.Equal(normalizeSet(a.MimeTypes(), NormalizeMimeType), normalizeSet(b.MimeTypes(), NormalizeMimeType))
}

// Same reports whether a and b are the identical format value or Equal.
func Same(a, b Format) bool {
	if Identical(a, b) {
		return true
	}

	return Equal(a, b)
}

// Identical reports whether a and b hold the same dynamic value.
// Values of non-comparable types are never identical.
func Identical(a, b any) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}

	typeA := reflect.TypeOf(a)
	if typeA != reflect.TypeOf(b) || !typeA.Comparable() {
		return false
	}

	return a == b
}

// HasExtension reports whether f recognizes ext.
func HasExtension(f Format, ext string) bool {
	if isNil(f) {
		return false
	}

	return slices.Contains(normalizeSet(f.Extensions(), NormalizeExtension), NormalizeExtension(ext))
}

// HasMimeType reports whether f recognizes mime.
func HasMimeType(f Format, mime string) bool {
	if isNil(f) {
		return false
	}

	return slices.Contains(normalizeSet(f.MimeTypes(), NormalizeMimeType), NormalizeMimeType(mime))
}

func normalizeSet(values []string, normalize func(string) string) []string {
	result := make([]string, 0, len(values))

	for _, value := range values {
		value = normalize(value)
		if value == "" {
			continue
		}

		result = append(result, value)
	}

	slices.Sort(result)

	return slices.Compact(result)
}

func isNil(f Format) bool {
	if f == nil {
		return true
	}

	value := reflect.ValueOf(f)

	return value.Kind() == reflect.Pointer && value.IsNil()
}
