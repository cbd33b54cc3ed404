package provider

import (
	"io"

	"github.com/0xalexb/hjarta-formats/config/format"
)

// Options carries parse-time flags shared by all providers. The zero value is
// ready to use. The With methods return modified copies.
type Options struct {
	// Syntax forces a format. When set, callers pick the provider by format
	// instead of by extension and providers must skip their own sniffing.
	Syntax format.Format
	// OriginDescription overrides the description of the input's origin.
	OriginDescription string
	// AllowMissing turns a missing input into an empty object instead of an error.
	AllowMissing bool
	// Includer resolves nested include directives. May be nil.
	Includer Includer
}

// WithSyntax returns a copy of o with Syntax set.
func (o Options) WithSyntax(syntax format.Format) Options {
	o.Syntax = syntax

	return o
}

// WithOriginDescription returns a copy of o with OriginDescription set.
func (o Options) WithOriginDescription(description string) Options {
	o.OriginDescription = description

	return o
}

// WithAllowMissing returns a copy of o with AllowMissing set.
func (o Options) WithAllowMissing(allowMissing bool) Options {
	o.AllowMissing = allowMissing

	return o
}

// WithIncluder returns a copy of o with Includer set.
func (o Options) WithIncluder(includer Includer) Options {
	o.Includer = includer

	return o
}

// Input is a re-openable source of config text. Each Open hands out an
// exclusively owned reader that the caller must close.
type Input interface {
	Open() (io.ReadCloser, error)
	Origin() Origin
	// Extension is the declared file extension without the dot, or "".
	Extension() string
	// MimeType is the declared mime type, or "".
	MimeType() string
}

// IncludeContext resolves include directives relative to the input being parsed.
type IncludeContext interface {
	// Relative returns the input that name refers to relative to the current
	// one, or false when it cannot be resolved.
	Relative(name string) (Input, bool)
	// ParseOptions returns the options nested parses should use.
	ParseOptions() Options
}

// Includer parses an included resource.
type Includer interface {
	Include(ctx IncludeContext, name string) (Value, error)
}
