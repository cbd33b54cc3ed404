package dispatch

import (
	"errors"
	"fmt"
	"slices"

	"github.com/0xalexb/hjarta-formats/config/input"
	"github.com/0xalexb/hjarta-formats/config/provider"
)

// MaxIncludeDepth bounds nested includes.
const MaxIncludeDepth = 50

// ErrNoIncludeContext is returned when an include is requested without a context.
var ErrNoIncludeContext = errors.New("include context is not available")

// ErrUnresolvedInclude is returned when an include name cannot be resolved.
var ErrUnresolvedInclude = errors.New("include cannot be resolved")

// ErrIncludeCycle is returned when an input includes itself, directly or not.
var ErrIncludeCycle = errors.New("include cycle")

// ErrIncludeTooDeep is returned when includes nest deeper than MaxIncludeDepth.
var ErrIncludeTooDeep = errors.New("includes nested too deep")

// includeContext resolves includes next to a file-like input.
type includeContext struct {
	current input.Relativizer
	opts    provider.Options
	chain   []string
}

// newIncludeContext returns nil when in cannot resolve relative names.
//
//nolint:ireturn // nil interface is part of the contract
func newIncludeContext(in provider.Input, opts provider.Options, chain []string) provider.IncludeContext {
	relativizer, ok := in.(input.Relativizer)
	if !ok {
		return nil
	}

	return &includeContext{
		current: relativizer,
		opts:    opts,
		chain:   append(slices.Clone(chain), in.Origin().String()),
	}
}

// Relative resolves name against the current input.
func (c *includeContext) Relative(name string) (provider.Input, bool) {
	return c.current.Relative(name)
}

// ParseOptions returns the options for included inputs: no forced syntax, no
// origin override, and a missing include is not an error.
func (c *includeContext) ParseOptions() provider.Options {
	return c.opts.WithSyntax(nil).WithOriginDescription("").WithAllowMissing(true)
}

type includer struct {
	dispatcher *Dispatcher
}

// Includer returns the includer that parses included inputs with d. It is
// used whenever the options of a Dispatch call do not carry one.
//
//nolint:ireturn // provider.Includer is the plug-in type
func (d *Dispatcher) Includer() provider.Includer {
	return &includer{dispatcher: d}
}

// Include parses the input name refers to relative to ctx.
func (i *includer) Include(ctx provider.IncludeContext, name string) (provider.Value, error) {
	if ctx == nil {
		return nil, ErrNoIncludeContext
	}

	in, ok := ctx.Relative(name)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnresolvedInclude, name)
	}

	var chain []string
	if known, isOwn := ctx.(*includeContext); isOwn {
		chain = known.chain
	}

	if len(chain) >= MaxIncludeDepth {
		return nil, fmt.Errorf("%w: %d levels at %q", ErrIncludeTooDeep, len(chain), name)
	}

	if slices.Contains(chain, in.Origin().String()) {
		return nil, fmt.Errorf("%w: %s", ErrIncludeCycle, in.Origin())
	}

	return i.dispatcher.dispatch(in, ctx.ParseOptions(), Hint{Syntax: nil, Extension: "", MimeType: ""}, chain)
}
