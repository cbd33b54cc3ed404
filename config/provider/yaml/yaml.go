package yaml

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"

	"github.com/0xalexb/hjarta-formats/config/format"
	"github.com/0xalexb/hjarta-formats/config/provider"

	"github.com/goccy/go-yaml"
)

// ErrNotMapping is returned when the document root is not a mapping.
var ErrNotMapping = errors.New("root must be a YAML mapping")

// Option configures a Provider.
type Option func(*Provider)

// WithPriority overrides the custom-tier default priority.
func WithPriority(priority provider.Priority) Option {
	return func(p *Provider) {
		p.priority = priority
	}
}

// Provider parses YAML documents.
type Provider struct {
	priority provider.Priority
}

// New creates a YAML provider.
func New(opts ...Option) *Provider {
	p := &Provider{priority: provider.PriorityCustom}

	for _, apply := range opts {
		apply(p)
	}

	return p
}

// Format returns format.YAML.
//
//nolint:ireturn // format.Format is the contract type
func (p *Provider) Format() format.Format {
	return format.YAML
}

// Priority returns the configured priority.
func (p *Provider) Priority() provider.Priority {
	return p.priority
}

// RawParseValue reads the whole of r and unmarshals it into plain Go values.
func (p *Provider) RawParseValue(r io.Reader, origin provider.Origin, _ provider.Options, _ provider.IncludeContext) (provider.Value, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, provider.IOFailure(origin, err)
	}

	if len(bytes.TrimSpace(data)) == 0 {
		return map[string]any{}, nil
	}

	var root any

	err = yaml.Unmarshal(data, &root)
	if err != nil {
		return nil, provider.SyntaxFailure(origin, fmt.Errorf("unmarshal error: %w", err))
	}

	switch typed := normalize(root).(type) {
	case nil:
		return map[string]any{}, nil
	case map[string]any:
		return typed, nil
	default:
		return nil, provider.SyntaxFailure(origin, fmt.Errorf("%w; got %T", ErrNotMapping, typed))
	}
}

// normalize converts decoder specific types so YAML values look like those of
// the other providers.
func normalize(value any) any {
	switch typed := value.(type) {
	case map[string]any:
		for key, item := range typed {
			typed[key] = normalize(item)
		}

		return typed
	case map[any]any:
		result := make(map[string]any, len(typed))

		for key, item := range typed {
			result[fmt.Sprint(key)] = normalize(item)
		}

		return result
	case []any:
		for i, item := range typed {
			typed[i] = normalize(item)
		}

		return typed
	case int:
		return int64(typed)
	case uint64:
		if typed <= math.MaxInt64 {
			return int64(typed)
		}

		return typed
	default:
		return value
	}
}
