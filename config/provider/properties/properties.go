package properties

import (
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/0xalexb/hjarta-formats/config/format"
	"github.com/0xalexb/hjarta-formats/config/provider"

	"github.com/magiconair/properties"
)

// Provider parses Java properties documents.
type Provider struct{}

// New creates a properties provider.
func New() *Provider {
	return &Provider{}
}

// Format returns format.Properties.
//
//nolint:ireturn // format.Format is the contract type
func (p *Provider) Format() format.Format {
	return format.Properties
}

// RawParseValue reads the whole of r and returns the nested object.
func (p *Provider) RawParseValue(r io.Reader, origin provider.Origin, _ provider.Options, _ provider.IncludeContext) (provider.Value, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, provider.IOFailure(origin, err)
	}

	loader := &properties.Loader{
		Encoding:         properties.UTF8,
		DisableExpansion: true,
		IgnoreMissing:    false,
	}

	props, err := loader.LoadBytes(data)
	if err != nil {
		return nil, provider.SyntaxFailure(origin, fmt.Errorf("cannot parse properties: %w", err))
	}

	return nest(props), nil
}

func nest(props *properties.Properties) map[string]any {
	keys := props.Keys()
	slices.Sort(keys)

	parents := make(map[string]struct{})

	for _, key := range keys {
		parts := strings.Split(key, ".")
		for i := 1; i < len(parts); i++ {
			parents[strings.Join(parts[:i], ".")] = struct{}{}
		}
	}

	root := make(map[string]any)

	for _, key := range keys {
		if _, isParent := parents[key]; isParent {
			continue
		}

		value, _ := props.Get(key)
		insert(root, strings.Split(key, "."), value)
	}

	return root
}

func insert(root map[string]any, path []string, value string) {
	current := root

	for _, part := range path[:len(path)-1] {
		child, ok := current[part].(map[string]any)
		if !ok {
			child = make(map[string]any)
			current[part] = child
		}

		current = child
	}

	current[path[len(path)-1]] = value
}
