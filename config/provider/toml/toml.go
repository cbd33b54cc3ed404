package toml

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/0xalexb/hjarta-formats/config/format"
	"github.com/0xalexb/hjarta-formats/config/provider"

	"github.com/BurntSushi/toml"
)

// Provider parses TOML documents.
type Provider struct{}

// New creates a TOML provider.
func New() *Provider {
	return &Provider{}
}

// Format returns format.TOML.
//
//nolint:ireturn // format.Format is the contract type
func (p *Provider) Format() format.Format {
	return format.TOML
}

// RawParseValue reads the whole of r and decodes it into a map.
func (p *Provider) RawParseValue(r io.Reader, origin provider.Origin, _ provider.Options, _ provider.IncludeContext) (provider.Value, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, provider.IOFailure(origin, err)
	}

	root := make(map[string]any)

	_, err = toml.NewDecoder(bytes.NewReader(data)).Decode(&root)
	if err != nil {
		var parseErr toml.ParseError
		if errors.As(err, &parseErr) {
			origin = origin.WithLine(parseErr.Position.Line)
		}

		return nil, provider.SyntaxFailure(origin, fmt.Errorf("cannot parse toml: %w", err))
	}

	return tablesToValues(root), nil
}

// tablesToValues turns arrays of tables into []any so every provider returns
// the same container types.
func tablesToValues(table map[string]any) map[string]any {
	for key, value := range table {
		switch typed := value.(type) {
		case map[string]any:
			table[key] = tablesToValues(typed)
		case []map[string]any:
			items := make([]any, 0, len(typed))

			for _, item := range typed {
				items = append(items, tablesToValues(item))
			}

			table[key] = items
		}
	}

	return table
}
