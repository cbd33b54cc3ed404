package yaml

import (
	"io"
	"strings"
	"testing"

	"github.com/0xalexb/hjarta-formats/config/format"
	"github.com/0xalexb/hjarta-formats/config/provider"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parse(t *testing.T, data string) (provider.Value, error) {
	t.Helper()

	return New().RawParseValue(strings.NewReader(data), provider.Origin{Filename: "app.yaml"}, provider.Options{}, nil)
}

func TestProvider_Identity(t *testing.T) {
	t.Parallel()

	p := New()

	assert.Same(t, format.YAML, p.Format())
	assert.Equal(t, provider.PriorityCustom, provider.PriorityOf(p))
	assert.Equal(t, []string{"yaml", "yml"}, provider.ExtensionsOf(p))

	early := New(WithPriority(provider.PriorityConf - 1))
	assert.Equal(t, provider.PriorityConf-1, provider.PriorityOf(early))
	assert.Negative(t, provider.Compare(early, p))
}

func TestProvider_RawParseValue(t *testing.T) {
	t.Parallel()

	value, err := parse(t, `
name: test-app
version: "1.0"
port: 8080
offset: -3
ratio: 3.5
enabled: true
nothing: null
hosts:
  - host1.example.com
  - host2.example.com
database:
  primary:
    host: primary.db.com
    port: 5432
`)

	require.NoError(t, err)
	assert.Equal(t, map[string]any{
		"name":    "test-app",
		"version": "1.0",
		"port":    int64(8080),
		"offset":  int64(-3),
		"ratio":   3.5,
		"enabled": true,
		"nothing": nil,
		"hosts":   []any{"host1.example.com", "host2.example.com"},
		"database": map[string]any{
			"primary": map[string]any{"host": "primary.db.com", "port": int64(5432)},
		},
	}, value)
}

func TestProvider_RawParseValue_EmptyDocument(t *testing.T) {
	t.Parallel()

	for _, data := range []string{"", "   \n", "# only a comment\n"} {
		value, err := parse(t, data)

		require.NoError(t, err)
		assert.Equal(t, map[string]any{}, value)
	}
}

func TestProvider_RawParseValue_InvalidYAML(t *testing.T) {
	t.Parallel()

	value, err := parse(t, `
invalid: yaml: content: [
`)

	require.ErrorIs(t, err, provider.ErrSyntax)
	assert.Nil(t, value)
	assert.Contains(t, err.Error(), "app.yaml")
}

func TestProvider_RawParseValue_NonMappingRoot(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		data string
	}{
		{name: "sequence", data: "- a\n- b\n"},
		{name: "scalar", data: "just a string\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := parse(t, tt.data)

			require.ErrorIs(t, err, provider.ErrSyntax)
			require.ErrorIs(t, err, ErrNotMapping)
		})
	}
}

func TestNormalize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    any
		expected any
	}{
		{name: "int", input: 7, expected: int64(7)},
		{name: "small uint64", input: uint64(7), expected: int64(7)},
		{name: "huge uint64", input: uint64(1 << 63), expected: uint64(1 << 63)},
		{name: "any keys", input: map[any]any{1: "one"}, expected: map[string]any{"1": "one"}},
		{name: "nested slice", input: []any{uint64(1), map[string]any{"a": 2}}, expected: []any{int64(1), map[string]any{"a": int64(2)}}},
		{name: "string", input: "s", expected: "s"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.expected, normalize(tt.input))
		})
	}
}

type errReader struct{}

func (errReader) Read(_ []byte) (int, error) {
	return 0, io.ErrClosedPipe
}

func TestProvider_RawParseValue_ReadError(t *testing.T) {
	t.Parallel()

	_, err := New().RawParseValue(errReader{}, provider.Origin{}, provider.Options{}, nil)

	require.ErrorIs(t, err, provider.ErrIO)
}
