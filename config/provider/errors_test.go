package provider

import (
	"errors"
	"fmt"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrigin_String(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		origin   Origin
		expected string
	}{
		{name: "description wins", origin: Origin{Description: "env APP", Filename: "app.conf"}, expected: "env APP"},
		{name: "filename fallback", origin: Origin{Filename: "/etc/app.conf"}, expected: "/etc/app.conf"},
		{name: "line", origin: Origin{Filename: "app.conf", Line: 7}, expected: "app.conf:7"},
		{name: "unknown", origin: Origin{}, expected: "<unknown origin>"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.expected, tt.origin.String())
		})
	}
}

func TestOrigin_WithLineCopies(t *testing.T) {
	t.Parallel()

	origin := Origin{Filename: "app.conf"}
	withLine := origin.WithLine(3)

	assert.Equal(t, 0, origin.Line)
	assert.Equal(t, 3, withLine.Line)
}

func TestIOFailure(t *testing.T) {
	t.Parallel()

	origin := Origin{Filename: "app.json"}
	err := IOFailure(origin, io.ErrUnexpectedEOF)

	require.ErrorIs(t, err, ErrIO)
	require.ErrorIs(t, err, io.ErrUnexpectedEOF)
	assert.True(t, IsIOFailure(err))
	assert.Equal(t, "app.json: i/o failure: unexpected EOF", err.Error())

	var failure *Error
	require.ErrorAs(t, err, &failure)
	assert.Equal(t, origin, failure.Origin)
}

func TestIOFailure_KeepsExistingFailure(t *testing.T) {
	t.Parallel()

	inner := IOFailure(Origin{Filename: "inner.json"}, io.ErrUnexpectedEOF)
	wrapped := fmt.Errorf("reading: %w", inner)

	assert.Same(t, inner, IOFailure(Origin{Filename: "outer.json"}, inner))
	assert.Equal(t, wrapped, IOFailure(Origin{Filename: "outer.json"}, wrapped))
}

func TestSyntaxFailure(t *testing.T) {
	t.Parallel()

	cause := errors.New("unexpected token")
	err := SyntaxFailure(Origin{Filename: "app.json"}, cause)

	require.ErrorIs(t, err, ErrSyntax)
	require.ErrorIs(t, err, cause)
	assert.False(t, IsIOFailure(err))
	assert.Equal(t, "app.json: syntax failure: unexpected token", err.Error())
	assert.Same(t, err, SyntaxFailure(Origin{}, err))
}

func TestError_FormatName(t *testing.T) {
	t.Parallel()

	err := &Error{Kind: ErrSyntax, Origin: Origin{Filename: "a.yaml"}, Format: "yaml", Err: errors.New("bad indent")}

	assert.Equal(t, "a.yaml: yaml: syntax failure: bad indent", err.Error())
}

func TestNoProviderFailure(t *testing.T) {
	t.Parallel()

	err := NoProviderFailure(Origin{Filename: "app.xyz"}, `extension "xyz"`)

	require.ErrorIs(t, err, ErrNoProvider)
	assert.Equal(t, `app.xyz: no provider: extension "xyz"`, err.Error())
}

func TestAllProvidersFailed(t *testing.T) {
	t.Parallel()

	last := SyntaxFailure(Origin{Filename: "app.conf"}, errors.New("bad"))
	err := AllProvidersFailed(Origin{Filename: "app.conf"}, 2, last)

	require.ErrorIs(t, err, ErrAllProvidersFailed)
	require.ErrorIs(t, err, ErrSyntax)
	assert.Equal(t, "app.conf: all providers failed after 2 attempts: app.conf: syntax failure: bad", err.Error())

	var failure *Error
	require.ErrorAs(t, err, &failure)
	assert.Equal(t, 2, failure.Attempts)
}

func TestError_NilKind(t *testing.T) {
	t.Parallel()

	err := &Error{Origin: Origin{Filename: "x"}}

	assert.Equal(t, "x: parse failure", err.Error())
	assert.Empty(t, err.Unwrap())
}

func TestOptions_WithCopies(t *testing.T) {
	t.Parallel()

	base := Options{}
	changed := base.WithAllowMissing(true).WithOriginDescription("test")

	assert.False(t, base.AllowMissing)
	assert.Empty(t, base.OriginDescription)
	assert.True(t, changed.AllowMissing)
	assert.Equal(t, "test", changed.OriginDescription)
	assert.Nil(t, changed.Syntax)
	assert.Nil(t, changed.Includer)
}
