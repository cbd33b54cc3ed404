package config

import (
	"errors"
	"testing"

	"github.com/0xalexb/hjarta-formats/config/dispatch"
	"github.com/0xalexb/hjarta-formats/config/input"
	"github.com/0xalexb/hjarta-formats/config/provider"
)

type mockDispatcher struct {
	dispatchFunc func(in provider.Input, opts provider.Options, hint dispatch.Hint) (provider.Value, error)
}

func (m *mockDispatcher) Dispatch(in provider.Input, opts provider.Options, hint dispatch.Hint) (provider.Value, error) {
	return m.dispatchFunc(in, opts, hint)
}

func returning(value provider.Value, err error) *mockDispatcher {
	return &mockDispatcher{
		dispatchFunc: func(_ provider.Input, _ provider.Options, _ dispatch.Hint) (provider.Value, error) {
			return value, err
		},
	}
}

type simpleConfig struct {
	Name string `yaml:"name"`
}

type configWithDefaults struct {
	Name    string `yaml:"name"`
	changed bool
}

func (c *configWithDefaults) SetDefaults() bool {
	return c.changed
}

type configWithBoth struct {
	Name    string `yaml:"name"`
	changed bool
	err     error
}

func (c *configWithBoth) SetDefaults() bool {
	return c.changed
}

func (c *configWithBoth) Validate() error {
	return c.err
}

func testInput() provider.Input {
	return input.NewString("test", "")
}

func TestLoad_Success(t *testing.T) {
	t.Parallel()

	target := &simpleConfig{}
	load := Load(target, "")

	result, err := load(returning(map[string]any{"name": "test"}, nil), testInput())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result != target {
		t.Error("expected result to be the same as target")
	}

	if result.Name != "test" {
		t.Errorf("expected Name to be 'test', got %q", result.Name)
	}
}

func TestLoad_PassesOptions(t *testing.T) {
	t.Parallel()

	var gotOpts provider.Options

	dispatcher := &mockDispatcher{
		dispatchFunc: func(_ provider.Input, opts provider.Options, _ dispatch.Hint) (provider.Value, error) {
			gotOpts = opts

			return map[string]any{}, nil
		},
	}

	load := LoadWithOptions(&simpleConfig{}, "", provider.Options{AllowMissing: true})

	_, err := load(dispatcher, testInput())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !gotOpts.AllowMissing {
		t.Error("expected options to reach the dispatcher")
	}
}

func TestLoad_WithDefaultsAndValidation_Success(t *testing.T) {
	t.Parallel()

	target := &configWithBoth{changed: true, err: nil}
	load := Load(target, "")

	result, err := load(returning(map[string]any{}, nil), testInput())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result != target {
		t.Error("expected result to be the same as target")
	}
}

func TestLoad_Errors(t *testing.T) {
	t.Parallel()

	dispatchErr := errors.New("dispatch failed")
	validationErr := errors.New("validation failed")

	tests := []struct {
		name      string
		value     provider.Value
		dispatch  error
		path      string
		targetErr error
		wantErr   error
	}{
		{
			name:     "dispatch error",
			dispatch: dispatchErr,
			wantErr:  dispatchErr,
		},
		{
			name:    "path not found",
			value:   map[string]any{"name": "x"},
			path:    "missing:section",
			wantErr: ErrPathNotFound,
		},
		{
			name:      "validation error",
			value:     map[string]any{"name": "x"},
			targetErr: validationErr,
			wantErr:   validationErr,
		},
	}

	for _, testInfo := range tests {
		t.Run(testInfo.name, func(t *testing.T) {
			t.Parallel()

			target := &configWithBoth{err: testInfo.targetErr}
			load := Load(target, testInfo.path)

			result, err := load(returning(testInfo.value, testInfo.dispatch), testInput())

			if result != nil {
				t.Error("expected result to be nil")
			}

			if err == nil {
				t.Fatal("expected error, got nil")
			}

			if !errors.Is(err, testInfo.wantErr) {
				t.Errorf("expected error to wrap %v, got %v", testInfo.wantErr, err)
			}
		})
	}
}

func TestLoad_Defaults(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		changed bool
	}{
		{
			name:    "defaults changed",
			changed: true,
		},
		{
			name:    "defaults not changed",
			changed: false,
		},
	}

	for _, testInfo := range tests {
		t.Run(testInfo.name, func(t *testing.T) {
			t.Parallel()

			target := &configWithDefaults{changed: testInfo.changed}
			load := Load(target, "")

			result, err := load(returning(map[string]any{}, nil), testInput())
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if result != target {
				t.Error("expected result to be the same as target")
			}
		})
	}
}
