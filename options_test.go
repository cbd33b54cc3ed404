package formats_test

import (
	"testing"

	formats "github.com/0xalexb/hjarta-formats"
	jsonprovider "github.com/0xalexb/hjarta-formats/config/provider/json"

	"github.com/stretchr/testify/require"
	"go.uber.org/fx"
)

func TestOptions(t *testing.T) {
	t.Parallel()

	json := jsonprovider.New()
	module := fx.Module("extra")

	testCases := []struct {
		name  string
		opts  []formats.Option
		check func(t *testing.T, opts formats.Options)
	}{
		{
			name: "zero value",
			opts: nil,
			check: func(t *testing.T, opts formats.Options) {
				t.Helper()
				require.Empty(t, opts.LogLevel)
				require.Empty(t, opts.LogFormat)
				require.Empty(t, opts.Providers)
				require.Empty(t, opts.Modules)
				require.False(t, opts.DisableBundled)
			},
		},
		{
			name: "logging",
			opts: []formats.Option{formats.WithLogLevel("warn"), formats.WithLogFormat("text")},
			check: func(t *testing.T, opts formats.Options) {
				t.Helper()
				require.Equal(t, "warn", opts.LogLevel)
				require.Equal(t, "text", opts.LogFormat)
			},
		},
		{
			name: "last log level wins",
			opts: []formats.Option{formats.WithLogLevel("debug"), formats.WithLogLevel("error")},
			check: func(t *testing.T, opts formats.Options) {
				t.Helper()
				require.Equal(t, "error", opts.LogLevel)
			},
		},
		{
			name: "providers keep call order",
			opts: []formats.Option{formats.WithProviders(json), formats.WithProviders(jsonprovider.New(), json)},
			check: func(t *testing.T, opts formats.Options) {
				t.Helper()
				require.Len(t, opts.Providers, 3)
				require.Same(t, json, opts.Providers[0])
				require.Same(t, json, opts.Providers[2])
			},
		},
		{
			name: "modules accumulate",
			opts: []formats.Option{formats.WithModules(module), formats.WithModules(module, formats.AsProvider(jsonprovider.New))},
			check: func(t *testing.T, opts formats.Options) {
				t.Helper()
				require.Len(t, opts.Modules, 3)
			},
		},
		{
			name: "without bundled providers",
			opts: []formats.Option{formats.WithoutBundledProviders()},
			check: func(t *testing.T, opts formats.Options) {
				t.Helper()
				require.True(t, opts.DisableBundled)
			},
		},
	}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			var opts formats.Options

			for _, apply := range testCase.opts {
				apply(&opts)
			}

			testCase.check(t, opts)
		})
	}
}
