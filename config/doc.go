// Package config loads typed configuration through the format provider registry.
//
// The package ties together the pieces below it:
//   - format: descriptors of config syntaxes
//   - provider: the plug-in contract every format parser implements
//   - registry: registered providers, ordered by priority
//   - dispatch: the fallback chain that picks the provider for an input
//   - input: files, fs.FS entries and in-memory data to parse
//
// and adds two extension points for the target structure:
//   - Defaulter: applies default values before validation
//   - Validator: validates config after decoding
//
// # Path Navigation
//
// Load accepts a path that targets a section of the parsed value. Paths use
// colon (:) as the separator:
//
//	"api:permissions"           -> config["api"]["permissions"]
//	"database:connection"       -> config["database"]["connection"]
//	""                          -> entire document
//
// Decoding goes through goccy/go-yaml, so target fields use yaml tags no
// matter which format the input was written in.
//
// # Example
//
//	type APIConfig struct {
//	    Timeout int    `yaml:"timeout"`
//	    BaseURL string `yaml:"base_url"`
//	}
//
//	load := config.Load(&APIConfig{}, "services:api")
//	cfg, err := load(dispatcher, input.NewFile("config.json"))
package config
