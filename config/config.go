package config

import (
	"fmt"
	"log/slog"

	"github.com/0xalexb/hjarta-formats/config/dispatch"
	"github.com/0xalexb/hjarta-formats/config/provider"
)

// Dispatcher parses an input with whichever provider accepts it.
// *dispatch.Dispatcher implements it.
type Dispatcher interface {
	Dispatch(in provider.Input, opts provider.Options, hint dispatch.Hint) (provider.Value, error)
}

// Validator defines an interface for validating configuration structures.
type Validator interface {
	Validate() error
}

// Defaulter defines an interface for setting default values in configuration structures.
type Defaulter interface {
	SetDefaults() (changed bool)
}

// Load returns a function that parses an input, decodes the section at path
// into target, sets defaults and validates it.
func Load[T any](target *T, path string) func(Dispatcher, provider.Input) (*T, error) {
	return LoadWithOptions(target, path, provider.Options{})
}

// LoadWithOptions is Load with explicit parse options, e.g. to force a syntax
// or to accept a missing input.
func LoadWithOptions[T any](target *T, path string, opts provider.Options) func(Dispatcher, provider.Input) (*T, error) {
	return func(dispatcher Dispatcher, in provider.Input) (*T, error) {
		value, err := dispatcher.Dispatch(in, opts, dispatch.Hint{Syntax: nil, Extension: "", MimeType: ""})
		if err != nil {
			return nil, fmt.Errorf("parsing error: %w", err)
		}

		err = Decode(value, target, path)
		if err != nil {
			return nil, fmt.Errorf("decoding error: %w", err)
		}

		targetDefaulter, isDefaulter := any(target).(Defaulter)
		if isDefaulter {
			changed := targetDefaulter.SetDefaults()
			if changed {
				slog.Info("defaults applied", slog.String("path", path), slog.String("origin", in.Origin().String()))
			}
		}

		targetValidatable, isValidatable := any(target).(Validator)
		if isValidatable {
			err := targetValidatable.Validate()
			if err != nil {
				return nil, fmt.Errorf("validating error: %w", err)
			}
		}

		return target, nil
	}
}
