package registry

import (
	"github.com/0xalexb/hjarta-formats/config/provider"
)

//nolint:gochecknoglobals // process-wide plug-in registry
var defaultRegistry = New()

// Default returns the process-wide registry.
func Default() *Registry {
	return defaultRegistry
}

// Register adds p to the process-wide registry.
func Register(p provider.Provider) error {
	return defaultRegistry.Register(p)
}
