// Package formats wires the config-format provider registry and its
// dispatcher into an Fx application.
//
// Providers reach the registry three ways: WithProviders, the
// config_providers value group (see AsProvider) and BundledProviders, which
// are added unless WithoutBundledProviders is given. The registry is sealed
// once built, so parsing never races with registration.
package formats
