// Package registry keeps the set of registered format providers and resolves
// which of them apply to an input.
//
// Providers are indexed by every extension and mime type they handle. Each
// index list is ordered by priority and, for equal priorities, by registration
// order: the provider registered first wins the tie. Registration order is
// therefore part of the contract.
//
// The intended lifecycle is build-then-freeze: register everything during
// startup, call Seal, then resolve from any number of goroutines.
//
//	reg := registry.New()
//	registry.MustRegister(reg, jsonprovider.New())
//	reg.Seal()
//
//	candidates := reg.ResolveForExtension(".json")
//
// Default returns a process-wide registry for plug-ins that register
// themselves from their own packages.
package registry
