// Package yaml provides a YAML format provider.
//
// This package uses github.com/goccy/go-yaml for parsing. YAML is not one of
// the built-in syntaxes, so the provider sits in the custom priority tier
// unless constructed with WithPriority.
//
// Usage:
//
//	reg.Register(yaml.New())
//	reg.Register(yaml.New(yaml.WithPriority(provider.PriorityConf - 1)))
//
// Conversion:
//   - Empty or comment-only document -> empty object
//   - Mapping root -> map[string]any, nested mappings alike
//   - Any other root -> syntax failure
//   - Integers -> int64 where they fit, floats -> float64
package yaml
