// Package json provides the built-in JSON format provider.
//
// It uses github.com/valyala/fastjson with a pooled parser. The root of a
// document must be an object; integral numbers are returned as int64 and all
// other numbers as float64. Objects become map[string]any and arrays []any.
//
// Usage:
//
//	reg.Register(json.New())
package json
