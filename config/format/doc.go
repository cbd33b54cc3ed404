// Package format describes config syntaxes by the file extensions and mime
// types they are recognized by.
//
// A Descriptor is immutable once constructed. Extensions are stored lowercase
// without a leading dot and mime types are stored lowercase without parameters,
// so lookups such as ".JSON" or "application/json; charset=utf-8" resolve to the
// same descriptor as "json" and "application/json".
//
// The package ships descriptors for the three built-in syntaxes (Conf, JSON,
// Properties) and for the bundled YAML and TOML plug-ins:
//
//	f := format.MustNew("ini", []string{".ini", "cfg"}, []string{"text/x-ini"})
//	f.Extensions() // ["cfg", "ini"]
//
// Two formats are Equal when their extension sets and mime type sets are equal.
// The name only serves diagnostics.
package format
