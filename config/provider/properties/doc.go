// Package properties provides the built-in Java properties format provider.
//
// Parsing is done by github.com/magiconair/properties with ${} expansion
// disabled. Dotted keys are expanded into nested objects, so
//
//	server.host=localhost
//	server.port=8080
//
// becomes {"server": {"host": "localhost", "port": "8080"}}. All values stay
// strings. When a key is both a value and the parent of other keys, as in
// "a=1" next to "a.b=2", the object wins and the value is dropped.
//
// Properties files have no include directive; the include context is ignored.
package properties
