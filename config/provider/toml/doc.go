// Package toml provides a TOML format provider built on github.com/BurntSushi/toml.
//
// Tables become map[string]any, integers int64, floats float64 and date-times
// time.Time. TOML documents always have a table at the root.
package toml
