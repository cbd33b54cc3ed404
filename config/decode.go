package config

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	"github.com/0xalexb/hjarta-formats/config/provider"

	"github.com/goccy/go-yaml"
)

// ErrPathNotFound is returned when the specified path is not found in the parsed value.
var ErrPathNotFound = errors.New("path not found")

// Decode copies the section of value at path into target.
//
// The path uses colon (:) as the separator for nested keys; an empty path
// decodes the whole value. Struct fields are matched by their yaml tags, the
// same way whichever format the value was parsed from.
func Decode(value provider.Value, target any, path string) error {
	data, err := yaml.Marshal(value)
	if err != nil {
		return fmt.Errorf("marshal error: %w", err)
	}

	if path == "" {
		err := yaml.Unmarshal(data, target)
		if err != nil {
			return fmt.Errorf("unmarshal error: %w", err)
		}

		return nil
	}

	yamlPath := convertToYAMLPath(path)

	pathObj, err := yaml.PathString(yamlPath)
	if err != nil {
		return fmt.Errorf("invalid path %q: %w", path, err)
	}

	err = pathObj.Read(bytes.NewReader(data), target)
	if err != nil {
		if yaml.IsNotFoundNodeError(err) {
			return fmt.Errorf("%w: %s", ErrPathNotFound, path)
		}

		return fmt.Errorf("reading path %q: %w", path, err)
	}

	return nil
}

// convertToYAMLPath converts a colon-separated path to goccy/go-yaml PathString format.
// Examples:
//   - "key" -> "$.key"
//   - "api:permissions" -> "$.api.permissions"
func convertToYAMLPath(path string) string {
	parts := strings.Split(path, ":")

	return "$." + strings.Join(parts, ".")
}
