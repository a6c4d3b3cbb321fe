package utils

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// LoadTOMLFile decodes a TOML file into v, leaving fields it doesn't set untouched.
func LoadTOMLFile(path string, v any) error {
	if _, err := toml.DecodeFile(path, v); err != nil {
		return fmt.Errorf("failed to decode %s: %w", path, err)
	}
	return nil
}

// ParseTOMLWithRecovery decodes a TOML file into a generic map so that
// well-formed sections can still be used when strict decoding fails
// on mistyped values.
func ParseTOMLWithRecovery(path string) (map[string]any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	raw := make(map[string]any)
	if _, err := toml.Decode(string(data), &raw); err != nil {
		return nil, err
	}
	return raw, nil
}

// ExtractSection returns a table from parsed TOML data.
func ExtractSection(data map[string]any, name string) (map[string]any, bool) {
	section, ok := data[name].(map[string]any)
	return section, ok
}

// ExtractInt returns an integer value; TOML integers decode as int64.
func ExtractInt(data map[string]any, key string) (int, bool) {
	v, ok := data[key].(int64)
	return int(v), ok
}

// ExtractBool returns a bool value.
func ExtractBool(data map[string]any, key string) (bool, bool) {
	v, ok := data[key].(bool)
	return v, ok
}

// ExtractString returns a string value.
func ExtractString(data map[string]any, key string) (string, bool) {
	v, ok := data[key].(string)
	return v, ok
}
