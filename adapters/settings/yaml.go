package settings

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// NewYAMLSource parses a flat YAML mapping of setting keys
func NewYAMLSource(data []byte) (*MapSource, error) {
	values := map[string]interface{}{}
	if err := yaml.Unmarshal(data, &values); err != nil {
		return nil, fmt.Errorf("parse settings yaml: %w", err)
	}
	return NewMapSource(values), nil
}

// LoadYAMLFile reads settings from a YAML file
func LoadYAMLFile(path string) (*MapSource, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read settings file %s: %w", path, err)
	}
	return NewYAMLSource(data)
}
