package config

import (
	"fmt"
	"os"

	"github.com/akyairhashvil/calpick/internal/models"
	"gopkg.in/yaml.v3"
)

// LoadOptionsFile reads calendar options from a YAML file.
func LoadOptionsFile(path string) (models.Options, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return models.Options{}, fmt.Errorf("read options %s: %w", path, err)
	}
	return ParseOptions(data)
}

// ParseOptions decodes YAML calendar options.
func ParseOptions(data []byte) (models.Options, error) {
	var opts models.Options
	if err := yaml.Unmarshal(data, &opts); err != nil {
		return models.Options{}, fmt.Errorf("parse options: %w", err)
	}
	return opts, nil
}
