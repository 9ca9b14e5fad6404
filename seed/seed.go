// Package seed provides the mock dataset the dashboard store is populated from.
package seed

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"smartstock/models"
)

// Dataset is everything the store needs at initialisation.
type Dataset struct {
	SKUs            []models.SKU            `yaml:"skus" validate:"dive"`
	Recommendations []models.Recommendation `yaml:"recommendations" validate:"dive"`
	Events          []models.Event          `yaml:"events" validate:"dive"`
	StoreMetrics    models.StoreMetrics     `yaml:"storeMetrics"`
	WeatherImpact   models.WeatherImpact    `yaml:"weatherImpact"`
	UserProfile     models.UserProfile      `yaml:"userProfile"`
	Bundles         []models.Bundle         `yaml:"bundles" validate:"dive"`
	KPITiles        []models.KPITile        `yaml:"kpiTiles" validate:"dive"`
	DemandBubbles   []models.DemandBubble   `yaml:"demandBubbles"`
}

var validate = validator.New()

// Validate checks the structural constraints of every record in d.
func Validate(d *Dataset) error {
	if err := validate.Struct(d); err != nil {
		return fmt.Errorf("invalid seed dataset: %w", err)
	}
	seen := make(map[string]struct{}, len(d.Recommendations))
	for _, r := range d.Recommendations {
		if _, dup := seen[r.ID]; dup {
			return fmt.Errorf("invalid seed dataset: duplicate recommendation id %q", r.ID)
		}
		seen[r.ID] = struct{}{}
	}
	return nil
}

// LoadFile reads a YAML dataset from path and validates it.
func LoadFile(path string) (*Dataset, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read seed file: %w", err)
	}
	return Parse(raw)
}

// Parse decodes a YAML dataset and validates it.
func Parse(raw []byte) (*Dataset, error) {
	var d Dataset
	if err := yaml.Unmarshal(raw, &d); err != nil {
		return nil, fmt.Errorf("failed to decode seed file: %w", err)
	}
	if err := Validate(&d); err != nil {
		return nil, err
	}
	return &d, nil
}

// Marshal encodes d as YAML, the format LoadFile accepts.
func Marshal(d *Dataset) ([]byte, error) {
	out, err := yaml.Marshal(d)
	if err != nil {
		return nil, fmt.Errorf("failed to encode seed dataset: %w", err)
	}
	return out, nil
}

// Load returns the dataset at path, or the built-in mock data when path is empty.
func Load(path string) (*Dataset, error) {
	if path == "" {
		return Default(), nil
	}
	return LoadFile(path)
}
