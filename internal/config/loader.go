package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

func loadYAML(path string, out any) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if err := yaml.Unmarshal(b, out); err != nil {
		return fmt.Errorf("parse %s: %w", filepath.Base(path), err)
	}
	return nil
}

// Load reads the unit library and scenario from dir.
func Load(dir string) (*UnitTypesConfig, *ScenarioConfig, error) {
	var uc UnitTypesConfig
	var sc ScenarioConfig
	if err := loadYAML(filepath.Join(dir, "units.yaml"), &uc); err != nil {
		return nil, nil, err
	}
	if err := loadYAML(filepath.Join(dir, "scenario.yaml"), &sc); err != nil {
		return nil, nil, err
	}
	return &uc, &sc, nil
}
