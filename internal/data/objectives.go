package data

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ObjectiveDef describes one attacker objective. Kind selects the
// script handler; Data is passed to the script untouched.
type ObjectiveDef struct {
	ID   string         `yaml:"id"`
	Kind string         `yaml:"kind"`
	X    float64        `yaml:"x"`
	Y    float64        `yaml:"y"`
	Data map[string]any `yaml:"data"`
}

type objectiveFile struct {
	Objectives []ObjectiveDef `yaml:"objectives"`
}

// LoadObjectives loads objective definitions from a YAML file.
func LoadObjectives(path string) ([]ObjectiveDef, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read objectives: %w", err)
	}
	var f objectiveFile
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("parse objectives: %w", err)
	}
	for i, o := range f.Objectives {
		if o.ID == "" {
			return nil, fmt.Errorf("objectives[%d]: missing id", i)
		}
		if o.Kind == "" {
			return nil, fmt.Errorf("objective %s: missing kind", o.ID)
		}
	}
	return f.Objectives, nil
}
