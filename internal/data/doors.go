package data

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// DoorDef describes a door placement on the map. Facing is the outward
// direction of the doorway; the hinge orientation is derived from it at
// spawn time.
type DoorDef struct {
	Name    string  `yaml:"name"`
	X       float64 `yaml:"x"`
	Y       float64 `yaml:"y"`
	FacingX float64 `yaml:"facing_x"`
	FacingY float64 `yaml:"facing_y"`
}

type doorFile struct {
	Doors []DoorDef `yaml:"doors"`
}

// LoadDoors loads door placements from a YAML file.
func LoadDoors(path string) ([]DoorDef, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read map_doors: %w", err)
	}
	var f doorFile
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("parse map_doors: %w", err)
	}
	return f.Doors, nil
}
