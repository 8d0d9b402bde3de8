package data

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// SpawnPoint is one respawn location for a team.
type SpawnPoint struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

type teamSpawns struct {
	Team   string       `yaml:"team"`
	Points []SpawnPoint `yaml:"points"`
}

type spawnFile struct {
	Spawns []teamSpawns `yaml:"spawns"`
}

// LoadSpawnPoints loads per-team spawn lists from a YAML file,
// indexed by team id.
func LoadSpawnPoints(path string) (map[string][]SpawnPoint, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read spawn_points: %w", err)
	}
	var f spawnFile
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("parse spawn_points: %w", err)
	}
	out := make(map[string][]SpawnPoint, len(f.Spawns))
	for _, ts := range f.Spawns {
		if ts.Team == "" {
			return nil, fmt.Errorf("spawn_points: entry with empty team")
		}
		if len(ts.Points) == 0 {
			return nil, fmt.Errorf("spawn_points: team %s has no points", ts.Team)
		}
		out[ts.Team] = ts.Points
	}
	return out, nil
}
