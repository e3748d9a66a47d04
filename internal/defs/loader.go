// internal/defs/loader.go
package defs

import (
	"encoding/json"
	"fmt"
	"os"
)

// difficultyOverride is one entry of a difficulty definitions file. Absent
// fields keep the built-in value.
type difficultyOverride struct {
	ID           string   `json:"id"`
	Radius       *float64 `json:"radius"`
	GravityScale *float64 `json:"gravity_scale"`
	Density      *float64 `json:"density"`
	Restitution  *float64 `json:"restitution"`
	Sprite       *string  `json:"sprite"`
}

// LoadDifficultyDefinitions reads a JSON array of ball profiles and merges
// them over the built-in ones in DifficultyLibrary. Fields missing from an
// entry keep their built-in value.
func LoadDifficultyDefinitions(path string) error {
	file, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read difficulty definitions file: %w", err)
	}

	library, err := ParseDifficultyDefinitions(file, DifficultyLibrary)
	if err != nil {
		return err
	}
	DifficultyLibrary = library
	return nil
}

// ParseDifficultyDefinitions merges the JSON profiles in data over base and
// returns the result. base is not modified.
func ParseDifficultyDefinitions(data []byte, base map[Difficulty]DifficultyProfile) (map[Difficulty]DifficultyProfile, error) {
	var profileDefs []difficultyOverride
	if err := json.Unmarshal(data, &profileDefs); err != nil {
		return nil, fmt.Errorf("failed to unmarshal difficulty definitions: %w", err)
	}

	library := make(map[Difficulty]DifficultyProfile, len(base))
	for d, p := range base {
		library[d] = p
	}

	for _, def := range profileDefs {
		d, err := ParseDifficulty(def.ID)
		if err != nil {
			return nil, fmt.Errorf("difficulty definition: %w", err)
		}

		merged := library[d]
		merged.Difficulty = d
		merged.ID = d.String()
		if def.Radius != nil {
			merged.Radius = *def.Radius
		}
		if def.GravityScale != nil {
			merged.GravityScale = *def.GravityScale
		}
		if def.Density != nil {
			merged.Density = *def.Density
		}
		if def.Restitution != nil {
			merged.Restitution = *def.Restitution
		}
		if def.Sprite != nil {
			merged.Sprite = *def.Sprite
		}

		if merged.Radius <= 0 || merged.Density <= 0 {
			return nil, fmt.Errorf("difficulty definition %q: radius and density must be positive", def.ID)
		}
		if merged.Restitution < 0 {
			return nil, fmt.Errorf("difficulty definition %q: negative restitution", def.ID)
		}
		library[d] = merged
	}

	return library, nil
}
