// internal/defs/difficulty.go
package defs

import (
	"fmt"
	"image/color"
	"strings"
)

// Difficulty selects the ball a round is played with and the best-score
// bucket the round is committed to.
type Difficulty int

const (
	Easy Difficulty = iota
	Medium
	Hard
)

// Difficulties lists every tier in menu order.
var Difficulties = []Difficulty{Easy, Medium, Hard}

// DefaultDifficulty is used when no tier has been chosen yet.
const DefaultDifficulty = Medium

func (d Difficulty) String() string {
	switch d {
	case Easy:
		return "easy"
	case Medium:
		return "medium"
	case Hard:
		return "hard"
	}
	return fmt.Sprintf("difficulty(%d)", int(d))
}

// Label is the upper-case name shown on menu buttons.
func (d Difficulty) Label() string {
	return strings.ToUpper(d.String())
}

// Valid reports whether d is one of the known tiers.
func (d Difficulty) Valid() bool {
	return d >= Easy && d <= Hard
}

// ParseDifficulty accepts the lower- or upper-case tier name.
func ParseDifficulty(s string) (Difficulty, error) {
	for _, d := range Difficulties {
		if strings.EqualFold(s, d.String()) {
			return d, nil
		}
	}
	return 0, fmt.Errorf("unknown difficulty %q", s)
}

// DifficultyProfile fixes the physical behaviour of the ball for a round.
type DifficultyProfile struct {
	Difficulty   Difficulty `json:"-"`
	ID           string     `json:"id"`
	Radius       float64    `json:"radius"`
	GravityScale float64    `json:"gravity_scale"`
	Density      float64    `json:"density"`
	Restitution  float64    `json:"restitution"`
	Sprite       string     `json:"sprite"`
	LabelColor   color.RGBA `json:"-"`
}

// DifficultyLibrary maps every tier to its profile. LoadDifficultyDefinitions
// replaces entries from a JSON file.
var DifficultyLibrary = DefaultProfiles()

// DefaultProfiles returns the built-in ball profiles.
func DefaultProfiles() map[Difficulty]DifficultyProfile {
	return map[Difficulty]DifficultyProfile{
		Easy: {
			Difficulty:   Easy,
			ID:           "easy",
			Radius:       50,
			GravityScale: 17,
			Density:      0.1,
			Restitution:  1,
			Sprite:       "sprites/easy_ball.png",
			LabelColor:   color.RGBA{48, 194, 105, 255},
		},
		Medium: {
			Difficulty:   Medium,
			ID:           "medium",
			Radius:       50,
			GravityScale: 30,
			Density:      0.1,
			Restitution:  1,
			Sprite:       "sprites/medium_ball.png",
			LabelColor:   color.RGBA{230, 170, 40, 255},
		},
		Hard: {
			Difficulty:   Hard,
			ID:           "hard",
			Radius:       25,
			GravityScale: 24,
			Density:      0.4,
			Restitution:  1,
			Sprite:       "sprites/hard_ball.png",
			LabelColor:   color.RGBA{220, 60, 60, 255},
		},
	}
}

// Profile returns the profile for d, falling back to the default tier.
func Profile(d Difficulty) DifficultyProfile {
	if p, ok := DifficultyLibrary[d]; ok {
		return p
	}
	return DifficultyLibrary[DefaultDifficulty]
}
