package defs

import (
	"os"
	"path/filepath"
	"testing"
)

func TestParseDifficulty(t *testing.T) {
	cases := map[string]Difficulty{"easy": Easy, "MEDIUM": Medium, "Hard": Hard}
	for in, want := range cases {
		got, err := ParseDifficulty(in)
		if err != nil {
			t.Fatalf("ParseDifficulty(%q): %v", in, err)
		}
		if got != want {
			t.Fatalf("ParseDifficulty(%q) = %v, want %v", in, got, want)
		}
	}
	if _, err := ParseDifficulty("nightmare"); err == nil {
		t.Fatal("expected error for unknown tier")
	}
}

func TestDefaultProfiles_MatchTiers(t *testing.T) {
	profiles := DefaultProfiles()
	for _, d := range Difficulties {
		p, ok := profiles[d]
		if !ok {
			t.Fatalf("missing profile for %v", d)
		}
		if p.Difficulty != d {
			t.Fatalf("profile for %v carries difficulty %v", d, p.Difficulty)
		}
		if p.Radius <= 0 || p.Density <= 0 || p.GravityScale <= 0 {
			t.Fatalf("profile for %v has non-positive physics: %+v", d, p)
		}
	}
	if profiles[Hard].Radius >= profiles[Easy].Radius {
		t.Fatal("hard ball should be smaller than easy ball")
	}
}

func TestParseDifficultyDefinitions_Merges(t *testing.T) {
	base := DefaultProfiles()
	data := []byte(`[{"id":"hard","gravity_scale":40},{"id":"easy","sprite":"sprites/beach.png"}]`)

	lib, err := ParseDifficultyDefinitions(data, base)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if lib[Hard].GravityScale != 40 {
		t.Fatalf("hard gravity scale = %v, want 40", lib[Hard].GravityScale)
	}
	if lib[Hard].Radius != base[Hard].Radius {
		t.Fatalf("hard radius should be kept, got %v", lib[Hard].Radius)
	}
	if lib[Easy].Sprite != "sprites/beach.png" {
		t.Fatalf("easy sprite = %q", lib[Easy].Sprite)
	}
	if base[Hard].GravityScale != 24 {
		t.Fatal("base library must not be modified")
	}
}

func TestParseDifficultyDefinitions_ExplicitZero(t *testing.T) {
	base := DefaultProfiles()
	lib, err := ParseDifficultyDefinitions([]byte(`[{"id":"medium","restitution":0,"gravity_scale":0}]`), base)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if lib[Medium].Restitution != 0 {
		t.Fatalf("medium restitution = %v, want 0", lib[Medium].Restitution)
	}
	if lib[Medium].GravityScale != 0 {
		t.Fatalf("medium gravity scale = %v, want 0", lib[Medium].GravityScale)
	}
	if lib[Medium].Radius != base[Medium].Radius || lib[Medium].Density != base[Medium].Density {
		t.Fatalf("absent fields should keep built-ins, got %+v", lib[Medium])
	}
}

func TestParseDifficultyDefinitions_Errors(t *testing.T) {
	cases := map[string]string{
		"syntax":      `[{"id":`,
		"unknown":     `[{"id":"extreme"}]`,
		"negative":    `[{"id":"easy","radius":-1}]`,
		"zero radius": `[{"id":"easy","radius":0}]`,
		"restitution": `[{"id":"hard","restitution":-0.5}]`,
	}
	for name, data := range cases {
		t.Run(name, func(t *testing.T) {
			if _, err := ParseDifficultyDefinitions([]byte(data), DefaultProfiles()); err == nil {
				t.Fatalf("expected error for %s", data)
			}
		})
	}
}

func TestLoadDifficultyDefinitions(t *testing.T) {
	saved := DifficultyLibrary
	t.Cleanup(func() { DifficultyLibrary = saved })

	path := filepath.Join(t.TempDir(), "balls.json")
	if err := os.WriteFile(path, []byte(`[{"id":"medium","density":0.2}]`), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := LoadDifficultyDefinitions(path); err != nil {
		t.Fatalf("load: %v", err)
	}
	if Profile(Medium).Density != 0.2 {
		t.Fatalf("medium density = %v, want 0.2", Profile(Medium).Density)
	}
	if err := LoadDifficultyDefinitions(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Fatal("expected error for a missing file")
	}
}
