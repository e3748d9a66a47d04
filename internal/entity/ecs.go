// internal/entity/ecs.go
package entity

import (
	"fmt"

	"first-person-hopper/internal/component"

	"github.com/rs/zerolog"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/filter"
)

// ECS wraps the donburi world with screen ownership: every entity is
// spawned under a screen and removed in bulk when that screen exits.
type ECS struct {
	World donburi.World
	log   zerolog.Logger
}

func NewECS(logger zerolog.Logger) *ECS {
	return &ECS{
		World: donburi.NewWorld(),
		log:   logger,
	}
}

// Spawn creates an entity owned by screen with the given components.
func (ecs *ECS) Spawn(screen component.Screen, components ...donburi.IComponentType) *donburi.Entry {
	all := make([]donburi.IComponentType, 0, len(components)+1)
	all = append(all, component.ScreenTag(screen))
	all = append(all, components...)
	return ecs.World.Entry(ecs.World.Create(all...))
}

// SpawnChild creates an entity under parent, owned by the same screen.
func (ecs *ECS) SpawnChild(parent *donburi.Entry, components ...donburi.IComponentType) *donburi.Entry {
	screen, ok := ScreenOf(parent)
	if !ok {
		panic("entity: child spawned under an entity with no screen")
	}
	child := ecs.Spawn(screen, append(components, component.Parent)...)
	component.Parent.SetValue(child, component.ParentData{Entity: parent.Entity()})
	return child
}

// ScreenOf returns the screen that owns entry.
func ScreenOf(entry *donburi.Entry) (component.Screen, bool) {
	for _, s := range component.Screens {
		if entry.HasComponent(component.ScreenTag(s)) {
			return s, true
		}
	}
	return 0, false
}

// DespawnScreen removes every entity owned by screen, and any entity
// parented to one of them, and returns how many were removed.
func (ecs *ECS) DespawnScreen(screen component.Screen) int {
	removed := 0
	for _, e := range ecs.Collect(component.ScreenTag(screen)) {
		removed += ecs.despawnRecursive(e)
	}

	ecs.log.Info().Str("screen", screen.String()).Int("count", removed).Msg("despawned screen entities")
	return removed
}

// Despawn removes e and its descendants.
func (ecs *ECS) Despawn(e donburi.Entity) int {
	return ecs.despawnRecursive(e)
}

func (ecs *ECS) despawnRecursive(e donburi.Entity) int {
	if !ecs.World.Valid(e) {
		return 0
	}

	var children []donburi.Entity
	donburi.NewQuery(filter.Contains(component.Parent)).Each(ecs.World, func(entry *donburi.Entry) {
		if component.Parent.Get(entry).Entity == e {
			children = append(children, entry.Entity())
		}
	})

	ecs.World.Remove(e)
	removed := 1
	for _, child := range children {
		removed += ecs.despawnRecursive(child)
	}
	return removed
}

// CountScreen returns how many entities screen owns.
func (ecs *ECS) CountScreen(screen component.Screen) int {
	return donburi.NewQuery(filter.Contains(component.ScreenTag(screen))).Count(ecs.World)
}

// Count returns how many entities carry every one of components.
func (ecs *ECS) Count(components ...donburi.IComponentType) int {
	return donburi.NewQuery(filter.Contains(components...)).Count(ecs.World)
}

// MustSingle returns the only entity carrying every one of components.
// Screen setup creates these exactly once, so any other count is a bug and
// panics.
func (ecs *ECS) MustSingle(components ...donburi.IComponentType) *donburi.Entry {
	var found *donburi.Entry
	count := 0
	donburi.NewQuery(filter.Contains(components...)).Each(ecs.World, func(entry *donburi.Entry) {
		count++
		found = entry
	})
	if count != 1 {
		ecs.log.Error().Int("count", count).Msg("expected exactly one entity")
		panic(fmt.Sprintf("entity: expected exactly one entity, found %d", count))
	}
	return found
}

// Each visits every entity carrying every one of components. The visit
// order is unspecified; callers must not spawn or despawn while visiting.
func (ecs *ECS) Each(fn func(*donburi.Entry), components ...donburi.IComponentType) {
	donburi.NewQuery(filter.Contains(components...)).Each(ecs.World, fn)
}

// Collect returns the entities carrying every one of components, safe to
// despawn afterwards.
func (ecs *ECS) Collect(components ...donburi.IComponentType) []donburi.Entity {
	var out []donburi.Entity
	ecs.Each(func(entry *donburi.Entry) {
		out = append(out, entry.Entity())
	}, components...)
	return out
}
