// internal/system/visual_effect.go
package system

import (
	"first-person-hopper/internal/component"
	"first-person-hopper/internal/config"
	"first-person-hopper/internal/entity"
	"first-person-hopper/internal/event"
	"first-person-hopper/internal/utils"

	"github.com/yohamta/donburi"
)

// AnimationSystem advances sprite-sheet clips and removes one-shot clips
// that have finished, unless a lifetime owns their removal.
type AnimationSystem struct {
	ecs *entity.ECS
}

func NewAnimationSystem(ecs *entity.ECS) *AnimationSystem {
	return &AnimationSystem{ecs: ecs}
}

func (s *AnimationSystem) Update(deltaTime float64) {
	var finished []donburi.Entity
	s.ecs.Each(func(entry *donburi.Entry) {
		anim := component.Animation.Get(entry)
		state := component.AnimationState.Get(entry)
		state.Update(anim, deltaTime)
		component.SpriteSheet.Get(entry).Index = state.FrameIndex(anim)
		if state.Done && !entry.HasComponent(component.Lifetime) {
			finished = append(finished, entry.Entity())
		}
	}, component.Animation, component.AnimationState, component.SpriteSheet)

	for _, e := range finished {
		s.ecs.Despawn(e)
	}
}

// LifetimeSystem removes short-lived effects once their time is up.
type LifetimeSystem struct {
	ecs             *entity.ECS
	eventDispatcher *event.Dispatcher
}

func NewLifetimeSystem(ecs *entity.ECS, eventDispatcher *event.Dispatcher) *LifetimeSystem {
	return &LifetimeSystem{ecs: ecs, eventDispatcher: eventDispatcher}
}

func (s *LifetimeSystem) Update(deltaTime float64) {
	var expired []donburi.Entity
	casings := 0
	s.ecs.Each(func(entry *donburi.Entry) {
		life := component.Lifetime.Get(entry)
		life.Remaining -= deltaTime
		if life.Remaining > 0 {
			return
		}
		expired = append(expired, entry.Entity())
		if entry.HasComponent(component.Casing) {
			casings++
		}
	}, component.Lifetime)

	for _, e := range expired {
		s.ecs.Despawn(e)
	}
	for i := 0; i < casings; i++ {
		s.eventDispatcher.Dispatch(event.Event{Type: event.CasingDropped})
	}
}

// EffectsSystem spawns the muzzle flash, the ejected casing and the
// contact splash in response to shots.
type EffectsSystem struct {
	ecs *entity.ECS
	rng utils.RandomSource
}

func NewEffectsSystem(ecs *entity.ECS, rng utils.RandomSource, eventDispatcher *event.Dispatcher) *EffectsSystem {
	s := &EffectsSystem{ecs: ecs, rng: rng}
	eventDispatcher.Subscribe(event.WeaponFired, s)
	eventDispatcher.Subscribe(event.BallHit, s)
	return s
}

// Detach stops listening. Called when the round is torn down.
func (s *EffectsSystem) Detach(eventDispatcher *event.Dispatcher) {
	eventDispatcher.Unsubscribe(event.WeaponFired, s)
	eventDispatcher.Unsubscribe(event.BallHit, s)
}

func (s *EffectsSystem) OnEvent(e event.Event) {
	shot, ok := e.Data.(event.ShotData)
	if !ok {
		return
	}
	switch e.Type {
	case event.WeaponFired:
		s.spawnMuzzleFlash(shot)
		s.spawnCasing(shot)
	case event.BallHit:
		s.spawnContact(shot)
	}
}

func (s *EffectsSystem) spawnMuzzleFlash(shot event.ShotData) {
	entry := s.ecs.Spawn(component.InGame,
		component.MuzzleFlash,
		component.Transform,
		component.SpriteSheet,
		component.Animation,
		component.AnimationState,
		component.Lifetime,
	)
	component.Transform.SetValue(entry, component.TransformData{
		X: shot.ReticleX + config.MuzzleOffsetX,
		Y: shot.ReticleY + config.MuzzleOffsetY,
		Z: 1,
	})
	component.SpriteSheet.SetValue(entry, component.SpriteSheetData{
		Image:       config.SpriteMuzzle,
		FrameWidth:  config.MuzzleFrameWidth,
		FrameHeight: config.MuzzleFrameHeight,
		Columns:     1,
		Rows:        config.MuzzleFrames,
		Tint:        config.MuzzleTint,
		Glow:        true,
	})
	component.Animation.SetValue(entry, component.AnimationData{
		Frames: component.FrameRange(0, config.MuzzleFrames-1),
		FPS:    config.MuzzleFPS,
		Once:   true,
	})
	component.Lifetime.SetValue(entry, component.LifetimeData{Remaining: config.MuzzleLifetime})
}

func (s *EffectsSystem) spawnCasing(shot event.ShotData) {
	entry := s.ecs.Spawn(component.InGame,
		component.Casing,
		component.Transform,
		component.Velocity,
		component.Sprite,
		component.Lifetime,
	)
	component.Transform.SetValue(entry, component.TransformData{
		X: shot.WeaponX,
		Y: shot.WeaponY + config.CasingOffsetY,
		Z: 2,
	})
	component.Velocity.SetValue(entry, component.VelocityData{
		X:       utils.Range(s.rng, config.CasingSpeedXMin, config.CasingSpeedXMax),
		Y:       config.CasingSpeedY,
		Angular: utils.Range(s.rng, config.CasingSpinMin, config.CasingSpinMax),
	})
	component.Sprite.SetValue(entry, component.SpriteData{Image: config.SpriteCasing, Width: 12, Height: 36})
	component.Lifetime.SetValue(entry, component.LifetimeData{Remaining: config.CasingLifetime})
}

func (s *EffectsSystem) spawnContact(shot event.ShotData) {
	entry := s.ecs.Spawn(component.InGame,
		component.ContactSplash,
		component.Transform,
		component.SpriteSheet,
		component.Animation,
		component.AnimationState,
	)
	component.Transform.SetValue(entry, component.TransformData{X: shot.ReticleX, Y: shot.ReticleY, Z: 3})
	component.SpriteSheet.SetValue(entry, component.SpriteSheetData{
		Image:       config.SpriteContact,
		FrameWidth:  config.ContactFrameSize,
		FrameHeight: config.ContactFrameSize,
		Columns:     config.ContactFrames,
		Rows:        1,
	})
	component.Animation.SetValue(entry, component.AnimationData{
		Frames: component.FrameRange(0, config.ContactFrames-1),
		FPS:    config.ContactFPS,
		Once:   true,
	})
}
