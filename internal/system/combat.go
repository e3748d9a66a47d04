// internal/system/combat.go
package system

import (
	"first-person-hopper/internal/component"
	"first-person-hopper/internal/config"
	"first-person-hopper/internal/entity"
	"first-person-hopper/internal/event"
	"first-person-hopper/internal/input"
	"first-person-hopper/internal/physics"
	"first-person-hopper/internal/score"
	"first-person-hopper/internal/utils"

	"github.com/rs/zerolog"
)

// CooldownSystem ticks the weapon's fire-rate timer.
type CooldownSystem struct {
	ecs *entity.ECS
}

func NewCooldownSystem(ecs *entity.ECS) *CooldownSystem {
	return &CooldownSystem{ecs: ecs}
}

func (s *CooldownSystem) Update(deltaTime float64) {
	weapon := component.Weapon.Get(s.ecs.MustSingle(component.Weapon))
	weapon.Cooldown.Tick(deltaTime)
}

// ShootingSystem turns a click into a shot and a shot into a hit.
type ShootingSystem struct {
	ecs             *entity.ECS
	input           input.Source
	rng             utils.RandomSource
	scores          *score.Tracker
	eventDispatcher *event.Dispatcher
	log             zerolog.Logger
}

func NewShootingSystem(ecs *entity.ECS, in input.Source, rng utils.RandomSource, scores *score.Tracker, eventDispatcher *event.Dispatcher, logger zerolog.Logger) *ShootingSystem {
	return &ShootingSystem{
		ecs:             ecs,
		input:           in,
		rng:             rng,
		scores:          scores,
		eventDispatcher: eventDispatcher,
		log:             logger,
	}
}

func (s *ShootingSystem) Update(deltaTime float64) {
	if !s.input.FireJustPressed() {
		return
	}

	weaponEntry := s.ecs.MustSingle(component.Weapon)
	if !component.Weapon.Get(weaponEntry).Cooldown.Fire() {
		return
	}

	reticleEntry := s.ecs.MustSingle(component.Reticle)
	reticle := component.Reticle.Get(reticleEntry)
	ballEntry := s.ecs.MustSingle(component.Ball)
	ball := component.Ball.Get(ballEntry)

	shot := event.ShotData{}
	shot.ReticleX, shot.ReticleY = reticle.Collider.Position()
	if weaponEntry.HasComponent(component.Transform) {
		t := component.Transform.Get(weaponEntry)
		shot.WeaponX, shot.WeaponY = t.X, t.Y
	}
	s.eventDispatcher.Dispatch(event.Event{Type: event.WeaponFired, Data: shot})

	if !reticle.Collider.Overlaps(ball.Collider, physics.TagTarget) {
		return
	}

	ball.Body.ResetVelocity()
	iy := utils.Range(s.rng, config.ImpulseYMin, config.ImpulseYMax)
	ix := utils.Range(s.rng, config.ImpulseXMin, config.ImpulseXMax)
	torque := utils.Range(s.rng, config.TorqueImpulseMin, config.TorqueImpulseMax)
	ball.Body.ApplyImpulse(ix, iy, torque)

	s.scores.RecordHit()
	s.log.Debug().Float64("ix", ix).Float64("iy", iy).Float64("torque", torque).Msg("ball hit")
	s.eventDispatcher.Dispatch(event.Event{Type: event.BallHit, Data: shot})
}
