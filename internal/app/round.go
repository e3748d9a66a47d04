// internal/app/round.go
package app

import (
	"first-person-hopper/internal/component"
	"first-person-hopper/internal/config"
	"first-person-hopper/internal/defs"
	"first-person-hopper/internal/event"
	"first-person-hopper/internal/physics"
	"first-person-hopper/internal/system"

	"github.com/yohamta/donburi"
)

// Round is one life of the ball: its physics world, its collision space and
// the systems that drive it, in frame order.
type Round struct {
	Difficulty defs.Difficulty
	World      *physics.World
	Colliders  *physics.Colliders
	Ball       *donburi.Entry

	ball    component.BallData
	reticle *physics.Collider
	systems system.Pipeline
	effects *system.EffectsSystem
	events  *event.Dispatcher
}

// StartRound resets the running score, spawns the in-game entities for the
// current difficulty and returns the round that updates them. When the
// round ends the game moves to the game over screen.
func (g *Game) StartRound() *Round {
	g.Scores.ResetRound()

	r := &Round{
		Difficulty: g.Difficulty,
		World:      physics.NewWorld(config.Gravity),
		Colliders:  physics.NewColliders(),
		events:     g.EventDispatcher,
	}

	g.spawnEndGameTimer()
	g.spawnWeapon()
	r.reticle = g.spawnReticle(r.Colliders)
	g.spawnWalls(r.World)
	r.Ball = g.spawnBall(r.World, r.Colliders, g.Profile(g.Difficulty))
	r.ball = *component.Ball.Get(r.Ball)
	g.spawnScoreText()

	r.effects = system.NewEffectsSystem(g.ECS, g.Rng, g.EventDispatcher)
	r.systems = system.Pipeline{
		system.NewAimSystem(g.ECS, g.Input),
		system.NewCooldownSystem(g.ECS),
		system.NewShootingSystem(g.ECS, g.Input, g.Rng, g.Scores, g.EventDispatcher, g.Logger("shooting")),
		system.NewPhysicsSystem(g.ECS, r.World),
		system.NewKinematicSystem(g.ECS),
		system.NewEndGameSystem(g.ECS, g.Scores, g.Difficulty, g.Cursor, g.EventDispatcher,
			func() { g.goTo(component.GameOver) }, g.Logger("endgame")),
		system.NewAnimationSystem(g.ECS),
		system.NewLifetimeSystem(g.ECS, g.EventDispatcher),
		system.NewHUDSystem(g.ECS, g.Scores),
	}

	g.log.Info().
		Str("difficulty", g.Difficulty.String()).
		Int("entities", g.ECS.CountScreen(component.InGame)).
		Msg("round started")
	return r
}

func (r *Round) Update(deltaTime float64) {
	r.systems.Update(deltaTime)
}

// Close stops the round listening for shots and takes the ball and reticle
// out of the simulation. Their entities are removed with the in-game screen.
func (r *Round) Close() {
	r.effects.Detach(r.events)
	r.World.Remove(r.ball.Body)
	r.Colliders.Remove(r.ball.Collider)
	r.Colliders.Remove(r.reticle)
}
