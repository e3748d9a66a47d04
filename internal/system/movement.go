// internal/system/movement.go
package system

import (
	"first-person-hopper/internal/component"
	"first-person-hopper/internal/config"
	"first-person-hopper/internal/entity"
	"first-person-hopper/internal/input"
	"first-person-hopper/internal/physics"
	"first-person-hopper/internal/utils"

	"github.com/yohamta/donburi"
)

// AimSystem puts the reticle under the cursor and the weapon below it.
type AimSystem struct {
	ecs   *entity.ECS
	input input.Source
}

func NewAimSystem(ecs *entity.ECS, in input.Source) *AimSystem {
	return &AimSystem{ecs: ecs, input: in}
}

func (s *AimSystem) Update(deltaTime float64) {
	sx, sy, ok := s.input.CursorPosition()
	if !ok {
		return
	}
	x, y := utils.ScreenToWorld(sx, sy)

	reticleEntry := s.ecs.MustSingle(component.Reticle)
	component.Reticle.Get(reticleEntry).Collider.SetPosition(x, y)
	rt := component.Transform.Get(reticleEntry)
	rt.X, rt.Y = x, y

	wt := component.Transform.Get(s.ecs.MustSingle(component.Weapon))
	wt.X, wt.Y = x+config.WeaponOffsetX, y+config.WeaponOffsetY
}

// PhysicsSystem steps the simulation and copies the ball's body back into
// its transform and collider.
type PhysicsSystem struct {
	ecs   *entity.ECS
	world *physics.World
}

func NewPhysicsSystem(ecs *entity.ECS, world *physics.World) *PhysicsSystem {
	return &PhysicsSystem{ecs: ecs, world: world}
}

func (s *PhysicsSystem) Update(deltaTime float64) {
	s.world.Step(deltaTime)

	s.ecs.Each(func(entry *donburi.Entry) {
		ball := component.Ball.Get(entry)
		t := component.Transform.Get(entry)
		t.X, t.Y = ball.Body.Position()
		t.Rotation = ball.Body.Angle()
		ball.Collider.SetPosition(t.X, t.Y)
	}, component.Ball, component.Transform)
}

// KinematicSystem moves entities that carry their own velocity.
type KinematicSystem struct {
	ecs *entity.ECS
}

func NewKinematicSystem(ecs *entity.ECS) *KinematicSystem {
	return &KinematicSystem{ecs: ecs}
}

func (s *KinematicSystem) Update(deltaTime float64) {
	s.ecs.Each(func(entry *donburi.Entry) {
		v := component.Velocity.Get(entry)
		t := component.Transform.Get(entry)
		t.X += v.X * deltaTime
		t.Y += v.Y * deltaTime
		t.Rotation += v.Angular * deltaTime
	}, component.Velocity, component.Transform)
}
