// internal/physics/world.go
package physics

import (
	"math"

	"github.com/jakecoffman/cp"
)

// World owns the rigid-body simulation for one round. A new World is built
// every time a round starts; nothing is carried over.
type World struct {
	space  *cp.Space
	bodies []*Body
}

// NewWorld creates an empty simulation with the given downward
// acceleration (negative is down).
func NewWorld(gravity float64) *World {
	space := cp.NewSpace()
	space.SetGravity(cp.Vector{X: 0, Y: gravity})
	return &World{space: space}
}

// BallSpec describes a dynamic circular body.
type BallSpec struct {
	X, Y         float64
	Radius       float64
	Density      float64
	GravityScale float64
	Restitution  float64
	Friction     float64
	Asleep       bool // hangs in place until the first impulse
}

// Body is a dynamic body in the world.
type Body struct {
	body         *cp.Body
	shape        *cp.Shape
	gravityScale float64
	asleep       bool
}

// AddBall adds a dynamic circle. Mass is density times area.
func (w *World) AddBall(spec BallSpec) *Body {
	mass := spec.Density * math.Pi * spec.Radius * spec.Radius
	moment := cp.MomentForCircle(mass, 0, spec.Radius, cp.Vector{})

	b := &Body{
		body:         cp.NewBody(mass, moment),
		gravityScale: spec.GravityScale,
		asleep:       spec.Asleep,
	}
	b.body.SetPosition(cp.Vector{X: spec.X, Y: spec.Y})
	b.body.SetVelocityUpdateFunc(func(body *cp.Body, gravity cp.Vector, damping, dt float64) {
		if b.asleep {
			return
		}
		cp.BodyUpdateVelocity(body, gravity.Mult(b.gravityScale), damping, dt)
	})
	w.space.AddBody(b.body)

	b.shape = cp.NewCircle(b.body, spec.Radius, cp.Vector{})
	b.shape.SetElasticity(spec.Restitution)
	b.shape.SetFriction(spec.Friction)
	w.space.AddShape(b.shape)

	w.bodies = append(w.bodies, b)
	return b
}

// AddWall adds a static axis-aligned box centred on (cx, cy).
func (w *World) AddWall(cx, cy, halfWidth, halfHeight, elasticity, friction float64) {
	box := cp.BB{L: cx - halfWidth, B: cy - halfHeight, R: cx + halfWidth, T: cy + halfHeight}
	shape := cp.NewBox2(w.space.StaticBody, box, 0)
	shape.SetElasticity(elasticity)
	shape.SetFriction(friction)
	w.space.AddShape(shape)
}

// Step advances the simulation. Non-positive steps are ignored.
func (w *World) Step(dt float64) {
	if dt <= 0 {
		return
	}
	w.space.Step(dt)
}

// Remove takes b out of the simulation.
func (w *World) Remove(b *Body) {
	for i, other := range w.bodies {
		if other == b {
			w.bodies = append(w.bodies[:i:i], w.bodies[i+1:]...)
			w.space.RemoveShape(b.shape)
			w.space.RemoveBody(b.body)
			return
		}
	}
}

// BodyCount reports how many dynamic bodies are simulated.
func (w *World) BodyCount() int { return len(w.bodies) }

func (b *Body) Position() (float64, float64) {
	p := b.body.Position()
	return p.X, p.Y
}

func (b *Body) Angle() float64 { return b.body.Angle() }

func (b *Body) Velocity() (float64, float64) {
	v := b.body.Velocity()
	return v.X, v.Y
}

func (b *Body) AngularVelocity() float64 { return b.body.AngularVelocity() }

func (b *Body) Mass() float64 { return b.body.Mass() }

func (b *Body) Asleep() bool { return b.asleep }

// ResetVelocity zeroes linear and angular velocity.
func (b *Body) ResetVelocity() {
	b.body.SetVelocity(0, 0)
	b.body.SetAngularVelocity(0)
}

// ApplyImpulse wakes the body and applies a linear impulse through its
// centre plus an angular impulse.
func (b *Body) ApplyImpulse(ix, iy, torque float64) {
	b.asleep = false
	b.body.ApplyImpulseAtLocalPoint(cp.Vector{X: ix, Y: iy}, cp.Vector{})
	if moment := b.body.Moment(); moment > 0 && !math.IsInf(moment, 1) {
		b.body.SetAngularVelocity(b.body.AngularVelocity() + torque/moment)
	}
}
