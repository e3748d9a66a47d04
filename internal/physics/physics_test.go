package physics

import (
	"math"
	"testing"
)

const frame = 1.0 / 60

func newBall(w *World, asleep bool) *Body {
	return w.AddBall(BallSpec{
		Radius:       50,
		Density:      0.1,
		GravityScale: 17,
		Restitution:  1,
		Asleep:       asleep,
	})
}

func TestAsleepBallHangs(t *testing.T) {
	w := NewWorld(-9.81)
	b := newBall(w, true)
	for i := 0; i < 120; i++ {
		w.Step(frame)
	}
	x, y := b.Position()
	if x != 0 || y != 0 {
		t.Fatalf("asleep ball moved to (%v, %v)", x, y)
	}
}

func TestAwakeBallFalls(t *testing.T) {
	w := NewWorld(-9.81)
	b := newBall(w, false)
	for i := 0; i < 60; i++ {
		w.Step(frame)
	}
	_, y := b.Position()
	// About half of 9.81*17 after one second.
	if y > -60 || y < -100 {
		t.Fatalf("expected the ball near y=-83 after 1s, got %v", y)
	}
}

func TestMassFromDensity(t *testing.T) {
	w := NewWorld(-9.81)
	b := newBall(w, true)
	want := 0.1 * math.Pi * 50 * 50
	if math.Abs(b.Mass()-want) > 1e-6 {
		t.Fatalf("mass = %v, want %v", b.Mass(), want)
	}
}

func TestImpulseWakesAndResetZeroes(t *testing.T) {
	w := NewWorld(-9.81)
	b := newBall(w, true)

	b.ApplyImpulse(0, 700000, 5000000)
	if b.Asleep() {
		t.Fatal("impulse should wake the ball")
	}
	_, vy := b.Velocity()
	if want := 700000 / b.Mass(); math.Abs(vy-want) > 1e-6 {
		t.Fatalf("vy = %v, want %v", vy, want)
	}
	if b.AngularVelocity() <= 0 {
		t.Fatalf("positive torque should spin the ball, got %v", b.AngularVelocity())
	}

	b.ResetVelocity()
	vx, vy := b.Velocity()
	if vx != 0 || vy != 0 || b.AngularVelocity() != 0 {
		t.Fatalf("reset left (%v, %v, %v)", vx, vy, b.AngularVelocity())
	}
}

func TestZeroStepIsIgnored(t *testing.T) {
	w := NewWorld(-9.81)
	b := newBall(w, false)
	b.ApplyImpulse(0, 100000, 0)
	w.Step(0)
	w.Step(-1)
	if _, y := b.Position(); y != 0 {
		t.Fatalf("zero step moved the ball to y=%v", y)
	}
}

func TestWallBouncesBall(t *testing.T) {
	w := NewWorld(0)
	w.AddWall(640, 0, 100, 860, 0.5, 0)
	b := newBall(w, false)
	b.ApplyImpulse(400*b.Mass(), 0, 0)
	for i := 0; i < 180; i++ {
		w.Step(frame)
	}
	x, _ := b.Position()
	if x > 540 {
		t.Fatalf("ball passed through the wall, x=%v", x)
	}
	if vx, _ := b.Velocity(); vx >= 0 {
		t.Fatalf("ball should travel back after the bounce, vx=%v", vx)
	}
}

func TestRemove(t *testing.T) {
	w := NewWorld(-9.81)
	a := newBall(w, true)
	newBall(w, true)
	w.Remove(a)
	w.Remove(a)
	if w.BodyCount() != 1 {
		t.Fatalf("body count = %d, want 1", w.BodyCount())
	}
}

func TestOverlaps(t *testing.T) {
	c := NewColliders()
	ball := c.AddCircle(0, 0, 50, TagTarget)
	reticle := c.AddCircle(200, 200, 5, TagReticle)

	if reticle.Overlaps(ball, TagTarget) {
		t.Fatal("distant reticle should not overlap")
	}

	reticle.SetPosition(30, -20)
	if !reticle.Overlaps(ball, TagTarget) {
		t.Fatal("reticle inside the ball should overlap")
	}

	ball.SetPosition(-300, 100)
	if x, y := ball.Position(); x != -300 || y != 100 {
		t.Fatalf("ball collider at (%v, %v)", x, y)
	}
	if reticle.Overlaps(ball, TagTarget) {
		t.Fatal("overlap should follow the moved ball")
	}

	reticle.SetPosition(-300, 148)
	if !reticle.Overlaps(ball, TagTarget) {
		t.Fatal("crossing edges should overlap")
	}

	c.Remove(ball)
	if reticle.Overlaps(ball, TagTarget) {
		t.Fatal("removed collider should not overlap")
	}
}

func TestOverlaps_ReticleStraddlingEdge(t *testing.T) {
	cases := []struct {
		name   string
		dx, dy float64
	}{
		{"above", 0, 48},
		{"below", 0, -52},
		{"left", -50, 0},
		{"diagonal", 35, 35},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			cs := NewColliders()
			ball := cs.AddCircle(0, 0, 50, TagTarget)
			reticle := cs.AddCircle(c.dx, c.dy, 5, TagReticle)
			if !reticle.Overlaps(ball, TagTarget) {
				t.Fatalf("reticle at (%v, %v) should touch the ball", c.dx, c.dy)
			}
		})
	}

	cs := NewColliders()
	ball := cs.AddCircle(0, 0, 50, TagTarget)
	reticle := cs.AddCircle(0, 56, 5, TagReticle)
	if reticle.Overlaps(ball, TagTarget) {
		t.Fatal("reticle just past the edge should miss")
	}
}
