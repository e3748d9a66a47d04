// internal/physics/collision.go
package physics

import (
	"math"

	"first-person-hopper/internal/config"
	"first-person-hopper/internal/utils"

	"github.com/solarlune/resolv"
)

var (
	TagTarget  = resolv.NewTag("target")
	TagReticle = resolv.NewTag("reticle")
)

// Colliders is the overlap-query space. Positions are given in world
// coordinates and stored in screen space, where the grid lives.
type Colliders struct {
	space *resolv.Space
}

// NewColliders creates a space covering the screen with 32px cells.
func NewColliders() *Colliders {
	return &Colliders{space: resolv.NewSpace(config.ScreenWidth, config.ScreenHeight, 32, 32)}
}

// Collider is a circular sensor in a Colliders space.
type Collider struct {
	shape  *resolv.Circle
	owner  *Colliders
	radius float64
}

// AddCircle registers a circle centred on the world point (x, y).
func (c *Colliders) AddCircle(x, y, radius float64, tag resolv.Tags) *Collider {
	sx, sy := utils.WorldToScreen(x, y)
	shape := resolv.NewCircle(sx, sy, radius)
	shape.Tags().Set(tag)
	c.space.Add(shape)
	return &Collider{shape: shape, owner: c, radius: radius}
}

// Remove takes col out of the space.
func (c *Colliders) Remove(col *Collider) {
	c.space.Remove(col.shape)
}

// SetPosition moves the collider centre to the world point (x, y).
func (col *Collider) SetPosition(x, y float64) {
	sx, sy := utils.WorldToScreen(x, y)
	col.shape.SetPosition(sx, sy)
}

// Position returns the collider centre in world coordinates.
func (col *Collider) Position() (float64, float64) {
	p := col.shape.Position()
	return utils.ScreenToWorld(p.X, p.Y)
}

func (col *Collider) Radius() float64 { return col.radius }

// Overlaps reports whether col currently intersects other, including when
// one circle lies wholly inside the other. other must carry tag and still be
// in the space.
func (col *Collider) Overlaps(other *Collider, tag resolv.Tags) bool {
	candidates := col.shape.SelectTouchingCells(1).FilterShapes().
		ByTags(tag).
		ByFunc(func(s resolv.IShape) bool { return s == other.shape })

	present := false
	candidates.ForEach(func(resolv.IShape) bool {
		present = true
		return false
	})
	if !present {
		return false
	}

	// resolv reports crossing edges only, not containment.
	ax, ay := col.Position()
	bx, by := other.Position()
	if math.Hypot(ax-bx, ay-by)+math.Min(col.radius, other.radius) <= math.Max(col.radius, other.radius) {
		return true
	}

	return col.shape.IntersectionTest(resolv.IntersectionTestSettings{TestAgainst: candidates})
}
