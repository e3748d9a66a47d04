// internal/component/weapon.go
package component

import "github.com/yohamta/donburi"

// timerEpsilon absorbs float drift when frame deltas sum to a duration.
const timerEpsilon = 1e-9

// Cooldown gates the fire rate. It is Ready when Remaining <= 0 and
// Cooling otherwise.
type Cooldown struct {
	Interval  float64
	Remaining float64
}

func NewCooldown(interval float64) Cooldown {
	return Cooldown{Interval: interval}
}

func (c *Cooldown) Ready() bool {
	return c.Remaining <= 0
}

// Fire starts cooling and reports true when the weapon was Ready.
// While cooling it does nothing and reports false.
func (c *Cooldown) Fire() bool {
	if !c.Ready() {
		return false
	}
	c.Remaining = c.Interval
	return true
}

// Tick advances a cooling weapon by dt seconds.
func (c *Cooldown) Tick(dt float64) {
	if c.Ready() || dt <= 0 {
		return
	}
	c.Remaining -= dt
	if c.Remaining <= timerEpsilon {
		c.Remaining = 0
	}
}

// WeaponData is the player's gun. It sits at a fixed offset from the
// reticle.
type WeaponData struct {
	Cooldown Cooldown
}

var Weapon = donburi.NewComponentType[WeaponData]()
