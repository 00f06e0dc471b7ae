package physics

import (
	"github.com/lixenwraith/trajectory/vmath"
)

// Environment holds the constant per-tick accelerations acting on a shot
// Immutable once handed to a Simulator
type Environment struct {
	Gravity vmath.Vector
	Wind    vmath.Vector
}

// Projectile is the live simulation state: where the shot is and where it
// is headed. Both fields change on every tick
type Projectile struct {
	Pos vmath.Point
	Vel vmath.Vector
}
