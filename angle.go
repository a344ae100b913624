package shapes

import (
	"github.com/chewxy/math32"
	"github.com/soypat/glgl/math/ms2"
)

// Angle is an angle in radians. Angle 0 points along +X and positive angles
// rotate from +X toward +Y. With the usual y-up axes that is
// counter-clockwise; on a y-down screen it appears clockwise.
type Angle float32

// Cardinal directions.
const (
	East  = Angle(0)
	North = Angle(math32.Pi / 2)
	West  = Angle(math32.Pi)
	South = Angle(3 * math32.Pi / 2)
)

// FullTurn is one revolution.
const FullTurn = Angle(2 * math32.Pi)

// Deg converts degrees to an Angle.
func Deg(degrees float32) Angle {
	return Angle(degrees * math32.Pi / 180)
}

// Degrees returns a in degrees.
func (a Angle) Degrees() float32 {
	return float32(a) * 180 / math32.Pi
}

// Unit returns the unit vector pointing in direction a.
func (a Angle) Unit() ms2.Vec {
	return ms2.Vec{X: math32.Cos(float32(a)), Y: math32.Sin(float32(a))}
}

// polar returns the point at distance r from center in direction a.
func polar(center ms2.Vec, r float32, a Angle) ms2.Vec {
	return ms2.Add(center, ms2.Scale(r, a.Unit()))
}
