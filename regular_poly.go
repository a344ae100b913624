package shapes

import (
	"github.com/chewxy/math32"
	"github.com/soypat/glgl/math/ms2"
)

// RegularPolyBuilder builds a regular polygon inscribed in a circle.
type RegularPolyBuilder struct {
	configurable[*RegularPolyBuilder]
	center ms2.Vec
	radius float32
	sides  int
	start  Angle
}

// RegularPoly returns a builder for a polygon with the given number of
// sides, at least 3. The first vertex points North.
func RegularPoly(sides int) *RegularPolyBuilder {
	b := &RegularPolyBuilder{radius: DefaultRadius, sides: 3, start: North}
	b.init(b, "regular polygon", DefaultOptions())
	return b.WithSides(sides)
}

// Triangle returns a builder for an equilateral triangle.
func Triangle() *RegularPolyBuilder { return RegularPoly(3) }

// Square returns a builder for a square standing on a corner.
func Square() *RegularPolyBuilder { return RegularPoly(4) }

// Pentagon returns a builder for a regular pentagon.
func Pentagon() *RegularPolyBuilder { return RegularPoly(5) }

// Hexagon returns a builder for a regular hexagon.
func Hexagon() *RegularPolyBuilder { return RegularPoly(6) }

// Octagon returns a builder for a regular octagon.
func Octagon() *RegularPolyBuilder { return RegularPoly(8) }

// Decagon returns a builder for a regular decagon.
func Decagon() *RegularPolyBuilder { return RegularPoly(10) }

// WithSides sets the number of sides. Must be at least 3.
func (b *RegularPolyBuilder) WithSides(n int) *RegularPolyBuilder {
	if n < 3 {
		b.fail("sides", n, ErrInvalidValue)
		return b
	}
	b.sides = n
	return b
}

// WithCenter sets the center.
func (b *RegularPolyBuilder) WithCenter(c ms2.Vec) *RegularPolyBuilder {
	if !finiteVec(c) {
		b.fail("center", c, ErrInvalidValue)
		return b
	}
	b.center = c
	return b
}

// WithRadius sets the circumradius. Must be positive.
func (b *RegularPolyBuilder) WithRadius(r float32) *RegularPolyBuilder {
	if !positive(r) {
		b.fail("radius", r, ErrInvalidValue)
		return b
	}
	b.radius = r
	return b
}

// WithStartAngle sets the direction of the first vertex.
func (b *RegularPolyBuilder) WithStartAngle(a Angle) *RegularPolyBuilder {
	if !finite(float32(a)) {
		b.fail("start angle", a, ErrInvalidValue)
		return b
	}
	b.start = a
	return b
}

// Sides returns the number of sides.
func (b *RegularPolyBuilder) Sides() int { return b.sides }

// Points returns the vertices at start + k·2π/n for k = 0..n-1.
func (b *RegularPolyBuilder) Points() []ms2.Vec {
	return circlePoints(b.center, b.radius, b.sides, b.start)
}

// BoundingBox returns the box of the circumscribed circle.
func (b *RegularPolyBuilder) BoundingBox() ms2.Box {
	return circleBox(b.center, b.radius)
}

func (b *RegularPolyBuilder) geometry() (geometry, error) {
	return geometry{points: b.Points(), closed: true, bounds: b.BoundingBox(), fillable: true}, nil
}

// circlePoints returns n points evenly spaced on a circle, starting at the
// given angle.
func circlePoints(center ms2.Vec, r float32, n int, start Angle) []ms2.Vec {
	pts := make([]ms2.Vec, n)
	step := 2 * math32.Pi / float32(n)
	for k := range pts {
		pts[k] = polar(center, r, start+Angle(step*float32(k)))
	}
	return pts
}

func circleBox(center ms2.Vec, r float32) ms2.Box {
	d := ms2.Vec{X: r, Y: r}
	return ms2.Box{Min: ms2.Sub(center, d), Max: ms2.Add(center, d)}
}
