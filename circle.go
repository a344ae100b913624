package shapes

import "github.com/soypat/glgl/math/ms2"

// CircleBuilder builds a circle. The outline is emitted as a single
// full-turn arc and flattened with the build tolerance.
type CircleBuilder struct {
	configurable[*CircleBuilder]
	center ms2.Vec
	radius float32
}

// Circle returns a builder for a circle at the origin with DefaultRadius.
func Circle() *CircleBuilder {
	b := &CircleBuilder{radius: DefaultRadius}
	b.init(b, "circle", DefaultOptions())
	return b
}

// WithCenter sets the center.
func (b *CircleBuilder) WithCenter(c ms2.Vec) *CircleBuilder {
	if !finiteVec(c) {
		b.fail("center", c, ErrInvalidValue)
		return b
	}
	b.center = c
	return b
}

// WithRadius sets the radius. Must be positive.
func (b *CircleBuilder) WithRadius(r float32) *CircleBuilder {
	if !positive(r) {
		b.fail("radius", r, ErrInvalidValue)
		return b
	}
	b.radius = r
	return b
}

// Center returns the center.
func (b *CircleBuilder) Center() ms2.Vec { return b.center }

// Radius returns the radius.
func (b *CircleBuilder) Radius() float32 { return b.radius }

// Path returns the outline: one arc starting East and sweeping a full turn.
func (b *CircleBuilder) Path() *Path {
	return NewPath().ArcTo(b.center, b.radius, East, FullTurn).Close()
}

// BoundingBox returns the square enclosing the circle.
func (b *CircleBuilder) BoundingBox() ms2.Box {
	r := ms2.Vec{X: b.radius, Y: b.radius}
	return ms2.Box{Min: ms2.Sub(b.center, r), Max: ms2.Add(b.center, r)}
}

func (b *CircleBuilder) geometry() (geometry, error) {
	return geometry{path: b.Path(), closed: true, bounds: b.BoundingBox(), fillable: true}, nil
}
