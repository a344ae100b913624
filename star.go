package shapes

import (
	"github.com/chewxy/math32"
	"github.com/soypat/glgl/math/ms2"
)

// DefaultInnerRatio is the default ratio of a star's inner radius to its
// outer radius.
const DefaultInnerRatio = 0.5

// StarBuilder builds a regular star: tips on an outer circle alternating
// with notches on an inner circle.
type StarBuilder struct {
	configurable[*StarBuilder]
	center ms2.Vec
	radius float32
	tips   int
	ratio  float32
	start  Angle
}

// Star returns a builder for a star with the given number of tips, at
// least 3. The first tip points North.
func Star(tips int) *StarBuilder {
	b := &StarBuilder{radius: DefaultRadius, tips: 5, ratio: DefaultInnerRatio, start: North}
	b.init(b, "star", DefaultOptions())
	return b.WithTips(tips)
}

// Pentagram returns a builder for a five pointed star whose edges line up
// like the classic drawn figure.
func Pentagram() *StarBuilder {
	return Star(5).WithInnerRatio(pentagramRatio)
}

// Hexagram returns a builder for a six pointed star made of two overlapping
// triangles.
func Hexagram() *StarBuilder {
	return Star(6).WithInnerRatio(hexagramRatio)
}

// pentagramRatio is 1/φ², the inner radius of a {5/2} star polygon.
var pentagramRatio = math32.Cos(2*math32.Pi/5) / math32.Cos(math32.Pi/5)

// hexagramRatio is the inner radius of a {6/2} compound, 1/√3.
var hexagramRatio = 1 / math32.Sqrt(3)

// WithTips sets the number of tips. Must be at least 3.
func (b *StarBuilder) WithTips(n int) *StarBuilder {
	if n < 3 {
		b.fail("tips", n, ErrInvalidValue)
		return b
	}
	b.tips = n
	return b
}

// WithInnerRatio sets the inner radius as a fraction of the outer radius.
// Must be in (0, 1].
func (b *StarBuilder) WithInnerRatio(r float32) *StarBuilder {
	if !(r > 0 && r <= 1) {
		b.fail("inner radius ratio", r, ErrInvalidValue)
		return b
	}
	b.ratio = r
	return b
}

// WithCenter sets the center.
func (b *StarBuilder) WithCenter(c ms2.Vec) *StarBuilder {
	if !finiteVec(c) {
		b.fail("center", c, ErrInvalidValue)
		return b
	}
	b.center = c
	return b
}

// WithRadius sets the outer radius. Must be positive.
func (b *StarBuilder) WithRadius(r float32) *StarBuilder {
	if !positive(r) {
		b.fail("radius", r, ErrInvalidValue)
		return b
	}
	b.radius = r
	return b
}

// WithStartAngle sets the direction of the first tip.
func (b *StarBuilder) WithStartAngle(a Angle) *StarBuilder {
	if !finite(float32(a)) {
		b.fail("start angle", a, ErrInvalidValue)
		return b
	}
	b.start = a
	return b
}

// Tips returns the number of tips.
func (b *StarBuilder) Tips() int { return b.tips }

// InnerRatio returns the inner radius ratio.
func (b *StarBuilder) InnerRatio() float32 { return b.ratio }

// Points returns 2n points: tip k at start + k·2π/n on the outer circle,
// followed by a notch π/n further on the inner circle.
func (b *StarBuilder) Points() []ms2.Vec {
	pts := make([]ms2.Vec, 0, 2*b.tips)
	step := 2 * math32.Pi / float32(b.tips)
	inner := b.radius * b.ratio
	for k := range b.tips {
		a := b.start + Angle(step*float32(k))
		pts = append(pts,
			polar(b.center, b.radius, a),
			polar(b.center, inner, a+Angle(step/2)),
		)
	}
	return pts
}

// BoundingBox returns the box of the outer circle.
func (b *StarBuilder) BoundingBox() ms2.Box {
	return circleBox(b.center, b.radius)
}

func (b *StarBuilder) geometry() (geometry, error) {
	return geometry{points: b.Points(), closed: true, bounds: b.BoundingBox(), fillable: true}, nil
}
