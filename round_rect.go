package shapes

import (
	"github.com/chewxy/math32"
	"github.com/soypat/glgl/math/ms2"

	"github.com/gogpu/shapes/internal/tess"
)

// CornerRadii holds one radius per rectangle corner. Bottom is the min Y
// edge and Left the min X edge.
type CornerRadii struct {
	BottomLeft, BottomRight, TopRight, TopLeft float32
}

// UniformRadii returns CornerRadii with r on every corner.
func UniformRadii(r float32) CornerRadii {
	return CornerRadii{r, r, r, r}
}

func (c CornerRadii) array() [4]float32 {
	return [4]float32{c.BottomLeft, c.BottomRight, c.TopRight, c.TopLeft}
}

// RoundRectBuilder builds a rectangle with circular corners.
type RoundRectBuilder struct {
	configurable[*RoundRectBuilder]
	rect           ms2.Box
	radii          CornerRadii
	stepsPerRadius float32
}

// RoundRect returns a builder for rect with sharp corners and one arc step
// per unit of radius.
func RoundRect(rect ms2.Box) *RoundRectBuilder {
	b := &RoundRectBuilder{stepsPerRadius: 1}
	b.init(b, "round rect", DefaultOptions())
	return b.WithRect(rect)
}

// WithRect sets the rectangle. Min must not exceed Max on either axis.
func (b *RoundRectBuilder) WithRect(rect ms2.Box) *RoundRectBuilder {
	if !finiteVec(rect.Min) || !finiteVec(rect.Max) || rect.Min.X > rect.Max.X || rect.Min.Y > rect.Max.Y {
		b.fail("rect", rect, ErrInvalidValue)
		return b
	}
	b.rect = rect
	return b
}

// WithRadius sets every corner radius.
func (b *RoundRectBuilder) WithRadius(r float32) *RoundRectBuilder {
	return b.WithRadii(UniformRadii(r))
}

// WithRadii sets the corner radii. Each must be non-negative; a zero
// radius gives a sharp corner. Radii larger than half the shorter side
// are rejected when building.
func (b *RoundRectBuilder) WithRadii(radii CornerRadii) *RoundRectBuilder {
	for _, r := range radii.array() {
		if !(r >= 0) || math32.IsInf(r, 1) {
			b.fail("corner radius", r, ErrInvalidValue)
			return b
		}
	}
	b.radii = radii
	return b
}

// WithStepsPerRadius sets the arc sampling density: a corner of radius r
// gets round(r·steps) segments, at least one and at most
// tess.MaxArcSegments.
func (b *RoundRectBuilder) WithStepsPerRadius(steps float32) *RoundRectBuilder {
	if !positive(steps) {
		b.fail("steps per radius", steps, ErrInvalidValue)
		return b
	}
	b.stepsPerRadius = steps
	return b
}

// Rect returns the rectangle.
func (b *RoundRectBuilder) Rect() ms2.Box { return b.rect }

// Radii returns the corner radii.
func (b *RoundRectBuilder) Radii() CornerRadii { return b.radii }

// Points returns the outline starting at the bottom-left corner and
// running through bottom-right, top-right and top-left, turning from +X
// toward +Y. Each rounded corner contributes the samples of a quarter arc,
// a sharp corner one point.
func (b *RoundRectBuilder) Points() []ms2.Vec {
	lo, hi := b.rect.Min, b.rect.Max
	radii := b.radii.array()
	corners := [4]struct {
		at    ms2.Vec
		dir   ms2.Vec // from the corner toward the arc center
		start Angle
	}{
		{lo, ms2.Vec{X: 1, Y: 1}, West},
		{ms2.Vec{X: hi.X, Y: lo.Y}, ms2.Vec{X: -1, Y: 1}, South},
		{hi, ms2.Vec{X: -1, Y: -1}, East},
		{ms2.Vec{X: lo.X, Y: hi.Y}, ms2.Vec{X: 1, Y: -1}, North},
	}
	pts := make([]ms2.Vec, 0, 8)
	for i, c := range corners {
		r := radii[i]
		if r == 0 {
			pts = append(pts, c.at)
			continue
		}
		center := ms2.Add(c.at, ms2.Scale(r, c.dir))
		steps := cornerSteps(r * b.stepsPerRadius)
		step := (math32.Pi / 2) / float32(steps)
		for k := 0; k <= steps; k++ {
			pts = append(pts, polar(center, r, c.start+Angle(step*float32(k))))
		}
	}
	return pts
}

func cornerSteps(n float32) int {
	if n >= tess.MaxArcSegments {
		return tess.MaxArcSegments
	}
	return max(1, int(math32.Floor(n+0.5)))
}

func (b *RoundRectBuilder) geometry() (geometry, error) {
	size := ms2.Sub(b.rect.Max, b.rect.Min)
	limit := math32.Min(size.X, size.Y) / 2
	for _, r := range b.radii.array() {
		if r > limit {
			return geometry{}, &ConfigError{Shape: b.kind, Field: "corner radius", Value: r, Err: ErrInvalidValue}
		}
	}
	return geometry{points: b.Points(), closed: true, bounds: b.rect, fillable: true}, nil
}
