package shapes

import "github.com/soypat/glgl/math/ms2"

// LineSegmentBuilder builds a stroked straight line. A segment has no
// interior, so it cannot be filled.
type LineSegmentBuilder struct {
	configurable[*LineSegmentBuilder]
	from, to ms2.Vec
}

// LineSegment returns a builder for the segment from → to, stroked 1 unit
// wide.
func LineSegment(from, to ms2.Vec) *LineSegmentBuilder {
	b := &LineSegmentBuilder{}
	b.init(b, "line segment", DefaultOptions().WithStroke(1))
	return b.WithFrom(from).WithTo(to)
}

// WithFrom sets the start point.
func (b *LineSegmentBuilder) WithFrom(p ms2.Vec) *LineSegmentBuilder {
	if !finiteVec(p) {
		b.fail("from", p, ErrInvalidValue)
		return b
	}
	b.from = p
	return b
}

// WithTo sets the end point.
func (b *LineSegmentBuilder) WithTo(p ms2.Vec) *LineSegmentBuilder {
	if !finiteVec(p) {
		b.fail("to", p, ErrInvalidValue)
		return b
	}
	b.to = p
	return b
}

// WithFill records ErrFillUnsupported; line segments can only be stroked.
func (b *LineSegmentBuilder) WithFill() *LineSegmentBuilder {
	b.fail("mode", ModeFill, ErrFillUnsupported)
	return b
}

// Points returns [from, to].
func (b *LineSegmentBuilder) Points() []ms2.Vec {
	return []ms2.Vec{b.from, b.to}
}

func (b *LineSegmentBuilder) geometry() (geometry, error) {
	return geometry{points: b.Points(), closed: false}, nil
}
