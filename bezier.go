package shapes

import "github.com/soypat/glgl/math/ms2"

// BezierSegment is one curve of a BezierBuilder: quadratic with one control
// point or cubic with two.
type BezierSegment struct {
	Control1 ms2.Vec
	Control2 ms2.Vec // used by cubic segments only
	End      ms2.Vec
	Cubic    bool
}

// QuadraticSegment returns a quadratic segment.
func QuadraticSegment(ctrl, end ms2.Vec) BezierSegment {
	return BezierSegment{Control1: ctrl, End: end}
}

// CubicSegment returns a cubic segment.
func CubicSegment(ctrl1, ctrl2, end ms2.Vec) BezierSegment {
	return BezierSegment{Control1: ctrl1, Control2: ctrl2, End: end, Cubic: true}
}

func (s BezierSegment) finite() bool {
	return finiteVec(s.Control1) && finiteVec(s.Control2) && finiteVec(s.End)
}

// BezierBuilder builds a stroked chain of Bézier curves. The curves are
// emitted as path commands and flattened by the tessellator with the build
// tolerance. Filling is not supported.
type BezierBuilder struct {
	configurable[*BezierBuilder]
	start    ms2.Vec
	segments []BezierSegment
	closed   bool
}

// Bezier returns a builder for a closed curve chain starting at start,
// stroked 1 unit wide.
func Bezier(start ms2.Vec, segments ...BezierSegment) *BezierBuilder {
	b := &BezierBuilder{closed: true}
	b.init(b, "bezier", DefaultOptions().WithStroke(1))
	return b.WithStart(start).WithSegments(segments...)
}

// WithStart sets the start point.
func (b *BezierBuilder) WithStart(p ms2.Vec) *BezierBuilder {
	if !finiteVec(p) {
		b.fail("start", p, ErrInvalidValue)
		return b
	}
	b.start = p
	return b
}

// WithSegments appends segments.
func (b *BezierBuilder) WithSegments(segments ...BezierSegment) *BezierBuilder {
	for _, s := range segments {
		if !s.finite() {
			b.fail("segment", s, ErrInvalidValue)
			return b
		}
	}
	b.segments = append(b.segments, segments...)
	return b
}

// WithQuadratic appends a quadratic segment.
func (b *BezierBuilder) WithQuadratic(ctrl, end ms2.Vec) *BezierBuilder {
	return b.WithSegments(QuadraticSegment(ctrl, end))
}

// WithCubic appends a cubic segment.
func (b *BezierBuilder) WithCubic(ctrl1, ctrl2, end ms2.Vec) *BezierBuilder {
	return b.WithSegments(CubicSegment(ctrl1, ctrl2, end))
}

// WithClosed sets whether the end joins back to the start.
func (b *BezierBuilder) WithClosed(closed bool) *BezierBuilder {
	b.closed = closed
	return b
}

// WithStrokeOpen strokes the chain as an open curve.
func (b *BezierBuilder) WithStrokeOpen(width float32) *BezierBuilder {
	return b.WithClosed(false).WithStroke(width)
}

// WithStrokeClosed strokes the chain as a closed curve.
func (b *BezierBuilder) WithStrokeClosed(width float32) *BezierBuilder {
	return b.WithClosed(true).WithStroke(width)
}

// WithFill records ErrFillUnsupported: a curve chain has no bounding box
// to map texture coordinates against until it is flattened.
func (b *BezierBuilder) WithFill() *BezierBuilder {
	b.fail("mode", ModeFill, ErrFillUnsupported)
	return b
}

// Segments returns the segments.
func (b *BezierBuilder) Segments() []BezierSegment { return b.segments }

// Path returns MoveTo(start), one curve command per segment and Close when
// the chain is closed.
func (b *BezierBuilder) Path() *Path {
	p := NewPath().MoveTo(b.start)
	for _, s := range b.segments {
		if s.Cubic {
			p.CubicTo(s.Control1, s.Control2, s.End)
		} else {
			p.QuadTo(s.Control1, s.End)
		}
	}
	if b.closed {
		p.Close()
	}
	return p
}

func (b *BezierBuilder) geometry() (geometry, error) {
	return geometry{path: b.Path(), closed: b.closed}, nil
}
