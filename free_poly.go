package shapes

import "github.com/soypat/glgl/math/ms2"

// FreePolyBuilder builds a polygon or polyline from arbitrary points. Its
// bounding box is grown as points are added.
type FreePolyBuilder struct {
	configurable[*FreePolyBuilder]
	points []ms2.Vec
	bounds boundsAcc
	closed bool
}

// FreePoly returns a builder for a closed polygon through points.
func FreePoly(points ...ms2.Vec) *FreePolyBuilder {
	b := &FreePolyBuilder{closed: true}
	b.init(b, "free poly", DefaultOptions())
	return b.WithPoints(points...)
}

// WithPoint appends a point.
func (b *FreePolyBuilder) WithPoint(p ms2.Vec) *FreePolyBuilder {
	if !finiteVec(p) {
		b.fail("point", p, ErrInvalidValue)
		return b
	}
	b.points = append(b.points, p)
	b.bounds.add(p)
	return b
}

// WithPoints appends points.
func (b *FreePolyBuilder) WithPoints(points ...ms2.Vec) *FreePolyBuilder {
	for _, p := range points {
		b.WithPoint(p)
	}
	return b
}

// WithClosed sets whether a stroke joins the last point back to the first.
// Fills are always closed.
func (b *FreePolyBuilder) WithClosed(closed bool) *FreePolyBuilder {
	b.closed = closed
	return b
}

// WithStrokeOpen strokes the points as an open polyline.
func (b *FreePolyBuilder) WithStrokeOpen(width float32) *FreePolyBuilder {
	return b.WithClosed(false).WithStroke(width)
}

// WithStrokeClosed strokes the points as a closed outline.
func (b *FreePolyBuilder) WithStrokeClosed(width float32) *FreePolyBuilder {
	return b.WithClosed(true).WithStroke(width)
}

// Points returns the points added so far.
func (b *FreePolyBuilder) Points() []ms2.Vec { return b.points }

// Closed reports whether the outline is closed.
func (b *FreePolyBuilder) Closed() bool { return b.closed }

// Bounds returns the bounding box of the points, or the zero box if there
// are none.
func (b *FreePolyBuilder) Bounds() ms2.Box { return b.bounds.box }

func (b *FreePolyBuilder) geometry() (geometry, error) {
	return geometry{points: b.points, closed: b.closed, bounds: b.bounds.box, fillable: true}, nil
}
