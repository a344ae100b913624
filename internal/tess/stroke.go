package tess

import (
	"github.com/chewxy/math32"
	"github.com/soypat/glgl/math/ms2"
)

// StrokePolyline builds a ribbon mesh of opts.Width around the polyline.
// A closed polyline with fewer than three distinct points is stroked open.
func StrokePolyline[V any](points []ms2.Vec, closed bool, opts StrokeOptions, out *VertexBuffers[V], ctor func(StrokeVertex) V) error {
	if err := opts.validate(); err != nil {
		return err
	}
	var tmp VertexBuffers[V]
	if err := strokeContour(points, closed, opts, &tmp, ctor); err != nil {
		return err
	}
	out.appendFrom(&tmp)
	return nil
}

// StrokePath flattens the path and strokes every subpath. Advancement
// restarts at zero for each subpath.
func StrokePath[V any](elements []PathElement, opts StrokeOptions, out *VertexBuffers[V], ctor func(StrokeVertex) V) error {
	if err := opts.validate(); err != nil {
		return err
	}
	contours, err := Flatten(elements, opts.Tolerance)
	if err != nil {
		return err
	}
	if len(contours) == 0 {
		return ErrTooFewPoints
	}
	var tmp VertexBuffers[V]
	for _, c := range contours {
		if err := strokeContour(c.Points, c.Closed, opts, &tmp, ctor); err != nil {
			return err
		}
	}
	out.appendFrom(&tmp)
	return nil
}

// section is a cross-section of the ribbon: a left and a right vertex
// (as indices into the pending vertex list) at one advancement.
type section struct {
	left, right   uint32
	leftP, rightP ms2.Vec
}

type ribbon[V any] struct {
	opts     StrokeOptions
	hw       float32
	buf      *VertexBuffers[V]
	ctor     func(StrokeVertex) V
	sections []section
}

func (r *ribbon[V]) vertex(p ms2.Vec, side Side, adv float32) uint32 {
	i := uint32(len(r.buf.Vertices))
	r.buf.Vertices = append(r.buf.Vertices, r.ctor(StrokeVertex{Position: p, Side: side, Advancement: adv}))
	return i
}

// straight adds one section through p perpendicular to d.
func (r *ribbon[V]) straight(p, d ms2.Vec, adv float32) {
	n := ms2.Scale(r.hw, perp(d))
	r.add(ms2.Add(p, n), ms2.Sub(p, n), adv)
}

// add appends a section with two fresh vertices.
func (r *ribbon[V]) add(left, right ms2.Vec, adv float32) {
	r.sections = append(r.sections, section{
		left:   r.vertex(left, SideLeft, adv),
		right:  r.vertex(right, SideRight, adv),
		leftP:  left,
		rightP: right,
	})
}

// join adds the sections where a segment with direction d0 meets one with
// direction d1 at p: one for a miter or straight join, two for a bevel.
// minLen is the shorter of the two segment lengths and bounds how far the
// inner corner of a bevel may move.
func (r *ribbon[V]) join(p, d0, d1 ms2.Vec, minLen, adv float32) {
	n0, n1 := perp(d0), perp(d1)
	turn := cross(d0, d1)
	if math32.Abs(turn) < 1e-6 && ms2.Dot(d0, d1) > 0 {
		r.straight(p, d0, adv)
		return
	}
	m := unit(ms2.Add(n0, n1))
	cosHalf := ms2.Dot(m, n0)
	if r.opts.Join == JoinMiter && cosHalf > 0 && 1/cosHalf <= r.opts.MiterLimit {
		off := ms2.Scale(r.hw/cosHalf, m)
		r.add(ms2.Add(p, off), ms2.Sub(p, off), adv)
		return
	}

	// Bevel: the inner side shares one vertex, the outer side gets one
	// vertex per segment.
	inner := p
	if cosHalf > 1e-3 {
		dist := math32.Min(r.hw/cosHalf, math32.Hypot(r.hw, minLen))
		inner = ms2.Scale(dist, m)
		if turn > 0 {
			inner = ms2.Add(p, inner)
		} else {
			inner = ms2.Sub(p, inner)
		}
	}
	if turn > 0 {
		in := r.vertex(inner, SideLeft, adv)
		for _, n := range [2]ms2.Vec{n0, n1} {
			out := ms2.Sub(p, ms2.Scale(r.hw, n))
			r.sections = append(r.sections, section{
				left: in, right: r.vertex(out, SideRight, adv),
				leftP: inner, rightP: out,
			})
		}
	} else {
		in := r.vertex(inner, SideRight, adv)
		for _, n := range [2]ms2.Vec{n0, n1} {
			out := ms2.Add(p, ms2.Scale(r.hw, n))
			r.sections = append(r.sections, section{
				left: r.vertex(out, SideLeft, adv), right: in,
				leftP: out, rightP: inner,
			})
		}
	}
}

// triangulate emits two triangles between consecutive sections, skipping
// the degenerate one where a bevel shares its inner vertex.
func (r *ribbon[V]) triangulate() {
	for i := 0; i+1 < len(r.sections); i++ {
		s, t := r.sections[i], r.sections[i+1]
		if s.left != t.left {
			r.buf.Indices = append(r.buf.Indices, s.left, s.right, t.left)
		}
		if s.right != t.right {
			r.buf.Indices = append(r.buf.Indices, s.right, t.right, t.left)
		}
	}
}

func strokeContour[V any](points []ms2.Vec, closed bool, opts StrokeOptions, buf *VertexBuffers[V], ctor func(StrokeVertex) V) error {
	for _, p := range points {
		if !finite(p) {
			return ErrInvalidNumber
		}
	}
	pts := dedupe(points, closed)
	n := len(pts)
	if n < 2 {
		return ErrTooFewPoints
	}
	if closed && n < 3 {
		closed = false
	}

	segs := n - 1
	if closed {
		segs = n
	}
	dirs := make([]ms2.Vec, segs)
	lens := make([]float32, segs)
	for i := range segs {
		d := ms2.Sub(pts[(i+1)%n], pts[i])
		lens[i] = ms2.Norm(d)
		dirs[i] = ms2.Scale(1/lens[i], d)
	}

	r := ribbon[V]{opts: opts, hw: opts.Width / 2, buf: buf, ctor: ctor}
	if closed {
		r.join(pts[0], dirs[segs-1], dirs[0], min(lens[segs-1], lens[0]), 0)
		var adv float32
		for i := 1; i < n; i++ {
			adv += lens[i-1]
			r.join(pts[i], dirs[i-1], dirs[i], min(lens[i-1], lens[i]), adv)
		}
		adv += lens[segs-1]
		// Repeat the seam's incoming section at the full length so the
		// texture keeps advancing instead of wrapping back to zero. A bevel
		// at the seam was already emitted at the start.
		seam := r.sections[0]
		r.add(seam.leftP, seam.rightP, adv)
		r.triangulate()
		return nil
	}

	var ext float32
	if opts.Cap == CapSquare {
		ext = r.hw
	}
	r.straight(ms2.Sub(pts[0], ms2.Scale(ext, dirs[0])), dirs[0], 0)
	adv := ext
	for i := 1; i < n-1; i++ {
		adv += lens[i-1]
		r.join(pts[i], dirs[i-1], dirs[i], min(lens[i-1], lens[i]), adv)
	}
	adv += lens[segs-1] + ext
	r.straight(ms2.Add(pts[n-1], ms2.Scale(ext, dirs[segs-1])), dirs[segs-1], adv)
	r.triangulate()
	return nil
}
