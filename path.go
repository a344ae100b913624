package shapes

import (
	"github.com/soypat/glgl/math/ms2"

	"github.com/gogpu/shapes/internal/tess"
)

// PathElement represents a single command of a Path.
type PathElement interface {
	isPathElement()
}

// MoveTo starts a new subpath at Point.
type MoveTo struct {
	Point ms2.Vec
}

func (MoveTo) isPathElement() {}

// LineTo adds a straight segment to Point.
type LineTo struct {
	Point ms2.Vec
}

func (LineTo) isPathElement() {}

// QuadTo adds a quadratic Bézier curve.
type QuadTo struct {
	Control ms2.Vec
	Point   ms2.Vec
}

func (QuadTo) isPathElement() {}

// CubicTo adds a cubic Bézier curve.
type CubicTo struct {
	Control1 ms2.Vec
	Control2 ms2.Vec
	Point    ms2.Vec
}

func (CubicTo) isPathElement() {}

// ArcTo adds a circular arc around Center starting at angle Start and
// sweeping by Sweep. If the current point is not the arc's start, a straight
// segment joins them.
type ArcTo struct {
	Center ms2.Vec
	Radius float32
	Start  Angle
	Sweep  Angle
}

func (ArcTo) isPathElement() {}

// Close closes the current subpath.
type Close struct{}

func (Close) isPathElement() {}

// Path is an ordered sequence of path commands. Curves are kept as commands
// and flattened by the tessellator using the build tolerance.
type Path struct {
	elements []PathElement
	start    ms2.Vec
	current  ms2.Vec
	open     bool // a subpath has been started and not closed
}

// NewPath creates an empty path.
func NewPath() *Path {
	return &Path{elements: make([]PathElement, 0, 8)}
}

// MoveTo starts a new subpath.
func (p *Path) MoveTo(pt ms2.Vec) *Path {
	p.elements = append(p.elements, MoveTo{Point: pt})
	p.start, p.current = pt, pt
	p.open = true
	return p
}

// LineTo adds a straight segment.
func (p *Path) LineTo(pt ms2.Vec) *Path {
	p.elements = append(p.elements, LineTo{Point: pt})
	p.begin(p.current)
	p.current = pt
	return p
}

// QuadTo adds a quadratic Bézier curve.
func (p *Path) QuadTo(ctrl, pt ms2.Vec) *Path {
	p.elements = append(p.elements, QuadTo{Control: ctrl, Point: pt})
	p.begin(p.current)
	p.current = pt
	return p
}

// CubicTo adds a cubic Bézier curve.
func (p *Path) CubicTo(ctrl1, ctrl2, pt ms2.Vec) *Path {
	p.elements = append(p.elements, CubicTo{Control1: ctrl1, Control2: ctrl2, Point: pt})
	p.begin(p.current)
	p.current = pt
	return p
}

// ArcTo adds a circular arc.
func (p *Path) ArcTo(center ms2.Vec, radius float32, start, sweep Angle) *Path {
	p.elements = append(p.elements, ArcTo{Center: center, Radius: radius, Start: start, Sweep: sweep})
	p.begin(polar(center, radius, start))
	p.current = polar(center, radius, start+sweep)
	return p
}

// Close closes the current subpath.
func (p *Path) Close() *Path {
	p.elements = append(p.elements, Close{})
	p.current = p.start
	p.open = false
	return p
}

// begin starts an implicit subpath at pt unless one is already open.
func (p *Path) begin(pt ms2.Vec) {
	if !p.open {
		p.start = pt
		p.open = true
	}
}

// Elements returns the path commands.
func (p *Path) Elements() []PathElement {
	return p.elements
}

// Len returns the number of commands.
func (p *Path) Len() int {
	return len(p.elements)
}

// CurrentPoint returns the end point of the last command.
func (p *Path) CurrentPoint() ms2.Vec {
	return p.current
}

// Bounds returns a box containing every point and control point of the
// path. Curves lie inside the hull of their control points, so the box also
// contains the flattened path. Arcs contribute their full circle's box.
func (p *Path) Bounds() ms2.Box {
	var b boundsAcc
	for _, e := range p.elements {
		switch e := e.(type) {
		case MoveTo:
			b.add(e.Point)
		case LineTo:
			b.add(e.Point)
		case QuadTo:
			b.add(e.Control)
			b.add(e.Point)
		case CubicTo:
			b.add(e.Control1)
			b.add(e.Control2)
			b.add(e.Point)
		case ArcTo:
			r := ms2.Vec{X: e.Radius, Y: e.Radius}
			b.add(ms2.Sub(e.Center, r))
			b.add(ms2.Add(e.Center, r))
		}
	}
	return b.box
}

func (p *Path) tess() []tess.PathElement {
	out := make([]tess.PathElement, 0, len(p.elements))
	for _, e := range p.elements {
		switch e := e.(type) {
		case MoveTo:
			out = append(out, tess.MoveTo{Point: e.Point})
		case LineTo:
			out = append(out, tess.LineTo{Point: e.Point})
		case QuadTo:
			out = append(out, tess.QuadTo{Control: e.Control, Point: e.Point})
		case CubicTo:
			out = append(out, tess.CubicTo{Control1: e.Control1, Control2: e.Control2, Point: e.Point})
		case ArcTo:
			out = append(out, tess.ArcTo{Center: e.Center, Radius: e.Radius, Start: float32(e.Start), Sweep: float32(e.Sweep)})
		case Close:
			out = append(out, tess.Close{})
		}
	}
	return out
}

// boundsAcc grows a box one point at a time.
type boundsAcc struct {
	box ms2.Box
	n   int
}

func (b *boundsAcc) add(p ms2.Vec) {
	if b.n == 0 {
		b.box = ms2.Box{Min: p, Max: p}
	} else {
		b.box = ms2.Box{Min: ms2.MinElem(b.box.Min, p), Max: ms2.MaxElem(b.box.Max, p)}
	}
	b.n++
}

func pointsBounds(pts []ms2.Vec) ms2.Box {
	var b boundsAcc
	for _, p := range pts {
		b.add(p)
	}
	return b.box
}
