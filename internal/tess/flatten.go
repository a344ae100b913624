package tess

import (
	"github.com/chewxy/math32"
	"github.com/soypat/glgl/math/ms2"
)

// PathElement is a single command of a path.
type PathElement interface {
	isPathElement()
}

// MoveTo starts a new subpath.
type MoveTo struct{ Point ms2.Vec }

// LineTo adds a straight segment.
type LineTo struct{ Point ms2.Vec }

// QuadTo adds a quadratic Bézier segment.
type QuadTo struct{ Control, Point ms2.Vec }

// CubicTo adds a cubic Bézier segment.
type CubicTo struct{ Control1, Control2, Point ms2.Vec }

// ArcTo adds a circular arc around Center, starting at angle Start and
// sweeping by Sweep radians (positive toward +Y). If the current point is not
// the arc's start point, a straight segment connects them.
type ArcTo struct {
	Center       ms2.Vec
	Radius       float32
	Start, Sweep float32
}

// Close closes the current subpath.
type Close struct{}

func (MoveTo) isPathElement()  {}
func (LineTo) isPathElement()  {}
func (QuadTo) isPathElement()  {}
func (CubicTo) isPathElement() {}
func (ArcTo) isPathElement()   {}
func (Close) isPathElement()   {}

// Contour is a flattened subpath.
type Contour struct {
	Points []ms2.Vec
	Closed bool
}

// maxSubdivision bounds the recursion depth of curve flattening so that
// pathological input (huge coordinates, tiny tolerance) terminates.
const maxSubdivision = 16

// MaxArcSegments is the most chords a single arc is split into.
const MaxArcSegments = 1 << maxSubdivision

// Flatten converts path elements into polyline contours. Curves are
// subdivided until they deviate from their chords by at most tolerance.
func Flatten(elements []PathElement, tolerance float32) ([]Contour, error) {
	if !positive(tolerance) {
		return nil, ErrInvalidOptions
	}
	f := flattener{tol: tolerance}
	for _, elem := range elements {
		switch e := elem.(type) {
		case MoveTo:
			f.finish(false)
			f.moveTo(e.Point)
		case LineTo:
			f.lineTo(e.Point)
		case QuadTo:
			f.ensureStarted()
			f.quad(f.current, e.Control, e.Point, 0)
		case CubicTo:
			f.ensureStarted()
			f.cubic(f.current, e.Control1, e.Control2, e.Point, 0)
		case ArcTo:
			f.arc(e)
		case Close:
			f.finish(true)
		}
	}
	f.finish(false)
	for _, c := range f.contours {
		for _, p := range c.Points {
			if !finite(p) {
				return nil, ErrInvalidNumber
			}
		}
	}
	return f.contours, nil
}

type flattener struct {
	tol      float32
	contours []Contour
	points   []ms2.Vec
	current  ms2.Vec
	started  bool
}

func (f *flattener) moveTo(p ms2.Vec) {
	f.points = append(f.points[:0:0], p)
	f.current = p
	f.started = true
}

func (f *flattener) ensureStarted() {
	if !f.started {
		f.moveTo(f.current)
	}
}

func (f *flattener) lineTo(p ms2.Vec) {
	f.ensureStarted()
	f.points = append(f.points, p)
	f.current = p
}

func (f *flattener) finish(closed bool) {
	if !f.started {
		return
	}
	f.contours = append(f.contours, Contour{Points: f.points, Closed: closed})
	if closed && len(f.points) > 0 {
		f.current = f.points[0]
	}
	f.points = nil
	f.started = false
}

// quad flattens a quadratic Bézier by de Casteljau subdivision at t=0.5,
// stopping once the curve midpoint is within tolerance of the chord midpoint.
func (f *flattener) quad(p0, c, p1 ms2.Vec, depth int) {
	mid := ms2.Add(ms2.Add(ms2.Scale(0.25, p0), ms2.Scale(0.5, c)), ms2.Scale(0.25, p1))
	chordMid := ms2.Scale(0.5, ms2.Add(p0, p1))
	if depth >= maxSubdivision || ms2.Norm2(ms2.Sub(mid, chordMid)) <= f.tol*f.tol {
		f.lineTo(p1)
		return
	}
	a := ms2.Scale(0.5, ms2.Add(p0, c))
	b := ms2.Scale(0.5, ms2.Add(c, p1))
	m := ms2.Scale(0.5, ms2.Add(a, b))
	f.quad(p0, a, m, depth+1)
	f.quad(m, b, p1, depth+1)
}

// cubic flattens a cubic Bézier. Both control points must be within
// tolerance of the chord; the factor 16 accounts for the cubic error bound.
func (f *flattener) cubic(p0, c1, c2, p1 ms2.Vec, depth int) {
	u := ms2.Sub(ms2.Sub(ms2.Scale(3, c1), ms2.Scale(2, p0)), p1)
	v := ms2.Sub(ms2.Sub(ms2.Scale(3, c2), p0), ms2.Scale(2, p1))
	d := math32.Max(ms2.Norm2(u), ms2.Norm2(v))
	if depth >= maxSubdivision || d <= 16*f.tol*f.tol {
		f.lineTo(p1)
		return
	}
	ab1 := ms2.Scale(0.5, ms2.Add(p0, c1))
	ab2 := ms2.Scale(0.5, ms2.Add(c1, c2))
	ab3 := ms2.Scale(0.5, ms2.Add(c2, p1))
	bc1 := ms2.Scale(0.5, ms2.Add(ab1, ab2))
	bc2 := ms2.Scale(0.5, ms2.Add(ab2, ab3))
	m := ms2.Scale(0.5, ms2.Add(bc1, bc2))
	f.cubic(p0, ab1, bc1, m, depth+1)
	f.cubic(m, bc2, ab3, p1, depth+1)
}

func (f *flattener) arc(a ArcTo) {
	start := arcPoint(a.Center, a.Radius, a.Start)
	if !f.started {
		f.moveTo(start)
	} else if f.current != start {
		f.lineTo(start)
	}
	n := ArcSegments(a.Radius, a.Sweep, f.tol)
	step := a.Sweep / float32(n)
	for i := 1; i <= n; i++ {
		f.lineTo(arcPoint(a.Center, a.Radius, a.Start+step*float32(i)))
	}
}

func arcPoint(center ms2.Vec, r, angle float32) ms2.Vec {
	return ms2.Vec{X: center.X + r*math32.Cos(angle), Y: center.Y + r*math32.Sin(angle)}
}

// ArcSegments returns the number of chords needed to approximate an arc of
// the given radius and sweep so that the sagitta stays within tolerance.
func ArcSegments(radius, sweep, tolerance float32) int {
	sweep = math32.Abs(sweep)
	radius = math32.Abs(radius)
	if sweep == 0 || radius == 0 {
		return 1
	}
	if tolerance >= radius {
		return max(1, int(math32.Ceil(sweep/(math32.Pi/2))))
	}
	// The sagitta of a chord spanning angle θ is r(1-cos(θ/2)).
	maxStep := 2 * math32.Acos(1-tolerance/radius)
	n := int(math32.Ceil(sweep / maxStep))
	return min(max(n, 1), MaxArcSegments)
}
