package tess

import (
	"errors"

	"github.com/chewxy/math32"
	"github.com/soypat/glgl/math/ms2"
)

// DefaultTolerance is the default maximum flattening error, in the same units
// as the input coordinates.
const DefaultTolerance = 0.1

// DefaultMiterLimit is the default ratio between miter length and half the
// stroke width above which a miter join turns into a bevel.
const DefaultMiterLimit = 4.0

// Errors reported by the tessellator.
var (
	// ErrTooFewPoints is returned when a contour has too few distinct points
	// to be filled (3) or stroked (2).
	ErrTooFewPoints = errors.New("tess: too few points")

	// ErrInvalidNumber is returned when an input coordinate is NaN or infinite.
	ErrInvalidNumber = errors.New("tess: invalid number")

	// ErrDegenerate is returned when a contour has no area or cannot be
	// triangulated (e.g. it intersects itself).
	ErrDegenerate = errors.New("tess: degenerate geometry")

	// ErrInvalidOptions is returned for non-positive tolerance or width.
	ErrInvalidOptions = errors.New("tess: invalid options")
)

// Side identifies a side of a stroke's centerline.
type Side uint8

const (
	// SideLeft is the side reached by rotating the direction of travel by +90°.
	SideLeft Side = iota
	// SideRight is the opposite side.
	SideRight
)

// String returns the side name.
func (s Side) String() string {
	if s == SideLeft {
		return "left"
	}
	return "right"
}

// LineCap specifies the shape of open stroke endpoints.
type LineCap uint8

const (
	// CapButt ends the stroke exactly at the endpoint.
	CapButt LineCap = iota
	// CapSquare extends the stroke by half its width beyond the endpoint.
	CapSquare
)

// LineJoin specifies how consecutive stroke segments connect.
type LineJoin uint8

const (
	// JoinMiter extends both outer edges until they meet, falling back to a
	// bevel when the miter limit is exceeded.
	JoinMiter LineJoin = iota
	// JoinBevel connects the outer edges with a straight line.
	JoinBevel
)

// FillVertex is a raw vertex produced by the fill tessellator.
type FillVertex struct {
	Position ms2.Vec
}

// StrokeVertex is a raw vertex produced by the stroke tessellator.
type StrokeVertex struct {
	Position ms2.Vec

	// Side is the side of the centerline the vertex lies on.
	Side Side

	// Advancement is the distance traveled along the centerline from the
	// start of the stroke (including a square start cap).
	Advancement float32
}

// FillOptions configures fill tessellation.
type FillOptions struct {
	Tolerance float32
}

// DefaultFillOptions returns fill options with the default tolerance.
func DefaultFillOptions() FillOptions {
	return FillOptions{Tolerance: DefaultTolerance}
}

// StrokeOptions configures stroke tessellation.
type StrokeOptions struct {
	Width      float32
	Tolerance  float32
	MiterLimit float32
	Cap        LineCap
	Join       LineJoin
}

// DefaultStrokeOptions returns a 1 unit wide stroke with butt caps and
// miter joins.
func DefaultStrokeOptions() StrokeOptions {
	return StrokeOptions{
		Width:      1,
		Tolerance:  DefaultTolerance,
		MiterLimit: DefaultMiterLimit,
		Cap:        CapButt,
		Join:       JoinMiter,
	}
}

func (o StrokeOptions) validate() error {
	if !positive(o.Width) || !positive(o.Tolerance) {
		return ErrInvalidOptions
	}
	if o.Join == JoinMiter && !(o.MiterLimit >= 1) {
		return ErrInvalidOptions
	}
	return nil
}

// VertexBuffers accumulates tessellated vertices and triangle indices.
type VertexBuffers[V any] struct {
	Vertices []V
	Indices  []uint32
}

// appendFrom appends src to b with indices rebased past b's vertices.
func (b *VertexBuffers[V]) appendFrom(src *VertexBuffers[V]) {
	base := uint32(len(b.Vertices))
	b.Vertices = append(b.Vertices, src.Vertices...)
	for _, i := range src.Indices {
		b.Indices = append(b.Indices, base+i)
	}
}

func positive(f float32) bool {
	return f > 0 && !math32.IsInf(f, 1)
}

func finite(p ms2.Vec) bool {
	return !math32.IsNaN(p.X) && !math32.IsNaN(p.Y) &&
		!math32.IsInf(p.X, 0) && !math32.IsInf(p.Y, 0)
}

func cross(a, b ms2.Vec) float32 {
	return a.X*b.Y - a.Y*b.X
}

// perp rotates v by +90°.
func perp(v ms2.Vec) ms2.Vec {
	return ms2.Vec{X: -v.Y, Y: v.X}
}

func unit(v ms2.Vec) ms2.Vec {
	n := ms2.Norm(v)
	if n == 0 {
		return ms2.Vec{}
	}
	return ms2.Scale(1/n, v)
}

// samePoint reports whether a and b coincide up to float32 rounding noise,
// e.g. the end of a full-turn arc and its start.
func samePoint(a, b ms2.Vec) bool {
	scale := 1 + math32.Max(math32.Max(math32.Abs(a.X), math32.Abs(a.Y)),
		math32.Max(math32.Abs(b.X), math32.Abs(b.Y)))
	eps := 1e-6 * scale
	return math32.Abs(a.X-b.X) <= eps && math32.Abs(a.Y-b.Y) <= eps
}

// dedupe drops consecutive duplicate points, and for closed contours
// trailing points equal to the first one.
func dedupe(points []ms2.Vec, closed bool) []ms2.Vec {
	out := make([]ms2.Vec, 0, len(points))
	for _, p := range points {
		if len(out) > 0 && samePoint(out[len(out)-1], p) {
			continue
		}
		out = append(out, p)
	}
	if closed {
		for len(out) > 1 && samePoint(out[len(out)-1], out[0]) {
			out = out[:len(out)-1]
		}
	}
	return out
}
