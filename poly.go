package shapes

import (
	"github.com/soypat/glgl/math/ms2"

	"github.com/gogpu/shapes/internal/tess"
)

// DefaultRadius is the radius of circles, polygons and stars that are not
// given one.
const DefaultRadius = 50

// Poly is the output of a build: a vertex buffer and triangle list indices
// into it.
type Poly struct {
	Vertices []Vertex
	Indices  []uint32
}

// TriangleCount returns the number of triangles in the index buffer.
func (p Poly) TriangleCount() int {
	return len(p.Indices) / 3
}

// IsEmpty reports whether the Poly has no triangles.
func (p Poly) IsEmpty() bool {
	return len(p.Indices) == 0
}

// Bounds returns the bounding box of all vertex positions.
func (p Poly) Bounds() ms2.Box {
	var b boundsAcc
	for _, v := range p.Vertices {
		b.add(v.Position)
	}
	return b.box
}

// Builder is implemented by every shape builder in this package.
type Builder interface {
	// Kind returns the shape kind, e.g. "circle".
	Kind() string
	// Options returns the current rendering options.
	Options() Options
	// Err returns the first configuration error recorded, or nil.
	Err() error

	base() *builderBase
	geometry() (geometry, error)
}

// geometry is what a builder hands to assembly: either a polyline or a path.
type geometry struct {
	points []ms2.Vec
	path   *Path
	closed bool
	// bounds is the box fill texture coordinates are normalized against.
	bounds   ms2.Box
	fillable bool
}

// TryBuild tessellates the shape described by b. The builder is consumed:
// building it again returns an error wrapping ErrConsumed.
//
// Configuration errors are returned as *ConfigError before any geometry is
// generated. Tessellator failures are returned as *TessellationError. On
// error no Poly is produced.
func TryBuild(b Builder) (Poly, error) {
	base := b.base()
	if base.consumed {
		return Poly{}, &ConfigError{Shape: base.kind, Field: "builder", Value: "consumed", Err: ErrConsumed}
	}
	base.consumed = true
	if err := base.Err(); err != nil {
		return Poly{}, err
	}
	g, err := b.geometry()
	if err != nil {
		return Poly{}, err
	}
	return assemble(base.kind, base.opts, g)
}

// Build is like TryBuild but panics on error.
func Build(b Builder) Poly {
	p, err := TryBuild(b)
	if err != nil {
		panic(err)
	}
	return p
}

// assemble runs exactly one tessellation pass selected by the mode.
func assemble(kind string, opts Options, g geometry) (Poly, error) {
	var (
		buf tess.VertexBuffers[Vertex]
		err error
	)
	switch opts.Mode() {
	case ModeFill:
		if !g.fillable {
			return Poly{}, &ConfigError{Shape: kind, Field: "mode", Value: ModeFill, Err: ErrFillUnsupported}
		}
		fo := opts.FillOptions()
		ctor := newFillVertexConstructor(opts.Color(), g.bounds, fo.TextureAspectRatio)
		to := tess.FillOptions{Tolerance: fo.Tolerance}
		if g.path != nil {
			err = tess.FillPath(g.path.tess(), to, &buf, ctor.vertex)
		} else {
			err = tess.FillPolyline(g.points, to, &buf, ctor.vertex)
		}
	case ModeStroke:
		so := opts.StrokeOptions()
		ctor := strokeVertexConstructor{color: opts.Color(), width: so.Width, aspect: so.TextureAspectRatio}
		to := so.tess(opts.Tolerance())
		if g.path != nil {
			err = tess.StrokePath(g.path.tess(), to, &buf, ctor.vertex)
		} else {
			err = tess.StrokePolyline(g.points, g.closed, to, &buf, ctor.vertex)
		}
	}
	if err != nil {
		Logger().Warn("shapes: tessellation failed",
			"shape", kind, "mode", opts.Mode().String(), "err", err)
		return Poly{}, &TessellationError{Shape: kind, Mode: opts.Mode(), Err: err}
	}
	Logger().Debug("shapes: built",
		"shape", kind, "mode", opts.Mode().String(),
		"vertices", len(buf.Vertices), "indices", len(buf.Indices))
	return Poly{Vertices: buf.Vertices, Indices: buf.Indices}, nil
}
