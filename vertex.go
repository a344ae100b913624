package shapes

import (
	"github.com/soypat/glgl/math/ms2"

	"github.com/gogpu/shapes/internal/tess"
)

// Vertex is a single vertex of a Poly.
type Vertex struct {
	Position ms2.Vec
	// TexCoord is in [0,1]×[0,1/aspect] over the shape's bounding box for
	// fills. For strokes X is 1 on the left edge and 0 on the right edge,
	// and Y grows with the distance along the stroke.
	TexCoord ms2.Vec
	Color    RGBA
}

// fillVertexConstructor maps tessellated fill vertices into the shape's
// bounding box.
type fillVertexConstructor struct {
	color  RGBA
	origin ms2.Vec
	size   ms2.Vec
	aspect float32
}

func newFillVertexConstructor(color RGBA, bounds ms2.Box, aspect float32) fillVertexConstructor {
	return fillVertexConstructor{
		color:  color,
		origin: bounds.Min,
		size:   ms2.Sub(bounds.Max, bounds.Min),
		aspect: aspect,
	}
}

func (c fillVertexConstructor) vertex(v tess.FillVertex) Vertex {
	rel := ms2.Sub(v.Position, c.origin)
	// A zero extent on an axis maps the whole axis to 0.
	var tex ms2.Vec
	if c.size.X > 0 {
		tex.X = rel.X / c.size.X
	}
	if c.size.Y > 0 {
		tex.Y = rel.Y / c.size.Y / c.aspect
	}
	return Vertex{Position: v.Position, TexCoord: tex, Color: c.color}
}

// strokeVertexConstructor maps tessellated stroke vertices into ribbon
// space.
type strokeVertexConstructor struct {
	color  RGBA
	width  float32
	aspect float32
}

func (c strokeVertexConstructor) vertex(v tess.StrokeVertex) Vertex {
	var x float32
	if v.Side == tess.SideLeft {
		x = 1
	}
	y := v.Advancement / c.width * c.aspect
	return Vertex{Position: v.Position, TexCoord: ms2.Vec{X: x, Y: y}, Color: c.color}
}
