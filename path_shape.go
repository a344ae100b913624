package shapes

import "github.com/soypat/glgl/math/ms2"

// PathShapeBuilder builds an arbitrary Path. Fill texture coordinates are
// normalized against the box of the path's points and control points.
type PathShapeBuilder struct {
	configurable[*PathShapeBuilder]
	path *Path
}

// PathShape returns a builder for p. Every subpath is filled as a separate
// simple contour.
func PathShape(p *Path) *PathShapeBuilder {
	b := &PathShapeBuilder{path: p}
	b.init(b, "path", DefaultOptions())
	if p == nil || p.Len() == 0 {
		b.fail("path", p, ErrInvalidValue)
	}
	return b
}

// Path returns the path.
func (b *PathShapeBuilder) Path() *Path { return b.path }

// BoundingBox returns the path's control point bounds.
func (b *PathShapeBuilder) BoundingBox() ms2.Box {
	if b.path == nil {
		return ms2.Box{}
	}
	return b.path.Bounds()
}

func (b *PathShapeBuilder) geometry() (geometry, error) {
	return geometry{path: b.path, bounds: b.path.Bounds(), fillable: true}, nil
}
