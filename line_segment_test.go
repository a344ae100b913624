package shapes

import (
	"errors"
	"testing"
)

func TestLineSegment(t *testing.T) {
	b := LineSegment(vec(0, 0), vec(10, 0))
	if b.Options().Mode() != ModeStroke || b.Options().StrokeOptions().Width != 1 {
		t.Errorf("default options = %+v, want 1 unit stroke", b.Options())
	}
	pts := b.Points()
	if len(pts) != 2 || pts[0] != vec(0, 0) || pts[1] != vec(10, 0) {
		t.Errorf("Points() = %v", pts)
	}
	p := b.WithStroke(2).Build()
	if len(p.Vertices) != 4 || p.TriangleCount() != 2 {
		t.Errorf("got %d vertices, %d triangles, want 4, 2", len(p.Vertices), p.TriangleCount())
	}
	for _, v := range p.Vertices {
		// Left of +X travel is +Y.
		wantX := float32(0)
		if v.Position.Y > 0 {
			wantX = 1
		}
		if v.TexCoord.X != wantX {
			t.Errorf("vertex %v tex x = %v, want %v", v.Position, v.TexCoord.X, wantX)
		}
	}
}

func TestLineSegmentFillRejected(t *testing.T) {
	tests := []struct {
		name string
		b    *LineSegmentBuilder
	}{
		{"WithFill", LineSegment(vec(0, 0), vec(10, 0)).WithFill()},
		{"fill options", LineSegment(vec(0, 0), vec(10, 0)).WithOptions(DefaultOptions())},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.b.TryBuild()
			var ce *ConfigError
			if !errors.As(err, &ce) || !errors.Is(err, ErrFillUnsupported) {
				t.Errorf("err = %v, want *ConfigError with ErrFillUnsupported", err)
			}
		})
	}
}

func TestLineSegmentSquareCap(t *testing.T) {
	s := DefaultStrokeOptions().WithWidth(2).WithCap(CapSquare)
	p := LineSegment(vec(0, 0), vec(10, 0)).WithStrokeOptions(s).Build()
	b := p.Bounds()
	if !nearVec(b.Min, vec(-1, -1), eps) || !nearVec(b.Max, vec(11, 1), eps) {
		t.Errorf("Bounds() = %v, want (-1,-1)-(11,1)", b)
	}
	if got := p.Vertices[len(p.Vertices)-1].TexCoord.Y; got != 6 {
		t.Errorf("end tex y = %v, want 6", got)
	}
}
