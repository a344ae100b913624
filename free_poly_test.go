package shapes

import (
	"errors"
	"testing"

	"github.com/chewxy/math32"
	"github.com/soypat/glgl/math/ms2"
)

func TestFreePolyBounds(t *testing.T) {
	b := FreePoly()
	if b.Bounds() != (ms2.Box{}) {
		t.Errorf("empty Bounds() = %v", b.Bounds())
	}
	steps := []struct {
		p        ms2.Vec
		min, max ms2.Vec
	}{
		{vec(1, 2), vec(1, 2), vec(1, 2)},
		{vec(-3, 5), vec(-3, 2), vec(1, 5)},
		{vec(4, -1), vec(-3, -1), vec(4, 5)},
		{vec(0, 0), vec(-3, -1), vec(4, 5)},
	}
	for i, s := range steps {
		b.WithPoint(s.p)
		got := b.Bounds()
		if got.Min != s.min || got.Max != s.max {
			t.Errorf("after point %d: Bounds() = %v, want %v-%v", i, got, s.min, s.max)
		}
	}
	if len(b.Points()) != 4 {
		t.Errorf("len(Points()) = %d, want 4", len(b.Points()))
	}
}

func TestFreePolyFill(t *testing.T) {
	p := FreePoly(vec(0, 0), vec(10, 0), vec(10, 10), vec(5, 3), vec(0, 10)).Build()
	if p.TriangleCount() != 3 {
		t.Errorf("TriangleCount() = %d, want 3", p.TriangleCount())
	}
	checkFillUV(t, p, 1)
	var area float32
	for i := 0; i < len(p.Indices); i += 3 {
		a, b, c := p.Vertices[p.Indices[i]].Position, p.Vertices[p.Indices[i+1]].Position, p.Vertices[p.Indices[i+2]].Position
		area += ((b.X-a.X)*(c.Y-a.Y) - (b.Y-a.Y)*(c.X-a.X)) / 2
	}
	if math32.Abs(area-65) > eps {
		t.Errorf("covered area = %v, want 65", area)
	}
}

func TestFreePolyStrokeOpenClosed(t *testing.T) {
	pts := []ms2.Vec{vec(0, 0), vec(10, 0), vec(10, 10)}
	open := FreePoly(pts...).WithStrokeOpen(2)
	if open.Closed() {
		t.Error("WithStrokeOpen left the outline closed")
	}
	po := open.Build()
	pc := FreePoly(pts...).WithStrokeClosed(2).Build()
	if len(pc.Vertices) <= len(po.Vertices) {
		t.Errorf("closed stroke has %d vertices, open %d; want more for closed", len(pc.Vertices), len(po.Vertices))
	}
	if got := po.Vertices[len(po.Vertices)-1].TexCoord.Y; math32.Abs(got-10) > eps {
		t.Errorf("open end tex y = %v, want 10", got)
	}
}

func TestFreePolyInvalid(t *testing.T) {
	b := FreePoly(vec(0, 0), vec(math32.Inf(1), 0))
	if !errors.Is(b.Err(), ErrInvalidValue) {
		t.Errorf("Err() = %v, want ErrInvalidValue", b.Err())
	}
	if len(b.Points()) != 1 {
		t.Errorf("rejected point was stored")
	}
	_, err := FreePoly(vec(0, 0), vec(1, 0)).TryBuild()
	var te *TessellationError
	if !errors.As(err, &te) {
		t.Errorf("two point fill err = %v, want *TessellationError", err)
	}
}
