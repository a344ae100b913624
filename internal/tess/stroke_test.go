package tess

import (
	"errors"
	"testing"

	"github.com/chewxy/math32"
	"github.com/soypat/glgl/math/ms2"
)

func strokeIdentity(v StrokeVertex) StrokeVertex { return v }

func strokeWidth(w float32) StrokeOptions {
	o := DefaultStrokeOptions()
	o.Width = w
	return o
}

func near(a, b ms2.Vec) bool {
	return math32.Abs(a.X-b.X) < 1e-4 && math32.Abs(a.Y-b.Y) < 1e-4
}

func TestStrokeSegment(t *testing.T) {
	var buf VertexBuffers[StrokeVertex]
	if err := StrokePolyline([]ms2.Vec{v(0, 0), v(10, 0)}, false, strokeWidth(2), &buf, strokeIdentity); err != nil {
		t.Fatalf("StrokePolyline: %v", err)
	}
	want := []StrokeVertex{
		{Position: v(0, 1), Side: SideLeft, Advancement: 0},
		{Position: v(0, -1), Side: SideRight, Advancement: 0},
		{Position: v(10, 1), Side: SideLeft, Advancement: 10},
		{Position: v(10, -1), Side: SideRight, Advancement: 10},
	}
	if len(buf.Vertices) != len(want) {
		t.Fatalf("len(vertices) = %d, want %d", len(buf.Vertices), len(want))
	}
	for i, w := range want {
		got := buf.Vertices[i]
		if !near(got.Position, w.Position) || got.Side != w.Side || got.Advancement != w.Advancement {
			t.Errorf("vertex %d = %+v, want %+v", i, got, w)
		}
	}
	if len(buf.Indices) != 6 {
		t.Errorf("len(indices) = %d, want 6", len(buf.Indices))
	}
}

func TestStrokeSquareCap(t *testing.T) {
	opts := strokeWidth(2)
	opts.Cap = CapSquare
	var buf VertexBuffers[StrokeVertex]
	if err := StrokePolyline([]ms2.Vec{v(0, 0), v(10, 0)}, false, opts, &buf, strokeIdentity); err != nil {
		t.Fatalf("StrokePolyline: %v", err)
	}
	first, last := buf.Vertices[0], buf.Vertices[len(buf.Vertices)-1]
	if !near(first.Position, v(-1, 1)) || first.Advancement != 0 {
		t.Errorf("first vertex = %+v, want (-1,1) at 0", first)
	}
	if !near(last.Position, v(11, -1)) || last.Advancement != 12 {
		t.Errorf("last vertex = %+v, want (11,-1) at 12", last)
	}
}

func TestStrokeJoins(t *testing.T) {
	corner := []ms2.Vec{v(0, 0), v(10, 0), v(10, 10)}
	sharp := []ms2.Vec{v(0, 0), v(10, 0), v(0, 1)}
	bevel := strokeWidth(2)
	bevel.Join = JoinBevel
	tests := []struct {
		name     string
		pts      []ms2.Vec
		opts     StrokeOptions
		vertices int
		indices  int
	}{
		{"miter", corner, strokeWidth(2), 6, 12},
		{"bevel", corner, bevel, 7, 15},
		{"miter limit", sharp, strokeWidth(2), 7, 15},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf VertexBuffers[StrokeVertex]
			if err := StrokePolyline(tt.pts, false, tt.opts, &buf, strokeIdentity); err != nil {
				t.Fatalf("StrokePolyline: %v", err)
			}
			if len(buf.Vertices) != tt.vertices || len(buf.Indices) != tt.indices {
				t.Errorf("got %d vertices, %d indices, want %d, %d",
					len(buf.Vertices), len(buf.Indices), tt.vertices, tt.indices)
			}
		})
	}
}

func TestStrokeMiterCorner(t *testing.T) {
	var buf VertexBuffers[StrokeVertex]
	pts := []ms2.Vec{v(0, 0), v(10, 0), v(10, 10)}
	if err := StrokePolyline(pts, false, strokeWidth(2), &buf, strokeIdentity); err != nil {
		t.Fatalf("StrokePolyline: %v", err)
	}
	left, right := buf.Vertices[2], buf.Vertices[3]
	if !near(left.Position, v(9, 1)) || left.Side != SideLeft {
		t.Errorf("inner corner = %+v, want (9,1) left", left)
	}
	if !near(right.Position, v(11, -1)) || right.Side != SideRight {
		t.Errorf("outer corner = %+v, want (11,-1) right", right)
	}
	if left.Advancement != 10 {
		t.Errorf("corner advancement = %v, want 10", left.Advancement)
	}
}

func TestStrokeClosedSeam(t *testing.T) {
	var buf VertexBuffers[StrokeVertex]
	pts := []ms2.Vec{v(0, 0), v(10, 0), v(10, 10), v(0, 10)}
	if err := StrokePolyline(pts, true, strokeWidth(2), &buf, strokeIdentity); err != nil {
		t.Fatalf("StrokePolyline: %v", err)
	}
	if len(buf.Vertices) != 10 || len(buf.Indices) != 24 {
		t.Fatalf("got %d vertices, %d indices, want 10, 24", len(buf.Vertices), len(buf.Indices))
	}
	n := len(buf.Vertices)
	for i := range 2 {
		start, end := buf.Vertices[i], buf.Vertices[n-2+i]
		if !near(start.Position, end.Position) || start.Side != end.Side {
			t.Errorf("seam vertex %d = %+v, want copy of %+v", i, end, start)
		}
		if end.Advancement != 40 {
			t.Errorf("seam advancement = %v, want 40", end.Advancement)
		}
	}
}

func TestStrokeAdvancementMonotonic(t *testing.T) {
	var buf VertexBuffers[StrokeVertex]
	bevel := strokeWidth(3)
	bevel.Join = JoinBevel
	if err := StrokePolyline(starPoints(5, 40, 15), true, bevel, &buf, strokeIdentity); err != nil {
		t.Fatalf("StrokePolyline: %v", err)
	}
	var prev float32
	for i, vert := range buf.Vertices {
		if vert.Advancement < prev {
			t.Fatalf("vertex %d advancement %v < previous %v", i, vert.Advancement, prev)
		}
		prev = vert.Advancement
	}
	for _, i := range buf.Indices {
		if int(i) >= len(buf.Vertices) {
			t.Fatalf("index %d out of range", i)
		}
	}
}

func TestStrokePathRestartsAdvancement(t *testing.T) {
	elems := []PathElement{
		MoveTo{v(0, 0)}, LineTo{v(5, 0)},
		MoveTo{v(0, 10)}, LineTo{v(7, 10)},
	}
	var buf VertexBuffers[StrokeVertex]
	if err := StrokePath(elems, strokeWidth(1), &buf, strokeIdentity); err != nil {
		t.Fatalf("StrokePath: %v", err)
	}
	if len(buf.Vertices) != 8 {
		t.Fatalf("len(vertices) = %d, want 8", len(buf.Vertices))
	}
	if got := buf.Vertices[4].Advancement; got != 0 {
		t.Errorf("second subpath starts at %v, want 0", got)
	}
	if got := buf.Vertices[7].Advancement; got != 7 {
		t.Errorf("second subpath ends at %v, want 7", got)
	}
}

func TestStrokeErrors(t *testing.T) {
	nan := math32.NaN()
	noLimit := strokeWidth(1)
	noLimit.MiterLimit = 0.5
	tests := []struct {
		name string
		pts  []ms2.Vec
		opts StrokeOptions
		want error
	}{
		{"one point", []ms2.Vec{v(1, 1)}, strokeWidth(1), ErrTooFewPoints},
		{"repeated point", []ms2.Vec{v(1, 1), v(1, 1)}, strokeWidth(1), ErrTooFewPoints},
		{"zero width", []ms2.Vec{v(0, 0), v(1, 1)}, strokeWidth(0), ErrInvalidOptions},
		{"miter limit", []ms2.Vec{v(0, 0), v(1, 1)}, noLimit, ErrInvalidOptions},
		{"NaN", []ms2.Vec{v(0, 0), v(nan, 1)}, strokeWidth(1), ErrInvalidNumber},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf VertexBuffers[StrokeVertex]
			err := StrokePolyline(tt.pts, false, tt.opts, &buf, strokeIdentity)
			if !errors.Is(err, tt.want) {
				t.Errorf("err = %v, want %v", err, tt.want)
			}
			if len(buf.Vertices) != 0 {
				t.Errorf("output modified on error")
			}
		})
	}
}
