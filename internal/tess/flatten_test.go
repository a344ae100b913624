package tess

import (
	"errors"
	"testing"

	"github.com/chewxy/math32"
	"github.com/soypat/glgl/math/ms2"
)

func v(x, y float32) ms2.Vec { return ms2.Vec{X: x, Y: y} }

func TestFlattenLines(t *testing.T) {
	elems := []PathElement{
		MoveTo{v(0, 0)},
		LineTo{v(10, 0)},
		LineTo{v(10, 10)},
		Close{},
		MoveTo{v(20, 0)},
		LineTo{v(30, 0)},
	}
	contours, err := Flatten(elems, DefaultTolerance)
	if err != nil {
		t.Fatalf("Flatten: %v", err)
	}
	if len(contours) != 2 {
		t.Fatalf("len(contours) = %d, want 2", len(contours))
	}
	if !contours[0].Closed || len(contours[0].Points) != 3 {
		t.Errorf("contour 0 = %+v, want 3 closed points", contours[0])
	}
	if contours[1].Closed || len(contours[1].Points) != 2 {
		t.Errorf("contour 1 = %+v, want 2 open points", contours[1])
	}
}

func TestFlattenQuadEndpoints(t *testing.T) {
	elems := []PathElement{
		MoveTo{v(0, 0)},
		QuadTo{Control: v(50, 100), Point: v(100, 0)},
	}
	contours, err := Flatten(elems, 0.1)
	if err != nil {
		t.Fatalf("Flatten: %v", err)
	}
	pts := contours[0].Points
	if len(pts) < 8 {
		t.Errorf("len(points) = %d, want a subdivided curve", len(pts))
	}
	if pts[0] != v(0, 0) || pts[len(pts)-1] != v(100, 0) {
		t.Errorf("endpoints = %v, %v, want (0,0), (100,0)", pts[0], pts[len(pts)-1])
	}
	// The apex of this quad is (50, 50); the polyline must get close to it.
	var top float32
	for _, p := range pts {
		top = math32.Max(top, p.Y)
	}
	if math32.Abs(top-50) > 0.5 {
		t.Errorf("max y = %v, want about 50", top)
	}
}

func TestFlattenCubic(t *testing.T) {
	elems := []PathElement{
		MoveTo{v(0, 0)},
		CubicTo{Control1: v(0, 100), Control2: v(100, 100), Point: v(100, 0)},
	}
	coarse, err := Flatten(elems, 5)
	if err != nil {
		t.Fatalf("Flatten: %v", err)
	}
	fine, err := Flatten(elems, 0.01)
	if err != nil {
		t.Fatalf("Flatten: %v", err)
	}
	if len(fine[0].Points) <= len(coarse[0].Points) {
		t.Errorf("fine tolerance gave %d points, coarse %d; want more for fine",
			len(fine[0].Points), len(coarse[0].Points))
	}
}

func TestFlattenArc(t *testing.T) {
	const r = 10
	elems := []PathElement{ArcTo{Center: v(5, 5), Radius: r, Start: 0, Sweep: 2 * math32.Pi}}
	contours, err := Flatten(elems, 0.1)
	if err != nil {
		t.Fatalf("Flatten: %v", err)
	}
	pts := contours[0].Points
	if want := ArcSegments(r, 2*math32.Pi, 0.1) + 1; len(pts) != want {
		t.Errorf("len(points) = %d, want %d", len(pts), want)
	}
	if pts[0] != v(15, 5) {
		t.Errorf("first point = %v, want (15,5)", pts[0])
	}
	for i, p := range pts {
		if d := ms2.Norm(ms2.Sub(p, v(5, 5))); math32.Abs(d-r) > 1e-4 {
			t.Errorf("point %d at distance %v, want %v", i, d, r)
		}
	}
}

func TestArcSegmentsTolerance(t *testing.T) {
	tests := []struct {
		radius, sweep, tol float32
	}{
		{10, 2 * math32.Pi, 0.1},
		{100, math32.Pi, 0.01},
		{1, math32.Pi / 2, 0.5},
		{50, 2 * math32.Pi, 0.1},
	}
	for _, tt := range tests {
		n := ArcSegments(tt.radius, tt.sweep, tt.tol)
		if n < 1 {
			t.Fatalf("ArcSegments(%v, %v, %v) = %d", tt.radius, tt.sweep, tt.tol, n)
		}
		step := tt.sweep / float32(n)
		sagitta := tt.radius * (1 - math32.Cos(step/2))
		if sagitta > tt.tol*1.001 {
			t.Errorf("ArcSegments(%v, %v, %v) = %d: sagitta %v exceeds tolerance",
				tt.radius, tt.sweep, tt.tol, n, sagitta)
		}
	}
	if n := ArcSegments(0, math32.Pi, 0.1); n != 1 {
		t.Errorf("ArcSegments with zero radius = %d, want 1", n)
	}
}

func TestFlattenErrors(t *testing.T) {
	if _, err := Flatten([]PathElement{MoveTo{v(0, 0)}}, 0); !errors.Is(err, ErrInvalidOptions) {
		t.Errorf("zero tolerance: err = %v, want ErrInvalidOptions", err)
	}
	nan := math32.NaN()
	if _, err := Flatten([]PathElement{MoveTo{v(0, 0)}, LineTo{v(nan, 1)}}, 0.1); !errors.Is(err, ErrInvalidNumber) {
		t.Errorf("NaN point: err = %v, want ErrInvalidNumber", err)
	}
}
