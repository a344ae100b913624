package shapes

import (
	"errors"
	"testing"

	"github.com/chewxy/math32"
	"github.com/soypat/glgl/math/ms2"

	"github.com/gogpu/shapes/internal/tess"
)

func TestRoundRectSharpCorners(t *testing.T) {
	rect := ms2.Box{Min: vec(-5, 2), Max: vec(15, 12)}
	pts := RoundRect(rect).Points()
	want := []ms2.Vec{vec(-5, 2), vec(15, 2), vec(15, 12), vec(-5, 12)}
	if len(pts) != len(want) {
		t.Fatalf("points = %v, want %v", pts, want)
	}
	for i := range want {
		if pts[i] != want[i] {
			t.Errorf("point %d = %v, want %v", i, pts[i], want[i])
		}
	}
	p := RoundRect(rect).Build()
	if len(p.Vertices) != 4 || len(p.Indices) != 6 {
		t.Errorf("got %d vertices, %d indices, want 4, 6", len(p.Vertices), len(p.Indices))
	}
}

func TestRoundRectArcSampling(t *testing.T) {
	rect := ms2.Box{Max: vec(100, 50)}
	tests := []struct {
		name  string
		b     *RoundRectBuilder
		count int
	}{
		{"uniform", RoundRect(rect).WithRadius(10), 4 * 11},
		{"half density", RoundRect(rect).WithRadius(10).WithStepsPerRadius(0.5), 4 * 6},
		{"one sharp corner", RoundRect(rect).WithRadii(CornerRadii{BottomLeft: 0, BottomRight: 10, TopRight: 10, TopLeft: 10}), 1 + 3*11},
		{"tiny radius", RoundRect(rect).WithRadius(0.1), 4 * 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := len(tt.b.Points()); got != tt.count {
				t.Errorf("len(points) = %d, want %d", got, tt.count)
			}
		})
	}
}

func TestRoundRectStepsClamped(t *testing.T) {
	tests := []struct {
		name string
		b    *RoundRectBuilder
	}{
		{"dense", RoundRect(ms2.Box{Max: vec(400, 400)}).WithRadius(100).WithStepsPerRadius(1e5)},
		{"huge", RoundRect(ms2.Box{Max: vec(1e6, 1e6)}).WithRadius(4e5).WithStepsPerRadius(1e9)},
	}
	want := 4 * (tess.MaxArcSegments + 1)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.b.Err(); err != nil {
				t.Fatalf("Err() = %v", err)
			}
			if got := len(tt.b.Points()); got != want {
				t.Errorf("len(points) = %d, want %d", got, want)
			}
		})
	}
}

func TestRoundRectOutline(t *testing.T) {
	rect := ms2.Box{Max: vec(100, 50)}
	pts := RoundRect(rect).WithRadius(10).Points()
	// Starts on the left edge just above the bottom-left corner and ends on
	// it just below the top-left corner.
	if !nearVec(pts[0], vec(0, 10), eps) {
		t.Errorf("first point = %v, want (0,10)", pts[0])
	}
	if !nearVec(pts[len(pts)-1], vec(0, 40), eps) {
		t.Errorf("last point = %v, want (0,40)", pts[len(pts)-1])
	}
	for i, p := range pts {
		if p.X < -eps || p.X > 100+eps || p.Y < -eps || p.Y > 50+eps {
			t.Errorf("point %d = %v outside rect", i, p)
		}
	}
	// Counter-clockwise: positive signed area close to the rounded area.
	var area float32
	for i := range pts {
		a, b := pts[i], pts[(i+1)%len(pts)]
		area += a.X*b.Y - a.Y*b.X
	}
	area /= 2
	want := 100*50 - (4-math32.Pi)*100
	if math32.Abs(area-want) > 0.01*want {
		t.Errorf("area = %v, want about %v", area, want)
	}
}

func TestRoundRectInvalid(t *testing.T) {
	rect := ms2.Box{Max: vec(100, 50)}
	if err := RoundRect(rect).WithRadius(-1).Err(); !errors.Is(err, ErrInvalidValue) {
		t.Errorf("negative radius: Err() = %v", err)
	}
	if err := RoundRect(ms2.Box{Min: vec(1, 0), Max: vec(0, 1)}).Err(); !errors.Is(err, ErrInvalidValue) {
		t.Errorf("inverted rect: Err() = %v", err)
	}
	if err := RoundRect(rect).WithStepsPerRadius(0).Err(); !errors.Is(err, ErrInvalidValue) {
		t.Errorf("zero steps: Err() = %v", err)
	}

	// Radii are checked against the rect size at build entry.
	b := RoundRect(rect).WithRadius(30)
	if b.Err() != nil {
		t.Errorf("Err() = %v before build", b.Err())
	}
	_, err := b.TryBuild()
	var ce *ConfigError
	if !errors.As(err, &ce) || ce.Field != "corner radius" {
		t.Errorf("TryBuild err = %v, want corner radius error", err)
	}
}

func TestRoundRectStroke(t *testing.T) {
	p := RoundRect(ms2.Box{Max: vec(40, 20)}).WithRadius(5).WithStroke(2).Build()
	checkStrokeUV(t, p)
	checkIndices(t, p)
	// The closed seam repeats the first cross-section at the full length.
	n := len(p.Vertices)
	if !nearVec(p.Vertices[0].Position, p.Vertices[n-2].Position, eps) {
		t.Errorf("seam vertex %v does not repeat first vertex %v", p.Vertices[n-2].Position, p.Vertices[0].Position)
	}
	perimeter := 2*(40+20) - (8-2*math32.Pi)*5
	if got := p.Vertices[n-1].TexCoord.Y * 2; math32.Abs(got-perimeter) > 0.02*perimeter {
		t.Errorf("stroke length = %v, want about %v", got, perimeter)
	}
}
