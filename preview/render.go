package preview

import (
	"fmt"
	"image"
	"image/draw"
	"image/png"
	"os"

	"github.com/chewxy/math32"
	"github.com/soypat/glgl/math/ms2"
	"golang.org/x/image/vector"

	"github.com/gogpu/shapes"
)

// Render draws polys in order onto a new image.
func Render(polys []shapes.Poly, opts ...Option) *image.RGBA {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	img := image.NewRGBA(image.Rect(0, 0, cfg.width, cfg.height))
	draw.Draw(img, img.Bounds(), image.NewUniform(cfg.background.Color()), image.Point{}, draw.Src)

	frame, ok := cfg.frame, cfg.hasFrame
	if !ok {
		frame, ok = unionBounds(polys)
	}
	if !ok {
		return img
	}
	xf := newTransform(frame, cfg)

	r := vector.NewRasterizer(cfg.width, cfg.height)
	triangles := 0
	for _, p := range polys {
		if p.IsEmpty() {
			continue
		}
		r.Reset(cfg.width, cfg.height)
		for i := 0; i+2 < len(p.Indices); i += 3 {
			a := xf.apply(p.Vertices[p.Indices[i]].Position)
			b := xf.apply(p.Vertices[p.Indices[i+1]].Position)
			c := xf.apply(p.Vertices[p.Indices[i+2]].Position)
			// The rasterizer accumulates signed coverage, so every triangle
			// must wind the same way for overlaps not to cancel out.
			if cross(ms2.Sub(b, a), ms2.Sub(c, a)) < 0 {
				b, c = c, b
			}
			r.MoveTo(a.X, a.Y)
			r.LineTo(b.X, b.Y)
			r.LineTo(c.X, c.Y)
			r.ClosePath()
			triangles++
		}
		col := p.Vertices[p.Indices[0]].Color.Color()
		r.Draw(img, img.Bounds(), image.NewUniform(col), image.Point{})
	}

	shapes.Logger().Info("preview: rendered",
		"polys", len(polys), "triangles", triangles,
		"width", cfg.width, "height", cfg.height)
	return img
}

// SavePNG encodes img as PNG into the named file.
func SavePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("preview: %w", err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("preview: encode %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("preview: %w", err)
	}
	return nil
}

func unionBounds(polys []shapes.Poly) (ms2.Box, bool) {
	var (
		box ms2.Box
		ok  bool
	)
	for _, p := range polys {
		if len(p.Vertices) == 0 {
			continue
		}
		b := p.Bounds()
		if !ok {
			box, ok = b, true
			continue
		}
		box = ms2.Box{Min: ms2.MinElem(box.Min, b.Min), Max: ms2.MaxElem(box.Max, b.Max)}
	}
	return box, ok
}

// transform maps world coordinates to pixels with +Y up.
type transform struct {
	scale   float32
	offset  ms2.Vec
	frameLo ms2.Vec
	height  float32
}

func newTransform(frame ms2.Box, cfg config) transform {
	size := ms2.Sub(frame.Max, frame.Min)
	availW := float32(max(cfg.width-2*cfg.padding, 1))
	availH := float32(max(cfg.height-2*cfg.padding, 1))

	scale := float32(1)
	switch {
	case size.X > 0 && size.Y > 0:
		scale = math32.Min(availW/size.X, availH/size.Y)
	case size.X > 0:
		scale = availW / size.X
	case size.Y > 0:
		scale = availH / size.Y
	}
	return transform{
		scale: scale,
		offset: ms2.Vec{
			X: float32(cfg.width)/2 - size.X*scale/2,
			Y: float32(cfg.height)/2 - size.Y*scale/2,
		},
		frameLo: frame.Min,
		height:  float32(cfg.height),
	}
}

func (t transform) apply(p ms2.Vec) ms2.Vec {
	q := ms2.Add(ms2.Scale(t.scale, ms2.Sub(p, t.frameLo)), t.offset)
	q.Y = t.height - q.Y
	return q
}

func cross(a, b ms2.Vec) float32 {
	return a.X*b.Y - a.Y*b.X
}
