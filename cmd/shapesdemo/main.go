// Command shapesdemo builds one of every shape kind, logs their buffer
// sizes and writes a PNG preview.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal/noop"
	"github.com/soypat/glgl/math/ms2"

	"github.com/gogpu/shapes"
	"github.com/gogpu/shapes/batch"
	"github.com/gogpu/shapes/gpumesh"
	"github.com/gogpu/shapes/preview"
)

func main() {
	var (
		width   = flag.Int("width", 800, "image width")
		height  = flag.Int("height", 400, "image height")
		output  = flag.String("output", "shapes.png", "output file")
		workers = flag.Int("workers", 0, "build goroutines (0 = GOMAXPROCS)")
		outline = flag.Float64("outline", 0, "stroke width for shapes that are filled by default (0 fills them)")
		upload  = flag.Bool("upload", false, "upload every mesh to a noop GPU device")
		verbose = flag.Bool("v", false, "log every build")
	)
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	shapes.SetLogger(logger)

	builders := showcase(float32(*outline))
	start := time.Now()
	polys, err := batch.Build(context.Background(), builders, batch.WithWorkers(*workers))
	if err != nil {
		log.Fatalf("build: %v", err)
	}

	var vertices, triangles int
	for i, p := range polys {
		vertices += len(p.Vertices)
		triangles += p.TriangleCount()
		logger.Debug("shape", "kind", builders[i].Kind(), "vertices", len(p.Vertices), "triangles", p.TriangleCount())
	}
	logger.Info("built showcase",
		"shapes", len(polys), "vertices", vertices, "triangles", triangles,
		"elapsed", time.Since(start))

	if *upload {
		if err := uploadAll(polys); err != nil {
			log.Fatalf("upload: %v", err)
		}
	}

	img := preview.Render(polys, preview.WithSize(*width, *height), preview.WithPadding(16))
	if err := preview.SavePNG(*output, img); err != nil {
		log.Fatalf("Failed to save: %v", err)
	}
	log.Printf("Demo saved to %s (%dx%d)\n", *output, *width, *height)
}

// showcase lays out one shape of every kind on a grid of 100 unit cells.
// A positive outline strokes the shapes that are filled by default.
func showcase(outline float32) []shapes.Builder {
	cell := func(col, row int, dx, dy float32) ms2.Vec {
		return ms2.Vec{X: float32(col)*100 + 50 + dx, Y: float32(row)*100 + 50 + dy}
	}
	palette := []string{"tomato", "gold", "seagreen", "steelblue", "orchid", "coral", "slateblue", "teal"}
	color := func(i int) shapes.RGBA {
		c, _ := shapes.Named(palette[i%len(palette)])
		return c
	}
	paint := func(i int) shapes.Options {
		o := shapes.DefaultOptions().WithColor(color(i))
		if outline > 0 {
			o = o.WithStroke(outline)
		}
		return o
	}

	path := shapes.NewPath().
		MoveTo(cell(3, 0, -40, -40)).
		LineTo(cell(3, 0, 40, -40)).
		QuadTo(cell(3, 0, 40, 40), cell(3, 0, -40, 40)).
		Close()

	return []shapes.Builder{
		shapes.Circle().WithCenter(cell(0, 0, 0, 0)).WithRadius(40).WithOptions(paint(0)),
		shapes.Hexagon().WithCenter(cell(1, 0, 0, 0)).WithRadius(40).WithOptions(paint(1)),
		shapes.Bezier(cell(2, 0, -40, 0),
			shapes.CubicSegment(cell(2, 0, -20, 60), cell(2, 0, 20, -60), cell(2, 0, 40, 0)),
		).WithStrokeOpen(4).WithColor(color(2)),
		shapes.PathShape(path).WithOptions(paint(3)),
		shapes.Pentagram().WithCenter(cell(4, 0, 0, 0)).WithRadius(40).WithOptions(paint(4)),
		shapes.Hexagram().WithCenter(cell(5, 0, 0, 0)).WithRadius(40).WithOptions(paint(5)),
		shapes.RoundRect(ms2.Box{Min: cell(0, 1, -40, -30), Max: cell(0, 1, 40, 30)}).
			WithRadius(12).WithStepsPerRadius(1).WithOptions(paint(6)),
		shapes.LineSegment(cell(1, 1, -40, -40), cell(1, 1, 40, 40)).
			WithStroke(6).WithColor(color(7).Lerp(shapes.White, 0.3)),
		shapes.FreePoly(
			cell(2, 1, -40, -40),
			cell(2, 1, 40, -40),
			cell(2, 1, 0, 0),
			cell(2, 1, 40, 40),
			cell(2, 1, -40, 40),
		).WithOptions(paint(0)),
		shapes.Octagon().WithCenter(cell(3, 1, 0, 0)).WithRadius(40).WithStroke(5).WithColor(color(1)),
		shapes.Star(7).WithCenter(cell(4, 1, 0, 0)).WithRadius(40).WithInnerRatio(0.6).WithOptions(paint(2)),
		shapes.Triangle().WithCenter(cell(5, 1, 0, 0)).WithRadius(40).WithStartAngle(shapes.South).
			WithStrokeOptions(shapes.DefaultStrokeOptions().WithWidth(6).WithJoin(shapes.JoinBevel)).
			WithColor(color(3)),
	}
}

func uploadAll(polys []shapes.Poly) error {
	api := noop.API{}
	instance, err := api.CreateInstance(nil)
	if err != nil {
		return err
	}
	defer instance.Destroy()
	adapters := instance.EnumerateAdapters(nil)
	if len(adapters) == 0 {
		return fmt.Errorf("no adapters")
	}
	openDev, err := adapters[0].Adapter.Open(0, gputypes.DefaultLimits())
	if err != nil {
		return err
	}
	defer openDev.Device.Destroy()

	for _, p := range polys {
		mesh, err := gpumesh.Upload(openDev.Device, openDev.Queue, p)
		if err != nil {
			return err
		}
		mesh.Destroy()
	}
	return nil
}
