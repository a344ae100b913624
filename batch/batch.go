package batch

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"time"

	"github.com/gogpu/shapes"
	"github.com/gogpu/shapes/internal/parallel"
)

// ErrNilBuilder is returned by Build for a nil entry in its builder list.
var ErrNilBuilder = errors.New("batch: nil builder")

// Option configures Build.
type Option func(*config)

type config struct {
	workers int
}

// WithWorkers sets the number of goroutines Build uses. Zero or a negative
// value means GOMAXPROCS.
func WithWorkers(n int) Option {
	return func(c *config) {
		c.workers = n
	}
}

// Build tessellates every builder and returns the polygons in the order of
// builders. Builders are consumed exactly as by shapes.TryBuild, and each
// one is used by a single goroutine. A builder listed twice is rejected
// with an error wrapping shapes.ErrConsumed before anything is built. A nil
// builder, typed or untyped, fails its job instead of crashing a worker.
//
// On failure Build returns the first error encountered, wrapped with the
// index and kind of the failing builder, and no polygons. Builds that have
// not started when an error occurs or ctx ends are skipped.
func Build(ctx context.Context, builders []shapes.Builder, opts ...Option) ([]shapes.Poly, error) {
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}
	if len(builders) == 0 {
		return nil, ctx.Err()
	}
	seen := make(map[shapes.Builder]int, len(builders))
	for i, b := range builders {
		if b == nil {
			continue
		}
		if j, ok := seen[b]; ok {
			return nil, fmt.Errorf("batch: builder %d repeats builder %d: %w", i, j, shapes.ErrConsumed)
		}
		seen[b] = i
	}

	pool := parallel.NewWorkerPool(min(workers(cfg.workers), len(builders)))
	defer pool.Close()

	start := time.Now()
	polys := make([]shapes.Poly, len(builders))
	err := pool.Map(ctx, len(builders), func(_ context.Context, i int) error {
		p, err := buildOne(i, builders[i])
		if err != nil {
			return err
		}
		polys[i] = p
		return nil
	})
	if err != nil {
		shapes.Logger().Warn("batch: build failed", "shapes", len(builders), "err", err)
		return nil, err
	}
	shapes.Logger().Debug("batch: built",
		"shapes", len(builders), "workers", pool.Workers(), "elapsed", time.Since(start))
	return polys, nil
}

// buildOne builds b, turning a panic from a typed nil builder into an
// error so the worker goroutine survives.
func buildOne(i int, b shapes.Builder) (p shapes.Poly, err error) {
	if b == nil {
		return p, fmt.Errorf("batch: builder %d: %w", i, ErrNilBuilder)
	}
	defer func() {
		if r := recover(); r != nil {
			p, err = shapes.Poly{}, fmt.Errorf("batch: builder %d: %w: %v", i, ErrNilBuilder, r)
		}
	}()
	p, err = shapes.TryBuild(b)
	if err != nil {
		return p, fmt.Errorf("batch: builder %d (%s): %w", i, b.Kind(), err)
	}
	return p, nil
}

func workers(n int) int {
	if n > 0 {
		return n
	}
	return runtime.GOMAXPROCS(0)
}
