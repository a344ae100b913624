package shapes

import (
	"fmt"

	"github.com/gogpu/shapes/internal/tess"
)

// Mode selects between filling a shape's interior and stroking its outline.
type Mode uint8

const (
	// ModeFill triangulates the interior.
	ModeFill Mode = iota
	// ModeStroke builds a ribbon along the outline.
	ModeStroke
)

// String returns "fill" or "stroke".
func (m Mode) String() string {
	switch m {
	case ModeFill:
		return "fill"
	case ModeStroke:
		return "stroke"
	default:
		return fmt.Sprintf("Mode(%d)", uint8(m))
	}
}

// DefaultTolerance is the default maximum distance between a curve and its
// polyline approximation.
const DefaultTolerance = tess.DefaultTolerance

// FillOptions is the fill-mode view of Options.
type FillOptions struct {
	Tolerance          float32
	TextureAspectRatio float32
}

// Options holds the rendering configuration shared by every shape builder:
// fill or stroke mode, curve tolerance, color and texture aspect ratio.
//
// Options is a value type; start from DefaultOptions. Every With method
// returns an updated copy.
// An invalid argument leaves the previous setting in place and is recorded
// as a sticky error returned by Err; only the first one is kept.
type Options struct {
	mode       Mode
	stroke     StrokeOptions
	tolerance  float32
	color      RGBA
	fillAspect float32
	err        error
}

// DefaultOptions returns fill-mode options with DefaultTolerance, white
// color and texture aspect ratio 1.
func DefaultOptions() Options {
	return Options{
		mode:       ModeFill,
		tolerance:  DefaultTolerance,
		color:      White,
		fillAspect: 1,
	}
}

// Mode returns the current mode.
func (o Options) Mode() Mode { return o.mode }

// Tolerance returns the curve flattening tolerance.
func (o Options) Tolerance() float32 { return o.tolerance }

// Color returns the color copied into every vertex.
func (o Options) Color() RGBA { return o.color }

// Err returns the first configuration error recorded, or nil.
func (o Options) Err() error { return o.err }

func (o Options) fail(err error) Options {
	if o.err == nil {
		o.err = err
	}
	return o
}

// WithFill switches to fill mode, discarding any stroke parameters.
func (o Options) WithFill() Options {
	o.mode = ModeFill
	o.stroke = StrokeOptions{}
	return o
}

// WithStroke switches to stroke mode with the given width. If the options
// are already stroking, only the width changes; otherwise stroking starts
// from DefaultStrokeOptions.
func (o Options) WithStroke(width float32) Options {
	s := o.stroke
	if o.mode != ModeStroke {
		s = DefaultStrokeOptions()
	}
	return o.WithStrokeOptions(s.WithWidth(width))
}

// WithStrokeOptions switches to stroke mode with the given parameters.
func (o Options) WithStrokeOptions(s StrokeOptions) Options {
	if err := s.validate(); err != nil {
		return o.fail(err)
	}
	o.mode = ModeStroke
	o.stroke = s
	return o
}

// WithTolerance sets the curve flattening tolerance. Must be positive.
func (o Options) WithTolerance(t float32) Options {
	if !positive(t) {
		return o.fail(&ConfigError{Field: "tolerance", Value: t, Err: ErrInvalidValue})
	}
	o.tolerance = t
	return o
}

// WithColor sets the color copied into every vertex.
func (o Options) WithColor(c RGBA) Options {
	o.color = c
	return o
}

// WithTextureAspectRatio sets the texture aspect ratio of the active mode.
// Must be positive.
func (o Options) WithTextureAspectRatio(r float32) Options {
	if !positive(r) {
		return o.fail(&ConfigError{Field: "texture aspect ratio", Value: r, Err: ErrInvalidValue})
	}
	if o.mode == ModeStroke {
		o.stroke.TextureAspectRatio = r
	} else {
		o.fillAspect = r
	}
	return o
}

// FillOptions returns the fill parameters. It panics if the options are in
// stroke mode.
func (o Options) FillOptions() FillOptions {
	if o.mode != ModeFill {
		panic("shapes: FillOptions called in " + o.mode.String() + " mode")
	}
	return FillOptions{Tolerance: o.tolerance, TextureAspectRatio: o.fillAspect}
}

// StrokeOptions returns the stroke parameters. It panics if the options are
// in fill mode.
func (o Options) StrokeOptions() StrokeOptions {
	if o.mode != ModeStroke {
		panic("shapes: StrokeOptions called in " + o.mode.String() + " mode")
	}
	return o.stroke
}
