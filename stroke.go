package shapes

import (
	"github.com/chewxy/math32"

	"github.com/gogpu/shapes/internal/tess"
)

// LineCap specifies the shape of open stroke endpoints.
type LineCap uint8

const (
	// CapButt ends the stroke exactly at the endpoint.
	CapButt LineCap = iota
	// CapSquare extends the stroke by half its width past the endpoint.
	CapSquare
)

// LineJoin specifies how consecutive stroke segments connect.
type LineJoin uint8

const (
	// JoinMiter extends the outer edges until they meet. Corners sharper
	// than the miter limit are beveled.
	JoinMiter LineJoin = iota
	// JoinBevel cuts every corner with a straight edge.
	JoinBevel
)

// StrokeOptions configures a stroked outline.
type StrokeOptions struct {
	// Width is the stroke width. Must be positive. Default: 1
	Width float32

	// TextureAspectRatio scales how fast the along-stroke texture
	// coordinate advances: with ratio r, a Width×Width tile spans r units of
	// v. Must be positive. Default: 1
	TextureAspectRatio float32

	// Cap is the shape of open endpoints. Default: CapButt
	Cap LineCap

	// Join is the shape of corners. Default: JoinMiter
	Join LineJoin

	// MiterLimit is the miter length, relative to half the width, above
	// which a miter join becomes a bevel. Default: 4
	MiterLimit float32
}

// DefaultStrokeOptions returns a 1 unit wide stroke with butt caps, miter
// joins and texture aspect ratio 1.
func DefaultStrokeOptions() StrokeOptions {
	return StrokeOptions{
		Width:              1,
		TextureAspectRatio: 1,
		Cap:                CapButt,
		Join:               JoinMiter,
		MiterLimit:         tess.DefaultMiterLimit,
	}
}

// WithWidth returns a copy of the StrokeOptions with the given width.
func (s StrokeOptions) WithWidth(w float32) StrokeOptions {
	s.Width = w
	return s
}

// WithTextureAspectRatio returns a copy with the given texture aspect ratio.
func (s StrokeOptions) WithTextureAspectRatio(r float32) StrokeOptions {
	s.TextureAspectRatio = r
	return s
}

// WithCap returns a copy with the given line cap.
func (s StrokeOptions) WithCap(c LineCap) StrokeOptions {
	s.Cap = c
	return s
}

// WithJoin returns a copy with the given line join.
func (s StrokeOptions) WithJoin(j LineJoin) StrokeOptions {
	s.Join = j
	return s
}

// WithMiterLimit returns a copy with the given miter limit.
// A limit of 1 bevels every corner.
func (s StrokeOptions) WithMiterLimit(limit float32) StrokeOptions {
	s.MiterLimit = limit
	return s
}

// validate returns a *ConfigError for the first invalid field.
func (s StrokeOptions) validate() error {
	switch {
	case !positive(s.Width):
		return &ConfigError{Field: "stroke width", Value: s.Width, Err: ErrInvalidValue}
	case !positive(s.TextureAspectRatio):
		return &ConfigError{Field: "texture aspect ratio", Value: s.TextureAspectRatio, Err: ErrInvalidValue}
	case s.Join == JoinMiter && !(s.MiterLimit >= 1) || math32.IsInf(s.MiterLimit, 1):
		return &ConfigError{Field: "miter limit", Value: s.MiterLimit, Err: ErrInvalidValue}
	case s.Cap > CapSquare:
		return &ConfigError{Field: "line cap", Value: s.Cap, Err: ErrInvalidValue}
	case s.Join > JoinBevel:
		return &ConfigError{Field: "line join", Value: s.Join, Err: ErrInvalidValue}
	}
	return nil
}

func (s StrokeOptions) tess(tolerance float32) tess.StrokeOptions {
	o := tess.StrokeOptions{
		Width:      s.Width,
		Tolerance:  tolerance,
		MiterLimit: s.MiterLimit,
		Cap:        tess.CapButt,
		Join:       tess.JoinMiter,
	}
	if s.Cap == CapSquare {
		o.Cap = tess.CapSquare
	}
	if s.Join == JoinBevel {
		o.Join = tess.JoinBevel
	}
	return o
}

// positive reports whether f is a finite number greater than zero.
func positive(f float32) bool {
	return f > 0 && !math32.IsInf(f, 1)
}
