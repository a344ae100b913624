package shapes

import (
	"github.com/chewxy/math32"
	"github.com/soypat/glgl/math/ms2"
)

// builderBase is the state every shape builder shares.
type builderBase struct {
	kind     string
	opts     Options
	err      error
	consumed bool
}

// Kind returns the shape kind.
func (b *builderBase) Kind() string { return b.kind }

// Options returns the current rendering options.
func (b *builderBase) Options() Options { return b.opts }

// Err returns the first configuration error recorded on the builder or its
// options, or nil.
func (b *builderBase) Err() error {
	if b.err != nil {
		return b.err
	}
	if err := b.opts.Err(); err != nil {
		if ce, ok := err.(*ConfigError); ok && ce.Shape == "" {
			c := *ce
			c.Shape = b.kind
			return &c
		}
		return err
	}
	return nil
}

func (b *builderBase) base() *builderBase { return b }

// fail records a rejected parameter. Only the first one is kept.
func (b *builderBase) fail(field string, value any, err error) {
	if b.err == nil {
		b.err = &ConfigError{Shape: b.kind, Field: field, Value: value, Err: err}
	}
}

// configurable provides the Options setters and the build methods once for
// every builder type B. Setters return B so calls chain across shared and
// shape specific methods. B is always the pointer type of the embedding
// builder, which implements Builder.
type configurable[B any] struct {
	builderBase
	self B
}

func (c *configurable[B]) init(self B, kind string, opts Options) {
	c.self = self
	c.kind = kind
	c.opts = opts
}

// WithOptions replaces the rendering options.
func (c *configurable[B]) WithOptions(o Options) B {
	c.opts = o
	return c.self
}

// WithFill switches to fill mode.
func (c *configurable[B]) WithFill() B {
	c.opts = c.opts.WithFill()
	return c.self
}

// WithStroke switches to stroke mode with the given width.
func (c *configurable[B]) WithStroke(width float32) B {
	c.opts = c.opts.WithStroke(width)
	return c.self
}

// WithStrokeOptions switches to stroke mode with the given parameters.
func (c *configurable[B]) WithStrokeOptions(s StrokeOptions) B {
	c.opts = c.opts.WithStrokeOptions(s)
	return c.self
}

// WithTolerance sets the curve flattening tolerance.
func (c *configurable[B]) WithTolerance(t float32) B {
	c.opts = c.opts.WithTolerance(t)
	return c.self
}

// WithColor sets the vertex color.
func (c *configurable[B]) WithColor(col RGBA) B {
	c.opts = c.opts.WithColor(col)
	return c.self
}

// WithTextureAspectRatio sets the texture aspect ratio of the active mode.
func (c *configurable[B]) WithTextureAspectRatio(r float32) B {
	c.opts = c.opts.WithTextureAspectRatio(r)
	return c.self
}

// TryBuild is shorthand for TryBuild(b).
func (c *configurable[B]) TryBuild() (Poly, error) {
	return TryBuild(any(c.self).(Builder))
}

// Build is shorthand for Build(b).
func (c *configurable[B]) Build() Poly {
	return Build(any(c.self).(Builder))
}

func finiteVec(p ms2.Vec) bool {
	return finite(p.X) && finite(p.Y)
}

func finite(f float32) bool {
	return !math32.IsNaN(f) && !math32.IsInf(f, 0)
}
