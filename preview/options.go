package preview

import (
	"github.com/soypat/glgl/math/ms2"

	"github.com/gogpu/shapes"
)

// Option configures Render.
type Option func(*config)

type config struct {
	width, height int
	padding       int
	background    shapes.RGBA
	frame         ms2.Box
	hasFrame      bool
}

func defaultConfig() config {
	return config{
		width:      512,
		height:     512,
		padding:    8,
		background: shapes.White,
	}
}

// WithSize sets the image size in pixels. Non-positive values are ignored.
func WithSize(width, height int) Option {
	return func(c *config) {
		if width > 0 && height > 0 {
			c.width, c.height = width, height
		}
	}
}

// WithPadding sets the margin in pixels kept free around the frame.
func WithPadding(px int) Option {
	return func(c *config) {
		c.padding = max(px, 0)
	}
}

// WithBackground sets the color the image is cleared to.
func WithBackground(bg shapes.RGBA) Option {
	return func(c *config) {
		c.background = bg
	}
}

// WithFrame sets the world rectangle mapped onto the image. By default the
// union of all polygon bounds is used. The frame keeps its aspect ratio and
// is centered.
func WithFrame(frame ms2.Box) Option {
	return func(c *config) {
		c.frame = frame
		c.hasFrame = true
	}
}
