package shapes

import (
	"errors"
	"fmt"
)

// Sentinel errors. Configuration problems are reported as *ConfigError
// wrapping one of these; use errors.Is to test for them.
var (
	// ErrInvalidValue reports a parameter outside its valid range, e.g. a
	// polygon with fewer than 3 sides or a non-positive stroke width.
	ErrInvalidValue = errors.New("shapes: invalid value")

	// ErrFillUnsupported reports a fill build of a shape that has no
	// interior: line segments and bézier paths.
	ErrFillUnsupported = errors.New("shapes: fill not supported")

	// ErrConsumed reports a second build of the same builder.
	ErrConsumed = errors.New("shapes: builder already consumed")

	// ErrInvalidHex is returned by Hex for malformed input.
	ErrInvalidHex = errors.New("shapes: invalid hex color")
)

// ConfigError describes a rejected builder or Options parameter.
// The first rejected parameter is kept and returned by TryBuild before any
// geometry is generated.
type ConfigError struct {
	Shape string // shape kind, e.g. "star"; empty for a bare Options value
	Field string // parameter name, e.g. "tips"
	Value any    // rejected value
	Err   error  // one of the sentinel errors
}

func (e *ConfigError) Error() string {
	shape := e.Shape
	if shape == "" {
		shape = "options"
	}
	return fmt.Sprintf("%v (%s %s = %v)", e.Err, shape, e.Field, e.Value)
}

func (e *ConfigError) Unwrap() error { return e.Err }

// TessellationError wraps a failure reported by the tessellator, such as
// degenerate or non-finite geometry.
type TessellationError struct {
	Shape string
	Mode  Mode
	Err   error
}

func (e *TessellationError) Error() string {
	return fmt.Sprintf("shapes: tessellating %s (%s): %v", e.Shape, e.Mode, e.Err)
}

func (e *TessellationError) Unwrap() error { return e.Err }
