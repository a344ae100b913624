// Package shapes turns 2D shape descriptions into GPU-ready triangle meshes.
//
// # Overview
//
// Every shape has a fluent builder. A builder carries the shape parameters
// and one [Options] value selecting fill or stroke mode, the flattening
// tolerance, the vertex color and the texture mapping. Building tessellates
// the shape once and returns a [Poly]: a vertex buffer and triangle list
// indices into it.
//
// # Quick Start
//
//	import "github.com/gogpu/shapes"
//
//	// A filled hexagon and a stroked circle.
//	hex := shapes.Hexagon().WithRadius(40).WithColor(shapes.RGB(1, 0.5, 0)).Build()
//	ring, err := shapes.Circle().WithRadius(20).WithStroke(2).TryBuild()
//
// # Shapes
//
//   - [Circle], flattened within the tolerance
//   - [RegularPoly] and the named polygons [Triangle] to [Decagon]
//   - [Star], [Pentagram] and [Hexagram]
//   - [RoundRect] with per-corner radii
//   - [LineSegment] and [Bezier] (stroke only)
//   - [FreePoly], an arbitrary polyline built point by point
//   - [PathShape] for any [Path]
//
// # Texture Coordinates
//
// Fill vertices map the shape's bounding box onto [0,1]×[0,1/aspect].
// Stroke vertices use X = 1 on the left of the direction of travel and 0 on
// the right; Y is the distance along the stroke divided by the stroke width
// and multiplied by the texture aspect ratio, so a texture repeats along the
// outline without stretching.
//
// # Errors
//
// Invalid parameters do not panic. The first one is recorded on the builder
// and returned by [TryBuild] as a [*ConfigError]; later valid settings are
// still applied. Tessellation failures are returned as
// [*TessellationError]. [Build] panics on either.
//
// # Coordinate System
//
//   - X increases right, Y increases up
//   - Angles in radians, 0 points along +X, increasing toward +Y
//   - Polygons and stars start at [North] unless told otherwise
//
// # Sub-packages
//
//   - batch: builds many shapes concurrently and memoizes results
//   - gpumesh: vertex layout, buffer encoding, upload and WGSL shader
//   - preview: CPU rasterization of built shapes to PNG
package shapes
