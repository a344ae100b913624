// Package preview rasterizes built polygons into an image on the CPU.
//
// It is meant for inspecting tessellation output (tests, golden images,
// the demo command), not for production rendering: every Poly is drawn in
// its vertex color with anti-aliased edges, texture coordinates are
// ignored.
//
// World +Y points up in the image.
package preview
