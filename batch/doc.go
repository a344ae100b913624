// Package batch builds many shapes at once.
//
// [Build] tessellates a slice of builders on a worker pool and returns the
// results in input order. [Memo] keeps built polygons by a caller chosen key
// so that shapes which do not change between frames are tessellated once.
//
//	polys, err := batch.Build(ctx, []shapes.Builder{
//		shapes.Circle().WithRadius(20),
//		shapes.Hexagon().WithStroke(2),
//	})
package batch
