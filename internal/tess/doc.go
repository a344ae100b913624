// Package tess turns contours and path elements into indexed triangle meshes.
//
// It is the tessellation engine behind the shape builders. The contract is
// deliberately narrow:
//
//   - [FillPolyline] and [FillPath] triangulate the interior of simple
//     contours. Convex contours are fanned from their first vertex, concave
//     ones are ear-clipped.
//   - [StrokePolyline] and [StrokePath] build a ribbon mesh of a given width
//     around the centerline. Every emitted [StrokeVertex] reports which side
//     of the centerline it lies on and how far along the stroke it is.
//
// Curves (quadratic and cubic Béziers, circular arcs) are flattened with a
// caller supplied tolerance: the maximum distance between the curve and its
// polyline approximation.
//
// Output is written through a constructor callback into a [VertexBuffers],
// mirroring how GPU vertex data is usually assembled. On error nothing is
// appended.
//
// # Orientation
//
// Angles and sides follow the usual math convention: the left side of a
// direction d is d rotated by +90° (from +X toward +Y). Fill triangles are
// emitted with positive signed area in that convention.
package tess
