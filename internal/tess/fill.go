package tess

import (
	"github.com/chewxy/math32"
	"github.com/soypat/glgl/math/ms2"
)

// FillPolyline triangulates the interior of a single closed contour.
// The contour is implicitly closed; repeating the first point at the end is
// allowed.
func FillPolyline[V any](points []ms2.Vec, opts FillOptions, out *VertexBuffers[V], ctor func(FillVertex) V) error {
	if !positive(opts.Tolerance) {
		return ErrInvalidOptions
	}
	var tmp VertexBuffers[V]
	if err := fillContour(points, &tmp, ctor); err != nil {
		return err
	}
	out.appendFrom(&tmp)
	return nil
}

// FillPath flattens the path and triangulates every subpath as an
// independent simple contour. Open subpaths are closed implicitly.
func FillPath[V any](elements []PathElement, opts FillOptions, out *VertexBuffers[V], ctor func(FillVertex) V) error {
	contours, err := Flatten(elements, opts.Tolerance)
	if err != nil {
		return err
	}
	if len(contours) == 0 {
		return ErrTooFewPoints
	}
	var tmp VertexBuffers[V]
	for _, c := range contours {
		if err := fillContour(c.Points, &tmp, ctor); err != nil {
			return err
		}
	}
	out.appendFrom(&tmp)
	return nil
}

func fillContour[V any](points []ms2.Vec, buf *VertexBuffers[V], ctor func(FillVertex) V) error {
	for _, p := range points {
		if !finite(p) {
			return ErrInvalidNumber
		}
	}
	pts := dedupe(points, true)
	n := len(pts)
	if n < 3 {
		return ErrTooFewPoints
	}
	area := SignedArea(pts)
	if math32.Abs(area) <= areaEpsilon(pts) {
		return ErrDegenerate
	}

	// order lists the contour counter-clockwise so every emitted triangle
	// has positive area.
	order := make([]uint32, n)
	for i := range order {
		if area > 0 {
			order[i] = uint32(i)
		} else {
			order[i] = uint32(n - 1 - i)
		}
	}

	var indices []uint32
	if IsConvex(pts) {
		indices = fan(pts, order)
	} else {
		var err error
		indices, err = earClip(pts, order)
		if err != nil {
			return err
		}
	}

	base := uint32(len(buf.Vertices))
	for _, p := range pts {
		buf.Vertices = append(buf.Vertices, ctor(FillVertex{Position: p}))
	}
	for _, i := range indices {
		buf.Indices = append(buf.Indices, base+i)
	}
	return nil
}

// SignedArea returns the signed area of a closed contour, positive when the
// contour turns from +X toward +Y.
func SignedArea(pts []ms2.Vec) float32 {
	var sum float32
	for i := range pts {
		j := (i + 1) % len(pts)
		sum += cross(pts[i], pts[j])
	}
	return sum / 2
}

func areaEpsilon(pts []ms2.Vec) float32 {
	lo, hi := pts[0], pts[0]
	for _, p := range pts[1:] {
		lo = ms2.MinElem(lo, p)
		hi = ms2.MaxElem(hi, p)
	}
	d := ms2.Sub(hi, lo)
	return 1e-7 * math32.Max(d.X*d.X, d.Y*d.Y)
}

// IsConvex reports whether the closed contour is convex and simple: every
// turn goes the same way (collinear turns allowed) and the turns add up to
// a single revolution.
func IsConvex(pts []ms2.Vec) bool {
	n := len(pts)
	if n < 3 {
		return false
	}
	var pos, neg int
	var turning float32
	for i := range n {
		e1 := ms2.Sub(pts[(i+1)%n], pts[i])
		e2 := ms2.Sub(pts[(i+2)%n], pts[(i+1)%n])
		c := cross(e1, e2)
		switch {
		case c > 0:
			pos++
		case c < 0:
			neg++
		}
		turning += math32.Atan2(c, ms2.Dot(e1, e2))
	}
	if pos > 0 && neg > 0 {
		return false
	}
	return math32.Abs(math32.Abs(turning)-2*math32.Pi) < 1e-3
}

// fan triangulates a convex contour from its first vertex.
func fan(pts []ms2.Vec, order []uint32) []uint32 {
	indices := make([]uint32, 0, 3*(len(order)-2))
	a := order[0]
	for i := 1; i+1 < len(order); i++ {
		b, c := order[i], order[i+1]
		if cross(ms2.Sub(pts[b], pts[a]), ms2.Sub(pts[c], pts[a])) == 0 {
			continue
		}
		indices = append(indices, a, b, c)
	}
	return indices
}

// earClip triangulates a simple counter-clockwise contour by repeatedly
// cutting off ears: convex vertices whose triangle contains no other vertex.
func earClip(pts []ms2.Vec, order []uint32) ([]uint32, error) {
	ring := append([]uint32(nil), order...)
	indices := make([]uint32, 0, 3*(len(ring)-2))
	eps := areaEpsilon(pts)

	i := 0
	for len(ring) > 3 {
		m := len(ring)
		clipped := false
		for range m {
			i %= m
			prev, cur, next := ring[(i+m-1)%m], ring[i], ring[(i+1)%m]
			a, b, c := pts[prev], pts[cur], pts[next]
			turn := cross(ms2.Sub(b, a), ms2.Sub(c, b))
			if math32.Abs(turn) <= eps {
				// Collinear vertex: drop it without emitting a triangle.
				ring = append(ring[:i], ring[i+1:]...)
				clipped = true
				break
			}
			if turn < 0 || containsAny(pts, ring, prev, cur, next) {
				i++
				continue
			}
			indices = append(indices, prev, cur, next)
			ring = append(ring[:i], ring[i+1:]...)
			clipped = true
			break
		}
		if !clipped {
			return nil, ErrDegenerate
		}
	}
	a, b, c := pts[ring[0]], pts[ring[1]], pts[ring[2]]
	if cross(ms2.Sub(b, a), ms2.Sub(c, b)) > eps {
		indices = append(indices, ring[0], ring[1], ring[2])
	}
	if len(indices) == 0 {
		return nil, ErrDegenerate
	}
	return indices, nil
}

// containsAny reports whether a ring vertex other than the triangle's own
// corners lies inside or on the counter-clockwise triangle (ia, ib, ic).
func containsAny(pts []ms2.Vec, ring []uint32, ia, ib, ic uint32) bool {
	a, b, c := pts[ia], pts[ib], pts[ic]
	for _, j := range ring {
		if j == ia || j == ib || j == ic {
			continue
		}
		p := pts[j]
		if samePoint(p, a) || samePoint(p, b) || samePoint(p, c) {
			continue
		}
		if cross(ms2.Sub(b, a), ms2.Sub(p, a)) >= 0 &&
			cross(ms2.Sub(c, b), ms2.Sub(p, b)) >= 0 &&
			cross(ms2.Sub(a, c), ms2.Sub(p, c)) >= 0 {
			return true
		}
	}
	return false
}
