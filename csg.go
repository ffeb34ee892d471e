// Package chisel computes boolean combinations of closed polygon-mesh
// solids with binary space partitioning trees.
//
// All three combinators follow the clip-against-complement BSP recipe:
// build one tree per operand, clip each tree's polygons against the other
// solid, temporarily Invert a tree where the solid-leaf discard rule has to
// act on the complement, then merge the surviving fragments and extract a
// flat polygon list. Clipping removes polygon area enclosed by the other
// solid; inversion swaps which half-space a missing child treats as
// interior, which is what lets one ClipPolygons primitive serve union,
// subtraction and intersection.
//
// Operands are never modified: each call works on private deep copies, so
// concurrent calls on distinct solids need no synchronization. A single
// call is purely sequential.
//
// References:
//   - Thibault, Naylor: "Set Operations on Polyhedra Using Binary Space
//     Partitioning Trees" (1987)
package chisel

import "github.com/akmonengine/chisel/bsp"

// disjoint reports that the two solids cannot touch. The broad-phase idea
// applied to booleans: when bounds do not overlap, the result needs no
// clipping at all. Touching bounds still take the full path, so adjacent
// coplanar faces are resolved properly.
func disjoint(a, b Solid) bool {
	return !a.Bounds().Overlaps(b.Bounds())
}

// Union returns the solid enclosing every point inside a or b.
//
// Sequence: drop a's surface inside b, drop b's surface inside a, then run
// one more clip of b through its own complement so faces of b coplanar with
// a's already-clipped shell are not emitted twice, and merge b's survivors
// into a's tree.
func Union(a, b Solid) Solid {
	if disjoint(a, b) {
		out := a.Clone()
		out.Polygons = append(out.Polygons, b.Clone().Polygons...)
		return out
	}

	na := bsp.FromPolygons(a.Clone().Polygons)
	nb := bsp.FromPolygons(b.Clone().Polygons)

	na.ClipTo(nb)
	nb.ClipTo(na)
	nb.Invert()
	nb.ClipTo(na)
	nb.Invert()
	na.Build(nb.AllPolygons())

	return FromPolygons(na.AllPolygons())
}

// Subtract returns the solid enclosing the points inside a but not inside
// b. Not commutative.
//
// Same clip sequence as Union, run with a inverted: working in a's
// complement makes the solid-leaf rule discard the half that must vanish,
// and a is inverted back before extraction.
func Subtract(a, b Solid) Solid {
	if disjoint(a, b) {
		return a.Clone()
	}

	na := bsp.FromPolygons(a.Clone().Polygons)
	nb := bsp.FromPolygons(b.Clone().Polygons)

	na.Invert()
	na.ClipTo(nb)
	nb.ClipTo(na)
	nb.Invert()
	nb.ClipTo(na)
	nb.Invert()
	na.Build(nb.AllPolygons())
	na.Invert()

	return FromPolygons(na.AllPolygons())
}

// Intersect returns the solid enclosing the points inside both a and b.
func Intersect(a, b Solid) Solid {
	if disjoint(a, b) {
		return Solid{}
	}

	na := bsp.FromPolygons(a.Clone().Polygons)
	nb := bsp.FromPolygons(b.Clone().Polygons)

	na.Invert()
	nb.ClipTo(na)
	nb.Invert()
	na.ClipTo(nb)
	nb.ClipTo(na)
	na.Build(nb.AllPolygons())
	na.Invert()

	return FromPolygons(na.AllPolygons())
}
