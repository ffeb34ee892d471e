package geom

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// AABB represents an axis-aligned bounding box
type AABB struct {
	Min mgl64.Vec3
	Max mgl64.Vec3
}

// EmptyAABB returns a box containing nothing; the first Extend absorbs it.
func EmptyAABB() AABB {
	return AABB{
		Min: mgl64.Vec3{math.Inf(1), math.Inf(1), math.Inf(1)},
		Max: mgl64.Vec3{math.Inf(-1), math.Inf(-1), math.Inf(-1)},
	}
}

// Extend grows the box just enough to contain point.
func (a AABB) Extend(point mgl64.Vec3) AABB {
	return AABB{
		Min: mgl64.Vec3{
			math.Min(a.Min.X(), point.X()),
			math.Min(a.Min.Y(), point.Y()),
			math.Min(a.Min.Z(), point.Z()),
		},
		Max: mgl64.Vec3{
			math.Max(a.Max.X(), point.X()),
			math.Max(a.Max.Y(), point.Y()),
			math.Max(a.Max.Z(), point.Z()),
		},
	}
}

// ContainsPoint checks if a point is inside the AABB
func (a AABB) ContainsPoint(point mgl64.Vec3) bool {
	return point.X() >= a.Min.X() && point.X() <= a.Max.X() &&
		point.Y() >= a.Min.Y() && point.Y() <= a.Max.Y() &&
		point.Z() >= a.Min.Z() && point.Z() <= a.Max.Z()
}

// Overlaps checks if two AABBs overlap
func (a AABB) Overlaps(other AABB) bool {
	// AABBs overlap if they overlap on all three axes
	return a.Max.X() >= other.Min.X() && a.Min.X() <= other.Max.X() &&
		a.Max.Y() >= other.Min.Y() && a.Min.Y() <= other.Max.Y() &&
		a.Max.Z() >= other.Min.Z() && a.Min.Z() <= other.Max.Z()
}

// PolygonBounds returns the bounds of every vertex in the polygon list.
// An empty list yields EmptyAABB, which overlaps nothing.
func PolygonBounds(polygons []Polygon) AABB {
	bounds := EmptyAABB()
	for i := range polygons {
		for _, v := range polygons[i].Vertices {
			bounds = bounds.Extend(v.Position)
		}
	}
	return bounds
}
