package chisel

import "github.com/akmonengine/chisel/geom"

// Solid is a closed surface described by a flat list of boundary polygons.
// This is the exchange format on both sides of the boolean combinators: an
// external mesh adapter turns engine geometry into polygon loops, and gets
// the result back the same way for re-triangulation.
type Solid struct {
	Polygons []geom.Polygon
}

// FromPolygons wraps a polygon list as a solid. The list is taken as-is;
// callers that keep mutating it should pass a copy.
func FromPolygons(polygons []geom.Polygon) Solid {
	return Solid{Polygons: polygons}
}

// Clone returns a solid sharing no mutable state with s.
func (s Solid) Clone() Solid {
	polygons := make([]geom.Polygon, 0, len(s.Polygons))
	for i := range s.Polygons {
		polygons = append(polygons, s.Polygons[i].Clone())
	}
	return Solid{Polygons: polygons}
}

// Bounds returns the axis-aligned bounds of the solid's boundary.
func (s Solid) Bounds() geom.AABB {
	return geom.PolygonBounds(s.Polygons)
}
