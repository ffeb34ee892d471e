package geom

import "slices"

// Polygon is an ordered planar loop of at least three vertices, counter
// clockwise when viewed from the front side of its plane.
type Polygon struct {
	Vertices []Vertex
	Plane    Plane
}

// NewPolygon derives the polygon's plane from its first three vertices.
// Fewer than three vertices, or collinear leading vertices, leave the
// plane invalid.
func NewPolygon(vertices []Vertex) Polygon {
	var plane Plane
	if len(vertices) >= 3 {
		plane = PlaneFromPoints(vertices[0].Position, vertices[1].Position, vertices[2].Position)
	}
	return Polygon{Vertices: vertices, Plane: plane}
}

// NewPolygonWithPlane keeps the supplied plane instead of recomputing it.
// Split fragments use this: they stay coplanar with their parent even when
// their own leading vertices are nearly collinear.
func NewPolygonWithPlane(vertices []Vertex, plane Plane) Polygon {
	return Polygon{Vertices: vertices, Plane: plane}
}

// Flip reverses the winding, the vertex normals and the plane together.
// Reversing only one of the three would desynchronize front/back
// classification everywhere else.
func (poly *Polygon) Flip() {
	slices.Reverse(poly.Vertices)
	for i := range poly.Vertices {
		poly.Vertices[i].Flip()
	}
	poly.Plane.Flip()
}

// Clone returns a polygon sharing no mutable state with poly.
func (poly Polygon) Clone() Polygon {
	return Polygon{Vertices: slices.Clone(poly.Vertices), Plane: poly.Plane}
}
