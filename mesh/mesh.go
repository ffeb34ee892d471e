// Package mesh carries boolean results back toward renderable form: fan
// triangulation of the polygon loops, enclosed-volume measurement and
// bounds extraction.
package mesh

import "github.com/akmonengine/chisel/geom"

// Triangle is one triangulated face, wound like its source polygon.
type Triangle struct {
	A, B, C geom.Vertex
}

// Triangulate fans every polygon around its first vertex. The combinators
// only ever split convex faces, so their output is safe to fan; concave
// loops from elsewhere are the caller's problem.
func Triangulate(polygons []geom.Polygon) []Triangle {
	var triangles []Triangle
	for i := range polygons {
		vertices := polygons[i].Vertices
		for k := 1; k+1 < len(vertices); k++ {
			triangles = append(triangles, Triangle{
				A: vertices[0],
				B: vertices[k],
				C: vertices[k+1],
			})
		}
	}
	return triangles
}

// Volume returns the volume enclosed by a closed, outward-oriented polygon
// set, summed by the divergence theorem over the fan triangulation. An
// inside-out surface comes back negative, an open one meaningless.
func Volume(polygons []geom.Polygon) float64 {
	var volume float64
	for _, tri := range Triangulate(polygons) {
		// Signed volume of the tetrahedron spanned by the triangle and
		// the origin.
		volume += tri.A.Position.Dot(tri.B.Position.Cross(tri.C.Position)) / 6.0
	}
	return volume
}

// Bounds returns the axis-aligned bounds of the polygon set.
func Bounds(polygons []geom.Polygon) geom.AABB {
	return geom.PolygonBounds(polygons)
}
