// Package shape generates closed, outward-oriented polygon meshes for the
// common solid primitives, ready to feed the boolean combinators.
package shape

import (
	"math"

	"github.com/akmonengine/chisel/geom"
	"github.com/go-gl/mathgl/mgl64"
)

// Corner i of a box: bit 0 picks the x side, bit 1 the y side, bit 2 the z
// side. Each face lists its corners CCW as seen from outside.
var cubeFaces = [6]struct {
	indices [4]int
	normal  mgl64.Vec3
}{
	{indices: [4]int{0, 4, 6, 2}, normal: mgl64.Vec3{-1, 0, 0}},
	{indices: [4]int{1, 3, 7, 5}, normal: mgl64.Vec3{1, 0, 0}},
	{indices: [4]int{0, 1, 5, 4}, normal: mgl64.Vec3{0, -1, 0}},
	{indices: [4]int{2, 6, 7, 3}, normal: mgl64.Vec3{0, 1, 0}},
	{indices: [4]int{0, 2, 3, 1}, normal: mgl64.Vec3{0, 0, -1}},
	{indices: [4]int{4, 5, 7, 6}, normal: mgl64.Vec3{0, 0, 1}},
}

func axisSign(bit int) float64 {
	if bit != 0 {
		return 1
	}
	return -1
}

// Cube returns the six quads of an axis-aligned box, outward per-face
// normals.
func Cube(center, halfExtents mgl64.Vec3) []geom.Polygon {
	var corners [8]mgl64.Vec3
	for i := range corners {
		corners[i] = center.Add(mgl64.Vec3{
			axisSign(i&1) * halfExtents.X(),
			axisSign(i&2) * halfExtents.Y(),
			axisSign(i&4) * halfExtents.Z(),
		})
	}

	polygons := make([]geom.Polygon, 0, 6)
	for _, face := range cubeFaces {
		vertices := make([]geom.Vertex, 0, 4)
		for _, idx := range face.indices {
			vertices = append(vertices, geom.Vertex{Position: corners[idx], Normal: face.normal})
		}
		polygons = append(polygons, geom.NewPolygon(vertices))
	}
	return polygons
}

// Sphere returns a UV sphere with smooth (radial) vertex normals. slices is
// the azimuthal resolution, stacks the polar one; the rows touching the
// poles come out as triangles, the rest as quads. Out-of-range resolutions
// fall back to 16x8.
func Sphere(center mgl64.Vec3, radius float64, slices, stacks int) []geom.Polygon {
	if slices < 3 {
		slices = 16
	}
	if stacks < 2 {
		stacks = 8
	}

	point := func(theta, phi float64) geom.Vertex {
		theta *= 2 * math.Pi
		phi *= math.Pi
		dir := mgl64.Vec3{
			math.Cos(theta) * math.Sin(phi),
			math.Cos(phi),
			math.Sin(theta) * math.Sin(phi),
		}
		return geom.Vertex{Position: center.Add(dir.Mul(radius)), Normal: dir}
	}

	var polygons []geom.Polygon
	for i := 0; i < slices; i++ {
		for j := 0; j < stacks; j++ {
			vertices := make([]geom.Vertex, 0, 4)
			vertices = append(vertices, point(float64(i)/float64(slices), float64(j)/float64(stacks)))
			if j > 0 {
				vertices = append(vertices, point(float64(i+1)/float64(slices), float64(j)/float64(stacks)))
			}
			if j < stacks-1 {
				vertices = append(vertices, point(float64(i+1)/float64(slices), float64(j+1)/float64(stacks)))
			}
			vertices = append(vertices, point(float64(i)/float64(slices), float64(j+1)/float64(stacks)))
			polygons = append(polygons, geom.NewPolygon(vertices))
		}
	}
	return polygons
}

// Cylinder returns a capped cylinder from start to end. Side normals are
// smooth around the barrel, cap normals flat along the axis. Out-of-range
// slice counts fall back to 16.
func Cylinder(start, end mgl64.Vec3, radius float64, slices int) []geom.Polygon {
	if slices < 3 {
		slices = 16
	}

	ray := end.Sub(start)
	axisZ := ray.Normalize()

	// Pick any direction not parallel to the axis to seed the basis.
	perp := mgl64.Vec3{0, 1, 0}
	if math.Abs(axisZ.Y()) > 0.5 {
		perp = mgl64.Vec3{1, 0, 0}
	}
	axisX := perp.Cross(axisZ).Normalize()
	axisY := axisX.Cross(axisZ).Normalize()

	bottomCenter := geom.Vertex{Position: start, Normal: axisZ.Mul(-1)}
	topCenter := geom.Vertex{Position: end, Normal: axisZ}

	// normalBlend selects the normal: -1 bottom cap, 0 barrel, 1 top cap.
	point := func(stack, slice, normalBlend float64) geom.Vertex {
		angle := slice * 2 * math.Pi
		out := axisX.Mul(math.Cos(angle)).Add(axisY.Mul(math.Sin(angle)))
		return geom.Vertex{
			Position: start.Add(ray.Mul(stack)).Add(out.Mul(radius)),
			Normal:   out.Mul(1 - math.Abs(normalBlend)).Add(axisZ.Mul(normalBlend)),
		}
	}

	var polygons []geom.Polygon
	for i := 0; i < slices; i++ {
		t0 := float64(i) / float64(slices)
		t1 := float64(i+1) / float64(slices)

		polygons = append(polygons,
			geom.NewPolygon([]geom.Vertex{bottomCenter, point(0, t0, -1), point(0, t1, -1)}),
			geom.NewPolygon([]geom.Vertex{point(0, t1, 0), point(0, t0, 0), point(1, t0, 0), point(1, t1, 0)}),
			geom.NewPolygon([]geom.Vertex{topCenter, point(1, t1, 1), point(1, t0, 1)}),
		)
	}
	return polygons
}
