package geom

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

// Helper functions for testing
func vec3ApproxEqual(a, b mgl64.Vec3, tolerance float64) bool {
	return math.Abs(a.X()-b.X()) < tolerance &&
		math.Abs(a.Y()-b.Y()) < tolerance &&
		math.Abs(a.Z()-b.Z()) < tolerance
}

// unitSquare returns the CCW unit square in the z=0 plane, front side +Z.
func unitSquare() Polygon {
	up := mgl64.Vec3{0, 0, 1}
	return NewPolygon([]Vertex{
		{Position: mgl64.Vec3{0, 0, 0}, Normal: up},
		{Position: mgl64.Vec3{1, 0, 0}, Normal: up},
		{Position: mgl64.Vec3{1, 1, 0}, Normal: up},
		{Position: mgl64.Vec3{0, 1, 0}, Normal: up},
	})
}

// translated returns a copy of poly moved by offset.
func translated(poly Polygon, offset mgl64.Vec3) Polygon {
	out := poly.Clone()
	for i := range out.Vertices {
		out.Vertices[i].Position = out.Vertices[i].Position.Add(offset)
	}
	out.Plane.Offset = out.Plane.Normal.Dot(out.Vertices[0].Position)
	return out
}

func polygonArea(poly Polygon) float64 {
	var total float64
	for k := 1; k+1 < len(poly.Vertices); k++ {
		e1 := poly.Vertices[k].Position.Sub(poly.Vertices[0].Position)
		e2 := poly.Vertices[k+1].Position.Sub(poly.Vertices[0].Position)
		total += e1.Cross(e2).Len() / 2
	}
	return total
}

func TestPlaneFromPoints(t *testing.T) {
	tests := []struct {
		name           string
		a, b, c        mgl64.Vec3
		expectedNormal mgl64.Vec3
		expectedOffset float64
	}{
		{
			name:           "XY plane through origin",
			a:              mgl64.Vec3{0, 0, 0},
			b:              mgl64.Vec3{1, 0, 0},
			c:              mgl64.Vec3{0, 1, 0},
			expectedNormal: mgl64.Vec3{0, 0, 1},
			expectedOffset: 0,
		},
		{
			name:           "XY plane at z=2",
			a:              mgl64.Vec3{0, 0, 2},
			b:              mgl64.Vec3{1, 0, 2},
			c:              mgl64.Vec3{0, 1, 2},
			expectedNormal: mgl64.Vec3{0, 0, 1},
			expectedOffset: 2,
		},
		{
			name:           "reversed winding flips the normal",
			a:              mgl64.Vec3{0, 0, 0},
			b:              mgl64.Vec3{0, 1, 0},
			c:              mgl64.Vec3{1, 0, 0},
			expectedNormal: mgl64.Vec3{0, 0, -1},
			expectedOffset: 0,
		},
		{
			name:           "negative offset side",
			a:              mgl64.Vec3{0, 0, -3},
			b:              mgl64.Vec3{1, 0, -3},
			c:              mgl64.Vec3{0, 1, -3},
			expectedNormal: mgl64.Vec3{0, 0, 1},
			expectedOffset: -3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			plane := PlaneFromPoints(tt.a, tt.b, tt.c)
			if !plane.Valid() {
				t.Fatalf("plane should be valid")
			}
			if !vec3ApproxEqual(plane.Normal, tt.expectedNormal, 1e-12) {
				t.Errorf("normal = %v, expected %v", plane.Normal, tt.expectedNormal)
			}
			if math.Abs(plane.Offset-tt.expectedOffset) > 1e-12 {
				t.Errorf("offset = %v, expected %v", plane.Offset, tt.expectedOffset)
			}
		})
	}
}

func TestPlaneFromPointsDegenerate(t *testing.T) {
	tests := []struct {
		name    string
		a, b, c mgl64.Vec3
	}{
		{
			name: "collinear points",
			a:    mgl64.Vec3{0, 0, 0},
			b:    mgl64.Vec3{1, 0, 0},
			c:    mgl64.Vec3{2, 0, 0},
		},
		{
			name: "repeated point",
			a:    mgl64.Vec3{1, 2, 3},
			b:    mgl64.Vec3{1, 2, 3},
			c:    mgl64.Vec3{4, 5, 6},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			plane := PlaneFromPoints(tt.a, tt.b, tt.c)
			if plane.Valid() {
				t.Errorf("degenerate triangle should yield an invalid plane, got %+v", plane)
			}
		})
	}
}

func TestPlaneValid(t *testing.T) {
	var zero Plane
	if zero.Valid() {
		t.Errorf("zero plane should be invalid")
	}

	plane := Plane{Normal: mgl64.Vec3{0, 0, 1}, Offset: 4}
	if !plane.Valid() {
		t.Errorf("assigned plane should be valid")
	}
}

func TestPlaneFlip(t *testing.T) {
	plane := Plane{Normal: mgl64.Vec3{0, 0, 1}, Offset: 2}
	point := mgl64.Vec3{0, 0, 5}

	before := plane.SignedDistance(point)
	plane.Flip()
	after := plane.SignedDistance(point)

	if math.Abs(before+after) > 1e-12 {
		t.Errorf("flip should negate signed distances: before=%v after=%v", before, after)
	}

	plane.Flip()
	if !vec3ApproxEqual(plane.Normal, mgl64.Vec3{0, 0, 1}, 1e-12) || plane.Offset != 2 {
		t.Errorf("double flip should restore the plane, got %+v", plane)
	}
}

func TestSignedDistance(t *testing.T) {
	plane := Plane{Normal: mgl64.Vec3{1, 0, 0}, Offset: 0.5}

	tests := []struct {
		name     string
		point    mgl64.Vec3
		expected float64
	}{
		{name: "in front", point: mgl64.Vec3{2, 0, 0}, expected: 1.5},
		{name: "behind", point: mgl64.Vec3{0, 3, 7}, expected: -0.5},
		{name: "on the plane", point: mgl64.Vec3{0.5, -1, 4}, expected: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if d := plane.SignedDistance(tt.point); math.Abs(d-tt.expected) > 1e-12 {
				t.Errorf("distance = %v, expected %v", d, tt.expected)
			}
		})
	}
}

func TestSplitRouting(t *testing.T) {
	plane := Plane{Normal: mgl64.Vec3{0, 0, 1}, Offset: 0}

	flipped := unitSquare()
	flipped.Flip()

	tests := []struct {
		name    string
		polygon Polygon
		bucket  string
	}{
		{name: "coplanar same orientation", polygon: unitSquare(), bucket: "coplanarFront"},
		{name: "coplanar opposite orientation", polygon: flipped, bucket: "coplanarBack"},
		{name: "entirely in front", polygon: translated(unitSquare(), mgl64.Vec3{0, 0, 1}), bucket: "front"},
		{name: "entirely behind", polygon: translated(unitSquare(), mgl64.Vec3{0, 0, -1}), bucket: "back"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var coplanarFront, coplanarBack, front, back []Polygon
			plane.Split(tt.polygon, &coplanarFront, &coplanarBack, &front, &back)

			got := map[string]int{
				"coplanarFront": len(coplanarFront),
				"coplanarBack":  len(coplanarBack),
				"front":         len(front),
				"back":          len(back),
			}
			for bucket, count := range got {
				expected := 0
				if bucket == tt.bucket {
					expected = 1
				}
				if count != expected {
					t.Errorf("bucket %s has %d polygons, expected %d", bucket, count, expected)
				}
			}

			// One-sided and coplanar polygons pass through unmodified.
			if got[tt.bucket] == 1 {
				var routed Polygon
				switch tt.bucket {
				case "coplanarFront":
					routed = coplanarFront[0]
				case "coplanarBack":
					routed = coplanarBack[0]
				case "front":
					routed = front[0]
				case "back":
					routed = back[0]
				}
				if len(routed.Vertices) != len(tt.polygon.Vertices) {
					t.Errorf("routed polygon was modified: %d vertices, expected %d",
						len(routed.Vertices), len(tt.polygon.Vertices))
				}
			}
		})
	}
}

func TestSplitSpanning(t *testing.T) {
	plane := Plane{Normal: mgl64.Vec3{1, 0, 0}, Offset: 0.5}
	square := unitSquare()

	var coplanarFront, coplanarBack, front, back []Polygon
	plane.Split(square, &coplanarFront, &coplanarBack, &front, &back)

	if len(coplanarFront) != 0 || len(coplanarBack) != 0 {
		t.Fatalf("spanning polygon should not produce coplanar output")
	}
	if len(front) != 1 || len(back) != 1 {
		t.Fatalf("expected one fragment per side, got front=%d back=%d", len(front), len(back))
	}

	// The cut must cover exactly the original area.
	total := polygonArea(front[0]) + polygonArea(back[0])
	if math.Abs(total-polygonArea(square)) > 1e-9 {
		t.Errorf("area after split = %v, expected %v", total, polygonArea(square))
	}

	for _, v := range front[0].Vertices {
		if plane.SignedDistance(v.Position) < -PlaneEpsilon {
			t.Errorf("front fragment vertex %v is behind the plane", v.Position)
		}
	}
	for _, v := range back[0].Vertices {
		if plane.SignedDistance(v.Position) > PlaneEpsilon {
			t.Errorf("back fragment vertex %v is in front of the plane", v.Position)
		}
	}

	// Fragments stay on the parent's plane rather than deriving their own.
	if front[0].Plane != square.Plane || back[0].Plane != square.Plane {
		t.Errorf("fragments should inherit the parent polygon's plane")
	}
}

func TestSplitSpanningInterpolatesNormals(t *testing.T) {
	// Square with normals tilting from -X at x=0 to +X at x=1; the crossing
	// vertices at x=0.5 must land halfway.
	vertices := []Vertex{
		{Position: mgl64.Vec3{0, 0, 0}, Normal: mgl64.Vec3{-1, 0, 0}},
		{Position: mgl64.Vec3{1, 0, 0}, Normal: mgl64.Vec3{1, 0, 0}},
		{Position: mgl64.Vec3{1, 1, 0}, Normal: mgl64.Vec3{1, 0, 0}},
		{Position: mgl64.Vec3{0, 1, 0}, Normal: mgl64.Vec3{-1, 0, 0}},
	}
	square := NewPolygon(vertices)
	plane := Plane{Normal: mgl64.Vec3{1, 0, 0}, Offset: 0.5}

	var coplanarFront, coplanarBack, front, back []Polygon
	plane.Split(square, &coplanarFront, &coplanarBack, &front, &back)

	if len(front) != 1 || len(back) != 1 {
		t.Fatalf("expected one fragment per side, got front=%d back=%d", len(front), len(back))
	}
	for _, fragment := range []Polygon{front[0], back[0]} {
		for _, v := range fragment.Vertices {
			if math.Abs(v.Position.X()-0.5) < 1e-12 {
				if !vec3ApproxEqual(v.Normal, mgl64.Vec3{0, 0, 0}, 1e-12) {
					t.Errorf("crossing vertex normal = %v, expected interpolated zero", v.Normal)
				}
			}
		}
	}
}

func TestSplitAliasedDestinations(t *testing.T) {
	// Build passes the same list for both coplanar buckets; make sure
	// aliased destinations work for the cut case too.
	plane := Plane{Normal: mgl64.Vec3{1, 0, 0}, Offset: 0.5}

	var all []Polygon
	plane.Split(unitSquare(), &all, &all, &all, &all)
	if len(all) != 2 {
		t.Errorf("expected 2 fragments in the shared list, got %d", len(all))
	}

	all = all[:0]
	coplanar := Plane{Normal: mgl64.Vec3{0, 0, 1}, Offset: 0}
	coplanar.Split(unitSquare(), &all, &all, &all, &all)
	if len(all) != 1 {
		t.Errorf("expected 1 coplanar polygon in the shared list, got %d", len(all))
	}
}
