package geom

import (
	"math"
	"sync"

	"github.com/go-gl/mathgl/mgl64"
)

// PlaneEpsilon is the distance below which a point counts as lying on a
// plane. Mesh features smaller than this tolerance may be misclassified;
// that is the accepted precision boundary of the whole package, not an
// error condition.
const PlaneEpsilon = 1e-5

// Vertex classification relative to a plane. sideSpanning is the bitwise
// OR of sideFront and sideBack, which is what lets Split compute a whole
// polygon's class by OR-ing its vertices together.
const (
	sideCoplanar = 0
	sideFront    = 1
	sideBack     = 2
	sideSpanning = 3
)

// Plane - frontière orientée d'un demi-espace: Normal·p = Offset.
// Points with Normal·p > Offset are in front. The zero value is invalid
// and doubles as the "not yet assigned" sentinel in BSP nodes.
type Plane struct {
	Normal mgl64.Vec3
	Offset float64
}

// PlaneFromPoints builds the plane through a, b and c, with the normal
// given by the right-hand rule over (b-a)×(c-a). A degenerate (collinear)
// triple yields the invalid plane.
func PlaneFromPoints(a, b, c mgl64.Vec3) Plane {
	normal := b.Sub(a).Cross(c.Sub(a))

	length := math.Sqrt(normal.Dot(normal))
	if length < 1e-8 {
		// Triangle dégénéré (aire nulle)
		return Plane{}
	}
	normal = normal.Mul(1 / length)

	return Plane{Normal: normal, Offset: normal.Dot(a)}
}

// Valid reports whether the plane has been assigned a usable normal.
func (p Plane) Valid() bool {
	return p.Normal.Dot(p.Normal) > 0
}

// Flip reverses the plane's orientation. Same geometric plane, opposite
// front side.
func (p *Plane) Flip() {
	p.Normal = p.Normal.Mul(-1)
	p.Offset = -p.Offset
}

// SignedDistance returns the distance from point to the plane, positive on
// the front side.
func (p Plane) SignedDistance(point mgl64.Vec3) float64 {
	return p.Normal.Dot(point) - p.Offset
}

// splitScratch holds the per-call vertex classification buffers. Pooled so
// that the many splits of a tree build do not allocate.
type splitScratch struct {
	types []int
	dists []float64
}

var splitScratchPool = sync.Pool{
	New: func() interface{} {
		return &splitScratch{}
	},
}

func (s *splitScratch) reset(n int) {
	if cap(s.types) < n {
		s.types = make([]int, 0, n)
		s.dists = make([]float64, 0, n)
	}
	s.types = s.types[:0]
	s.dists = s.dists[:0]
}

// Split classifies poly against p and routes it, or the two fragments it is
// cut into, to the four destination lists. Destinations may alias each
// other; tree building passes the same list for both coplanar buckets.
//
// Algorithm overview:
//  1. Classify every vertex by signed distance against PlaneEpsilon.
//  2. OR the vertex classes together to get the polygon's class.
//  3. Coplanar polygons go front or back depending on whether their own
//     normal agrees with p's; polygons entirely on one side pass through
//     unmodified.
//  4. Spanning polygons are cut: walking the loop cyclically, each edge
//     whose endpoints change sign emits one interpolated vertex into both
//     halves at the crossing point. A half reduced below 3 vertices is a
//     degenerate sliver and is dropped.
//
// The tie-break at the epsilon boundary uses strict comparisons in exactly
// one place (the classification loop), so repeated splitting of
// coplanar-adjacent fragments cannot regress forever.
func (p Plane) Split(poly Polygon, coplanarFront, coplanarBack, front, back *[]Polygon) {
	scratch := splitScratchPool.Get().(*splitScratch)
	defer splitScratchPool.Put(scratch)
	scratch.reset(len(poly.Vertices))

	polyType := sideCoplanar
	for _, v := range poly.Vertices {
		d := p.SignedDistance(v.Position)

		side := sideCoplanar
		if d < -PlaneEpsilon {
			side = sideBack
		} else if d > PlaneEpsilon {
			side = sideFront
		}

		polyType |= side
		scratch.types = append(scratch.types, side)
		scratch.dists = append(scratch.dists, d)
	}

	switch polyType {
	case sideCoplanar:
		if p.Normal.Dot(poly.Plane.Normal) > 0 {
			*coplanarFront = append(*coplanarFront, poly)
		} else {
			*coplanarBack = append(*coplanarBack, poly)
		}
	case sideFront:
		*front = append(*front, poly)
	case sideBack:
		*back = append(*back, poly)
	case sideSpanning:
		var f, b []Vertex
		count := len(poly.Vertices)
		for i := 0; i < count; i++ {
			j := (i + 1) % count
			ti, tj := scratch.types[i], scratch.types[j]
			vi := poly.Vertices[i]

			if ti != sideBack {
				f = append(f, vi)
			}
			if ti != sideFront {
				b = append(b, vi)
			}
			if ti|tj == sideSpanning {
				// Crossing edge: the interpolated vertex belongs to
				// both halves, which is what keeps the cut watertight.
				t := scratch.dists[i] / (scratch.dists[i] - scratch.dists[j])
				crossing := vi.Lerp(poly.Vertices[j], t)
				f = append(f, crossing)
				b = append(b, crossing)
			}
		}
		if len(f) >= 3 {
			*front = append(*front, NewPolygonWithPlane(f, poly.Plane))
		}
		if len(b) >= 3 {
			*back = append(*back, NewPolygonWithPlane(b, poly.Plane))
		}
	}
}
