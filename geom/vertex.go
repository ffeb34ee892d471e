package geom

import "github.com/go-gl/mathgl/mgl64"

// Vertex is a polygon corner carrying a position and a surface normal.
// Normals survive splitting so a consumer can rebuild smooth shading on
// the result mesh.
type Vertex struct {
	Position mgl64.Vec3
	Normal   mgl64.Vec3
}

// Lerp interpolates from v toward other along an edge. Position and normal
// use the same parameter t.
func (v Vertex) Lerp(other Vertex, t float64) Vertex {
	return Vertex{
		Position: v.Position.Add(other.Position.Sub(v.Position).Mul(t)),
		Normal:   v.Normal.Add(other.Normal.Sub(v.Normal).Mul(t)),
	}
}

// Flip negates the vertex normal.
func (v *Vertex) Flip() {
	v.Normal = v.Normal.Mul(-1)
}
