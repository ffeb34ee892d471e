package main

import (
	"fmt"

	"github.com/akmonengine/chisel"
	"github.com/akmonengine/chisel/mesh"
	"github.com/akmonengine/chisel/shape"
	"github.com/go-gl/mathgl/mgl64"
)

func report(name string, s chisel.Solid) {
	bounds := s.Bounds()
	fmt.Printf("%-16s polygons=%-4d triangles=%-4d volume=%.4f\n",
		name, len(s.Polygons), len(mesh.Triangulate(s.Polygons)), mesh.Volume(s.Polygons))
	fmt.Printf("                 bounds min=%v max=%v\n", bounds.Min, bounds.Max)
}

func main() {
	cube := chisel.FromPolygons(shape.Cube(mgl64.Vec3{0, 0, 0}, mgl64.Vec3{1, 1, 1}))
	sphere := chisel.FromPolygons(shape.Sphere(mgl64.Vec3{1, 1, 1}, 1.2, 24, 12))
	pipe := chisel.FromPolygons(shape.Cylinder(mgl64.Vec3{0, -2, 0}, mgl64.Vec3{0, 2, 0}, 0.5, 24))

	report("cube", cube)
	report("sphere", sphere)
	report("cylinder", pipe)

	fmt.Println()
	report("cube ∪ sphere", chisel.Union(cube, sphere))
	report("cube − sphere", chisel.Subtract(cube, sphere))
	report("cube ∩ sphere", chisel.Intersect(cube, sphere))
	report("cube − cylinder", chisel.Subtract(cube, pipe))
}
