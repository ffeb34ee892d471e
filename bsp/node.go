// Package bsp implements the solid-leaf binary space partitioning tree that
// the boolean combinators clip polygon sets against.
//
// Every node owns a splitting plane, the polygons coplanar with that plane,
// and two lazily created subtrees for the front and back half-spaces. A
// missing front child stands for empty space beyond the boundary, a missing
// back child for solid interior; that convention is what lets ClipPolygons
// decide the fate of fragments that fall off the built tree, and what the
// combinators exploit by inverting a tree before clipping against it.
//
// All tree walks run on explicit work stacks rather than call recursion.
// The first-polygon plane heuristic gives no balance guarantee, so on
// adversarial input the tree depth is proportional to the polygon count;
// with heap-allocated stacks that costs memory, not goroutine stack frames.
package bsp

import "github.com/akmonengine/chisel/geom"

// Node is one cell of the partitioning tree. The zero value is an empty
// placeholder whose plane is still unassigned; such a node passes clip
// input through unchanged.
//
// A node exclusively owns its polygon list and its subtrees. No two live
// trees ever share mutable state; Clone enforces that with a full deep
// copy.
type Node struct {
	polygons []geom.Polygon
	plane    geom.Plane
	front    *Node
	back     *Node
}

// buildTask pairs a node with the polygons still to be pushed into it.
type buildTask struct {
	node     *Node
	polygons []geom.Polygon
}

// FromPolygons builds a fresh tree over the given polygons.
func FromPolygons(polygons []geom.Polygon) *Node {
	node := &Node{}
	node.Build(polygons)
	return node
}

// Build inserts polygons into the tree, extending the existing structure in
// place rather than rebuilding it; calling Build again pushes the new
// polygons deeper into what is already there.
//
// A node reached for the first time adopts the plane of the first polygon
// that arrives (no cost-based plane selection, so tree shape and result
// tessellation are input-order dependent). Each polygon is then split
// against that plane: coplanar fragments stay on the node, front and back
// fragments continue into the lazily created children.
//
// Polygons with an invalid plane (degenerate input) are skipped; an empty
// or all-degenerate list is a no-op.
func (n *Node) Build(polygons []geom.Polygon) {
	usable := make([]geom.Polygon, 0, len(polygons))
	for _, poly := range polygons {
		if poly.Plane.Valid() {
			usable = append(usable, poly)
		}
	}
	if len(usable) == 0 {
		return
	}

	stack := []buildTask{{node: n, polygons: usable}}
	for len(stack) > 0 {
		t := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		node := t.node
		if !node.plane.Valid() {
			node.plane = t.polygons[0].Plane
		}

		var front, back []geom.Polygon
		for _, poly := range t.polygons {
			// Both coplanar orientations land on this node's own list.
			node.plane.Split(poly, &node.polygons, &node.polygons, &front, &back)
		}

		if len(front) > 0 {
			if node.front == nil {
				node.front = &Node{}
			}
			stack = append(stack, buildTask{node: node.front, polygons: front})
		}
		if len(back) > 0 {
			if node.back == nil {
				node.back = &Node{}
			}
			stack = append(stack, buildTask{node: node.back, polygons: back})
		}
	}
}

// ClipPolygons returns the parts of polygons (split where necessary) that
// survive outside the solid this tree describes.
//
// Fragments are filtered by the solid-leaf convention: a fragment ending up
// in front of a boundary with no front child has reached empty space and is
// kept as-is; one ending up behind a boundary with no back child is inside
// the solid and is discarded. A node with no plane passes its input through
// unchanged, so clipping against an originally-empty tree keeps everything.
//
// The result is ordered pre-order, each node's front-side survivors before
// its back-side survivors, and never aliases tree state.
func (n *Node) ClipPolygons(polygons []geom.Polygon) []geom.Polygon {
	var result []geom.Polygon

	stack := []buildTask{{node: n, polygons: polygons}}
	for len(stack) > 0 {
		t := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		node := t.node
		if !node.plane.Valid() {
			result = append(result, t.polygons...)
			continue
		}

		var front, back []geom.Polygon
		for _, poly := range t.polygons {
			// No separate coplanar buckets here: coplanar pieces merge
			// into whichever side the split's normal test assigns.
			node.plane.Split(poly, &front, &back, &front, &back)
		}

		// Back is pushed first so the LIFO stack fully resolves the front
		// batch before it; missing back child means the fragments are
		// interior and simply dropped.
		if node.back != nil && len(back) > 0 {
			stack = append(stack, buildTask{node: node.back, polygons: back})
		}
		if node.front != nil {
			if len(front) > 0 {
				stack = append(stack, buildTask{node: node.front, polygons: front})
			}
		} else {
			result = append(result, front...)
		}
	}

	return result
}

// ClipTo removes every part of this tree's polygons that lies inside the
// solid described by other. Each node's list is clipped against other's
// root, not against the node's own subtree.
func (n *Node) ClipTo(other *Node) {
	stack := []*Node{n}
	for len(stack) > 0 {
		node := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		node.polygons = other.ClipPolygons(node.polygons)
		if node.front != nil {
			stack = append(stack, node.front)
		}
		if node.back != nil {
			stack = append(stack, node.back)
		}
	}
}

// Invert swaps the tree's solid and empty polarity in place: every polygon
// and plane is flipped and the front/back subtrees trade places. Inverting
// twice restores the original tree exactly.
func (n *Node) Invert() {
	stack := []*Node{n}
	for len(stack) > 0 {
		node := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		for i := range node.polygons {
			node.polygons[i].Flip()
		}
		node.plane.Flip()
		node.front, node.back = node.back, node.front

		if node.front != nil {
			stack = append(stack, node.front)
		}
		if node.back != nil {
			stack = append(stack, node.back)
		}
	}
}

// AllPolygons collects every polygon in the tree, pre-order with front
// subtrees before back subtrees. Each polygon is deep-copied, so the result
// never aliases tree state and feeding it to another tree's Build cannot
// corrupt this one.
func (n *Node) AllPolygons() []geom.Polygon {
	var result []geom.Polygon

	stack := []*Node{n}
	for len(stack) > 0 {
		node := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		for i := range node.polygons {
			result = append(result, node.polygons[i].Clone())
		}

		// Back first on the stack so front pops first.
		if node.back != nil {
			stack = append(stack, node.back)
		}
		if node.front != nil {
			stack = append(stack, node.front)
		}
	}

	return result
}

// cloneTask pairs a source node with its copy under construction.
type cloneTask struct {
	src *Node
	dst *Node
}

// Clone returns a fully independent deep copy: fresh polygon and vertex
// storage, fresh children. Mutating the clone through Build, ClipTo or
// Invert never touches the original.
func (n *Node) Clone() *Node {
	root := &Node{}

	stack := []cloneTask{{src: n, dst: root}}
	for len(stack) > 0 {
		t := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		t.dst.plane = t.src.plane
		if len(t.src.polygons) > 0 {
			t.dst.polygons = make([]geom.Polygon, 0, len(t.src.polygons))
			for i := range t.src.polygons {
				t.dst.polygons = append(t.dst.polygons, t.src.polygons[i].Clone())
			}
		}

		if t.src.front != nil {
			t.dst.front = &Node{}
			stack = append(stack, cloneTask{src: t.src.front, dst: t.dst.front})
		}
		if t.src.back != nil {
			t.dst.back = &Node{}
			stack = append(stack, cloneTask{src: t.src.back, dst: t.dst.back})
		}
	}

	return root
}
