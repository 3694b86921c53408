package geomclip

// node is one vertex position in the spliced graph: a point on either the
// subject's or the clip's boundary, linked to its neighbors along that
// boundary and, if it sits at a crossing, to its sibling on the other shape.
type node struct {
	vertex       Vertex
	boundary     int
	previous     int
	next         int
	intersection *intersection
	visited      bool
}

// intersection links a node to its counterpart on the opposite shape at the
// same point, along with the Entry/Exit classification of this side of the
// crossing.
type intersection struct {
	sibling int
	event   *Event
}

// boundary is one input ring, seeded once and then walked during traversal.
type boundary struct {
	entrypoint int
	role       Role
	visited    bool
}

// graph is the spliced intersection graph built from a pair of operands: the
// subject's and clip's boundaries seeded as independent cycles, then cut and
// rejoined at every point where an edge of one crosses an edge of the other.
type graph struct {
	nodes      []node
	boundaries []boundary
}

// get returns the node at position, or false if it has already been visited.
func (g *graph) get(position int) (*node, bool) {
	if g.nodes[position].visited {
		return nil, false
	}
	return &g.nodes[position], true
}

// take returns the node at position and marks both it and its boundary
// visited, or false if the node was already visited.
func (g *graph) take(position int) (node, bool) {
	if g.nodes[position].visited {
		return node{}, false
	}
	g.nodes[position].visited = true
	g.boundaries[g.nodes[position].boundary].visited = true
	return g.nodes[position], true
}

// corner builds the local-geometry view of the node at position, including
// its sibling's neighbors and event if it sits at a crossing.
func (g *graph) corner(position int) Corner {
	n := g.nodes[position]
	c := Corner{
		Vertex:    n.vertex,
		Neighbors: Neighbors{Tail: g.nodes[n.previous].vertex, Head: g.nodes[n.next].vertex},
		Role:      g.boundaries[n.boundary].role,
	}
	if n.intersection != nil {
		sibling := g.nodes[n.intersection.sibling]
		c.Intersection = &IntersectionCorner{
			Event:     n.intersection.event,
			Neighbors: Neighbors{Tail: g.nodes[sibling.previous].vertex, Head: g.nodes[sibling.next].vertex},
		}
	}
	return c
}
