package geomclip

import "sort"

// edgeHit records one point where a subject edge crosses a clip edge, keyed
// by the start-node position of each edge.
type edgeHit struct {
	vertex  Vertex
	subject int
	clip    int
}

// edgeHits indexes edgeHit records by the start-node position of either edge
// that produced them, so every edge can later be spliced against the hits
// that fall on it regardless of which operand it belongs to.
type edgeHits struct {
	all    []edgeHit
	byEdge map[int][]int
}

func (h *edgeHits) add(hit edgeHit) {
	index := len(h.all)
	h.all = append(h.all, hit)
	h.byEdge[hit.subject] = append(h.byEdge[hit.subject], index)
	h.byEdge[hit.clip] = append(h.byEdge[hit.clip], index)
}

// buildGraph seeds a node cycle for every boundary of both operands, cuts
// every edge at the points where it crosses an edge of the opposite shape,
// links the resulting siblings, and classifies every crossing as an
// Entry or Exit event.
func buildGraph(operands Operands, geometry Geometry, tol Tolerance) *graph {
	g := &graph{}
	g.seed(operands.Subject, RoleSubject)
	g.seed(operands.Clip, RoleClip)
	g.splice(geometry, tol)
	g.classify(geometry, tol)
	return g
}

func (g *graph) seed(s *Shape, role Role) {
	for _, p := range s.Boundaries {
		vertices := p.Vertices()
		n := len(vertices)
		base := len(g.nodes)
		boundaryIndex := len(g.boundaries)
		g.boundaries = append(g.boundaries, boundary{entrypoint: base, role: role})
		for i, v := range vertices {
			g.nodes = append(g.nodes, node{
				vertex:   v,
				boundary: boundaryIndex,
				previous: base + (i-1+n)%n,
				next:     base + (i+1)%n,
			})
		}
	}
}

// edgeAt is one edge of a boundary as originally seeded, keyed by the
// position of its start node.
type edgeAt struct {
	edge     Edge
	position int
}

func (g *graph) edgesOf(geometry Geometry, b boundary) []edgeAt {
	var edges []edgeAt
	position := b.entrypoint
	for {
		next := g.nodes[position].next
		edges = append(edges, edgeAt{edge: geometry.NewEdge(g.nodes[position].vertex, g.nodes[next].vertex), position: position})
		position = next
		if position == b.entrypoint {
			break
		}
	}
	return edges
}

func (g *graph) findHits(geometry Geometry, tol Tolerance) *edgeHits {
	hits := &edgeHits{byEdge: map[int][]int{}}
	for si := range g.boundaries {
		if !g.boundaries[si].role.IsSubject() {
			continue
		}
		subjectEdges := g.edgesOf(geometry, g.boundaries[si])
		for ci := range g.boundaries {
			if g.boundaries[ci].role.IsSubject() {
				continue
			}
			clipEdges := g.edgesOf(geometry, g.boundaries[ci])
			for _, se := range subjectEdges {
				for _, ce := range clipEdges {
					crossing := se.edge.Intersection(ce.edge, tol)
					switch crossing.Kind {
					case OneCrossing:
						hits.add(edgeHit{vertex: crossing.First, subject: se.position, clip: ce.position})
					case TwoCrossings:
						hits.add(edgeHit{vertex: crossing.First, subject: se.position, clip: ce.position})
						hits.add(edgeHit{vertex: crossing.Second, subject: se.position, clip: ce.position})
					}
				}
			}
		}
	}
	return hits
}

// splice cuts every edge carrying at least one hit, inserting a node for
// each distinct crossing point (or reusing the edge's own endpoints when a
// hit lands on one of them) and linking siblings that land on the exact same
// point.
func (g *graph) splice(geometry Geometry, tol Tolerance) {
	hits := g.findHits(geometry, tol)

	edgePositions := make([]int, 0, len(hits.byEdge))
	for position := range hits.byEdge {
		edgePositions = append(edgePositions, position)
	}
	sort.Ints(edgePositions)

	visited := map[Vertex]int{}

	for _, current := range edgePositions {
		indexes := append([]int(nil), hits.byEdge[current]...)
		first := g.nodes[current].vertex
		boundaryIndex := g.nodes[current].boundary
		next := g.nodes[current].next
		last := g.nodes[next].vertex

		sort.SliceStable(indexes, func(i, j int) bool {
			return first.Distance(hits.all[indexes[i]].vertex) < first.Distance(hits.all[indexes[j]].vertex)
		})

		previous := current
		i := 0
		for i < len(indexes) {
			j := i + 1
			for j < len(indexes) && hits.all[indexes[j]].vertex.Equal(hits.all[indexes[i]].vertex) {
				j++
			}
			point := hits.all[indexes[i]].vertex
			i = j

			if point.Equal(first) {
				continue
			}

			var index int
			if point.Equal(last) {
				index = next
			} else {
				index = len(g.nodes)
			}

			var self *intersection
			if siblingIndex, ok := visited[point]; ok {
				g.nodes[siblingIndex].intersection = &intersection{sibling: index}
				self = &intersection{sibling: siblingIndex}
			}

			if index == next {
				g.nodes[index].intersection = self
			} else {
				tail := g.nodes[previous].next
				g.nodes[previous].next = index
				g.nodes[tail].previous = index
				g.nodes = append(g.nodes, node{
					vertex:       point,
					boundary:     boundaryIndex,
					previous:     previous,
					next:         tail,
					intersection: self,
				})
			}

			visited[point] = index
			previous = index
		}
	}
}

// classify computes the Entry/Exit event for every spliced crossing, once
// per side, using the corner formed by the node and its sibling's neighbors.
func (g *graph) classify(geometry Geometry, tol Tolerance) {
	for position := range g.nodes {
		pending := g.nodes[position].intersection
		if pending == nil {
			continue
		}
		event := geometry.Event(g.corner(position), tol)
		g.nodes[position].intersection = &intersection{sibling: pending.sibling, event: event}
	}
}
