package planar

import (
	"github.com/golang/geo/r2"

	"github.com/go-clipper/geomclip"
)

// Geometry implements geomclip.Geometry for the Euclidean plane.
type Geometry struct{}

// NewEdge returns the segment between from and to.
func (Geometry) NewEdge(from, to geomclip.Vertex) geomclip.Edge {
	return Segment{From: from.(Point), To: to.(Point)}
}

// wedgeSide locates a direction leaving an intersection vertex relative to
// the wedge the sibling boundary forms there.
type wedgeSide int

const (
	// wedgeInside is a direction into the interior the sibling boundary
	// keeps on its left.
	wedgeInside wedgeSide = iota
	// wedgeOn is a direction running along one of the sibling's two edges.
	wedgeOn
	// wedgeOutside is a direction into the sibling's exterior.
	wedgeOutside
)

// alignedWith reports whether u points the same way as the wedge bound d.
func alignedWith(u, d r2.Point, tol geomclip.Tolerance) bool {
	return geomclip.IsClose(d.Cross(u), 0, tol) && d.Dot(u) > 0
}

// classifyWedge locates u relative to the wedge spanned counter-clockwise
// from out (the direction the sibling boundary leaves the vertex) to in (the
// direction it arrived from); that sweep covers the interior the sibling
// keeps on its left. Collinear bounds mean the sibling passes straight
// through, leaving the interior as the half plane left of out, or doubles
// back on itself, leaving no interior at all.
func classifyWedge(u, out, in r2.Point, tol geomclip.Tolerance) wedgeSide {
	if alignedWith(u, out, tol) || alignedWith(u, in, tol) {
		return wedgeOn
	}

	span := out.Cross(in)
	if geomclip.IsClose(span, 0, tol) {
		if out.Dot(in) > 0 {
			return wedgeOutside
		}
		if out.Cross(u) > 0 {
			return wedgeInside
		}
		return wedgeOutside
	}

	if span > 0 {
		if out.Cross(u) > 0 && u.Cross(in) > 0 {
			return wedgeInside
		}
		return wedgeOutside
	}
	if out.Cross(u) > 0 || u.Cross(in) > 0 {
		return wedgeInside
	}
	return wedgeOutside
}

// Event classifies an intersection corner by locating this boundary's two
// neighbor directions relative to the wedge the sibling boundary forms at
// the shared vertex. Neighbors on the same strict side mean the boundaries
// touch without crossing, and Event returns nil; otherwise the side the
// outgoing neighbor falls on decides whether the boundary is entering or
// leaving the opposite shape, with the incoming neighbor breaking the tie
// when the outgoing one runs along the sibling itself.
func (Geometry) Event(corner geomclip.Corner, tol geomclip.Tolerance) *geomclip.Event {
	if corner.Intersection == nil {
		return nil
	}

	vertex := corner.Vertex.(Point).vector()
	out := corner.Intersection.Neighbors.Head.(Point).vector().Sub(vertex)
	in := corner.Intersection.Neighbors.Tail.(Point).vector().Sub(vertex)
	tail := classifyWedge(corner.Neighbors.Tail.(Point).vector().Sub(vertex), out, in, tol)
	head := classifyWedge(corner.Neighbors.Head.(Point).vector().Sub(vertex), out, in, tol)

	return crossingEvent(tail, head)
}

// crossingEvent translates the wedge sides of a corner's two neighbors into
// its Entry/Exit classification, or nil for a touch.
func crossingEvent(tail, head wedgeSide) *geomclip.Event {
	entry, exit := geomclip.EventEntry, geomclip.EventExit
	switch {
	case tail == head && head != wedgeOn:
		return nil
	case head == wedgeInside:
		return &entry
	case head == wedgeOutside:
		return &exit
	case tail == wedgeInside:
		return &exit
	case tail == wedgeOutside:
		return &entry
	default:
		// Both neighbors run along the sibling: the boundaries coincide
		// through this corner and the walk may still switch between them.
		return &entry
	}
}

// FromRaw validates a collected vertex loop and returns the Polygon it
// describes. The plane needs no exterior anchor, so the only requirement is
// that the loop has at least three vertices.
func (Geometry) FromRaw(operands geomclip.Operands, vertices []geomclip.Vertex, tol geomclip.Tolerance) (geomclip.Polygon, bool) {
	if len(vertices) < 3 {
		return nil, false
	}
	points := make([]Point, len(vertices))
	for i, v := range vertices {
		points[i] = v.(Point)
	}
	return Polygon{points: points}, true
}
