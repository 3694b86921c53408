package spherical

import (
	"math"

	"github.com/golang/geo/r3"

	"github.com/go-clipper/geomclip"
)

// Geometry implements geomclip.Geometry for the surface of the unit sphere.
type Geometry struct{}

// NewEdge returns the arc between from and to.
func (Geometry) NewEdge(from, to geomclip.Vertex) geomclip.Edge {
	return Arc{From: from.(Point), To: to.(Point)}
}

// wedgeSide locates a tangent direction leaving an intersection vertex
// relative to the wedge the sibling boundary forms there.
type wedgeSide int

const (
	// wedgeInside is a direction into the interior the sibling boundary
	// keeps on its left.
	wedgeInside wedgeSide = iota
	// wedgeOn is a direction running along one of the sibling's two arcs.
	wedgeOn
	// wedgeOutside is a direction into the sibling's exterior.
	wedgeOutside
)

// tangentToward returns the direction at the unit vector v along the great
// circle toward target, the target's offset projected onto the tangent
// plane at v. The zero vector comes back when target coincides with v or
// its antipode.
func tangentToward(v r3.Vector, target Point) r3.Vector {
	w := target.vector()
	return w.Sub(v.Mul(w.Dot(v)))
}

// orientedArea is the tangent-plane analogue of the planar cross product:
// positive when b lies counter-clockwise of a, as seen from outside the
// sphere at v.
func orientedArea(v, a, b r3.Vector) float64 {
	return v.Dot(a.Cross(b))
}

// alignedWith reports whether the tangent u points the same way as the
// wedge bound d.
func alignedWith(v, u, d r3.Vector, tol geomclip.Tolerance) bool {
	return geomclip.IsClose(orientedArea(v, d, u), 0, tol) && d.Dot(u) > 0
}

// classifyWedge locates the tangent u relative to the wedge spanned
// counter-clockwise from out (the direction the sibling boundary leaves the
// vertex) to in (the direction it arrived from), all in the tangent plane at
// v; that sweep covers the interior the sibling keeps on its left. Collinear
// bounds mean the sibling's great circle passes straight through, leaving
// the interior as the half plane left of out, or the sibling doubles back on
// itself, leaving no interior at all.
func classifyWedge(v, u, out, in r3.Vector, tol geomclip.Tolerance) wedgeSide {
	if alignedWith(v, u, out, tol) || alignedWith(v, u, in, tol) {
		return wedgeOn
	}

	span := orientedArea(v, out, in)
	if geomclip.IsClose(span, 0, tol) {
		if out.Dot(in) > 0 {
			return wedgeOutside
		}
		if orientedArea(v, out, u) > 0 {
			return wedgeInside
		}
		return wedgeOutside
	}

	if span > 0 {
		if orientedArea(v, out, u) > 0 && orientedArea(v, u, in) > 0 {
			return wedgeInside
		}
		return wedgeOutside
	}
	if orientedArea(v, out, u) > 0 || orientedArea(v, u, in) > 0 {
		return wedgeInside
	}
	return wedgeOutside
}

// Event classifies an intersection corner exactly as planar.Geometry.Event
// does, locating this boundary's two neighbor directions relative to the
// wedge the sibling boundary forms at the shared vertex, except that the
// directions are tangents along the corresponding great circles. Neighbors
// on the same strict side mean the boundaries touch without crossing, and
// Event returns nil.
func (Geometry) Event(corner geomclip.Corner, tol geomclip.Tolerance) *geomclip.Event {
	if corner.Intersection == nil {
		return nil
	}

	v := corner.Vertex.(Point).vector()
	out := tangentToward(v, corner.Intersection.Neighbors.Head.(Point))
	in := tangentToward(v, corner.Intersection.Neighbors.Tail.(Point))
	ownTail := tangentToward(v, corner.Neighbors.Tail.(Point))
	ownHead := tangentToward(v, corner.Neighbors.Head.(Point))
	for _, tangent := range []r3.Vector{out, in, ownTail, ownHead} {
		if tangent.Norm() == 0 {
			return nil
		}
	}

	tail := classifyWedge(v, ownTail, out, in, tol)
	head := classifyWedge(v, ownHead, out, in, tol)

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

// FromRaw validates a collected vertex loop and synthesizes an exterior
// anchor for it: a point just off one of the operands' edges that lies
// outside both operands, falling back to an existing operand boundary's own
// exterior anchor when no probe point off any edge lies outside both shapes.
func (Geometry) FromRaw(operands geomclip.Operands, vertices []geomclip.Vertex, tol geomclip.Tolerance) (geomclip.Polygon, bool) {
	if len(vertices) < 3 {
		return nil, false
	}
	points := make([]Point, len(vertices))
	for i, v := range vertices {
		points[i] = v.(Point)
	}

	theta := math.Pi * tol.Relative.Value()

	closestExterior := func(arc Arc, theta float64) (Point, bool) {
		midpoint := arc.Midpoint().(Point)
		normal := arc.normal()
		tangent := normal.Cross(midpoint.vector()).Normalize()
		candidate := fromVector(rotate(midpoint.vector(), tangent, theta))

		if !operands.Subject.Contains(candidate, tol) && !operands.Clip.Contains(candidate, tol) {
			return candidate, true
		}
		return Point{}, false
	}

	for _, arc := range append(arcsOf(operands.Subject), arcsOf(operands.Clip)...) {
		if candidate, ok := closestExterior(arc, theta); ok {
			return Polygon{points: points, exterior: candidate}, true
		}
		if candidate, ok := closestExterior(arc, -theta); ok {
			return Polygon{points: points, exterior: candidate}, true
		}
	}

	if exterior, ok := unclippedExterior(operands.Subject, operands.Clip, tol); ok {
		return Polygon{points: points, exterior: exterior}, true
	}
	if exterior, ok := unclippedExterior(operands.Clip, operands.Subject, tol); ok {
		return Polygon{points: points, exterior: exterior}, true
	}

	return nil, false
}

func arcsOf(s *geomclip.Shape) []Arc {
	var arcs []Arc
	for _, poly := range s.Boundaries {
		for _, e := range poly.Edges() {
			arcs = append(arcs, e.(Arc))
		}
	}
	return arcs
}

// unclippedExterior returns the exterior anchor of a boundary of s that does
// not lie inside other.
func unclippedExterior(s, other *geomclip.Shape, tol geomclip.Tolerance) (Point, bool) {
	for _, poly := range s.Boundaries {
		p, ok := poly.(Polygon)
		if ok && !other.Contains(p.exterior, tol) {
			return p.exterior, true
		}
	}
	return Point{}, false
}
