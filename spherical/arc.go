package spherical

import (
	"math"

	"github.com/golang/geo/r3"

	"github.com/go-clipper/geomclip"
)

// Arc is the undirected great-circle arc between two endpoints.
type Arc struct {
	From, To Point
}

// Midpoint returns the point halfway along the arc. Antipodal endpoints lie
// on infinitely many great circles, so an arbitrary point is synthesized by
// offsetting both coordinates by a quarter turn.
func (a Arc) Midpoint() geomclip.Vertex {
	if a.isAntipodal() {
		return NewPoint(a.From.Inclination+math.Pi/2, a.From.Azimuth+math.Pi/2)
	}
	return fromVector(a.From.vector().Add(a.To.vector()).Normalize())
}

func (a Arc) length() float64 {
	return a.From.Distance(a.To)
}

// Contains reports whether point lies on the arc within tol, by comparing
// the sum of the distances to the endpoints against the arc's own length.
func (a Arc) Contains(point geomclip.Vertex, tol geomclip.Tolerance) bool {
	p := point.(Point)
	total := a.From.Distance(p) + a.To.Distance(p)
	return geomclip.IsClose(total, a.length(), tol)
}

// normal returns the unit normal of the great circle containing a's
// endpoints.
func (a Arc) normal() r3.Vector {
	return a.From.vector().Cross(a.To.vector()).Normalize()
}

func (a Arc) isAntipodal() bool {
	return a.From.vector().Dot(a.To.vector()) == -1
}

// Intersection returns the crossing points between a and other. Antipodal
// arcs are split at an arbitrary midpoint and the two halves are
// intersected recursively, since no single great circle determinant exists
// between exactly opposite points. Arcs sharing a great circle fall back to
// collinear containment tests; otherwise the crossing is the one of the two
// points on the mutual great-circle intersection that both arcs contain.
func (a Arc) Intersection(other geomclip.Edge, tol geomclip.Tolerance) geomclip.Crossing {
	o := other.(Arc)

	if a.isAntipodal() {
		mid := a.Midpoint().(Point)
		firstHalf := Arc{From: a.From, To: mid}
		secondHalf := Arc{From: mid, To: a.To}

		first := o.Intersection(firstHalf, tol)
		if first.Kind == geomclip.NoCrossing {
			return o.Intersection(secondHalf, tol)
		}
		if first.Kind == geomclip.TwoCrossings {
			return first
		}

		second := o.Intersection(secondHalf, tol)
		if second.Kind == geomclip.NoCrossing {
			return first
		}
		if first.Kind == geomclip.OneCrossing && second.Kind == geomclip.OneCrossing {
			return geomclip.Crossing{Kind: geomclip.TwoCrossings, First: first.First, Second: second.First}
		}
		return second
	}

	direction := a.normal().Cross(o.normal())
	if geomclip.IsClose(direction.Norm(), 0, tol) {
		return a.coGreatCircularCommonPoints(o, tol)
	}

	if a.Contains(o.From, tol) {
		return geomclip.Crossing{Kind: geomclip.OneCrossing, First: o.From}
	}
	if a.Contains(o.To, tol) {
		return geomclip.Crossing{Kind: geomclip.OneCrossing, First: o.To}
	}
	if o.Contains(a.From, tol) {
		return geomclip.Crossing{Kind: geomclip.OneCrossing, First: a.From}
	}
	if o.Contains(a.To, tol) {
		return geomclip.Crossing{Kind: geomclip.OneCrossing, First: a.To}
	}

	lambda := 1 / direction.Norm()

	candidate := fromVector(direction.Mul(lambda))
	if a.Contains(candidate, tol) && o.Contains(candidate, tol) {
		return geomclip.Crossing{Kind: geomclip.OneCrossing, First: candidate}
	}

	candidate = fromVector(direction.Mul(-lambda))
	if a.Contains(candidate, tol) && o.Contains(candidate, tol) {
		return geomclip.Crossing{Kind: geomclip.OneCrossing, First: candidate}
	}

	return geomclip.Crossing{}
}

// coGreatCircularCommonPoints returns the intersection of a and other when
// both lie on the same great circle, by tabulating which endpoint of each
// arc the other contains.
func (a Arc) coGreatCircularCommonPoints(other Arc, tol geomclip.Tolerance) geomclip.Crossing {
	selfContainsOtherFrom := a.Contains(other.From, tol)
	selfContainsOtherTo := a.Contains(other.To, tol)

	if selfContainsOtherFrom && selfContainsOtherTo {
		return geomclip.Crossing{Kind: geomclip.TwoCrossings, First: other.From, Second: other.To}
	}

	otherContainsSelfFrom := other.Contains(a.From, tol)
	otherContainsSelfTo := other.Contains(a.To, tol)

	switch {
	case otherContainsSelfFrom && otherContainsSelfTo:
		return geomclip.Crossing{Kind: geomclip.TwoCrossings, First: a.From, Second: a.To}
	case selfContainsOtherFrom && otherContainsSelfTo:
		if !other.From.Equal(a.To) {
			return geomclip.Crossing{Kind: geomclip.TwoCrossings, First: other.From, Second: a.To}
		}
		return geomclip.Crossing{Kind: geomclip.OneCrossing, First: a.To}
	case selfContainsOtherFrom && otherContainsSelfFrom:
		if !other.From.Equal(a.From) {
			return geomclip.Crossing{Kind: geomclip.TwoCrossings, First: other.From, Second: a.From}
		}
		return geomclip.Crossing{Kind: geomclip.OneCrossing, First: a.From}
	case selfContainsOtherTo && otherContainsSelfFrom:
		if !other.To.Equal(a.From) {
			return geomclip.Crossing{Kind: geomclip.TwoCrossings, First: other.To, Second: a.From}
		}
		return geomclip.Crossing{Kind: geomclip.OneCrossing, First: a.From}
	case selfContainsOtherTo && otherContainsSelfTo:
		if !other.To.Equal(a.To) {
			return geomclip.Crossing{Kind: geomclip.TwoCrossings, First: other.To, Second: a.To}
		}
		return geomclip.Crossing{Kind: geomclip.OneCrossing, First: a.To}
	default:
		return geomclip.Crossing{}
	}
}
