package planar_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/go-clipper/geomclip"
	"github.com/go-clipper/geomclip/planar"
)

// crossingCorner builds the Corner a transversal crossing at (2,2) would
// produce between the diagonal (0,0)-(4,4) and the anti-diagonal
// (0,4)-(4,0): own neighbors (0,0)/(4,4), sibling neighbors (0,4)/(4,0).
func crossingCorner() geomclip.Corner {
	return geomclip.Corner{
		Vertex:    planar.Point{X: 2, Y: 2},
		Neighbors: geomclip.Neighbors{Tail: planar.Point{X: 0, Y: 0}, Head: planar.Point{X: 4, Y: 4}},
		Role:      geomclip.RoleSubject,
		Intersection: &geomclip.IntersectionCorner{
			Neighbors: geomclip.Neighbors{Tail: planar.Point{X: 0, Y: 4}, Head: planar.Point{X: 4, Y: 0}},
		},
	}
}

func TestGeometryEvent_TransversalCrossing(t *testing.T) {
	event := planar.Geometry{}.Event(crossingCorner(), tol())
	if assert.NotNil(t, event, "own neighbors straddling the sibling boundary should classify as a crossing") {
		assert.Equal(t, geomclip.EventEntry, *event)
	}
}

func TestGeometryEvent_TangentTouch(t *testing.T) {
	corner := crossingCorner()
	// Move the own-head neighbor onto the same side of the sibling
	// boundary as the own-tail neighbor: both now fall below the line
	// through (2,2)-(4,0), so the two boundaries only touch here.
	corner.Neighbors.Head = planar.Point{X: -4, Y: -4}

	event := planar.Geometry{}.Event(corner, tol())
	assert.Nil(t, event, "both own neighbors on the same side of the sibling is a touch, not a crossing")
}

// TestGeometryEvent_SharedEdgeCorner covers the end of a run of overlapping
// edges: the boundary arrives along the sibling itself, at (4,0) on a shared
// horizontal run, and leaves upward into the sibling's left-hand interior.
func TestGeometryEvent_SharedEdgeCorner(t *testing.T) {
	corner := geomclip.Corner{
		Vertex:    planar.Point{X: 4, Y: 0},
		Neighbors: geomclip.Neighbors{Tail: planar.Point{X: 2, Y: 0}, Head: planar.Point{X: 4, Y: 4}},
		Role:      geomclip.RoleSubject,
		Intersection: &geomclip.IntersectionCorner{
			Neighbors: geomclip.Neighbors{Tail: planar.Point{X: 2, Y: 0}, Head: planar.Point{X: 6, Y: 0}},
		},
	}

	event := planar.Geometry{}.Event(corner, tol())
	if assert.NotNil(t, event, "leaving a shared edge run into the sibling's interior is a crossing") {
		assert.Equal(t, geomclip.EventEntry, *event)
	}
}

func TestGeometryEvent_NoIntersection(t *testing.T) {
	corner := geomclip.Corner{
		Vertex:    planar.Point{X: 2, Y: 2},
		Neighbors: geomclip.Neighbors{Tail: planar.Point{X: 0, Y: 0}, Head: planar.Point{X: 4, Y: 4}},
		Role:      geomclip.RoleSubject,
	}
	assert.Nil(t, planar.Geometry{}.Event(corner, tol()), "a corner with no intersection has no event to classify")
}
