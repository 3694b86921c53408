package spherical_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/go-clipper/geomclip"
	"github.com/go-clipper/geomclip/spherical"
)

func TestArcIntersection_TransversalCrossing(t *testing.T) {
	meridian := spherical.Arc{
		From: spherical.NewPoint(math.Pi/4, 0),
		To:   spherical.NewPoint(3*math.Pi/4, 0),
	}
	equator := spherical.Arc{
		From: spherical.NewPoint(math.Pi/2, -math.Pi/4),
		To:   spherical.NewPoint(math.Pi/2, math.Pi/4),
	}

	got := meridian.Intersection(equator, tol())
	assert.Equal(t, geomclip.OneCrossing, got.Kind, "a meridian and the equator should cross exactly once")

	want := spherical.NewPoint(math.Pi/2, 0)
	first := got.First.(spherical.Point)
	assert.True(t, first.IsClose(want, tol()), "the crossing should land where the meridian meets the equator")
}

func TestArcIntersection_NoCrossing(t *testing.T) {
	a := spherical.Arc{From: spherical.NewPoint(math.Pi/4, 0), To: spherical.NewPoint(math.Pi/4, math.Pi/2)}
	b := spherical.Arc{From: spherical.NewPoint(3*math.Pi/4, 0), To: spherical.NewPoint(3*math.Pi/4, math.Pi/2)}

	got := a.Intersection(b, tol())
	assert.Equal(t, geomclip.NoCrossing, got.Kind, "great-circle arcs in opposite hemispheres sharing no point should not cross")
}

func TestArcIntersection_SharedEndpoint(t *testing.T) {
	shared := spherical.NewPoint(math.Pi/2, 0)
	a := spherical.Arc{From: shared, To: spherical.NewPoint(math.Pi/4, 0)}
	b := spherical.Arc{From: shared, To: spherical.NewPoint(math.Pi/2, math.Pi/4)}

	got := a.Intersection(b, tol())
	assert.Equal(t, geomclip.OneCrossing, got.Kind, "arcs sharing an endpoint should cross once there")
	first := got.First.(spherical.Point)
	assert.True(t, first.IsClose(shared, tol()), "the crossing should be the shared endpoint")
}

func TestArcContains(t *testing.T) {
	a := spherical.Arc{
		From: spherical.NewPoint(math.Pi/2, -math.Pi/4),
		To:   spherical.NewPoint(math.Pi/2, math.Pi/4),
	}

	assert.True(t, a.Contains(spherical.NewPoint(math.Pi/2, 0), tol()), "the arc's own midpoint should be contained")
	assert.False(t, a.Contains(spherical.NewPoint(math.Pi/2, math.Pi), tol()), "a point on the opposite side of the sphere should not be contained")
}

func TestArcMidpoint(t *testing.T) {
	a := spherical.Arc{
		From: spherical.NewPoint(math.Pi/2, -math.Pi/4),
		To:   spherical.NewPoint(math.Pi/2, math.Pi/4),
	}
	mid := a.Midpoint().(spherical.Point)
	want := spherical.NewPoint(math.Pi/2, 0)
	assert.True(t, mid.IsClose(want, tol()), "the midpoint of a symmetric equatorial arc should sit on the equator at azimuth zero")
}
