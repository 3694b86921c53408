package geomclip_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/go-clipper/geomclip"
	"github.com/go-clipper/geomclip/planar"
)

func geomclipTol() geomclip.Tolerance {
	return geomclip.Tolerance{
		Relative: geomclip.NewPositive(1e-9),
		Absolute: geomclip.NewPositive(1e-9),
	}
}

func square(t *testing.T, x0, y0, x1, y1 float64) geomclip.Shape {
	t.Helper()
	poly, err := planar.NewPolygon([]planar.Point{
		{X: x0, Y: y0},
		{X: x1, Y: y0},
		{X: x1, Y: y1},
		{X: x0, Y: y1},
	})
	assert.NoError(t, err, "a four-point square should build without error")
	return geomclip.New(planar.Geometry{}, poly)
}

func TestShapeOr_OverlappingSquares(t *testing.T) {
	a := square(t, 0, 0, 4, 4)
	b := square(t, 2, 2, 6, 6)

	union := a.Or(b, geomclipTol())

	assert.True(t, union.Contains(planar.Point{X: 1, Y: 1}, geomclipTol()), "the union should still contain a's own interior")
	assert.True(t, union.Contains(planar.Point{X: 5, Y: 5}, geomclipTol()), "the union should contain b's own interior")
	assert.True(t, union.Contains(planar.Point{X: 3, Y: 3}, geomclipTol()), "the union should contain the overlap")
	assert.False(t, union.Contains(planar.Point{X: 8, Y: 8}, geomclipTol()), "the union should not contain points outside both squares")
}

func TestShapeAnd_OverlappingSquares(t *testing.T) {
	a := square(t, 0, 0, 4, 4)
	b := square(t, 2, 2, 6, 6)

	intersection, ok := a.And(b, geomclipTol())
	assert.True(t, ok, "overlapping squares should produce a non-empty intersection")
	assert.True(t, intersection.Contains(planar.Point{X: 3, Y: 3}, geomclipTol()), "the intersection should contain the shared region")
	assert.False(t, intersection.Contains(planar.Point{X: 1, Y: 1}, geomclipTol()), "the intersection should not contain a region unique to a")
	assert.False(t, intersection.Contains(planar.Point{X: 5, Y: 5}, geomclipTol()), "the intersection should not contain a region unique to b")
}

func TestShapeAnd_DisjointSquares(t *testing.T) {
	a := square(t, 0, 0, 2, 2)
	b := square(t, 10, 10, 12, 12)

	_, ok := a.And(b, geomclipTol())
	assert.False(t, ok, "disjoint squares should produce no intersection")
}

func TestShapeNot_OverlappingSquares(t *testing.T) {
	a := square(t, 0, 0, 4, 4)
	b := square(t, 2, 2, 6, 6)

	diff, ok := a.Not(b, geomclipTol())
	assert.True(t, ok, "subtracting a partial overlap should leave a remainder")
	assert.True(t, diff.Contains(planar.Point{X: 1, Y: 1}, geomclipTol()), "the remainder should keep the region unique to a")
	assert.False(t, diff.Contains(planar.Point{X: 3, Y: 3}, geomclipTol()), "the remainder should not keep the overlap")
	assert.False(t, diff.Contains(planar.Point{X: 5, Y: 5}, geomclipTol()), "the remainder should not gain any of b")
}

func TestShapeNot_DisjointSquares(t *testing.T) {
	a := square(t, 0, 0, 2, 2)
	b := square(t, 10, 10, 12, 12)

	diff, ok := a.Not(b, geomclipTol())
	assert.True(t, ok, "subtracting a disjoint square should leave a unchanged")
	assert.True(t, diff.Equal(a), "the remainder should equal the original shape")
}

func TestShapeOr_CompleteOverlap(t *testing.T) {
	a := square(t, 0, 0, 4, 4)
	b := square(t, 0, 0, 4, 4)

	union := a.Or(b, geomclipTol())
	assert.True(t, union.Equal(a), "unioning an identical square should reproduce it, not duplicate it")
}

func TestShapeAnd_CompleteOverlap(t *testing.T) {
	a := square(t, 0, 0, 4, 4)
	b := square(t, 0, 0, 4, 4)

	intersection, ok := a.And(b, geomclipTol())
	assert.True(t, ok, "an identical square should intersect itself")
	assert.True(t, intersection.Equal(a), "intersecting an identical square should reproduce it")
}

func TestShapeNot_CompleteOverlap(t *testing.T) {
	a := square(t, 0, 0, 4, 4)
	b := square(t, 0, 0, 4, 4)

	_, ok := a.Not(b, geomclipTol())
	assert.False(t, ok, "subtracting an identical square should leave nothing")
}

func TestNewComposite_Empty(t *testing.T) {
	_, err := geomclip.NewComposite(planar.Geometry{}, nil)
	assert.ErrorIs(t, err, geomclip.ErrEmptyShape, "a shape with no boundaries should be rejected")
}

func TestNewComposite_OutlineWithHole(t *testing.T) {
	outer, err := planar.NewPolygon([]planar.Point{
		{X: 0, Y: 0}, {X: 4, Y: 0}, {X: 4, Y: 4}, {X: 0, Y: 4},
	})
	assert.NoError(t, err)
	hole, err := planar.NewPolygon([]planar.Point{
		{X: 1, Y: 1}, {X: 1, Y: 3}, {X: 3, Y: 3}, {X: 3, Y: 1},
	})
	assert.NoError(t, err)

	shape, err := geomclip.NewComposite(planar.Geometry{}, []geomclip.Polygon{outer, hole})
	assert.NoError(t, err)
	assert.True(t, shape.Contains(planar.Point{X: 0.5, Y: 0.5}, geomclipTol()), "the outer ring stays filled")
	assert.False(t, shape.Contains(planar.Point{X: 2, Y: 2}, geomclipTol()), "the hole is excluded")
}

func TestShapeEqual(t *testing.T) {
	a := square(t, 0, 0, 4, 4)
	b := square(t, 0, 0, 4, 4)
	c := square(t, 0, 0, 2, 2)

	assert.True(t, a.Equal(b), "two squares with the same boundary should compare equal")
	assert.False(t, a.Equal(c), "squares of different sizes should not compare equal")
}
