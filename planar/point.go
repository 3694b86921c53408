// Package planar implements geomclip's Vertex, Edge, Polygon and Geometry
// interfaces for the Euclidean plane, using github.com/golang/geo/r2 for the
// underlying vector math.
package planar

import (
	"github.com/golang/geo/r2"

	"github.com/go-clipper/geomclip"
)

// Point is a location in the Euclidean plane.
type Point struct {
	X, Y float64
}

// vector returns p as an r2 vector.
func (p Point) vector() r2.Point {
	return r2.Point{X: p.X, Y: p.Y}
}

// fromVector returns the Point the given vector points to.
func fromVector(v r2.Point) Point {
	return Point{X: v.X, Y: v.Y}
}

// Distance returns the straight-line distance between p and other.
func (p Point) Distance(other geomclip.Vertex) float64 {
	o := other.(Point)
	return o.vector().Sub(p.vector()).Norm()
}

// IsClose reports whether p and other are the same point up to tol.
func (p Point) IsClose(other geomclip.Vertex, tol geomclip.Tolerance) bool {
	o := other.(Point)
	return geomclip.IsClose(p.X, o.X, tol) && geomclip.IsClose(p.Y, o.Y, tol)
}

// Equal reports whether p and other have identical coordinates.
func (p Point) Equal(other geomclip.Vertex) bool {
	o, ok := other.(Point)
	return ok && p == o
}

// determinant returns the cross product of ab and ac; its sign is positive
// when c lies to the left of the directed line from a to b.
func determinant(a, b, c Point) float64 {
	return b.vector().Sub(a.vector()).Cross(c.vector().Sub(a.vector()))
}
