// Package spherical implements geomclip's Vertex, Edge, Polygon and Geometry
// interfaces for the surface of the unit sphere, using inclination/azimuth
// coordinates and github.com/golang/geo/r3 for the underlying Cartesian
// math.
package spherical

import (
	"math"

	"github.com/golang/geo/r3"

	"github.com/go-clipper/geomclip"
)

// normalizeInclination folds value into [0, π], the angle between a radial
// line and the positive polar axis.
func normalizeInclination(value float64) float64 {
	if value >= 0 && value <= math.Pi {
		return value
	}
	return math.Acos(math.Cos(value))
}

// normalizeAzimuth folds value into [0, 2π), the right-handed rotation of a
// radial line around the polar axis.
func normalizeAzimuth(value float64) float64 {
	const tau = 2 * math.Pi
	if value >= 0 && value < tau {
		return value
	}
	modulus := math.Mod(value, tau)
	if value < 0 {
		modulus = math.Mod(modulus+tau, tau)
	}
	return modulus
}

// Point is a location on the surface of the unit sphere.
type Point struct {
	Inclination float64
	Azimuth     float64
}

// NewPoint returns the Point at the given inclination and azimuth,
// normalized to their canonical ranges.
func NewPoint(inclination, azimuth float64) Point {
	return Point{Inclination: normalizeInclination(inclination), Azimuth: normalizeAzimuth(azimuth)}
}

// vector returns the unit Cartesian vector p points to.
func (p Point) vector() r3.Vector {
	sinInclination := math.Sin(p.Inclination)
	return r3.Vector{
		X: sinInclination * math.Cos(p.Azimuth),
		Y: sinInclination * math.Sin(p.Azimuth),
		Z: math.Cos(p.Inclination),
	}
}

// fromVector returns the Point corresponding to the given Cartesian unit
// vector.
func fromVector(v r3.Vector) Point {
	return NewPoint(math.Acos(clamp(v.Z, -1, 1)), math.Atan2(v.Y, v.X))
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Distance returns the great-circle distance between p and other, on the
// unit sphere this equals the angle between them in radians.
func (p Point) Distance(other geomclip.Vertex) float64 {
	o := other.(Point)
	a, b := p.vector(), o.vector()
	return math.Atan2(a.Cross(b).Norm(), a.Dot(b))
}

// IsClose reports whether p and other are the same point up to tol.
func (p Point) IsClose(other geomclip.Vertex, tol geomclip.Tolerance) bool {
	o := other.(Point)
	return geomclip.IsClose(p.Inclination, o.Inclination, tol) && geomclip.IsClose(p.Azimuth, o.Azimuth, tol)
}

// Equal reports whether p and other have identical normalized coordinates.
func (p Point) Equal(other geomclip.Vertex) bool {
	o, ok := other.(Point)
	return ok && p == o
}

// rotate returns v rotated by theta radians around the unit axis, using
// Rodrigues' rotation formula.
func rotate(v, axis r3.Vector, theta float64) r3.Vector {
	cos, sin := math.Cos(theta), math.Sin(theta)
	return v.Mul(cos).
		Add(axis.Cross(v).Mul(sin)).
		Add(axis.Mul(axis.Dot(v) * (1 - cos)))
}
