// Package geomclip implements Boolean operations (union, intersection,
// difference) over 2D polygons, on either the Euclidean plane or the unit
// sphere.
//
// # Overview
//
// A Shape is a set of non-crossing Polygon boundaries sharing a Geometry.
// The geometry, planar or spherical, is supplied by the planar and
// spherical subpackages, each implementing the Vertex, Edge, Polygon and
// Geometry interfaces defined here. The clipper driver is written once
// against those interfaces and dispatches to whichever geometry the
// operands carry, so planar and spherical shapes are clipped by exactly
// the same algorithm:
//   - Shape.Or: union
//   - Shape.And: intersection
//   - Shape.Not: difference
//
// # Algorithm
//
// Clipping builds a graph by seeding the subject's and clip's boundaries as
// independent node cycles, splicing in every point where an edge of one
// crosses an edge of the other, and linking the two resulting nodes at each
// crossing as siblings. Each crossing is classified as an Entry or Exit event
// describing whether its owning boundary crosses into or out of the other
// shape. The driver then walks the graph twice: once starting from every
// unvisited subject crossing, switching operands at each sibling whose
// outgoing edge the operator confirms as output, and once more over whatever
// boundaries the first pass never touched, which the operator keeps or
// discards whole.
//
// # Error Handling
//
// Shape.And and Shape.Not return their result together with a bool, false
// when the operation yields the empty set. Geometry constructors return a
// bool rather than an error, since the only possible failure is a malformed
// input polygon; package-level sentinel errors (ErrTooFewVertices,
// ErrExteriorInsidePolygon) are exposed for callers of the planar and
// spherical polygon constructors that do return an error, and ErrEmptyShape
// for callers of NewComposite.
//
// # Tolerance
//
// Every operation that compares two scalars takes a Tolerance, combining a
// relative bound (scaled to the operands' magnitude) and an absolute bound
// (for comparisons near zero). There is no global default; callers choose a
// Tolerance appropriate to the scale of their data.
package geomclip
