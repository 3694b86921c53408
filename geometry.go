package geomclip

// Vertex is a point on one of the two supported coordinate manifolds
// (the Euclidean plane or the unit sphere). Concrete implementations live in
// the planar and spherical packages.
type Vertex interface {
	// Distance returns the distance between this vertex and other, measured
	// along the manifold (a straight line on the plane, a great-circle arc
	// on the sphere).
	Distance(other Vertex) float64
	// IsClose reports whether this vertex and other are the same point up to
	// tolerance.
	IsClose(other Vertex, tol Tolerance) bool
	// Equal reports structural equality, with angles normalized on the sphere.
	Equal(other Vertex) bool
}

// CrossingKind classifies the result of intersecting two edges.
type CrossingKind int

const (
	// NoCrossing means the edges do not meet.
	NoCrossing CrossingKind = iota
	// OneCrossing means the edges meet at a single point.
	OneCrossing
	// TwoCrossings means the edges meet at two points: the two ends of a
	// shared sub-interval when they overlap, or, for an antipodal spherical
	// arc split in halves, one crossing on each half.
	TwoCrossings
)

// Crossing is the result of Edge.Intersection.
type Crossing struct {
	Kind          CrossingKind
	First, Second Vertex
}

// Edge is the line (planar) or great-circle arc (spherical) between two
// consecutive vertices of a Polygon.
type Edge interface {
	// Midpoint returns the geometric middle of the edge.
	Midpoint() Vertex
	// Contains reports whether point lies on the edge within tolerance.
	Contains(point Vertex, tol Tolerance) bool
	// Intersection returns the crossing points between this edge and other.
	Intersection(other Edge, tol Tolerance) Crossing
}

// Polygon is a single closed boundary: an ordered cycle of vertices, plus
// whatever manifold-specific bookkeeping (a spherical exterior anchor) its
// geometry requires.
type Polygon interface {
	// Vertices returns the ordered vertices of the boundary.
	Vertices() []Vertex
	// Edges returns the ordered edges of the boundary, including the
	// implicit closing edge from the last vertex back to the first.
	Edges() []Edge
	// Winding returns the number of times the boundary winds around point.
	Winding(point Vertex, tol Tolerance) int
	// IsClockwise reports whether the boundary is oriented clockwise.
	IsClockwise() bool
	// Reversed returns a copy of the boundary with its vertex order reversed.
	Reversed() Polygon
	// Equal reports whether other describes the same cyclic boundary, up to
	// rotation and direction.
	Equal(other Polygon) bool
}

// Operands are the two shapes involved in a clipping operation.
type Operands struct {
	Subject, Clip *Shape
}

// Geometry supplies the manifold-specific operations the clipper driver
// needs but that are not tied to any single Polygon value: building an edge
// out of two arbitrary vertices (used when splicing graph nodes together),
// classifying an intersection corner as an Entry/Exit event, and validating
// a raw vertex loop collected by a traversal into a Polygon.
type Geometry interface {
	// NewEdge returns the edge between from and to.
	NewEdge(from, to Vertex) Edge
	// Event classifies the intersection at corner, or returns nil for a
	// tangent touch that is not a crossing.
	Event(corner Corner, tol Tolerance) *Event
	// FromRaw validates a collected vertex loop and, if valid, returns the
	// Polygon it describes.
	FromRaw(operands Operands, vertices []Vertex, tol Tolerance) (Polygon, bool)
}
