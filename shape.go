package geomclip

// Shape is a non-empty set of non-crossing Polygon boundaries sharing a
// Geometry. Holes are boundaries whose winding is opposite that of the
// outline enclosing them.
type Shape struct {
	Geometry   Geometry
	Boundaries []Polygon
}

// New returns a Shape holding a single boundary, canonicalized to
// counter-clockwise winding: a clockwise polygon is reversed on construction
// so every top-level boundary is stored right-hand-rule oriented. Composite
// shapes with holes (which must be wound opposite their enclosing outline)
// are assembled with NewComposite instead.
func New(geometry Geometry, polygon Polygon) Shape {
	if polygon.IsClockwise() {
		polygon = polygon.Reversed()
	}
	return Shape{Geometry: geometry, Boundaries: []Polygon{polygon}}
}

// NewComposite returns a Shape over an already-assembled set of boundaries,
// such as an outline paired with one or more holes wound opposite it. Unlike
// New, it performs no orientation canonicalization: the caller supplies each
// boundary already wound the way it belongs. It returns ErrEmptyShape if
// boundaries is empty.
func NewComposite(geometry Geometry, boundaries []Polygon) (Shape, error) {
	if len(boundaries) == 0 {
		return Shape{}, ErrEmptyShape
	}
	return Shape{Geometry: geometry, Boundaries: append([]Polygon(nil), boundaries...)}, nil
}

// TotalVertices returns the number of vertices across every boundary.
func (s Shape) TotalVertices() int {
	total := 0
	for _, p := range s.Boundaries {
		total += len(p.Vertices())
	}
	return total
}

// InvertedWinding returns a copy of s with every boundary's vertex order
// reversed.
func (s Shape) InvertedWinding() Shape {
	reversed := make([]Polygon, len(s.Boundaries))
	for i, p := range s.Boundaries {
		reversed[i] = p.Reversed()
	}
	return Shape{Geometry: s.Geometry, Boundaries: reversed}
}

// IsBoundary reports whether point lies on any edge of any boundary.
func (s Shape) IsBoundary(point Vertex, tol Tolerance) bool {
	for _, p := range s.Boundaries {
		for _, e := range p.Edges() {
			if e.Contains(point, tol) {
				return true
			}
		}
	}
	return false
}

// Winding returns the sum of the windings of every boundary around point.
func (s Shape) Winding(point Vertex, tol Tolerance) int {
	total := 0
	for _, p := range s.Boundaries {
		total += p.Winding(point, tol)
	}
	return total
}

// Contains reports whether s winds around point a non-zero number of times.
func (s Shape) Contains(point Vertex, tol Tolerance) bool {
	return s.Winding(point, tol) != 0
}

// Equal reports set equality over Polygon.Equal: same number of boundaries,
// each of self matched by some boundary of other.
func (s Shape) Equal(other Shape) bool {
	if len(s.Boundaries) != len(other.Boundaries) {
		return false
	}
	for _, a := range s.Boundaries {
		found := false
		for _, b := range other.Boundaries {
			if a.Equal(b) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

// Or returns the union of s and rhs. The result is always non-empty.
func (s Shape) Or(rhs Shape, tol Tolerance) Shape {
	result, ok := newClipper(orOperator{}, s, rhs, tol).execute()
	if !ok {
		panic("geomclip: union should always return a shape")
	}
	return result
}

// Not returns the difference of rhs from s, or false if the result is empty.
func (s Shape) Not(rhs Shape, tol Tolerance) (Shape, bool) {
	return newClipper(notOperator{}, s, rhs.InvertedWinding(), tol).execute()
}

// And returns the intersection of s and rhs, or false if the result is empty.
func (s Shape) And(rhs Shape, tol Tolerance) (Shape, bool) {
	return newClipper(andOperator{}, s, rhs, tol).execute()
}
