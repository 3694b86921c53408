package geomclip

// Role identifies which operand a boundary (and the nodes on it) came from.
type Role int

const (
	// RoleSubject marks a boundary belonging to the subject shape.
	RoleSubject Role = iota
	// RoleClip marks a boundary belonging to the clip shape.
	RoleClip
)

// IsSubject reports whether r is RoleSubject.
func (r Role) IsSubject() bool {
	return r == RoleSubject
}

// Event classifies whether traversing a boundary across an intersection
// crosses into or out of the opposite shape.
type Event int

const (
	// EventEntry means the owning boundary is crossing into the opposite shape.
	EventEntry Event = iota
	// EventExit means the owning boundary is crossing out of the opposite shape.
	EventExit
)

// Neighbors are the vertices immediately before and after a node along its
// own boundary.
type Neighbors struct {
	Tail, Head Vertex
}

// IntersectionCorner is the view of the sibling side of an intersection: its
// event classification (nil for a pure touch) and its own neighbors.
type IntersectionCorner struct {
	Event     *Event
	Neighbors Neighbors
}

// Corner is the local geometry around a node: its vertex, its neighbors
// along its own boundary, its role, and, if it is an intersection, the
// corresponding view of its sibling. Event classification and operator
// direction decisions are both computed from a Corner.
type Corner struct {
	Vertex       Vertex
	Neighbors    Neighbors
	Role         Role
	Intersection *IntersectionCorner
}
