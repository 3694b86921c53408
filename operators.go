package geomclip

// opposite returns whichever operand the given role does not belong to.
func opposite(ctx Context, role Role) *Shape {
	if role.IsSubject() {
		return ctx.Operands.Clip
	}
	return ctx.Operands.Subject
}

// directionAt turns an operator's keep predicate into a traversal direction
// for the corner: Forward when the midpoint of the corner's outgoing edge
// belongs to the output, Backward otherwise.
func directionAt(ctx Context, corner Corner, keep func(Context, Role, Vertex) bool) Direction {
	midpoint := ctx.Geometry.NewEdge(corner.Vertex, corner.Neighbors.Head).Midpoint()
	if keep(ctx, corner.Role, midpoint) {
		return Forward
	}
	return Backward
}

// keepOr reports whether a point of a boundary belongs to the union: outside
// the opposite shape, or running along its boundary.
func keepOr(ctx Context, role Role, point Vertex) bool {
	other := opposite(ctx, role)
	return other.IsBoundary(point, ctx.Tolerance) || !other.Contains(point, ctx.Tolerance)
}

// keepAnd reports whether a point of a boundary belongs to the intersection:
// inside the opposite shape, or running along its boundary.
func keepAnd(ctx Context, role Role, point Vertex) bool {
	other := opposite(ctx, role)
	return other.IsBoundary(point, ctx.Tolerance) || other.Contains(point, ctx.Tolerance)
}

// keepNot reports whether a point of a boundary belongs to the difference.
// The clip operand has been winding-reversed by the caller: subject segments
// survive strictly outside it, clip segments survive strictly inside the
// subject, and segments running along the opposite boundary are dropped so
// an overlapping edge never doubles into the output.
func keepNot(ctx Context, role Role, point Vertex) bool {
	other := opposite(ctx, role)
	if other.IsBoundary(point, ctx.Tolerance) {
		return false
	}
	contained := other.Contains(point, ctx.Tolerance)
	if role.IsSubject() {
		return !contained
	}
	return contained
}

// orOperator computes the union of the two operands.
type orOperator struct{}

func (orOperator) IsOutput(ctx Context, corner Corner) bool {
	return keepOr(ctx, corner.Role, corner.Vertex)
}

func (orOperator) Direction(ctx Context, corner Corner) Direction {
	return directionAt(ctx, corner, keepOr)
}

// andOperator computes the intersection of the two operands.
type andOperator struct{}

func (andOperator) IsOutput(ctx Context, corner Corner) bool {
	return keepAnd(ctx, corner.Role, corner.Vertex)
}

func (andOperator) Direction(ctx Context, corner Corner) Direction {
	return directionAt(ctx, corner, keepAnd)
}

// notOperator computes the difference of the subject minus the clip, with
// the clip operand already winding-reversed by the caller so that a clip
// boundary untouched by the subject contributes a hole only when nested
// inside it.
type notOperator struct{}

func (notOperator) IsOutput(ctx Context, corner Corner) bool {
	return keepNot(ctx, corner.Role, corner.Vertex)
}

func (notOperator) Direction(ctx Context, corner Corner) Direction {
	return directionAt(ctx, corner, keepNot)
}
