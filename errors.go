package geomclip

import "errors"

var (
	// ErrTooFewVertices indicates a polygon was constructed with fewer than 3 vertices.
	ErrTooFewVertices = errors.New("geomclip: polygon requires at least 3 vertices")

	// ErrExteriorInsidePolygon indicates a spherical polygon's exterior anchor lies inside its own boundary.
	ErrExteriorInsidePolygon = errors.New("geomclip: exterior anchor must lie outside the polygon")

	// ErrEmptyShape indicates a Shape was constructed with no boundaries.
	ErrEmptyShape = errors.New("geomclip: shape requires at least one boundary")
)
