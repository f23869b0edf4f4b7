// Package route defines result types and sentinel errors
// for the route subpackage of github.com/pschiffmann/floorroute.
package route

import (
	"errors"

	"github.com/pschiffmann/floorroute/floorgrid"
)

// ErrNilGrid indicates a nil *floorgrid.Grid was passed to OptimalRoute.
var ErrNilGrid = errors.New("route: grid is nil")

// Result holds the outcome of an optimal-route computation.
type Result struct {
	// Route is the complete cell sequence from the entrance to the counter,
	// inclusive of both, with join cells between segments deduplicated.
	Route []floorgrid.Cell

	// Distance is the total number of unit steps, i.e. len(Route)-1.
	Distance int

	// Order lists the article cells in the chosen visiting sequence.
	// Nil when the grid has no articles.
	Order []floorgrid.Cell
}
