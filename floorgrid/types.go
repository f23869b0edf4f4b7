// Package floorgrid defines core types and sentinel errors
// for the floorgrid subpackage of github.com/pschiffmann/floorroute.
package floorgrid

import (
	"errors"
	"fmt"
)

// Umbrella errors classify every floorgrid failure into one of two kinds.
// Match a specific sentinel with errors.Is, or match the kind itself to
// distinguish "caller passed garbage" from "the floor data is inconsistent".
var (
	// ErrInvalidArgument indicates a required construction input is missing.
	ErrInvalidArgument = errors.New("floorgrid: invalid argument")
	// ErrIntegrity indicates a structural inconsistency in the floor data.
	ErrIntegrity = errors.New("floorgrid: integrity violation")
)

// Sentinel errors for floorgrid operations. Each wraps one of the two
// umbrella errors above.
var (
	// ErrNilBitmap indicates the floor bitmap was nil.
	ErrNilBitmap = fmt.Errorf("%w: floor bitmap is nil", ErrInvalidArgument)
	// ErrBadRowBytes indicates a non-positive row width in bytes.
	ErrBadRowBytes = fmt.Errorf("%w: row width in bytes must be positive", ErrInvalidArgument)
	// ErrBitmapSize indicates the bitmap length is not an exact multiple of the row width.
	ErrBitmapSize = fmt.Errorf("%w: bitmap length is not a multiple of the row width", ErrIntegrity)
	// ErrBlockedEntrance indicates the entrance cell is blocked or out of bounds.
	ErrBlockedEntrance = fmt.Errorf("%w: entrance cell is blocked or out of bounds", ErrIntegrity)
	// ErrBlockedCounter indicates the counter (exit) cell is blocked or out of bounds.
	ErrBlockedCounter = fmt.Errorf("%w: counter cell is blocked or out of bounds", ErrIntegrity)
	// ErrBlockedArticle indicates an article cell is blocked or out of bounds.
	ErrBlockedArticle = fmt.Errorf("%w: article cell is blocked or out of bounds", ErrIntegrity)
	// ErrOutOfBounds indicates Block or Free was called with an out-of-bounds cell.
	ErrOutOfBounds = fmt.Errorf("%w: cell out of bounds", ErrIntegrity)
)

// Cell is a single addressable grid position identified by integer coordinates.
// Cells are value types: two cells are equal iff both coordinates match.
type Cell struct {
	X, Y int
}

// String renders the cell as "(x,y)". Used in error messages and logs.
func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// ManhattanDistance returns the minimum number of axis-aligned unit steps
// between a and b, ignoring obstacles. Admissible as an A* heuristic under
// 4-directional unit-cost movement, since obstacles only remove edges.
// Complexity: O(1).
func ManhattanDistance(a, b Cell) int {
	dx := a.X - b.X
	if dx < 0 {
		dx = -dx
	}
	dy := a.Y - b.Y
	if dy < 0 {
		dy = -dy
	}

	return dx + dy
}

// Grid is a rectangular obstacle map stored as a packed bitmap: one bit per
// cell, row-major, most-significant bit = leftmost cell in a byte, rows padded
// to a byte boundary. It designates two landmark cells — entrance and counter —
// and maps a subset of passable cells to article labels.
//
// The bitmap is the only mutable state (via Block/Free); everything else is
// fixed at construction. A Grid is safe for concurrent reads; Block/Free must
// only run between route computations.
type Grid struct {
	bitmap   []byte
	rowBytes int
	entrance Cell
	counter  Cell
	articles map[Cell]string
}
