// Package astar defines the Terrain contract and sentinel errors
// for the astar subpackage of github.com/pschiffmann/floorroute.
package astar

import (
	"errors"

	"github.com/pschiffmann/floorroute/floorgrid"
)

// Sentinel errors returned by the A* implementation.
var (
	// ErrNilTerrain indicates a nil Terrain was passed to FindPath.
	ErrNilTerrain = errors.New("astar: terrain is nil")

	// ErrUnreachable indicates the frontier emptied before the goal was
	// reached: no obstacle-free path exists between the two cells.
	// The wrapped message names both endpoints.
	ErrUnreachable = errors.New("astar: goal unreachable from start")
)

// Terrain is the minimal surface FindPath needs from a floor plan:
// passability and orthogonal adjacency. *floorgrid.Grid satisfies it.
type Terrain interface {
	// IsBlocked reports whether c may not be entered. Out-of-bounds cells
	// must report blocked.
	IsBlocked(c floorgrid.Cell) bool
	// Neighbors returns the four orthogonally adjacent cells of c,
	// unfiltered; FindPath filters blocked and finalized cells itself.
	Neighbors(c floorgrid.Cell) [4]floorgrid.Cell
}
