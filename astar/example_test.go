package astar_test

import (
	"fmt"

	"github.com/pschiffmann/floorroute/astar"
	"github.com/pschiffmann/floorroute/floorgrid"
)

// ExampleFindPath routes around a shelf wall at x=4 (rows 0–1) on a 8×3
// floor. The direct distance is 6 steps; dodging under the wall through
// row 2 adds 4 more.
func ExampleFindPath() {
	g, _ := floorgrid.New([]byte{0x08, 0x08, 0x00}, 1,
		floorgrid.Cell{X: 0, Y: 0}, floorgrid.Cell{X: 7, Y: 1}, nil)

	path, err := astar.FindPath(g, floorgrid.Cell{X: 1, Y: 0}, floorgrid.Cell{X: 7, Y: 0})
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("steps:", len(path)-1)
	fmt.Println("first:", path[0], "last:", path[len(path)-1])

	// Output:
	// steps: 10
	// first: (1,0) last: (7,0)
}
