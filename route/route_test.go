package route_test

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/pschiffmann/floorroute/astar"
	"github.com/pschiffmann/floorroute/floorgrid"
	"github.com/pschiffmann/floorroute/permute"
	"github.com/pschiffmann/floorroute/route"
)

// storeLayout builds the 8×4 demo store used throughout:
//
//	^█░░░P░░
//	░█░░█░░░
//	C█░░█░S░
//	░░B░█░░$
func storeLayout(t *testing.T) *floorgrid.Grid {
	t.Helper()
	g, err := floorgrid.New(
		[]byte{0x40, 0x48, 0x48, 0x08}, 1,
		floorgrid.Cell{X: 0, Y: 0}, floorgrid.Cell{X: 7, Y: 3},
		map[floorgrid.Cell]string{
			{X: 0, Y: 2}: "Cheese",
			{X: 2, Y: 3}: "Butter",
			{X: 5, Y: 0}: "Ponies",
			{X: 6, Y: 2}: "Salad",
		})
	require.NoError(t, err)

	return g
}

// requireValidRoute asserts the structural route contract: starts at the
// entrance, ends at the counter, every step is a single unblocked move, and
// every article cell appears at least once.
func requireValidRoute(t *testing.T, g *floorgrid.Grid, res route.Result) {
	t.Helper()
	require.NotEmpty(t, res.Route)
	require.Equal(t, g.Entrance(), res.Route[0])
	require.Equal(t, g.Counter(), res.Route[len(res.Route)-1])
	require.Equal(t, len(res.Route)-1, res.Distance)

	visited := make(map[floorgrid.Cell]bool, len(res.Route))
	for i, c := range res.Route {
		require.False(t, g.IsBlocked(c), "route cell %s is blocked", c)
		if i > 0 {
			require.Equal(t, 1, floorgrid.ManhattanDistance(res.Route[i-1], c),
				"route cells %s and %s are not adjacent", res.Route[i-1], c)
		}
		visited[c] = true
	}
	for cell, label := range g.Articles() {
		require.True(t, visited[cell], "route misses article %q at %s", label, cell)
	}
}

// exhaustiveDistance recomputes the optimum by plain enumeration with no
// pruning, straight from fresh FindPath calls. Slow but independent.
func exhaustiveDistance(t *testing.T, g *floorgrid.Grid) int {
	t.Helper()
	var waypoints []floorgrid.Cell
	for cell := range g.Articles() {
		waypoints = append(waypoints, cell)
	}

	steps := func(from, to floorgrid.Cell) int {
		path, err := astar.FindPath(g, from, to)
		require.NoError(t, err)
		return len(path) - 1
	}

	best := math.MaxInt
	enum, err := permute.New(len(waypoints))
	require.NoError(t, err)
	for enum.HasNext() {
		total := 0
		last := g.Entrance()
		for _, idx := range enum.Next() {
			total += steps(last, waypoints[idx])
			last = waypoints[idx]
		}
		total += steps(last, g.Counter())
		if total < best {
			best = total
		}
	}

	return best
}

func TestOptimalRoute_ReferenceLayout(t *testing.T) {
	g := storeLayout(t)

	res, err := route.OptimalRoute(g)
	require.NoError(t, err)
	requireValidRoute(t, g, res)
	require.Equal(t, 16, res.Distance)
	require.Len(t, res.Route, 17)
	require.Len(t, res.Order, 4)
}

func TestOptimalRoute_AfterRelayout(t *testing.T) {
	// Rearranged shelves: row 2 walled from x=1 to x=4, gap opened at (1,1).
	g := storeLayout(t)
	require.NoError(t, g.Block(floorgrid.Cell{X: 2, Y: 2}))
	require.NoError(t, g.Block(floorgrid.Cell{X: 3, Y: 2}))
	require.NoError(t, g.Free(floorgrid.Cell{X: 1, Y: 1}))

	res, err := route.OptimalRoute(g)
	require.NoError(t, err)
	requireValidRoute(t, g, res)
	require.Equal(t, 20, res.Distance)
	require.Len(t, res.Route, 21)
}

func TestOptimalRoute_MatchesExhaustiveSearch(t *testing.T) {
	g := storeLayout(t)

	res, err := route.OptimalRoute(g)
	require.NoError(t, err)
	require.Equal(t, exhaustiveDistance(t, g), res.Distance,
		"pruned search must agree with the unpruned optimum")

	// The relayouted floor as well.
	require.NoError(t, g.Block(floorgrid.Cell{X: 2, Y: 2}))
	require.NoError(t, g.Block(floorgrid.Cell{X: 3, Y: 2}))
	require.NoError(t, g.Free(floorgrid.Cell{X: 1, Y: 1}))

	res, err = route.OptimalRoute(g)
	require.NoError(t, err)
	require.Equal(t, exhaustiveDistance(t, g), res.Distance)
}

func TestOptimalRoute_NoWaypoints(t *testing.T) {
	// Without articles the route is exactly the direct shortest path.
	g, err := floorgrid.New([]byte{0x40, 0x48, 0x48, 0x08}, 1,
		floorgrid.Cell{X: 0, Y: 0}, floorgrid.Cell{X: 7, Y: 3}, nil)
	require.NoError(t, err)

	res, err := route.OptimalRoute(g)
	require.NoError(t, err)

	direct, err := astar.FindPath(g, g.Entrance(), g.Counter())
	require.NoError(t, err)
	require.Equal(t, direct, res.Route)
	require.Equal(t, len(direct)-1, res.Distance)
	require.Nil(t, res.Order)
}

func TestOptimalRoute_SingleWaypoint(t *testing.T) {
	g, err := floorgrid.New(make([]byte, 3), 1,
		floorgrid.Cell{X: 0, Y: 0}, floorgrid.Cell{X: 7, Y: 2},
		map[floorgrid.Cell]string{{X: 4, Y: 1}: "Milk"})
	require.NoError(t, err)

	res, err := route.OptimalRoute(g)
	require.NoError(t, err)
	requireValidRoute(t, g, res)
	// Entrance→(4,1) is 5 steps, (4,1)→counter is 4: a detour-free L path.
	require.Equal(t, 9, res.Distance)
	require.Equal(t, []floorgrid.Cell{{X: 4, Y: 1}}, res.Order)
}

func TestOptimalRoute_IsolatedWaypoint(t *testing.T) {
	// The article at (4,1) sits inside a sealed ring of shelves.
	g, err := floorgrid.New([]byte{0x08, 0x14, 0x08}, 1,
		floorgrid.Cell{X: 0, Y: 0}, floorgrid.Cell{X: 7, Y: 2},
		map[floorgrid.Cell]string{{X: 4, Y: 1}: "Caviar"})
	require.NoError(t, err)

	_, err = route.OptimalRoute(g)
	require.ErrorIs(t, err, astar.ErrUnreachable)
	require.True(t, strings.Contains(err.Error(), "Caviar"),
		"error %q must name the unreachable article", err)
	require.True(t, strings.Contains(err.Error(), "(4,1)"),
		"error %q must name the unreachable cell", err)
}

func TestOptimalRoute_UnreachableCounter(t *testing.T) {
	// No articles and the counter walled off: the degenerate direct path
	// fails with the same integrity error, never an empty route.
	g, err := floorgrid.New([]byte{0x02, 0x02, 0x02}, 1,
		floorgrid.Cell{X: 0, Y: 0}, floorgrid.Cell{X: 7, Y: 1}, nil)
	require.NoError(t, err)

	_, err = route.OptimalRoute(g)
	require.ErrorIs(t, err, astar.ErrUnreachable)
}

func TestOptimalRoute_NilGrid(t *testing.T) {
	_, err := route.OptimalRoute(nil)
	require.ErrorIs(t, err, route.ErrNilGrid)
}

func TestOptimalRoute_TwoByteRows(t *testing.T) {
	// 16×3 floor with a full-height wall at x=8 except a gap at (8,2),
	// exercising multi-byte rows end to end.
	bitmap := []byte{
		0x00, 0x80,
		0x00, 0x80,
		0x00, 0x00,
	}
	g, err := floorgrid.New(bitmap, 2,
		floorgrid.Cell{X: 0, Y: 0}, floorgrid.Cell{X: 15, Y: 0},
		map[floorgrid.Cell]string{{X: 2, Y: 1}: "Apples", {X: 12, Y: 1}: "Bread"})
	require.NoError(t, err)

	res, err := route.OptimalRoute(g)
	require.NoError(t, err)
	requireValidRoute(t, g, res)
	require.Equal(t, exhaustiveDistance(t, g), res.Distance)
}
