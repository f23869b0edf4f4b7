// Package route computes the shortest walking route through a floor grid
// that starts at the entrance, visits every article cell in some order, and
// ends at the counter.
//
// What:
//
//   - OptimalRoute precomputes all pairwise shortest paths among the
//     entrance, the articles, and the counter (astar.FindPath, cached per
//     directed pair), then searches all article visiting orders with a
//     permute.Enumerator, pruning by branch-and-bound: as soon as a partial
//     order's accumulated distance meets or exceeds the best known total,
//     every completion of that prefix is skipped in one step.
//   - The winning order's cached segments are concatenated into the final
//     route, dropping the duplicated join cell at each seam.
//
// Why exhaustive:
//
//   - The result is provably optimal, not heuristic. The O(k²) path
//     precompute and O(k!) ordering search are intended for small article
//     counts (a shopping list, not a depot tour).
//
// Complexity:
//
//   - Precompute: O(k²) FindPath calls over W×H cells each.
//   - Search: O(k!) orderings worst case, heavily pruned in practice.
//   - Memory: O(k² · L) cached path cells (L = typical segment length).
//
// Errors:
//
//   - ErrNilGrid for a nil grid.
//   - astar.ErrUnreachable (wrapped, naming the endpoints and any article
//     labels involved) when a required pair of cells has no connecting path.
//     No partial route is ever returned.
//
// Concurrency: one OptimalRoute call owns its cache and enumerator
// exclusively. Concurrent calls over the same read-only Grid are safe; they
// share nothing but the grid.
package route

import (
	"fmt"
	"math"
	"sort"

	"github.com/pschiffmann/floorroute/astar"
	"github.com/pschiffmann/floorroute/floorgrid"
	"github.com/pschiffmann/floorroute/permute"
)

// pairKey addresses one directed cell pair in the path cache. Direction
// matters: (A,B) and (B,A) are distinct entries, one the reverse of the other.
type pairKey struct {
	from, to floorgrid.Cell
}

// OptimalRoute computes the shortest entrance → articles → counter walk over g.
// With no articles the result degenerates to the direct entrance→counter path.
func OptimalRoute(g *floorgrid.Grid) (Result, error) {
	if g == nil {
		return Result{}, ErrNilGrid
	}

	p := &planner{
		grid:     g,
		articles: g.Articles(),
		cache:    make(map[pairKey][]floorgrid.Cell),
	}
	p.collectWaypoints()

	// Degenerate case: nothing to visit, route straight to the counter.
	if len(p.waypoints) == 0 {
		path, err := astar.FindPath(g, g.Entrance(), g.Counter())
		if err != nil {
			return Result{}, fmt.Errorf("route: entrance to counter: %w", err)
		}

		return Result{Route: path, Distance: len(path) - 1}, nil
	}

	if err := p.precompute(); err != nil {
		return Result{}, err
	}

	bestOrder, bestDist := p.search()
	order := make([]floorgrid.Cell, len(bestOrder))
	for i, idx := range bestOrder {
		order[i] = p.waypoints[idx]
	}

	return Result{
		Route:    p.assemble(bestOrder),
		Distance: bestDist,
		Order:    order,
	}, nil
}

// planner holds the state of one OptimalRoute invocation. It is created per
// call and discarded afterwards; nothing here is shared.
type planner struct {
	grid      *floorgrid.Grid
	articles  map[floorgrid.Cell]string
	waypoints []floorgrid.Cell
	cache     map[pairKey][]floorgrid.Cell
}

// collectWaypoints gathers the article cells in deterministic (row-major)
// order, so the enumeration sequence does not depend on map iteration.
func (p *planner) collectWaypoints() {
	p.waypoints = make([]floorgrid.Cell, 0, len(p.articles))
	for cell := range p.articles {
		p.waypoints = append(p.waypoints, cell)
	}
	sort.Slice(p.waypoints, func(i, j int) bool {
		if p.waypoints[i].Y != p.waypoints[j].Y {
			return p.waypoints[i].Y < p.waypoints[j].Y
		}

		return p.waypoints[i].X < p.waypoints[j].X
	})
}

// precompute fills the cache with every directed pair the search can walk:
// entrance→waypoint and waypoint→counter for each waypoint, plus both
// directions of every waypoint pair (the reverse is stored, not re-searched).
// The first unreachable pair aborts the whole computation.
func (p *planner) precompute() error {
	entrance, counter := p.grid.Entrance(), p.grid.Counter()
	for i, a := range p.waypoints {
		if err := p.findAndCache(entrance, a); err != nil {
			return err
		}
		if err := p.findAndCache(a, counter); err != nil {
			return err
		}
		for _, b := range p.waypoints[i+1:] {
			if err := p.findAndCache(a, b); err != nil {
				return err
			}
			p.cache[pairKey{b, a}] = reversed(p.cache[pairKey{a, b}])
		}
	}

	return nil
}

// findAndCache runs one shortest-path search and stores the result under
// (from,to). Failures are wrapped with the article labels of both endpoints
// so the error names the waypoint that cannot be reached.
func (p *planner) findAndCache(from, to floorgrid.Cell) error {
	path, err := astar.FindPath(p.grid, from, to)
	if err != nil {
		return fmt.Errorf("route: %s to %s: %w", p.describe(from), p.describe(to), err)
	}
	p.cache[pairKey{from, to}] = path

	return nil
}

// describe names a cell for error messages: its article label when it has
// one, or its landmark role.
func (p *planner) describe(c floorgrid.Cell) string {
	if label, ok := p.articles[c]; ok {
		return fmt.Sprintf("article %q at %s", label, c)
	}
	switch c {
	case p.grid.Entrance():
		return fmt.Sprintf("entrance %s", c)
	case p.grid.Counter():
		return fmt.Sprintf("counter %s", c)
	}

	return c.String()
}

// stepsBetween returns the cached walking distance between two cells in unit
// steps (the inclusive path has one more cell than it has steps).
func (p *planner) stepsBetween(from, to floorgrid.Cell) int {
	return len(p.cache[pairKey{from, to}]) - 1
}

// search enumerates waypoint orderings and returns the one with the minimum
// total distance, exit leg included. Whenever a partial ordering's running
// sum meets or exceeds the incumbent total, all completions of that prefix
// are provably no better and the enumerator skips them wholesale.
func (p *planner) search() (bestOrder []int, bestDist int) {
	entrance, counter := p.grid.Entrance(), p.grid.Counter()
	enum, _ := permute.New(len(p.waypoints)) // size ≥ 1, cannot fail
	bestDist = math.MaxInt

	for enum.HasNext() {
		order := enum.Next()
		total := 0
		last := entrance
		pruned := false
		for pos, idx := range order {
			total += p.stepsBetween(last, p.waypoints[idx])
			last = p.waypoints[idx]
			if total >= bestDist {
				enum.SkipRemainingAt(pos)
				pruned = true
				break
			}
		}
		if pruned {
			continue
		}
		total += p.stepsBetween(last, counter)
		if total < bestDist {
			bestDist = total
			bestOrder = order // Next returned a snapshot, safe to keep
		}
	}

	return bestOrder, bestDist
}

// assemble concatenates the cached segments of the winning order into one
// inclusive entrance→counter sequence, dropping each segment's final cell
// except on the last leg so join cells appear exactly once.
func (p *planner) assemble(order []int) []floorgrid.Cell {
	route := make([]floorgrid.Cell, 0)
	last := p.grid.Entrance()
	for _, idx := range order {
		seg := p.cache[pairKey{last, p.waypoints[idx]}]
		route = append(route, seg[:len(seg)-1]...)
		last = p.waypoints[idx]
	}

	return append(route, p.cache[pairKey{last, p.grid.Counter()}]...)
}

// reversed returns a reversed copy of path.
func reversed(path []floorgrid.Cell) []floorgrid.Cell {
	out := make([]floorgrid.Cell, len(path))
	for i, c := range path {
		out[len(path)-1-i] = c
	}

	return out
}
