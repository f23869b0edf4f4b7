// Package astar implements A* shortest-path search over 4-connected grid
// cells with unit step cost.
//
// The search orders its frontier by priority = g + h, where g is the exact
// distance walked from the start and h is the Manhattan distance to the goal.
// Manhattan is admissible and consistent here: movement is 4-directional with
// unit cost and obstacles only remove edges, so h never overestimates.
// Consequently the first time the goal is popped its distance is optimal.
//
// Tie-break rule: frontier entries with equal priority pop in insertion order
// (FIFO), enforced by a monotone sequence number on each heap entry. This only
// decides which of several equal-length paths is returned, never whether an
// optimal one is.
//
// Complexity:
//
//   - Time:  O(C log C) where C = number of cells touched by the search.
//   - Space: O(C) for the per-call distance, predecessor, and closed tables.
package astar

import (
	"container/heap"
	"fmt"

	"github.com/pschiffmann/floorroute/floorgrid"
)

// FindPath computes a minimum-length obstacle-avoiding path from start to
// goal over t, inclusive of both endpoints.
//
// Returns ErrNilTerrain if t is nil, and ErrUnreachable (wrapped with both
// endpoints) if the frontier empties before the goal is reached.
//
// All search state lives in tables allocated by this call and discarded when
// it returns; nothing is stored on the terrain or on cells, so independent
// searches can never contaminate each other.
func FindPath(t Terrain, start, goal floorgrid.Cell) ([]floorgrid.Cell, error) {
	if t == nil {
		return nil, ErrNilTerrain
	}

	r := &runner{
		terrain: t,
		goal:    goal,
		dist:    make(map[floorgrid.Cell]int),
		prev:    make(map[floorgrid.Cell]floorgrid.Cell),
		closed:  make(map[floorgrid.Cell]bool),
	}

	return r.search(start)
}

// runner holds the mutable state for a single FindPath execution.
// A fresh runner is allocated per call; see the FindPath doc comment.
type runner struct {
	terrain Terrain
	goal    floorgrid.Cell
	dist    map[floorgrid.Cell]int            // cell → best-known g
	prev    map[floorgrid.Cell]floorgrid.Cell // cell → predecessor on best path
	closed  map[floorgrid.Cell]bool           // cell → distance finalized
	pq      nodePQ
	seq     int // monotone counter for FIFO tie-breaking
}

// search runs the main A* loop from start toward r.goal.
func (r *runner) search(start floorgrid.Cell) ([]floorgrid.Cell, error) {
	// 1) Seed the frontier with the start cell at g=0.
	heap.Init(&r.pq)
	r.dist[start] = 0
	r.push(start, floorgrid.ManhattanDistance(start, r.goal))

	var item *nodeItem
	for r.pq.Len() > 0 {
		// 2) Pop the lowest-priority entry; skip stale duplicates of
		//    already-finalized cells (lazy decrease-key).
		item = heap.Pop(&r.pq).(*nodeItem)
		if r.closed[item.cell] {
			continue
		}

		// 3) Goal reached: its popped distance is final, reconstruct.
		if item.cell == r.goal {
			return r.reconstruct(), nil
		}
		r.closed[item.cell] = true

		// 4) Relax the four orthogonal neighbors.
		r.relax(item.cell)
	}

	return nil, fmt.Errorf("%w: %s -> %s", ErrUnreachable, start, r.goal)
}

// relax offers each unblocked, unfinalized neighbor of u a tentative distance
// of dist[u]+1 and enqueues it when that strictly improves on its best known
// distance. A cell may sit in the frontier multiple times with different
// priorities; the closed check in search discards the stale entries.
func (r *runner) relax(u floorgrid.Cell) {
	du := r.dist[u]
	for _, v := range r.terrain.Neighbors(u) {
		if r.terrain.IsBlocked(v) || r.closed[v] {
			continue
		}
		tentative := du + 1
		if known, ok := r.dist[v]; ok && tentative >= known {
			continue
		}
		r.dist[v] = tentative
		r.prev[v] = u
		r.push(v, tentative+floorgrid.ManhattanDistance(v, r.goal))
	}
}

// push enqueues a frontier entry, stamping it with the next sequence number.
func (r *runner) push(c floorgrid.Cell, priority int) {
	r.seq++
	heap.Push(&r.pq, &nodeItem{cell: c, priority: priority, seq: r.seq})
}

// reconstruct walks the predecessor table from the goal back to the start and
// reverses, yielding the inclusive start→goal sequence. The start cell is the
// only one without a predecessor entry.
func (r *runner) reconstruct() []floorgrid.Cell {
	path := []floorgrid.Cell{r.goal}
	cur := r.goal
	for {
		p, ok := r.prev[cur]
		if !ok {
			break
		}
		path = append(path, p)
		cur = p
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}

// nodeItem is one frontier entry: a cell, its priority (g + Manhattan-to-goal),
// and its insertion sequence number.
type nodeItem struct {
	cell     floorgrid.Cell
	priority int
	seq      int
}

// nodePQ is a min-heap of *nodeItem ordered by ascending priority, with
// insertion order (seq) breaking ties. Stale duplicates are tolerated and
// filtered on pop via the closed table.
type nodePQ []*nodeItem

// Len returns the number of items in the heap.
func (pq nodePQ) Len() int { return len(pq) }

// Less orders by priority, then by insertion sequence for determinism.
func (pq nodePQ) Less(i, j int) bool {
	if pq[i].priority != pq[j].priority {
		return pq[i].priority < pq[j].priority
	}

	return pq[i].seq < pq[j].seq
}

// Swap swaps two elements in the heap.
func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a new element x onto the heap. Called by heap.Push.
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

// Pop removes and returns the smallest element. Called by heap.Pop.
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
