// Package floorroute computes exact optimal shopping routes through
// grid-based floor plans: enter at the entrance, collect every article,
// pay at the counter, and never walk a step more than necessary.
//
// What's inside?
//
//	A small, focused library with four building blocks:
//		• floorgrid — bit-packed obstacle floors with landmarks and labeled articles
//		• astar     — A* shortest paths between two cells, Manhattan-guided
//		• permute   — lexicographic permutation enumeration with prefix skipping
//		• route     — pairwise path caching + branch-and-bound ordering search
//
// The route is exact, not heuristic: every article visiting order is
// considered, and whole blocks of orders are pruned only when a partial
// distance already proves they cannot win. That keeps the search honest and
// fast for shopping-list-sized article counts.
//
// Quick ASCII example (entrance ^, counter $, shelves █, articles by letter):
//
//	^█░··P░░
//	·█░·█·░░
//	C█░·█·S·
//	··B·█░░$
//
// The dotted cells trace the optimal 16-step route through all four articles.
//
// See cmd/floorroute for a CLI that loads TOML floor plans and renders
// routes in color.
//
//	go get github.com/pschiffmann/floorroute
package floorroute
