// Package floorgrid models a rectangular floor plan as a bit-packed obstacle
// grid with two landmark cells and labeled article cells.
//
// What:
//
//   - Grid wraps a packed bitmap (one bit per cell, row-major, MSB = leftmost
//     cell in a byte) plus a row width in bytes, an entrance, a counter (exit),
//     and a map of article cells to labels.
//   - IsBlocked answers passability with bounds-as-blocked semantics.
//   - Block/Free toggle single cells between route computations.
//   - Neighbors yields the four orthogonal adjacents, unfiltered.
//   - Render draws a one-glyph-per-cell diagnostic view of the floor and an
//     optional route.
//
// Why:
//
//   - Store layouts: where shelves block the aisles, where the register sits.
//   - Warehouse picking: which rack cells a picker must reach.
//   - Any unit-cost 4-connected grid whose obstacles fit one bit per cell.
//
// Complexity:
//
//   - New:        O(len(bitmap) + |articles|), deep-copies both inputs.
//   - IsBlocked / Block / Free / Neighbors / InBounds: O(1).
//   - Render:     O(W×H).
//
// Errors:
//
//   - ErrInvalidArgument kind: ErrNilBitmap, ErrBadRowBytes — a required input
//     is missing or meaningless.
//   - ErrIntegrity kind: ErrBitmapSize, ErrBlockedEntrance, ErrBlockedCounter,
//     ErrBlockedArticle, ErrOutOfBounds — the floor data is structurally
//     inconsistent.
//
// Concurrency: a Grid is safe for concurrent reads; Block and Free are the
// only mutators and must not run concurrently with readers.
package floorgrid
