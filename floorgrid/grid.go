package floorgrid

import (
	"fmt"
)

// New constructs a Grid from a packed obstacle bitmap and validates its
// integrity. The bitmap is copied, so the caller's slice stays untouched by
// later Block/Free calls. The articles map is copied as well; nil is treated
// as "no articles".
//
// Returns ErrNilBitmap or ErrBadRowBytes for missing/invalid required inputs,
// ErrBitmapSize if len(bitmap) is not an exact multiple of rowBytes, and
// ErrBlockedEntrance / ErrBlockedCounter / ErrBlockedArticle if a landmark or
// article cell is blocked or out of bounds.
// Complexity: O(len(bitmap) + |articles|) time and memory.
func New(bitmap []byte, rowBytes int, entrance, counter Cell, articles map[Cell]string) (*Grid, error) {
	if bitmap == nil {
		return nil, ErrNilBitmap
	}
	if rowBytes <= 0 {
		return nil, ErrBadRowBytes
	}
	if len(bitmap)%rowBytes != 0 {
		return nil, fmt.Errorf("%w: %d bytes / %d per row", ErrBitmapSize, len(bitmap), rowBytes)
	}

	g := &Grid{
		bitmap:   append([]byte(nil), bitmap...),
		rowBytes: rowBytes,
		entrance: entrance,
		counter:  counter,
		articles: make(map[Cell]string, len(articles)),
	}

	if g.IsBlocked(entrance) {
		return nil, fmt.Errorf("%w: %s", ErrBlockedEntrance, entrance)
	}
	if g.IsBlocked(counter) {
		return nil, fmt.Errorf("%w: %s", ErrBlockedCounter, counter)
	}
	for cell, label := range articles {
		if g.IsBlocked(cell) {
			return nil, fmt.Errorf("%w: %s for article %q", ErrBlockedArticle, cell, label)
		}
		g.articles[cell] = label
	}

	return g, nil
}

// Width returns the logical grid width in cells (rowBytes × 8).
func (g *Grid) Width() int {
	return g.rowBytes * 8
}

// Height returns the logical grid height in cells.
func (g *Grid) Height() int {
	return len(g.bitmap) / g.rowBytes
}

// Entrance returns the starting landmark for route computation.
func (g *Grid) Entrance() Cell {
	return g.entrance
}

// Counter returns the exit landmark for route computation.
func (g *Grid) Counter() Cell {
	return g.counter
}

// Articles returns a copy of the article map (cell → label). Mutating the
// returned map does not affect the grid.
func (g *Grid) Articles() map[Cell]string {
	out := make(map[Cell]string, len(g.articles))
	for cell, label := range g.articles {
		out[cell] = label
	}

	return out
}

// InBounds reports whether c lies within [0,Width)×[0,Height).
// Complexity: O(1).
func (g *Grid) InBounds(c Cell) bool {
	return c.X >= 0 && c.X < g.Width() && c.Y >= 0 && c.Y < g.Height()
}

// IsBlocked reports whether c is impassable: out of bounds, or its bit is set.
// Bounds count as blocked so callers never need a separate range check.
//
// The bitmap is logically a 2D boolean array packed into bytes: the byte for
// (x,y) sits at y*rowBytes + x/8, and within that byte the mask 0x80 >> (x%8)
// selects the cell, MSB being the leftmost cell.
// Complexity: O(1).
func (g *Grid) IsBlocked(c Cell) bool {
	if !g.InBounds(c) {
		return true
	}

	return g.bitmap[c.Y*g.rowBytes+c.X/8]&(0x80>>(c.X%8)) != 0
}

// Block marks c as impassable. Returns ErrOutOfBounds if c lies outside the
// grid; out-of-range mutation is a caller bug, never silently ignored.
func (g *Grid) Block(c Cell) error {
	if !g.InBounds(c) {
		return fmt.Errorf("%w: %s", ErrOutOfBounds, c)
	}
	g.bitmap[c.Y*g.rowBytes+c.X/8] |= 0x80 >> (c.X % 8)

	return nil
}

// Free marks c as passable. Returns ErrOutOfBounds if c lies outside the grid.
func (g *Grid) Free(c Cell) error {
	if !g.InBounds(c) {
		return fmt.Errorf("%w: %s", ErrOutOfBounds, c)
	}
	g.bitmap[c.Y*g.rowBytes+c.X/8] &^= 0x80 >> (c.X % 8)

	return nil
}

// Neighbors returns the four orthogonally adjacent cells of c, unfiltered:
// entries may be blocked or out of bounds, callers filter with IsBlocked.
// Order is W, E, N, S.
// Complexity: O(1).
func (g *Grid) Neighbors(c Cell) [4]Cell {
	return [4]Cell{
		{c.X - 1, c.Y},
		{c.X + 1, c.Y},
		{c.X, c.Y - 1},
		{c.X, c.Y + 1},
	}
}
