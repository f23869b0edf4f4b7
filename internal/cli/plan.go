package cli

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/pschiffmann/floorroute/floorgrid"
)

// Floor-plan file runes: '.' marks a passable cell, '#' a blocked one.
const (
	planFree    = '.'
	planBlocked = '#'
)

// planFile is the TOML schema for a floor plan:
//
//	floor = [
//	    "........",
//	    "..####..",
//	    "........",
//	]
//
//	[entrance]
//	x = 0
//	y = 0
//
//	[counter]
//	x = 7
//	y = 2
//
//	[[articles]]
//	x = 3
//	y = 0
//	label = "Cheese"
type planFile struct {
	Floor    []string      `toml:"floor"`
	Entrance planCell      `toml:"entrance"`
	Counter  planCell      `toml:"counter"`
	Articles []planArticle `toml:"articles"`
}

type planCell struct {
	X int `toml:"x"`
	Y int `toml:"y"`
}

type planArticle struct {
	X     int    `toml:"x"`
	Y     int    `toml:"y"`
	Label string `toml:"label"`
}

// loadPlan reads a TOML floor plan and packs it into a floorgrid.Grid.
// Rows are padded to the next byte boundary with blocked bits, so the padding
// never becomes walkable. Grid-level integrity (landmarks and articles on
// passable cells) is validated by floorgrid.New.
func loadPlan(path string) (*floorgrid.Grid, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var plan planFile
	if err = toml.Unmarshal(data, &plan); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	bitmap, rowBytes, err := packFloor(plan.Floor)
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	articles := make(map[floorgrid.Cell]string, len(plan.Articles))
	for _, a := range plan.Articles {
		cell := floorgrid.Cell{X: a.X, Y: a.Y}
		if a.Label == "" {
			return nil, fmt.Errorf("parse %s: article at %s has no label", path, cell)
		}
		if prev, ok := articles[cell]; ok {
			return nil, fmt.Errorf("parse %s: articles %q and %q share cell %s", path, prev, a.Label, cell)
		}
		articles[cell] = a.Label
	}

	return floorgrid.New(bitmap, rowBytes,
		floorgrid.Cell{X: plan.Entrance.X, Y: plan.Entrance.Y},
		floorgrid.Cell{X: plan.Counter.X, Y: plan.Counter.Y},
		articles)
}

// packFloor converts '.'/'#' rows into the packed MSB-first bitmap expected
// by floorgrid.New. All rows must be non-empty and equally wide.
func packFloor(rows []string) ([]byte, int, error) {
	if len(rows) == 0 {
		return nil, 0, fmt.Errorf("floor has no rows")
	}
	width := len([]rune(rows[0]))
	if width == 0 {
		return nil, 0, fmt.Errorf("floor rows are empty")
	}
	rowBytes := (width + 7) / 8

	bitmap := make([]byte, rowBytes*len(rows))
	for y, row := range rows {
		runes := []rune(row)
		if len(runes) != width {
			return nil, 0, fmt.Errorf("floor row %d has width %d, want %d", y, len(runes), width)
		}
		for x := 0; x < rowBytes*8; x++ {
			blocked := true // byte-boundary padding stays blocked
			if x < width {
				switch runes[x] {
				case planFree:
					blocked = false
				case planBlocked:
					blocked = true
				default:
					return nil, 0, fmt.Errorf("floor row %d: unexpected rune %q at column %d", y, runes[x], x)
				}
			}
			if blocked {
				bitmap[y*rowBytes+x/8] |= 0x80 >> (x % 8)
			}
		}
	}

	return bitmap, rowBytes, nil
}
