// Package layout computes 2-D positions for generation tiles inside the unit
// square. All functions are pure; the renderers scale the result to whatever
// surface they draw on.
package layout

import (
	"errors"
	"math"
)

// MaxTiles is the display budget. Layouts above it get unreadably small, so
// the paginated demos stop advancing there and the live view falls back to
// the curve alone.
const MaxTiles = 4096

// ErrBudget indicates a generation too large to lay out as tiles.
var ErrBudget = errors.New("layout: tile count exceeds display budget")

const (
	// fraction of a grid cell kept free around each tile
	cellMargin = 0.15

	// vertical band at the top reserved for the parent row in clustered layouts
	parentBand = 0.18
	bandGap    = 0.04
)

// Tile is one shape, positioned by center in the unit square. Size is the
// edge length for blocks and the diameter for circles.
type Tile struct {
	X, Y   float64
	Size   float64
	Parent int // cluster index, -1 for ungrouped grids
}

// Arrow connects a parent tile to its child cluster.
type Arrow struct {
	X1, Y1, X2, Y2 float64
}

// Grid lays out n tiles in a near-square grid filling the unit square.
func Grid(n int) []Tile {
	return gridIn(n, 0, 0, 1, 1, -1)
}

// Clusters lays out a clustered generation: the parents in a band along the
// top, each parent's k children grouped in its own cell below, and one arrow
// per parent pointing at its cluster.
func Clusters(parents, k int) (parentTiles, childTiles []Tile, arrows []Arrow) {
	if parents <= 0 || k <= 0 {
		return nil, nil, nil
	}

	parentTiles = gridIn(parents, 0, 0, 1, parentBand, -1)

	top := parentBand + bandGap
	cellCols := int(math.Ceil(math.Sqrt(float64(parents))))
	cellRows := (parents + cellCols - 1) / cellCols
	cw := 1.0 / float64(cellCols)
	ch := (1.0 - top) / float64(cellRows)

	childTiles = make([]Tile, 0, parents*k)
	arrows = make([]Arrow, 0, parents)

	for p := 0; p < parents; p++ {
		row := p / cellCols
		col := p % cellCols
		x0 := float64(col) * cw
		y0 := top + float64(row)*ch

		cluster := gridIn(k, x0+cw*cellMargin/2, y0+ch*cellMargin/2,
			cw*(1-cellMargin), ch*(1-cellMargin), p)
		childTiles = append(childTiles, cluster...)

		arrows = append(arrows, Arrow{
			X1: parentTiles[p].X,
			Y1: parentTiles[p].Y + parentTiles[p].Size/2,
			X2: x0 + cw/2,
			Y2: y0 + ch*cellMargin/2,
		})
	}

	return parentTiles, childTiles, arrows
}

// ForGeneration lays out generation g of a count series. Generation 0 is a
// plain grid; later generations cluster each parent's offspring under it.
func ForGeneration(counts []int64, g, factor int) (parents, children []Tile, arrows []Arrow, err error) {
	if g < 0 || g >= len(counts) {
		return nil, nil, nil, ErrBudget
	}
	if counts[g] > MaxTiles {
		return nil, nil, nil, ErrBudget
	}

	if g == 0 {
		return nil, Grid(int(counts[0])), nil, nil
	}

	p, c, a := Clusters(int(counts[g-1]), factor)
	return p, c, a, nil
}

// LastWithinBudget returns the highest generation whose count still fits the
// tile budget, or -1 when even generation 0 is too large.
func LastWithinBudget(counts []int64) int {
	last := -1
	for g, c := range counts {
		if c > MaxTiles {
			break
		}
		last = g
	}
	return last
}

// gridIn distributes n tiles over a near-square grid inside the given
// rectangle, correcting the column count for the rectangle's aspect ratio.
func gridIn(n int, x0, y0, w, h float64, parent int) []Tile {
	if n <= 0 || w <= 0 || h <= 0 {
		return nil
	}

	cols := int(math.Ceil(math.Sqrt(float64(n) * w / h)))
	if cols < 1 {
		cols = 1
	}
	if cols > n {
		cols = n
	}
	rows := (n + cols - 1) / cols

	cw := w / float64(cols)
	ch := h / float64(rows)
	size := math.Min(cw, ch) * (1 - cellMargin)

	tiles := make([]Tile, 0, n)
	for i := 0; i < n; i++ {
		r := i / cols
		c := i % cols
		tiles = append(tiles, Tile{
			X:      x0 + (float64(c)+0.5)*cw,
			Y:      y0 + (float64(r)+0.5)*ch,
			Size:   size,
			Parent: parent,
		})
	}
	return tiles
}
