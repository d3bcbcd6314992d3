package viz

import (
	"github.com/san-kum/groeilab/internal/demo"
	"github.com/san-kum/groeilab/internal/layout"
)

// DrawTiles rasterizes unit-square tiles onto the canvas.
func DrawTiles(c *Canvas, tiles []layout.Tile, shape demo.Shape) {
	pw, ph := c.PixelSize()

	for _, t := range tiles {
		cx := int(t.X * float64(pw))
		cy := int(t.Y * float64(ph))

		switch shape {
		case demo.ShapeCircle:
			// the vertical pixel pitch is twice the horizontal one
			r := int(t.Size / 2 * float64(ph))
			c.FillCircle(cx, cy, r)
		default:
			hw := int(t.Size / 2 * float64(pw))
			hh := int(t.Size / 2 * float64(ph))
			c.FillRect(cx-hw, cy-hh, cx+hw, cy+hh)
		}
	}
}

// DrawArrows rasterizes parent-to-cluster arrows.
func DrawArrows(c *Canvas, arrows []layout.Arrow) {
	pw, ph := c.PixelSize()

	for _, a := range arrows {
		c.DrawArrow(
			int(a.X1*float64(pw)), int(a.Y1*float64(ph)),
			int(a.X2*float64(pw)), int(a.Y2*float64(ph)),
		)
	}
}

// DrawGeneration lays out and rasterizes one generation of a count series.
// Arrows are only drawn for block demos, where the parent band reads as a
// separate row.
func DrawGeneration(c *Canvas, counts []int64, g, factor int, shape demo.Shape) error {
	parents, children, arrows, err := layout.ForGeneration(counts, g, factor)
	if err != nil {
		return err
	}

	DrawTiles(c, parents, shape)
	DrawTiles(c, children, shape)
	if shape == demo.ShapeBlock {
		DrawArrows(c, arrows)
	}
	return nil
}
