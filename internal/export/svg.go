// Package export writes simulation runs out as SVG and JSON documents for
// projecting or embedding in worksheets.
package export

import (
	"fmt"
	"math"
	"strings"

	"github.com/san-kum/groeilab/internal/layout"
)

const svgBackground = "#0a1f0a"

// LayoutSVG renders one laid-out generation as a standalone SVG. Parents sit
// in their top band with an arrow to each cluster; circles toggles between
// round and square tiles.
func LayoutSVG(parents, children []layout.Tile, arrows []layout.Arrow, circles bool, size int) string {
	if size <= 0 {
		size = 640
	}
	s := float64(size)

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="%s"/>
`, size, size, size, size, svgBackground))

	sb.WriteString(`<g stroke="#aad4aa" stroke-width="1.5">` + "\n")
	for _, a := range arrows {
		x1, y1 := a.X1*s, a.Y1*s
		x2, y2 := a.X2*s, a.Y2*s
		sb.WriteString(fmt.Sprintf(`<line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f"/>
`, x1, y1, x2, y2))

		// arrowhead strokes angled back toward the tail
		ang := math.Atan2(y1-y2, x1-x2)
		for _, d := range []float64{-0.5, 0.5} {
			sb.WriteString(fmt.Sprintf(`<line x1="%.1f" y1="%.1f" x2="%.1f" y2="%.1f"/>
`, x2, y2, x2+8*math.Cos(ang+d), y2+8*math.Sin(ang+d)))
		}
	}
	sb.WriteString("</g>\n")

	writeTiles(&sb, parents, circles, s, "#ffdd88")
	writeTiles(&sb, children, circles, s, "#f5f5dc")

	sb.WriteString("</svg>")
	return sb.String()
}

func writeTiles(sb *strings.Builder, tiles []layout.Tile, circles bool, s float64, fill string) {
	if len(tiles) == 0 {
		return
	}
	sb.WriteString(fmt.Sprintf(`<g fill="%s">`+"\n", fill))
	for _, t := range tiles {
		if circles {
			sb.WriteString(fmt.Sprintf(`<circle cx="%.1f" cy="%.1f" r="%.1f"/>
`, t.X*s, t.Y*s, t.Size/2*s))
		} else {
			half := t.Size / 2 * s
			sb.WriteString(fmt.Sprintf(`<rect x="%.1f" y="%.1f" width="%.1f" height="%.1f"/>
`, t.X*s-half, t.Y*s-half, 2*half, 2*half))
		}
	}
	sb.WriteString("</g>\n")
}

// CurveSVG renders the count-per-generation curve as a standalone SVG path.
// With logScale the y axis is log10 of the count.
func CurveSVG(counts []int64, width, height int, logScale bool) string {
	if len(counts) < 2 {
		return ""
	}

	ys := make([]float64, len(counts))
	minY, maxY := math.Inf(1), math.Inf(-1)
	for i, c := range counts {
		v := float64(c)
		if logScale {
			v = math.Log10(v)
		}
		ys[i] = v
		minY = math.Min(minY, v)
		maxY = math.Max(maxY, v)
	}

	rangeY := maxY - minY
	if rangeY == 0 {
		rangeY = 1
	}
	minY -= rangeY * 0.1
	maxY += rangeY * 0.1
	rangeY = maxY - minY

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="%s"/>
<path fill="none" stroke="#aad4aa" stroke-width="1.5" d="M`,
		width, height, width, height, svgBackground))

	for i, v := range ys {
		x := float64(i) / float64(len(ys)-1) * float64(width)
		y := float64(height) - (v-minY)/rangeY*float64(height)
		if i == 0 {
			sb.WriteString(fmt.Sprintf("%.1f,%.1f", x, y))
		} else {
			sb.WriteString(fmt.Sprintf(" L%.1f,%.1f", x, y))
		}
	}

	sb.WriteString(`"/>
</svg>`)
	return sb.String()
}
