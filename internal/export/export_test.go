package export

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/san-kum/groeilab/internal/format"
	"github.com/san-kum/groeilab/internal/growth"
	"github.com/san-kum/groeilab/internal/layout"
	"github.com/san-kum/groeilab/internal/storage"
)

func TestLayoutSVGTileCount(t *testing.T) {
	parents, children, arrows := layout.Clusters(4, 3)
	svg := LayoutSVG(parents, children, arrows, false, 400)

	if !strings.HasPrefix(svg, `<?xml`) || !strings.Contains(svg, "<svg") {
		t.Fatal("not an SVG document")
	}

	// background rect plus one per tile
	rects := strings.Count(svg, "<rect")
	if want := 1 + len(parents) + len(children); rects != want {
		t.Errorf("expected %d rects, got %d", want, rects)
	}

	// each arrow renders as a shaft and two head strokes
	lines := strings.Count(svg, "<line")
	if want := 3 * len(arrows); lines != want {
		t.Errorf("expected %d lines, got %d", want, lines)
	}
}

func TestLayoutSVGCircles(t *testing.T) {
	tiles := layout.Grid(9)
	svg := LayoutSVG(nil, tiles, nil, true, 400)

	if strings.Count(svg, "<circle") != 9 {
		t.Errorf("expected 9 circles, got %d", strings.Count(svg, "<circle"))
	}
}

func TestCurveSVG(t *testing.T) {
	counts := []int64{3, 9, 27, 81}
	svg := CurveSVG(counts, 640, 360, true)

	if !strings.Contains(svg, "<path") {
		t.Error("missing path element")
	}
	if CurveSVG(counts[:1], 640, 360, false) != "" {
		t.Error("single point should render nothing")
	}
}

func TestJSONRoundTrip(t *testing.T) {
	series, err := growth.Simulate(growth.Params{Start: 3, K: 3, Generations: 3})
	if err != nil {
		t.Fatal(err)
	}

	meta := storage.RunMetadata{ID: "groei_1", Demo: "groei", Factor: 3, Final: 81}
	var buf bytes.Buffer
	if err := JSON(&buf, meta, series, format.Dutch); err != nil {
		t.Fatal(err)
	}

	var doc RunDocument
	if err := json.Unmarshal(buf.Bytes(), &doc); err != nil {
		t.Fatal(err)
	}
	if doc.Locale != "nl" {
		t.Errorf("locale = %q", doc.Locale)
	}
	if len(doc.Generations) != 4 {
		t.Fatalf("expected 4 generation rows, got %d", len(doc.Generations))
	}
	if doc.Generations[3].Count != 81 || doc.Generations[3].Exact != "81" {
		t.Errorf("last row = %+v", doc.Generations[3])
	}
}
