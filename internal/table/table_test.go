package table

import (
	"bytes"
	"encoding/csv"
	"strings"
	"testing"

	"github.com/san-kum/groeilab/internal/format"
	"github.com/san-kum/groeilab/internal/growth"
)

func mustSeries(t *testing.T, p growth.Params) *growth.Series {
	t.Helper()
	s, err := growth.Simulate(p)
	if err != nil {
		t.Fatalf("simulate failed: %v", err)
	}
	return s
}

func TestBuild(t *testing.T) {
	s := mustSeries(t, growth.Params{Start: 3, K: 3, Generations: 2})
	rows := Build(s, format.Dutch)

	if len(rows) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(rows))
	}
	if rows[0].Label != "0e generatie" {
		t.Errorf("unexpected label: %s", rows[0].Label)
	}
	if rows[2].Exact != "27" || rows[2].Abbrev != "27" {
		t.Errorf("generation 2: expected 27/27, got %s/%s", rows[2].Exact, rows[2].Abbrev)
	}
	if rows[2].Raw != 27 {
		t.Errorf("expected raw 27, got %d", rows[2].Raw)
	}
}

func TestBuildLargeCounts(t *testing.T) {
	s := mustSeries(t, growth.Params{Start: 1, K: 10, Generations: 6})
	rows := Build(s, format.Dutch)

	last := rows[len(rows)-1]
	if last.Exact != "1.000.000" {
		t.Errorf("expected grouped exact, got %s", last.Exact)
	}
	if last.Abbrev != "1.00 miljoen" {
		t.Errorf("expected abbreviated miljoen, got %s", last.Abbrev)
	}
}

func TestCSV(t *testing.T) {
	s := mustSeries(t, growth.Params{Start: 3, K: 3, Generations: 2})
	data, err := CSV(s, format.Dutch)
	if err != nil {
		t.Fatalf("csv failed: %v", err)
	}

	r := csv.NewReader(bytes.NewReader(data))
	records, err := r.ReadAll()
	if err != nil {
		t.Fatalf("reading csv back failed: %v", err)
	}

	if len(records) != 4 {
		t.Fatalf("expected header + 3 rows, got %d records", len(records))
	}
	if records[0][0] != "Generatie" {
		t.Errorf("unexpected header: %v", records[0])
	}
	if records[3][1] != "27" {
		t.Errorf("expected exact 27, got %s", records[3][1])
	}
}

func TestRender(t *testing.T) {
	s := mustSeries(t, growth.Params{Start: 3, K: 3, Generations: 2})

	var buf bytes.Buffer
	if err := Render(&buf, s, format.Spanish); err != nil {
		t.Fatalf("render failed: %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, "Generación") {
		t.Error("expected Spanish header")
	}
	if !strings.Contains(out, "generación 2") {
		t.Error("expected Spanish generation label")
	}
}
