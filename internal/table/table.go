// Package table builds the generation/count table shown next to every demo
// and its downloadable CSV form.
package table

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"

	"github.com/san-kum/groeilab/internal/format"
	"github.com/san-kum/groeilab/internal/growth"
)

type Row struct {
	Generation int
	Label      string
	Exact      string
	Abbrev     string
	Scientific string
	Raw        int64
}

// Headers returns the localized column titles, without the raw column.
func Headers(loc format.Locale) []string {
	switch loc.Tag {
	case "es":
		return []string{"Generación", "Cantidad (exacta)", "Abreviada", "Científica"}
	case "en":
		return []string{"Generation", "Count (exact)", "Short", "Scientific"}
	default:
		return []string{"Generatie", "Aantal (exact)", "Verkort", "Wetenschappelijk"}
	}
}

func Build(s *growth.Series, loc format.Locale) []Row {
	rows := make([]Row, 0, len(s.Counts))
	for g, c := range s.Counts {
		rows = append(rows, Row{
			Generation: g,
			Label:      format.GenerationLabel(g, loc),
			Exact:      format.Exact(c, loc),
			Abbrev:     format.Abbrev(c, loc),
			Scientific: format.Scientific(c),
			Raw:        c,
		})
	}
	return rows
}

// CSV renders the table as CSV bytes. The raw column is dropped; the exact
// column already carries the full number.
func CSV(s *growth.Series, loc format.Locale) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(append([]string{}, Headers(loc)...)); err != nil {
		return nil, err
	}
	for _, row := range Build(s, loc) {
		record := []string{
			strconv.Itoa(row.Generation),
			row.Exact,
			row.Abbrev,
			row.Scientific,
		}
		if err := w.Write(record); err != nil {
			return nil, err
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Render writes an aligned text table.
func Render(w io.Writer, s *growth.Series, loc format.Locale) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)

	headers := Headers(loc)
	fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", headers[0], headers[1], headers[2], headers[3])
	for _, row := range Build(s, loc) {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", row.Label, row.Exact, row.Abbrev, row.Scientific)
	}

	return tw.Flush()
}
