package export

import (
	"encoding/json"
	"io"

	"github.com/san-kum/groeilab/internal/format"
	"github.com/san-kum/groeilab/internal/growth"
	"github.com/san-kum/groeilab/internal/storage"
)

type GenerationRow struct {
	Generation int    `json:"generation"`
	Count      int64  `json:"count"`
	Exact      string `json:"exact"`
	Abbrev     string `json:"abbrev"`
	Scientific string `json:"scientific"`
}

type RunDocument struct {
	Meta        storage.RunMetadata `json:"meta"`
	Locale      string              `json:"locale"`
	Generations []GenerationRow     `json:"generations"`
}

// JSON writes a run as an indented JSON document with both raw counts and
// the localized display strings per generation.
func JSON(w io.Writer, meta storage.RunMetadata, series *growth.Series, loc format.Locale) error {
	doc := RunDocument{
		Meta:        meta,
		Locale:      loc.Tag,
		Generations: make([]GenerationRow, len(series.Counts)),
	}

	for g, c := range series.Counts {
		doc.Generations[g] = GenerationRow{
			Generation: g,
			Count:      c,
			Exact:      format.Exact(c, loc),
			Abbrev:     format.Abbrev(c, loc),
			Scientific: format.Scientific(c),
		}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(doc)
}
