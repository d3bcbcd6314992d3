package format

import "fmt"

// Unit names one magnitude step of the long scale, e.g. 10^6 "miljoen".
type Unit struct {
	Threshold int64
	Name      string
}

// Locale carries everything the demos localize: magnitude names, the
// thousands separator, and generation labels.
type Locale struct {
	Tag      string
	GroupSep rune
	Units    []Unit // descending by threshold
}

var (
	// Dutch uses the long scale: biljoen is 10^12.
	Dutch = Locale{
		Tag:      "nl",
		GroupSep: '.',
		Units: []Unit{
			{1_000_000_000_000, "biljoen"},
			{1_000_000_000, "miljard"},
			{1_000_000, "miljoen"},
			{1_000, "duizend"},
		},
	}

	Spanish = Locale{
		Tag:      "es",
		GroupSep: '.',
		Units: []Unit{
			{1_000_000_000_000, "billones"},
			{1_000_000_000, "miles de millones"},
			{1_000_000, "millones"},
			{1_000, "mil"},
		},
	}

	English = Locale{
		Tag:      "en",
		GroupSep: ',',
		Units: []Unit{
			{1_000_000_000_000, "trillion"},
			{1_000_000_000, "billion"},
			{1_000_000, "million"},
			{1_000, "thousand"},
		},
	}
)

// ByTag resolves a locale tag, falling back to Dutch.
func ByTag(tag string) Locale {
	switch tag {
	case "es":
		return Spanish
	case "en":
		return English
	default:
		return Dutch
	}
}

// GenerationLabel renders "3e generatie" / "generación 3" / "generation 3".
func GenerationLabel(g int, loc Locale) string {
	switch loc.Tag {
	case "es":
		return fmt.Sprintf("generación %d", g)
	case "en":
		return fmt.Sprintf("generation %d", g)
	default:
		return fmt.Sprintf("%de generatie", g)
	}
}
