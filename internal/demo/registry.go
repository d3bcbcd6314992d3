// Package demo registers the five classroom demos. They share one engine and
// differ only in language, framing, navigation, and tile shape.
package demo

import (
	"fmt"
	"sort"

	"github.com/san-kum/groeilab/internal/format"
	"github.com/san-kum/groeilab/internal/growth"
)

// Mode selects how a demo moves through generations.
type Mode int

const (
	// ModeAnimate advances on a timer.
	ModeAnimate Mode = iota
	// ModePaginate advances on arrow keys only.
	ModePaginate
)

// Shape selects the tile glyph.
type Shape int

const (
	ShapeBlock Shape = iota
	ShapeCircle
)

type Demo struct {
	Name        string
	Title       string
	Description string
	Locale      format.Locale
	Mode        Mode
	Shape       Shape
	Defaults    growth.Params
	FrameMs     int
}

var demos = map[string]Demo{
	"groei": {
		Name:        "groei",
		Title:       "Exponentiële groei",
		Description: "bacteriegroei als animatie, 3 → 9 → 27",
		Locale:      format.Dutch,
		Mode:        ModeAnimate,
		Shape:       ShapeCircle,
		Defaults:    growth.Params{Start: 3, K: 3, Generations: 20},
		FrameMs:     500,
	},
	"tegels": {
		Name:        "tegels",
		Title:       "Tegels per generatie",
		Description: "bladeren door generaties, blokjes per ouder",
		Locale:      format.Dutch,
		Mode:        ModePaginate,
		Shape:       ShapeBlock,
		Defaults:    growth.Params{Start: 3, K: 3, Generations: 6},
	},
	"gezin": {
		Name:        "gezin",
		Title:       "Ouders blijven",
		Description: "populatie waarin ouders niet verdwijnen (factor k+1)",
		Locale:      format.Dutch,
		Mode:        ModeAnimate,
		Shape:       ShapeCircle,
		Defaults:    growth.Params{Start: 2, K: 2, Generations: 8, IncludeParents: true},
		FrameMs:     600,
	},
	"potencias": {
		Name:        "potencias",
		Title:       "Potencias a^b",
		Description: "exponenciación paso a paso, un bloque por unidad",
		Locale:      format.Spanish,
		Mode:        ModePaginate,
		Shape:       ShapeBlock,
		Defaults:    growth.Params{Start: 1, K: 4, Generations: 5},
	},
	"crecimiento": {
		Name:        "crecimiento",
		Title:       "Crecimiento exponencial",
		Description: "animación de crecimiento con círculos",
		Locale:      format.Spanish,
		Mode:        ModeAnimate,
		Shape:       ShapeCircle,
		Defaults:    growth.Params{Start: 3, K: 2, Generations: 10},
		FrameMs:     400,
	},
}

func Get(name string) (Demo, error) {
	d, ok := demos[name]
	if !ok {
		return Demo{}, fmt.Errorf("unknown demo: %s (available: %v)", name, Names())
	}
	return d, nil
}

// List returns all demos sorted by name.
func List() []Demo {
	out := make([]Demo, 0, len(demos))
	for _, d := range demos {
		out = append(out, d)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

func Names() []string {
	names := make([]string, 0, len(demos))
	for name := range demos {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
