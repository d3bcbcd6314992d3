// Package format renders generation counts for classroom display: exact with
// digit grouping, abbreviated with long-scale magnitude names, and scientific.
package format

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Abbrev renders n readable for the classroom: literal digits below 1000,
// then "1.50 miljoen" style with 2-3 significant digits, with a scientific
// fallback past the largest named magnitude.
func Abbrev(n int64, loc Locale) string {
	if n < 0 {
		return "-" + Abbrev(-n, loc)
	}
	if n < 1000 {
		return strconv.FormatInt(n, 10)
	}

	for _, u := range loc.Units {
		if n < u.Threshold {
			continue
		}
		v := float64(n) / float64(u.Threshold)
		var s string
		switch {
		case v < 10:
			s = fmt.Sprintf("%.2f", v)
		case v < 100:
			s = fmt.Sprintf("%.1f", v)
		default:
			s = strconv.FormatInt(int64(math.Round(v)), 10)
		}
		return s + " " + u.Name
	}

	exp := int(math.Log10(float64(n)))
	mant := float64(n) / math.Pow(10, float64(exp))
	return fmt.Sprintf("%.2fe%d", mant, exp)
}

// Exact renders n with the locale's thousands separator: 1234567 → "1.234.567".
func Exact(n int64, loc Locale) string {
	s := strconv.FormatInt(n, 10)
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}

	var b strings.Builder
	if neg {
		b.WriteByte('-')
	}
	lead := len(s) % 3
	if lead == 0 {
		lead = 3
	}
	b.WriteString(s[:lead])
	for i := lead; i < len(s); i += 3 {
		b.WriteRune(loc.GroupSep)
		b.WriteString(s[i : i+3])
	}
	return b.String()
}

// Scientific renders n as "2.70e+01".
func Scientific(n int64) string {
	return fmt.Sprintf("%.2e", float64(n))
}
