// Package format renders monetary values for display, French convention:
// non-breaking space as thousands separator, trailing euro sign. The engine
// itself stores and computes plain float64 only; this package is for CLI and
// demo output.
package format

import (
	"math"
	"strconv"
	"strings"
)

// nbsp is the non-breaking space used as thousands separator.
const nbsp = "\u00a0"

// EUR formats an amount rounded to the nearest euro, e.g. 1234567.89 →
// "1 234 568 €" (with non-breaking spaces).
func EUR(amount float64) string {
	n := int64(math.Round(math.Abs(amount)))
	neg := amount < 0 && n != 0

	digits := strconv.FormatInt(n, 10)
	var b strings.Builder
	if neg {
		b.WriteByte('-')
	}
	lead := len(digits) % 3
	if lead > 0 {
		b.WriteString(digits[:lead])
		if len(digits) > lead {
			b.WriteString(nbsp)
		}
	}
	for i := lead; i < len(digits); i += 3 {
		b.WriteString(digits[i : i+3])
		if i+3 < len(digits) {
			b.WriteString(nbsp)
		}
	}
	b.WriteString(nbsp + "€")
	return b.String()
}
