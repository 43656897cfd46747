package format

import (
	"strings"

	"millbrook.dev/catalog-web/internal/catalog"
)

// Price renders a present price for display, e.g. "$1,234.56". The storefront
// sells in a single implicit currency, so there is no currency parameter.
//
// Callers must check Price.Displayable() first; formatting an absent price is
// a programming error and panics so it surfaces in integration tests instead
// of rendering a NaN-like artifact.
func Price(p catalog.Price) string {
	if !p.Valid {
		panic("format: Price called with absent price")
	}
	fixed := p.Amount.StringFixed(2)
	neg := strings.HasPrefix(fixed, "-")
	if neg {
		fixed = fixed[1:]
	}
	whole, frac, _ := strings.Cut(fixed, ".")
	out := "$" + thousandSep(whole) + "." + frac
	if neg {
		return "-" + out
	}
	return out
}

func thousandSep(digits string) string {
	var b strings.Builder
	for i, c := range digits {
		if i != 0 && (len(digits)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(c)
	}
	return b.String()
}
