package chart

import (
	"math"
	"strings"

	"evocoffee/internal/core"
)

const (
	donutSize   = 160.0
	donutRadius = 52.0
	donutStroke = 18.0
)

// Donut renders each value as a stroked circle segment whose arc length is
// its share of the circumference. Segments are placed contiguously from
// angle zero in input order, with rounded caps, over a faint background
// ring. The center label shows the formatted total. A series with no
// values, or whose values are all exactly zero, renders the empty state.
func Donut(labels []string, values []float64, st Style) string {
	if len(values) == 0 || allZero(values) {
		return emptyChart
	}

	var total float64
	for _, v := range values {
		total += v
	}
	const center = donutSize / 2
	circumference := 2 * math.Pi * donutRadius

	var b strings.Builder
	b.WriteString(`<div class="chart-svg">` +
		`<svg viewBox="0 0 ` + num(donutSize) + ` ` + num(donutSize) + `" role="img" aria-label="Donut chart">` +
		`<circle cx="` + num(center) + `" cy="` + num(center) + `" r="` + num(donutRadius) +
		`" fill="transparent" stroke="rgba(255,255,255,0.08)" stroke-width="` + num(donutStroke) + `" />`)

	offset := 0.0
	for i, v := range values {
		dash := v / total * circumference
		b.WriteString(`<circle cx="` + num(center) + `" cy="` + num(center) + `" r="` + num(donutRadius) +
			`" fill="transparent" stroke="` + st.colorAt(i) +
			`" stroke-width="` + num(donutStroke) +
			`" stroke-dasharray="` + num(dash) + ` ` + num(circumference-dash) +
			`" stroke-dashoffset="` + num(-offset) +
			`" stroke-linecap="round" />`)
		offset += dash
	}

	centerText := core.FormatMoney(total)
	if st.CenterFormat != nil {
		centerText = st.CenterFormat(total)
	}
	b.WriteString(`<text x="` + num(center) + `" y="` + num(center) +
		`" fill="#e6f3ea" font-size="14" font-family="IBM Plex Mono" text-anchor="middle" dominant-baseline="middle">` +
		esc(centerText) + `</text></svg></div>`)
	b.WriteString(legend(labels, values, st))
	return b.String()
}

func allZero(values []float64) bool {
	for _, v := range values {
		if v != 0 {
			return false
		}
	}
	return true
}
