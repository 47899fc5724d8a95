// Package chart renders labeled numeric series as self-contained SVG
// drawings with legends. The renderers are pure functions: same series and
// style in, same markup out. They know nothing about where the numbers
// came from.
package chart

import (
	"html"
	"strconv"
	"strings"
)

// Canvas geometry shared by the line and bar renderers.
const (
	canvasWidth  = 320
	canvasHeight = 160
	canvasPad    = 20
	gridGuides   = 3
)

// emptyChart is the fixed placeholder rendered when a series has no data.
const emptyChart = `<div class="chart-svg"><div class="chart-empty">No data yet.</div></div>`

// Style configures a single render call.
type Style struct {
	// Palette supplies per-point colors; renderers cycle through it by
	// index modulo its length.
	Palette []string
	// Stroke and Fill apply to the line renderer only.
	Stroke string
	Fill string
	// LegendFormat renders a value for legend rows. Falls back to a plain
	// number when nil.
	LegendFormat func(float64) string
	// CenterFormat renders the donut center total. Falls back to the
	// money format when nil.
	CenterFormat func(float64) string
}

func (st Style) colorAt(i int) string {
	if len(st.Palette) == 0 {
		return st.Stroke
	}
	return st.Palette[i%len(st.Palette)]
}

func (st Style) legendValue(v float64) string {
	if st.LegendFormat != nil {
		return st.LegendFormat(v)
	}
	return num(v)
}

// num renders a coordinate or value in its shortest decimal form.
func num(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// esc sanitizes text before it is embedded in markup. Anything sourced
// from user-entered free text must pass through here.
func esc(s string) string {
	return html.EscapeString(s)
}

// gridLines draws evenly spaced horizontal guides across the inner canvas.
func gridLines(b *strings.Builder) {
	inner := float64(canvasHeight - canvasPad*2)
	for i := 1; i <= gridGuides; i++ {
		y := canvasPad + inner/(gridGuides+1)*float64(i)
		b.WriteString(`<line x1="` + num(canvasPad) + `" y1="` + num(y) +
			`" x2="` + num(canvasWidth-canvasPad) + `" y2="` + num(y) +
			`" stroke="rgba(255,255,255,0.06)" stroke-width="1" />`)
	}
}

// legend renders the swatch/label/value rows parallel to a series, or
// nothing when the series is empty.
func legend(labels []string, values []float64, st Style) string {
	if len(labels) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString(`<div class="chart-legend">`)
	for i, label := range labels {
		b.WriteString(`<div class="chart-legend-item">` +
			`<div class="chart-legend-label">` +
			`<span class="legend-swatch" style="--swatch: ` + st.colorAt(i) + `"></span>` +
			`<span>` + esc(label) + `</span>` +
			`</div>` +
			`<span>` + esc(st.legendValue(values[i])) + `</span>` +
			`</div>`)
	}
	b.WriteString(`</div>`)
	return b.String()
}

func maxValue(values []float64, floor float64) float64 {
	max := floor
	for _, v := range values {
		if v > max {
			max = v
		}
	}
	return max
}

func minValue(values []float64, ceil float64) float64 {
	min := ceil
	for _, v := range values {
		if v < min {
			min = v
		}
	}
	return min
}
