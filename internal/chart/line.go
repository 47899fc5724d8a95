package chart

import "strings"

// Line renders a connected poly-line with a gradient area fill beneath it,
// one dot per point and background grid guides. The y axis floor is
// min(values, 0) and the ceiling max(values, 1), so the range is never
// empty or negative even for a single all-zero point. The legend shows
// only the last four points, in original order.
func Line(labels []string, values []float64, st Style) string {
	if len(values) == 0 {
		return emptyChart
	}

	const (
		innerWidth  = float64(canvasWidth - canvasPad*2)
		innerHeight = float64(canvasHeight - canvasPad*2)
	)
	min := minValue(values, 0)
	max := maxValue(values, 1)
	span := max - min
	if span == 0 {
		span = 1
	}
	step := 0.0
	if len(values) > 1 {
		step = innerWidth / float64(len(values)-1)
	}

	type point struct{ x, y float64 }
	points := make([]point, len(values))
	for i, v := range values {
		points[i] = point{
			x: canvasPad + step*float64(i),
			y: canvasPad + innerHeight - (v-min)/span*innerHeight,
		}
	}

	var line strings.Builder
	for i, p := range points {
		cmd := "L"
		if i == 0 {
			cmd = "M"
		}
		line.WriteString(cmd + num(p.x) + "," + num(p.y) + " ")
	}
	linePath := strings.TrimRight(line.String(), " ")
	areaPath := linePath +
		" L " + num(canvasPad+innerWidth) + "," + num(canvasPad+innerHeight) +
		" L " + num(canvasPad) + "," + num(canvasPad+innerHeight) + " Z"

	var b strings.Builder
	b.WriteString(`<div class="chart-svg">` +
		`<svg viewBox="0 0 ` + num(canvasWidth) + ` ` + num(canvasHeight) + `" role="img" aria-label="Line chart">` +
		`<defs><linearGradient id="line-fill" x1="0" x2="0" y1="0" y2="1">` +
		`<stop offset="0%" stop-color="` + st.Fill + `" />` +
		`<stop offset="100%" stop-color="rgba(0,0,0,0)" />` +
		`</linearGradient></defs>` +
		`<rect x="0" y="0" width="` + num(canvasWidth) + `" height="` + num(canvasHeight) + `" fill="transparent" />`)
	gridLines(&b)
	b.WriteString(`<path d="` + areaPath + `" fill="url(#line-fill)" />` +
		`<path d="` + linePath + `" fill="none" stroke="` + st.Stroke + `" stroke-width="3" />`)
	for _, p := range points {
		b.WriteString(`<circle cx="` + num(p.x) + `" cy="` + num(p.y) + `" r="4" fill="` + st.Stroke + `" />`)
	}
	b.WriteString(`</svg></div>`)

	tail := len(labels) - 4
	if tail < 0 {
		tail = 0
	}
	legendStyle := st
	if len(legendStyle.Palette) == 0 {
		legendStyle.Palette = []string{st.Stroke}
	}
	b.WriteString(legend(labels[tail:], values[tail:], legendStyle))
	return b.String()
}
