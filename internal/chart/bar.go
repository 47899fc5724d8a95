package chart

import "strings"

const (
	barGap      = 8.0
	barMinWidth = 10.0
)

// Bar renders one rounded bar per point, height proportional to
// value / max(values, 1). Bar width is computed to fit every bar with a
// fixed gap, floored at a minimum width; colors cycle through the palette.
// The legend lists all points.
func Bar(labels []string, values []float64, st Style) string {
	if len(values) == 0 {
		return emptyChart
	}

	const (
		innerWidth  = float64(canvasWidth - canvasPad*2)
		innerHeight = float64(canvasHeight - canvasPad*2)
	)
	max := maxValue(values, 1)
	count := float64(len(values))
	barWidth := (innerWidth - barGap*(count-1)) / count
	if barWidth < barMinWidth {
		barWidth = barMinWidth
	}

	var b strings.Builder
	b.WriteString(`<div class="chart-svg">` +
		`<svg viewBox="0 0 ` + num(canvasWidth) + ` ` + num(canvasHeight) + `" role="img" aria-label="Bar chart">` +
		`<rect x="0" y="0" width="` + num(canvasWidth) + `" height="` + num(canvasHeight) + `" fill="transparent" />`)
	gridLines(&b)
	for i, v := range values {
		barHeight := v / max * innerHeight
		x := canvasPad + float64(i)*(barWidth+barGap)
		y := canvasPad + innerHeight - barHeight
		b.WriteString(`<rect x="` + num(x) + `" y="` + num(y) +
			`" width="` + num(barWidth) + `" height="` + num(barHeight) +
			`" rx="6" fill="` + st.colorAt(i) + `" />`)
	}
	b.WriteString(`</svg></div>`)
	b.WriteString(legend(labels, values, st))
	return b.String()
}
