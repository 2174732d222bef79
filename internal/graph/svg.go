package graph

import (
	"fmt"
	"strings"
)

const (
	svgBackground = "#1e1e2e"
	svgGridColor  = "#45475a"
)

// RenderSVG renders the request's series as an SVG area chart: grid lines,
// a translucent fill polygon, and a polyline per series. Fewer than two
// points yields an empty placeholder panel.
func RenderSVG(req Request) string {
	width, height := req.Width, req.Height
	if width <= 0 {
		width = 300
	}
	if height <= 0 {
		height = 100
	}

	if len(req.InitialData) < 2 {
		return fmt.Sprintf(
			`<svg width="%d" height="%d" xmlns="http://www.w3.org/2000/svg">
    <rect width="%d" height="%d" fill="%s" opacity="0.3" rx="4"/>
</svg>`,
			width, height, width, height, svgBackground)
	}

	maxValue := req.MaxValue
	if maxValue <= 0 {
		maxValue = 100
	}

	var b strings.Builder
	fmt.Fprintf(&b, `<svg width="%d" height="%d" xmlns="http://www.w3.org/2000/svg">`, width, height)
	b.WriteString("\n")
	fmt.Fprintf(&b, `    <rect width="%d" height="%d" fill="%s" opacity="0.3" rx="4"/>`, width, height, svgBackground)
	b.WriteString("\n")

	for i := 1; i <= 4; i++ {
		y := float64(height) / 4 * float64(i)
		fmt.Fprintf(&b, `    <line x1="0" y1="%.0f" x2="%d" y2="%.0f" stroke="%s" stroke-width="0.5" opacity="0.3"/>`,
			y, width, y, svgGridColor)
		b.WriteString("\n")
	}

	writeSeries(&b, req.InitialData, maxValue, width, height, req.Color)

	if req.MultiChart && len(req.InitialData2) >= 2 {
		color2 := req.Color2
		if color2 == "" {
			color2 = req.Color
		}
		writeSeries(&b, req.InitialData2, maxValue, width, height, color2)
	}

	b.WriteString("</svg>")
	return b.String()
}

// writeSeries appends a fill polygon and line for one series.
func writeSeries(b *strings.Builder, data []float64, maxValue float64, width, height int, color string) {
	line := linePoints(data, maxValue, width, height)

	fmt.Fprintf(b, `    <polygon points="0,%d %s %d,%d" fill="%s" opacity="0.2"/>`,
		height, line, width, height, color)
	b.WriteString("\n")
	fmt.Fprintf(b, `    <polyline points="%s" fill="none" stroke="%s" stroke-width="2" stroke-linejoin="round"/>`,
		line, color)
	b.WriteString("\n")
}

// linePoints maps a series onto SVG coordinates, oldest point on the left.
// Values above maxValue are clipped to the top edge.
func linePoints(data []float64, maxValue float64, width, height int) string {
	points := make([]string, len(data))
	for i, value := range data {
		x := float64(i) / float64(len(data)-1) * float64(width)
		if value > maxValue {
			value = maxValue
		}
		if value < 0 {
			value = 0
		}
		y := float64(height) - value/maxValue*float64(height)
		points[i] = fmt.Sprintf("%.2f,%.2f", x, y)
	}
	return strings.Join(points, " ")
}
