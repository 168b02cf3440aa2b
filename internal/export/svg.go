// Package export renders sort state as standalone SVG documents.
package export

import (
	"fmt"
	"strings"

	"github.com/san-kum/sortviz/internal/array"
)

const background = "#0a0a0a"

// Palette holds the fill colours used for bars.
type Palette struct {
	Bar       string
	Highlight string
}

var DefaultPalette = Palette{Bar: "#00ffff", Highlight: "#ff00ff"}

// BarsToSVG draws data as a bar chart, one bar per element, with bars at
// highlighted indices in the highlight colour.
func BarsToSVG(data []int, highlight []int, width, height int, p Palette) string {
	var sb strings.Builder
	sb.WriteString(header(width, height))

	if len(data) > 0 {
		lit := make(map[int]bool, len(highlight))
		for _, i := range highlight {
			lit[i] = true
		}
		peak := array.Max(data)
		if peak <= 0 {
			peak = 1
		}
		slot := float64(width) / float64(len(data))
		barW := slot * 0.8

		for i, v := range data {
			h := float64(v) / float64(peak) * float64(height) * 0.95
			if h < 0 {
				h = 0
			}
			fill := p.Bar
			if lit[i] {
				fill = p.Highlight
			}
			sb.WriteString(fmt.Sprintf(`<rect x="%.1f" y="%.1f" width="%.1f" height="%.1f" fill="%s"><title>%d</title></rect>
`, float64(i)*slot+(slot-barW)/2, float64(height)-h, barW, h, fill, v))
		}
	}

	sb.WriteString("</svg>")
	return sb.String()
}

// SeriesToSVG draws values as a polyline, x evenly spaced, y scaled to the
// series range with 10% padding.
func SeriesToSVG(values []float64, width, height int, strokeColor string) string {
	if len(values) < 2 {
		return ""
	}

	minY, maxY := values[0], values[0]
	for _, v := range values {
		if v < minY {
			minY = v
		}
		if v > maxY {
			maxY = v
		}
	}
	rangeY := maxY - minY
	if rangeY == 0 {
		rangeY = 1
	}
	minY -= rangeY * 0.1
	maxY += rangeY * 0.1
	rangeY = maxY - minY
	stepX := float64(width) / float64(len(values)-1)

	var sb strings.Builder
	sb.WriteString(header(width, height))
	sb.WriteString(fmt.Sprintf(`<path fill="none" stroke="%s" stroke-width="1.5" d="M`, strokeColor))
	for i, v := range values {
		x := float64(i) * stepX
		y := float64(height) - (v-minY)/rangeY*float64(height)
		if i == 0 {
			sb.WriteString(fmt.Sprintf("%.1f,%.1f", x, y))
		} else {
			sb.WriteString(fmt.Sprintf(" L%.1f,%.1f", x, y))
		}
	}
	sb.WriteString(`"/>
</svg>`)
	return sb.String()
}

func header(width, height int) string {
	return fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">
<rect width="100%%" height="100%%" fill="%s"/>
`, width, height, width, height, background)
}
