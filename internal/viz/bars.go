package viz

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/san-kum/sortviz/internal/array"
)

const (
	barGlyph   = "█"
	emptyGlyph = " "
)

// Bars draws data as vertical bars, rows lines tall and at most cols cells
// wide. When data has more elements than cols, neighbouring elements share a
// column drawn at their maximum. Columns holding a highlighted index use the
// theme's highlight colour; when sorted is true the others use the sorted
// colour.
func Bars(data []int, highlight []int, rows, cols int, theme Theme, sorted bool) string {
	if len(data) == 0 || rows <= 0 || cols <= 0 {
		return lipgloss.NewStyle().Foreground(theme.Muted).Render("(empty array)")
	}

	values, lit := bucket(data, highlight, cols)
	gap := len(values)*2 <= cols

	base := theme.Bar
	if sorted {
		base = theme.Sorted
	}
	barStyle := lipgloss.NewStyle().Foreground(base)
	hotStyle := lipgloss.NewStyle().Foreground(theme.Highlight)

	peak := array.Max(values)
	if peak <= 0 {
		peak = 1
	}
	heights := make([]int, len(values))
	for i, v := range values {
		h := (v*rows + peak - 1) / peak
		if v > 0 && h == 0 {
			h = 1
		}
		heights[i] = h
	}

	var b strings.Builder
	for r := rows; r >= 1; r-- {
		for i, h := range heights {
			cell := emptyGlyph
			if h >= r {
				if lit[i] {
					cell = hotStyle.Render(barGlyph)
				} else {
					cell = barStyle.Render(barGlyph)
				}
			}
			b.WriteString(cell)
			if gap {
				b.WriteString(" ")
			}
		}
		if r > 1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}

// bucket folds data into at most cols columns. Column c covers indices
// [c*n/cols, (c+1)*n/cols) and is lit when any of them is highlighted.
func bucket(data []int, highlight []int, cols int) ([]int, map[int]bool) {
	n := len(data)
	if n <= cols {
		lit := make(map[int]bool, len(highlight))
		for _, idx := range highlight {
			lit[idx] = true
		}
		return data, lit
	}

	values := make([]int, cols)
	lit := make(map[int]bool, len(highlight))
	for c := range values {
		lo, hi := c*n/cols, (c+1)*n/cols
		values[c] = array.Max(data[lo:hi])
		for _, idx := range highlight {
			if idx >= lo && idx < hi {
				lit[c] = true
			}
		}
	}
	return values, lit
}
