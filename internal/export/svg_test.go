package export

import (
	"strings"
	"testing"
)

func TestBarsToSVG(t *testing.T) {
	svg := BarsToSVG([]int{3, 1, 2}, []int{1}, 300, 100, DefaultPalette)
	if !strings.HasPrefix(svg, "<?xml") || !strings.HasSuffix(svg, "</svg>") {
		t.Fatalf("not a complete document:\n%s", svg)
	}
	// background plus one rect per bar
	if got := strings.Count(svg, "<rect"); got != 4 {
		t.Errorf("rect count = %d, want 4", got)
	}
	if got := strings.Count(svg, DefaultPalette.Highlight); got != 1 {
		t.Errorf("highlighted bars = %d, want 1", got)
	}
}

func TestBarsToSVGEmpty(t *testing.T) {
	svg := BarsToSVG(nil, nil, 100, 100, DefaultPalette)
	if got := strings.Count(svg, "<rect"); got != 1 {
		t.Errorf("empty chart should only have background, got %d rects", got)
	}
}

func TestSeriesToSVG(t *testing.T) {
	if SeriesToSVG([]float64{1}, 100, 100, "#fff") != "" {
		t.Error("single point should produce no document")
	}
	svg := SeriesToSVG([]float64{4, 2, 2, 0}, 300, 100, "#00ff88")
	if !strings.Contains(svg, `d="M0.0,`) {
		t.Errorf("path should start at x=0:\n%s", svg)
	}
	if got := strings.Count(svg, " L"); got != 3 {
		t.Errorf("segments = %d, want 3", got)
	}
}
