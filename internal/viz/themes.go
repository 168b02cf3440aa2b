package viz

import "github.com/charmbracelet/lipgloss"

// Theme defines the colours of the bar chart and its frame.
type Theme struct {
	Name      string
	Bar       lipgloss.Color
	Highlight lipgloss.Color
	Sorted    lipgloss.Color
	Title     lipgloss.Color
	Text      lipgloss.Color
	Muted     lipgloss.Color
	Warning   lipgloss.Color
}

// Available themes
var (
	ThemeCyberpunk = Theme{
		Name:      "cyberpunk",
		Bar:       lipgloss.Color("#00ffff"), // Cyan
		Highlight: lipgloss.Color("#ff00ff"), // Magenta
		Sorted:    lipgloss.Color("#00ff88"),
		Title:     lipgloss.Color("#ffff00"),
		Text:      lipgloss.Color("#ffffff"),
		Muted:     lipgloss.Color("#666666"),
		Warning:   lipgloss.Color("#ff8800"),
	}

	ThemeRetroGreen = Theme{
		Name:      "retro",
		Bar:       lipgloss.Color("#00cc00"), // Green phosphor
		Highlight: lipgloss.Color("#ccff88"),
		Sorted:    lipgloss.Color("#00ff00"),
		Title:     lipgloss.Color("#88ff88"),
		Text:      lipgloss.Color("#00ff00"),
		Muted:     lipgloss.Color("#005500"),
		Warning:   lipgloss.Color("#ffff00"),
	}

	ThemeMinimal = Theme{
		Name:      "minimal",
		Bar:       lipgloss.Color("#cccccc"),
		Highlight: lipgloss.Color("#0088ff"),
		Sorted:    lipgloss.Color("#ffffff"),
		Title:     lipgloss.Color("#ffffff"),
		Text:      lipgloss.Color("#ffffff"),
		Muted:     lipgloss.Color("#888888"),
		Warning:   lipgloss.Color("#ffaa00"),
	}

	ThemeOcean = Theme{
		Name:      "ocean",
		Bar:       lipgloss.Color("#1f77b4"), // matplotlib blue
		Highlight: lipgloss.Color("#ff7f0e"), // matplotlib orange
		Sorted:    lipgloss.Color("#00a8cc"),
		Title:     lipgloss.Color("#ffd700"),
		Text:      lipgloss.Color("#e0f0ff"),
		Muted:     lipgloss.Color("#4488aa"),
		Warning:   lipgloss.Color("#ffcc00"),
	}

	ThemeSunset = Theme{
		Name:      "sunset",
		Bar:       lipgloss.Color("#feca57"),
		Highlight: lipgloss.Color("#ff4757"),
		Sorted:    lipgloss.Color("#5fd068"),
		Title:     lipgloss.Color("#ff9ff3"),
		Text:      lipgloss.Color("#fff5f5"),
		Muted:     lipgloss.Color("#8b6b8c"),
		Warning:   lipgloss.Color("#ffc048"),
	}

	// All available themes
	Themes = []Theme{
		ThemeCyberpunk,
		ThemeRetroGreen,
		ThemeMinimal,
		ThemeOcean,
		ThemeSunset,
	}
)

// GetTheme returns a theme by name
func GetTheme(name string) Theme {
	for _, t := range Themes {
		if t.Name == name {
			return t
		}
	}
	return ThemeCyberpunk
}

// NextTheme returns the theme after t, wrapping around.
func NextTheme(t Theme) Theme {
	for i, th := range Themes {
		if th.Name == t.Name {
			return Themes[(i+1)%len(Themes)]
		}
	}
	return Themes[0]
}

// ThemeNames returns list of available theme names
func ThemeNames() []string {
	names := make([]string, len(Themes))
	for i, t := range Themes {
		names[i] = t.Name
	}
	return names
}
