package viz

import "github.com/charmbracelet/lipgloss"

// Theme defines color scheme for the TUI
type Theme struct {
	Name   string
	Text   lipgloss.Color
	Accent lipgloss.Color
	Muted  lipgloss.Color
}

// Available themes
var (
	ThemeCyberpunk = Theme{
		Name:   "cyberpunk",
		Text:   lipgloss.Color("#ffffff"),
		Accent: lipgloss.Color("#ff00ff"), // Magenta
		Muted:  lipgloss.Color("#666666"),
	}

	ThemeRetroGreen = Theme{
		Name:   "retro",
		Text:   lipgloss.Color("#00ff00"), // Green phosphor
		Accent: lipgloss.Color("#88ff88"),
		Muted:  lipgloss.Color("#005500"),
	}

	ThemeMinimal = Theme{
		Name:   "minimal",
		Text:   lipgloss.Color("#ffffff"),
		Accent: lipgloss.Color("#0088ff"),
		Muted:  lipgloss.Color("#888888"),
	}

	ThemeSunset = Theme{
		Name:   "sunset",
		Text:   lipgloss.Color("#fff5f5"),
		Accent: lipgloss.Color("#ff9ff3"),
		Muted:  lipgloss.Color("#8b6b8c"),
	}

	// All available themes
	Themes = []Theme{
		ThemeCyberpunk,
		ThemeRetroGreen,
		ThemeMinimal,
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

// ThemeNames returns list of available theme names
func ThemeNames() []string {
	names := make([]string, len(Themes))
	for i, t := range Themes {
		names[i] = t.Name
	}
	return names
}

func (t Theme) hudStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(t.Text).Bold(true)
}

func (t Theme) helpStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(t.Muted).Italic(true)
}
