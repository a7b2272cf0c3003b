package fire

import "github.com/charmbracelet/lipgloss"

// Theme maps the four colour classes onto terminal colours.
type Theme struct {
	Name       string
	Cold       lipgloss.Color
	Warm       lipgloss.Color
	Hot        lipgloss.Color
	Blazing    lipgloss.Color
	Background lipgloss.Color
}

// Available themes
var (
	// ThemeClassic uses the basic ANSI colours black, red, yellow and blue.
	ThemeClassic = Theme{
		Name:       "classic",
		Cold:       lipgloss.Color("0"),
		Warm:       lipgloss.Color("1"),
		Hot:        lipgloss.Color("3"),
		Blazing:    lipgloss.Color("4"),
		Background: lipgloss.Color("0"),
	}

	ThemeEmber = Theme{
		Name:       "ember",
		Cold:       lipgloss.Color("52"),
		Warm:       lipgloss.Color("160"),
		Hot:        lipgloss.Color("208"),
		Blazing:    lipgloss.Color("226"),
		Background: lipgloss.Color("0"),
	}

	ThemeOcean = Theme{
		Name:       "ocean",
		Cold:       lipgloss.Color("#001a33"),
		Warm:       lipgloss.Color("#0077be"),
		Hot:        lipgloss.Color("#00a8cc"),
		Blazing:    lipgloss.Color("#e0f0ff"),
		Background: lipgloss.Color("#000000"),
	}

	ThemeMono = Theme{
		Name:       "mono",
		Cold:       lipgloss.Color("236"),
		Warm:       lipgloss.Color("244"),
		Hot:        lipgloss.Color("250"),
		Blazing:    lipgloss.Color("255"),
		Background: lipgloss.Color("0"),
	}

	Themes = []Theme{
		ThemeClassic,
		ThemeEmber,
		ThemeOcean,
		ThemeMono,
	}
)

// GetTheme returns a theme by name, falling back to classic.
func GetTheme(name string) Theme {
	for _, t := range Themes {
		if t.Name == name {
			return t
		}
	}
	return ThemeClassic
}

func ThemeNames() []string {
	names := make([]string, len(Themes))
	for i, t := range Themes {
		names[i] = t.Name
	}
	return names
}

// Styles builds one bold style per colour class, indexed by class.
func (t Theme) Styles() [5]lipgloss.Style {
	base := lipgloss.NewStyle().Bold(true).Background(t.Background)
	return [5]lipgloss.Style{
		ClassCold:    base.Foreground(t.Cold),
		ClassWarm:    base.Foreground(t.Warm),
		ClassHot:     base.Foreground(t.Hot),
		ClassBlazing: base.Foreground(t.Blazing),
	}
}
