package view

import "github.com/charmbracelet/lipgloss"

// Styles holds the lipgloss styles used by Renderer.
type Styles struct {
	Title       lipgloss.Style
	Subtitle    lipgloss.Style
	Muted       lipgloss.Style
	Price       lipgloss.Style
	StrikePrice lipgloss.Style
	Badge       lipgloss.Style
	Star        lipgloss.Style
	Heart       lipgloss.Style
	InStock     lipgloss.Style
	OutOfStock  lipgloss.Style
	Success     lipgloss.Style
	Error       lipgloss.Style
}

var (
	colorPrimary = lipgloss.Color("#8B5E3C")
	colorAccent  = lipgloss.Color("#F59E0B")
	colorDanger  = lipgloss.Color("#EF4444")
	colorOK      = lipgloss.Color("#10B981")
	colorMuted   = lipgloss.Color("#9CA3AF")
)

func DefaultStyles() Styles {
	return Styles{
		Title: lipgloss.NewStyle().
			Foreground(colorPrimary).
			Bold(true),
		Subtitle: lipgloss.NewStyle().
			Foreground(colorMuted).
			Italic(true),
		Muted: lipgloss.NewStyle().
			Foreground(colorMuted),
		Price: lipgloss.NewStyle().
			Foreground(colorPrimary).
			Bold(true),
		StrikePrice: lipgloss.NewStyle().
			Foreground(colorMuted).
			Strikethrough(true),
		Badge: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(colorDanger).
			Bold(true),
		Star: lipgloss.NewStyle().
			Foreground(colorAccent),
		Heart: lipgloss.NewStyle().
			Foreground(colorDanger),
		InStock: lipgloss.NewStyle().
			Foreground(colorOK),
		OutOfStock: lipgloss.NewStyle().
			Foreground(colorDanger),
		Success: lipgloss.NewStyle().
			Foreground(colorOK),
		Error: lipgloss.NewStyle().
			Foreground(colorDanger),
	}
}

// PlainStyles renders text without any decoration.
func PlainStyles() Styles {
	plain := lipgloss.NewStyle()
	return Styles{
		Title: plain, Subtitle: plain, Muted: plain, Price: plain,
		StrikePrice: plain, Badge: plain, Star: plain, Heart: plain,
		InStock: plain, OutOfStock: plain, Success: plain, Error: plain,
	}
}
