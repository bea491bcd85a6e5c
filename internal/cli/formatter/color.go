package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/liftlog/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// Gruvbox-inspired color palette.
var (
	ColorGreen  = lipgloss.Color("#8ec07c")
	ColorYellow = lipgloss.Color("#fabd2f")
	ColorRed    = lipgloss.Color("#fb4934")
	ColorBlue   = lipgloss.Color("#83a598")
	ColorPurple = lipgloss.Color("#d3869b")
	ColorAqua   = lipgloss.Color("#689d6a")
	ColorDim    = lipgloss.Color("#928374")
	ColorFg     = lipgloss.Color("#ebdbb2")
	ColorHeader = lipgloss.Color("#fe8019")
)

var (
	StyleGreen  = lipgloss.NewStyle().Foreground(ColorGreen)
	StyleYellow = lipgloss.NewStyle().Foreground(ColorYellow)
	StyleRed    = lipgloss.NewStyle().Foreground(ColorRed)
	StyleBlue   = lipgloss.NewStyle().Foreground(ColorBlue)
	StylePurple = lipgloss.NewStyle().Foreground(ColorPurple)
	StyleAqua   = lipgloss.NewStyle().Foreground(ColorAqua)
	StyleDim    = lipgloss.NewStyle().Foreground(ColorDim)
	StyleFg     = lipgloss.NewStyle().Foreground(ColorFg)
	StyleHeader = lipgloss.NewStyle().Foreground(ColorHeader).Bold(true)
	StyleBold   = lipgloss.NewStyle().Foreground(ColorFg).Bold(true)
)

// BodyPartColor gives each muscle group a stable color in lists and charts.
func BodyPartColor(bp domain.BodyPart) lipgloss.Style {
	switch bp {
	case domain.BodyChest:
		return StyleRed
	case domain.BodyBack:
		return StyleBlue
	case domain.BodyShoulders:
		return StyleYellow
	case domain.BodyArms:
		return StylePurple
	case domain.BodyCore:
		return StyleAqua
	case domain.BodyLegs:
		return StyleGreen
	default:
		return StyleDim
	}
}

// BodyPartBadges renders "Chest + Arms" with each part in its color.
func BodyPartBadges(parts []domain.BodyPart) string {
	if len(parts) == 0 {
		return StyleDim.Render("--")
	}
	out := make([]string, len(parts))
	for i, bp := range parts {
		out[i] = BodyPartColor(bp).Render(bp.Title())
	}
	return strings.Join(out, StyleDim.Render(" + "))
}

// PRBadge marks a personal record.
func PRBadge() string {
	return StyleYellow.Bold(true).Render("★ PR")
}

// Header renders a section header with the orange header style and an underline.
func Header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", lipgloss.Width(upper))
	return fmt.Sprintf("%s\n%s", StyleHeader.Render(upper), StyleDim.Render(line))
}

func Dim(text string) string {
	return StyleDim.Render(text)
}

func Bold(text string) string {
	return StyleBold.Render(text)
}
