package console

import (
	"blackjack/pkg/deck"
	"github.com/charmbracelet/lipgloss"
)

type renderer interface {
	Render(strs ...string) string
}

// Static styles for the table narration
var (
	TitleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1).
			Bold(true)

	DealerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#96CEB4")).
			Bold(true)

	PlayerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA"))

	ActionsStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFD700")).
			Bold(true)

	RedCardStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B")).
			Bold(true)

	BlackCardStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#626262")).
			Bold(true)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B")).
			Bold(true)

	WarningStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFEAA7")).
			Bold(true)
)

func cardStyle(card *deck.Card) lipgloss.Style {
	if card.Suit.IsRed() {
		return RedCardStyle
	}

	return BlackCardStyle
}
