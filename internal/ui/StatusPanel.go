package ui

import (
	"fmt"
	"strings"

	"github.com/Mshel/termsnake/internal/game"
	"github.com/charmbracelet/lipgloss"
)

var (
	boardStyle = lipgloss.NewStyle().
			Padding(0, 1)

	statusPanelStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(lipgloss.Color("8")).
				Padding(1, 2)

	statusHeaderStyle = lipgloss.NewStyle().Bold(true)
	scoreStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color(game.FoodColor)).Bold(true)
	pilotStyle        = lipgloss.NewStyle().Faint(true)

	headRunes = map[game.Direction]string{
		game.Up:    "▲",
		game.Down:  "▼",
		game.Left:  "◀",
		game.Right: "▶",
	}
)

// renderStatusPanel draws the score, the snake's state and the controls.
func (m GameModel) renderStatusPanel() string {
	var statusContent strings.Builder

	statusContent.WriteString(statusHeaderStyle.Render("--- Snake ---") + "\n")
	statusContent.WriteString(fmt.Sprintf("Score: %s\n", scoreStyle.Render(fmt.Sprint(m.game.Score))))
	statusContent.WriteString(fmt.Sprintf("Length: %d\n", m.game.Snake.Len()))
	statusContent.WriteString(fmt.Sprintf("Direction: %s\n", headRunes[m.game.Snake.Direction]))
	if m.pilot != nil {
		statusContent.WriteString(pilotStyle.Render("Autopilot engaged") + "\n")
	}

	statusContent.WriteString("\n" + statusHeaderStyle.Render("--- Controls ---") + "\n")
	statusContent.WriteString(m.help.View(m.keys))

	return statusPanelStyle.Render(statusContent.String())
}
