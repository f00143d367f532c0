package cli

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/elektrokombinacija/phrase-canvas/internal/core"
)

var (
	colorPurple = lipgloss.Color("141")
	colorGray   = lipgloss.Color("245")
	colorDim    = lipgloss.Color("240")
)

var (
	styleTitle  = lipgloss.NewStyle().Bold(true).Foreground(colorPurple)
	styleDim    = lipgloss.NewStyle().Foreground(colorDim)
	styleHeader = lipgloss.NewStyle().Bold(true).Foreground(colorGray).Padding(0, 1)
	styleCell   = lipgloss.NewStyle().Padding(0, 1)
)

// printBalloons writes a user's balloons as a table in paint order.
func printBalloons(w io.Writer, user core.User, bs []core.Balloon) {
	fmt.Fprintf(w, "%s %s\n", styleTitle.Render(user.Email), styleDim.Render(fmt.Sprintf("%d balloons", len(bs))))
	if len(bs) == 0 {
		return
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(styleDim).
		Headers("X", "Y", "PHRASE").
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return styleHeader
			}
			return styleCell
		})
	for _, b := range bs {
		t.Row(fmt.Sprintf("%.0f", b.X), fmt.Sprintf("%.0f", b.Y), b.Phrase.Text)
	}
	fmt.Fprintln(w, t.Render())
}
