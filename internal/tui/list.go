package tui

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/go-name-keeper/internal/app"
	"github.com/MKhiriev/go-name-keeper/models"
	"github.com/charmbracelet/lipgloss"
)

const maxRowWidth = 40

// renderList draws the entries with a cursor mark on the selected row.
// The cursor is only shown while the list has focus.
func renderList(entries []models.NameEntry, cursor int, focused bool) string {
	var b strings.Builder

	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Center,
		titleStyle.Render(app.MsgTotal+" "),
		pillStyle.Render(fmt.Sprintf(app.MsgItemsCount, len(entries))),
	))
	b.WriteString("\n\n")

	if len(entries) == 0 {
		b.WriteString(helpStyle.Render(app.MsgEmptyList))
		return b.String()
	}

	for i, entry := range entries {
		row := fitText(entry.Text, maxRowWidth)
		if focused && i == cursor {
			b.WriteString(selectedStyle.Render("> " + row))
		} else {
			b.WriteString("  " + row)
		}
		if i < len(entries)-1 {
			b.WriteString("\n")
		}
	}

	return b.String()
}

func clampCursor(cursor, n int) int {
	if n == 0 || cursor < 0 {
		return 0
	}
	if cursor >= n {
		return n - 1
	}
	return cursor
}
