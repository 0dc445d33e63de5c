package tui

import "github.com/MKhiriev/go-name-keeper/models"

type confirmModel struct {
	entry models.NameEntry
}

func (m confirmModel) View() string {
	content := "Delete \"" + fitText(m.entry.Text, maxRowWidth) + "\"?\n\n"
	content += "y yes    n no"
	return overlayBoxStyle.Render(content)
}
