package pinview

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

func (m Model) View() string {
	slots := m.Slots()
	if len(slots) == 0 {
		return ""
	}

	// Every cell gets the width of the widest display text so wide
	// characters do not shift the row.
	cellWidth := 1
	for _, s := range slots {
		if w := runewidth.StringWidth(s.Display); w > cellWidth {
			cellWidth = w
		}
	}

	cells := make([]string, len(slots))
	for i, s := range slots {
		cells[i] = m.renderSlot(s, cellWidth)
	}

	var groups [][]string
	if m.cfg.Group && len(cells) > 1 {
		half := (len(cells) + 1) / 2
		groups = [][]string{cells[:half], cells[half:]}
	} else {
		groups = [][]string{cells}
	}

	parts := make([]string, 0, 2*len(cells))
	for gi, g := range groups {
		if gi > 0 {
			parts = append(parts, strings.Repeat(" ", m.cfg.GroupSpacing))
		}
		for ci, c := range g {
			if ci > 0 && m.cfg.ItemSpacing > 0 {
				parts = append(parts, strings.Repeat(" ", m.cfg.ItemSpacing))
			}
			parts = append(parts, c)
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

func (m Model) renderSlot(s Slot, cellWidth int) string {
	text := s.Display
	if pad := cellWidth - runewidth.StringWidth(text); pad > 0 {
		text += strings.Repeat(" ", pad)
	}
	st := m.cfg.Style
	return st.slot(s.State).Render(st.text(s).Render(text))
}
