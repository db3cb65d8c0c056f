package pinview

import "github.com/charmbracelet/lipgloss"

// Style controls slot rendering. Slot styles frame the cell; text styles
// color its content.
type Style struct {
	Slot         lipgloss.Style
	SlotActive   lipgloss.Style
	SlotError    lipgloss.Style
	SlotDisabled lipgloss.Style

	Char        lipgloss.Style
	Mask        lipgloss.Style
	Placeholder lipgloss.Style
}

// DefaultStyle draws each slot as a rounded box.
func DefaultStyle() Style {
	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)
	return framed(box)
}

// UnderlineStyle draws each slot as a character over a bottom rule.
func UnderlineStyle() Style {
	line := lipgloss.NewStyle().
		Border(lipgloss.NormalBorder(), false, false, true, false).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)
	return framed(line)
}

func framed(base lipgloss.Style) Style {
	return Style{
		Slot:         base,
		SlotActive:   base.BorderForeground(lipgloss.Color("39")),
		SlotError:    base.BorderForeground(lipgloss.Color("196")),
		SlotDisabled: base.BorderForeground(lipgloss.Color("236")).Faint(true),

		Char:        lipgloss.NewStyle().Bold(true),
		Mask:        lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
		Placeholder: lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
	}
}

// StyleByName resolves "bordered" (or "") and "underline".
func StyleByName(name string) (Style, bool) {
	switch name {
	case "", "bordered":
		return DefaultStyle(), true
	case "underline":
		return UnderlineStyle(), true
	default:
		return Style{}, false
	}
}

// StyleNames lists the names accepted by StyleByName.
func StyleNames() []string { return []string{"bordered", "underline"} }

func (s Style) slot(state SlotState) lipgloss.Style {
	switch state {
	case SlotActive:
		return s.SlotActive
	case SlotError:
		return s.SlotError
	case SlotDisabled:
		return s.SlotDisabled
	default:
		return s.Slot
	}
}

func (s Style) text(slot Slot) lipgloss.Style {
	switch {
	case !slot.Filled:
		return s.Placeholder
	case slot.Masked:
		return s.Mask
	default:
		return s.Char
	}
}
