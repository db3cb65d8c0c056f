package pinview

// ViewState is the host-controlled state of the whole field.
type ViewState uint8

const (
	ViewNormal ViewState = iota
	ViewDisabled
	ViewError
)

func (s ViewState) String() string {
	switch s {
	case ViewNormal:
		return "normal"
	case ViewDisabled:
		return "disabled"
	case ViewError:
		return "error"
	default:
		return "unknown"
	}
}

// SlotState is the display state of a single slot.
type SlotState uint8

const (
	SlotNormal SlotState = iota
	SlotActive
	SlotError
	SlotDisabled
)

func (s SlotState) String() string {
	switch s {
	case SlotNormal:
		return "normal"
	case SlotActive:
		return "active"
	case SlotError:
		return "error"
	case SlotDisabled:
		return "disabled"
	default:
		return "unknown"
	}
}

// Slot is the display snapshot of one character cell.
type Slot struct {
	Index int
	State SlotState

	// Char is the stored character, empty for an unfilled slot.
	Char   string
	Filled bool

	// Display is what gets drawn: the character, the mask, the placeholder
	// or an empty string.
	Display string
	Masked  bool
}
