package tui

// Layout constants
const (
	// Widest the todo panel grows on large terminals
	MaxPanelWidth = 72
	MinPanelWidth = 24

	// Title, input, notification, footer, status and help lines plus borders
	ChromeHeight = 10
)

// listLayout holds the calculated panel geometry for the View
type listLayout struct {
	width      int // inner width of the todo panel
	maxVisible int // rows of the list that fit
}

// calculateLayout computes the panel size for the current window
func (m Model) calculateLayout() listLayout {
	width := m.Width - 4 // border and side padding
	width = min(width, MaxPanelWidth)
	width = max(width, MinPanelWidth)

	visible := m.Height - ChromeHeight
	if m.showFullHelp {
		visible -= 4
	}
	return listLayout{
		width:      width,
		maxVisible: max(visible, 1),
	}
}

// ensureCursorVisible scrolls the list so the cursor row is shown
func (m *Model) ensureCursorVisible(maxVisible int) {
	if m.cursor < m.offset {
		m.offset = m.cursor
	}
	if m.cursor >= m.offset+maxVisible {
		m.offset = m.cursor - maxVisible + 1
	}
	if m.offset < 0 {
		m.offset = 0
	}
}
