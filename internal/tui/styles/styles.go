package styles

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Color palette
var (
	Crimson    = lipgloss.Color("#B83F45")
	SlateDark  = lipgloss.Color("#1F2937")
	SlateLight = lipgloss.Color("#374151")
	DimGray    = lipgloss.Color("#6B7280")
	LightGray  = lipgloss.Color("#9CA3AF")
	White      = lipgloss.Color("#F9FAFB")
	Green      = lipgloss.Color("#10B981")
	Red        = lipgloss.Color("#EF4444")
)

// Borders
var (
	ActiveBorder = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Crimson)

	InactiveBorder = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(DimGray)
)

// Text styles
var (
	TitleStyle = lipgloss.NewStyle().
			Foreground(Crimson).
			Bold(true)

	DimStyle = lipgloss.NewStyle().
			Foreground(DimGray)

	AccentStyle = lipgloss.NewStyle().
			Foreground(Crimson)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(White).
			Background(Red).
			Padding(0, 1)

	SuccessStyle = lipgloss.NewStyle().
			Foreground(Green)
)

// Checkbox characters (unstyled)
const (
	ActiveChar    = "○"
	CompletedChar = "✓"
	ToggleAllChar = "❯"
)

// Checkbox styles
var (
	ActiveBoxStyle    = lipgloss.NewStyle().Foreground(DimGray)
	CompletedBoxStyle = lipgloss.NewStyle().Foreground(Green)
)

// List item styles
var (
	SelectedItemStyle = lipgloss.NewStyle().
				Foreground(White).
				Background(SlateLight)

	NormalItemStyle = lipgloss.NewStyle().
			Foreground(LightGray)

	CompletedItemStyle = lipgloss.NewStyle().
				Foreground(DimGray).
				Strikethrough(true)
)

// Footer filter styles
var (
	FilterActiveStyle = lipgloss.NewStyle().
				Foreground(Crimson).
				Underline(true)

	FilterInactiveStyle = lipgloss.NewStyle().
				Foreground(DimGray)
)

// Help styles
var (
	HelpKeyStyle = lipgloss.NewStyle().
			Foreground(Crimson)

	HelpDescStyle = lipgloss.NewStyle().
			Foreground(DimGray)
)

// Spinner style
var (
	SpinnerStyle = lipgloss.NewStyle().
			Foreground(Crimson)
)

// Prompt styles for the narrowing filter
var (
	FilterPromptStyle = lipgloss.NewStyle().
				Foreground(Crimson).
				Bold(true)
)

// Match highlight styles for narrowed results
var (
	MatchHighlightStyle = lipgloss.NewStyle().
				Foreground(Crimson).
				Bold(true)

	MatchHighlightSelectedStyle = lipgloss.NewStyle().
					Foreground(Crimson).
					Background(SlateLight).
					Bold(true)
)

// Truncate shortens s to width cells, marking the cut with an ellipsis
func Truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if lipgloss.Width(s) <= width {
		return s
	}
	runes := []rune(s)
	if width <= 3 {
		return string(runes[:min(width, len(runes))])
	}
	for len(runes) > 0 && lipgloss.Width(string(runes))+3 > width {
		runes = runes[:len(runes)-1]
	}
	return string(runes) + "..."
}

// RenderListRow renders a complete list row with uniform background when selected.
// Each part is styled on its own so ANSI resets don't clear the row background.
func RenderListRow(parts []RowPart, selected bool, width int) string {
	var b strings.Builder
	visibleLen := 0

	for _, part := range parts {
		style := part.Style
		if selected {
			style = style.Background(SlateLight)
		}
		b.WriteString(style.Render(part.Text))
		visibleLen += lipgloss.Width(part.Text)
	}

	// Fill the rest of the line, minus one cell of margin on each side
	pad := lipgloss.NewStyle()
	margin := pad
	if selected {
		pad = pad.Background(SlateLight)
		margin = pad
	}
	if n := width - visibleLen - 2; n > 0 {
		b.WriteString(pad.Render(strings.Repeat(" ", n)))
	}

	return margin.Render(" ") + b.String() + margin.Render(" ")
}

// RowPart is a fragment of a row with its own style
type RowPart struct {
	Text  string
	Style lipgloss.Style
}
