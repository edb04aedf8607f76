package components

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mmcdole/todos/internal/tui/styles"
)

// InputResult reports what a key did to a TitleInput
type InputResult int

const (
	InputEditing InputResult = iota
	InputSubmitted
	InputCancelled
)

// TitleInput is a single-line text input for todo titles.
// It backs the new-todo field, the inline editor and the narrowing prompt.
type TitleInput struct {
	input    textinput.Model
	disabled bool
}

// NewTitleInput creates an input with the given prompt and placeholder
func NewTitleInput(prompt, placeholder string) TitleInput {
	ti := textinput.New()
	ti.Prompt = prompt
	ti.Placeholder = placeholder
	ti.CharLimit = 256
	ti.TextStyle = lipgloss.NewStyle().Foreground(styles.White)
	ti.PlaceholderStyle = styles.DimStyle
	ti.PromptStyle = styles.FilterPromptStyle

	return TitleInput{input: ti}
}

// Focus gives the input the cursor
func (t *TitleInput) Focus() tea.Cmd {
	return t.input.Focus()
}

// Blur removes the cursor
func (t *TitleInput) Blur() {
	t.input.Blur()
}

// Focused reports whether the input has the cursor
func (t TitleInput) Focused() bool {
	return t.input.Focused()
}

// SetDisabled blocks editing while a request is in flight
func (t *TitleInput) SetDisabled(disabled bool) {
	t.disabled = disabled
}

// Disabled reports whether editing is blocked
func (t TitleInput) Disabled() bool {
	return t.disabled
}

// SetValue replaces the text and moves the cursor to the end
func (t *TitleInput) SetValue(s string) {
	t.input.SetValue(s)
	t.input.CursorEnd()
}

// Value returns the current text
func (t TitleInput) Value() string {
	return t.input.Value()
}

// Reset clears the text
func (t *TitleInput) Reset() {
	t.input.Reset()
}

// SetWidth sets the visible width of the text area
func (t *TitleInput) SetWidth(w int) {
	t.input.Width = max(w, 1)
}

// Update handles input events, returns (input, cmd, result)
func (t TitleInput) Update(msg tea.Msg) (TitleInput, tea.Cmd, InputResult) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, TitleInputKeys.Submit):
			return t, nil, InputSubmitted
		case key.Matches(keyMsg, TitleInputKeys.Cancel):
			return t, nil, InputCancelled
		}
		if t.disabled {
			return t, nil, InputEditing
		}
	}

	var cmd tea.Cmd
	t.input, cmd = t.input.Update(msg)
	return t, cmd, InputEditing
}

// View renders the input
func (t TitleInput) View() string {
	if t.disabled {
		return styles.DimStyle.Render(t.input.Prompt + t.input.Value())
	}
	return t.input.View()
}
