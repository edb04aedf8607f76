package tui

import (
	"errors"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/mmcdole/todos/internal/domain"
	"github.com/mmcdole/todos/internal/tui/components"
)

// handleKeyMsg handles keyboard input
func (m Model) handleKeyMsg(msg tea.KeyMsg) (Model, tea.Cmd) {
	if msg.Type == tea.KeyCtrlC {
		return m, tea.Quit
	}

	// Route to the active input if any
	switch m.mode {
	case ModeEditing:
		return m.handleEditorKey(msg)
	case ModeNarrowing:
		return m.handleSearchKey(msg)
	}

	if m.focus == FocusInput {
		return m.handleInputKey(msg)
	}
	return m.handleListKey(msg)
}

// handleInputKey handles keys while the new todo field has focus
func (m Model) handleInputKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	if key.Matches(msg, Keys.Focus) {
		m.focusList()
		return m, nil
	}

	var (
		cmd    tea.Cmd
		result components.InputResult
	)
	m.Input, cmd, result = m.Input.Update(msg)

	switch result {
	case components.InputSubmitted:
		effect, err := m.Coordinator.Create(m.Input.Value())
		if err != nil {
			// ErrEmptyTitle is already a notice; ErrCreationPending is ignored
			if !errors.Is(err, domain.ErrEmptyTitle) && !errors.Is(err, domain.ErrCreationPending) {
				return m, func() tea.Msg { return StatusMsg{Message: err.Error(), IsError: true} }
			}
			return m, nil
		}
		return m, EffectCmd(effect)

	case components.InputCancelled:
		if m.Coordinator.Error() != domain.ErrorNone {
			m.Coordinator.DismissError()
			return m, nil
		}
		m.focusList()
		return m, nil
	}

	return m, cmd
}

// handleListKey handles keys while the list has focus
func (m Model) handleListKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch {
	case key.Matches(msg, Keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, Keys.Help):
		m.showFullHelp = !m.showFullHelp
		m.Help.ShowAll = m.showFullHelp
		return m, nil

	case key.Matches(msg, Keys.Focus):
		return m, m.focusInput()

	case key.Matches(msg, Keys.Escape):
		if m.Coordinator.Error() != domain.ErrorNone {
			m.Coordinator.DismissError()
			return m, nil
		}
		if m.query != "" {
			m.query = ""
			m.Search.Reset()
			m.cursor = 0
		}
		return m, nil

	// Navigation
	case key.Matches(msg, Keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil

	case key.Matches(msg, Keys.Down):
		if m.cursor < len(m.rows())-1 {
			m.cursor++
		}
		return m, nil

	case key.Matches(msg, Keys.Home):
		m.cursor = 0
		return m, nil

	case key.Matches(msg, Keys.End):
		m.cursor = len(m.rows()) - 1
		return m, nil

	// Todo actions
	case key.Matches(msg, Keys.Toggle):
		if t, ok := m.selectedIdle(); ok {
			return m, EffectCmd(m.Coordinator.Toggle(t.ID))
		}
		return m, nil

	case key.Matches(msg, Keys.Delete):
		if t, ok := m.selectedIdle(); ok {
			return m, EffectCmd(m.Coordinator.Delete(t.ID))
		}
		return m, nil

	case key.Matches(msg, Keys.Edit):
		if t, ok := m.selectedIdle(); ok {
			m.mode = ModeEditing
			m.editingID = t.ID
			m.Editor.SetValue(t.Title)
			return m, m.Editor.Focus()
		}
		return m, nil

	case key.Matches(msg, Keys.ToggleAll):
		if len(m.Coordinator.Todos()) == 0 {
			return m, nil
		}
		return m, EffectsCmd(m.Coordinator.ToggleAll())

	case key.Matches(msg, Keys.ClearCompleted):
		if !m.Coordinator.HasCompleted() {
			return m, nil
		}
		return m, EffectsCmd(m.Coordinator.ClearCompleted())

	case key.Matches(msg, Keys.Yank):
		if t, ok := m.selected(); ok {
			return m, YankCmd(t.Title)
		}
		return m, nil

	// Filters
	case key.Matches(msg, Keys.NextFilter):
		m.setFilter(m.Coordinator.Filter().Next())
		return m, nil

	case key.Matches(msg, Keys.FilterAll):
		m.setFilter(domain.FilterAll)
		return m, nil

	case key.Matches(msg, Keys.FilterActive):
		m.setFilter(domain.FilterActive)
		return m, nil

	case key.Matches(msg, Keys.FilterCompleted):
		m.setFilter(domain.FilterCompleted)
		return m, nil

	case key.Matches(msg, Keys.Narrow):
		m.mode = ModeNarrowing
		m.Search.SetValue(m.query)
		return m, m.Search.Focus()

	case key.Matches(msg, Keys.Reload):
		// A fresh list would race the responses still in flight
		if m.Coordinator.IsLoading() || m.Coordinator.IsCreationPending() || m.Coordinator.PendingCount() > 0 {
			return m, nil
		}
		return m, EffectCmd(m.Coordinator.Load())
	}

	return m, nil
}

// handleEditorKey handles keys while a title is being edited
func (m Model) handleEditorKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	if m.renaming {
		return m, nil
	}

	var (
		cmd    tea.Cmd
		result components.InputResult
	)
	m.Editor, cmd, result = m.Editor.Update(msg)

	switch result {
	case components.InputSubmitted:
		effect := m.Coordinator.Rename(m.editingID, m.Editor.Value())
		if effect == nil {
			m.stopEditing()
			return m, nil
		}
		// The editor stays up until the server answers
		m.renaming = true
		m.Editor.SetDisabled(true)
		return m, EffectCmd(effect)

	case components.InputCancelled:
		m.stopEditing()
		return m, nil
	}

	return m, cmd
}

// handleSearchKey handles keys while the narrowing prompt is open
func (m Model) handleSearchKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	var (
		cmd    tea.Cmd
		result components.InputResult
	)
	m.Search, cmd, result = m.Search.Update(msg)

	switch result {
	case components.InputSubmitted:
		m.mode = ModeBrowse
		m.Search.Blur()
		return m, nil

	case components.InputCancelled:
		m.mode = ModeBrowse
		m.query = ""
		m.Search.Reset()
		m.Search.Blur()
		m.cursor = 0
		return m, nil
	}

	if q := m.Search.Value(); q != m.query {
		m.query = q
		m.cursor = 0
		m.offset = 0
	}
	return m, cmd
}

func (m *Model) stopEditing() {
	m.mode = ModeBrowse
	m.editingID = 0
	m.renaming = false
	m.Editor.SetDisabled(false)
	m.Editor.Blur()
}

func (m *Model) focusList() {
	m.focus = FocusList
	m.Input.Blur()
}

func (m *Model) focusInput() tea.Cmd {
	m.focus = FocusInput
	return m.Input.Focus()
}
