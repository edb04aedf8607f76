package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/mmcdole/todos/internal/domain"
	"github.com/mmcdole/todos/internal/search"
	"github.com/mmcdole/todos/internal/todo"
	"github.com/mmcdole/todos/internal/tui/components"
	"github.com/mmcdole/todos/internal/tui/styles"
)

// Focus is the part of the screen receiving keys
type Focus int

const (
	FocusInput Focus = iota
	FocusList
)

// Mode is a transient interaction layered over the list
type Mode int

const (
	ModeBrowse Mode = iota
	ModeEditing
	ModeNarrowing
)

// statusTimeout is how long status bar messages stay up
const statusTimeout = 2 * time.Second

// Model is the main Bubble Tea model for the application
type Model struct {
	Coordinator *todo.Coordinator

	// UI Components
	Input   components.TitleInput // New todo field
	Editor  components.TitleInput // Inline title editor
	Search  components.TitleInput // Fuzzy narrowing prompt
	Spinner spinner.Model
	Help    help.Model

	// Dimensions
	Width  int
	Height int
	Ready  bool

	// UI state
	StatusMsg   string
	StatusIsErr bool
	statusSeq   int

	focus        Focus
	mode         Mode
	cursor       int
	offset       int
	editingID    int
	renaming     bool
	query        string
	showFullHelp bool

	// Expiry of the notice a NoticeTickCmd is already scheduled for
	noticeArmed time.Time
	clock       func() time.Time
}

// NewModel creates a new application model over a coordinator.
// clock must match the coordinator's so notices expire on time; nil means time.Now.
func NewModel(coordinator *todo.Coordinator, clock func() time.Time) Model {
	if clock == nil {
		clock = time.Now
	}

	sp := spinner.New()
	sp.Spinner = spinner.MiniDot
	sp.Style = styles.SpinnerStyle

	h := help.New()
	h.Styles.ShortKey = styles.HelpKeyStyle
	h.Styles.ShortDesc = styles.HelpDescStyle
	h.Styles.FullKey = styles.HelpKeyStyle
	h.Styles.FullDesc = styles.HelpDescStyle

	m := Model{
		Coordinator: coordinator,
		Input:       components.NewTitleInput("", "What needs to be done?"),
		Editor:      components.NewTitleInput("", ""),
		Search:      components.NewTitleInput("/", "search titles"),
		Spinner:     sp,
		Help:        h,
		focus:       FocusInput,
		clock:       clock,
	}
	m.Input.Focus()
	return m
}

// Init starts the initial load
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		EffectCmd(m.Coordinator.Load()),
		m.Spinner.Tick,
		textinput.Blink,
	)
}

// Update handles all messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		m.Ready = true
		m.updateLayout()
		return m, nil

	case tea.KeyMsg:
		m, cmd = m.handleKeyMsg(msg)
		return m.afterChange(cmd)

	case OutcomeMsg:
		selected := m.selectedKey()
		m, cmd = m.handleOutcome(msg.Outcome)
		m.restoreCursor(selected)
		return m.afterChange(cmd)

	case NoticeExpiredMsg:
		// Nothing to do: the view asks the coordinator, which checks the clock.
		// A notice extended since this tick was scheduled has its own tick.
		return m, nil

	case spinner.TickMsg:
		m.Spinner, cmd = m.Spinner.Update(msg)
		return m, cmd

	case StatusMsg:
		m.StatusMsg = msg.Message
		m.StatusIsErr = msg.IsError
		m.statusSeq++
		return m, ClearStatusCmd(statusTimeout, m.statusSeq)

	case ClearStatusMsg:
		// A newer status has its own clear scheduled
		if msg.Seq != m.statusSeq {
			return m, nil
		}
		m.StatusMsg = ""
		m.StatusIsErr = false
		return m, nil
	}

	// Cursor blink and other component messages go to the active input
	return m, m.updateActiveInput(msg)
}

// handleOutcome settles a server response into the coordinator
func (m Model) handleOutcome(o todo.Outcome) (Model, tea.Cmd) {
	m.Coordinator.Settle(o)

	switch o := o.(type) {
	case todo.UpdateOutcome:
		return m, m.renameSettled(o.ID, o.Err)
	case todo.DeleteOutcome:
		return m, m.renameSettled(o.ID, o.Err)
	}

	created, ok := o.(todo.CreateOutcome)
	if !ok {
		return m, nil
	}

	// The title is kept on failure so it can be retried
	if created.Err == nil {
		m.Input.Reset()
	}
	if m.focus == FocusInput {
		return m, m.Input.Focus()
	}
	return m, nil
}

// renameSettled closes the editor once its rename lands. On failure the
// editor stays open with the typed title so it can be retried.
func (m *Model) renameSettled(id int, err error) tea.Cmd {
	if !m.renaming || id != m.editingID {
		return nil
	}
	if err == nil {
		m.stopEditing()
		return nil
	}
	m.renaming = false
	m.Editor.SetDisabled(false)
	return m.Editor.Focus()
}

// afterChange brings derived UI state in line with the coordinator
func (m Model) afterChange(cmd tea.Cmd) (Model, tea.Cmd) {
	m.Input.SetDisabled(m.Coordinator.IsCreationPending())
	m.clampCursor()
	if notice := m.armNotice(); notice != nil {
		return m, tea.Batch(cmd, notice)
	}
	return m, cmd
}

// armNotice schedules a re-render for when the current error expires
func (m *Model) armNotice() tea.Cmd {
	expires := m.Coordinator.ErrorExpiry()
	if expires.IsZero() || expires.Equal(m.noticeArmed) {
		return nil
	}
	m.noticeArmed = expires
	return NoticeTickCmd(expires, m.clock())
}

func (m *Model) updateActiveInput(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	switch {
	case m.mode == ModeEditing:
		m.Editor, cmd, _ = m.Editor.Update(msg)
	case m.mode == ModeNarrowing:
		m.Search, cmd, _ = m.Search.Update(msg)
	case m.focus == FocusInput:
		m.Input, cmd, _ = m.Input.Update(msg)
	}
	return cmd
}

// updateLayout resizes the inputs to the panel
func (m *Model) updateLayout() {
	layout := m.calculateLayout()
	m.Input.SetWidth(layout.width - 4)
	m.Editor.SetWidth(layout.width - 6)
	m.Search.SetWidth(layout.width - 4)
	m.Help.Width = layout.width
	m.ensureCursorVisible(layout.maxVisible)
}

// rows returns the displayed todos after the narrowing query
func (m Model) rows() []components.TodoRow {
	results := search.Find(m.query, m.Coordinator.DisplayedTodos())
	rows := make([]components.TodoRow, len(results))
	for i, r := range results {
		rows[i] = components.TodoRow{
			Todo:           r.Todo,
			Selected:       m.focus == FocusList && i == m.cursor,
			Pending:        m.Coordinator.IsPending(r.Todo),
			MatchedIndexes: r.MatchedIndexes,
		}
	}
	return rows
}

// selected returns the todo under the cursor
func (m Model) selected() (domain.Todo, bool) {
	rows := m.rows()
	if m.cursor < 0 || m.cursor >= len(rows) {
		return domain.Todo{}, false
	}
	return rows[m.cursor].Todo, true
}

// selectedIdle returns the todo under the cursor if it can be acted on
func (m Model) selectedIdle() (domain.Todo, bool) {
	t, ok := m.selected()
	if !ok || m.Coordinator.IsPending(t) {
		return domain.Todo{}, false
	}
	return t, true
}

// selectedKey returns the row key under the cursor, or "" if there is none
func (m Model) selectedKey() string {
	t, ok := m.selected()
	if !ok {
		return ""
	}
	return t.Key()
}

// restoreCursor keeps the cursor on the same todo when rows move under it
func (m *Model) restoreCursor(key string) {
	if key == "" {
		return
	}
	for i, row := range m.rows() {
		if row.Todo.Key() == key {
			m.cursor = i
			return
		}
	}
}

func (m *Model) clampCursor() {
	n := len(m.rows())
	if m.cursor >= n {
		m.cursor = n - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
	if m.Ready {
		m.ensureCursorVisible(m.calculateLayout().maxVisible)
	}
}

func (m *Model) setFilter(f domain.Filter) {
	m.Coordinator.SetFilter(f)
	m.cursor = 0
	m.offset = 0
}

// FocusedList reports whether keys go to the list
func (m Model) FocusedList() bool {
	return m.focus == FocusList
}

// Query returns the active narrowing query
func (m Model) Query() string {
	return m.query
}
