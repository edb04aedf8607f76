package tui

import (
	"context"
	"time"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/mmcdole/todos/internal/todo"
)

// Command factories for async operations

// EffectCmd runs a coordinator effect off the update loop.
// Requests are bounded by the transport timeout, not here.
func EffectCmd(effect todo.Effect) tea.Cmd {
	if effect == nil {
		return nil
	}
	return func() tea.Msg {
		return OutcomeMsg{Outcome: effect(context.Background())}
	}
}

// EffectsCmd runs a batch of independent effects. Each settles on its own.
func EffectsCmd(effects []todo.Effect) tea.Cmd {
	cmds := make([]tea.Cmd, 0, len(effects))
	for _, e := range effects {
		cmds = append(cmds, EffectCmd(e))
	}
	return tea.Batch(cmds...)
}

// NoticeTickCmd wakes the update loop when the notice at expires should disappear
func NoticeTickCmd(expires time.Time, now time.Time) tea.Cmd {
	return tea.Tick(expires.Sub(now), func(time.Time) tea.Msg {
		return NoticeExpiredMsg{Expires: expires}
	})
}

// ClearStatusCmd returns a command that clears status number seq after a delay
func ClearStatusCmd(delay time.Duration, seq int) tea.Cmd {
	return tea.Tick(delay, func(t time.Time) tea.Msg {
		return ClearStatusMsg{Seq: seq}
	})
}

// YankCmd copies a title to the system clipboard
func YankCmd(title string) tea.Cmd {
	return func() tea.Msg {
		if err := clipboard.WriteAll(title); err != nil {
			return StatusMsg{Message: "Clipboard unavailable: " + err.Error(), IsError: true}
		}
		return StatusMsg{Message: "Copied: " + title}
	}
}
