package main

import (
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mmcdole/todos/internal/tui"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

func newRootCmd(stdout, stderr io.Writer, open opener) *cobra.Command {
	var configDir string
	sessionFn := func() (*session, error) { return open(configDir) }

	cmd := &cobra.Command{
		Use:   "todos",
		Short: "A terminal client for your todo list",
		Long: `todos keeps your todo list in sync with the server.

Changes show up immediately and are rolled back if the server refuses them.
Run without arguments to open the interactive UI.`,
		Version: Version,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := sessionFn()
			if err != nil {
				return err
			}
			defer s.Close()
			if !isTerminal(stdout) {
				if err := s.load(cmd.Context()); err != nil {
					return err
				}
				return printTodos(stdout, s.coord.DisplayedTodos(), s.coord.Todos())
			}
			return runTUI(s)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	cmd.SetVersionTemplate("todos {{.Version}}\n")
	cmd.PersistentFlags().StringVar(&configDir, "config-dir", "", "Directory containing config.yaml (default ~/.config/todos)")

	cmd.AddCommand(newListCmd(stdout, sessionFn))
	cmd.AddCommand(newAddCmd(stdout, sessionFn))
	cmd.AddCommand(newToggleCmd(stdout, sessionFn))
	cmd.AddCommand(newRenameCmd(stdout, sessionFn))
	cmd.AddCommand(newRemoveCmd(stdout, sessionFn))
	cmd.AddCommand(newClearCompletedCmd(stdout, sessionFn))
	cmd.AddCommand(newToggleAllCmd(stdout, sessionFn))
	cmd.AddCommand(newConfigCmd(stdout, &configDir))

	return cmd
}

// runTUI runs the interactive UI until the user quits
func runTUI(s *session) error {
	model := tui.NewModel(s.coord, nil)

	p := tea.NewProgram(model, tea.WithAltScreen())

	s.logger.Info("starting TUI")

	if _, err := p.Run(); err != nil {
		s.logger.Error("TUI error", "error", err)
		return fmt.Errorf("TUI error: %w", err)
	}

	s.logger.Info("shutting down")
	return nil
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
