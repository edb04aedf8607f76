package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/mmcdole/todos/internal/domain"
	"github.com/mmcdole/todos/internal/search"
	"github.com/mmcdole/todos/internal/todo"
	"github.com/spf13/cobra"
)

type sessionFunc func() (*session, error)

func newListCmd(stdout io.Writer, open sessionFunc) *cobra.Command {
	var (
		filter string
		match  string
	)

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "Print the todo list",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := open()
			if err != nil {
				return err
			}
			defer s.Close()
			if cmd.Flags().Changed("filter") {
				f, err := domain.ParseFilter(filter)
				if err != nil {
					return err
				}
				s.coord.SetFilter(f)
			}
			if err := s.load(cmd.Context()); err != nil {
				return err
			}
			shown := search.Filter(match, s.coord.DisplayedTodos())
			return printTodos(stdout, shown, s.coord.Todos())
		},
		SilenceUsage: true,
	}

	cmd.Flags().StringVarP(&filter, "filter", "f", "", "Show all, active or completed todos (default from config)")
	cmd.Flags().StringVarP(&match, "match", "m", "", "Only show todos whose title fuzzily matches")
	return cmd
}

func newAddCmd(stdout io.Writer, open sessionFunc) *cobra.Command {
	return &cobra.Command{
		Use:   "add <title...>",
		Short: "Create a todo",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return mutate(cmd, stdout, open, func(c *todo.Coordinator) ([]todo.Effect, error) {
				effect, err := c.Create(strings.Join(args, " "))
				if err != nil {
					return nil, err
				}
				return []todo.Effect{effect}, nil
			})
		},
		SilenceUsage: true,
	}
}

func newToggleCmd(stdout io.Writer, open sessionFunc) *cobra.Command {
	return &cobra.Command{
		Use:   "toggle <id>",
		Short: "Flip a todo between active and completed",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			return mutate(cmd, stdout, open, func(c *todo.Coordinator) ([]todo.Effect, error) {
				effect := c.Toggle(id)
				if effect == nil {
					return nil, fmt.Errorf("todo %d: %w", id, domain.ErrTodoNotFound)
				}
				return []todo.Effect{effect}, nil
			})
		},
		SilenceUsage: true,
	}
}

func newRenameCmd(stdout io.Writer, open sessionFunc) *cobra.Command {
	return &cobra.Command{
		Use:   "rename <id> <title...>",
		Short: "Change a todo's title (a blank title deletes it)",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0])
			if err != nil {
				return err
			}
			return mutate(cmd, stdout, open, func(c *todo.Coordinator) ([]todo.Effect, error) {
				if !hasTodo(c, id) {
					return nil, fmt.Errorf("todo %d: %w", id, domain.ErrTodoNotFound)
				}
				// nil when the title is unchanged
				return []todo.Effect{c.Rename(id, strings.Join(args[1:], " "))}, nil
			})
		},
		SilenceUsage: true,
	}
}

func newRemoveCmd(stdout io.Writer, open sessionFunc) *cobra.Command {
	return &cobra.Command{
		Use:     "rm <id>...",
		Aliases: []string{"delete"},
		Short:   "Delete todos; each delete succeeds or fails on its own",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ids := make([]int, len(args))
			for i, arg := range args {
				id, err := parseID(arg)
				if err != nil {
					return err
				}
				ids[i] = id
			}
			return mutate(cmd, stdout, open, func(c *todo.Coordinator) ([]todo.Effect, error) {
				effects := make([]todo.Effect, 0, len(ids))
				for _, id := range ids {
					if !hasTodo(c, id) {
						return nil, fmt.Errorf("todo %d: %w", id, domain.ErrTodoNotFound)
					}
					effects = append(effects, c.Delete(id))
				}
				return effects, nil
			})
		},
		SilenceUsage: true,
	}
}

func newClearCompletedCmd(stdout io.Writer, open sessionFunc) *cobra.Command {
	return &cobra.Command{
		Use:   "clear-completed",
		Short: "Delete every completed todo",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return mutate(cmd, stdout, open, func(c *todo.Coordinator) ([]todo.Effect, error) {
				return c.ClearCompleted(), nil
			})
		},
		SilenceUsage: true,
	}
}

func newToggleAllCmd(stdout io.Writer, open sessionFunc) *cobra.Command {
	return &cobra.Command{
		Use:   "toggle-all",
		Short: "Complete every todo, or reactivate all when all are completed",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return mutate(cmd, stdout, open, func(c *todo.Coordinator) ([]todo.Effect, error) {
				return c.ToggleAll(), nil
			})
		},
		SilenceUsage: true,
	}
}

// mutate loads the list, applies one intent, waits for its effects and prints the result.
// A failed effect is reported after the list is printed.
func mutate(cmd *cobra.Command, stdout io.Writer, open sessionFunc, intent func(*todo.Coordinator) ([]todo.Effect, error)) error {
	s, err := open()
	if err != nil {
		return err
	}
	defer s.Close()
	if err := s.load(cmd.Context()); err != nil {
		return err
	}

	effects, err := intent(s.coord)
	if err != nil {
		if kindErr := s.failure(); kindErr != nil {
			return kindErr
		}
		return err
	}

	applyErr := s.apply(cmd.Context(), effects...)
	if err := printTodos(stdout, s.coord.DisplayedTodos(), s.coord.Todos()); err != nil {
		return err
	}
	return applyErr
}

func parseID(arg string) (int, error) {
	id, err := strconv.Atoi(arg)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid todo id %q", arg)
	}
	return id, nil
}

func hasTodo(c *todo.Coordinator, id int) bool {
	for _, t := range c.Todos() {
		if !t.IsPlaceholder() && t.ID == id {
			return true
		}
	}
	return false
}
