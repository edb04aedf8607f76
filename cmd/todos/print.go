package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/mmcdole/todos/internal/domain"
	"github.com/mmcdole/todos/internal/todo"
	"github.com/mmcdole/todos/internal/tui/components"
)

// printTodos writes todos as an aligned table followed by the active counter
func printTodos(w io.Writer, todos []domain.Todo, all []domain.Todo) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	for _, t := range todos {
		box := "[ ]"
		if t.Completed {
			box = "[x]"
		}
		fmt.Fprintf(tw, "%s\t%d\t%s\n", box, t.ID, t.Title)
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	_, err := fmt.Fprintln(w, components.ItemsLeft(todo.ActiveCount(all)))
	return err
}
