// Package get provides the runner logic for printing the week.
package get

import (
	"context"
	"errors"
	"io"

	"tableflip.dev/weekly/pkg/api"
	"tableflip.dev/weekly/pkg/printers"
	"tableflip.dev/weekly/pkg/todo"
)

// Get prints the whole week, or a single day when Day is set.
type Get struct {
	Day    todo.Day
	ShowID bool
	JSON   bool
	Out    io.Writer
	Remote api.Remote
}

// Do fetches every task and prints the requested view.
func (n *Get) Do(ctx context.Context) error {
	if n.Remote == nil {
		return errors.New("can not get, no remote")
	}
	tasks, err := n.Remote.List(ctx)
	if err != nil {
		return err
	}

	if n.Day != "" {
		tasks = onDay(tasks, n.Day)
	}
	if n.JSON {
		return printers.JSON(n.Out, tasks)
	}

	pp := printers.PrettyPrint{ShowID: n.ShowID, Out: n.Out}
	if n.Day != "" {
		pp.Day(n.Day, tasks)
		return nil
	}
	pp.Week(tasks)
	return nil
}

func onDay(tasks []todo.Task, day todo.Day) []todo.Task {
	out := make([]todo.Task, 0, len(tasks))
	for _, t := range tasks {
		if t.Day == day {
			out = append(out, t)
		}
	}
	return out
}
