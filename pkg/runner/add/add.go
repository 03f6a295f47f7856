package add

import (
	"context"
	"errors"
	"io"
	"strings"

	"tableflip.dev/weekly/pkg/api"
	"tableflip.dev/weekly/pkg/printers"
	"tableflip.dev/weekly/pkg/todo"
)

type Add struct {
	Day    todo.Day
	Text   string
	JSON   bool
	Out    io.Writer
	Remote api.Remote
}

func (n *Add) Do(ctx context.Context) error {
	if n.Remote == nil {
		return errors.New("can not add, no remote")
	}
	if strings.TrimSpace(n.Text) == "" {
		return errors.New("can not add an empty to do")
	}
	if !n.Day.Valid() {
		return errors.New("can not add, no day")
	}

	t, err := n.Remote.Create(ctx, n.Text, n.Day)
	if err != nil {
		return err
	}
	if n.JSON {
		return printers.JSON(n.Out, t)
	}
	return printDay(ctx, n.Remote, n.Out, n.Day)
}

// printDay shows the day as the server now has it.
func printDay(ctx context.Context, remote api.Remote, out io.Writer, day todo.Day) error {
	tasks, err := remote.List(ctx)
	if err != nil {
		return err
	}
	var onDay []todo.Task
	for _, t := range tasks {
		if t.Day == day {
			onDay = append(onDay, t)
		}
	}
	pp := printers.PrettyPrint{ShowID: true, Out: out}
	pp.NewLine()
	pp.Day(day, onDay)
	return nil
}
