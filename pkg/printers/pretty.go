package printers

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/weekly/pkg/todo"
	"tableflip.dev/weekly/pkg/tui/taskstore"
)

// UnrecognizedTitle heads tasks whose day is not one of the seven labels.
const UnrecognizedTitle = "(hari tidak dikenal)"

type PrettyPrint struct {
	ShowID bool
	Out    io.Writer
}

func (pp *PrettyPrint) out() io.Writer {
	if pp.Out == nil {
		return color.Output
	}
	return pp.Out
}

func (pp *PrettyPrint) NewLine() {
	_, _ = fmt.Fprintln(pp.out())
}

func (pp *PrettyPrint) TitleWithCount(title string, count int) {
	t := color.New(color.Bold, color.Underline)
	c := color.New(color.Faint)

	_, _ = t.Fprint(pp.out(), title)
	_, _ = c.Fprintf(pp.out(), " - %d\n", count)
}

// Tasks prints one row per task.
func (pp *PrettyPrint) Tasks(tasks ...todo.Task) {
	w := pp.out()
	if len(tasks) == 0 {
		f := color.New(color.Faint, color.Italic)
		_, _ = f.Fprint(w, "  none\n\n")
		return
	}

	id := color.New(color.FgHiYellow, color.Italic, color.Faint)
	done := color.New(color.Faint, color.CrossedOut)

	tbl := uitable.New()
	tbl.Separator = "  "
	for _, t := range tasks {
		box, text := "[ ]", t.Text
		if t.Completed {
			box, text = "[x]", done.Sprint(t.Text)
		}
		if pp.ShowID {
			tbl.AddRow(id.Sprint(t.ID), box, text)
		} else {
			tbl.AddRow(box, text)
		}
	}
	_, _ = fmt.Fprintln(w, tbl)
	_, _ = fmt.Fprintln(w)
}

// Day prints one day's tasks under its title.
func (pp *PrettyPrint) Day(day todo.Day, tasks []todo.Task) {
	pp.TitleWithCount(day.String(), len(tasks))
	pp.Tasks(tasks...)
}

// Week groups tasks by day and prints every day in order, followed by any
// tasks with an unknown day.
func (pp *PrettyPrint) Week(tasks []todo.Task) {
	s := taskstore.New().SetAll(tasks)
	for _, d := range todo.Week() {
		pp.Day(d, s.Tasks(d))
	}
	if extra := s.Unrecognized(); len(extra) > 0 {
		pp.TitleWithCount(UnrecognizedTitle, len(extra))
		pp.Tasks(extra...)
	}
}

// JSON writes v as indented JSON.
func JSON(w io.Writer, v interface{}) error {
	if w == nil {
		w = color.Output
	}
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(b))
	return err
}
