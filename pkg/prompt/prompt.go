// Package prompt asks for the arguments of a command interactively.
package prompt

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/manifoldco/promptui"

	"tableflip.dev/weekly/pkg/todo"
)

// Prompter reads answers from In and draws prompts on Out.
type Prompter struct {
	In  io.Reader
	Out io.Writer
}

// Day asks for one of the seven days.
func (p Prompter) Day() (todo.Day, error) {
	days := todo.Week()

	templates := &promptui.SelectTemplates{
		Label:    "{{ . }}?",
		Active:   "➜  {{ . | bold }}",
		Inactive: "   {{ . }}",
		Selected: "{{ . | bold | green }}",
	}

	prompt := promptui.Select{
		HideHelp:  true,
		Label:     "Hari",
		Items:     days,
		Templates: templates,
		Size:      len(days),
		Searcher:  daySearcher(days),
		Stdin:     io.NopCloser(p.In),
		Stdout:    NopCloser(p.Out),
	}

	i, _, err := prompt.Run()
	if err != nil {
		return "", fmt.Errorf("prompt day: %w", err)
	}
	return days[i], nil
}

// Text asks for the to do text for day.
func (p Prompter) Text(day todo.Day) (string, error) {
	prompt := promptui.Prompt{
		Label:    fmt.Sprintf("To do untuk %s", day),
		Validate: validateText,
		Stdin:    io.NopCloser(p.In),
		Stdout:   NopCloser(p.Out),
	}
	text, err := prompt.Run()
	if err != nil {
		return "", fmt.Errorf("prompt text: %w", err)
	}
	return text, nil
}

func validateText(input string) error {
	if strings.TrimSpace(input) == "" {
		return errors.New("to do tidak boleh kosong")
	}
	return nil
}

func daySearcher(days []todo.Day) func(string, int) bool {
	return func(input string, index int) bool {
		name := strings.ToLower(days[index].String())
		input = strings.ReplaceAll(strings.ToLower(input), " ", "")
		if strings.Contains(name, input) {
			return true
		}
		d, err := todo.ParseDay(input)
		return err == nil && d == days[index]
	}
}

// NopCloser returns a WriteCloser with a no-op Close method wrapping the
// provided Writer w.
func NopCloser(w io.Writer) io.WriteCloser {
	return nopCloser{w}
}

type nopCloser struct {
	io.Writer
}

func (nopCloser) Close() error { return nil }
