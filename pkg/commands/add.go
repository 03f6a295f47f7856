package commands

import (
	"errors"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/weekly/pkg/commands/options"
	"tableflip.dev/weekly/pkg/prompt"
	"tableflip.dev/weekly/pkg/runner/add"
	"tableflip.dev/weekly/pkg/todo"
)

func addAdd(topLevel *cobra.Command, settings *options.Settings) {
	output := &options.OutputOptions{}
	io := &options.InteractiveOptions{}
	var (
		day  todo.Day
		text string
	)

	cmd := &cobra.Command{
		Use:   "add <day> <text...>",
		Short: "add a to do to a day",
		Example: `
weekly add senin beli sayur
weekly add friday "bayar listrik" --json
weekly add -i
`,
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) == 0 && io.Interactive {
				return nil
			}
			if len(args) == 0 {
				return errors.New("requires a day and a to do")
			}
			d, err := todo.ParseDay(args[0])
			if err != nil {
				return err
			}
			day = d
			text = strings.Join(args[1:], " ")
			if text == "" && !io.Interactive {
				return errors.New("requires a day and a to do")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			output.Out = cmd.OutOrStdout()
			if io.Interactive {
				p := prompt.Prompter{In: cmd.InOrStdin(), Out: cmd.OutOrStdout()}
				var err error
				if day == "" {
					if day, err = p.Day(); err != nil {
						return err
					}
				}
				if text == "" {
					if text, err = p.Text(day); err != nil {
						return err
					}
				}
			}
			remote, err := settings.Remote()
			if err != nil {
				return output.HandleError(err)
			}
			a := add.Add{
				Day:    day,
				Text:   text,
				JSON:   output.JSON,
				Out:    output.Writer(),
				Remote: remote,
			}
			return output.HandleError(a.Do(cmd.Context()))
		},
	}
	options.AddOutputArg(cmd, output)
	options.InteractiveArgs(cmd, io)

	topLevel.AddCommand(cmd)
}
