package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/weekly/pkg/commands/options"
	"tableflip.dev/weekly/pkg/runner/get"
	"tableflip.dev/weekly/pkg/todo"
)

func addGet(topLevel *cobra.Command, settings *options.Settings) {
	io := &options.IDOptions{}
	output := &options.OutputOptions{}
	var day todo.Day

	cmd := &cobra.Command{
		Use:     "list [day]",
		Aliases: []string{"get", "ls"},
		Short:   "print the week, or a single day",
		Example: `
weekly list
weekly list rabu
weekly list --show-id --json
`,
		Args: func(cmd *cobra.Command, args []string) error {
			if err := cobra.MaximumNArgs(1)(cmd, args); err != nil {
				return err
			}
			if len(args) == 1 {
				d, err := todo.ParseDay(args[0])
				if err != nil {
					return err
				}
				day = d
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			output.Out = cmd.OutOrStdout()
			remote, err := settings.Remote()
			if err != nil {
				return output.HandleError(err)
			}
			g := get.Get{
				Day:    day,
				ShowID: io.ShowID,
				JSON:   output.JSON,
				Out:    output.Writer(),
				Remote: remote,
			}
			return output.HandleError(g.Do(cmd.Context()))
		},
	}
	options.AddShowIDArgs(cmd, io)
	options.AddOutputArg(cmd, output)

	topLevel.AddCommand(cmd)
}
