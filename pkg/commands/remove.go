package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/weekly/pkg/commands/options"
	"tableflip.dev/weekly/pkg/runner/remove"
)

func addRemove(topLevel *cobra.Command, settings *options.Settings) {
	io := &options.IDOptions{}
	output := &options.OutputOptions{}

	cmd := &cobra.Command{
		Use:     "rm <id>",
		Aliases: []string{"delete", "remove"},
		Short:   "delete a to do",
		Example: `
weekly rm <to do id>
`,
		Args: func(_ *cobra.Command, args []string) error {
			return io.ParseID(args)
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			output.Out = cmd.OutOrStdout()
			remote, err := settings.Remote()
			if err != nil {
				return output.HandleError(err)
			}
			r := remove.Remove{
				ID:     io.ID,
				JSON:   output.JSON,
				Out:    output.Writer(),
				Remote: remote,
			}
			return output.HandleError(r.Do(cmd.Context()))
		},
	}
	options.AddOutputArg(cmd, output)

	topLevel.AddCommand(cmd)
}
