package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/weekly/pkg/commands/options"
	"tableflip.dev/weekly/pkg/runner/complete"
)

func addComplete(topLevel *cobra.Command, settings *options.Settings) {
	io := &options.IDOptions{}
	output := &options.OutputOptions{}

	cmd := &cobra.Command{
		Use:     "complete <id>",
		Aliases: []string{"completed", "done"},
		Short:   "mark a to do as done",
		Example: `
weekly complete <to do id>
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
			c := complete.Complete{
				ID:     io.ID,
				JSON:   output.JSON,
				Out:    output.Writer(),
				Remote: remote,
			}
			return output.HandleError(c.Do(cmd.Context()))
		},
	}
	options.AddOutputArg(cmd, output)

	topLevel.AddCommand(cmd)
}
