package commands

import (
	"os"

	"github.com/mattn/go-isatty"
	base "github.com/n3wscott/cli-base/pkg/commands/options"
	"github.com/spf13/cobra"

	"tableflip.dev/weekly/pkg/commands/options"
)

func New() *cobra.Command {
	settings := options.NewSettings()

	cmd := &cobra.Command{
		Use:   "weekly",
		Short: base.Wrap80("A weekly to do list on the command line, kept by a remote to do API."),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !isatty.IsTerminal(os.Stdout.Fd()) {
				return cmd.Help()
			}
			return runUI(cmd, settings)
		},
		SilenceUsage: true,
	}
	options.AddSettingsArgs(cmd, settings)

	AddCommands(cmd, settings)
	return cmd
}

func AddCommands(topLevel *cobra.Command, settings *options.Settings) {
	addUI(topLevel, settings)
	addGet(topLevel, settings)
	addAdd(topLevel, settings)
	addComplete(topLevel, settings)
	addRemove(topLevel, settings)
	addServe(topLevel, settings)
	addVersion(topLevel)
}
