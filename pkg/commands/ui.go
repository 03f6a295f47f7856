package commands

import (
	"errors"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"tableflip.dev/weekly/pkg/commands/options"
	"tableflip.dev/weekly/pkg/runner/ui"
)

func addUI(topLevel *cobra.Command, settings *options.Settings) {
	cmd := &cobra.Command{
		Use:   "ui",
		Short: "open the text-based user interface",
		Example: `
weekly ui
weekly ui --theme dark
`,
		ValidArgs: []string{},
		RunE: func(cmd *cobra.Command, args []string) error {
			if !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd()) {
				return errors.New("ui requires a terminal")
			}
			return runUI(cmd, settings)
		},
	}

	topLevel.AddCommand(cmd)
}

func runUI(cmd *cobra.Command, settings *options.Settings) error {
	cfg, err := settings.Config()
	if err != nil {
		return err
	}
	remote, err := settings.Remote()
	if err != nil {
		return err
	}
	logger, closer, err := settings.FileLogger()
	if err != nil {
		return err
	}
	defer closer.Close()

	i := ui.UI{Remote: remote, Theme: cfg.Theme, Log: logger}
	return i.Do(cmd.Context())
}
