package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/weekly/pkg/commands/options"
	"tableflip.dev/weekly/pkg/runner/serve"
)

func addServe(topLevel *cobra.Command, settings *options.Settings) {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "run a local to do API for development",
		Example: `
weekly serve
weekly serve --addr :9090 --data /tmp/weekly
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := settings.Config()
			if err != nil {
				return err
			}
			logger, err := settings.Logger(cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			s := serve.Serve{
				Addr: cfg.ServeAddr,
				Data: cfg.ServeData,
				Log:  logger,
			}
			return s.Do(cmd.Context())
		},
	}
	options.AddServeArgs(cmd, settings)

	topLevel.AddCommand(cmd)
}
