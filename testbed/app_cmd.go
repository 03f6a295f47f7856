package main

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"tableflip.dev/weekly/pkg/testutil"
	"tableflip.dev/weekly/pkg/todo"
	teaui "tableflip.dev/weekly/pkg/tui/app"
	"tableflip.dev/weekly/pkg/tui/theme"
)

func newAppCmd(opts *options) *cobra.Command {
	var failDeletes bool

	cmd := &cobra.Command{
		Use:   "app",
		Short: "Run the full UI against an in-memory to do API",
		RunE: func(cmd *cobra.Command, args []string) error {
			tasks := append(sampleWeek(), todo.Task{ID: "x", Text: "Hari yang salah", Day: "Funday"})
			remote := testutil.NewFakeRemote(tasks...)
			if failDeletes {
				remote.DeleteErr = errFailDelete
			}
			return teaui.Run(context.Background(), remote, theme.Resolve(opts.theme), nil)
		},
	}

	cmd.Flags().BoolVar(&failDeletes, "fail-deletes", false, "make every delete fail")
	return cmd
}

var errFailDelete = errors.New("testbed: delete disabled")
