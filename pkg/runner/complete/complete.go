// Package complete provides the runner logic for marking tasks complete.
package complete

import (
	"context"
	"errors"
	"io"

	"tableflip.dev/weekly/pkg/api"
	"tableflip.dev/weekly/pkg/printers"
)

// Complete marks a task as completed.
type Complete struct {
	ID     string
	JSON   bool
	Out    io.Writer
	Remote api.Remote
}

// Do executes the completion operation for the configured task ID.
func (n *Complete) Do(ctx context.Context) error {
	if n.Remote == nil {
		return errors.New("can not complete, no remote")
	}
	t, err := n.Remote.Complete(ctx, n.ID)
	if err != nil {
		return err
	}
	if n.JSON {
		return printers.JSON(n.Out, t)
	}
	pp := printers.PrettyPrint{ShowID: true, Out: n.Out}
	pp.NewLine()
	pp.Tasks(t)
	return nil
}
