// Package remove provides the runner logic for deleting tasks.
package remove

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/fatih/color"

	"tableflip.dev/weekly/pkg/api"
	"tableflip.dev/weekly/pkg/printers"
)

// Remove deletes a task.
type Remove struct {
	ID     string
	JSON   bool
	Out    io.Writer
	Remote api.Remote
}

func (n *Remove) Do(ctx context.Context) error {
	if n.Remote == nil {
		return errors.New("can not remove, no remote")
	}
	if err := n.Remote.Delete(ctx, n.ID); err != nil {
		return err
	}
	if n.JSON {
		return printers.JSON(n.Out, map[string]string{"deleted": n.ID})
	}
	out := n.Out
	if out == nil {
		out = color.Output
	}
	_, _ = fmt.Fprintf(out, "deleted %s\n", color.New(color.Faint).Sprint(n.ID))
	return nil
}
