// Package ui starts the interactive week view.
package ui

import (
	"context"
	"errors"

	log "github.com/sirupsen/logrus"

	"tableflip.dev/weekly/pkg/api"
	teaui "tableflip.dev/weekly/pkg/tui/app"
	"tableflip.dev/weekly/pkg/tui/theme"
)

type UI struct {
	Remote api.Remote
	Theme  string
	Log    log.FieldLogger
}

func (i *UI) Do(ctx context.Context) error {
	if i.Remote == nil {
		return errors.New("can not start ui, no remote")
	}
	if i.Log != nil {
		i.Log.WithField("theme", i.Theme).Info("starting ui")
	}
	return teaui.Run(ctx, i.Remote, theme.Resolve(i.Theme), i.Log)
}
