// Package serve runs the local development API until the context ends.
package serve

import (
	"context"
	"time"

	log "github.com/sirupsen/logrus"

	"tableflip.dev/weekly/pkg/devserver"
	"tableflip.dev/weekly/pkg/store"
)

const shutdownTimeout = 5 * time.Second

// Serve hosts the to-do routes over a diskv store rooted at Data.
type Serve struct {
	Addr string
	Data string
	Log  log.FieldLogger
}

func (s *Serve) Do(ctx context.Context) error {
	if s.Log == nil {
		s.Log = log.StandardLogger()
	}
	p, err := store.Load(s.Data)
	if err != nil {
		return err
	}
	srv := devserver.New(p, s.Log)

	errc := make(chan error, 1)
	go func() {
		errc <- srv.Start(s.Addr)
	}()
	s.Log.WithFields(log.Fields{"addr": s.Addr, "data": s.Data}).Info("dev api listening")

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	s.Log.Info("shutting down dev api")
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	return <-errc
}
