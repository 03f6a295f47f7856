// Package devserver is a local stand-in for the remote to-do API. It serves
// the same /api/todos routes over a store.Persistence so the client can be
// exercised without the hosted backend.
package devserver

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	log "github.com/sirupsen/logrus"

	"tableflip.dev/weekly/pkg/store"
	"tableflip.dev/weekly/pkg/todo"
)

const basePath = "/api/todos"

// Server wraps an echo instance with the to-do routes registered.
type Server struct {
	e *echo.Echo
}

// New builds a Server backed by p.
func New(p store.Persistence, logger log.FieldLogger) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Use(middleware.Recover())
	e.Use(requestLogger(logger))
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept},
	}))
	Register(e, p, logger)
	return &Server{e: e}
}

// Register wires the to-do routes on the provided Echo instance.
func Register(e *echo.Echo, p store.Persistence, logger log.FieldLogger) {
	e.GET(basePath, listTodos(p, logger))
	e.POST(basePath, createTodo(p, logger))
	e.PUT(basePath+"/:id", updateTodo(p, logger))
	e.DELETE(basePath+"/:id", deleteTodo(p, logger))
}

// Handler exposes the server for httptest and custom listeners.
func (s *Server) Handler() http.Handler {
	return s.e
}

// Start listens on addr until Shutdown is called.
func (s *Server) Start(addr string) error {
	if err := s.e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown stops the listener, waiting for in-flight requests.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.e.Shutdown(ctx)
}

func listTodos(p store.Persistence, logger log.FieldLogger) echo.HandlerFunc {
	return func(c echo.Context) error {
		tasks, err := p.List(c.Request().Context())
		if err != nil {
			logger.WithError(err).Error("list todos")
			return c.String(http.StatusInternalServerError, err.Error())
		}
		return c.JSON(http.StatusOK, tasks)
	}
}

func createTodo(p store.Persistence, logger log.FieldLogger) echo.HandlerFunc {
	return func(c echo.Context) error {
		var body todo.NewTask
		if err := c.Bind(&body); err != nil {
			return c.String(http.StatusBadRequest, "invalid body")
		}
		if strings.TrimSpace(body.Text) == "" {
			return c.String(http.StatusBadRequest, "text is required")
		}
		if !body.Day.Valid() {
			return c.String(http.StatusBadRequest, "unknown day")
		}
		created, err := p.Create(body.Text, body.Day)
		if err != nil {
			logger.WithError(err).Error("create todo")
			return c.String(http.StatusInternalServerError, err.Error())
		}
		return c.JSON(http.StatusCreated, created)
	}
}

func updateTodo(p store.Persistence, logger log.FieldLogger) echo.HandlerFunc {
	return func(c echo.Context) error {
		var body todo.Completion
		if err := c.Bind(&body); err != nil {
			return c.String(http.StatusBadRequest, "invalid body")
		}
		updated, err := p.SetCompleted(c.Param("id"), body.Completed)
		if errors.Is(err, store.ErrNotFound) {
			return c.String(http.StatusNotFound, err.Error())
		}
		if err != nil {
			logger.WithError(err).Error("update todo")
			return c.String(http.StatusInternalServerError, err.Error())
		}
		return c.JSON(http.StatusOK, updated)
	}
}

func deleteTodo(p store.Persistence, logger log.FieldLogger) echo.HandlerFunc {
	return func(c echo.Context) error {
		err := p.Delete(c.Param("id"))
		if errors.Is(err, store.ErrNotFound) {
			return c.String(http.StatusNotFound, err.Error())
		}
		if err != nil {
			logger.WithError(err).Error("delete todo")
			return c.String(http.StatusInternalServerError, err.Error())
		}
		return c.NoContent(http.StatusNoContent)
	}
}

func requestLogger(logger log.FieldLogger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)
			if err != nil {
				c.Error(err)
			}
			logger.WithFields(log.Fields{
				"method":   c.Request().Method,
				"path":     c.Request().URL.Path,
				"status":   c.Response().Status,
				"duration": time.Since(start),
			}).Debug("request")
			return nil
		}
	}
}
