// Package server hosts the HTTP surface: a fiber app with the auth gate in
// front of every protected route and a single error handler translating rich
// errors into JSON responses.
package server

import (
	"context"
	stderrors "errors"
	"time"

	"github.com/gofiber/fiber/v2"
	goerrors "github.com/goliatone/go-errors"
	"github.com/goliatone/go-logger/glog"

	"github.com/goliatone/go-shop/auth"
	"github.com/goliatone/go-shop/repository"
)

// Server owns the fiber app and the wired dependencies.
type Server struct {
	app    *fiber.App
	gate   *auth.Gate
	auther auth.Authenticator
	repos  repository.Manager
	logger glog.Logger
}

// Option customizes server construction.
type Option func(*Server)

// WithLogger overrides the default logger.
func WithLogger(logger glog.Logger) Option {
	return func(s *Server) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// New builds the HTTP server and registers all routes.
func New(gate *auth.Gate, auther auth.Authenticator, repos repository.Manager, opts ...Option) *Server {
	s := &Server{
		gate:   gate,
		auther: auther,
		repos:  repos,
	}

	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}

	if s.logger == nil {
		s.logger = glog.NewLogger(
			glog.WithLoggerTypePretty(),
			glog.WithName("server"),
			glog.WithAddSource(false),
		).GetLogger("http")
	}

	s.app = fiber.New(fiber.Config{
		AppName:      "go-shop",
		ErrorHandler: s.errorHandler,
	})

	s.app.Use(s.requestLogger())
	s.registerRoutes()

	return s
}

// App exposes the underlying fiber app, mostly for tests.
func (s *Server) App() *fiber.App {
	return s.app
}

// Listen blocks serving HTTP on addr.
func (s *Server) Listen(addr string) error {
	s.logger.Info("http server listening", "addr", addr)
	return s.app.Listen(addr)
}

// Shutdown drains in-flight requests respecting ctx.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.app.ShutdownWithContext(ctx)
}

// errorHandler is the single place rejections become responses. Rich errors
// carry their HTTP status in Code; everything else is a 500.
func (s *Server) errorHandler(c *fiber.Ctx, err error) error {
	var rich *goerrors.Error
	if goerrors.As(err, &rich) {
		return c.Status(statusFor(rich)).JSON(fiber.Map{"message": rich.Message})
	}

	var ferr *fiber.Error
	if stderrors.As(err, &ferr) {
		return c.Status(ferr.Code).JSON(fiber.Map{"message": ferr.Message})
	}

	s.logger.Error("unhandled error", "error", err, "path", c.Path())
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"message": "internal server error"})
}

func statusFor(rich *goerrors.Error) int {
	if rich.Code >= 400 && rich.Code <= 599 {
		return rich.Code
	}

	switch rich.Category {
	case goerrors.CategoryNotFound:
		return fiber.StatusNotFound
	case goerrors.CategoryValidation, goerrors.CategoryBadInput:
		return fiber.StatusBadRequest
	case goerrors.CategoryConflict:
		return fiber.StatusConflict
	case goerrors.CategoryAuth:
		return fiber.StatusUnauthorized
	case goerrors.CategoryAuthz:
		return fiber.StatusForbidden
	default:
		return fiber.StatusInternalServerError
	}
}

func (s *Server) requestLogger() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		fields := []any{
			"method", c.Method(),
			"path", c.Path(),
			"duration", time.Since(start).String(),
		}

		if err != nil {
			s.logger.Info("request rejected", append(fields, "error", err)...)
			return err
		}

		s.logger.Info("request", append(fields, "status", c.Response().StatusCode())...)
		return nil
	}
}
