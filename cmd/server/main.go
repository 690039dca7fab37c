package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/goliatone/go-logger/glog"
	"github.com/goliatone/go-print"

	"github.com/goliatone/go-shop/auth"
	"github.com/goliatone/go-shop/config"
	"github.com/goliatone/go-shop/repository"
	"github.com/goliatone/go-shop/server"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "fatal: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	lgr := newLogger(cfg.LogLevel)

	appLogger := lgr.GetLogger("app")
	appLogger.Info("starting with configuration", "config", print.MaybePrettyJSON(cfg))

	db, err := repository.OpenDB(cfg.DatabaseDSN)
	if err != nil {
		return err
	}
	defer db.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := repository.CreateTables(ctx, db); err != nil {
		return err
	}

	repos := repository.NewManager(db)
	repos.MustValidate()

	provider := repository.NewUserProvider(repos.Users()).
		WithLogger(lgr.GetLogger("auth:prv"))

	tokens := auth.NewTokenService(
		[]byte(cfg.GetSigningKey()),
		cfg.GetTokenExpiration(),
		cfg.GetIssuer(),
		lgr.GetLogger("auth:jwt"),
	)

	gate := auth.NewGate(tokens, provider,
		auth.WithGateLogger(lgr.GetLogger("auth:gate")),
		auth.WithStoreTimeout(cfg.GetStoreTimeout()),
	)

	auther := auth.NewAuthenticator(provider, tokens).
		WithLogger(lgr.GetLogger("auth:login"))

	srv := server.New(gate, auther, repos,
		server.WithLogger(lgr.GetLogger("http")),
	)

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Listen(cfg.HTTPAddr)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	appLogger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	return srv.Shutdown(shutdownCtx)
}

func newLogger(level string) *glog.BaseLogger {
	if level == "trace" || level == "debug" {
		return glog.NewLogger(
			glog.WithLoggerTypePretty(),
			glog.WithLevel(glog.Trace),
			glog.WithName("go-shop"),
			glog.WithAddSource(false),
		)
	}
	return glog.NewLogger(
		glog.WithLoggerTypePretty(),
		glog.WithName("go-shop"),
		glog.WithAddSource(false),
	)
}
