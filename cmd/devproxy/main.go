// Command devproxy serves /api from the configured Sweet Shop API origin for
// local development.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/llehouerou/sweetshop/internal/api"
	"github.com/llehouerou/sweetshop/internal/config"
	"github.com/llehouerou/sweetshop/internal/devproxy"
	"github.com/llehouerou/sweetshop/internal/logging"
)

func main() {
	addr := flag.String("addr", "", "listen address (overrides proxy.addr)")
	target := flag.String("target", "", "remote API origin (overrides proxy.target)")
	flag.Parse()

	if err := run(*addr, *target); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(addr, target string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	pc := cfg.GetProxyConfig()
	if addr != "" {
		pc.Addr = addr
	}
	if target != "" {
		pc.Target = target
	}
	if pc.Target == "" {
		pc.Target = api.DefaultBaseURL
	}

	logger, err := logging.New(logging.Config{Level: cfg.Log.Level, Encoding: "console", Path: "stderr"})
	if err != nil {
		return fmt.Errorf("create logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	if cfg.Log.Level != "debug" {
		gin.SetMode(gin.ReleaseMode)
	}

	srv, err := devproxy.New(devproxy.Config{Addr: pc.Addr, Target: pc.Target, Logger: logger})
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := srv.Run(ctx); err != nil {
		logger.Error("dev proxy stopped", zap.Error(err))
		return err
	}
	return nil
}
