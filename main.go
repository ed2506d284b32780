package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/llehouerou/sweetshop/internal/api"
	"github.com/llehouerou/sweetshop/internal/app"
	"github.com/llehouerou/sweetshop/internal/auth"
	"github.com/llehouerou/sweetshop/internal/config"
	"github.com/llehouerou/sweetshop/internal/logging"
	"github.com/llehouerou/sweetshop/internal/state"
)

func initialModel(cfg *config.Config, logger *zap.Logger, stateMgr *state.Manager) app.Model {
	viewer, err := auth.Resolve(cfg.API.Token, cfg.Viewer.Username, cfg.Viewer.Role)
	if err != nil {
		// An unreadable token still authenticates requests; only the
		// displayed identity falls back.
		logger.Warn("read viewer from token", zap.Error(err))
	}

	opts := []api.Option{api.WithTimeout(cfg.RequestTimeout())}
	if cfg.HasToken() {
		opts = append(opts, api.WithToken(cfg.API.Token))
	}
	client := api.NewClient(cfg.API.URL, opts...)

	logger.Info("starting dashboard",
		zap.String("api", client.BaseURL()),
		zap.String("viewer", viewer.Username),
		zap.String("role", viewer.Role))

	return app.New(app.Deps{
		API:            client,
		State:          stateMgr,
		Logger:         logger,
		Viewer:         viewer,
		CardWidth:      cfg.GetCardWidth(),
		ToastDuration:  cfg.ToastDuration(),
		RequestTimeout: cfg.RequestTimeout(),
	})
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logFile, err := cfg.GetLogFile()
	if err != nil {
		return fmt.Errorf("resolve log file: %w", err)
	}
	logger, err := logging.New(logging.Config{Level: cfg.Log.Level, Path: logFile})
	if err != nil {
		return fmt.Errorf("create logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	stateMgr, err := state.Open(logger)
	if err != nil {
		return fmt.Errorf("open state: %w", err)
	}
	defer func() {
		if err := stateMgr.Close(); err != nil {
			logger.Error("close state", zap.Error(err))
		}
	}()

	p := tea.NewProgram(initialModel(cfg, logger, stateMgr), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run program: %w", err)
	}
	return nil
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
