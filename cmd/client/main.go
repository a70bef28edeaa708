package main

import (
	"context"
	"fmt"
	"net/http"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"github.com/dmitrijs2005/econdash/internal/client/authapi"
	"github.com/dmitrijs2005/econdash/internal/client/config"
	"github.com/dmitrijs2005/econdash/internal/client/db"
	"github.com/dmitrijs2005/econdash/internal/client/services"
	"github.com/dmitrijs2005/econdash/internal/client/tui"
	"github.com/dmitrijs2005/econdash/internal/client/worldbank"
	"github.com/dmitrijs2005/econdash/internal/filex"
	"github.com/dmitrijs2005/econdash/internal/logging"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "econdash: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return fmt.Errorf("an interactive terminal is required")
	}

	cfg := config.LoadConfig()

	dataDir, err := filex.EnsureDataDir("econdash")
	if err != nil {
		return err
	}

	logger, err := logging.NewFileZapLogger(filex.Resolve(dataDir, cfg.LogFile), cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("opening log file: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	ctx := context.Background()

	database, err := db.Open(ctx, filex.Resolve(dataDir, cfg.DatabaseDSN))
	if err != nil {
		logger.Error(ctx, "opening database failed", "error", err)
		return err
	}
	defer database.Close()

	auth := authapi.NewHTTPClient(cfg.AuthEndpointAddr, &http.Client{Timeout: cfg.AuthRequestTimeout}, logger)
	data := worldbank.NewHTTPClient(cfg.DataEndpointAddr, nil, logger)

	sessions := services.NewSessionService(auth, database, logger)
	dashboards := services.NewDashboardService(data, nil, logger)

	logger.Info(ctx, "client starting",
		"auth_endpoint", cfg.AuthEndpointAddr,
		"data_endpoint", cfg.DataEndpointAddr,
		"data_dir", dataDir)

	program := tea.NewProgram(tui.New(sessions, dashboards, logger), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		logger.Error(ctx, "event loop failed", "error", err)
		return err
	}

	logger.Info(ctx, "client stopped")
	return nil
}
