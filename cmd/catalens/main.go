package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/term"

	"github.com/catalens/catalens/internal/config"
	"github.com/catalens/catalens/internal/log"
	"github.com/catalens/catalens/internal/report"
	"github.com/catalens/catalens/internal/service"
	"github.com/catalens/catalens/internal/store"
	"github.com/catalens/catalens/internal/tui"
)

// Version is set at build time via -ldflags
var Version = "dev"

const reportWidth = 100

func main() {
	var showVersion bool
	var dataFile string
	flag.BoolVar(&showVersion, "v", false, "print version")
	flag.BoolVar(&showVersion, "version", false, "print version")
	flag.StringVar(&dataFile, "data", "", "path to the catalog CSV (overrides config)")
	flag.Parse()

	if showVersion {
		fmt.Printf("catalens %s\n", Version)
		return
	}

	if err := run(dataFile); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(dataFile string) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if dataFile != "" {
		cfg.Data.File = dataFile
	}

	logger, err := log.SetupLogger(&cfg.Logging)
	if err != nil {
		// Fall back to null logger if file logging fails
		logger = log.NullLogger()
	}
	slog.SetDefault(logger)

	logger.Info("starting catalens", "version", Version, "data", cfg.Data.File)

	var snapshots *store.SnapshotStore
	if cfg.Cache.Enabled {
		snapshots, err = store.Open(cfg.Cache.Dir)
		if err != nil {
			logger.Warn("snapshot cache unavailable, loading from CSV", "error", err)
			snapshots = nil
		} else {
			defer snapshots.Close()
		}
	}

	catalogSvc := service.NewCatalogService(cfg, logger, snapshots)

	// Piped output gets a static report instead of the TUI
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		table, err := catalogSvc.Load()
		if err != nil {
			return err
		}
		return report.Write(os.Stdout, table, reportWidth)
	}

	model := tui.NewModel(catalogSvc, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	logger.Info("starting TUI")

	if _, err := p.Run(); err != nil {
		logger.Error("TUI error", "error", err)
		return fmt.Errorf("TUI error: %w", err)
	}

	logger.Info("shutting down")
	return nil
}
