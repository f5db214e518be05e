package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/llehouerou/crate/internal/app"
	"github.com/llehouerou/crate/internal/config"
	"github.com/llehouerou/crate/internal/library"
	"github.com/llehouerou/crate/internal/logging"
	"github.com/llehouerou/crate/internal/state"
)

// env holds what every command needs.
type env struct {
	cfg    *config.Config
	logger *logging.Logger
	state  *state.Manager
	lib    *library.Library
}

func openEnv() (*env, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	logger, err := logging.Open(cfg.Log)
	if err != nil {
		return nil, err
	}

	stateMgr, err := state.Open(state.WithLogger(logger.Logger))
	if err != nil {
		logger.Close()
		return nil, err
	}

	lib := library.New(stateMgr.DB())
	if err := lib.SeedSources(cfg.LibrarySources); err != nil {
		stateMgr.Close()
		logger.Close()
		return nil, fmt.Errorf("seed library sources: %w", err)
	}

	return &env{cfg: cfg, logger: logger, state: stateMgr, lib: lib}, nil
}

func (e *env) Close() {
	if err := e.state.Close(); err != nil {
		e.logger.Warn("close state", "err", err)
	}
	e.logger.Close()
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "crate",
		Short:         "Browse a music library from the terminal",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(_ *cobra.Command, _ []string) error {
			e, err := openEnv()
			if err != nil {
				return err
			}
			defer e.Close()
			return runTUI(e)
		},
	}

	root.AddCommand(
		NewScanCmd(openLibrary),
		NewViewsCmd(),
		NewRadioCmd(openLibrary),
	)
	return root
}

// libraryOpener opens the library and returns the function releasing it.
type libraryOpener func() (*library.Library, func(), error)

// openLibrary is the libraryOpener of the real commands. Subcommands open
// lazily so --help works without a config.
func openLibrary() (*library.Library, func(), error) {
	e, err := openEnv()
	if err != nil {
		return nil, nil, err
	}
	return e.lib, e.Close, nil
}

func runTUI(e *env) error {
	m, err := app.New(e.cfg, e.lib, e.state, app.WithLogger(e.logger.Logger))
	if err != nil {
		return err
	}
	e.logger.Info("starting", "sources", len(e.cfg.LibrarySources))
	_, err = tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
