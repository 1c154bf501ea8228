// Package cli implements the xlsheet command line.
package cli

import (
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/dshills/xlsheet/internal/app"
	"github.com/dshills/xlsheet/internal/config"
	"github.com/dshills/xlsheet/internal/renderer/backend"
)

// ErrNotTerminal is returned when stdin is not an interactive terminal.
var ErrNotTerminal = errors.New("xlsheet needs an interactive terminal")

// BuildInfo describes the binary.
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

// RootOptions holds the command's flags.
type RootOptions struct {
	ConfigPath string
	Rows       int
	Cols       int
	LogLevel   string
}

// RunFunc starts the sheet with a resolved configuration.
type RunFunc func(cmd *cobra.Command, cfg *config.Config) error

// NewRootCommand creates the xlsheet command. run starts the sheet; nil uses
// RunSheet.
func NewRootCommand(info BuildInfo, run RunFunc) *cobra.Command {
	opts := &RootOptions{}
	if run == nil {
		run = RunSheet
	}

	cmd := &cobra.Command{
		Use:   "xlsheet",
		Short: "A small spreadsheet in the terminal",
		Long: `xlsheet shows an editable grid of cells.

Click a cell to edit it; Enter, Tab, Escape or a click elsewhere locks it.
Right-click a cell to insert or delete its row or column. The Sort button
above a column orders it: numbers first, then text, then empty cells.
Ctrl+Q quits.

Example:
  xlsheet --rows 20 --cols 8
  xlsheet --config ~/.config/xlsheet.toml`,
		Version:       info.Version,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := resolveConfig(cmd, opts)
			if err != nil {
				return err
			}
			return run(cmd, cfg)
		},
	}
	cmd.SetVersionTemplate(fmt.Sprintf("xlsheet %s (commit %s, built %s)\n", info.Version, info.Commit, info.Date))

	cmd.Flags().StringVarP(&opts.ConfigPath, "config", "c", "", "path to a TOML or YAML config file")
	cmd.Flags().IntVar(&opts.Rows, "rows", 0, "initial row count (overrides config)")
	cmd.Flags().IntVar(&opts.Cols, "cols", 0, "initial column count (overrides config)")
	cmd.Flags().StringVar(&opts.LogLevel, "log-level", "", "log level (debug|info|warn|error)")

	return cmd
}

// resolveConfig loads the config file and environment, then applies flags
// the user set explicitly.
func resolveConfig(cmd *cobra.Command, opts *RootOptions) (*config.Config, error) {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	flags := cmd.Flags()
	if flags.Changed("rows") {
		cfg.Sheet.Rows = opts.Rows
	}
	if flags.Changed("cols") {
		cfg.Sheet.Cols = opts.Cols
	}
	if flags.Changed("log-level") {
		cfg.Logging.Level = opts.LogLevel
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// RunSheet runs the sheet on the controlling terminal until the user quits
// or the process receives SIGINT or SIGTERM.
func RunSheet(_ *cobra.Command, cfg *config.Config) error {
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return ErrNotTerminal
	}

	logger, closeLog, err := app.OpenLogger(cfg.Logging)
	if err != nil {
		return err
	}
	defer func() { _ = closeLog() }()

	screen, err := backend.NewTerminal()
	if err != nil {
		return fmt.Errorf("create terminal: %w", err)
	}

	ctrl, err := app.New(app.Options{Backend: screen, Config: cfg, Logger: logger})
	if err != nil {
		return err
	}

	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(signals)
	go func() {
		<-signals
		ctrl.Quit()
	}()

	logger.Info("starting %d x %d sheet", cfg.Sheet.Rows, cfg.Sheet.Cols)
	return ctrl.Run()
}
