// Package cli contains the Cobra command tree for habitr.
package cli

import (
	"fmt"
	"io"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"
	"github.com/sadopc/habitr/internal/analytics"
	"github.com/sadopc/habitr/internal/config"
	"github.com/sadopc/habitr/internal/logging"
	"github.com/sadopc/habitr/internal/output"
	"github.com/sadopc/habitr/internal/store"
	"github.com/sadopc/habitr/internal/tui"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var appVersion = "dev"

// SetVersion sets the application version (called from main with ldflags value).
func SetVersion(v string) {
	appVersion = v
}

// rootOptions holds the persistent flags shared by every subcommand.
type rootOptions struct {
	configFile string
	dbPath     string
	noColor    bool
	verbose    bool

	now func() time.Time
}

// env is everything a command needs once flags and config are resolved.
type env struct {
	cfg      *config.Config
	log      *zap.Logger
	store    *store.Store
	analyzer *analytics.Analyzer
}

func (e *env) Close() {
	e.store.Close()
	_ = e.log.Sync()
}

// open loads config, builds the logger and opens the database. Flags win
// over the config file.
func (o *rootOptions) open(cmd *cobra.Command) (*env, error) {
	cfg, err := config.Load(o.configFile)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	if o.dbPath != "" {
		cfg.DBPath = o.dbPath
	}

	if o.noColor || cfg.NoColor {
		output.SetNoColor(true)
		tui.SetNoColor(true)
	}

	log, err := logging.New(cfg.LogPath, cfg.LogLevel, o.verbose)
	if err != nil {
		return nil, fmt.Errorf("opening log: %w", err)
	}

	s, err := store.New(cfg.DBPath, store.WithLogger(log))
	if err != nil {
		_ = log.Sync()
		return nil, fmt.Errorf("opening database: %w", err)
	}

	log.Debug("command start",
		zap.String("command", cmd.CommandPath()),
		zap.String("db_path", cfg.DBPath),
	)

	return &env{
		cfg:      cfg,
		log:      log,
		store:    s,
		analyzer: analytics.New(s, analytics.WithClock(o.now)),
	}, nil
}

// NewRootCmd builds the full command tree.
func NewRootCmd() *cobra.Command {
	return newRootCmd(time.Now)
}

func newRootCmd(now func() time.Time) *cobra.Command {
	o := &rootOptions{now: now}

	cmd := &cobra.Command{
		Use:   "habitr",
		Short: "Track habits and streaks from the terminal",
		Long: `habitr records recurring habits and their completions in a local SQLite
database and tracks streaks per day, week or month.

Run 'habitr' with no arguments in a terminal to open the interactive view.
When output is not a terminal the habit table is printed instead.`,
		Version:       appVersion,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRoot(cmd, o)
		},
	}

	cmd.PersistentFlags().StringVar(&o.configFile, "config", "", "Config file path (default: ~/.config/habitr/config.yaml)")
	cmd.PersistentFlags().StringVar(&o.dbPath, "db", "", "Database path (overrides db_path)")
	cmd.PersistentFlags().BoolVar(&o.noColor, "no-color", false, "Disable colored output")
	cmd.PersistentFlags().BoolVar(&o.verbose, "verbose", false, "Log at debug level")

	cmd.AddCommand(
		newAddCmd(o),
		newCheckCmd(o),
		newListCmd(o),
		newStreakCmd(o),
		newStatsCmd(o),
		newExportCmd(o),
	)
	return cmd
}

// Execute is the entry point called from main.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func runRoot(cmd *cobra.Command, o *rootOptions) error {
	e, err := o.open(cmd)
	if err != nil {
		return err
	}
	defer e.Close()

	if !isTerminal(cmd.OutOrStdout()) {
		output.SetNoColor(true)
		return printHabitTable(cmd.OutOrStdout(), e, nil)
	}

	app := tui.NewApp(e.store, e.analyzer,
		tui.WithLogger(e.log),
		tui.WithExportDir(e.cfg.ExportDir),
		tui.WithClock(o.now),
	)
	e.log.Info("tui start")
	if _, err := tea.NewProgram(app, tea.WithAltScreen()).Run(); err != nil {
		return fmt.Errorf("running tui: %w", err)
	}
	return nil
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
