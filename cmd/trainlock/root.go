package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"trainlock/internal/config"
	"trainlock/internal/gist"
	"trainlock/internal/models"
	"trainlock/internal/store"
	"trainlock/internal/syncsvc"
	"trainlock/internal/tui"
	"trainlock/internal/util"
)

var (
	version    = "dev"
	configPath string
	verbose    bool
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "trainlock",
	Short: "Trainlock - A locked-in training plan with offline-first sync",
	Long: `Trainlock generates a deterministic multi-week training schedule and keeps
it in sync across machines through a GitHub gist. Progress is tracked from an
interactive dashboard or from the command line.`,
	Version: version,
	RunE: func(cmd *cobra.Command, args []string) error {
		// Default to the dashboard when no subcommand is provided.
		return runTUI(cmd, args)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Path to configuration file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// setup loads the configuration, builds the logger, and opens the store.
func setup(ctx context.Context) (*config.Config, store.Store, zerolog.Logger, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, nil, zerolog.Nop(), err
	}
	level := cfg.Logging.Level
	if verbose {
		level = "debug"
	}
	logger := util.NewLogger(level)

	if err := os.MkdirAll(cfg.DataDir, 0o755); err != nil {
		return nil, nil, logger, fmt.Errorf("create data dir: %w", err)
	}
	st, err := store.Open(ctx, cfg.DBPath())
	if err != nil {
		return nil, nil, logger, err
	}
	return cfg, st, logger, nil
}

// newSyncService wires the gist transport. Nil when no gist is configured.
func newSyncService(cfg *config.Config, st store.Store, logger zerolog.Logger) *syncsvc.Service {
	if !cfg.SyncConfigured() {
		return nil
	}
	return syncsvc.New(st, gist.NewClient(cfg.Gist, logger), logger)
}

// findSession resolves an argument that is either a session id, an id prefix,
// or a date. A date must match exactly one session.
func findSession(sessions []models.Session, arg string) (models.Session, error) {
	var matches []models.Session
	for _, s := range sessions {
		if s.ID == arg {
			return s, nil
		}
		if s.Date == arg || strings.HasPrefix(s.ID, arg) {
			matches = append(matches, s)
		}
	}
	switch len(matches) {
	case 0:
		return models.Session{}, fmt.Errorf("no session matches %q", arg)
	case 1:
		return matches[0], nil
	}
	return models.Session{}, fmt.Errorf("%q matches %d sessions, use the id", arg, len(matches))
}

func runTUI(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	cfg, st, logger, err := setup(ctx)
	if err != nil {
		return err
	}
	defer st.Close()

	var syncer tui.Reconciler
	if svc := newSyncService(cfg, st, logger); svc != nil {
		syncer = svc
	}
	program := tea.NewProgram(tui.NewModel(st, syncer), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("run dashboard: %w", err)
	}
	return nil
}

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Open the interactive dashboard",
	RunE:  runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}
