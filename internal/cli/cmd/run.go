package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/bnema/takemehome/internal/application/usecase"
	"github.com/bnema/takemehome/internal/cli"
	"github.com/bnema/takemehome/internal/cli/model"
	"github.com/bnema/takemehome/internal/logging"
)

const monitorBuffer = 64

var runTUI bool

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Coordinate browser tabs until interrupted",
	Long: `Connect to the browser and keep a single homepage tab.

Without browser.cdp_url a browser is launched with its own profile.
With --tui a live monitor shows every redirect, focus and recovery;
logs then go to a run log file under logging.log_dir.

Config changes are picked up without a restart.`,
	RunE: runRun,
}

func init() {
	runCmd.Flags().BoolVar(&runTUI, "tui", false, "show a live event monitor")
	rootCmd.AddCommand(runCmd)
}

func runRun(_ *cobra.Command, _ []string) error {
	app, err := requireApp()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(app.Ctx(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger, cleanup, err := daemonLogger(app, runTUI)
	if err != nil {
		app.Logger().Warn().Err(err).Msg("run log unavailable, logging to stderr")
	}
	defer cleanup()
	ctx = logging.WithContext(ctx, logger)

	if !runTUI {
		return cli.RunDaemon(ctx, app, cli.DaemonOptions{Watch: true})
	}
	return runWithMonitor(ctx, app)
}

// daemonLogger builds the long-running logger. It logs at trace and leaves
// filtering to the global level so config reloads can change it live.
func daemonLogger(app *cli.App, tui bool) (zerolog.Logger, func(), error) {
	cfg := app.Config.Logging
	zerolog.SetGlobalLevel(logging.ParseLevel(cfg.Level))

	return logging.NewWithFile(logging.Config{
		Level:      zerolog.TraceLevel,
		Format:     cfg.Format,
		TimeFormat: "15:04:05",
	}, logging.FileConfig{
		Enabled:       cfg.EnableFileLog || tui,
		Dir:           cfg.LogDir,
		Filename:      logging.RunLogFilename(logging.NewRunID()),
		MaxSizeMB:     cfg.MaxSizeMB,
		MaxBackups:    cfg.MaxBackups,
		WriteToStderr: !tui,
	})
}

func runWithMonitor(ctx context.Context, app *cli.App) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	pref, err := app.ManageHomepageUC.Get(ctx)
	if err != nil {
		return err
	}

	events := make(chan usecase.Event, monitorBuffer)
	monitor := model.NewMonitorModel(app.Theme, pref, events)
	p := tea.NewProgram(monitor, tea.WithAltScreen(), tea.WithContext(ctx))

	daemonErr := make(chan error, 1)
	go func() {
		err := cli.RunDaemon(ctx, app, cli.DaemonOptions{Events: events, Watch: true})
		if err != nil {
			p.Send(model.DaemonErrMsg{Err: err})
		}
		close(events)
		daemonErr <- err
	}()

	_, runErr := p.Run()
	cancel()
	err = <-daemonErr

	if runErr != nil && !errors.Is(runErr, tea.ErrProgramKilled) {
		return fmt.Errorf("monitor: %w", runErr)
	}
	return err
}
