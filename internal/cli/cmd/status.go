package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/bnema/takemehome/internal/cli"
	"github.com/bnema/takemehome/internal/cli/styles"
	"github.com/bnema/takemehome/internal/domain/homepage"
	"github.com/bnema/takemehome/internal/infrastructure/config"
	"github.com/bnema/takemehome/internal/infrastructure/persistence/sqlite"
	"github.com/bnema/takemehome/internal/logging"
)

var (
	statusLive   bool
	statusCDPURL string
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the homepage, files and browser state",
	Long: `Show the stored homepage, where takemehome keeps its files and the
last run log.

With --live the running browser is scanned for a marked homepage tab.`,
	Args: cobra.NoArgs,
	RunE: runStatus,
}

func init() {
	statusCmd.Flags().BoolVar(&statusLive, "live", false, "inspect the running browser")
	statusCmd.Flags().StringVar(&statusCDPURL, "cdp-url", "", "DevTools endpoint (overrides browser.cdp_url)")
	rootCmd.AddCommand(statusCmd)
}

func runStatus(_ *cobra.Command, _ []string) error {
	app, err := requireApp()
	if err != nil {
		return err
	}
	ctx := app.Ctx()

	pref, err := app.ManageHomepageUC.Get(ctx)
	if err != nil {
		return err
	}

	report := styles.StatusReport{
		Homepage:     pref,
		ConfigFile:   app.Manager.GetConfigFile(),
		DatabaseFile: app.DB.Path(),
		Browser:      describeBrowser(app.Config),
	}

	db, err := app.DB.DB(ctx)
	if err != nil {
		return err
	}
	if report.SchemaVersion, err = sqlite.GetMigrationStatus(db); err != nil {
		return err
	}

	if path, ok := latestRunLog(app.Config.Logging.LogDir); ok {
		report.LastRunLog = path
		if info, err := os.Stat(path); err == nil {
			report.LastRunAt = info.ModTime()
		}
	}

	if statusLive || statusCDPURL != "" {
		report.Tracking = inspectLive(ctx, app)
	}

	fmt.Println(styles.NewStatusRenderer(app.Theme).Render(report))
	return nil
}

// inspectLive never fails the command; connection problems are reported
// inside the tracking section.
func inspectLive(ctx context.Context, app *cli.App) *styles.TrackingReport {
	ctx, cancel := context.WithTimeout(ctx, app.ActionTimeout())
	defer cancel()

	host, closeHost, err := cli.OpenHost(ctx, app, statusCDPURL)
	if err != nil {
		return &styles.TrackingReport{Err: err.Error()}
	}
	defer closeHost()

	tabs, err := host.QueryTabs(ctx)
	if err != nil {
		return &styles.TrackingReport{Err: err.Error()}
	}

	registry := homepage.NewRegistry(host)
	registry.ScanAndAdopt(ctx, tabs)
	state, tab := registry.Inspect(ctx)

	report := &styles.TrackingReport{State: state.String(), OpenTab: len(tabs)}
	if tab != nil {
		report.TabID = string(tab.ID)
		report.TabURL = homepage.FormatURL(tab.URL)
	}
	return report
}

func describeBrowser(cfg *config.Config) string {
	switch {
	case cfg.Browser.CDPURL != "":
		return "attach " + cfg.Browser.CDPURL
	case cfg.Browser.ExecPath != "":
		return "launch " + cfg.Browser.ExecPath
	default:
		return "launch (auto-detected Chromium)"
	}
}

func latestRunLog(dir string) (string, bool) {
	if dir == "" {
		return "", false
	}
	return logging.LatestRunLog(dir)
}
