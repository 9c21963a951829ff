package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/takemehome/internal/application/usecase"
	"github.com/bnema/takemehome/internal/cli"
)

var goHomeCDPURL string

var goHomeCmd = &cobra.Command{
	Use:     "go-home",
	Aliases: []string{"home"},
	Short:   "Focus the homepage tab, opening one if needed",
	Long: `Focus a tab showing the homepage, preferring the current window.
When no tab shows it, a new tab is opened.

This talks to a running browser, so set browser.cdp_url or pass --cdp-url.`,
	Args: cobra.NoArgs,
	RunE: runGoHome,
}

func init() {
	goHomeCmd.Flags().StringVar(&goHomeCDPURL, "cdp-url", "", "DevTools endpoint (overrides browser.cdp_url)")
	rootCmd.AddCommand(goHomeCmd)
}

func runGoHome(_ *cobra.Command, _ []string) error {
	app, err := requireApp()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(app.Ctx(), app.ActionTimeout())
	defer cancel()

	host, closeHost, err := cli.OpenHost(ctx, app, goHomeCDPURL)
	if err != nil {
		return err
	}
	defer closeHost()

	out, err := usecase.NewGoHomeUseCase(app.Homepage, host).Execute(ctx)
	if err != nil {
		return err
	}

	switch out.Action {
	case usecase.GoHomeNone:
		fmt.Println(app.Theme.WarningStyle.Render("No homepage set, run `takemehome set <url>`"))
	case usecase.GoHomeFocused:
		fmt.Println(app.Theme.RenderHomepageChange("Focused homepage tab", out.URL))
	case usecase.GoHomeCreated:
		fmt.Println(app.Theme.RenderHomepageChange("Opened homepage", out.URL))
	}
	return nil
}
