// Package cmd provides Cobra CLI commands for takemehome.
package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/bnema/takemehome/internal/cli"
	"github.com/bnema/takemehome/internal/domain/build"
)

// annotationNoApp marks commands that run without loading config or the database.
const annotationNoApp = "no-app"

var (
	app       *cli.App
	buildInfo build.Info
	globals   cli.Options
	rootCmd   = &cobra.Command{
		Use:   "takemehome",
		Short: "Send every new tab to one homepage tab",
		Long: `takemehome keeps a single homepage tab in your Chromium browser.

New tabs are redirected to your homepage, or closed in favour of the
homepage tab when one is already open. Links clicked on the homepage
open in new tabs so the homepage stays put.

Set a homepage with 'takemehome set <url>', then start the coordinator
with 'takemehome run'. Settings live in config.toml under your XDG
config directory.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Name() == "help" || cmd.Annotations[annotationNoApp] == "true" {
				return nil
			}

			if err := loadDotEnv(); err != nil {
				return err
			}

			var err error
			app, err = cli.NewApp(globals)
			if err != nil {
				return fmt.Errorf("initialize app: %w", err)
			}
			app.BuildInfo = buildInfo
			return nil
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			if app != nil {
				_ = app.Close()
			}
		},
	}
)

func init() {
	rootCmd.PersistentFlags().StringVarP(&globals.ConfigFile, "config", "c", "", "config file (default $XDG_CONFIG_HOME/takemehome/config.toml)")
	rootCmd.PersistentFlags().StringVar(&globals.LogLevel, "log-level", "", "override logging.level (trace, debug, info, warn, error)")
}

// loadDotEnv reads ./.env without overriding variables already set.
func loadDotEnv() error {
	err := godotenv.Load()
	if err == nil || errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return fmt.Errorf("load .env: %w", err)
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// GetApp returns the initialized app (for use by subcommands).
func GetApp() *cli.App {
	return app
}

// SetBuildInfo sets the build information (called from main.go before Execute).
func SetBuildInfo(info build.Info) {
	buildInfo = info
}

func requireApp() (*cli.App, error) {
	if app == nil {
		return nil, errors.New("app not initialized")
	}
	return app, nil
}
