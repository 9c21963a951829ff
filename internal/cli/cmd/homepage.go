package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var setCmd = &cobra.Command{
	Use:   "set <url>",
	Short: "Set the homepage",
	Long: `Store the homepage URL. Only http and https pages with a host are
accepted. A missing scheme defaults to https:// (http:// for local
addresses), so 'takemehome set example.com' stores https://example.com.`,
	Args: cobra.ExactArgs(1),
	RunE: runSet,
}

var getCmd = &cobra.Command{
	Use:   "get",
	Short: "Print the homepage",
	Args:  cobra.NoArgs,
	RunE:  runGet,
}

var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove the homepage",
	Long:  "Remove the homepage. New tabs are left alone until a homepage is set again.",
	Args:  cobra.NoArgs,
	RunE:  runClear,
}

func init() {
	rootCmd.AddCommand(setCmd, getCmd, clearCmd)
}

func runSet(_ *cobra.Command, args []string) error {
	app, err := requireApp()
	if err != nil {
		return err
	}

	out, err := app.ManageHomepageUC.Set(app.Ctx(), args[0])
	if err != nil {
		return err
	}
	fmt.Println(app.Theme.RenderHomepageChange("Homepage set", out.URL))
	return nil
}

// runGet prints the bare URL so it can be used in scripts.
func runGet(_ *cobra.Command, _ []string) error {
	app, err := requireApp()
	if err != nil {
		return err
	}

	url, err := app.ManageHomepageUC.Get(app.Ctx())
	if err != nil {
		return err
	}
	if url != "" {
		fmt.Println(url)
	}
	return nil
}

func runClear(_ *cobra.Command, _ []string) error {
	app, err := requireApp()
	if err != nil {
		return err
	}

	if err := app.ManageHomepageUC.Clear(app.Ctx()); err != nil {
		return err
	}
	fmt.Println(app.Theme.RenderHomepageChange("Homepage cleared", ""))
	return nil
}
