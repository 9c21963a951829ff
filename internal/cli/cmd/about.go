package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/takemehome/internal/cli/styles"
)

var aboutCmd = &cobra.Command{
	Use:   "about",
	Short: "Show version and build information",
	RunE:  runAbout,
}

func init() {
	rootCmd.AddCommand(aboutCmd)
}

func runAbout(_ *cobra.Command, _ []string) error {
	app, err := requireApp()
	if err != nil {
		return err
	}

	fmt.Println(styles.NewAboutRenderer(app.Theme).Render(app.BuildInfo))
	return nil
}
