package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/bnema/takemehome/internal/cli/styles"
	"github.com/bnema/takemehome/internal/infrastructure/config"
)

var (
	schemaWrite bool
	initForce   bool
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage the configuration file",
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the config file path",
	Args:  cobra.NoArgs,
	RunE: func(_ *cobra.Command, _ []string) error {
		app, err := requireApp()
		if err != nil {
			return err
		}
		fmt.Println(app.Manager.GetConfigFile())
		return nil
	},
}

var configSchemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the JSON schema for config.toml",
	Long: `Print the JSON schema for config.toml. With --write the schema is
saved next to the config file, where editors with TOML schema support
pick it up.`,
	Args:        cobra.NoArgs,
	Annotations: map[string]string{annotationNoApp: "true"},
	RunE:        runConfigSchema,
}

var configInitCmd = &cobra.Command{
	Use:         "init",
	Short:       "Write a config file with default values",
	Args:        cobra.NoArgs,
	Annotations: map[string]string{annotationNoApp: "true"},
	RunE:        runConfigInit,
}

func init() {
	configSchemaCmd.Flags().BoolVarP(&schemaWrite, "write", "w", false, "write the schema next to the config file")
	configInitCmd.Flags().BoolVarP(&initForce, "force", "f", false, "overwrite an existing config file")

	configCmd.AddCommand(configPathCmd, configSchemaCmd, configInitCmd)
	rootCmd.AddCommand(configCmd)
}

func runConfigSchema(_ *cobra.Command, _ []string) error {
	if !schemaWrite {
		data, err := config.GenerateSchema()
		if err != nil {
			return err
		}
		fmt.Println(string(data))
		return nil
	}

	path, err := targetConfigFile()
	if err != nil {
		return err
	}
	schemaPath := filepath.Join(filepath.Dir(path), config.SchemaFileName)
	if err := config.WriteSchemaFile(schemaPath); err != nil {
		return err
	}
	fmt.Println(styles.NewTheme().RenderHomepageChange("Schema written", schemaPath))
	return nil
}

func runConfigInit(_ *cobra.Command, _ []string) error {
	path, err := targetConfigFile()
	if err != nil {
		return err
	}

	if _, err := os.Stat(path); err == nil && !initForce {
		return fmt.Errorf("%s already exists, use --force to overwrite", path)
	} else if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	if err := config.WriteConfigOrdered(config.DefaultConfig(), path); err != nil {
		return err
	}
	fmt.Println(styles.NewTheme().RenderHomepageChange("Config written", path))
	return nil
}

func targetConfigFile() (string, error) {
	if globals.ConfigFile != "" {
		return globals.ConfigFile, nil
	}
	return config.GetConfigFile()
}
