package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/fractui/internal/cli/styles"
	"github.com/bnema/fractui/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect configuration",
	Long: `Show where fractui reads its configuration and writes its logs, print the
effective settings, or print the JSON Schema of the config file.`,
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Show config and log file locations",
	RunE:  runConfigPath,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the effective configuration",
	Long: `Print every setting after defaults, the config file and FRACTUI_* environment
variables were merged. An invalid config file is reported and the defaults
are shown instead.`,
	RunE: runConfigShow,
}

var configSchemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the JSON Schema of the config file",
	Long: `Print a JSON Schema describing the config file. Editors can use it for
completion and validation, for example by adding
"$schema": "<path to saved schema>" to config.json.`,
	Args: cobra.NoArgs,
	RunE: runConfigSchema,
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configPathCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSchemaCmd)
}

func runConfigPath(cmd *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	logFile := app.LogFile
	if logFile == "" {
		logFile = "(file logging disabled)"
	}

	renderer := styles.NewConfigRenderer(app.Theme)
	fmt.Fprintln(cmd.OutOrStdout(), renderer.RenderPaths(config.FileUsed(), logFile))
	return nil
}

func runConfigShow(cmd *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	renderer := styles.NewConfigRenderer(app.Theme)
	out := cmd.OutOrStdout()
	if app.ConfigErr != nil {
		fmt.Fprintln(out, renderer.RenderError(app.ConfigErr))
	}
	fmt.Fprintln(out, renderer.RenderSettings(app.Config))
	return nil
}

func runConfigSchema(cmd *cobra.Command, _ []string) error {
	data, err := config.Schema()
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return nil
}
