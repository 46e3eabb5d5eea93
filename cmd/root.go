package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/abhisek/wellcheck/internal/catalog"
	"github.com/abhisek/wellcheck/internal/config"
	"github.com/abhisek/wellcheck/internal/logging"
)

var rootCmd = &cobra.Command{
	Use:   "wellcheck",
	Short: "Constitution self-assessments in the terminal",
	Long: "wellcheck scores constitution questionnaires such as Ayurveda doshas and TCM patterns.\n" +
		"Run without a subcommand to open the interactive assessment.",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("env-file", ".env", "Optional dotenv file with WELLCHECK_* settings")
	rootCmd.PersistentFlags().String("catalog-dir", "", "Directory of extra catalog YAML files (overrides WELLCHECK_CATALOG_DIR)")
	rootCmd.PersistentFlags().String("log-level", "", "Log level: debug, info, warn or error (overrides WELLCHECK_LOG_LEVEL)")
	rootCmd.Flags().String("catalog", "", "Open this catalog directly instead of the picker")

	rootCmd.AddCommand(catalogCmd)
	rootCmd.AddCommand(takeCmd)
	rootCmd.AddCommand(scoreCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(versionCmd)
}

// loadConfig reads the env file and environment, then applies flag
// overrides. Flags have the highest priority.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	envFile, _ := cmd.Flags().GetString("env-file")
	cfg, err := config.Load(envFile)
	if err != nil {
		return config.Config{}, fmt.Errorf("load config: %w", err)
	}
	if d, _ := cmd.Flags().GetString("catalog-dir"); d != "" {
		cfg.CatalogDir = d
	}
	if l, _ := cmd.Flags().GetString("log-level"); l != "" {
		cfg.Log.Level = l
	}
	return cfg, cfg.Validate()
}

// loadRegistry returns the built-in catalogs plus any found in cfg.CatalogDir.
func loadRegistry(cfg config.Config) (*catalog.Registry, error) {
	reg, err := catalog.Builtin()
	if err != nil {
		return nil, err
	}
	if cfg.CatalogDir != "" {
		if err := reg.LoadDir(cfg.CatalogDir); err != nil {
			return nil, fmt.Errorf("load catalogs from %s: %w", cfg.CatalogDir, err)
		}
	}
	return reg, nil
}

// cliLogger logs to the configured file, or to stderr.
func cliLogger(cfg config.Config) (*slog.Logger, func() error, error) {
	if cfg.Log.File != "" {
		return logging.OpenFile(cfg.Log.File, cfg.Log.Level, cfg.Log.Format)
	}
	return logging.New(cfg.Log.Level, cfg.Log.Format, os.Stderr), func() error { return nil }, nil
}

// setup is the common preamble of every command.
func setup(cmd *cobra.Command) (config.Config, *catalog.Registry, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return cfg, nil, err
	}
	reg, err := loadRegistry(cfg)
	return cfg, reg, err
}
