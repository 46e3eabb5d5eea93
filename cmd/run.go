package cmd

import (
	"github.com/spf13/cobra"

	"github.com/abhisek/wellcheck/internal/app"
	"github.com/abhisek/wellcheck/internal/logging"
)

// runApp loads catalogs and launches the TUI. Logs go to WELLCHECK_LOG_FILE
// when set and are discarded otherwise, since the TUI owns the terminal.
func runApp(cmd *cobra.Command) error {
	cfg, reg, err := setup(cmd)
	if err != nil {
		return err
	}

	logger := logging.Discard()
	if cfg.Log.File != "" {
		l, closeLog, err := logging.OpenFile(cfg.Log.File, cfg.Log.Level, cfg.Log.Format)
		if err != nil {
			return err
		}
		defer closeLog()
		logger = l
	}

	catalogID, _ := cmd.Flags().GetString("catalog")
	return app.Run(app.Options{
		Registry:  reg,
		Logger:    logger,
		CatalogID: catalogID,
	})
}
