package cmd

import (
	"github.com/spf13/cobra"

	"github.com/abhisek/hanzi/internal/app"
)

// runApp loads the dataset, opens the stores and launches the TUI.
func runApp(cmd *cobra.Command) error {
	e, err := setupEnv(cmd, envOptions{LogToFile: true})
	if err != nil {
		return err
	}
	defer e.close()

	e.log.Info("starting TUI")
	return app.Run(app.Options{Services: e.svc, Splash: true})
}
