package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/ngmaloney/charter-terminal/internal/catalog"
	"github.com/ngmaloney/charter-terminal/internal/cli"
	"github.com/ngmaloney/charter-terminal/internal/config"
	"github.com/ngmaloney/charter-terminal/internal/logging"
	"github.com/ngmaloney/charter-terminal/internal/sheets"
	"github.com/ngmaloney/charter-terminal/internal/ui"
)

func main() {
	cfg := config.Load()

	if err := logging.Init(cfg.AppEnv, cfg.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
	}
	defer logging.Close()

	newLoader := func() *catalog.Loader {
		return catalog.NewLoader(sheets.NewClientWithConfig(cfg.SheetsBaseURL, cfg.HTTPTimeout))
	}

	rootCmd := &cobra.Command{
		Use:   "charter-terminal",
		Short: "Browse charter fishing boats and upcoming trips",
		Long: `Charter Terminal reads the published boat directory and trip calendar
and lets you search upcoming trips by date, category, port, area and status.

Run without a subcommand to start the interactive terminal UI.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logging.Info("starting tui", "base_url", cfg.SheetsBaseURL)
			p := tea.NewProgram(ui.NewModel(newLoader()), tea.WithAltScreen())
			if _, err := p.Run(); err != nil {
				return fmt.Errorf("running application: %w", err)
			}
			return nil
		},
	}

	rootCmd.AddCommand(cli.TripsCmd(newLoader))
	rootCmd.AddCommand(cli.BoatsCmd(newLoader))

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		logging.Close()
		os.Exit(1)
	}
}
