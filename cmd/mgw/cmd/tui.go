package cmd

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/msto63/mGW/internal/logging"
	"github.com/msto63/mGW/internal/tui"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Startet die interaktive TUI",
	Long: `Startet die interaktive Terminal-Oberfläche von meinGRAPHWERK.

Navigation:
  Enter        - Gleichung zeichnen
  + / -        - Zoomen
  Pfeiltasten  - Ansicht verschieben
  0            - Ansicht zurücksetzen
  n            - Neue Gleichung
  q / Ctrl+C   - Beenden`,
	RunE: runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(cmd *cobra.Command, args []string) error {
	history := openHistory()
	if history != nil {
		defer history.Close()
	}

	model := tui.NewModel(appConfig.Plot.DefaultZoom, history, logging.GetDefault())

	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		printError("TUI konnte nicht gestartet werden", err)
		return err
	}

	return nil
}
