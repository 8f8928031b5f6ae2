package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

var historyLimit int

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Zeigt den Plot-Verlauf",
	Long: `Zeigt die zuletzt gezeichneten Gleichungen mit ihren
Ansichtsparametern, neueste zuerst.`,
	RunE: runHistoryList,
}

var historyClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Löscht den Plot-Verlauf",
	RunE:  runHistoryClear,
}

func init() {
	rootCmd.AddCommand(historyCmd)
	historyCmd.AddCommand(historyClearCmd)

	historyCmd.Flags().IntVar(&historyLimit, "limit", 20, "Maximale Anzahl Einträge")
}

func runHistoryList(cmd *cobra.Command, args []string) error {
	history := openHistory()
	if history == nil {
		fmt.Println("Plot-Verlauf ist deaktiviert oder nicht verfügbar.")
		return nil
	}
	defer history.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	entries, err := history.List(ctx, historyLimit)
	if err != nil {
		printError("Verlauf konnte nicht gelesen werden", err)
		return err
	}

	if len(entries) == 0 {
		fmt.Println("Noch keine Plots im Verlauf.")
		return nil
	}

	fmt.Printf("%-20s %-40s %8s %8s %8s\n", "Zeitpunkt", "Gleichung", "Zoom", "X-Off", "Y-Off")
	for _, e := range entries {
		equation := e.Equation
		if len(equation) > 40 {
			equation = equation[:37] + "..."
		}
		fmt.Printf("%-20s %-40s %8.2f %8.2f %8.2f\n",
			e.PlottedAt.Format("2006-01-02 15:04:05"),
			equation, e.Zoom, e.XOffset, e.YOffset)
	}

	return nil
}

func runHistoryClear(cmd *cobra.Command, args []string) error {
	history := openHistory()
	if history == nil {
		fmt.Println("Plot-Verlauf ist deaktiviert oder nicht verfügbar.")
		return nil
	}
	defer history.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := history.Clear(ctx); err != nil {
		printError("Verlauf konnte nicht gelöscht werden", err)
		return err
	}

	fmt.Println("Plot-Verlauf gelöscht.")
	return nil
}
