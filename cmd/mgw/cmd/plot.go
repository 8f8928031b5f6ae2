package cmd

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/msto63/mGW/internal/expr"
	"github.com/msto63/mGW/internal/logging"
	"github.com/msto63/mGW/internal/plot"
	"github.com/msto63/mGW/internal/store"
)

var (
	plotZoom    float64
	plotXOffset float64
	plotYOffset float64
)

var plotCmd = &cobra.Command{
	Use:   "plot [Gleichung]",
	Short: "Zeichnet eine Gleichung einmalig",
	Long: `Zeichnet eine Gleichung in x und y einmalig als Zeichenraster.

Unterstützt: +, -, *, /, ^, sin, cos, tan, log, ln, exp sowie Klammern
und höchstens ein '='. Ohne '=' wird die Gleichung als "Ausdruck = 0"
gelesen.

Beispiele:
  mgw plot "y=x^2"
  mgw plot "y=sin(x)" --zoom 1.5 --xoff 2`,
	Args: cobra.ExactArgs(1),
	RunE: runPlot,
}

func init() {
	rootCmd.AddCommand(plotCmd)

	plotCmd.Flags().Float64Var(&plotZoom, "zoom", 0, "Zoomfaktor (0 = Default aus Konfiguration)")
	plotCmd.Flags().Float64Var(&plotXOffset, "xoff", 0, "Verschiebung in x-Richtung")
	plotCmd.Flags().Float64Var(&plotYOffset, "yoff", 0, "Verschiebung in y-Richtung")
}

func runPlot(cmd *cobra.Command, args []string) error {
	equation := strings.TrimSpace(args[0])
	if equation == "" {
		return fmt.Errorf("Gleichung darf nicht leer sein")
	}
	if len(equation) > expr.MaxEquationLength {
		equation = equation[:expr.MaxEquationLength]
	}

	settings := plot.Settings{
		Zoom:    plotZoom,
		XOffset: plotXOffset,
		YOffset: plotYOffset,
	}
	if settings.Zoom <= 0 {
		settings.Zoom = appConfig.Plot.DefaultZoom
	}

	logging.Debug("rendering plot", logging.Fields{
		"equation": equation,
		"zoom":     settings.Zoom,
	})

	g := plot.Render(equation, settings)

	fmt.Println()
	fmt.Print(g.String())
	fmt.Printf("\nPlot (Zoom: %.2f, Offset: %.2f, %.2f)\n",
		settings.Zoom, settings.XOffset, settings.YOffset)

	recordPlot(equation, settings)
	return nil
}

// recordPlot stores the render in the history, best-effort
func recordPlot(equation string, settings plot.Settings) {
	history := openHistory()
	if history == nil {
		return
	}
	defer history.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	err := history.Record(ctx, &store.Entry{
		Equation: equation,
		Zoom:     settings.Zoom,
		XOffset:  settings.XOffset,
		YOffset:  settings.YOffset,
	})
	if err != nil {
		logging.Warn("Plot-Verlauf konnte nicht gespeichert werden",
			logging.Fields{"error": err.Error()})
	}
}
