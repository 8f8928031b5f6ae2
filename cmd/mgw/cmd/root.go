package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/msto63/mGW/internal/config"
	"github.com/msto63/mGW/internal/logging"
	"github.com/msto63/mGW/internal/store"
)

var (
	cfgFile   string
	verbose   bool
	appConfig config.Config
)

var rootCmd = &cobra.Command{
	Use:   "mgw",
	Short: "meinGRAPHWERK - Funktionsplotter fürs Terminal",
	Long: `meinGRAPHWERK zeichnet implizite Gleichungen in x und y als
Zeichenraster direkt ins Terminal.

Beispiele:
  mgw plot "y=sin(x)"
  mgw plot "x^2+y^2=9" --zoom 0.5
  mgw tui
  mgw history`,
	PersistentPreRunE: initApp,
	SilenceUsage:      true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Config-Datei (default: ./configs/config.toml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose Output")
}

// initApp loads the configuration and wires the default logger
func initApp(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return err
	}
	appConfig = cfg

	level := logging.ParseLevel(cfg.Log.Level)
	if verbose {
		level = logging.LevelDebug
	}
	logging.SetDefault(logging.NewWithConfig(logging.Config{
		Level:  level,
		Format: cfg.Log.Format,
		Name:   "mgw",
	}))

	return nil
}

// openHistory opens the plot history store, or returns nil when history
// is disabled or unavailable. History is best-effort everywhere.
func openHistory() store.HistoryStore {
	if !appConfig.History.Enabled {
		return nil
	}

	s, err := store.NewSQLiteHistoryStore(store.SQLiteHistoryConfig{
		Path: appConfig.History.Path,
	})
	if err != nil {
		logging.Warn("Plot-Verlauf nicht verfügbar", logging.Fields{"error": err.Error()})
		return nil
	}
	return s
}

func printError(msg string, err error) {
	fmt.Fprintf(os.Stderr, "Fehler: %s: %v\n", msg, err)
}
