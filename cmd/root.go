package cmd

import (
	"log/slog"
	"os"

	"github.com/jsphweid/synchro/constants"
	"github.com/jsphweid/synchro/logging"
	"github.com/spf13/cobra"
)

var logLevel string

var rootCmd = &cobra.Command{
	Use:   "synchro",
	Short: "Chart editor for the Synchro rhythm game",
	Long: `Builds tap/hold note charts for the Synchro device: an HTTP API for the
web editor, a terminal editor, MIDI import and a chart library.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", constants.GetLogLevel(), "debug, info, warn or error")
}

func newLogger() *slog.Logger {
	return logging.New(os.Stderr, logging.LevelFromString(logLevel))
}

func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}
