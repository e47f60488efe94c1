package cmd

import (
	"time"

	"github.com/jsphweid/synchro/api"
	"github.com/jsphweid/synchro/constants"
	"github.com/jsphweid/synchro/db"
	"github.com/jsphweid/synchro/session"
	"github.com/spf13/cobra"
)

var (
	serveAddr     string
	serveAutosave time.Duration
)

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", constants.GetAddr(), "listen address")
	serveCmd.Flags().DurationVar(&serveAutosave, "autosave", 2*time.Second, "delay before a saved chart is written back after an edit (0 disables)")
	rootCmd.AddCommand(serveCmd)
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serves the editor API",
	Long:  `Serves the editor API used by the web page. Charts are kept in CHART_DIR, or in DynamoDB when DYNAMO_ENDPOINT is set.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return serve(serveAddr, serveAutosave)
	},
}

func serve(addr string, autosave time.Duration) error {
	logger := newLogger()
	lib, err := db.Open()
	if err != nil {
		return err
	}
	registry := session.NewRegistry(lib, autosave, logger)
	return api.NewServer(registry, constants.GetAllowedOrigins(), logger).ListenAndServe(addr)
}
