package cmd

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"sprint-burndown/config"
	"sprint-burndown/web"
)

var (
	servePort    string
	serveRefresh string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the burndown series and chart files over HTTP",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadConfig(configPath)
		if err != nil {
			return fmt.Errorf("loading configuration: %w", err)
		}
		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("invalid configuration: %w", err)
		}

		server := web.NewServer(cfg)

		if serveRefresh != "" {
			if err := server.Regenerate(); err != nil {
				logrus.WithError(err).Warn("Initial chart render failed")
			}
			if err := server.StartRefresh(serveRefresh); err != nil {
				return fmt.Errorf("invalid refresh schedule: %w", err)
			}
			defer server.Stop()
			logrus.Infof("Refreshing chart files on schedule %q", serveRefresh)
		}

		return server.Start(servePort)
	},
}

func init() {
	serveCmd.Flags().StringVarP(&servePort, "port", "p", "8080", "port to listen on")
	serveCmd.Flags().StringVar(&serveRefresh, "refresh", "",
		`cron schedule for re-rendering the chart files, e.g. "@every 1h"`)
	rootCmd.AddCommand(serveCmd)
}
