package cmd

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:   "sprint-burndown",
	Short: "Sprint burndown charts from GitHub Projects",
	Long: `sprint-burndown fetches sprint items from a GitHub Projects (v2) board,
aggregates remaining story points per day and renders a burndown chart
(ideal vs. actual) as PNG and HTML.

Running without a subcommand is equivalent to "sprint-burndown generate".`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		setupLogging()
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runGenerate()
	},
}

// Execute runs the root command. Any error has already been printed as
// a diagnostic; the process exits non-zero.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "config.json",
		"path to the configuration file (JSON or YAML)")
}

func setupLogging() {
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	level, err := logrus.ParseLevel(os.Getenv("LOG_LEVEL"))
	if err != nil {
		level = logrus.InfoLevel
	}
	logrus.SetLevel(level)
}
