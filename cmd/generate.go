package cmd

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"sprint-burndown/burndown"
	"sprint-burndown/chart"
	"sprint-burndown/config"
	"sprint-burndown/github"
	"sprint-burndown/report"
)

var (
	exportCSV  string
	exportJSON string
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Fetch project data and render the burndown chart",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runGenerate()
	},
}

func init() {
	generateCmd.Flags().StringVar(&exportCSV, "csv", "", "also export the daily series to a CSV file")
	generateCmd.Flags().StringVar(&exportJSON, "json", "", "also export the full result to a JSON file")
	rootCmd.AddCommand(generateCmd)
}

func runGenerate() error {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return fmt.Errorf("loading configuration: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	logrus.WithFields(logrus.Fields{
		"owner":   cfg.Owner,
		"project": cfg.ProjectNumber,
		"sprint":  cfg.SprintLabel,
	}).Info("Fetching project data")

	client := github.NewClient(cfg)
	project, err := client.FetchProject()
	if err != nil {
		return fmt.Errorf("fetching project data: %w", err)
	}
	logrus.Infof("Fetched %d items from project %q", len(project.Items), project.Title)

	start, end, err := cfg.SprintDates()
	if err != nil {
		return err
	}
	window := burndown.Window{
		Start: start,
		End:   end,
		Label: cfg.SprintLabel,
		Field: cfg.SprintField,
	}

	result, err := burndown.Compute(project.Items, window, cfg.PlannedPoints, cfg.PointsField)
	if err != nil {
		return err
	}
	result.Project = project.Title
	for _, warning := range result.Warnings {
		logrus.Warn(warning)
	}

	report.PrintSummary(result)

	if err := chart.Render(result, cfg.ChartType, cfg.SavePath); err != nil {
		return err
	}
	if cfg.ChartType != "html" {
		logrus.Infof("Saved chart to %s", cfg.SavePath)
	}
	if cfg.ChartType != "png" {
		logrus.Infof("Saved interactive chart to %s", chart.HTMLPath(cfg.SavePath))
	}

	if exportCSV != "" {
		if err := report.ExportToCSV(result, exportCSV); err != nil {
			return fmt.Errorf("exporting CSV: %w", err)
		}
		logrus.Infof("Exported series to %s", exportCSV)
	}
	if exportJSON != "" {
		if err := report.ExportToJSON(result, exportJSON); err != nil {
			return fmt.Errorf("exporting JSON: %w", err)
		}
		logrus.Infof("Exported result to %s", exportJSON)
	}

	return nil
}
