package cmd

import (
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"sprint-burndown/config"
)

var initOutput string

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a sample configuration file",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := config.CreateSampleConfig(initOutput); err != nil {
			return err
		}
		logrus.Infof("Wrote sample configuration to %s", initOutput)
		return nil
	},
}

func init() {
	initCmd.Flags().StringVarP(&initOutput, "output", "o", "config.sample.json", "sample file path")
	rootCmd.AddCommand(initCmd)
}
