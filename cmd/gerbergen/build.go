package main

import (
	"github.com/spf13/cobra"
)

var buildCmd = &cobra.Command{
	Use:   "build <job.yaml>",
	Short: "Generate a Gerber file from a YAML job description",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		job, err := LoadJob(args[0])
		if err != nil {
			return err
		}
		commands, err := job.Commands()
		if err != nil {
			return err
		}
		return emit(cmd, commands)
	},
}
