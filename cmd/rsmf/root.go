package main

import (
	"log/slog"

	"github.com/spf13/cobra"

	"rsmf-lab/internal"
)

func newRootCommand(log *slog.Logger, cfg internal.Config) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "rsmf",
		Short:         "Package chat transcripts into review-ready containers",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	rootCmd.AddCommand(newGenerateCommand(log, cfg))
	rootCmd.AddCommand(newInspectCommand(log))
	rootCmd.AddCommand(newVerifyCommand(log))
	rootCmd.AddCommand(newRunsCommand(log, cfg))
	rootCmd.AddCommand(newSearchCommand(log, cfg))

	return rootCmd
}
