package cmd

import (
	"fmt"

	"codebundle/pkg/respfile"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// newCrspCmd creates the crsp subcommand, which interactively records bundle
// options into a response file.
func newCrspCmd(logger *zap.Logger) *cobra.Command {
	return &cobra.Command{
		Use:   "crsp",
		Short: "Record bundle options into a reusable response file",
		Long: `Crsp prompts for the same options the bundle command accepts and writes
them, one flag per line, into a response file. Replay the recorded options
with: codebundle bundle @<file>`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := respfile.Record(cmd.InOrStdin(), cmd.OutOrStdout(), appFs, logger); err != nil {
				fmt.Fprintln(cmd.OutOrStdout(), err)
				logger.Error("Failed to record response file", zap.Error(err))
			}
			return nil
		},
	}
}
