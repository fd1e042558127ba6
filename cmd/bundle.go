package cmd

import (
	"fmt"
	"os"
	"strings"

	"codebundle/pkg/bundle"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// newBundleCmd creates the bundle subcommand. The flag tokens match the
// line format produced by the crsp recorder, so a recorded response file can
// be replayed as `codebundle bundle @file`.
func newBundleCmd(logger *zap.Logger) *cobra.Command {
	var opts bundle.Options

	cmd := &cobra.Command{
		Use:   "bundle",
		Short: "Concatenate source files into a single output file",
		Long: `Bundle walks the current working directory, selects files whose extension
maps to one of the requested languages (` + strings.Join(bundle.KnownLanguages(), ", ") + `,
or the wildcard "all"), and concatenates them into the output file.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			root, err := os.Getwd()
			if err != nil {
				fmt.Fprintln(cmd.OutOrStdout(), "invalid file path:", err)
				logger.Error("Failed to resolve working directory", zap.Error(err))
				return nil
			}

			if err := bundle.Run(appFs, root, opts, cmd.OutOrStdout(), logger); err != nil {
				fmt.Fprintln(cmd.OutOrStdout(), err)
				logger.Error("Bundle run failed", zap.Error(err))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.Output, "o", "", "destination file path; must not already exist")
	cmd.Flags().StringSliceVar(&opts.Languages, "l", nil, `language tags to include, or "all"`)
	cmd.Flags().BoolVar(&opts.Note, "n", false, "prefix each file with a source-path comment")
	cmd.Flags().StringVar(&opts.SortMode, "s", bundle.SortByName, "sort mode: name or extension")
	cmd.Flags().BoolVar(&opts.RemoveBlank, "rel", false, "strip blank lines from each file's content")
	cmd.Flags().StringVar(&opts.Author, "a", "", "author name, emitted as a header comment")

	_ = cmd.MarkFlagRequired("o")
	_ = cmd.MarkFlagRequired("l")

	return cmd
}
