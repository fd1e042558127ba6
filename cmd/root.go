package cmd

import (
	"fmt"
	"os"

	"codebundle/pkg/respfile"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// appFs is the filesystem every command operates on. Tests replace it with an
// in-memory implementation.
var appFs afero.Fs = afero.NewOsFs()

// NewRootCmd builds the base command and registers all subcommands.
func NewRootCmd(logger *zap.Logger) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "codebundle",
		Short: "codebundle is a CLI tool for bundling source files",
		Long: `codebundle walks a directory tree, filters source files by programming
language, and concatenates their contents into a single output file.
Options can be recorded into a reusable response file with the crsp
subcommand and replayed with an @filename argument.`,
		SilenceUsage: true,
	}

	rootCmd.AddCommand(newBundleCmd(logger))
	rootCmd.AddCommand(newCrspCmd(logger))
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

// Execute expands any @filename response-file arguments into the argument
// list, then runs the root command. Command handlers report their own
// failures; only a dispatch error (unknown command, bad flags) exits
// non-zero.
func Execute(logger *zap.Logger) {
	args, err := respfile.Expand(os.Args[1:], appFs)
	if err != nil {
		fmt.Println(err)
		logger.Error("Failed to expand response file arguments", zap.Error(err))
		return
	}

	rootCmd := NewRootCmd(logger)
	rootCmd.SetArgs(args)
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
