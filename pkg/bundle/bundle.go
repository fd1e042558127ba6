// Package bundle implements the core of codebundle: walking a directory
// tree, filtering files by programming-language extension, ordering them,
// and concatenating their contents into a single output file.
package bundle

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/spf13/afero"
	"go.uber.org/zap"
)

// Run executes one bundling pass over the tree rooted at root: select files
// matching opts.Languages, sort them per opts.SortMode, and write the bundle
// to opts.Output. Progress and warnings are written to stdout; structured
// events go to the logger.
func Run(fsys afero.Fs, root string, opts Options, stdout io.Writer, logger *zap.Logger) error {
	startTime := time.Now()
	logger.Info("Starting bundle run",
		zap.String("root", root),
		zap.Strings("languages", opts.Languages),
		zap.String("output", opts.Output))

	if len(opts.Languages) == 0 {
		return fmt.Errorf("at least one language is required")
	}

	candidates, unknownExts, err := SelectFiles(fsys, root, opts.Languages, logger)
	if err != nil {
		return err
	}

	if len(unknownExts) > 0 {
		fmt.Fprintf(stdout, "Warning: unknown extensions skipped: %s\n", strings.Join(unknownExts, ", "))
		logger.Warn("Skipped files with unmapped extensions", zap.Strings("extensions", unknownExts))
	}

	sorted := SortCandidates(candidates, opts.SortMode)

	if err := WriteBundle(fsys, root, sorted, opts, stdout, logger); err != nil {
		return err
	}

	fmt.Fprintf(stdout, "Bundled %d file(s) into %s\n", len(sorted), opts.Output)
	logger.Info("Bundle run completed",
		zap.Int("totalFiles", len(sorted)),
		zap.Duration("elapsed", time.Since(startTime)))
	return nil
}
