package bundle

import (
	"bufio"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
	"go.uber.org/zap"
)

// WriteBundle concatenates the candidate files, in the order given, into a
// single output file at opts.Output. The output path must not already exist;
// if it does the operation aborts before anything is written.
//
// The bundle is assembled in a temporary file next to the destination and
// renamed into place only on full success, so a failed run never leaves a
// truncated bundle at the output path. Progress lines are written to stdout
// as each file is added.
func WriteBundle(fsys afero.Fs, root string, candidates []CandidateFile, opts Options, stdout io.Writer, logger *zap.Logger) error {
	exists, err := afero.Exists(fsys, opts.Output)
	if err != nil {
		return fmt.Errorf("failed to check output path %s: %w", opts.Output, err)
	}
	if exists {
		return fmt.Errorf("output file already exists: %s", opts.Output)
	}

	tmp, err := afero.TempFile(fsys, filepath.Dir(opts.Output), ".bundle-*")
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	tmpName := tmp.Name()

	cleanup := func() {
		if closeErr := tmp.Close(); closeErr != nil {
			logger.Error("Failed to close temporary file", zap.String("file", tmpName), zap.Error(closeErr))
		}
		if removeErr := fsys.Remove(tmpName); removeErr != nil {
			logger.Error("Failed to remove temporary file", zap.String("file", tmpName), zap.Error(removeErr))
		}
	}

	writer := bufio.NewWriter(tmp)

	if opts.Author != "" {
		if _, err := fmt.Fprintf(writer, "// Author: %s\n", opts.Author); err != nil {
			cleanup()
			return fmt.Errorf("failed to write author header: %w", err)
		}
		logger.Debug("Wrote author header", zap.String("author", opts.Author))
	}

	for _, candidate := range candidates {
		fmt.Fprintf(stdout, "Adding %s\n", candidate.Path)
		logger.Debug("Adding file to bundle", zap.String("path", candidate.Path))

		if opts.Note {
			if _, err := fmt.Fprintf(writer, "// Source file: %s\n", candidate.Path); err != nil {
				cleanup()
				return fmt.Errorf("failed to write source note: %w", err)
			}
		}

		content, err := afero.ReadFile(fsys, filepath.Join(root, candidate.Path))
		if err != nil {
			cleanup()
			return fmt.Errorf("failed to read %s: %w", candidate.Path, err)
		}

		text := string(content)
		if opts.RemoveBlank {
			text = stripBlankLines(text)
		}

		if _, err := writer.WriteString(text + "\n"); err != nil {
			cleanup()
			return fmt.Errorf("failed to write content of %s: %w", candidate.Path, err)
		}
	}

	if err := writer.Flush(); err != nil {
		cleanup()
		return fmt.Errorf("failed to flush output: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close output file: %w", err)
	}
	if err := fsys.Rename(tmpName, opts.Output); err != nil {
		if removeErr := fsys.Remove(tmpName); removeErr != nil {
			logger.Error("Failed to remove temporary file", zap.String("file", tmpName), zap.Error(removeErr))
		}
		return fmt.Errorf("failed to move bundle into place: %w", err)
	}

	logger.Info("Wrote bundle",
		zap.String("output", opts.Output),
		zap.Int("totalFiles", len(candidates)))
	return nil
}

// stripBlankLines drops every line that is empty or consists solely of
// whitespace, then rejoins the remainder with the line separator. The
// transformation happens in memory before anything reaches the writer.
func stripBlankLines(content string) string {
	lines := strings.Split(strings.ReplaceAll(content, "\r\n", "\n"), "\n")
	kept := lines[:0]
	for _, line := range lines {
		if strings.TrimSpace(line) != "" {
			kept = append(kept, line)
		}
	}
	return strings.Join(kept, "\n")
}
