package respfile

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/afero"
	"go.uber.org/zap"
)

// Record runs the interactive prompt sequence and serializes the answers into
// a response file consumable by the bundle command via an @filename argument.
//
// The sequence is linear with no retry on bad input: whatever the user types
// is used verbatim. Boolean answers produce a flag line only when affirmative;
// optional strings produce no line when empty.
func Record(in io.Reader, out io.Writer, fsys afero.Fs, logger *zap.Logger) error {
	reader := bufio.NewReader(in)

	output, err := prompt(reader, out, "Output file path: ")
	if err != nil {
		return err
	}
	languages, err := prompt(reader, out, "Languages (comma-separated, or \"all\"): ")
	if err != nil {
		return err
	}
	note, err := prompt(reader, out, "Include source file comments? (y/n): ")
	if err != nil {
		return err
	}
	sortMode, err := prompt(reader, out, "Sort by (name/extension): ")
	if err != nil {
		return err
	}
	removeBlank, err := prompt(reader, out, "Remove blank lines? (y/n): ")
	if err != nil {
		return err
	}
	author, err := prompt(reader, out, "Author (optional): ")
	if err != nil {
		return err
	}
	name, err := prompt(reader, out, "Response file name: ")
	if err != nil {
		return err
	}

	var lines []string
	if output != "" {
		lines = append(lines, "--o "+output)
	}
	if languages != "" {
		lines = append(lines, "--l "+languages)
	}
	if isAffirmative(note) {
		lines = append(lines, "--n")
	}
	if sortMode != "" {
		lines = append(lines, "--s "+sortMode)
	}
	if isAffirmative(removeBlank) {
		lines = append(lines, "--rel")
	}
	if author != "" {
		lines = append(lines, "--a "+author)
	}

	content := strings.Join(lines, "\n") + "\n"
	if err := afero.WriteFile(fsys, name, []byte(content), 0644); err != nil {
		logger.Error("Failed to write response file", zap.String("file", name), zap.Error(err))
		return fmt.Errorf("failed to write response file %s: %w", name, err)
	}

	fmt.Fprintf(out, "Wrote response file %s\n", name)
	logger.Info("Recorded response file",
		zap.String("file", name),
		zap.Int("lines", len(lines)))
	return nil
}

// prompt displays a message and reads one line of input, trimmed of
// surrounding whitespace.
func prompt(reader *bufio.Reader, out io.Writer, message string) (string, error) {
	fmt.Fprint(out, message)
	response, err := reader.ReadString('\n')
	if err != nil && err != io.EOF {
		return "", fmt.Errorf("failed to read input: %w", err)
	}
	return strings.TrimSpace(response), nil
}

// isAffirmative reports whether a prompt answer means yes.
func isAffirmative(answer string) bool {
	answer = strings.ToLower(answer)
	return answer == "y" || answer == "yes"
}
