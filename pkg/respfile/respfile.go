// Package respfile implements response files: line-oriented text files whose
// contents are spliced into the command line via an `@filename` argument, and
// an interactive recorder that produces them.
package respfile

import (
	"fmt"
	"strings"

	"github.com/spf13/afero"
)

// Expand replaces every argument of the form @filename with the tokens read
// from that file, one flag per line, and returns the spliced argument list.
// Expansion is single-pass: an @ token inside a response file is not expanded
// again. Arguments without the @ prefix pass through unchanged.
func Expand(args []string, fsys afero.Fs) ([]string, error) {
	expanded := make([]string, 0, len(args))
	for _, arg := range args {
		if !strings.HasPrefix(arg, "@") || len(arg) == 1 {
			expanded = append(expanded, arg)
			continue
		}

		name := arg[1:]
		content, err := afero.ReadFile(fsys, name)
		if err != nil {
			return nil, fmt.Errorf("failed to read response file %s: %w", name, err)
		}
		expanded = append(expanded, splitLines(string(content))...)
	}
	return expanded, nil
}

// splitLines turns response-file lines into argument tokens. Each line holds
// one flag, optionally followed by its value; the value is everything after
// the first space so free-text values such as author names survive intact.
func splitLines(content string) []string {
	var tokens []string
	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		flag, value, found := strings.Cut(line, " ")
		tokens = append(tokens, flag)
		if found {
			if value = strings.TrimSpace(value); value != "" {
				tokens = append(tokens, value)
			}
		}
	}
	return tokens
}
