package bundle

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/afero"
	"go.uber.org/zap"
)

// SelectFiles walks the directory tree rooted at root and collects every file
// whose extension maps to one of the requested language tags. The wildcard
// "all" matches every extension known to the registry.
//
// Files whose extension has no registry entry are excluded from the result but
// their extensions are reported back, deduplicated and sorted, so the caller
// can warn about them. A requested language that matches no file is not an
// error. The returned candidates are in traversal order; sorting is a
// separate step.
func SelectFiles(fsys afero.Fs, root string, languages []string, logger *zap.Logger) ([]CandidateFile, []string, error) {
	info, err := fsys.Stat(root)
	if err != nil || !info.IsDir() {
		return nil, nil, fmt.Errorf("invalid file path: %s", root)
	}

	wanted := make(map[string]bool, len(languages))
	wildcard := false
	for _, lang := range languages {
		lang = strings.ToLower(strings.TrimSpace(lang))
		if lang == WildcardLanguage {
			wildcard = true
		}
		if lang != "" {
			wanted[lang] = true
		}
	}

	var candidates []CandidateFile
	unknown := make(map[string]struct{})

	err = afero.Walk(fsys, root, func(path string, fi os.FileInfo, walkErr error) error {
		if walkErr != nil {
			logger.Error("Error accessing path during traversal", zap.String("path", path), zap.Error(walkErr))
			return walkErr
		}
		if fi.IsDir() {
			return nil
		}

		ext := strings.ToLower(filepath.Ext(path))
		if ext == "" {
			return nil
		}

		tag, ok := TagForExtension(ext)
		if !ok {
			unknown[ext] = struct{}{}
			logger.Debug("Skipping file with unmapped extension",
				zap.String("path", path),
				zap.String("extension", ext))
			return nil
		}

		if !wildcard && !wanted[tag] {
			return nil
		}

		relPath, relErr := filepath.Rel(root, path)
		if relErr != nil {
			relPath = path
		}
		candidates = append(candidates, CandidateFile{Path: relPath, Ext: ext})
		logger.Debug("Selected file", zap.String("path", relPath), zap.String("language", tag))
		return nil
	})
	if err != nil {
		return nil, nil, fmt.Errorf("failed to traverse %s: %w", root, err)
	}

	unknownExts := make([]string, 0, len(unknown))
	for ext := range unknown {
		unknownExts = append(unknownExts, ext)
	}
	sort.Strings(unknownExts)

	logger.Debug("Completed file selection",
		zap.Int("candidates", len(candidates)),
		zap.Int("unknownExtensions", len(unknownExts)))
	return candidates, unknownExts, nil
}
