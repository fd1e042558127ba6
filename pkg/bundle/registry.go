package bundle

import (
	"sort"
	"strings"
)

// WildcardLanguage selects every extension known to the registry.
const WildcardLanguage = "all"

// extensionTags is the fixed mapping from lower-cased file extension to
// canonical language tag. There is no registration API; the table is
// constructed once and never mutated.
var extensionTags = map[string]string{
	".cs":   "c#",
	".java": "java",
	".js":   "javascript",
	".ts":   "typescript",
	".py":   "python",
	".html": "html",
	".htm":  "html",
	".css":  "css",
	".scss": "scss",
	".sql":  "sql",
	".sh":   "bash",
	".ps1":  "powershell",
	".json": "json",
	".xml":  "xml",
}

// TagForExtension returns the language tag for the given file extension.
// Matching is case-insensitive; the second return value reports whether
// the extension is known to the registry.
func TagForExtension(ext string) (string, bool) {
	tag, ok := extensionTags[strings.ToLower(ext)]
	return tag, ok
}

// KnownLanguages returns the distinct language tags of the registry in
// ascending order, for use in help text and prompts.
func KnownLanguages() []string {
	seen := make(map[string]struct{}, len(extensionTags))
	var tags []string
	for _, tag := range extensionTags {
		if _, ok := seen[tag]; ok {
			continue
		}
		seen[tag] = struct{}{}
		tags = append(tags, tag)
	}
	sort.Strings(tags)
	return tags
}
