package bundle

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestFs(t *testing.T, files map[string]string) afero.Fs {
	t.Helper()
	fsys := afero.NewMemMapFs()
	for path, content := range files {
		require.NoError(t, afero.WriteFile(fsys, path, []byte(content), 0644))
	}
	return fsys
}

func candidatePaths(candidates []CandidateFile) []string {
	paths := make([]string, 0, len(candidates))
	for _, c := range candidates {
		paths = append(paths, c.Path)
	}
	return paths
}

func TestSelectFilesWildcard(t *testing.T) {
	fsys := newTestFs(t, map[string]string{
		"/work/a.py":         "print(1)",
		"/work/b.cs":         "class B {}",
		"/work/sub/c.js":     "var c;",
		"/work/sub/notes.md": "# notes",
		"/work/README":       "no extension",
	})

	candidates, unknown, err := SelectFiles(fsys, "/work", []string{"all"}, zap.NewNop())
	require.NoError(t, err)

	// Every registry-mapped file is included, nothing else.
	assert.ElementsMatch(t, []string{"a.py", "b.cs", "sub/c.js"}, candidatePaths(candidates))
	assert.Equal(t, []string{".md"}, unknown)
}

func TestSelectFilesSubset(t *testing.T) {
	fsys := newTestFs(t, map[string]string{
		"/work/a.py":  "print(1)",
		"/work/b.cs":  "class B {}",
		"/work/c.js":  "var c;",
		"/work/d.sql": "SELECT 1;",
	})

	tests := []struct {
		name      string
		languages []string
		want      []string
	}{
		{name: "single language", languages: []string{"python"}, want: []string{"a.py"}},
		{name: "two languages", languages: []string{"python", "c#"}, want: []string{"a.py", "b.cs"}},
		{name: "no matches is a no-op", languages: []string{"java"}, want: nil},
		{name: "case-insensitive tags", languages: []string{"Python"}, want: []string{"a.py"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			candidates, _, err := SelectFiles(fsys, "/work", tt.languages, zap.NewNop())
			require.NoError(t, err)
			assert.ElementsMatch(t, tt.want, candidatePaths(candidates))
		})
	}
}

func TestSelectFilesUnknownExtensionsDeduplicated(t *testing.T) {
	fsys := newTestFs(t, map[string]string{
		"/work/a.txt":     "one",
		"/work/b.txt":     "two",
		"/work/c.md":      "three",
		"/work/sub/d.txt": "four",
	})

	candidates, unknown, err := SelectFiles(fsys, "/work", []string{"all"}, zap.NewNop())
	require.NoError(t, err)

	assert.Empty(t, candidates)
	assert.Equal(t, []string{".md", ".txt"}, unknown)
}

func TestSelectFilesInvalidRoot(t *testing.T) {
	fsys := afero.NewMemMapFs()

	_, _, err := SelectFiles(fsys, "/does-not-exist", []string{"all"}, zap.NewNop())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid file path")
}

func TestSelectFilesIdempotent(t *testing.T) {
	fsys := newTestFs(t, map[string]string{
		"/work/a.py":     "print(1)",
		"/work/b.cs":     "class B {}",
		"/work/sub/c.js": "var c;",
	})

	first, firstUnknown, err := SelectFiles(fsys, "/work", []string{"all"}, zap.NewNop())
	require.NoError(t, err)
	second, secondUnknown, err := SelectFiles(fsys, "/work", []string{"all"}, zap.NewNop())
	require.NoError(t, err)

	assert.ElementsMatch(t, candidatePaths(first), candidatePaths(second))
	assert.Equal(t, firstUnknown, secondUnknown)
}
