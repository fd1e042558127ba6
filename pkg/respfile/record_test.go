package respfile

import (
	"bytes"
	"strings"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestRecordAllOptions(t *testing.T) {
	fsys := afero.NewMemMapFs()
	in := strings.NewReader("out.txt\npython,c#\ny\nextension\nyes\nJane Doe\nopts.rsp\n")
	var out bytes.Buffer

	require.NoError(t, Record(in, &out, fsys, zap.NewNop()))

	content, err := afero.ReadFile(fsys, "opts.rsp")
	require.NoError(t, err)
	assert.Equal(t,
		"--o out.txt\n--l python,c#\n--n\n--s extension\n--rel\n--a Jane Doe\n",
		string(content))
	assert.Contains(t, out.String(), "Wrote response file opts.rsp")
}

func TestRecordOmitsNegativeAndEmptyAnswers(t *testing.T) {
	fsys := afero.NewMemMapFs()
	// Note flag declined, sort mode and author left empty.
	in := strings.NewReader("out.txt\nall\nn\n\nno\n\nopts.rsp\n")
	var out bytes.Buffer

	require.NoError(t, Record(in, &out, fsys, zap.NewNop()))

	content, err := afero.ReadFile(fsys, "opts.rsp")
	require.NoError(t, err)
	assert.Equal(t, "--o out.txt\n--l all\n", string(content))
}

func TestRecordLenientInput(t *testing.T) {
	fsys := afero.NewMemMapFs()
	// Whatever the user types is used verbatim: a nonsense sort mode and a
	// nonsense boolean answer are recorded or dropped without error.
	in := strings.NewReader("out.txt\npython\nmaybe\nsize\nmaybe\n\nopts.rsp\n")
	var out bytes.Buffer

	require.NoError(t, Record(in, &out, fsys, zap.NewNop()))

	content, err := afero.ReadFile(fsys, "opts.rsp")
	require.NoError(t, err)
	assert.Equal(t, "--o out.txt\n--l python\n--s size\n", string(content))
}

func TestRecordPromptsInOrder(t *testing.T) {
	fsys := afero.NewMemMapFs()
	in := strings.NewReader("out.txt\nall\ny\nname\ny\n\nopts.rsp\n")
	var out bytes.Buffer

	require.NoError(t, Record(in, &out, fsys, zap.NewNop()))

	prompts := out.String()
	order := []string{
		"Output file path",
		"Languages",
		"Include source file comments",
		"Sort by",
		"Remove blank lines",
		"Author",
		"Response file name",
	}
	last := -1
	for _, p := range order {
		idx := strings.Index(prompts, p)
		require.GreaterOrEqual(t, idx, 0, "missing prompt %q", p)
		assert.Greater(t, idx, last, "prompt %q out of order", p)
		last = idx
	}
}
