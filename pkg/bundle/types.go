package bundle

// Sort modes accepted by SortCandidates. Any other value falls back to name
// ordering.
const (
	SortByName      = "name"
	SortByExtension = "extension"
)

// Options holds the resolved configuration for one bundling run. It is built
// once per invocation, from command-line flags or a response file, and is not
// mutated afterwards.
type Options struct {
	Output      string   // Destination path for the bundled output file; must not pre-exist.
	Languages   []string // Requested language tags, or the wildcard "all".
	Note        bool     // Prefix each file's content with a source-path comment line.
	SortMode    string   // "name" or "extension"; unrecognized values behave as "name".
	RemoveBlank bool     // Strip blank and whitespace-only lines from each file before writing.
	Author      string   // Optional author name, emitted as a header comment when non-empty.
}

// CandidateFile is a file discovered during traversal that matched the
// requested languages. Instances live only for the duration of one run.
type CandidateFile struct {
	Path string // Path relative to the traversal root.
	Ext  string // Lower-cased file extension, including the leading dot.
}
