package bundle

import (
	"path/filepath"
	"sort"
)

// SortCandidates returns a sorted copy of the candidate list. Mode "name"
// orders ascending by base file name regardless of directory depth; mode
// "extension" orders by extension first with the base file name as tiebreak.
// Any other mode value behaves as "name", which is the documented default
// rather than an error. Both orderings are stable.
func SortCandidates(candidates []CandidateFile, mode string) []CandidateFile {
	sorted := make([]CandidateFile, len(candidates))
	copy(sorted, candidates)

	switch mode {
	case SortByExtension:
		sort.SliceStable(sorted, func(i, j int) bool {
			if sorted[i].Ext != sorted[j].Ext {
				return sorted[i].Ext < sorted[j].Ext
			}
			return filepath.Base(sorted[i].Path) < filepath.Base(sorted[j].Path)
		})
	default:
		sort.SliceStable(sorted, func(i, j int) bool {
			return filepath.Base(sorted[i].Path) < filepath.Base(sorted[j].Path)
		})
	}

	return sorted
}
