package discovery

import "vtp/internal/domain"

// Filter drops test programs whose base name is in a skip set
type Filter struct {
	skip domain.SkipSet
}

// NewFilter creates a new Filter
func NewFilter(skip domain.SkipSet) *Filter {
	return &Filter{skip: skip}
}

// Skip reports whether file should not be run.
// Only the exact base name is compared; the directory part is ignored.
func (f *Filter) Skip(file domain.TestFile) bool {
	return f.skip.Contains(file.Name)
}

// Apply returns the files that are not skipped, keeping their order
func (f *Filter) Apply(files []domain.TestFile) []domain.TestFile {
	var kept []domain.TestFile
	for _, file := range files {
		if !f.Skip(file) {
			kept = append(kept, file)
		}
	}
	return kept
}
