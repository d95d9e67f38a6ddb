package diffx

// ProgressFunc is called after every reconciled path is handled
type ProgressFunc func(processed, total int, currentPath string)

// Tree provides read access to one side of a comparison.
//
// List returns every file under root as an absolute path, recursively.
// Listing is best-effort: a subtree that cannot be read contributes
// nothing instead of failing the listing.
//
// ReadLines returns the decoded text lines of a file. A nil error with
// zero lines means an empty file; a non-nil error means the file is
// unreadable and must not be confused with empty content.
type Tree interface {
	List(root string) []string
	ReadLines(path string) ([]string, error)
}

// TreeIndex maps a relative path to its absolute location on one side.
// Keys are POSIX-style and unique; the absolute value always starts
// with the root the index was built from.
type TreeIndex map[string]string

// AlignedLine is one row of a side-by-side diff. The missing side of an
// added or removed line is the empty string.
type AlignedLine struct {
	Old    string
	New    string
	Status LineStatus
}

// FileComparison is the outcome for a single relative path. Lines is
// populated only for ClassDiffed records.
type FileComparison struct {
	Path  string
	Class Classification
	Lines []AlignedLine
}
