package diffx

// LineStatus represents the status of one aligned line pair
type LineStatus string

const (
	LineUnchanged LineStatus = "unchanged"
	LineModified  LineStatus = "modified"
	LineAdded     LineStatus = "added"
	LineRemoved   LineStatus = "removed"
)

// Label returns the human-readable form used in reports
func (s LineStatus) Label() string {
	switch s {
	case LineUnchanged:
		return "Unchanged"
	case LineModified:
		return "Modified"
	case LineAdded:
		return "Added"
	case LineRemoved:
		return "Removed"
	default:
		return string(s)
	}
}

// Classification represents the per-file comparison outcome
type Classification string

const (
	// ClassDiffed means the file exists on both sides and was diffed line by line
	ClassDiffed Classification = "diffed"
	// ClassOldOnly means the file exists only under the old root
	ClassOldOnly Classification = "old_only"
	// ClassNewOnly means the file exists only under the new root
	ClassNewOnly Classification = "new_only"
	// ClassUnreadable means at least one side could not be read
	ClassUnreadable Classification = "unreadable"
	// ClassIgnored means the path matched an ignore pattern and was never read
	ClassIgnored Classification = "ignored"
)
