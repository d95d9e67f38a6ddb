package diffx

// Outcome is the file-level status shown in summaries and reports
type Outcome string

const (
	OutcomeChanged       Outcome = "Changed"
	OutcomeNoDifferences Outcome = "No differences"
	OutcomeOnlyInOld     Outcome = "Only in Old"
	OutcomeOnlyInNew     Outcome = "Only in New"
	OutcomeUnreadable    Outcome = "Binary or unreadable"
	OutcomeIgnored       Outcome = "Ignored"
)

// HasChanges reports whether any aligned line differs. Records without
// diff content never have changes.
func (fc FileComparison) HasChanges() bool {
	for _, line := range fc.Lines {
		if line.Status != LineUnchanged {
			return true
		}
	}

	return false
}

// ChangedLines returns only the aligned pairs that differ
func (fc FileComparison) ChangedLines() []AlignedLine {
	var changed []AlignedLine
	for _, line := range fc.Lines {
		if line.Status != LineUnchanged {
			changed = append(changed, line)
		}
	}

	return changed
}

// Outcome derives the file-level status from the classification and,
// for diffed files, the aligned lines
func (fc FileComparison) Outcome() Outcome {
	switch fc.Class {
	case ClassDiffed:
		if fc.HasChanges() {
			return OutcomeChanged
		}
		return OutcomeNoDifferences
	case ClassOldOnly:
		return OutcomeOnlyInOld
	case ClassNewOnly:
		return OutcomeOnlyInNew
	case ClassUnreadable:
		return OutcomeUnreadable
	default:
		return OutcomeIgnored
	}
}

// Summary aggregates file-level outcomes of one comparison run
type Summary struct {
	Changed       int
	NoDifferences int
	OnlyInOld     int
	OnlyInNew     int
	Diffed        int
	Unreadable    int
	Ignored       int
}

// Summarize counts outcomes across the result set. Diffed counts every
// text file that was aligned, changed or not.
func Summarize(results []FileComparison) Summary {
	var summary Summary
	for _, fc := range results {
		if fc.Class == ClassDiffed {
			summary.Diffed++
		}

		switch fc.Outcome() {
		case OutcomeChanged:
			summary.Changed++
		case OutcomeNoDifferences:
			summary.NoDifferences++
		case OutcomeOnlyInOld:
			summary.OnlyInOld++
		case OutcomeOnlyInNew:
			summary.OnlyInNew++
		case OutcomeUnreadable:
			summary.Unreadable++
		case OutcomeIgnored:
			summary.Ignored++
		}
	}

	return summary
}

// FilterOutcomes returns the records whose outcome is one of keep,
// preserving order
func FilterOutcomes(results []FileComparison, keep ...Outcome) []FileComparison {
	wanted := make(map[Outcome]struct{}, len(keep))
	for _, outcome := range keep {
		wanted[outcome] = struct{}{}
	}

	var filtered []FileComparison
	for _, fc := range results {
		if _, ok := wanted[fc.Outcome()]; ok {
			filtered = append(filtered, fc)
		}
	}

	return filtered
}
