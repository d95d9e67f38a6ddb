package diffx

// CompareTrees compares every file under oldRoot against every file
// under newRoot and returns one FileComparison per relative path, in
// sorted path order.
//
// Ignored paths are classified before any content is read and are
// suppressed entirely under WithHideIgnored. Paths present on a single
// side become ClassOldOnly or ClassNewOnly without a content fetch.
// Paths present on both sides are read from both trees and aligned;
// a failed read on either side yields ClassUnreadable instead of
// aborting the run. CompareTrees itself cannot fail: establishing the
// trees is the caller's job and per-path failures are absorbed into
// classifications.
func CompareTrees(oldTree, newTree Tree, oldRoot, newRoot string, options ...CompareOption) []FileComparison {
	opts := defaultCompareOptions()
	for _, opt := range options {
		opt(opts)
	}

	oldIndex := BuildTreeIndex(oldTree.List(oldRoot), oldRoot)
	newIndex := BuildTreeIndex(newTree.List(newRoot), newRoot)

	paths := Reconcile(oldIndex, newIndex)
	total := len(paths)

	results := make([]FileComparison, 0, total)
	for i, rel := range paths {
		if opts.ignore.Match(rel) {
			if !opts.hideIgnored {
				results = append(results, FileComparison{
					Path:  rel,
					Class: ClassIgnored,
				})
			}
			notifyProgress(opts.progress, i+1, total, rel)
			continue
		}

		oldPath, inOld := oldIndex[rel]
		newPath, inNew := newIndex[rel]

		switch {
		case inOld && !inNew:
			results = append(results, FileComparison{
				Path:  rel,
				Class: ClassOldOnly,
			})
		case inNew && !inOld:
			results = append(results, FileComparison{
				Path:  rel,
				Class: ClassNewOnly,
			})
		default:
			oldLines, oldErr := oldTree.ReadLines(oldPath)
			newLines, newErr := newTree.ReadLines(newPath)
			if oldErr != nil || newErr != nil {
				results = append(results, FileComparison{
					Path:  rel,
					Class: ClassUnreadable,
				})
			} else {
				results = append(results, FileComparison{
					Path:  rel,
					Class: ClassDiffed,
					Lines: Align(oldLines, newLines),
				})
			}
		}

		notifyProgress(opts.progress, i+1, total, rel)
	}

	return results
}

func notifyProgress(progress ProgressFunc, processed, total int, currentPath string) {
	if progress == nil {
		return
	}
	progress(processed, total, currentPath)
}
