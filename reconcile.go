package diffx

import (
	"sort"
	"strings"
)

// BuildTreeIndex maps relative paths to absolute locations by stripping
// the root prefix from a flat listing. Paths outside the root are
// silently dropped; a correct Tree never produces them.
func BuildTreeIndex(listing []string, root string) TreeIndex {
	root = strings.TrimSuffix(root, "/")
	prefix := root + "/"

	index := make(TreeIndex, len(listing))
	for _, absolute := range listing {
		if !strings.HasPrefix(absolute, prefix) {
			continue
		}
		index[absolute[len(prefix):]] = absolute
	}

	return index
}

// Reconcile returns the sorted union of the relative paths of both
// sides. The result drives one comparison pass: presence in one index
// or the other decides each path's classification.
func Reconcile(oldIndex, newIndex TreeIndex) []string {
	union := make(map[string]struct{}, len(oldIndex)+len(newIndex))
	for rel := range oldIndex {
		union[rel] = struct{}{}
	}
	for rel := range newIndex {
		union[rel] = struct{}{}
	}

	paths := make([]string, 0, len(union))
	for rel := range union {
		paths = append(paths, rel)
	}
	sort.Strings(paths)

	return paths
}
