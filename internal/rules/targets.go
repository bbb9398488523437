package rules

import (
	"sort"
	"strings"
)

// knownTargetOrder is the fixed list of known target names in their
// canonical order. Unknown targets sort after all of these.
var knownTargetOrder = []string{
	".PHONY",
	".SILENT",
	".ORDER",
	".NOTPARALLEL",
	"fetch",
	"extract",
	"patch",
	"configure",
	"build",
	"install",
	"package",
	"describe",
	"makesum",
	"checksum",
	"deinstall",
	"reinstall",
	"clean",
	"pre-everything",
	"pre-fetch",
	"post-fetch",
	"pre-extract",
	"post-extract",
	"pre-patch",
	"post-patch",
	"pre-configure",
	"post-configure",
	"pre-build",
	"post-build",
	"pre-install",
	"do-install",
	"post-install",
	"pre-package",
	"do-package",
	"post-package",
}

var knownTargetIndex = func() map[string]int {
	m := make(map[string]int, len(knownTargetOrder))
	for i, n := range knownTargetOrder {
		m[n] = i
	}
	return m
}()

// specialTargetNames is the set of "special" target names (those
// meaningful to make itself rather than to the port build, e.g.
// .PHONY/.SILENT).
var specialTargetNames = map[string]bool{
	".PHONY":       true,
	".SILENT":      true,
	".ORDER":       true,
	".NOTPARALLEL": true,
	".WAIT":        true,
	".ALLTARGETS":  true,
	".SUFFIXES":    true,
}

// IsKnownTarget reports whether name is in the fixed list of targets the
// port framework recognizes.
func IsKnownTarget(name string) bool {
	_, ok := knownTargetIndex[name]
	return ok
}

// IsSpecialTarget reports whether name is a special (dot-prefixed,
// make-meaningful) target name.
func IsSpecialTarget(name string) bool {
	return specialTargetNames[name]
}

// CompareTargetOrder is a total order on known targets from
// knownTargetOrder; unknown targets compare greater than all known ones,
// ordered lexicographically among themselves.
func CompareTargetOrder(a, b string) int {
	if a == b {
		return 0
	}
	posA, knownA := knownTargetIndex[a]
	posB, knownB := knownTargetIndex[b]
	switch {
	case knownA && knownB:
		return cmpInt(posA, posB)
	case knownA:
		return -1
	case knownB:
		return 1
	default:
		return strings.Compare(a, b)
	}
}

// SortTargetNames stable-sorts target names by CompareTargetOrder.
func SortTargetNames(names []string) {
	sort.SliceStable(names, func(i, j int) bool {
		return CompareTargetOrder(names[i], names[j]) < 0
	})
}
