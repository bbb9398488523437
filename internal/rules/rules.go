// Package rules is the static, read-only domain model: the canonical
// order of variables, their grouping into blocks, per-variable sort
// modes, append-only variables, options-helper name patterns, known
// target names, and "special" target names.
//
// Every table here is populated at package init and never mutated
// afterwards, so concurrent reads from scan workers (internal/scan) need
// no synchronization, matching spec.md §5's "rules catalogue: read-only
// after initialization; safe for concurrent read."
package rules

import (
	"sort"
	"strings"

	"github.com/Jehops/portfmt/internal/token"
)

// sortMode describes how a block's member variables are ordered relative
// to each other once grouped.
type sortMode int

const (
	sortDeclared sortMode = iota // the order literals are listed in blockDef
	sortAlpha
)

// blockDef is one entry of the canonical block order.
type blockDef struct {
	block    token.Block
	sortMode sortMode
	// literals lists variable names belonging to this block in the order
	// they should be emitted when sortMode is sortDeclared.
	literals []string
}

// Block returns the block this entry defines, for callers outside the
// package (edit.ReorderPass) that walk BlockOrder directly.
func (b blockDef) Block() token.Block { return b.block }

// BlockOrder is the canonical order of blocks. Its order is the order
// canonical-reorder groups variable ranges into.
var BlockOrder = []blockDef{
	{token.BlockPortname, sortDeclared, []string{"PORTNAME", "PORTVERSION", "DISTVERSIONPREFIX", "DISTVERSION", "DISTVERSIONSUFFIX", "PORTREVISION", "PORTEPOCH"}},
	{token.BlockCategories, sortDeclared, []string{"CATEGORIES"}},
	{token.BlockMasterSites, sortDeclared, []string{"MASTER_SITES", "MASTER_SITE_SUBDIR"}},
	{token.BlockPkgnamePrefixSuffix, sortDeclared, []string{"PKGNAMEPREFIX", "PKGNAMESUFFIX", "DISTNAME"}},
	{token.BlockDistfiles, sortAlpha, []string{"DISTFILES", "EXTRACT_ONLY"}},
	{token.BlockPatchfiles, sortDeclared, []string{"PATCH_SITES", "PATCHFILES", "PATCH_DIST_STRIP"}},
	{token.BlockMaintainer, sortDeclared, []string{"MAINTAINER", "COMMENT", "WWW"}},
	{token.BlockLicense, sortDeclared, []string{"LICENSE", "LICENSE_COMB"}},
	{token.BlockLicensePermissive, sortAlpha, []string{"LICENSE_PERMS", "LICENSE_DISTFILES"}},
	{token.BlockBroken, sortDeclared, []string{"BROKEN", "BROKEN_SSL", "IGNORE"}},
	{token.BlockDeprecated, sortDeclared, []string{"DEPRECATED", "EXPIRATION_DATE"}},
	{token.BlockRestricted, sortDeclared, []string{"RESTRICTED", "NO_CDROM", "NO_PACKAGE"}},
	{token.BlockConflicts, sortAlpha, []string{"CONFLICTS", "CONFLICTS_BUILD", "CONFLICTS_INSTALL"}},
	{token.BlockArchs, sortAlpha, []string{"ONLY_FOR_ARCHS", "NOT_FOR_ARCHS", "ONLY_FOR_ARCHS_REASON", "NOT_FOR_ARCHS_REASON"}},

	{token.BlockBuildDepends, sortAlpha, []string{"BUILD_DEPENDS"}},
	{token.BlockLibDepends, sortAlpha, []string{"LIB_DEPENDS"}},
	{token.BlockRunDepends, sortAlpha, []string{"RUN_DEPENDS"}},
	{token.BlockTestDepends, sortAlpha, []string{"TEST_DEPENDS"}},

	{token.BlockUses, sortAlpha, []string{"USES"}},
	{token.BlockUseGnome, sortAlpha, []string{"USE_GNOME"}},
	{token.BlockUseQt, sortAlpha, []string{"USE_QT"}},
	{token.BlockShebangFix, sortDeclared, []string{"SHEBANG_FILES", "SHEBANG_LANG"}},

	{token.BlockFlavors, sortDeclared, []string{"FLAVORS", "FLAVOR"}},

	{token.BlockGnuConfigure, sortDeclared, []string{"GNU_CONFIGURE", "GNU_CONFIGURE_PREFIX"}},
	{token.BlockConfigureArgs, sortDeclared, []string{"CONFIGURE_ARGS"}},
	{token.BlockConfigureEnv, sortDeclared, []string{"CONFIGURE_ENV"}},

	{token.BlockCmake, sortDeclared, []string{"USE_CMAKE", "CMAKE_BUILD_TYPE"}},
	{token.BlockCmakeArgs, sortDeclared, []string{"CMAKE_ARGS", "CMAKE_ON", "CMAKE_OFF"}},

	{token.BlockMeson, sortDeclared, []string{"USE_MESON"}},
	{token.BlockMesonArgs, sortDeclared, []string{"MESON_ARGS"}},

	{token.BlockMakeEnv, sortDeclared, []string{"MAKE_ENV"}},
	{token.BlockMakeArgs, sortDeclared, []string{"MAKE_ARGS"}},
	{token.BlockCflags, sortDeclared, []string{"CFLAGS"}},
	{token.BlockCxxflags, sortDeclared, []string{"CXXFLAGS"}},
	{token.BlockLdflags, sortDeclared, []string{"LDFLAGS"}},
	{token.BlockRustflags, sortDeclared, []string{"RUSTFLAGS"}},

	{token.BlockUsePythonFlags, sortDeclared, []string{"USE_PYTHON", "PYTHON_VERSION"}},

	{token.BlockOptionsDefine, sortDeclared, []string{"OPTIONS_DEFINE"}},
	{token.BlockOptionsDefault, sortAlpha, []string{"OPTIONS_DEFAULT"}},
	{token.BlockOptionsGroup, sortDeclared, nil},
	{token.BlockOptionsSingle, sortDeclared, nil},
	{token.BlockOptionsMulti, sortDeclared, nil},
	{token.BlockOptionsRadio, sortDeclared, nil},
	{token.BlockOptionsSub, sortDeclared, []string{"OPTIONS_SUB"}},
	{token.BlockOptionsDefinitions, sortDeclared, nil},
	{token.BlockOptionsHelpers, sortDeclared, nil},

	{token.BlockPlist, sortDeclared, []string{"PLIST"}},
	{token.BlockPlistFiles, sortAlpha, []string{"PLIST_FILES"}},
	{token.BlockPlistDirs, sortAlpha, []string{"PLIST_DIRS"}},
	{token.BlockPlistSub, sortDeclared, []string{"PLIST_SUB"}},
	{token.BlockSubFiles, sortAlpha, []string{"SUB_FILES"}},
	{token.BlockSubList, sortDeclared, []string{"SUB_LIST"}},

	{token.BlockUsers, sortAlpha, []string{"USERS"}},
	{token.BlockGroups, sortAlpha, []string{"GROUPS"}},

	{token.BlockIncludeBsdPortMk, sortDeclared, nil},
}

// blockIndex maps a block to its position in BlockOrder, for fast
// CompareOrder lookups.
var blockIndex = func() map[token.Block]int {
	m := make(map[token.Block]int, len(BlockOrder))
	for i, def := range BlockOrder {
		m[def.block] = i
	}
	return m
}()

// literalBlocks maps a literal variable name directly to its block and
// its declared-order position within that block (for sortDeclared
// blocks).
var literalBlocks = func() map[string]struct {
	block token.Block
	pos   int
} {
	m := make(map[string]struct {
		block token.Block
		pos   int
	})
	for _, def := range BlockOrder {
		for i, lit := range def.literals {
			m[lit] = struct {
				block token.Block
				pos   int
			}{def.block, i}
		}
	}
	return m
}()

// templatePattern is a templated variable-name entry like `<OPT>_CMAKE_ON`
// where `<OPT>` stands for any declared option name. Matched by suffix
// (most port-Makefile templates are `<OPT>_SUFFIX`) or prefix.
type templatePattern struct {
	suffix string
	prefix string
	block  token.Block
}

// templatePatterns is checked in order on a literal-lookup miss, longest
// literal match first (ties broken by first-registered, i.e. declaration
// order here), per spec.md §4.2.
var templatePatterns = []templatePattern{
	{suffix: "_DESC", block: token.BlockOptionsDefinitions},
	{suffix: "_CMAKE_ON", block: token.BlockOptionsHelpers},
	{suffix: "_CMAKE_OFF", block: token.BlockOptionsHelpers},
	{suffix: "_CMAKE_BOOL", block: token.BlockOptionsHelpers},
	{suffix: "_MESON_ON", block: token.BlockOptionsHelpers},
	{suffix: "_MESON_OFF", block: token.BlockOptionsHelpers},
	{suffix: "_MESON_TRUE", block: token.BlockOptionsHelpers},
	{suffix: "_MESON_FALSE", block: token.BlockOptionsHelpers},
	{suffix: "_CONFIGURE_ON", block: token.BlockOptionsHelpers},
	{suffix: "_CONFIGURE_OFF", block: token.BlockOptionsHelpers},
	{suffix: "_CONFIGURE_ENABLE", block: token.BlockOptionsHelpers},
	{suffix: "_CONFIGURE_WITH", block: token.BlockOptionsHelpers},
	{suffix: "_USES", block: token.BlockOptionsHelpers},
	{suffix: "_USES_OFF", block: token.BlockOptionsHelpers},
	{suffix: "_USE", block: token.BlockOptionsHelpers},
	{suffix: "_VARS", block: token.BlockOptionsHelpers},
	{suffix: "_VARS_OFF", block: token.BlockOptionsHelpers},
	{suffix: "_EXTRA_PATCHES", block: token.BlockOptionsHelpers},
	{suffix: "_BUILD_DEPENDS", block: token.BlockOptionsHelpers},
	{suffix: "_RUN_DEPENDS", block: token.BlockOptionsHelpers},
	{suffix: "_LIB_DEPENDS", block: token.BlockOptionsHelpers},
	{suffix: "_IMPLIES", block: token.BlockOptionsHelpers},
	{suffix: "_PREVENTS", block: token.BlockOptionsHelpers},
	{suffix: "_PREVENTS_MSG", block: token.BlockOptionsHelpers},
	{prefix: "OPTIONS_GROUP_", block: token.BlockOptionsGroup},
	{prefix: "OPTIONS_SINGLE_", block: token.BlockOptionsSingle},
	{prefix: "OPTIONS_MULTI_", block: token.BlockOptionsMulti},
	{prefix: "OPTIONS_RADIO_", block: token.BlockOptionsRadio},
	{suffix: "_DEPENDS", block: token.BlockLangDepends},
}

// knownHelperSuffixes is the set of suffixes IsOptionsHelper recognizes:
// every templatePatterns suffix whose block is BlockOptionsHelpers, with
// the leading underscore dropped (so _DESC, a definitions suffix, is
// not included).
var knownHelperSuffixes = func() map[string]bool {
	m := make(map[string]bool)
	for _, p := range templatePatterns {
		if p.suffix != "" && p.block == token.BlockOptionsHelpers {
			m[strings.TrimPrefix(p.suffix, "_")] = true
		}
	}
	return m
}()

// VariableOrderBlock returns the canonical block a variable name belongs
// to. Literal entries are checked first; templated patterns (longest
// literal first, effectively longest suffix/prefix first since ties are
// broken by declaration order) are checked on miss.
func VariableOrderBlock(name string) token.Block {
	if entry, ok := literalBlocks[name]; ok {
		return entry.block
	}

	best := token.BlockUnknown
	bestLen := -1
	for _, p := range templatePatterns {
		switch {
		case p.suffix != "" && strings.HasSuffix(name, p.suffix):
			if len(p.suffix) > bestLen {
				best, bestLen = p.block, len(p.suffix)
			}
		case p.prefix != "" && strings.HasPrefix(name, p.prefix):
			if len(p.prefix) > bestLen {
				best, bestLen = p.block, len(p.prefix)
			}
		}
	}
	return best
}

// CompareOrder is a total order on variable names honoring block order
// then per-block order (declared-literal position, or lexicographic for
// alpha-sorted blocks). Unknown variables sort after all known ones,
// ordered lexicographically among themselves.
func CompareOrder(a, b string) int {
	if a == b {
		return 0
	}
	blockA := VariableOrderBlock(a)
	blockB := VariableOrderBlock(b)
	posA, knownA := blockIndex[blockA]
	posB, knownB := blockIndex[blockB]

	if blockA == token.BlockUnknown {
		knownA = false
	}
	if blockB == token.BlockUnknown {
		knownB = false
	}

	if knownA && knownB && posA != posB {
		return cmpInt(posA, posB)
	}
	if knownA != knownB {
		if knownA {
			return -1
		}
		return 1
	}
	if knownA && knownB && posA == posB {
		// Same block: order by the block's sort mode.
		def := BlockOrder[posA]
		if def.sortMode == sortAlpha {
			return strings.Compare(a, b)
		}
		litA, okA := literalBlocks[a]
		litB, okB := literalBlocks[b]
		switch {
		case okA && okB:
			return cmpInt(litA.pos, litB.pos)
		case okA:
			return -1
		case okB:
			return 1
		default:
			return strings.Compare(a, b)
		}
	}
	// Both unknown: lexicographic.
	return strings.Compare(a, b)
}

func cmpInt(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// SortVariableNames stable-sorts a slice of variable names by
// CompareOrder, used by lint-order to build the canonical sequence.
func SortVariableNames(names []string) {
	sort.SliceStable(names, func(i, j int) bool {
		return CompareOrder(names[i], names[j]) < 0
	})
}
