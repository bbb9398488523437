package rules

import (
	"strings"

	"github.com/Jehops/portfmt/internal/token"
)

// leaveAlone is the set of variables whose RHS order carries meaning and
// so must never be sorted, even though they are list-valued.
var leaveAlone = map[string]bool{
	"CATEGORIES":   true, // first category determines the port's primary directory
	"MASTER_SITES": true, // mirrors are tried in listed order
	"PATCH_SITES":  true,
	"PLIST_SUB":    true, // substitution order matters for overlapping keys
	"SUB_LIST":     true,
}

// appendOnlyVariables must keep their `+=` modifier: compiler/linker flag
// variables where later ports or included files are expected to append to
// earlier contributions.
var appendOnlyVariables = map[string]bool{
	"CFLAGS":     true,
	"CXXFLAGS":   true,
	"CPPFLAGS":   true,
	"LDFLAGS":    true,
	"RUSTFLAGS":  true,
	"MAKE_ENV":   true,
	"CONFIGURE_ENV": true,
}

// ShouldSort reports whether a variable's RHS should be sorted. Shell
// (!=) assignments are never sorted since their value is opaque shell
// output, not a list. Variables in leaveAlone preserve their declared
// order.
func ShouldSort(v token.Variable) bool {
	if v.Modifier == token.Shell {
		return false
	}
	if leaveAlone[v.Name] {
		return false
	}
	return true
}

// IsAppendOnlyVariable reports whether name must keep a `+=` modifier on
// its first occurrence rather than being sanitized to `=`.
func IsAppendOnlyVariable(name string) bool {
	return appendOnlyVariables[name]
}

// IsOptionsHelper splits a variable name like FOO_CMAKE_ON into
// ("FOO", "CMAKE_ON") if the suffix is a known helper. ok is false if no
// known helper suffix matches.
func IsOptionsHelper(name string) (option, helper string, ok bool) {
	for suffix := range knownHelperSuffixes {
		full := "_" + suffix
		if strings.HasSuffix(name, full) && len(name) > len(full) {
			return strings.TrimSuffix(name, full), suffix, true
		}
	}
	return "", "", false
}

// preserveEOLCommentVariables lists variables whose trailing RHS comment token
// must never be hoisted to a standalone COMMENT line, because the
// comment is semantically tied to being on that exact line (a
// human-authored inline annotation next to a specific dependency, say).
var preserveEOLCommentVariables = map[string]bool{
	"BROKEN":     true,
	"IGNORE":     true,
	"DEPRECATED": true,
}

// PreserveEOLComment reports whether a variable's trailing comment token
// must stay attached to the assignment line rather than being hoisted.
func PreserveEOLComment(variableName string) bool {
	return preserveEOLCommentVariables[variableName]
}

// includeBsdPortMkNames is the set of `.include` arguments that mark the
// end of the user-editable region of a port Makefile.
var includeBsdPortMkNames = map[string]bool{
	"<bsd.port.mk>":        true,
	"<bsd.port.pre.mk>":    true,
	"<bsd.port.post.mk>":   true,
	"${PORTSDIR}/Mk/bsd.port.mk": true,
}

// IsIncludeBSDPortMk reports whether a conditional's argument is an
// `.include` of bsd.port.mk or a sibling, which marks the end of the
// canonically-reorderable region.
func IsIncludeBSDPortMk(directiveName, argument string) bool {
	if directiveName != "include" {
		return false
	}
	return includeBsdPortMkNames[strings.TrimSpace(argument)]
}
