// Package edit is the library of independent token-stream
// transformations: canonical reorder, value sort, append-modifier and
// CMake-args sanitizers, EOL-comment hoisting, bump-revision/epoch,
// set-version, merge, lint-order, and unknown-variable/target reporting.
// Passes mark tokens edited/GC'd and may append new tokens. Some also
// change existing state in place: bump-revision/epoch,
// sort-variable-values and sanitize-cmake-args rewrite a token's Data,
// and sanitize-append-modifier rewrites a Variable's Modifier.
package edit

import (
	"github.com/Jehops/portfmt/internal/ast"
)

// UserData carries the parameters one pass invocation needs beyond the
// Document itself: an overlay Document for merge, a target version
// string for set-version, a compiled regex for get, and so on. Passes
// that need nothing leave it unused.
type UserData map[string]interface{}

// Pass is one named transformation over a Document's token stream.
type Pass interface {
	Name() string
	Run(doc *ast.Document, data UserData) error
}

// Registry is the static set of passes a pipeline can compose by name,
// mirroring the plugin-registry design note: a statically linked build
// inlines the same set a dynamically loaded one would provide.
var Registry = map[string]Pass{}

func register(p Pass) {
	Registry[p.Name()] = p
}

func init() {
	register(&ReorderPass{})
	register(&SortPass{})
	register(&SanitizeAppendPass{})
	register(&SanitizeCMakeArgsPass{})
	register(&SanitizeEOLCommentsPass{})
	register(&BumpRevisionPass{})
	register(&BumpEpochPass{})
	register(&SetVersionPass{})
	register(&MergePass{})
	register(&LintOrderPass{})
	register(&UnknownVariablesPass{})
	register(&UnknownTargetsPass{})
}

// Names returns every registered pass name, for CLI usage text and
// validating -D/-d flag arguments.
func Names() []string {
	names := make([]string, 0, len(Registry))
	for name := range Registry {
		names = append(names, name)
	}
	return names
}
