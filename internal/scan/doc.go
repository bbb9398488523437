// Package scan is the external parallel scanner driver (SPEC_FULL.md
// §5): it walks a ports tree, parses each origin's Makefile with its
// own *ast.Document, and aggregates every worker's findings into one
// origin-sorted Report. It is a thin shell over internal/ast,
// internal/lexer, and internal/edit's unknown-variable/target passes —
// the core parser itself never imports scan.
package scan
