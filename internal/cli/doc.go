// Package cli provides the portfmt command-line interface using Cobra.
//
// It is the only package that touches os.Args, stdin/stdout/stderr, and
// the file system directly: argument parsing, flag grouping, color
// resolution, sandbox entry, and dispatch to internal/lexer,
// internal/edit, internal/emit, and internal/scan all happen here. The
// parse-classify-transform-emit core never imports this package.
//
// # Commands
//
//   - portfmt format: reformat a Makefile into canonical order
//   - portfmt edit {bump-epoch,bump-revision,get,merge,set-version,unknown-vars}:
//     apply one targeted transformation
//   - portfmt lint: report whether a Makefile is already canonical
//   - portfmt scan: walk a ports tree in parallel and aggregate findings
//
// # Color detection
//
// Color is automatically enabled when stdout is a terminal
// (golang.org/x/term) and disabled when piped; --no-color always wins.
package cli
