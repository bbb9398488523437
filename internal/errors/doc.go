// Package errors defines the exhaustive error-kind hierarchy for portfmt.
//
// Every failure the parser, an edit pass, or the emitter can produce is one
// of a fixed set of kinds. Each kind that is raised has its own Go type
// implementing error so callers can type-switch or errors.As when they
// need to react to a specific failure (ExpectedInt from bump-revision,
// say) rather than just print a message.
//
// # Error kinds
//
//   - SyntaxError: UnparseableLine, one entry per failing line; a Parser
//     accumulates every syntax error it hits rather than stopping at the
//     first one.
//   - EditError: EditFailed, raised by an edit pass that cannot complete
//     (a malformed merge overlay, for instance).
//   - ExpectedIntError: ExpectedInt, raised by bump-revision/bump-epoch
//     when the existing value isn't an integer.
//   - IOError: IOError, wraps a failure to read or write a file.
//   - NotFoundError: NotFound, a requested variable/target/pass doesn't
//     exist.
//   - InvalidArgumentError: InvalidArgument, a CLI or pass argument is
//     malformed.
//   - KindUnspecified / KindBufferTooSmall: catch-alls mirrored from the
//     original tool's error kinds, kept for classification completeness.
//     They exist only as Kind values, with no dedicated error type, and
//     nothing in this codebase raises them.
package errors
