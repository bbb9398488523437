// Package token defines the atomic unit of a parsed Makefile: the Token,
// and the higher-level Variable/Target/Conditional values a group of
// tokens describes.
//
// A Token never owns another Token directly; siblings in a bracketed
// range (VARIABLE_START..VARIABLE_END, TARGET_START..TARGET_END,
// CONDITIONAL_START..CONDITIONAL_END) are addressed by index into the
// arena an ast.Document owns, not by pointer, so that cloning a range for
// an edit pass is a cheap slice copy rather than a deep-pointer walk.
package token

// Variety classifies a Token. The set is exhaustive: every line of a
// well-formed port Makefile produces tokens of exactly these varieties.
type Variety int

const (
	// Comment is a standalone comment line, or an empty line preserved to
	// keep vertical spacing.
	Comment Variety = iota

	// VariableStart opens a variable assignment range.
	VariableStart
	// VariableToken carries one whitespace-separated RHS word.
	VariableToken
	// VariableEnd closes a variable assignment range.
	VariableEnd

	// TargetStart opens a target block (names + deps).
	TargetStart
	// TargetCommandStart opens the recipe-line portion of a target block.
	TargetCommandStart
	// TargetCommandToken is one recipe line.
	TargetCommandToken
	// TargetCommandEnd closes the recipe-line portion.
	TargetCommandEnd
	// TargetEnd closes a target block.
	TargetEnd

	// ConditionalStart opens a directive (.if, .else, .endif, .include, ...).
	ConditionalStart
	// ConditionalToken carries one argument word of a directive.
	ConditionalToken
	// ConditionalEnd closes a directive.
	ConditionalEnd
)

// String names the variety the way debug output and test fixtures refer
// to it.
func (v Variety) String() string {
	switch v {
	case Comment:
		return "COMMENT"
	case VariableStart:
		return "VARIABLE_START"
	case VariableToken:
		return "VARIABLE_TOKEN"
	case VariableEnd:
		return "VARIABLE_END"
	case TargetStart:
		return "TARGET_START"
	case TargetCommandStart:
		return "TARGET_COMMAND_START"
	case TargetCommandToken:
		return "TARGET_COMMAND_TOKEN"
	case TargetCommandEnd:
		return "TARGET_COMMAND_END"
	case TargetEnd:
		return "TARGET_END"
	case ConditionalStart:
		return "CONDITIONAL_START"
	case ConditionalToken:
		return "CONDITIONAL_TOKEN"
	case ConditionalEnd:
		return "CONDITIONAL_END"
	default:
		return "UNKNOWN"
	}
}

// Range is an inclusive source line range, 1-based.
type Range struct {
	StartLine int
	EndLine   int
}

// Token is the atomic unit of the parsed stream.
type Token struct {
	Variety Variety
	Lines   Range
	Data    string

	// CondContext is the stack of conditional directive indices (into the
	// Document's Conditionals) this token is nested under, outermost first.
	CondContext []int

	// Variable is the index of the owning Variable, valid for
	// VARIABLE_START/VARIABLE_TOKEN/VARIABLE_END. -1 otherwise.
	Variable int

	// Target is the index of the owning Target, valid for
	// TARGET_START/TARGET_COMMAND_*/TARGET_END. -1 otherwise.
	Target int

	// Conditional is the index of the owning Conditional, valid for
	// CONDITIONAL_START/CONDITIONAL_TOKEN/CONDITIONAL_END. -1 otherwise.
	Conditional int

	// Edited marks a token an edit pass has produced or mutated.
	Edited bool
	// GC marks a token as logically removed from the stream. The emitter
	// skips GC'd tokens; they remain addressable by index until the
	// Document is discarded.
	GC bool
}

// New creates a Token of the given variety with Variable/Target/
// Conditional defaulted to -1 (none), so callers only need to set the
// owning index that actually applies.
func New(variety Variety) Token {
	return Token{Variety: variety, Variable: -1, Target: -1, Conditional: -1}
}

// Clone returns a copy of the token with Edited set, ready for an edit
// pass to register into the arena and mutate further. The original should
// be marked GC by the caller.
func (t Token) Clone() Token {
	c := t
	c.CondContext = append([]int(nil), t.CondContext...)
	c.Edited = true
	c.GC = false
	return c
}

// Modifier is the assignment operator of a Variable.
type Modifier int

const (
	Assign  Modifier = iota // =
	Append                  // +=
	Expand                  // :=
	Default                 // ?=
	Shell                   // !=
	Optional                // ?= on BSD make means default; Optional models "+=" used on an unset variable in some dialects
)

// String renders the modifier exactly as it appears on the RHS of the
// assignment.
func (m Modifier) String() string {
	switch m {
	case Append:
		return "+="
	case Expand:
		return ":="
	case Default:
		return "?="
	case Shell:
		return "!="
	case Optional:
		return "?="
	default:
		return "="
	}
}

// Variable is a parsed assignment: a name, its modifier, and a link to
// the token range carrying its RHS words.
type Variable struct {
	Name     string
	Modifier Modifier

	// StartIndex/EndIndex are the arena indices of the VARIABLE_START and
	// VARIABLE_END tokens bracketing this variable's range.
	StartIndex int
	EndIndex   int
}

// EqualBucket reports whether two variables are equal under the
// "modifier-bucket" rule some passes use: same name, and both append-like
// (+=) or both not.
func (v Variable) EqualBucket(o Variable) bool {
	return v.Name == o.Name && (v.Modifier == Append) == (o.Modifier == Append)
}

// Target is a parsed target block: one or more names, its ordered
// dependency list, and an optional trailing comment.
type Target struct {
	Names        []string
	Dependencies []string
	OrderOnly    []string
	Comment      string

	StartIndex int
	EndIndex   int
}

// DirectiveKind is the exhaustive set of conditional directive kinds.
type DirectiveKind int

const (
	DirectiveIf DirectiveKind = iota
	DirectiveIfdef
	DirectiveIfndef
	DirectiveIfmake
	DirectiveElse
	DirectiveElif
	DirectiveEndif
	DirectiveInclude
	DirectiveSinclude
	DirectiveError
	DirectiveOther
)

// String renders the directive kind as the leading dot-word
// (".if", ".endif", ...).
func (d DirectiveKind) String() string {
	switch d {
	case DirectiveIf:
		return ".if"
	case DirectiveIfdef:
		return ".ifdef"
	case DirectiveIfndef:
		return ".ifndef"
	case DirectiveIfmake:
		return ".ifmake"
	case DirectiveElse:
		return ".else"
	case DirectiveElif:
		return ".elif"
	case DirectiveEndif:
		return ".endif"
	case DirectiveInclude:
		return ".include"
	case DirectiveSinclude:
		return ".sinclude"
	case DirectiveError:
		return ".error"
	default:
		return ".other"
	}
}

// directiveKinds maps the directive name (without the leading dot) to its
// Kind, used by the lexer when classifying a conditional line.
var directiveKinds = map[string]DirectiveKind{
	"if":       DirectiveIf,
	"ifdef":    DirectiveIfdef,
	"ifndef":   DirectiveIfndef,
	"ifmake":   DirectiveIfmake,
	"else":     DirectiveElse,
	"elif":     DirectiveElif,
	"elifdef":  DirectiveElif,
	"elifndef": DirectiveElif,
	"endif":    DirectiveEndif,
	"include":  DirectiveInclude,
	"sinclude": DirectiveSinclude,
	"error":    DirectiveError,
}

// DirectiveKindFor returns the DirectiveKind for a directive name (as it
// appears after the leading dot, e.g. "if", "endif", "include").
func DirectiveKindFor(name string) DirectiveKind {
	if k, ok := directiveKinds[name]; ok {
		return k
	}
	return DirectiveOther
}

// Pushes reports whether a directive of this kind pushes a new level onto
// the conditional-nesting stack.
func (d DirectiveKind) Pushes() bool {
	switch d {
	case DirectiveIf, DirectiveIfdef, DirectiveIfndef, DirectiveIfmake:
		return true
	default:
		return false
	}
}

// Pops reports whether a directive of this kind pops the conditional
// nesting stack.
func (d DirectiveKind) Pops() bool {
	return d == DirectiveEndif
}

// Replaces reports whether a directive of this kind replaces the top of
// the conditional-nesting stack in place (.else, .elif).
func (d DirectiveKind) Replaces() bool {
	return d == DirectiveElse || d == DirectiveElif
}

// Conditional is a parsed directive: its kind and argument text.
type Conditional struct {
	Kind     DirectiveKind
	Name     string // raw directive name, e.g. "elifdef"
	Argument string

	StartIndex int
	EndIndex   int
}

// developerArmPredicates are the conditional arguments that mark a
// "developer-only" branch. Per spec.md Design Notes §9(a),
// make(makesum) is deliberately included on equal footing with
// defined(DEVELOPER)/defined(MAINTAINER_MODE).
var developerArmPredicates = map[string]bool{
	"defined(DEVELOPER)":      true,
	"defined(MAINTAINER_MODE)": true,
	"make(makesum)":           true,
}

// IsDeveloperArm reports whether a conditional argument marks a
// developer-only branch that edit passes must skip tokens inside of.
func IsDeveloperArm(argument string) bool {
	return developerArmPredicates[argument]
}
