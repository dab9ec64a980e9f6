package template

import "fmt"

// StructuralErrorKind classifies a malformed template source.
type StructuralErrorKind int

const (
	// UnmatchedClose means a close tag appeared with no conditional open.
	UnmatchedClose StructuralErrorKind = iota
	// MismatchedClose means a close tag named a predicate other than the
	// innermost open conditional.
	MismatchedClose
	// UnclosedSection means the source ended while a conditional was open.
	UnclosedSection
	// DanglingNegation means a negation tag appeared while the innermost
	// conditional on the same predicate was already in its false branch.
	DanglingNegation
	// MalformedTag means a tag was unterminated or had an invalid name.
	MalformedTag
)

// String returns a short human-readable label for the kind.
func (k StructuralErrorKind) String() string {
	switch k {
	case UnmatchedClose:
		return "unmatched close tag"
	case MismatchedClose:
		return "mismatched close tag"
	case UnclosedSection:
		return "unclosed section"
	case DanglingNegation:
		return "dangling negation tag"
	case MalformedTag:
		return "malformed tag"
	default:
		return fmt.Sprintf("structural error %d", int(k))
	}
}

// StructuralError reports a template source whose tags do not balance. It is
// raised by Parse before any Context is involved.
type StructuralError struct {
	// Template is the name passed to Parse.
	Template string
	// Kind classifies the defect.
	Kind StructuralErrorKind
	// Predicate is the name on the offending tag, when there is one.
	Predicate string
	// Expected is the predicate of the innermost open conditional
	// (MismatchedClose only).
	Expected string
	// Line and Column locate the offending tag (1-based, column in bytes).
	// For UnclosedSection they locate the opening tag.
	Line   int
	Column int
}

func (e *StructuralError) Error() string {
	loc := fmt.Sprintf("%s:%d:%d", e.Template, e.Line, e.Column)
	switch e.Kind {
	case MismatchedClose:
		return fmt.Sprintf("%s: %s: {{/%s}} closes open section %q", loc, e.Kind, e.Predicate, e.Expected)
	case MalformedTag:
		if e.Predicate == "" {
			return fmt.Sprintf("%s: %s", loc, e.Kind)
		}
		return fmt.Sprintf("%s: %s %q", loc, e.Kind, e.Predicate)
	default:
		return fmt.Sprintf("%s: %s for %q", loc, e.Kind, e.Predicate)
	}
}

// MissingValueError reports a placeholder on the rendered path whose name is
// absent from the Context.
type MissingValueError struct {
	Template string
	Name     string
}

func (e *MissingValueError) Error() string {
	return fmt.Sprintf("rendering %s: missing value %q", e.Template, e.Name)
}

// MissingPredicateError reports a conditional on the rendered path whose
// predicate is absent from the Context.
type MissingPredicateError struct {
	Template  string
	Predicate string
}

func (e *MissingPredicateError) Error() string {
	return fmt.Sprintf("rendering %s: missing predicate %q", e.Template, e.Predicate)
}

// ConflictError reports a name supplied both as a value and as a flag.
type ConflictError struct {
	Name string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("context name %q is both a value and a flag", e.Name)
}
