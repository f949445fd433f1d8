package toki

import "fmt"

// Every pipeline stage reports failure through one of the error kinds below.
// All of them are fatal to the compilation: the driver prints the first one
// and stops, there is no resynchronization or multi-error reporting.

// ScanError is an unrecognized leading character, or a string left open at
// end of input.
type ScanError struct {
	Rune   rune
	Reason string
	Loc    *Location
}

func (e *ScanError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("%s: %s", e.Loc, e.Reason)
	}

	return fmt.Sprintf("%s: unknown lexeme '%c'", e.Loc, e.Rune)
}

// ClassifyError is a lexeme that matches no keyword, literal, identifier or
// separator pattern, or a numeric lexeme that fails to parse.
type ClassifyError struct {
	Lexeme string
	Reason string
	Loc    *Location
}

func (e *ClassifyError) Error() string {
	return fmt.Sprintf("%s: cannot evaluate %q: %s", e.Loc, e.Lexeme, e.Reason)
}

// GrammarError is an out-of-order or unsupported sequence of particles.
type GrammarError struct {
	Reason string
	Token  Token
}

func (e *GrammarError) Error() string {
	if e.Token.IsNull() {
		return e.Reason
	}

	return fmt.Sprintf("%s: %s near '%s'", e.Token.Loc, e.Reason, e.Token)
}

// SemanticError is a sentence shape the code generator does not recognize, or
// a subject/object of the wrong kind for the given verb.
type SemanticError struct {
	Reason string
	Token  Token
}

func (e *SemanticError) Error() string {
	if e.Token.IsNull() {
		return e.Reason
	}

	return fmt.Sprintf("%s: %s near '%s'", e.Token.Loc, e.Reason, e.Token)
}
