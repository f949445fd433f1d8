package toki

import (
	"fmt"
	"strconv"
	"strings"
)

// SectionData collects the lines of `section .data` plus a monotonically
// increasing counter used to label anonymous string literals. SectionText
// collects the instruction lines of `section .text`. Both are append-only
// while sentences compile; the writer reads them afterwards.
type SectionData struct {
	Lines    []string
	Literals int
}

func (d *SectionData) writef(format string, args ...interface{}) {
	d.Lines = append(d.Lines, fmt.Sprintf(format, args...))
}

type SectionText struct {
	Lines []string
}

func (t *SectionText) writef(format string, args ...interface{}) {
	t.Lines = append(t.Lines, fmt.Sprintf(format, args...))
}

// Generator turns parsed sentences into assembly fragments. Dispatch is a
// closed case analysis over sentence shapes; a new verb means a new case.
type Generator struct{}

func NewGenerator() *Generator {
	return &Generator{}
}

func (g *Generator) CompileSentence(s Sentence, data *SectionData, text *SectionText) error {
	subj := s.Subject.Noun
	verb := s.Predicate.Verb

	switch {
	case subj.IsNull() && verb.IsNull():
		return &SemanticError{Reason: "missing verb in sentence"}

	case subj.IsNull() && verb.IsKeyword(KeywordSitelen):
		return g.printStatement(s, data, text)

	case !subj.IsNull() && verb.IsNull():
		// A lone noun phrase does nothing
		return nil

	case !subj.IsNull() && verb.IsKeyword(KeywordKama):
		return g.assignStatement(s, data)

	default:
		return &SemanticError{
			Reason: "unsupported sentence shape",
			Token:  verb,
		}
	}
}

// printStatement lowers `o sitelen e <object>.` into a printf call: push the
// object and its format string, call, then pop the arguments off the stack.
func (g *Generator) printStatement(s Sentence, data *SectionData, text *SectionText) error {
	obj := s.Predicate.Object.Noun
	cleanup := 8

	switch {
	case obj.Typ == TokenIdentifier:
		text.writef("push    dword VARIABLE_%s", obj.Ident)
		text.writef("push    dword formatString")

	case obj.IsLiteral(LiteralString):
		data.writef("LITERAL_%d db \"%s\", 0", data.Literals, obj.Literal.Str)
		text.writef("push    dword LITERAL_%d", data.Literals)
		text.writef("push    dword formatString")
		data.Literals++

	case obj.IsLiteral(LiteralInteger):
		text.writef("push    %d", obj.Literal.Int)
		text.writef("push    dword formatInteger")

	case obj.IsLiteral(LiteralFloat):
		// A bare float constant is not valid in a push instruction; route
		// the value through a data-section quadword and push its two dword
		// halves, high first, so printf reads a full double.
		data.writef("LITERAL_%d dq %s", data.Literals, formatFloat(obj.Literal.Float))
		text.writef("push    dword [LITERAL_%d + 4]", data.Literals)
		text.writef("push    dword [LITERAL_%d]", data.Literals)
		text.writef("push    dword formatFloat")
		data.Literals++
		cleanup = 12

	default:
		return &SemanticError{
			Reason: "incorrect object for verb 'sitelen'",
			Token:  obj,
		}
	}

	text.writef("call    _printf")
	text.writef("add     esp, byte %d", cleanup)

	return nil
}

// assignStatement lowers `<name> li kama e <literal>.` into one data-section
// declaration: a zero-terminated byte buffer for strings, a quadword for
// numbers, initialized with the literal.
func (g *Generator) assignStatement(s Sentence, data *SectionData) error {
	subj := s.Subject.Noun
	obj := s.Predicate.Object.Noun

	if subj.Typ != TokenIdentifier {
		return &SemanticError{
			Reason: "subject must be identifier in assignment",
			Token:  subj,
		}
	}

	switch {
	case obj.IsNull():
		return &SemanticError{
			Reason: "assignment statement needs object",
			Token:  s.Predicate.Verb,
		}

	case obj.IsLiteral(LiteralString):
		data.writef("VARIABLE_%s db \"%s\", 0", subj.Ident, obj.Literal.Str)

	case obj.IsLiteral(LiteralInteger):
		data.writef("VARIABLE_%s dq %d", subj.Ident, obj.Literal.Int)

	case obj.IsLiteral(LiteralFloat):
		data.writef("VARIABLE_%s dq %s", subj.Ident, formatFloat(obj.Literal.Float))

	default:
		return &SemanticError{
			Reason: "assignment object must be a literal",
			Token:  obj,
		}
	}

	return nil
}

func formatFloat(f float64) string {
	s := strconv.FormatFloat(f, 'f', -1, 64)
	if !strings.ContainsRune(s, '.') {
		s += ".0"
	}

	return s
}
