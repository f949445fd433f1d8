package toki

import (
	"bufio"
	"io"
	"strings"
	"unicode"
	"unicode/utf8"
)

type LexemeType int
type stateFunc func(s *Scanner) stateFunc

const (
	EOF rune = 0

	LexemeError LexemeType = iota
	LexemeEOF
	LexemeText
)

// Lexeme is a raw, unclassified substring of the source. Quoted strings keep
// both surrounding quote characters; stripping them is the evaluator's job.
type Lexeme struct {
	Typ   LexemeType
	Value string
	Loc   *Location
}

// Scanner splits source text into lexemes: words, quoted strings, numeric
// runs, and the sentence-terminating period. The period is always emitted as
// its own lexeme, never absorbed into the word or number before it.
type Scanner struct {
	reader *bufio.Reader
	done   chan Lexeme
	err    error

	line     int
	col      int
	prevLine int
	prevCol  int
}

func NewScanner(reader io.Reader) *Scanner {
	return &Scanner{
		reader: bufio.NewReader(reader),
		done:   make(chan Lexeme),
		line:   1,
	}
}

func NewScannerFromString(source string) *Scanner {
	return NewScanner(strings.NewReader(source))
}

func (s *Scanner) Chan() chan Lexeme {
	return s.done
}

func (s *Scanner) Run() {
	for state := idleState; state != nil; {
		state = state(s)
	}

	close(s.done)
}

func (s *Scanner) RunBlocking() ([]Lexeme, error) {
	go s.Run()

	var lexemes []Lexeme
	for lex := range s.Chan() {
		switch lex.Typ {
		case LexemeEOF:
			return lexemes, nil
		case LexemeError:
			return nil, s.err
		default:
			lexemes = append(lexemes, lex)
		}
	}

	return lexemes, nil
}

func idleState(s *Scanner) stateFunc {
	for {
		switch r := s.peek(); {
		case r == EOF:
			s.emit(LexemeEOF, "", s.loc())
			return nil
		case unicode.IsSpace(r) || unicode.IsControl(r):
			s.next()
			continue
		case unicode.IsLetter(r):
			return wordState
		case r == '"':
			return stringState
		case r >= '0' && r <= '9':
			return numberState
		case r == '.':
			loc := s.loc()
			s.next()
			s.emit(LexemeText, ".", loc)
			continue
		default:
			return s.errorf(&ScanError{Rune: r, Loc: s.loc()})
		}
	}
}

func wordState(s *Scanner) stateFunc {
	loc := s.loc()

	var word strings.Builder
	for r := s.peek(); unicode.IsLetter(r) || unicode.IsDigit(r); r = s.peek() {
		word.WriteRune(s.next())
	}

	s.emit(LexemeText, word.String(), loc)
	return idleState
}

func stringState(s *Scanner) stateFunc {
	loc := s.loc()

	var str strings.Builder
	str.WriteRune(s.next()) // opening double-quote

	for {
		r := s.next()
		if r == EOF {
			return s.errorf(&ScanError{Reason: "unclosed string", Loc: loc})
		}

		str.WriteRune(r)

		if r == '\\' {
			// The escaped rune can never close the string
			esc := s.next()
			if esc == EOF {
				return s.errorf(&ScanError{Reason: "unclosed string", Loc: loc})
			}

			str.WriteRune(esc)
			continue
		}

		if r == '"' {
			s.emit(LexemeText, str.String(), loc)
			return idleState
		}
	}
}

func numberState(s *Scanner) stateFunc {
	loc := s.loc()

	var num strings.Builder
	for {
		r := s.peek()
		if r >= '0' && r <= '9' {
			num.WriteRune(s.next())
			continue
		}

		if r == '.' {
			// A period continues the number only when a digit follows;
			// otherwise it terminates the sentence
			dot := s.loc()
			s.next()
			if d := s.peek(); d >= '0' && d <= '9' {
				num.WriteRune('.')
				continue
			}

			s.emit(LexemeText, num.String(), loc)
			s.emit(LexemeText, ".", dot)
			return idleState
		}

		s.emit(LexemeText, num.String(), loc)
		return idleState
	}
}

func (s *Scanner) errorf(err *ScanError) stateFunc {
	s.err = err
	s.done <- Lexeme{
		Typ:   LexemeError,
		Value: err.Error(),
		Loc:   err.Loc,
	}

	return nil
}

func (s *Scanner) emit(t LexemeType, val string, loc *Location) {
	s.done <- Lexeme{
		Typ:   t,
		Value: val,
		Loc:   loc,
	}
}

func (s *Scanner) loc() *Location {
	return &Location{Line: s.line, Col: s.col + 1}
}

func (s *Scanner) peek() rune {
	r := s.next()
	if r != EOF {
		_ = s.reader.UnreadRune()
		s.line = s.prevLine
		s.col = s.prevCol
	}

	return r
}

func (s *Scanner) next() rune {
	r, _, err := s.reader.ReadRune()
	if err != nil {
		if err == io.EOF {
			return EOF
		}

		return utf8.RuneError
	}

	s.prevLine = s.line
	s.prevCol = s.col

	if r == '\n' {
		s.line++
		s.col = 0
	} else {
		s.col++
	}

	return r
}
