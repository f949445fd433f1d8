package toki

import (
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

var keywordTable = map[string]Keyword{
	"e":       KeywordE,
	"o":       KeywordO,
	"sitelen": KeywordSitelen,
	"toki":    KeywordToki,
	"li":      KeywordLi,
	"kama":    KeywordKama,
	"sama":    KeywordSama,
	"sin":     KeywordSin,
	"kin":     KeywordKin,
}

var separatorTable = map[string]Separator{
	".": SeparatorPeriod,
}

// Evaluate classifies each lexeme into a token. The order matters: the
// keyword lookup runs before the identifier shape check because every keyword
// is itself a valid identifier shape.
func Evaluate(lexemes []Lexeme) ([]Token, error) {
	tokens := make([]Token, 0, len(lexemes))

	for _, lex := range lexemes {
		tok, err := evaluateLexeme(lex)
		if err != nil {
			return nil, err
		}

		tokens = append(tokens, tok)
	}

	return tokens, nil
}

func evaluateLexeme(lex Lexeme) (Token, error) {
	if kw, ok := keywordTable[lex.Value]; ok {
		return KeywordToken(kw, lex.Loc), nil
	}

	if strings.HasPrefix(lex.Value, "\"") {
		return stringToken(lex)
	}

	if first, _ := utf8.DecodeRuneInString(lex.Value); unicode.IsDigit(first) {
		return numberToken(lex)
	}

	if isIdentifier(lex.Value) {
		return IdentifierToken(lex.Value, lex.Loc), nil
	}

	if sep, ok := separatorTable[lex.Value]; ok {
		return SeparatorToken(sep, lex.Loc), nil
	}

	return Token{}, &ClassifyError{
		Lexeme: lex.Value,
		Reason: "matches no token pattern",
		Loc:    lex.Loc,
	}
}

func stringToken(lex Lexeme) (Token, error) {
	if len(lex.Value) < 2 || !strings.HasSuffix(lex.Value, "\"") {
		return Token{}, &ClassifyError{
			Lexeme: lex.Value,
			Reason: "malformed string literal",
			Loc:    lex.Loc,
		}
	}

	return StringToken(lex.Value[1:len(lex.Value)-1], lex.Loc), nil
}

func numberToken(lex Lexeme) (Token, error) {
	if !strings.Contains(lex.Value, ".") {
		i, err := strconv.ParseInt(lex.Value, 10, 64)
		if err != nil {
			return Token{}, &ClassifyError{
				Lexeme: lex.Value,
				Reason: "bad integer literal",
				Loc:    lex.Loc,
			}
		}

		return IntegerToken(i, lex.Loc), nil
	}

	f, err := strconv.ParseFloat(lex.Value, 64)
	if err != nil {
		return Token{}, &ClassifyError{
			Lexeme: lex.Value,
			Reason: "bad float literal",
			Loc:    lex.Loc,
		}
	}

	return FloatToken(f, lex.Loc), nil
}

func isIdentifier(s string) bool {
	for i, r := range s {
		if i == 0 {
			if !unicode.IsLetter(r) {
				return false
			}

			continue
		}

		if !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '_' {
			return false
		}
	}

	return len(s) > 0
}
