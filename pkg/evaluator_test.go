package toki

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func textLexemes(vals ...string) []Lexeme {
	var lexemes []Lexeme
	for _, v := range vals {
		lexemes = append(lexemes, Lexeme{Typ: LexemeText, Value: v})
	}

	return lexemes
}

func TestEvaluate(t *testing.T) {
	cases := []struct {
		data   []Lexeme
		fail   bool
		expect []Token
	}{
		{
			textLexemes("o", "sitelen", "e", "\"toki!\"", "."),
			false,
			[]Token{
				KeywordToken(KeywordO, nil),
				KeywordToken(KeywordSitelen, nil),
				KeywordToken(KeywordE, nil),
				StringToken("toki!", nil),
				SeparatorToken(SeparatorPeriod, nil),
			},
		},
		{
			textLexemes("soweli", "li", "kama", "e", "5"),
			false,
			[]Token{
				IdentifierToken("soweli", nil),
				KeywordToken(KeywordLi, nil),
				KeywordToken(KeywordKama, nil),
				KeywordToken(KeywordE, nil),
				IntegerToken(5, nil),
			},
		},
		{
			textLexemes("5.5", "0.25"),
			false,
			[]Token{
				FloatToken(5.5, nil),
				FloatToken(0.25, nil),
			},
		},
		{
			textLexemes("nimi_2", "x9"),
			false,
			[]Token{
				IdentifierToken("nimi_2", nil),
				IdentifierToken("x9", nil),
			},
		},
		{
			textLexemes("\"\""),
			false,
			[]Token{
				StringToken("", nil),
			},
		},
		{
			// strconv range failure for an oversized integer
			textLexemes("99999999999999999999"),
			true,
			nil,
		},
		{
			textLexemes("_nimi"),
			true,
			nil,
		},
		{
			textLexemes("@"),
			true,
			nil,
		},
	}

	for _, c := range cases {
		toks, err := Evaluate(c.data)
		if c.fail {
			assert.Error(t, err)
			assert.IsType(t, &ClassifyError{}, err)
			continue
		}

		assert.NoError(t, err)
		assert.Equal(t, c.expect, toks)
	}
}

// Every keyword is also a valid identifier shape; the keyword lookup must win.
func TestEvaluateKeywordPrecedence(t *testing.T) {
	for name, kw := range keywordTable {
		toks, err := Evaluate(textLexemes(name))

		assert.NoError(t, err)
		if assert.Len(t, toks, 1) {
			assert.Equal(t, TokenKeyword, toks[0].Typ)
			assert.Equal(t, kw, toks[0].Keyword)
		}
	}
}

// Scanning the joined keyword vocabulary and evaluating the result must
// reproduce the keyword identities in order.
func TestTokenizationRoundTrip(t *testing.T) {
	words := []string{"e", "o", "sitelen", "toki", "li", "kama", "sama", "sin", "kin"}

	s := NewScannerFromString(strings.Join(words, " "))
	lexemes, err := s.RunBlocking()
	assert.NoError(t, err)

	toks, err := Evaluate(lexemes)
	assert.NoError(t, err)

	if assert.Len(t, toks, len(words)) {
		for i, word := range words {
			assert.Equal(t, TokenKeyword, toks[i].Typ)
			assert.Equal(t, word, toks[i].Keyword.String())
		}
	}
}
