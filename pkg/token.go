package toki

import "fmt"

type TokenType int

//go:generate stringer -type=TokenType -trimprefix=Token
const (
	TokenNull TokenType = iota
	TokenKeyword
	TokenIdentifier
	TokenLiteral
	TokenSeparator
)

type Keyword int

// The keyword vocabulary is closed and ordered; keep the enum and the
// keywordTable in evaluator.go in sync.
const (
	KeywordE Keyword = iota
	KeywordO
	KeywordSitelen
	KeywordToki
	KeywordLi
	KeywordKama
	KeywordSama
	KeywordSin
	KeywordKin
)

var keywordNames = map[Keyword]string{
	KeywordE:       "e",
	KeywordO:       "o",
	KeywordSitelen: "sitelen",
	KeywordToki:    "toki",
	KeywordLi:      "li",
	KeywordKama:    "kama",
	KeywordSama:    "sama",
	KeywordSin:     "sin",
	KeywordKin:     "kin",
}

func (k Keyword) String() string {
	return keywordNames[k]
}

type Separator int

const (
	SeparatorPeriod Separator = iota
)

func (s Separator) String() string {
	if s == SeparatorPeriod {
		return "."
	}

	return "?"
}

type LiteralType int

const (
	LiteralString LiteralType = iota
	LiteralInteger
	LiteralFloat
)

// Literal carries exactly one payload, selected by Typ. The fields are typed
// directly; there is no raw value buffer to reinterpret.
type Literal struct {
	Typ   LiteralType
	Str   string
	Int   int64
	Float float64
}

// Token is a classified lexical unit. The zero value is the null token, which
// marks a phrase slot that was never filled. Tokens are built through the
// constructors below so the type tag and the payload always agree, and are
// immutable once the evaluator has produced them.
type Token struct {
	Typ       TokenType
	Keyword   Keyword
	Separator Separator
	Ident     string
	Literal   Literal
	Loc       *Location
}

func KeywordToken(kw Keyword, loc *Location) Token {
	return Token{Typ: TokenKeyword, Keyword: kw, Loc: loc}
}

func IdentifierToken(name string, loc *Location) Token {
	return Token{Typ: TokenIdentifier, Ident: name, Loc: loc}
}

func SeparatorToken(sep Separator, loc *Location) Token {
	return Token{Typ: TokenSeparator, Separator: sep, Loc: loc}
}

func StringToken(s string, loc *Location) Token {
	return Token{Typ: TokenLiteral, Literal: Literal{Typ: LiteralString, Str: s}, Loc: loc}
}

func IntegerToken(i int64, loc *Location) Token {
	return Token{Typ: TokenLiteral, Literal: Literal{Typ: LiteralInteger, Int: i}, Loc: loc}
}

func FloatToken(f float64, loc *Location) Token {
	return Token{Typ: TokenLiteral, Literal: Literal{Typ: LiteralFloat, Float: f}, Loc: loc}
}

func (t Token) IsNull() bool {
	return t.Typ == TokenNull
}

func (t Token) IsKeyword(kw Keyword) bool {
	return t.Typ == TokenKeyword && t.Keyword == kw
}

func (t Token) IsSeparator(sep Separator) bool {
	return t.Typ == TokenSeparator && t.Separator == sep
}

func (t Token) IsLiteral(typ LiteralType) bool {
	return t.Typ == TokenLiteral && t.Literal.Typ == typ
}

func (t Token) String() string {
	switch t.Typ {
	case TokenNull:
		return "<null>"
	case TokenKeyword:
		return t.Keyword.String()
	case TokenIdentifier:
		return t.Ident
	case TokenSeparator:
		return t.Separator.String()
	case TokenLiteral:
		switch t.Literal.Typ {
		case LiteralString:
			return fmt.Sprintf("%q", t.Literal.Str)
		case LiteralInteger:
			return fmt.Sprintf("%d", t.Literal.Int)
		case LiteralFloat:
			return fmt.Sprintf("%g", t.Literal.Float)
		}
	}

	return "<invalid>"
}

// Location is a line and column position in the source, both 1-based.
type Location struct {
	Line int
	Col  int
}

func (l *Location) String() string {
	if l == nil {
		return "?:?"
	}

	return fmt.Sprintf("%d:%d", l.Line, l.Col)
}
