package toki

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"go.toki.dev/internal/test"
)

func lexemeValues(lexemes []Lexeme) []string {
	var vals []string
	for _, lex := range lexemes {
		vals = append(vals, lex.Value)
	}

	return vals
}

func TestScanner(t *testing.T) {
	cases := []struct {
		data   string
		fail   bool
		expect []string
	}{
		{
			"o sitelen e \"toki!\".",
			false,
			[]string{"o", "sitelen", "e", "\"toki!\"", "."},
		},
		{
			"foo.",
			false,
			[]string{"foo", "."},
		},
		{
			"x li 5.",
			false,
			[]string{"x", "li", "5", "."},
		},
		{
			"x li 5.5.",
			false,
			[]string{"x", "li", "5.5", "."},
		},
		{
			"5.x",
			false,
			[]string{"5", ".", "x"},
		},
		{
			"nimi2 suli",
			false,
			[]string{"nimi2", "suli"},
		},
		{
			"\"quotes \\\" stay\"",
			false,
			[]string{"\"quotes \\\" stay\""},
		},
		{
			"\"\"",
			false,
			[]string{"\"\""},
		},
		{
			"",
			false,
			nil,
		},
		{
			" \t\r\n ",
			false,
			nil,
		},
		{
			"..",
			false,
			[]string{".", "."},
		},
		{
			"\"unclosed string",
			true,
			nil,
		},
		{
			"@",
			true,
			nil,
		},
	}

	for _, c := range cases {
		s := NewScanner(strings.NewReader(c.data))

		lexemes, err := s.RunBlocking()
		if c.fail {
			assert.Error(t, err)
			assert.IsType(t, &ScanError{}, err)
			continue
		}

		assert.NoError(t, err)
		assert.Equal(t, c.expect, lexemeValues(lexemes))
	}
}

func TestScannerLocations(t *testing.T) {
	s := NewScannerFromString("foo\n bar.")

	lexemes, err := s.RunBlocking()
	assert.NoError(t, err)

	if assert.Len(t, lexemes, 3) {
		assert.Equal(t, &Location{Line: 1, Col: 1}, lexemes[0].Loc)
		assert.Equal(t, &Location{Line: 2, Col: 2}, lexemes[1].Loc)
		assert.Equal(t, &Location{Line: 2, Col: 5}, lexemes[2].Loc)
	}
}

func TestScannerErrorPosition(t *testing.T) {
	s := NewScannerFromString("foo ?")

	_, err := s.RunBlocking()
	if assert.IsType(t, &ScanError{}, err) {
		scanErr := err.(*ScanError)
		assert.Equal(t, '?', scanErr.Rune)
		assert.Equal(t, &Location{Line: 1, Col: 5}, scanErr.Loc)
	}
}

// Use a package-level variable to avoid compiler optimisation
var benchResult []Lexeme

func benchmarkScanner(size int, b *testing.B) {
	for n := 0; n < b.N; n++ {
		// Setup
		b.StopTimer()
		data := test.GetRandomLexemes(size)
		s := NewScannerFromString(data)

		var err error
		b.StartTimer()

		benchResult, err = s.RunBlocking()
		if err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkScanner100(b *testing.B) {
	benchmarkScanner(100, b)
}

func BenchmarkScanner1000(b *testing.B) {
	benchmarkScanner(1000, b)
}

func BenchmarkScanner10000(b *testing.B) {
	benchmarkScanner(10000, b)
}

func BenchmarkScanner100000(b *testing.B) {
	benchmarkScanner(100000, b)
}
