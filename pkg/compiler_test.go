package toki

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCompilerSentences(t *testing.T) {
	sentences, err := NewCompiler().Sentences(
		strings.NewReader("o sitelen e \"toki!\". x li kama e 5."))

	assert.NoError(t, err)
	assert.Len(t, sentences, 2)

	assert.True(t, sentences[0].Subject.Noun.IsNull())
	assert.True(t, sentences[0].Predicate.Verb.IsKeyword(KeywordSitelen))
	assert.Equal(t, "x", sentences[1].Subject.Noun.Ident)
	assert.True(t, sentences[1].Predicate.Verb.IsKeyword(KeywordKama))
}

// The first failing stage aborts the run; the error keeps its kind.
func TestCompilerErrorPropagation(t *testing.T) {
	cases := []struct {
		source string
		expect error
	}{
		{"o sitelen e $5.", &ScanError{}},
		{"x e y.", &GrammarError{}},
		{"x li kama e 5", &GrammarError{}},
		{"x li sama e 5.", &SemanticError{}},
	}

	for _, c := range cases {
		_, _, err := NewCompiler().CompileToSections(strings.NewReader(c.source))

		assert.Error(t, err)
		assert.IsType(t, c.expect, err)
	}
}

func TestCompilerUnknownBackend(t *testing.T) {
	c := NewCompiler()
	c.Backend = "wasm"

	err := c.CompileFromReader(strings.NewReader("x li kama e 5."), "out")
	assert.EqualError(t, err, `unknown backend "wasm"`)
}

func TestCompilerMissingFile(t *testing.T) {
	err := NewCompiler().Compile("does/not/exist.toki", "out")
	assert.Error(t, err)
}
