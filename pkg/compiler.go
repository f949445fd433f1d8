package toki

import (
	"bytes"
	"fmt"
	"io"
	"os"
)

type Backend string

const (
	BackendNASM Backend = "nasm"
	BackendLLVM Backend = "llvm"
)

// Compiler drives the whole pipeline: scan, evaluate, parse, generate, write
// the listing and hand it to the external toolchain. Any stage error aborts
// the compilation; there is no recovery.
type Compiler struct {
	Backend   Backend
	Toolchain Toolchain
}

func NewCompiler() *Compiler {
	return &Compiler{
		Backend: BackendNASM,
	}
}

func (c *Compiler) Compile(filename, outfile string) error {
	f, err := os.Open(filename)
	if err != nil {
		return err
	}
	defer f.Close()

	return c.CompileFromReader(f, outfile)
}

func (c *Compiler) CompileFromReader(reader io.Reader, outfile string) error {
	sentences, err := c.Sentences(reader)
	if err != nil {
		return err
	}

	switch c.Backend {
	case BackendLLVM:
		return c.makeLLVM(sentences, outfile)
	case BackendNASM, "":
		return c.makeNASM(sentences, outfile)
	default:
		return fmt.Errorf("unknown backend %q", c.Backend)
	}
}

// CompileToSections runs the pipeline up to code generation and returns the
// raw section lines, leaving serialization to the caller.
func (c *Compiler) CompileToSections(reader io.Reader) (*SectionData, *SectionText, error) {
	sentences, err := c.Sentences(reader)
	if err != nil {
		return nil, nil, err
	}

	return generateSections(sentences)
}

// Sentences runs the front half of the pipeline: text to parsed sentences.
func (c *Compiler) Sentences(reader io.Reader) ([]Sentence, error) {
	lexemes, err := NewScanner(reader).RunBlocking()
	if err != nil {
		return nil, err
	}

	tokens, err := Evaluate(lexemes)
	if err != nil {
		return nil, err
	}

	return Parse(tokens)
}

func generateSections(sentences []Sentence) (*SectionData, *SectionText, error) {
	gen := NewGenerator()
	data := &SectionData{}
	text := &SectionText{}

	for _, s := range sentences {
		if err := gen.CompileSentence(s, data, text); err != nil {
			return nil, nil, err
		}
	}

	return data, text, nil
}

func (c *Compiler) makeNASM(sentences []Sentence, outfile string) error {
	data, text, err := generateSections(sentences)
	if err != nil {
		return err
	}

	// Render the whole listing first so a serialization error never leaves
	// a partial .asm file behind
	var buf bytes.Buffer
	if err := WriteListing(&buf, data, text); err != nil {
		return err
	}

	if err := os.WriteFile(outfile+".asm", buf.Bytes(), 0o644); err != nil {
		return err
	}

	return c.Toolchain.Make(outfile)
}

func (c *Compiler) makeLLVM(sentences []Sentence, outfile string) error {
	mod, err := NewLLVMGenerator(sentences).Do()
	if err != nil {
		return err
	}

	if err := os.WriteFile(outfile+".ll", []byte(mod.String()), 0o644); err != nil {
		return err
	}

	return c.Toolchain.MakeIR(outfile)
}
