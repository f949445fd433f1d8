package toki

import (
	"fmt"

	"github.com/llir/llvm/ir"
	"github.com/llir/llvm/ir/constant"
	"github.com/llir/llvm/ir/types"
	"github.com/llir/llvm/ir/value"
)

// variable is a compiled global together with the literal kind it stores, so
// later prints know whether to pass the pointer or load the value.
type variable struct {
	global *ir.Global
	typ    LiteralType
}

type VariableLookup struct {
	vars map[string]variable
}

func NewVariableLookup() *VariableLookup {
	return &VariableLookup{
		vars: make(map[string]variable),
	}
}

func (l *VariableLookup) Get(id string) (variable, bool) {
	v, ok := l.vars[id]
	return v, ok
}

func (l *VariableLookup) Set(id string, v variable) {
	l.vars[id] = v
}

// LLVMBuilder lowers sentences into an LLVM module: one main function, a
// declared variadic printf, and a global per variable and string literal.
type LLVMBuilder struct {
	mod   *ir.Module
	fn    *ir.Func
	block *ir.Block

	printf        *ir.Func
	formatString  value.Value
	formatInteger value.Value
	formatFloat   value.Value

	vars     *VariableLookup
	literals int
}

func NewLLVMBuilder() *LLVMBuilder {
	builder := &LLVMBuilder{
		mod:  ir.NewModule(),
		vars: NewVariableLookup(),
	}

	defineBuiltins(builder)

	builder.fn = builder.mod.NewFunc("main", types.I32)
	builder.block = builder.fn.NewBlock("")

	return builder
}

func (b *LLVMBuilder) sentence(s Sentence) error {
	subj := s.Subject.Noun
	verb := s.Predicate.Verb

	switch {
	case subj.IsNull() && verb.IsNull():
		return &SemanticError{Reason: "missing verb in sentence"}

	case subj.IsNull() && verb.IsKeyword(KeywordSitelen):
		return b.printStatement(s)

	case !subj.IsNull() && verb.IsNull():
		return nil

	case !subj.IsNull() && verb.IsKeyword(KeywordKama):
		return b.assignStatement(s)

	default:
		return &SemanticError{
			Reason: "unsupported sentence shape",
			Token:  verb,
		}
	}
}

func (b *LLVMBuilder) printStatement(s Sentence) error {
	obj := s.Predicate.Object.Noun

	switch {
	case obj.Typ == TokenIdentifier:
		v, ok := b.vars.Get(obj.Ident)
		if !ok {
			return &SemanticError{
				Reason: "undefined variable",
				Token:  obj,
			}
		}

		b.block.NewCall(b.printf, b.format(v.typ), b.load(v))

	case obj.IsLiteral(LiteralString):
		name := fmt.Sprintf("LITERAL_%d", b.literals)
		b.literals++

		ptr := charArrayGlobal(b.mod, name, obj.Literal.Str)
		b.block.NewCall(b.printf, b.formatString, ptr)

	case obj.IsLiteral(LiteralInteger):
		b.block.NewCall(b.printf, b.formatInteger, constant.NewInt(types.I64, obj.Literal.Int))

	case obj.IsLiteral(LiteralFloat):
		b.block.NewCall(b.printf, b.formatFloat, constant.NewFloat(types.Double, obj.Literal.Float))

	default:
		return &SemanticError{
			Reason: "incorrect object for verb 'sitelen'",
			Token:  obj,
		}
	}

	return nil
}

func (b *LLVMBuilder) assignStatement(s Sentence) error {
	subj := s.Subject.Noun
	obj := s.Predicate.Object.Noun

	if subj.Typ != TokenIdentifier {
		return &SemanticError{
			Reason: "subject must be identifier in assignment",
			Token:  subj,
		}
	}

	name := "VARIABLE_" + subj.Ident

	switch {
	case obj.IsNull():
		return &SemanticError{
			Reason: "assignment statement needs object",
			Token:  s.Predicate.Verb,
		}

	case obj.IsLiteral(LiteralString):
		arr := constant.NewCharArrayFromString(obj.Literal.Str + "\x00")
		b.vars.Set(subj.Ident, variable{
			global: b.mod.NewGlobalDef(name, arr),
			typ:    LiteralString,
		})

	case obj.IsLiteral(LiteralInteger):
		b.vars.Set(subj.Ident, variable{
			global: b.mod.NewGlobalDef(name, constant.NewInt(types.I64, obj.Literal.Int)),
			typ:    LiteralInteger,
		})

	case obj.IsLiteral(LiteralFloat):
		b.vars.Set(subj.Ident, variable{
			global: b.mod.NewGlobalDef(name, constant.NewFloat(types.Double, obj.Literal.Float)),
			typ:    LiteralFloat,
		})

	default:
		return &SemanticError{
			Reason: "assignment object must be a literal",
			Token:  obj,
		}
	}

	return nil
}

func (b *LLVMBuilder) format(typ LiteralType) value.Value {
	switch typ {
	case LiteralInteger:
		return b.formatInteger
	case LiteralFloat:
		return b.formatFloat
	default:
		return b.formatString
	}
}

// load produces the printf argument for a variable: strings pass the buffer
// address, numbers load the stored value.
func (b *LLVMBuilder) load(v variable) value.Value {
	switch v.typ {
	case LiteralInteger:
		return b.block.NewLoad(types.I64, v.global)
	case LiteralFloat:
		return b.block.NewLoad(types.Double, v.global)
	default:
		zero := constant.NewInt(types.I32, 0)
		return constant.NewGetElementPtr(v.global.ContentType, v.global, zero, zero)
	}
}

type LLVMGenerator struct {
	sentences []Sentence
}

func NewLLVMGenerator(sentences []Sentence) *LLVMGenerator {
	return &LLVMGenerator{
		sentences: sentences,
	}
}

func (g *LLVMGenerator) Do() (*ir.Module, error) {
	builder := NewLLVMBuilder()

	for _, s := range g.sentences {
		if err := builder.sentence(s); err != nil {
			return nil, err
		}
	}

	builder.block.NewRet(constant.NewInt(types.I32, 0))
	return builder.mod, nil
}
