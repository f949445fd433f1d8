package toki

import (
	"github.com/llir/llvm/ir"
	"github.com/llir/llvm/ir/constant"
	"github.com/llir/llvm/ir/types"
	"github.com/llir/llvm/ir/value"
)

func defineBuiltins(b *LLVMBuilder) {
	printf := b.mod.NewFunc("printf", types.I32, ir.NewParam("format", types.I8Ptr))
	printf.Sig.Variadic = true
	b.printf = printf

	b.formatString = charArrayGlobal(b.mod, ".fmt_string", "%s\n")
	b.formatInteger = charArrayGlobal(b.mod, ".fmt_integer", "%lld\n")
	b.formatFloat = charArrayGlobal(b.mod, ".fmt_float", "%f\n")
}

// charArrayGlobal defines a zero-terminated character array global and
// returns the address of its first element, as an i8* suitable for printf.
func charArrayGlobal(mod *ir.Module, name, text string) value.Value {
	arr := constant.NewCharArrayFromString(text + "\x00")
	g := mod.NewGlobalDef(name, arr)

	zero := constant.NewInt(types.I32, 0)
	return constant.NewGetElementPtr(arr.Typ, g, zero, zero)
}
