package toki

import (
	"fmt"
	"io"
	"os"
	"os/exec"
)

// WriteListing serializes the two sections into a complete assembly listing:
// fixed boilerplate around the text lines (entry point, printf declaration,
// final ret) and the data lines (the three printf format strings first).
func WriteListing(w io.Writer, data *SectionData, text *SectionText) error {
	if _, err := fmt.Fprint(w,
		"    global _main\n"+
			"    extern _printf\n\n"+
			"section .text\n"+
			"    _main:\n"); err != nil {
		return err
	}

	for _, line := range text.Lines {
		if _, err := fmt.Fprintf(w, "        %s\n", line); err != nil {
			return err
		}
	}

	if _, err := io.WriteString(w,
		"        ret\n\n"+
			"section .data\n"+
			"    formatString db \"%s\", 10, 0\n"+
			"    formatInteger db \"%d\", 10, 0\n"+
			"    formatFloat db \"%f\", 10, 0\n"); err != nil {
		return err
	}

	for _, line := range data.Lines {
		if _, err := fmt.Fprintf(w, "    %s\n", line); err != nil {
			return err
		}
	}

	return nil
}

// Toolchain assembles and links the generated files with the external tools
// on PATH: nasm and gcc for assembly listings, clang for LLVM IR.
type Toolchain struct {
	// nasm object format, win32 by default
	Format string
	// keep the intermediate .asm/.obj/.ll files
	Keep bool
}

func (t *Toolchain) Make(outfile string) error {
	format := t.Format
	if format == "" {
		format = "win32"
	}

	if err := t.run("nasm", "-f", format, outfile+".asm"); err != nil {
		return err
	}

	if err := t.run("gcc", outfile+".obj", "-o", outfile); err != nil {
		return err
	}

	if !t.Keep {
		_ = os.Remove(outfile + ".asm")
		_ = os.Remove(outfile + ".obj")
	}

	return nil
}

func (t *Toolchain) MakeIR(outfile string) error {
	if err := t.run("clang", outfile+".ll", "-o", outfile); err != nil {
		return err
	}

	if !t.Keep {
		_ = os.Remove(outfile + ".ll")
	}

	return nil
}

func (t *Toolchain) run(name string, args ...string) error {
	out, err := exec.Command(name, args...).CombinedOutput()
	if err != nil {
		return fmt.Errorf("%s failed: %w\n%s", name, err, out)
	}

	return nil
}
