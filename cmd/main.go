package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	toki "go.toki.dev/pkg"
)

var (
	output  string
	backend string
	format  string
	keep    bool
)

var rootCmd = &cobra.Command{
	Use:   "toki sourceFile",
	Short: "The toki compiler",
	Long: `Toki compiles a tiny Toki Pona-styled language into an executable.
Sentences are built subject-verb-object from particles: 'li' introduces the
predicate, 'e' the object, and a period terminates the sentence.

    o sitelen e "toki!".
    x li kama e 5.

The default backend emits a NASM listing and links it with nasm and gcc; the
llvm backend emits LLVM IR and links it with clang.`,

	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c := toki.NewCompiler()
		c.Backend = toki.Backend(backend)
		c.Toolchain.Format = format
		c.Toolchain.Keep = keep

		return c.Compile(args[0], output)
	},

	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.Flags().StringVarP(&output, "output", "o", "a", "output executable name")
	rootCmd.Flags().StringVar(&backend, "backend", string(toki.BackendNASM), "code generation backend (nasm or llvm)")
	rootCmd.Flags().StringVar(&format, "format", "", "nasm object format (default win32)")
	rootCmd.Flags().BoolVar(&keep, "keep", false, "keep intermediate .asm/.obj/.ll files")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
