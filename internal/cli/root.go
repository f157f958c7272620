// Package cli implements jsxx's command-line surface: flag parsing, stdin
// source acquisition, driving the parser and translator, and invoking the
// downstream C++ compiler. None of the translation semantics live here.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "jsxx",
	Short: "Translate an ECMAScript subset to C++20",
	Long: "jsxx reads a JavaScript module from standard input, lowers it to C++20\n" +
		"source against the jsxx runtime, and either prints the translation or\n" +
		"compiles and links it with a C++ compiler.",
	RunE:         runRoot,
	SilenceUsage: true,
}

func init() {
	rootCmd.Flags().String("clang-path", "clang++", "Path to the C++ compiler")
	rootCmd.Flags().Bool("emit-cpp", false, "Print the translated C++ to stdout instead of compiling")
	rootCmd.Flags().Bool("wasm", false, "Target WebAssembly + WASI and disable exceptions")
	rootCmd.Flags().Bool("no-exceptions", false, "Disable throw/try lowering for a native target")
	rootCmd.Flags().String("config", "", "Path to a JSON file describing additional host globals")
	rootCmd.Flags().Bool("print-schema", false, "Print the global-registry config JSON Schema and exit")
}

// Execute runs the jsxx CLI and returns the first error encountered. An
// unexpected internal panic during lowering is recovered here and reported
// as an ordinary error rather than crashing the process — a last-resort
// safety net, not a substitute for the translator's own error returns.
func Execute() (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("internal error: %v", r)
		}
	}()
	return rootCmd.Execute()
}
