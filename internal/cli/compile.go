package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/surma/jsxx-go/internal/config"
	"github.com/surma/jsxx-go/internal/translator"
	"github.com/surma/jsxx-go/internal/treesitter"
)

// runRoot implements the root command: read a module from stdin, lower it,
// and either print the C++ or hand it to the compiler driver.
func runRoot(cmd *cobra.Command, args []string) error {
	clangPath, _ := cmd.Flags().GetString("clang-path")
	emitCpp, _ := cmd.Flags().GetBool("emit-cpp")
	wasm, _ := cmd.Flags().GetBool("wasm")
	noExceptions, _ := cmd.Flags().GetBool("no-exceptions")
	configPath, _ := cmd.Flags().GetString("config")
	printSchema, _ := cmd.Flags().GetBool("print-schema")

	if printSchema {
		schema, err := config.Schema()
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(cmd.OutOrStdout(), schema)
		return err
	}

	globals := translator.DefaultGlobals()
	if wasm {
		globals = append(globals, translator.WASIGlobal())
	}
	if configPath != "" {
		extra, err := config.LoadGlobals(configPath)
		if err != nil {
			return err
		}
		globals = append(globals, extra...)
	}

	tr := translator.New(globals)
	tr.FeatureExceptions = !wasm && !noExceptions

	source, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return fmt.Errorf("read source: %w", err)
	}

	parser, err := treesitter.New()
	if err != nil {
		return err
	}
	defer parser.Close()

	tree, err := parser.ParseModule(source)
	if err != nil {
		return err
	}
	defer tree.Close()

	cpp, err := tr.TranslateModule(tree, source)
	if err != nil {
		return err
	}

	if emitCpp {
		_, err := fmt.Fprint(cmd.OutOrStdout(), cpp)
		return err
	}

	return Compile(cmd.Context(), cpp, CompileOptions{
		ClangPath: clangPath,
		Wasm:      wasm,
		ExtraArgs: args,
	})
}
