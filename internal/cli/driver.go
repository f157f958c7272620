package cli

import (
	"context"
	"fmt"
	"os"
	"os/exec"

	"github.com/google/uuid"

	"github.com/surma/jsxx-go/internal/diag"
)

// runtimeSources is the fixed set of runtime translation units linked into
// every compiled program. jsxx never compiles or vendors this library; it
// only assumes these paths exist relative to the invoking directory.
var runtimeSources = []string{
	"runtime/js_value.cpp",
	"runtime/js_primitives.cpp",
	"runtime/js_value_binding.cpp",
	"runtime/exceptions.cpp",
	"runtime/global_json.cpp",
	"runtime/global_symbol.cpp",
	"runtime/global_io.cpp",
	"runtime/global_wasi.cpp",
}

// CompileOptions configures the downstream C++ compiler invocation.
type CompileOptions struct {
	ClangPath string
	Wasm      bool
	ExtraArgs []string
}

// Compile writes cpp to a uniquely-named temp source file, invokes the
// compiler against it and the fixed runtime sources, and removes the temp
// file whether or not the compile succeeded. The child's streams are wired
// directly to this process's so the caller sees compiler diagnostics as
// they're produced.
func Compile(ctx context.Context, cpp string, opts CompileOptions) error {
	tmpPath := fmt.Sprintf("jsxx-%s.cpp", uuid.NewString())
	if err := os.WriteFile(tmpPath, []byte(cpp), 0o644); err != nil {
		return fmt.Errorf("%w: write temp source: %v", diag.ErrIO, err)
	}
	defer os.Remove(tmpPath)

	clangPath := opts.ClangPath
	if clangPath == "" {
		clangPath = "clang++"
	}

	cmdArgs := []string{"--std=c++20"}
	if opts.Wasm {
		cmdArgs = append(cmdArgs, "-fno-exceptions", "--target=wasm32-wasi")
		if sysroot := os.Getenv("WASI_SDK_PREFIX"); sysroot != "" {
			cmdArgs = append(cmdArgs, "--sysroot="+sysroot+"/share/wasi-sysroot")
		}
	} else {
		cmdArgs = append(cmdArgs, "-DFEATURE_EXCEPTIONS=1")
	}
	cmdArgs = append(cmdArgs, opts.ExtraArgs...)
	cmdArgs = append(cmdArgs, tmpPath)
	cmdArgs = append(cmdArgs, runtimeSources...)

	child := exec.CommandContext(ctx, clangPath, cmdArgs...)
	child.Stdin = os.Stdin
	child.Stdout = os.Stdout
	child.Stderr = os.Stderr
	if err := child.Run(); err != nil {
		return fmt.Errorf("%w: %s failed: %v", diag.ErrIO, clangPath, err)
	}
	return nil
}
