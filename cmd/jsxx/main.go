// Command jsxx translates an ECMAScript subset read from standard input
// into C++20 source, and optionally compiles it.
package main

import (
	"fmt"
	"os"

	"github.com/surma/jsxx-go/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
