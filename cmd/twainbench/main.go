// Command twainbench compares multi-pattern matchers on the Twain corpus.
package main

import (
	"fmt"
	"os"

	"github.com/eunmann/twain-bench/internal/cli"
)

func main() {
	if err := cli.Run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
