// Command story-to-block generates WordPress block theme assets from a design
// token config, checks them for drift, and lints token usage.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "story-to-block: %v\n", err)
		os.Exit(1)
	}
}
