package main

import (
	"fmt"
	"os"

	"github.com/arthur-debert/physq/cmd/physq"
	"github.com/arthur-debert/physq/pkg/style"
)

func main() {
	rootCmd := physq.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		// Print the error in red
		fmt.Fprintln(os.Stderr, style.ErrorStyle.Render(fmt.Sprintf("Error: %v", err)))
		os.Exit(1)
	}
}
