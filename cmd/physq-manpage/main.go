// Command physq-manpage generates man pages. With no argument the page
// for physq is written to stdout; given a directory, one page per
// command is written there.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra/doc"

	"github.com/arthur-debert/physq/cmd/physq"
	"github.com/arthur-debert/physq/internal/version"
)

func main() {
	rootCmd := physq.NewRootCmd()
	header := &doc.GenManHeader{
		Title:   "PHYSQ",
		Section: "1",
		Source:  "physq " + version.Version,
		Manual:  "physq manual",
	}

	var err error
	if len(os.Args) > 1 {
		dir := os.Args[1]
		if err = os.MkdirAll(dir, 0o755); err == nil {
			err = doc.GenManTree(rootCmd, header, dir)
		}
	} else {
		err = doc.GenMan(rootCmd, header, os.Stdout)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error generating man page: %v\n", err)
		os.Exit(1)
	}
}
