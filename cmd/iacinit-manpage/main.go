package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra/doc"

	"github.com/arthur-debert/iacinit/cmd/iacinit"
	"github.com/arthur-debert/iacinit/internal/version"
)

func main() {
	rootCmd := iacinit.NewRootCmd()

	header := &doc.GenManHeader{
		Title:   "IACINIT",
		Section: "1",
		Source:  "iacinit " + version.Version,
		Manual:  "iacinit manual",
	}

	err := doc.GenMan(rootCmd, header, os.Stdout)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error generating man page: %v\n", err)
		os.Exit(1)
	}
}
