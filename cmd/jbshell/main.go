// Package main is the entry point for the jbshell status bar.
package main

import (
	"os"

	"github.com/jbshell/jbshell/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
