// Package main is the entry point for the blue CLI.
package main

import (
	"os"

	"github.com/slekup/blue/cmd/blue/commands"
	"github.com/slekup/blue/internal/errors"
)

func main() {
	err := commands.Execute()
	if err == nil {
		return
	}
	commands.PrintError(os.Stderr, err)
	os.Exit(errors.Code(err))
}
