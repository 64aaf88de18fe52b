// Package main is the entry point for the vibe CLI.
package main

import (
	"fmt"
	"os"

	"github.com/thoreinstein/vibe/cmd/vibe/commands"
	"github.com/thoreinstein/vibe/internal/errors"
)

func main() {
	err := commands.Execute()
	if err == nil {
		return
	}

	fmt.Fprintf(os.Stderr, "Error: %v\n", err)

	var exitErr *errors.ExitError
	if errors.As(err, &exitErr) {
		if exitErr.Suggestion != "" {
			fmt.Fprintln(os.Stderr, exitErr.Suggestion)
		}
		os.Exit(exitErr.Code)
	}
	os.Exit(errors.ExitUser)
}
