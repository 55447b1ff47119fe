// Package main is the entry point for the genesys-dice command line
package main

import (
	"os"

	"github.com/KirkDiggler/genesys-dice/internal/errors"
)

func main() {
	c := newCLI(newService)
	if err := c.root.Execute(); err != nil {
		c.writeError(os.Stderr, err)
		os.Exit(exitCode(err))
	}
}

// exitCode maps structured errors to their status. Errors raised by cobra
// itself carry no code and exit with a plain failure.
func exitCode(err error) int {
	var e *errors.Error
	if errors.As(err, &e) {
		return e.Code.ExitCode()
	}
	return errors.ExitFailure
}
