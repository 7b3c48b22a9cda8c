package main

import (
	"errors"
	"os"

	"github.com/rshade/factsview/internal/cli"
	"github.com/rshade/factsview/internal/facts"
	"github.com/rshade/factsview/pkg/version"
)

// Exit codes.
const (
	exitOK       = 0
	exitError    = 1
	exitAPIError = 2
)

func main() {
	os.Exit(run())
}

func run() int {
	root := cli.NewRootCmd(version.GetVersion())
	if err := root.Execute(); err != nil {
		return exitCode(err)
	}
	return exitOK
}

// exitCode maps an error to the process exit code. API failures get their
// own code so scripts can tell them apart from usage errors.
func exitCode(err error) int {
	switch {
	case err == nil:
		return exitOK
	case errors.Is(err, facts.ErrTransport), errors.Is(err, facts.ErrDecode):
		return exitAPIError
	default:
		return exitError
	}
}
