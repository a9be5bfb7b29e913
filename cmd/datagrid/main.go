package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/rshade/datagrid/internal/cli"
	"github.com/rshade/datagrid/internal/config"
	"github.com/rshade/datagrid/internal/datatable"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev" //nolint:gochecknoglobals // Set by the linker.

// Exit codes.
const (
	exitOK     = 0
	exitError  = 1
	exitConfig = 2
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	cmd := cli.NewRootCmd(version)
	cmd.SetArgs(args)
	err := cli.Execute(cmd)
	if err != nil {
		_, _ = fmt.Fprintln(cmd.ErrOrStderr(), "Error:", err)
	}
	return exitCode(err)
}

// exitCode maps configuration mistakes to exitConfig and any other failure
// to exitError.
func exitCode(err error) int {
	switch {
	case err == nil:
		return exitOK
	case errors.Is(err, config.ErrInvalidPageSize),
		errors.Is(err, config.ErrInvalidOutputFormat),
		errors.Is(err, config.ErrInvalidColumn),
		errors.Is(err, datatable.ErrInvalidConfiguration):
		return exitConfig
	default:
		return exitError
	}
}
