// Released under an MIT license. See LICENSE.

// Package options parses ply's command line.
package options

import (
	"os"

	"github.com/docopt/docopt-go"
	"github.com/mattn/go-isatty"
)

//nolint:gochecknoglobals
var (
	command     string
	interactive bool
	script      string
	version     bool
	usage       = `ply - a workbench for multiple-parent delegation

Usage:
  ply [SCRIPT]
  ply -c COMMAND
  ply -h
  ply -v

Arguments:
  SCRIPT     Path to a file of ply commands.

Options:
  -c, --command=COMMAND  Evaluate the specified command and exit.
  -h, --help             Display this help.
  -v, --version          Print ply version.

If ply's stdin is a TTY and neither SCRIPT nor COMMAND is given, ply
runs an interactive session. Otherwise commands are read from SCRIPT,
COMMAND, or stdin, in that order of preference.
`
)

// Command returns the command passed with -c, if any.
func Command() string {
	return command
}

// Interactive returns true if ply should run an interactive session.
func Interactive() bool {
	return interactive
}

// Parse processes the command line.
func Parse() {
	opts, err := docopt.ParseDoc(usage)
	if err != nil {
		// Error in the usage doc. This should never happen.
		panic(err.Error())
	}

	command, _ = opts.String("--command")
	script, _ = opts.String("SCRIPT")
	version, _ = opts.Bool("--version")

	if command == "" && script == "" && isatty.IsTerminal(os.Stdin.Fd()) {
		interactive = true
	}
}

// Script returns the script path, if any.
func Script() string {
	return script
}

// Version returns true if ply should print its version and exit.
func Version() bool {
	return version
}
