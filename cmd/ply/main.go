/*
Ply is a workbench for multiple-parent delegation. It wraps the ply
library in a small command language for building objects, attaching
parents, and watching how property lookups resolve:

    new base
    set base greeting "hello"
    new mixin
    set mixin excited true
    new host base
    attach host mixin
    get host excited
    parents host

For more detail, see the ply package documentation.

Ply is released under an MIT-style license.
*/
package main

import (
	"bufio"
	"fmt"
	"os"

	"ply/internal/engine"
	"ply/internal/system/options"
	"ply/internal/ui"
)

const version = "0.3.1"

func main() {
	options.Parse()

	if options.Version() {
		fmt.Println("ply " + version)

		return
	}

	e := engine.New(os.Stdout)

	if c := options.Command(); c != "" {
		e.Evaluate(c)

		return
	}

	if options.Interactive() {
		ui.Run(e)

		return
	}

	in := os.Stdin

	if path := options.Script(); path != "" {
		f, err := os.Open(path)
		if err != nil {
			fmt.Fprintln(os.Stderr, err.Error())
			os.Exit(1)
		}
		defer f.Close()

		in = f
	}

	scanner := bufio.NewScanner(in)
	for !e.Done() && scanner.Scan() {
		e.Evaluate(scanner.Text())
	}

	if err := scanner.Err(); err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(1)
	}
}
