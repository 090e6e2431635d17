// Released under an MIT license. See LICENSE.

// Package ui provides a command-line interface for ply.
package ui

import (
	"strings"

	"github.com/peterh/liner"

	"ply/internal/system/history"
)

// Evaluator is the interface for things that want to process command lines.
type Evaluator interface {
	Evaluate(line string)
	Done() bool
	Names() []string
}

// Run launches the UI, which sends lines to the Evaluator until the
// Evaluator is done or input ends.
func Run(e Evaluator) {
	cli := liner.NewLiner()
	defer cli.Close()

	cli.SetCtrlCAborts(true)
	cli.SetWordCompleter(completer(e))

	_ = history.Load(cli.ReadHistory)
	defer func() {
		_ = history.Save(cli.WriteHistory)
	}()

	for !e.Done() {
		line, err := cli.Prompt("ply> ")

		switch err {
		case nil:
			cli.AppendHistory(line)

			e.Evaluate(line)
		case liner.ErrPromptAborted:
			continue
		default:
			return
		}
	}
}

// completer completes the word under the cursor using the names of
// objects in the Evaluator's workspace.
func completer(e Evaluator) liner.WordCompleter {
	return func(line string, pos int) (string, []string, string) {
		head, tail := line[:pos], line[pos:]

		i := strings.LastIndexAny(head, " \t") + 1
		prefix := head[i:]

		completions := []string{}

		for _, name := range e.Names() {
			if strings.HasPrefix(name, prefix) {
				completions = append(completions, name)
			}
		}

		return head[:i], completions, tail
	}
}
