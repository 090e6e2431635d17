// Released under an MIT license. See LICENSE.

// Package token provides the unit of exchange between ply's reader and engine.
package token

// Kind distinguishes the classes of token the reader produces.
type Kind uint8

const (
	Word Kind = iota // bare name or verb
	Number
	String // quoted; Text holds the unquoted value
)

// T (token) is a single lexical element of a command line.
type T struct {
	Kind Kind
	Text string
}

type tok = T

// New creates a new token.
func New(k Kind, text string) T {
	return tok{Kind: k, Text: text}
}

// Is returns true if the token t is a word with the text s.
func (t T) Is(s string) bool {
	return t.Kind == Word && t.Text == s
}
