// Released under an MIT license. See LICENSE.

// Package reader converts command lines into tokens for ply's engine.
//
// The command language is deliberately small: bare words, numbers, and
// quoted strings, with '#' starting a comment. Single-quoted strings
// are literal; double-quoted strings understand a few escapes.
package reader

import (
	"errors"
	"strings"

	"ply/internal/reader/token"
)

// Scan converts the command line into tokens. A blank line or a
// comment yields no tokens. The only scan error is an unterminated
// string.
func Scan(line string) ([]token.T, error) {
	var ts []token.T

	i, n := 0, len(line)

	for i < n {
		c := line[i]

		switch {
		case space(c):
			i++

		case c == '#':
			return ts, nil

		case c == '\'':
			j := strings.IndexByte(line[i+1:], '\'')
			if j < 0 {
				return nil, errors.New("unterminated string")
			}

			ts = append(ts, token.New(token.String, line[i+1:i+1+j]))

			i += j + 2

		case c == '"':
			text, w, err := unescape(line[i+1:])
			if err != nil {
				return nil, err
			}

			ts = append(ts, token.New(token.String, text))

			i += w + 1

		default:
			j := i
			for j < n && !space(line[j]) && line[j] != '#' &&
				line[j] != '\'' && line[j] != '"' {
				j++
			}

			word := line[i:j]

			ts = append(ts, token.New(classify(word), word))

			i = j
		}
	}

	return ts, nil
}

func classify(word string) token.Kind {
	if word == "" {
		return token.Word
	}

	c := word[0]
	if c >= '0' && c <= '9' {
		return token.Number
	}

	if (c == '-' || c == '+') && len(word) > 1 {
		if d := word[1]; d >= '0' && d <= '9' {
			return token.Number
		}
	}

	return token.Word
}

func space(c byte) bool {
	return c == ' ' || c == '\t' || c == '\r' || c == '\n'
}

// unescape consumes a double-quoted string body up to and including
// the closing quote, returning the text and the number of bytes
// consumed.
func unescape(s string) (string, int, error) {
	var b strings.Builder

	for i := 0; i < len(s); i++ {
		switch c := s[i]; c {
		case '"':
			return b.String(), i + 1, nil

		case '\\':
			i++
			if i == len(s) {
				return "", 0, errors.New("unterminated string")
			}

			switch e := s[i]; e {
			case 'n':
				b.WriteByte('\n')
			case 't':
				b.WriteByte('\t')
			default:
				b.WriteByte(e)
			}

		default:
			b.WriteByte(c)
		}
	}

	return "", 0, errors.New("unterminated string")
}
