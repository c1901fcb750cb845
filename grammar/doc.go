/*
Package grammar scans postfix regular expressions and query lines.

The lexical structure of postfix expressions is trivial: every symbol is a
token of its own. Scanning nevertheless goes through a lexmachine lexer,
which gives us positions for error messages and a single place to change
the alphabet.

A query line consists of three whitespace-separated fields:

    <expression> <letter> <degree>

for example "ab+c.* a 3". Full-width forms of characters are folded to
their narrow counterparts before the line is split.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package grammar

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'rpnre.grammar'.
func tracer() tracing.Trace {
	return tracing.Select("rpnre.grammar")
}
