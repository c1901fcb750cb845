/*
Package evaluator decides suffix questions for postfix regular expressions.

An expression is evaluated in a single left-to-right pass over its tokens.
Letters and the empty word push attribute pairs onto an expression stack,
operators pop their operands and push the combined attributes (see package
algebra). After the last token the stack has to hold exactly one entry,
which describes the whole expression:

    ok, err := evaluator.HasSuffix("ab+c+*", 'b', 100)   // true, nil

Evaluators do not keep state between calls and may be shared between
goroutines.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package evaluator

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'rpnre.evaluator'.
func tracer() tracing.Trace {
	return tracing.Select("rpnre.evaluator")
}
