/*
Package algebra implements the attribute algebra for postfix regular
expressions.

Every subexpression e is described by a pair of attributes (W, S):

    W   the greatest r such that x^r is itself a word of L(e);
        undefined if L(e) holds no pure run of x, infinite if such
        runs are unbounded
    S   the greatest r such that x^r is a suffix of some word of L(e);
        0 if there is none, infinite if suffix runs are unbounded

The attributes of a composite expression are computed from the
attributes of its operands only. Operands are passed in textual order:
for a binary operator the first argument is the left (earlier) operand.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package algebra

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'rpnre.algebra'.
func tracer() tracing.Trace {
	return tracing.Select("rpnre.algebra")
}
