package rpnre

import (
	"context"
	"errors"
	"io"
	"os"

	"github.com/knadh/koanf"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'rpnre'.
func tracer() tracing.Trace {
	return tracing.Select("rpnre")
}

// Configuration holds global configuration values. We use koanf.
var Configuration *koanf.Koanf

// Tracefile is the file we write our log output, if not nil.
var Tracefile io.WriteCloser

// SignalContext is a global context for terminating the application by an interrupt
// signal.
var SignalContext context.Context

// Exit exits the application. It gracefully shuts down all resources.
func Exit(errcode int) {
	if Tracefile != nil {
		Tracefile.Close()
	}
	os.Exit(errcode)
}

// ErrMalformedExpression flags a postfix expression which cannot be evaluated:
// an operator lacking operands, an unknown symbol, or a token stream which does
// not reduce to exactly one subexpression.
var ErrMalformedExpression = errors.New("malformed expression")
