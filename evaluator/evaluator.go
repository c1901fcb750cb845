package evaluator

import (
	"fmt"

	"github.com/npillmayer/rpnre"
	"github.com/npillmayer/rpnre/algebra"
	"github.com/npillmayer/rpnre/grammar"
)

// Evaluator evaluates postfix regular expressions with respect to a letter
// of interest.
type Evaluator struct {
	letter      rune // the letter of interest
	recordSteps bool // record a Step for each token
}

// Option configures an Evaluator.
type Option func(*Evaluator)

// WithSteps lets an evaluator record the attributes pushed for every token.
func WithSteps() Option {
	return func(ev *Evaluator) {
		ev.recordSteps = true
	}
}

// New creates an evaluator for a letter of interest. Any symbol may be
// the letter of interest; tokens equal to it always count as an occurrence
// of it, whatever their kind.
func New(letter rune, opts ...Option) *Evaluator {
	ev := &Evaluator{letter: letter}
	for _, opt := range opts {
		opt(ev)
	}
	return ev
}

// Step records the evaluation of a single token: the node it left on top of
// the stack and the resulting stack depth.
type Step struct {
	Token rpnre.Token
	Attr  algebra.Attributes
	Infix string
	Depth int
}

// Result is the outcome of evaluating a complete expression.
type Result struct {
	Attr  algebra.Attributes // attributes of the whole expression
	Infix string             // the expression in infix notation
	Steps []Step             // per-token steps, if requested
}

// Admits is a predicate: does the expression's language contain a word with
// suffix x^k?
func (r Result) Admits(k int) bool {
	return r.Attr.Admits(k)
}

// EvaluateString scans and evaluates a postfix expression. Symbols outside
// of the alphabet are accepted only if they equal the letter of interest.
func (ev *Evaluator) EvaluateString(expr string) (Result, error) {
	tokens, err := grammar.Scan(expr)
	if err != nil {
		return Result{}, err
	}
	return ev.Evaluate(tokens)
}

// Evaluate evaluates a postfix expression, given as a sequence of tokens.
// Errors wrap rpnre.ErrMalformedExpression.
func (ev *Evaluator) Evaluate(tokens []rpnre.Token) (Result, error) {
	es := borrowStack()
	defer releaseStack(es)
	var res Result
	if ev.recordSteps {
		res.Steps = make([]Step, 0, len(tokens))
	}
	for _, t := range tokens {
		if err := ev.execute(t, es); err != nil {
			tracer().Errorf("cannot evaluate token %s: %v", t, err)
			es.Dump()
			return Result{}, err
		}
		if ev.recordSteps {
			tos := es.Top()
			res.Steps = append(res.Steps, Step{
				Token: t,
				Attr:  tos.Attr,
				Infix: tos.Infix,
				Depth: es.Size(),
			})
		}
	}
	if es.Size() != 1 {
		tracer().Errorf("expression leaves %d entries on the stack", es.Size())
		return Result{}, fmt.Errorf("%w: expression reduces to %d subexpressions, expected 1",
			rpnre.ErrMalformedExpression, es.Size())
	}
	tos, _ := es.Pop()
	res.Attr = tos.Attr
	res.Infix = tos.Infix
	tracer().Infof("%s evaluates to %s", res.Infix, res.Attr)
	return res, nil
}

func (ev *Evaluator) execute(t rpnre.Token, es *ExprStack) error {
	switch {
	case t.Symbol == ev.letter:
		es.PushRequiredLetter(t.Symbol)
		return nil
	case t.Kind == rpnre.Letter:
		es.PushOtherLetter(t.Symbol)
		return nil
	case t.Kind == rpnre.Empty:
		es.PushEmptyWord()
		return nil
	case !t.Kind.IsOperator():
		return fmt.Errorf("%w: unknown symbol %q at position %d",
			rpnre.ErrMalformedExpression, t.Symbol, t.Pos)
	}
	var err error
	switch t.Kind {
	case rpnre.Concat:
		err = es.ConcatTOS2OS()
	case rpnre.Union:
		err = es.UnionTOS2OS()
	case rpnre.Star:
		err = es.StarTOS()
	}
	if err != nil {
		return fmt.Errorf("%w: operator %q at position %d needs %d operand(s): %s",
			rpnre.ErrMalformedExpression, t.Symbol, t.Pos, t.Kind.Arity(), err.Error())
	}
	return nil
}

// HasSuffix decides whether the language of a postfix expression contains
// a word w such that letter^degree is a suffix of w.
//
// It returns an error wrapping rpnre.ErrMalformedExpression if the expression
// cannot be evaluated.
func HasSuffix(expr string, letter rune, degree int) (bool, error) {
	res, err := New(letter).EvaluateString(expr)
	if err != nil {
		return false, err
	}
	return res.Admits(degree), nil
}

// Decide answers a query.
func Decide(q grammar.Query, opts ...Option) (Result, bool, error) {
	res, err := New(q.Letter, opts...).EvaluateString(q.Expression)
	if err != nil {
		return Result{}, false, err
	}
	return res, res.Admits(q.Degree), nil
}
