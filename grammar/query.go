package grammar

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/width"
)

// ErrQuerySyntax flags an input line which is not of the form
// "<expression> <letter> <degree>".
var ErrQuerySyntax = errors.New("query syntax error")

// Query is a question to ask about a postfix expression: does its language
// contain a word with suffix Letter^Degree?
type Query struct {
	Expression string
	Letter     rune
	Degree     int
}

func (q Query) String() string {
	return fmt.Sprintf("%s %c %d", q.Expression, q.Letter, q.Degree)
}

// ParseQuery reads a query from a line of input.
func ParseQuery(line string) (Query, error) {
	fields := strings.Fields(line)
	if len(fields) != 3 {
		return Query{}, fmt.Errorf("%w: expected 3 fields, have %d", ErrQuerySyntax, len(fields))
	}
	return QueryFromArgs(fields)
}

// QueryFromArgs creates a query from three arguments: expression, letter
// and degree. Full-width characters are folded to their narrow forms.
func QueryFromArgs(args []string) (Query, error) {
	if len(args) != 3 {
		return Query{}, fmt.Errorf("%w: expected 3 arguments, have %d", ErrQuerySyntax, len(args))
	}
	fields := make([]string, len(args))
	for i, arg := range args {
		fields[i] = width.Narrow.String(arg)
	}
	q := Query{Expression: fields[0]}
	if utf8.RuneCountInString(fields[1]) != 1 {
		return q, fmt.Errorf("%w: letter must be a single character, is %q", ErrQuerySyntax, fields[1])
	}
	q.Letter, _ = utf8.DecodeRuneInString(fields[1])
	k, err := strconv.Atoi(fields[2])
	if err != nil {
		return q, fmt.Errorf("%w: degree %q is not an integer", ErrQuerySyntax, fields[2])
	}
	q.Degree = k
	tracer().Debugf("query = %s", q)
	return q, nil
}
