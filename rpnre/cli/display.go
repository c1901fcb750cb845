package cli

import (
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/npillmayer/rpnre/evaluator"
	"github.com/npillmayer/rpnre/grammar"
	"github.com/npillmayer/rpnre/rpnre/ui/termui"
)

// explanation is an evaluated query, to be printed step by step.
type explanation struct {
	query  grammar.Query
	result evaluator.Result
}

// Formatter formats results of rpnre queries and delegates everything else
// to the default formatter.
type Formatter struct {
	termui.DefaultFormatter
}

// Format writes item to w.
func (f Formatter) Format(item interface{}, w io.Writer) (bool, error) {
	tracer().Debugf("format called for item %T", item)
	switch t := item.(type) {
	case explanation:
		item = explanationAsTable(t)
	case evaluator.Result:
		_, err := io.WriteString(w, fmt.Sprintf("▶ %s  %s\n", t.Infix, t.Attr))
		return true, err
	}
	return f.DefaultFormatter.Format(item, w)
}

// --- Property tables -------------------------------------------------------

func explanationAsTable(x explanation) table.Writer {
	tw := table.NewWriter()
	tw.SetTitle("%s  (x = %c, k = %d)", x.query.Expression, x.query.Letter, x.query.Degree)
	tw.AppendHeader(table.Row{"#", "token", "W", "S", "depth", "subexpression"})
	for i, step := range x.result.Steps {
		tw.AppendRow(table.Row{
			i + 1,
			string(step.Token.Symbol),
			step.Attr.W.String(),
			step.Attr.S.String(),
			step.Depth,
			step.Infix,
		})
	}
	tw.AppendFooter(table.Row{
		"", "",
		x.result.Attr.W.String(),
		x.result.Attr.S.String(),
		"",
		x.result.Infix,
	})
	tw.SetStyle(table.StyleLight)
	return tw
}
