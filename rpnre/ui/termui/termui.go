// Package termui provides objects and methods for interactive UI in terminal windows.
//
// License
//
// Governed by a 3-Clause BSD license. License file may be found in the root
// folder of this module.
//
// Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>
//
//
package termui

import (
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/npillmayer/schuko/tracing"
)

// trace traces with key 'rpnre.cli'.
func trace() tracing.Trace {
	return tracing.Select("rpnre.cli")
}

// Formatter writes an item in a human readable form. It returns false if
// it is unable to format the item.
type Formatter interface {
	Format(interface{}, io.Writer) (bool, error)
}

// DefaultFormatter formats strings, errors and tables.
type DefaultFormatter struct{}

// Format writes item to w.
func (df DefaultFormatter) Format(item interface{}, w io.Writer) (bool, error) {
	var err error
	switch t := item.(type) {
	case string:
		_, err = io.WriteString(w, "▶ "+t+"\n")
	case error:
		_, err = io.WriteString(w, "▶ error: "+t.Error()+"\n")
	case table.Writer:
		if t == nil {
			_, err = io.WriteString(w, "▶ (empty table)\n")
		} else {
			_, err = io.WriteString(w, t.Render()+"\n")
		}
	default:
		trace().Debugf("no format for item of type %T", t)
		_, err = io.WriteString(w, fmt.Sprintf("▶ object of type %T\n", t))
		return false, err
	}
	return err == nil, err
}
