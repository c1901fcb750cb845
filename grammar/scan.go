package grammar

/*
BSD License

Copyright (c) 2019–21, Norbert Pillmayer

All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions
are met:

1. Redistributions of source code must retain the above copyright
notice, this list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright
notice, this list of conditions and the following disclaimer in the
documentation and/or other materials provided with the distribution.

3. Neither the name of this software nor the names of its contributors
may be used to endorse or promote products derived from this software
without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS
"AS IS" AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT
LIMITED TO, THE IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR
A PARTICULAR PURPOSE ARE DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT
HOLDER OR CONTRIBUTORS BE LIABLE FOR ANY DIRECT, INDIRECT, INCIDENTAL,
SPECIAL, EXEMPLARY, OR CONSEQUENTIAL DAMAGES (INCLUDING, BUT NOT
LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR SERVICES; LOSS OF USE,
DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER CAUSED AND ON ANY
THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY, OR TORT
(INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.  */

import (
	"fmt"
	"sync"
	"unicode"
	"unicode/utf8"

	"github.com/npillmayer/rpnre"
	lex "github.com/timtadh/lexmachine"
	"github.com/timtadh/lexmachine/machines"
)

// symbols lists every symbol of postfix expressions. Classification of a
// symbol is left to rpnre.KindOf.
var symbols = rpnre.Alphabet + string([]rune{rpnre.EmptyWord, rpnre.ConcatOp, rpnre.UnionOp, rpnre.StarOp})

var lexer *lex.Lexer
var lexerErr error
var initOnce sync.Once // monitors one-time initialization

func initLexer() (*lex.Lexer, error) {
	initOnce.Do(func() {
		lexer = lex.NewLexer()
		for _, r := range symbols {
			lexer.Add(pattern(r), makeToken(rpnre.KindOf(r)))
		}
		if lexerErr = lexer.Compile(); lexerErr != nil {
			tracer().Errorf("cannot compile lexer: %v", lexerErr)
		}
	})
	return lexer, lexerErr
}

// pattern escapes operator symbols for the lexer.
func pattern(r rune) []byte {
	if unicode.IsLetter(r) || unicode.IsDigit(r) {
		return []byte(string(r))
	}
	return []byte{'\\', byte(r)}
}

func makeToken(kind rpnre.TokenKind) lex.Action {
	return func(s *lex.Scanner, m *machines.Match) (interface{}, error) {
		return s.Token(int(kind), string(m.Bytes), m), nil
	}
}

// Scan splits a postfix expression into tokens. Symbols which are neither
// letters of the alphabet, the empty word marker nor operators are returned
// as tokens of kind rpnre.Invalid, leaving it to the caller to decide about
// them.
func Scan(expr string) ([]rpnre.Token, error) {
	lx, err := initLexer()
	if err != nil {
		return nil, err
	}
	scanner, err := lx.Scanner([]byte(expr))
	if err != nil {
		return nil, err
	}
	tokens := make([]rpnre.Token, 0, len(expr))
	for tok, err, eof := scanner.Next(); !eof; tok, err, eof = scanner.Next() {
		if ui, is := err.(*machines.UnconsumedInput); is {
			r, size := utf8.DecodeRuneInString(expr[ui.StartTC:])
			tracer().Debugf("unknown symbol %q at position %d", r, ui.StartTC)
			tokens = append(tokens, rpnre.MakeToken(r, ui.StartTC))
			scanner.TC = ui.StartTC + size // skip the symbol
			continue
		} else if err != nil {
			return tokens, err
		}
		lt := tok.(*lex.Token)
		r, _ := utf8.DecodeRune(lt.Lexeme)
		tokens = append(tokens, rpnre.MakeToken(r, lt.TC))
	}
	tracer().Debugf("expression %q has %d tokens", expr, len(tokens))
	return tokens, nil
}

// Tokenize splits a postfix expression into tokens. Unknown symbols result
// in an error wrapping rpnre.ErrMalformedExpression.
//
// An empty expression results in an empty token slice; it is up to the
// evaluator to reject it.
func Tokenize(expr string) ([]rpnre.Token, error) {
	tokens, err := Scan(expr)
	if err != nil {
		return nil, err
	}
	for _, t := range tokens {
		if t.Kind == rpnre.Invalid {
			tracer().Errorf("unknown symbol %q at position %d", t.Symbol, t.Pos)
			return nil, fmt.Errorf("%w: unknown symbol %q at position %d",
				rpnre.ErrMalformedExpression, t.Symbol, t.Pos)
		}
	}
	return tokens, nil
}
