/*
Package rpnre analyses regular expressions given in reverse-Polish notation.

The question answered is: given a regular expression α over the alphabet
{a, b, c} (with '1' denoting the empty word), a letter x and a degree k,
does L(α) contain a word w such that x^k is a suffix of w?

Expressions are written in postfix notation, with operators
'.' (concatenation), '+' (union) and '*' (Kleene star) following their
operands. For example,

    ab+c.      denotes  (a+b).c
    ab+*1.     denotes  (a+b)*

Package rpnre holds the types shared by the sub-packages: tokens, lengths
which may be undefined or infinite, and the error values. The decision
procedure itself lives in package evaluator, the combination rules in
package algebra.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package rpnre
