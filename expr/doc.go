// Package expr implements a small interpreter for arithmetic expressions
// over integers with +, -, *, / and parentheses.
//
// Input is tokenized by Lexer, parsed by Parser into a Num/BinOp tree with
// the usual precedence (factor, term, expression), and evaluated by Eval.
// Division is true division, so results are floating point.
package expr
