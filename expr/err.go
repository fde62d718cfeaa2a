package expr

import (
	"errors"

	"github.com/sergyinfo/dos86/translate"
)

var f = translate.From

var (
	ErrDivideByZero = errors.New(f("division by zero"))
	ErrNodeUnknown  = errors.New(f("unknown expression node"))
)

// ErrLexical reports a rune outside the expression alphabet.
type ErrLexical rune

func (el ErrLexical) Error() string {
	return f("unknown symbol '%c'", rune(el))
}

// ErrNumberRange reports an integer literal too large to represent.
type ErrNumberRange string

func (en ErrNumberRange) Error() string {
	return f("'%v' is out of range", string(en))
}

// ErrUnexpectedToken reports a syntax error at a token.
type ErrUnexpectedToken Token

func (eu ErrUnexpectedToken) Error() string {
	return f("syntax error at %v", Token(eu))
}
