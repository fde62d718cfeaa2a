package dos

import (
	"errors"

	"github.com/sergyinfo/dos86/translate"
)

var f = translate.From

var (
	ErrUnterminated   = errors.New(f("string not terminated"))
	ErrInputExhausted = errors.New(f("console input exhausted"))
)

// ErrFunctionUnknown reports an unimplemented INT 21h function number.
type ErrFunctionUnknown uint8

func (ef ErrFunctionUnknown) Error() string {
	return f("function 0x%02x unknown", uint8(ef))
}

// ErrVectorUnknown reports an interrupt vector this service does not handle.
type ErrVectorUnknown uint8

func (ev ErrVectorUnknown) Error() string {
	return f("vector 0x%02x unknown", uint8(ev))
}
