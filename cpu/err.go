package cpu

import (
	"errors"

	"github.com/sergyinfo/dos86/translate"
)

var f = translate.From

var (
	// Cpu errors
	ErrVectorUnset     = errors.New(f("interrupt vector unset"))
	ErrOperandInvalid  = errors.New(f("operand invalid"))
	ErrProgramTooLarge = errors.New(f("program too large"))

	// Instruction decode errors
	ErrOpcodeDecode   = errors.New(f("decode"))
	ErrOpcodeGroup    = errors.New(f("group extension invalid"))
	ErrAddressingMode = errors.New(f("addressing mode unsupported"))

	// Assembler errors
	ErrEquateSyntax       = errors.New(f("equ syntax"))
	ErrEquateDuplicate    = errors.New(f("equ duplicated"))
	ErrLabelDuplicate     = errors.New(f("label duplicated"))
	ErrMacroSyntax        = errors.New(f(".macro syntax"))
	ErrMacroNesting       = errors.New(f(".macro in .macro prohibited"))
	ErrMacroDuplicate     = errors.New(f(".macro duplicated"))
	ErrMacroLonely        = errors.New(f(".macro without .endm"))
	ErrMacroLonelyEndm    = errors.New(f(".endm without .macro"))
	ErrOrgSyntax          = errors.New(f("org syntax"))
	ErrOrgTooLate         = errors.New(f("org after code"))
	ErrDataSyntax         = errors.New(f("db syntax"))
	ErrOpcodeExtraArgs    = errors.New(f("excessive arguments"))
	ErrOpcodeMissing      = errors.New(f("opcode missing"))
	ErrOpcodeValueMissing = errors.New(f("value missing"))
	ErrOpcodeInvalid      = errors.New(f("opcode invalid"))
	ErrOperandWidth       = errors.New(f("operand width mismatch"))
	ErrOperandCombo       = errors.New(f("operand combination unsupported"))
	ErrTargetMissing      = errors.New(f("target missing"))
	ErrInstructionInvalid = errors.New(f("instruction invalid"))
)

// ErrHalt reports program termination with a DOS exit code.
type ErrHalt struct {
	Code uint8
}

func (eh ErrHalt) Error() string {
	return f("halted with code %d", eh.Code)
}

func (eh ErrHalt) Is(err error) (ok bool) {
	_, ok = err.(ErrHalt)
	return
}

// ErrOpcodeUnknown reports an opcode byte outside the supported subset.
type ErrOpcodeUnknown uint8

func (eo ErrOpcodeUnknown) Error() string {
	return f("unknown opcode 0x%02x", uint8(eo))
}

// ErrInst annotates an execution error with the failing instruction.
type ErrInst Inst

func (ei ErrInst) Error() string {
	return f("at 0x%04x: %v", Inst(ei).Addr, Inst(ei).String())
}

func (ei ErrInst) Is(err error) (ok bool) {
	_, ok = err.(ErrInst)
	return
}

// ErrVector annotates a service error with the interrupt vector.
type ErrVector uint8

func (ev ErrVector) Error() string {
	return f("int 0x%02x", uint8(ev))
}

type ErrLabelMissing string

func (el ErrLabelMissing) Error() string {
	return f("label %v missing", string(el))
}

type ErrBranchRange int

func (eb ErrBranchRange) Error() string {
	return f("branch displacement %v out of range", int(eb))
}

type ErrSyntax struct {
	LineNo int
	Line   string
	Err    error
}

func (err ErrSyntax) Error() string {
	return f("line %d '%v' %v", err.LineNo, err.Line, err.Err)
}

func (err ErrSyntax) Unwrap() error {
	return err.Err
}

type ErrParseNumber string

func (err ErrParseNumber) Error() string {
	return f("'%v' is not a number", string(err))
}

type ErrParseCharacter string

func (err ErrParseCharacter) Error() string {
	return f("'%v' is not a character", string(err))
}

type ErrParseValue string

func (err ErrParseValue) Error() string {
	return f("'%v' is not a value or register", string(err))
}

type ErrParseExpression string

func (err ErrParseExpression) Error() string {
	return f("$(%v) is not a valid expression", string(err))
}

type ErrMacro struct {
	Macro string
	Line  int
	Err   error
}

func (err ErrMacro) Error() string {
	return f("macro %v line %v %v", err.Macro, err.Line, err.Err.Error())
}

func (err ErrMacro) Unwrap() error {
	return err.Err
}
