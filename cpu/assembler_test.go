package cpu

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAssemblerEncodings(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		Source string
		Bytes  []byte
	}){
		{Source: "mov al, 5", Bytes: []byte{0xB0, 0x05}},
		{Source: "mov bh, 0xff", Bytes: []byte{0xB7, 0xFF}},
		{Source: "mov ax, 4c00h", Bytes: []byte{0xB8, 0x00, 0x4C}},
		{Source: "mov dx, bx", Bytes: []byte{0x8B, 0xD3}},
		{Source: "mov dl, ah", Bytes: []byte{0x8A, 0xD4}},
		{Source: "mov al, [0x1234]", Bytes: []byte{0x8A, 0x06, 0x34, 0x12}},
		{Source: "mov [0x1234], al", Bytes: []byte{0x88, 0x06, 0x34, 0x12}},
		{Source: "mov si, [0x1234]", Bytes: []byte{0x8B, 0x36, 0x34, 0x12}},
		{Source: "mov [0x1234], ax", Bytes: []byte{0x89, 0x06, 0x34, 0x12}},
		{Source: "add al, '0'", Bytes: []byte{0x80, 0xC0, 0x30}},
		{Source: "add ax, 300", Bytes: []byte{0x81, 0xC0, 0x2C, 0x01}},
		{Source: "sub al, bl", Bytes: []byte{0x2A, 0xC3}},
		{Source: "sub cx, [0x200]", Bytes: []byte{0x2B, 0x0E, 0x00, 0x02}},
		{Source: "cmp al, 0", Bytes: []byte{0x80, 0xF8, 0x00}},
		{Source: "cmp bx, dx", Bytes: []byte{0x3B, 0xDA}},
		{Source: "inc ax", Bytes: []byte{0x40}},
		{Source: "dec di", Bytes: []byte{0x4F}},
		{Source: "inc al", Bytes: []byte{0xFE, 0xC0}},
		{Source: "dec bl", Bytes: []byte{0xFE, 0xCB}},
		{Source: "push bx", Bytes: []byte{0x53}},
		{Source: "pop bp", Bytes: []byte{0x5D}},
		{Source: "int 21h", Bytes: []byte{0xCD, 0x21}},
		{Source: "ret", Bytes: []byte{0xC3}},
		{Source: "nop", Bytes: []byte{0x90}},
	}

	for _, testcase := range table {
		asm := &Assembler{}
		prog, err := asm.Parse(strings.NewReader(testcase.Source))
		assert.NoError(err, testcase.Source)
		if err != nil {
			continue
		}
		assert.Equal(testcase.Bytes, prog.Binary(), testcase.Source)
	}
}

func TestAssemblerLabels(t *testing.T) {
	assert := assert.New(t)

	source := `
org 100h
start:
	mov dx, msg
	jmp done
loop1:
	nop
done:
	jmp short loop1
	call start
msg db 'hi', '$'
`

	asm := &Assembler{}
	prog, err := asm.Parse(strings.NewReader(source))
	assert.NoError(err)

	expected := []byte{
		0xBA, 0x0B, 0x01, // mov dx, msg
		0xEB, 0x01, // jmp done
		0x90,       // loop1: nop
		0xEB, 0xFD, // done: jmp short loop1
		0xE8, 0xF5, 0xFF, // call start
		'h', 'i', '$', // msg
	}
	assert.Equal(uint16(0x100), prog.Origin)
	assert.Equal(expected, prog.Binary())
}

func TestAssemblerMemoryFixups(t *testing.T) {
	assert := assert.New(t)

	source := `
mov al, [value]
mov [value+1], al
value db 7, 0
`

	asm := &Assembler{}
	prog, err := asm.Parse(strings.NewReader(source))
	assert.NoError(err)

	// value lands at 0x108, after the two 4-byte instructions.
	expected := []byte{
		0x8A, 0x06, 0x08, 0x01,
		0x88, 0x06, 0x09, 0x01,
		7, 0,
	}
	assert.Equal(expected, prog.Binary())
}

func TestAssemblerEquates(t *testing.T) {
	assert := assert.New(t)

	source := `
WIDTH equ 3
HEIGHT equ 4
mov al, WIDTH
mov cl, $(WIDTH * HEIGHT)
`

	asm := &Assembler{}
	prog, err := asm.Parse(strings.NewReader(source))
	assert.NoError(err)
	assert.Equal([]byte{0xB0, 0x03, 0xB1, 0x0C}, prog.Binary())
}

func TestAssemblerPredefines(t *testing.T) {
	assert := assert.New(t)

	asm := &Assembler{}
	asm.Predefine("DOS_INT", "33")
	prog, err := asm.Parse(strings.NewReader("int DOS_INT"))
	assert.NoError(err)
	assert.Equal([]byte{0xCD, 0x21}, prog.Binary())

	// Predefines survive a re-parse.
	prog, err = asm.Parse(strings.NewReader("int DOS_INT"))
	assert.NoError(err)
	assert.Equal([]byte{0xCD, 0x21}, prog.Binary())
}

func TestAssemblerData(t *testing.T) {
	assert := assert.New(t)

	source := `
TERM equ 24h
msg db 'Hi: ', 0, TERM
`

	asm := &Assembler{}
	prog, err := asm.Parse(strings.NewReader(source))
	assert.NoError(err)
	assert.Equal([]byte{'H', 'i', ':', ' ', 0, 0x24}, prog.Binary())
	assert.Equal(0x100, asm.Label["msg"])
}

func TestAssemblerMacros(t *testing.T) {
	assert := assert.New(t)

	source := `
.macro exit code
	mov ax, $(0x4c00 + code)
	int 21h
.endm
exit 1
`

	asm := &Assembler{}
	prog, err := asm.Parse(strings.NewReader(source))
	assert.NoError(err)
	assert.Equal([]byte{0xB8, 0x01, 0x4C, 0xCD, 0x21}, prog.Binary())
}

func TestAssemblerNumericTargets(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		Source string
		Bytes  []byte
	}){
		{Source: "jmp 104h\nnop\nnop", Bytes: []byte{0xEB, 0x02, 0x90, 0x90}},
		{Source: "jmp 100h", Bytes: []byte{0xEB, 0xFE}},
		{Source: "je 103h\nnop", Bytes: []byte{0x74, 0x01, 0x90}},
		{Source: "call 100h", Bytes: []byte{0xE8, 0xFD, 0xFF}},
		{Source: "TARGET equ 103h\njne TARGET\nnop", Bytes: []byte{0x75, 0x01, 0x90}},
	}

	for _, testcase := range table {
		asm := &Assembler{}
		prog, err := asm.Parse(strings.NewReader(testcase.Source))
		assert.NoError(err, testcase.Source)
		if err != nil {
			continue
		}
		assert.Equal(testcase.Bytes, prog.Binary(), testcase.Source)
	}
}

func TestAssemblerErrors(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		Source string
		Err    error
	}){
		{Source: "bogus ax, 1", Err: ErrInstructionInvalid},
		{Source: "mov al, 256", Err: ErrOperandWidth},
		{Source: "mov al", Err: ErrOpcodeValueMissing},
		{Source: "mov al, 1, 2", Err: ErrOpcodeExtraArgs},
		{Source: "mov [0x100], 5", Err: ErrOperandCombo},
		{Source: "push 5", Err: ErrOperandCombo},
		{Source: "jmp", Err: ErrTargetMissing},
		{Source: "jmp nowhere", Err: ErrLabelMissing("nowhere")},
		{Source: "x: nop\nx: nop", Err: ErrLabelDuplicate},
		{Source: "A equ 1\nA equ 2", Err: ErrEquateDuplicate},
		{Source: "nop\norg 200h", Err: ErrOrgTooLate},
		{Source: ".endm", Err: ErrMacroLonelyEndm},
		{Source: ".macro m\nnop", Err: ErrMacroLonely},
		{Source: "db", Err: ErrDataSyntax},
		{Source: "jmp far1\n" + strings.Repeat("nop\n", 130) + "far1: nop", Err: ErrBranchRange(130)},
		{Source: "jmp 300h", Err: ErrBranchRange(0x1FE)},
		{Source: "jmp 1+bad", Err: ErrParseValue("1+bad")},
	}

	for _, testcase := range table {
		asm := &Assembler{}
		_, err := asm.Parse(strings.NewReader(testcase.Source))
		assert.ErrorIs(err, testcase.Err, testcase.Source)
	}
}

func TestAssemblerSyntaxContext(t *testing.T) {
	assert := assert.New(t)

	asm := &Assembler{}
	_, err := asm.Parse(strings.NewReader("nop\nbogus"))
	var syn ErrSyntax
	assert.ErrorAs(err, &syn)
	assert.Equal(2, syn.LineNo)
	assert.Equal("bogus", syn.Line)
}
