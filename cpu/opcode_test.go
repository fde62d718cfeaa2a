package cpu

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDecode(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		Bytes []byte
		Text  string
		Size  uint16
	}){
		{Bytes: []byte{0x90}, Text: "nop", Size: 1},
		{Bytes: []byte{0xC3}, Text: "ret", Size: 1},
		{Bytes: []byte{0xCD, 0x21}, Text: "int 0x21", Size: 2},
		{Bytes: []byte{0xB0, 0x34}, Text: "mov al, 0x34", Size: 2},
		{Bytes: []byte{0xB8, 0x00, 0x4C}, Text: "mov ax, 0x4c00", Size: 3},
		{Bytes: []byte{0x8A, 0x06, 0x34, 0x12}, Text: "mov al, [0x1234]", Size: 4},
		{Bytes: []byte{0x88, 0x06, 0x34, 0x12}, Text: "mov [0x1234], al", Size: 4},
		{Bytes: []byte{0x89, 0x16, 0x00, 0x20}, Text: "mov [0x2000], dx", Size: 4},
		{Bytes: []byte{0x8B, 0xD3}, Text: "mov dx, bx", Size: 2},
		{Bytes: []byte{0x80, 0xC0, 0x30}, Text: "add al, 0x30", Size: 3},
		{Bytes: []byte{0x81, 0xEB, 0x01, 0x00}, Text: "sub bx, 0x1", Size: 4},
		{Bytes: []byte{0x38, 0xD8}, Text: "cmp al, bl", Size: 2},
		{Bytes: []byte{0x2A, 0xC3}, Text: "sub al, bl", Size: 2},
		{Bytes: []byte{0x40}, Text: "inc ax", Size: 1},
		{Bytes: []byte{0x4F}, Text: "dec di", Size: 1},
		{Bytes: []byte{0xFE, 0xC8}, Text: "dec al", Size: 2},
		{Bytes: []byte{0x50}, Text: "push ax", Size: 1},
		{Bytes: []byte{0x5F}, Text: "pop di", Size: 1},
		{Bytes: []byte{0x74, 0x05}, Text: "je 0x0107", Size: 2},
		{Bytes: []byte{0x75, 0xFE}, Text: "jne 0x0100", Size: 2},
		{Bytes: []byte{0xEB, 0x10}, Text: "jmp 0x0112", Size: 2},
		{Bytes: []byte{0xE8, 0x10, 0x00}, Text: "call 0x0113", Size: 3},
	}

	for _, testcase := range table {
		mem := &Memory{}
		assert.NoError(mem.Load(COM_ORIGIN, testcase.Bytes))
		inst, err := Decode(mem, COM_ORIGIN)
		assert.NoError(err, testcase.Text)
		if err != nil {
			continue
		}
		assert.Equal(testcase.Text, inst.String())
		assert.Equal(testcase.Size, inst.Size, testcase.Text)
		assert.Equal(uint16(COM_ORIGIN), inst.Addr, testcase.Text)
	}
}

func TestDecodeErrors(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		Bytes []byte
		Err   error
	}){
		{Bytes: []byte{0xF4}, Err: ErrOpcodeUnknown(0xF4)},
		{Bytes: []byte{0x80, 0xD0, 0x00}, Err: ErrOpcodeGroup},
		{Bytes: []byte{0xFE, 0xD0}, Err: ErrOpcodeGroup},
		{Bytes: []byte{0x8A, 0x46, 0x10}, Err: ErrAddressingMode},
		{Bytes: []byte{0x00, 0x07}, Err: ErrAddressingMode},
	}

	for _, testcase := range table {
		mem := &Memory{}
		assert.NoError(mem.Load(COM_ORIGIN, testcase.Bytes))
		_, err := Decode(mem, COM_ORIGIN)
		assert.ErrorIs(err, testcase.Err)
	}
}

func TestDecodeRoundTrip(t *testing.T) {
	assert := assert.New(t)

	// Every assembled instruction must decode back to its own mnemonic,
	// consuming exactly its own bytes.
	table := []string{
		"mov al, 5",
		"mov ax, 4c00h",
		"mov dl, bh",
		"mov di, si",
		"mov al, [0x1234]",
		"mov [0x1234], ax",
		"add al, 1",
		"sub bx, 300",
		"cmp al, bl",
		"inc cx",
		"dec al",
		"push dx",
		"pop dx",
		"int 21h",
		"ret",
		"nop",
	}

	for _, source := range table {
		asm := &Assembler{}
		prog, err := asm.Parse(strings.NewReader(source))
		assert.NoError(err, source)
		if err != nil {
			continue
		}

		mem := &Memory{}
		assert.NoError(mem.Load(prog.Origin, prog.Binary()))
		inst, err := Decode(mem, prog.Origin)
		assert.NoError(err, source)
		assert.Equal(len(prog.Binary()), int(inst.Size), source)
		assert.Equal(strings.Fields(source)[0], inst.Op.String(), source)
	}
}
