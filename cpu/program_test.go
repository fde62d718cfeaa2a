package cpu

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProgram(t *testing.T) {
	assert := assert.New(t)

	source := `
org 200h
mov al, 1
nop
`

	asm := &Assembler{}
	prog, err := asm.Parse(strings.NewReader(source))
	assert.NoError(err)

	assert.Equal(uint16(0x200), prog.Origin)
	assert.Equal([]byte{0xB0, 0x01, 0x90}, prog.Binary())

	listing := prog.Listing()
	assert.Contains(listing, "0200: b001")
	assert.Contains(listing, "mov al 1")
	assert.Contains(listing, "0202: 90")

	dbg := prog.Debug(0x201)
	assert.NotNil(dbg.Opcode)
	assert.Equal(3, dbg.LineNo)
	assert.Equal(1, dbg.Offset)

	dbg = prog.Debug(0x202)
	assert.Equal(4, dbg.LineNo)

	// Outside the image.
	dbg = prog.Debug(0x300)
	assert.Nil(dbg.Opcode)
}

func TestProgramBytes(t *testing.T) {
	assert := assert.New(t)

	asm := &Assembler{}
	prog, err := asm.Parse(strings.NewReader("data db 1, 2, 3"))
	assert.NoError(err)

	collected := map[uint16]uint8{}
	for addr, value := range prog.Bytes() {
		collected[addr] = value
	}
	assert.Equal(map[uint16]uint8{0x100: 1, 0x101: 2, 0x102: 3}, collected)
}
