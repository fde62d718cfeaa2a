package cpu

import (
	"fmt"
	"iter"
	"strings"
)

// Program is an assembled listing plus the load origin of its image.
type Program struct {
	Origin  uint16
	Opcodes []Opcode
}

// Debug locates the opcode covering an address.
type Debug struct {
	*Opcode
	Offset int
}

func (prog *Program) Debug(addr uint16) (dbg Debug) {
	for n, op := range prog.Opcodes {
		if int(addr) >= op.Addr && int(addr) < op.Addr+len(op.Bytes) {
			dbg = Debug{
				Opcode: &prog.Opcodes[n],
				Offset: int(addr) - op.Addr,
			}
			break
		}
	}

	return
}

// Binary returns the flat .COM image, relative to the program origin.
func (prog *Program) Binary() (image []byte) {
	for addr, data := range prog.Bytes() {
		offset := int(addr) - int(prog.Origin)
		for offset >= len(image) {
			image = append(image, 0)
		}
		image[offset] = data
	}

	return
}

// Bytes iterates over every assembled byte with its address.
func (prog *Program) Bytes() iter.Seq2[uint16, uint8] {
	return func(yield func(addr uint16, data uint8) bool) {
		for _, op := range prog.Opcodes {
			addr := uint16(op.Addr)
			for n, data := range op.Bytes {
				if !yield(addr+uint16(n), data) {
					return
				}
			}
		}
	}
}

// Listing returns a human-readable listing of the assembled program.
func (prog *Program) Listing() (text string) {
	for _, op := range prog.Opcodes {
		text += fmt.Sprintf("%04x: %-12x %v\n", op.Addr, op.Bytes, strings.Join(op.Words, " "))
	}

	return
}
