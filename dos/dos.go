package dos

import (
	"fmt"
	"io"
	"iter"
	"log"
	"maps"
	"os"

	"github.com/sergyinfo/dos86/cpu"
)

// Interrupt vectors and INT 21h function numbers.
const (
	INT_TERMINATE = 0x20 // Legacy terminate (CP/M style), exit code 0.
	INT_DOS       = 0x21 // DOS function dispatcher, function in AH.

	FUNC_READ_CHAR    = 0x01 // Read a character from input, echoed, into AL.
	FUNC_PRINT_CHAR   = 0x02 // Print the character in DL.
	FUNC_PRINT_STRING = 0x09 // Print the '$'-terminated string at DX.
	FUNC_EXIT         = 0x4C // Terminate with the exit code in AL.

	// TERMINATOR is the string sentinel byte of FUNC_PRINT_STRING.
	TERMINATOR = uint8('$')
)

var _dos_defines = map[string]string{
	"DOS_INT":          fmt.Sprintf("%#v", INT_DOS),
	"DOS_TERMINATE":    fmt.Sprintf("%#v", INT_TERMINATE),
	"DOS_READ_CHAR":    fmt.Sprintf("%#v", FUNC_READ_CHAR),
	"DOS_PRINT_CHAR":   fmt.Sprintf("%#v", FUNC_PRINT_CHAR),
	"DOS_PRINT_STRING": fmt.Sprintf("%#v", FUNC_PRINT_STRING),
	"DOS_EXIT":         fmt.Sprintf("%#v", FUNC_EXIT),
}

// Dos is the system service model. It handles the INT 20h and INT 21h
// vectors for an attached CPU.
type Dos struct {
	Verbose bool // Set to enable verbose logging.

	Input  io.Reader // Console input. Defaults to the process stdin.
	Output io.Writer // Console output. Defaults to the process stdout.
}

// input returns the console input stream.
func (dos *Dos) input() io.Reader {
	if dos.Input == nil {
		return os.Stdin
	}
	return dos.Input
}

// output returns the console output stream.
func (dos *Dos) output() io.Writer {
	if dos.Output == nil {
		return os.Stdout
	}
	return dos.Output
}

var _ cpu.Service = (*Dos)(nil)

// Defines returns an iter of defines for the service.
func (dos *Dos) Defines() iter.Seq2[string, string] {
	return maps.All(_dos_defines)
}

// Interrupt dispatches a software interrupt raised by the CPU.
func (dos *Dos) Interrupt(cp *cpu.Cpu, vector uint8) (err error) {
	switch vector {
	case INT_TERMINATE:
		return cpu.ErrHalt{}
	case INT_DOS:
		return dos.function(cp)
	}

	return ErrVectorUnknown(vector)
}

// function dispatches an INT 21h call on the AH function number.
func (dos *Dos) function(cp *cpu.Cpu) (err error) {
	function := cp.Get8(cpu.REG_AH)

	if dos.Verbose {
		log.Printf("dos: function 0x%02x", function)
	}

	switch function {
	case FUNC_READ_CHAR:
		var one [1]byte
		_, err = io.ReadFull(dos.input(), one[:])
		if err != nil {
			err = ErrInputExhausted
			return
		}
		// DOS echoes the character as it is read.
		_, err = dos.output().Write(one[:])
		if err != nil {
			return
		}
		cp.Set8(cpu.REG_AL, one[0])
	case FUNC_PRINT_CHAR:
		value := cp.Get8(cpu.REG_DL)
		_, err = dos.output().Write([]byte{value})
		if err != nil {
			return
		}
		cp.Set8(cpu.REG_AL, value)
	case FUNC_PRINT_STRING:
		err = dos.printString(cp)
		if err != nil {
			return
		}
		cp.Set8(cpu.REG_AL, TERMINATOR)
	case FUNC_EXIT:
		return cpu.ErrHalt{Code: cp.Get8(cpu.REG_AL)}
	default:
		err = ErrFunctionUnknown(function)
	}

	return
}

// printString writes the '$'-terminated string at DX to the output in a
// single write. A string that wraps all of memory without a terminator is
// an error; real DOS would print garbage forever, but an emulated run has
// to stop.
func (dos *Dos) printString(cp *cpu.Cpu) (err error) {
	start := cp.Get16(cpu.REG_DX)

	var text []byte
	addr := start
	for range cpu.MEM_SIZE {
		value := cp.Mem.Get8(addr)
		if value == TERMINATOR {
			_, err = dos.output().Write(text)
			return
		}
		text = append(text, value)
		addr++
	}

	return ErrUnterminated
}
