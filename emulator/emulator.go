// Package emulator ties the CPU and DOS services into a runnable .COM
// process model.
package emulator

import (
	"errors"
	"fmt"
	"iter"
	"maps"

	"github.com/sergyinfo/dos86/cpu"
	"github.com/sergyinfo/dos86/dos"
	"github.com/sergyinfo/dos86/internal"
)

const (
	// STACK_TOP is the initial stack pointer of a .COM process. DOS
	// leaves a zero word at the top so a RET from the entry point lands
	// on the INT 20h at offset zero of the process frame.
	STACK_TOP = 0xFFFE
)

var _emulator_defines = map[string]string{
	"STACK_TOP": fmt.Sprintf("%#v", STACK_TOP),
}

// Emulator state. CPU + DOS services + program listing.
type Emulator struct {
	Verbose  bool         // If set, enables verbose logging.
	*cpu.Cpu              // Reference to the CPU simulation.
	Program  *cpu.Program // Reference to the currently loaded program listing.

	Dos dos.Dos // DOS service model.

	exitCode uint8
	halted   bool
}

// NewEmulator creates a new emulator.
func NewEmulator() (emu *Emulator) {
	emu = &Emulator{
		Cpu:     cpu.NewCpu(),
		Program: &cpu.Program{},
	}

	emu.Cpu.SetService(dos.INT_TERMINATE, &emu.Dos)
	emu.Cpu.SetService(dos.INT_DOS, &emu.Dos)

	return
}

// Defines returns an iterator over all of the defines
func (emu *Emulator) Defines() iter.Seq2[string, string] {
	return internal.IterSeq2Concat(maps.All(_emulator_defines),
		emu.Cpu.Defines(),
		emu.Dos.Defines(),
	)
}

// Reset the emulator state and load the program image.
// - Clears the CPU and memory.
// - Builds the .COM process frame: INT 20h at offset 0, a zero return
//   address on the stack, SP at STACK_TOP.
// - Loads the program image at its origin and points IP there.
func (emu *Emulator) Reset() (err error) {
	emu.Cpu.Verbose = emu.Verbose
	emu.Dos.Verbose = emu.Verbose

	emu.Cpu.Reset()
	emu.exitCode = 0
	emu.halted = false

	// Process frame: a RET from the entry point must terminate.
	emu.Cpu.Mem.Set8(0, 0xCD)
	emu.Cpu.Mem.Set8(1, 0x20)
	emu.Cpu.Set16(cpu.REG_SP, STACK_TOP)
	emu.Cpu.Mem.Set16(STACK_TOP, 0)

	err = emu.Cpu.Mem.Load(emu.Program.Origin, emu.Program.Binary())
	if err != nil {
		return
	}

	emu.Cpu.Ip = emu.Program.Origin

	return
}

// Ticks returns the total instructions executed since a reset.
func (emu *Emulator) Ticks() int {
	return emu.Cpu.Ticks
}

// Ip returns current instruction pointer.
func (emu *Emulator) Ip() int {
	return int(emu.Cpu.Ip)
}

// ExitCode returns the DOS termination code of a completed run.
func (emu *Emulator) ExitCode() uint8 {
	return emu.exitCode
}

// LineNo returns the current line number for the executing opcode.
func (emu *Emulator) LineNo() int {
	dbg := emu.Program.Debug(emu.Cpu.Ip)
	if dbg.Opcode == nil {
		return 0
	}

	return dbg.LineNo
}

// Tick performs a single tick of the emulator.
func (emu *Emulator) Tick() (done bool, err error) {
	if emu.halted {
		done = true
		return
	}

	lineno := emu.LineNo()
	defer func() {
		if err != nil {
			err = &ErrRuntime{LineNo: lineno, Err: err}
		}
	}()

	err = emu.Cpu.Tick()

	var halt cpu.ErrHalt
	if errors.As(err, &halt) {
		err = nil
		done = true
		emu.halted = true
		emu.exitCode = halt.Code
	}

	return
}

// Run resets the emulator and ticks until the program terminates,
// returning its exit code.
func (emu *Emulator) Run() (code uint8, err error) {
	err = emu.Reset()
	if err != nil {
		return
	}

	for done := false; !done; {
		done, err = emu.Tick()
		if err != nil {
			return
		}
	}

	code = emu.ExitCode()

	return
}
