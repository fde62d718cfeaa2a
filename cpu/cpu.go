package cpu

import (
	"errors"
	"fmt"
	"iter"
	"log"
	"maps"
)

// Service handles a software interrupt vector. The DOS layer attaches its
// system call dispatcher through this interface.
type Service interface {
	Interrupt(cp *Cpu, vector uint8) error
}

var _cpu_defines = map[string]string{
	"COM_ORIGIN": fmt.Sprintf("%#v", COM_ORIGIN),
	"MEM_SIZE":   fmt.Sprintf("%#v", MEM_SIZE),
}

// Cpu is the simulation context for the 8086-subset processor.
type Cpu struct {
	Verbose bool // Set to enable verbose logging.

	Mem *Memory   // Flat 64KiB memory.
	Reg [8]uint16 // Register bank, in Reg16 encoding order.
	Ip  uint16    // Current instruction pointer.

	Zero  bool // Zero flag.
	Sign  bool // Sign flag.
	Carry bool // Carry flag.

	Ticks int // Instructions executed counter.

	service [256]Service // Interrupt vector table.
}

// NewCpu creates a new CPU with zeroed memory.
func NewCpu() (cp *Cpu) {
	cp = &Cpu{
		Mem: &Memory{},
	}

	return
}

// Defines for the cpu.
func (cp *Cpu) Defines() iter.Seq2[string, string] {
	return maps.All(_cpu_defines)
}

// String returns the current CPU state as a string.
func (cp *Cpu) String() (text string) {
	regs := []string{
		"ip", "flags",
		"ax", "cx", "dx", "bx",
		"sp", "bp", "si", "di",
	}
	for _, reg := range regs {
		var strval string
		switch reg {
		case "ip":
			strval = fmt.Sprintf("%04x", cp.Ip)
		case "flags":
			flag := func(set bool, name string) string {
				if set {
					return name
				}
				return "-"
			}
			strval = flag(cp.Zero, "z") + flag(cp.Sign, "s") + flag(cp.Carry, "c")
		default:
			val := cp.Get16(reg16Map[reg])
			strval = fmt.Sprintf("%04x", val)
		}
		text += fmt.Sprintf("% 6s: %v\n", reg, strval)
	}

	return
}

// Reset the CPU state.
// - Clears the registers, flags, and memory.
// - Zeros statistics counters.
// - Sets the instruction pointer to the .COM origin.
func (cp *Cpu) Reset() {
	if cp.Verbose {
		log.Printf("cpu: reset")
	}

	clear(cp.Reg[:])
	clear(cp.Mem.Cell[:])
	cp.Zero = false
	cp.Sign = false
	cp.Carry = false
	cp.Ticks = 0
	cp.Ip = COM_ORIGIN
}

// SetService installs a handler for an interrupt vector.
func (cp *Cpu) SetService(vector uint8, service Service) {
	cp.service[vector] = service
}

// GetService gets the handler for an interrupt vector.
func (cp *Cpu) GetService(vector uint8) (service Service, err error) {
	service = cp.service[vector]
	if service == nil {
		err = ErrVectorUnset
	}
	return
}

// Push pushes a word onto the stack.
func (cp *Cpu) Push(value uint16) {
	cp.Reg[REG_SP] -= 2
	cp.Mem.Set16(cp.Reg[REG_SP], value)
}

// Pop pops a word from the stack.
func (cp *Cpu) Pop() (value uint16) {
	value = cp.Mem.Get16(cp.Reg[REG_SP])
	cp.Reg[REG_SP] += 2
	return
}

// FetchCode decodes the next instruction at the instruction pointer.
func (cp *Cpu) FetchCode() (inst Inst, err error) {
	return Decode(cp.Mem, cp.Ip)
}

// Tick executes a single CPU instruction cycle.
func (cp *Cpu) Tick() (err error) {
	inst, err := cp.FetchCode()
	if err != nil {
		return
	}

	return cp.Execute(inst)
}

// getValue reads the value of an operand.
func (cp *Cpu) getValue(op Operand, wide bool) (value uint16, err error) {
	switch op.Kind {
	case OPERAND_REG8:
		value = uint16(cp.Get8(op.Reg8))
	case OPERAND_REG16:
		value = cp.Get16(op.Reg16)
	case OPERAND_MEM:
		if wide {
			value = cp.Mem.Get16(op.Value)
		} else {
			value = uint16(cp.Mem.Get8(op.Value))
		}
	case OPERAND_IMM:
		value = op.Value
	default:
		err = ErrOperandInvalid
	}

	return
}

// setValue writes the value of an operand.
func (cp *Cpu) setValue(op Operand, wide bool, value uint16) (err error) {
	switch op.Kind {
	case OPERAND_REG8:
		cp.Set8(op.Reg8, uint8(value))
	case OPERAND_REG16:
		cp.Set16(op.Reg16, value)
	case OPERAND_MEM:
		if wide {
			cp.Mem.Set16(op.Value, value)
		} else {
			cp.Mem.Set8(op.Value, uint8(value))
		}
	default:
		err = ErrOperandInvalid
	}

	return
}

// alu performs an add or subtract at the operation width, updating the
// zero, sign, and carry flags. Results wrap silently.
func (cp *Cpu) alu(op Op, wide bool, a, b uint16) (out uint16) {
	if !wide {
		a &= 0xff
		b &= 0xff
	}

	switch op {
	case OP_ADD, OP_INC:
		out = a + b
	case OP_SUB, OP_CMP, OP_DEC:
		out = a - b
	}

	signBit := uint16(0x8000)
	if !wide {
		out &= 0xff
		signBit = 0x80
	}

	switch op {
	case OP_ADD, OP_INC:
		cp.Carry = out < a
	case OP_SUB, OP_CMP, OP_DEC:
		cp.Carry = b > a
	}
	cp.Zero = out == 0
	cp.Sign = (out & signBit) != 0

	return
}

// Execute executes a single decoded instruction.
func (cp *Cpu) Execute(inst Inst) (err error) {
	defer func() {
		if err != nil {
			err = errors.Join(ErrInst(inst), err)
		}
	}()
	if cp.Verbose {
		log.Printf("%04x: %v", inst.Addr, inst)
	}

	next_ip := inst.Addr + inst.Size

	switch inst.Op {
	case OP_NOP:
		// pass
	case OP_MOV:
		var value uint16
		value, err = cp.getValue(inst.Src, inst.Wide)
		if err != nil {
			return
		}
		err = cp.setValue(inst.Dst, inst.Wide, value)
		if err != nil {
			return
		}
	case OP_ADD, OP_SUB, OP_CMP:
		var a, b uint16
		a, err = cp.getValue(inst.Dst, inst.Wide)
		if err != nil {
			return
		}
		b, err = cp.getValue(inst.Src, inst.Wide)
		if err != nil {
			return
		}
		out := cp.alu(inst.Op, inst.Wide, a, b)
		if inst.Op != OP_CMP {
			err = cp.setValue(inst.Dst, inst.Wide, out)
			if err != nil {
				return
			}
		}
	case OP_INC, OP_DEC:
		var a uint16
		a, err = cp.getValue(inst.Dst, inst.Wide)
		if err != nil {
			return
		}
		// INC and DEC preserve the carry flag.
		carry := cp.Carry
		out := cp.alu(inst.Op, inst.Wide, a, 1)
		cp.Carry = carry
		err = cp.setValue(inst.Dst, inst.Wide, out)
		if err != nil {
			return
		}
	case OP_PUSH:
		var value uint16
		value, err = cp.getValue(inst.Dst, true)
		if err != nil {
			return
		}
		cp.Push(value)
	case OP_POP:
		err = cp.setValue(inst.Dst, true, cp.Pop())
		if err != nil {
			return
		}
	case OP_JMP:
		next_ip = inst.Target
	case OP_JE:
		if cp.Zero {
			next_ip = inst.Target
		}
	case OP_JNE:
		if !cp.Zero {
			next_ip = inst.Target
		}
	case OP_CALL:
		cp.Push(next_ip)
		next_ip = inst.Target
	case OP_RET:
		next_ip = cp.Pop()
	case OP_INT:
		var service Service
		service, err = cp.GetService(inst.Vector)
		if err != nil {
			err = errors.Join(ErrVector(inst.Vector), err)
			return
		}
		// The service observes the post-instruction IP, as after a
		// real INT/IRET pair.
		cp.Ip = next_ip
		err = service.Interrupt(cp, inst.Vector)
		if err != nil {
			return
		}
	default:
		err = ErrOpcodeDecode
		return
	}

	cp.Ip = next_ip
	cp.Ticks += 1

	return
}
