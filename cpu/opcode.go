package cpu

import (
	"fmt"
)

// Op is an instruction mnemonic.
type Op int

//go:generate go tool stringer -linecomment -type=Op
const (
	OP_MOV  = Op(0)  // mov
	OP_ADD  = Op(1)  // add
	OP_SUB  = Op(2)  // sub
	OP_CMP  = Op(3)  // cmp
	OP_INC  = Op(4)  // inc
	OP_DEC  = Op(5)  // dec
	OP_PUSH = Op(6)  // push
	OP_POP  = Op(7)  // pop
	OP_JMP  = Op(8)  // jmp
	OP_JE   = Op(9)  // je
	OP_JNE  = Op(10) // jne
	OP_CALL = Op(11) // call
	OP_RET  = Op(12) // ret
	OP_INT  = Op(13) // int
	OP_NOP  = Op(14) // nop
)

// OperandKind is the addressing kind of a decoded operand.
type OperandKind int

//go:generate go tool stringer -linecomment -type=OperandKind
const (
	OPERAND_NONE  = OperandKind(0) // none
	OPERAND_REG8  = OperandKind(1) // r8
	OPERAND_REG16 = OperandKind(2) // r16
	OPERAND_MEM   = OperandKind(3) // mem
	OPERAND_IMM   = OperandKind(4) // imm
)

// Operand is a single decoded instruction operand.
type Operand struct {
	Kind  OperandKind
	Reg8  Reg8
	Reg16 Reg16
	Value uint16 // Memory displacement, or immediate value.
}

// RegOperand8 makes an 8-bit register operand.
func RegOperand8(reg Reg8) Operand {
	return Operand{Kind: OPERAND_REG8, Reg8: reg}
}

// RegOperand16 makes a 16-bit register operand.
func RegOperand16(reg Reg16) Operand {
	return Operand{Kind: OPERAND_REG16, Reg16: reg}
}

// MemOperand makes a direct-address memory operand.
func MemOperand(disp uint16) Operand {
	return Operand{Kind: OPERAND_MEM, Value: disp}
}

// ImmOperand makes an immediate operand.
func ImmOperand(value uint16) Operand {
	return Operand{Kind: OPERAND_IMM, Value: value}
}

// String returns the assembly representation of the operand.
func (op Operand) String() string {
	switch op.Kind {
	case OPERAND_REG8:
		return op.Reg8.String()
	case OPERAND_REG16:
		return op.Reg16.String()
	case OPERAND_MEM:
		return fmt.Sprintf("[0x%04x]", op.Value)
	case OPERAND_IMM:
		return fmt.Sprintf("0x%x", op.Value)
	}

	return op.Kind.String()
}

// Inst is a single decoded instruction.
type Inst struct {
	Addr   uint16  // Address of the first byte.
	Size   uint16  // Encoded size in bytes.
	Op     Op      // Mnemonic.
	Wide   bool    // 16-bit operation.
	Dst    Operand // Destination operand, if any.
	Src    Operand // Source operand, if any.
	Vector uint8   // Interrupt vector, for OP_INT.
	Target uint16  // Resolved branch target, for jump and call.
}

// MakeModRM composes a mod-reg-r/m byte.
func MakeModRM(mod, reg, rm uint8) uint8 {
	return (mod << 6) | (reg << 3) | rm
}

// String returns the assembly language representation of this instruction.
func (inst Inst) String() (out string) {
	switch inst.Op {
	case OP_RET, OP_NOP:
		out = inst.Op.String()
	case OP_INT:
		out = fmt.Sprintf("%v 0x%02x", inst.Op, inst.Vector)
	case OP_JMP, OP_JE, OP_JNE, OP_CALL:
		out = fmt.Sprintf("%v 0x%04x", inst.Op, inst.Target)
	case OP_INC, OP_DEC, OP_PUSH, OP_POP:
		out = fmt.Sprintf("%v %v", inst.Op, inst.Dst)
	default:
		out = fmt.Sprintf("%v %v, %v", inst.Op, inst.Dst, inst.Src)
	}

	return
}

// aluBase maps the low opcode byte of each reg/mem ALU family to its mnemonic.
var aluBase = map[uint8]Op{
	0x00: OP_ADD,
	0x28: OP_SUB,
	0x38: OP_CMP,
	0x88: OP_MOV,
}

// groupExt maps the ModRM reg extension of the 0x80/0x81 immediate group.
var groupExt = map[int]Op{
	0: OP_ADD,
	5: OP_SUB,
	7: OP_CMP,
}

// Decode decodes the instruction at addr. The address wraps at the 64KiB
// boundary, as on the real processor.
func Decode(mem *Memory, addr uint16) (inst Inst, err error) {
	inst.Addr = addr

	next := addr
	fetch8 := func() (value uint8) {
		value = mem.Get8(next)
		next++
		return
	}
	fetch16 := func() (value uint16) {
		value = mem.Get16(next)
		next += 2
		return
	}
	fetchModRM := func(wide bool) (ext int, rm Operand, err error) {
		modrm := fetch8()
		mod := modrm >> 6
		ext = int((modrm >> 3) & 7)
		low := modrm & 7
		switch {
		case mod == 3 && wide:
			rm = RegOperand16(Reg16(low))
		case mod == 3:
			rm = RegOperand8(Reg8(low))
		case mod == 0 && low == 6:
			rm = MemOperand(fetch16())
		default:
			err = ErrAddressingMode
		}
		return
	}
	fetchRel8 := func() (target uint16) {
		rel := int8(fetch8())
		return next + uint16(int16(rel))
	}

	op := fetch8()

	switch {
	case op == 0x90:
		inst.Op = OP_NOP
	case op == 0xC3:
		inst.Op = OP_RET
	case op == 0xCD:
		inst.Op = OP_INT
		inst.Vector = fetch8()
	case op == 0xEB:
		inst.Op = OP_JMP
		inst.Target = fetchRel8()
	case op == 0x74:
		inst.Op = OP_JE
		inst.Target = fetchRel8()
	case op == 0x75:
		inst.Op = OP_JNE
		inst.Target = fetchRel8()
	case op == 0xE8:
		inst.Op = OP_CALL
		rel := fetch16()
		inst.Target = next + rel
	case (op & 0xF8) == 0x40:
		inst.Op = OP_INC
		inst.Wide = true
		inst.Dst = RegOperand16(Reg16(op & 7))
	case (op & 0xF8) == 0x48:
		inst.Op = OP_DEC
		inst.Wide = true
		inst.Dst = RegOperand16(Reg16(op & 7))
	case (op & 0xF8) == 0x50:
		inst.Op = OP_PUSH
		inst.Wide = true
		inst.Dst = RegOperand16(Reg16(op & 7))
	case (op & 0xF8) == 0x58:
		inst.Op = OP_POP
		inst.Wide = true
		inst.Dst = RegOperand16(Reg16(op & 7))
	case (op & 0xF8) == 0xB0:
		inst.Op = OP_MOV
		inst.Dst = RegOperand8(Reg8(op & 7))
		inst.Src = ImmOperand(uint16(fetch8()))
	case (op & 0xF8) == 0xB8:
		inst.Op = OP_MOV
		inst.Wide = true
		inst.Dst = RegOperand16(Reg16(op & 7))
		inst.Src = ImmOperand(fetch16())
	case op == 0x80 || op == 0x81:
		inst.Wide = op == 0x81
		var ext int
		ext, inst.Dst, err = fetchModRM(inst.Wide)
		if err != nil {
			return
		}
		var ok bool
		inst.Op, ok = groupExt[ext]
		if !ok {
			err = ErrOpcodeGroup
			return
		}
		if inst.Wide {
			inst.Src = ImmOperand(fetch16())
		} else {
			inst.Src = ImmOperand(uint16(fetch8()))
		}
	case op == 0xFE:
		var ext int
		var rm Operand
		ext, rm, err = fetchModRM(false)
		if err != nil {
			return
		}
		switch ext {
		case 0:
			inst.Op = OP_INC
		case 1:
			inst.Op = OP_DEC
		default:
			err = ErrOpcodeGroup
			return
		}
		inst.Dst = rm
	default:
		base, ok := aluBase[op&0xFC]
		if !ok {
			err = ErrOpcodeUnknown(op)
			return
		}
		inst.Op = base
		inst.Wide = (op & 1) != 0
		toReg := (op & 2) != 0

		var ext int
		var rm Operand
		ext, rm, err = fetchModRM(inst.Wide)
		if err != nil {
			return
		}
		var reg Operand
		if inst.Wide {
			reg = RegOperand16(Reg16(ext))
		} else {
			reg = RegOperand8(Reg8(ext))
		}

		if toReg {
			inst.Dst, inst.Src = reg, rm
		} else {
			inst.Dst, inst.Src = rm, reg
		}
	}

	inst.Size = next - addr

	return
}
