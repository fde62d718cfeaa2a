package cpu

// Reg8 is an 8-bit register index, in 8086 "reg" field encoding order.
type Reg8 int

//go:generate go tool stringer -linecomment -type=Reg8
const (
	REG_AL = Reg8(0) // al
	REG_CL = Reg8(1) // cl
	REG_DL = Reg8(2) // dl
	REG_BL = Reg8(3) // bl
	REG_AH = Reg8(4) // ah
	REG_CH = Reg8(5) // ch
	REG_DH = Reg8(6) // dh
	REG_BH = Reg8(7) // bh
)

// Reg16 is a 16-bit register index, in 8086 "reg" field encoding order.
type Reg16 int

//go:generate go tool stringer -linecomment -type=Reg16
const (
	REG_AX = Reg16(0) // ax
	REG_CX = Reg16(1) // cx
	REG_DX = Reg16(2) // dx
	REG_BX = Reg16(3) // bx
	REG_SP = Reg16(4) // sp
	REG_BP = Reg16(5) // bp
	REG_SI = Reg16(6) // si
	REG_DI = Reg16(7) // di
)

// Get8 returns the value of an 8-bit register view.
func (cp *Cpu) Get8(reg Reg8) uint8 {
	if reg < REG_AH {
		return uint8(cp.Reg[reg])
	}
	return uint8(cp.Reg[reg-REG_AH] >> 8)
}

// Set8 sets the value of an 8-bit register view.
func (cp *Cpu) Set8(reg Reg8, value uint8) {
	if reg < REG_AH {
		cp.Reg[reg] = (cp.Reg[reg] & 0xff00) | uint16(value)
		return
	}
	cp.Reg[reg-REG_AH] = (cp.Reg[reg-REG_AH] & 0x00ff) | (uint16(value) << 8)
}

// Get16 returns the value of a 16-bit register.
func (cp *Cpu) Get16(reg Reg16) uint16 {
	return cp.Reg[reg]
}

// Set16 sets the value of a 16-bit register.
func (cp *Cpu) Set16(reg Reg16, value uint16) {
	cp.Reg[reg] = value
}
