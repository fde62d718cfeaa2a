package cpu

const (
	MEM_SIZE   = 0x10000 // Flat address space of the tiny model.
	COM_ORIGIN = 0x0100  // Load address of a .COM image.
)

// Memory is the 64KiB flat address space seen by a .COM program.
// All accesses wrap at the 16-bit address boundary.
type Memory struct {
	Cell [MEM_SIZE]uint8
}

func (mem *Memory) Get8(addr uint16) uint8 {
	return mem.Cell[addr]
}

func (mem *Memory) Set8(addr uint16, value uint8) {
	mem.Cell[addr] = value
}

// Get16 reads a little-endian 16-bit value.
func (mem *Memory) Get16(addr uint16) uint16 {
	return uint16(mem.Cell[addr]) | (uint16(mem.Cell[addr+1]) << 8)
}

// Set16 writes a little-endian 16-bit value.
func (mem *Memory) Set16(addr uint16, value uint16) {
	mem.Cell[addr] = uint8(value)
	mem.Cell[addr+1] = uint8(value >> 8)
}

// Load copies an image into memory at the given origin.
func (mem *Memory) Load(origin uint16, image []byte) (err error) {
	if int(origin)+len(image) > MEM_SIZE {
		err = ErrProgramTooLarge
		return
	}

	copy(mem.Cell[origin:], image)

	return
}
