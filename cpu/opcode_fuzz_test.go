package cpu

import (
	"testing"
)

func FuzzDecode(f *testing.F) {
	f.Add([]byte{0x90})
	f.Add([]byte{0xB8, 0x00, 0x4C})
	f.Add([]byte{0xCD, 0x21})
	f.Add([]byte{0x8A, 0x06, 0x34, 0x12})
	f.Add([]byte{0x81, 0x06, 0x00, 0x20, 0x34, 0x12})

	f.Fuzz(func(t *testing.T, data []byte) {
		mem := &Memory{}
		copy(mem.Cell[COM_ORIGIN:], data)

		inst, err := Decode(mem, COM_ORIGIN)
		if err != nil {
			return
		}

		// The longest encoding is opcode + ModRM + disp16 + imm16.
		if inst.Size < 1 || inst.Size > 6 {
			t.Errorf("size %v out of range: %v", inst.Size, inst)
		}
		if inst.Addr != COM_ORIGIN {
			t.Errorf("addr %04x moved: %v", inst.Addr, inst)
		}
		_ = inst.String()
	})
}
