package dos

import (
	"io"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sergyinfo/dos86/cpu"
)

func TestPrintString(t *testing.T) {
	assert := assert.New(t)

	cp := cpu.NewCpu()
	out := &strings.Builder{}
	dos := &Dos{Output: out}

	assert.NoError(cp.Mem.Load(0x200, []byte("Result: 4$after")))
	cp.Set16(cpu.REG_DX, 0x200)
	cp.Set8(cpu.REG_AH, FUNC_PRINT_STRING)

	err := dos.Interrupt(cp, INT_DOS)
	assert.NoError(err)
	assert.Equal("Result: 4", out.String())
	assert.Equal(TERMINATOR, cp.Get8(cpu.REG_AL))
}

func TestPrintStringUnterminated(t *testing.T) {
	assert := assert.New(t)

	cp := cpu.NewCpu()
	dos := &Dos{Output: &strings.Builder{}}

	// All of memory is zero, so the scan never finds a terminator.
	cp.Set16(cpu.REG_DX, 0)
	cp.Set8(cpu.REG_AH, FUNC_PRINT_STRING)

	err := dos.Interrupt(cp, INT_DOS)
	assert.ErrorIs(err, ErrUnterminated)
}

func TestPrintChar(t *testing.T) {
	assert := assert.New(t)

	cp := cpu.NewCpu()
	out := &strings.Builder{}
	dos := &Dos{Output: out}

	cp.Set8(cpu.REG_AH, FUNC_PRINT_CHAR)
	cp.Set8(cpu.REG_DL, 'x')

	err := dos.Interrupt(cp, INT_DOS)
	assert.NoError(err)
	assert.Equal("x", out.String())
	assert.Equal(uint8('x'), cp.Get8(cpu.REG_AL))
}

func TestReadChar(t *testing.T) {
	assert := assert.New(t)

	cp := cpu.NewCpu()
	out := &strings.Builder{}
	dos := &Dos{Input: strings.NewReader("ab"), Output: out}

	cp.Set8(cpu.REG_AH, FUNC_READ_CHAR)
	err := dos.Interrupt(cp, INT_DOS)
	assert.NoError(err)
	assert.Equal(uint8('a'), cp.Get8(cpu.REG_AL))

	err = dos.Interrupt(cp, INT_DOS)
	assert.NoError(err)
	assert.Equal(uint8('b'), cp.Get8(cpu.REG_AL))

	// Both characters were echoed.
	assert.Equal("ab", out.String())

	err = dos.Interrupt(cp, INT_DOS)
	assert.ErrorIs(err, ErrInputExhausted)
}

func TestExit(t *testing.T) {
	assert := assert.New(t)

	cp := cpu.NewCpu()
	dos := &Dos{}

	cp.Set8(cpu.REG_AH, FUNC_EXIT)
	cp.Set8(cpu.REG_AL, 7)

	err := dos.Interrupt(cp, INT_DOS)
	var halt cpu.ErrHalt
	assert.ErrorAs(err, &halt)
	assert.Equal(uint8(7), halt.Code)
}

func TestTerminate(t *testing.T) {
	assert := assert.New(t)

	cp := cpu.NewCpu()
	dos := &Dos{}

	err := dos.Interrupt(cp, INT_TERMINATE)
	var halt cpu.ErrHalt
	assert.ErrorAs(err, &halt)
	assert.Equal(uint8(0), halt.Code)
}

func TestConsoleDefaults(t *testing.T) {
	assert := assert.New(t)

	// An unwired console falls back to the process streams.
	dos := &Dos{}
	assert.Equal(io.Reader(os.Stdin), dos.input())
	assert.Equal(io.Writer(os.Stdout), dos.output())

	in := strings.NewReader("")
	out := &strings.Builder{}
	dos.Input = in
	dos.Output = out
	assert.Equal(io.Reader(in), dos.input())
	assert.Equal(io.Writer(out), dos.output())
}

func TestFunctionUnknown(t *testing.T) {
	assert := assert.New(t)

	cp := cpu.NewCpu()
	dos := &Dos{}

	cp.Set8(cpu.REG_AH, 0x7F)
	err := dos.Interrupt(cp, INT_DOS)
	assert.ErrorIs(err, ErrFunctionUnknown(0x7F))

	err = dos.Interrupt(cp, 0x60)
	assert.ErrorIs(err, ErrVectorUnknown(0x60))
}
