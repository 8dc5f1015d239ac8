package emulator

import (
	"bytes"
	"maps"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/uls8/ls8"
)

func doLoad(emu *Emulator, program []string, t *testing.T) (output *bytes.Buffer) {
	assert := assert.New(t)

	err := emu.Load(strings.NewReader(strings.Join(program, "\n")))
	assert.NoError(err)

	output = &bytes.Buffer{}
	emu.Cpu.Output = output
	return
}

func TestEmulator(t *testing.T) {
	assert := assert.New(t)

	emu := NewEmulator()

	assert.False(emu.Verbose)
	assert.NotNil(emu.Cpu)
	assert.NotNil(emu.Program)
	assert.Equal(uint8(ls8.SP_INIT), emu.Cpu.Register[ls8.REG_SP])
}

func TestEmulatorMultiply(t *testing.T) {
	assert := assert.New(t)

	emu := NewEmulator()
	program := []string{
		"# mult.ls8: multiply 8 by 9 and print the result",
		"10000010 # LDI R0,8",
		"00000000",
		"00001000",
		"10000010 # LDI R1,9",
		"00000001",
		"00001001",
		"10100010 # MUL R0,R1",
		"00000000",
		"00000001",
		"01000111 # PRN R0",
		"00000000",
		"00000001 # HLT",
	}

	output := doLoad(emu, program, t)

	err := emu.Run()
	assert.NoError(err)

	assert.Equal("72\n", output.String())
	assert.Equal(uint8(72), emu.Cpu.Register[0])
}

func TestEmulatorCallRet(t *testing.T) {
	assert := assert.New(t)

	emu := NewEmulator()
	program := []string{
		"10000010 # LDI R0,8   subroutine address",
		"00000000",
		"00001000",
		"01010000 # CALL R0",
		"00000000",
		"01000111 # PRN R1     printed after the return",
		"00000001",
		"00000001 # HLT",
		"10000010 # LDI R1,33  subroutine body",
		"00000001",
		"00100001",
		"00010001 # RET",
	}

	output := doLoad(emu, program, t)

	err := emu.Run()
	assert.NoError(err)

	assert.Equal("33\n", output.String())
	assert.Equal(uint8(ls8.SP_INIT), emu.Cpu.Register[ls8.REG_SP])
}

func TestEmulatorCompareBranch(t *testing.T) {
	assert := assert.New(t)

	emu := NewEmulator()
	program := []string{
		"10000010 # LDI R0,10",
		"00000000",
		"00001010",
		"10000010 # LDI R1,10",
		"00000001",
		"00001010",
		"10100111 # CMP R0,R1",
		"00000000",
		"00000001",
		"10000010 # LDI R2,17  branch target",
		"00000010",
		"00010001",
		"01010101 # JEQ R2     taken, flags equal",
		"00000010",
		"01000111 # PRN R0     skipped",
		"00000000",
		"00000001 # HLT        skipped",
		"01000111 # PRN R1     branch target lands here",
		"00000001",
		"00000001 # HLT",
	}

	output := doLoad(emu, program, t)

	err := emu.Run()
	assert.NoError(err)

	assert.Equal("10\n", output.String())
}

func TestEmulatorTick(t *testing.T) {
	assert := assert.New(t)

	emu := NewEmulator()
	program := []string{
		"# two instructions",
		"10000010 # LDI R0,8",
		"00000000",
		"00001000",
		"00000001 # HLT",
	}

	doLoad(emu, program, t)

	assert.Equal(2, emu.LineNo())

	done, err := emu.Tick()
	assert.NoError(err)
	assert.False(done)
	assert.Equal(uint8(3), emu.Cpu.Pc)
	assert.Equal(5, emu.LineNo())

	done, err = emu.Tick()
	assert.NoError(err)
	assert.True(done)
}

func TestEmulatorRuntimeError(t *testing.T) {
	assert := assert.New(t)

	emu := NewEmulator()
	program := []string{
		"10000010 # LDI R0,0",
		"00000000",
		"00000000",
		"00000000 # not an instruction",
	}

	doLoad(emu, program, t)

	err := emu.Run()
	assert.Error(err)
	assert.ErrorIs(err, ls8.ErrOpcode(0))

	var rterr *ErrRuntime
	if assert.ErrorAs(err, &rterr) {
		assert.Equal(uint8(3), rterr.Pc)
		assert.Equal(4, rterr.LineNo)
	}
}

func TestEmulatorEmptyProgram(t *testing.T) {
	assert := assert.New(t)

	emu := NewEmulator()
	err := emu.Load(strings.NewReader("# nothing\n\n"))
	assert.ErrorIs(err, ls8.ErrProgramEmpty)
}

func TestEmulatorInvalidProgram(t *testing.T) {
	assert := assert.New(t)

	emu := NewEmulator()
	err := emu.Load(strings.NewReader("1010\n"))
	assert.ErrorIs(err, ls8.ErrInstructionInvalid("1010"))
	assert.ErrorContains(err, "1010")
}

func TestEmulatorReset(t *testing.T) {
	assert := assert.New(t)

	emu := NewEmulator()
	program := []string{
		"10000010 # LDI R0,8",
		"00000000",
		"00001000",
		"00000001 # HLT",
	}

	doLoad(emu, program, t)

	err := emu.Run()
	assert.NoError(err)
	assert.Equal(uint8(8), emu.Cpu.Register[0])

	emu.Reset()
	assert.Equal(uint8(0), emu.Cpu.Register[0])
	assert.Equal(uint8(0), emu.Cpu.Pc)
	assert.Equal(uint8(0x82), emu.Cpu.Ram[0]) // image reloaded

	err = emu.Run()
	assert.NoError(err)
	assert.Equal(uint8(8), emu.Cpu.Register[0])
}

func TestEmulatorDefines(t *testing.T) {
	assert := assert.New(t)

	emu := NewEmulator()
	all := maps.Collect(emu.Defines())

	assert.Equal("0b10000010", all["LDI"])
	assert.Equal("0b00000001", all["HLT"])
	assert.Contains(all, "RAM_SIZE")
	assert.Contains(all, "SP_INIT")
	assert.Contains(all, "PROGRAM_ORIGIN")
}
