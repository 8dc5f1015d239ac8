package ls8

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOpcodeDecode(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		op       Opcode
		operands int
		setsPc   bool
		alu      bool
		ident    int
	}){
		{OP_HLT, 0, false, false, 1},
		{OP_RET, 0, true, false, 1},
		{OP_PUSH, 1, false, false, 5},
		{OP_POP, 1, false, false, 6},
		{OP_PRN, 1, false, false, 7},
		{OP_CALL, 1, true, false, 0},
		{OP_JMP, 1, true, false, 4},
		{OP_JEQ, 1, true, false, 5},
		{OP_JNE, 1, true, false, 6},
		{OP_LDI, 2, false, false, 2},
		{OP_ST, 2, false, false, 4},
		{OP_ADD, 2, false, true, 0},
		{OP_SUB, 2, false, true, 1},
		{OP_MUL, 2, false, true, 2},
		{OP_ADDI, 2, false, true, 5},
		{OP_CMP, 2, false, true, 7},
	}

	for _, entry := range table {
		assert.Equal(entry.operands, entry.op.Operands(), entry.op.String())
		assert.Equal(entry.setsPc, entry.op.SetsPc(), entry.op.String())
		assert.Equal(entry.alu, entry.op.Alu(), entry.op.String())
		assert.Equal(entry.ident, entry.op.Ident(), entry.op.String())
	}
}

func TestOpcodeString(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("ldi", OP_LDI.String())
	assert.Equal("hlt", OP_HLT.String())
	assert.Equal("cmp", OP_CMP.String())
	assert.Equal("Opcode(255)", Opcode(0xff).String())
}

func TestFlagString(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("eq", FL_EQ.String())
	assert.Equal("gt", FL_GT.String())
	assert.Equal("lt", FL_LT.String())
	assert.Equal("Flag(0)", Flag(0).String())
}

func TestOpcodeDefines(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("0b10000010", _opcode_defines["LDI"])
	assert.Equal("0b00000001", _opcode_defines["HLT"])
	assert.Equal(16, len(_opcode_defines))
}
