package ls8

import (
	"fmt"
)

// Opcode is a single LS-8 instruction byte.
//
// The bit layout is fixed by the program-file format:
//
//	AABCDDDD
//	AA   operand count (0..2)
//	B    ALU operation, dispatched through the ALU table
//	C    instruction assigns PC itself
//	DDDD operation identifier
type Opcode uint8

//go:generate go tool stringer -linecomment -type=Opcode
const (
	OP_HLT  = Opcode(0b00000001) // hlt
	OP_RET  = Opcode(0b00010001) // ret
	OP_PUSH = Opcode(0b01000101) // push
	OP_POP  = Opcode(0b01000110) // pop
	OP_PRN  = Opcode(0b01000111) // prn
	OP_CALL = Opcode(0b01010000) // call
	OP_JMP  = Opcode(0b01010100) // jmp
	OP_JEQ  = Opcode(0b01010101) // jeq
	OP_JNE  = Opcode(0b01010110) // jne
	OP_LDI  = Opcode(0b10000010) // ldi
	OP_ST   = Opcode(0b10000100) // st
	OP_ADD  = Opcode(0b10100000) // add
	OP_SUB  = Opcode(0b10100001) // sub
	OP_MUL  = Opcode(0b10100010) // mul
	OP_ADDI = Opcode(0b10100101) // addi
	OP_CMP  = Opcode(0b10100111) // cmp
)

var _opcode_defines = map[string]string{
	"HLT":  fmt.Sprintf("0b%08b", uint8(OP_HLT)),
	"RET":  fmt.Sprintf("0b%08b", uint8(OP_RET)),
	"PUSH": fmt.Sprintf("0b%08b", uint8(OP_PUSH)),
	"POP":  fmt.Sprintf("0b%08b", uint8(OP_POP)),
	"PRN":  fmt.Sprintf("0b%08b", uint8(OP_PRN)),
	"CALL": fmt.Sprintf("0b%08b", uint8(OP_CALL)),
	"JMP":  fmt.Sprintf("0b%08b", uint8(OP_JMP)),
	"JEQ":  fmt.Sprintf("0b%08b", uint8(OP_JEQ)),
	"JNE":  fmt.Sprintf("0b%08b", uint8(OP_JNE)),
	"LDI":  fmt.Sprintf("0b%08b", uint8(OP_LDI)),
	"ST":   fmt.Sprintf("0b%08b", uint8(OP_ST)),
	"ADD":  fmt.Sprintf("0b%08b", uint8(OP_ADD)),
	"SUB":  fmt.Sprintf("0b%08b", uint8(OP_SUB)),
	"MUL":  fmt.Sprintf("0b%08b", uint8(OP_MUL)),
	"ADDI": fmt.Sprintf("0b%08b", uint8(OP_ADDI)),
	"CMP":  fmt.Sprintf("0b%08b", uint8(OP_CMP)),
}

// Operands returns the number of operand bytes the instruction consumes.
func (op Opcode) Operands() int {
	return int(op >> 6)
}

// SetsPc reports whether the handler assigns PC itself. The engine only
// advances PC for instructions where this is false.
func (op Opcode) SetsPc() bool {
	return (op>>4)&1 == 1
}

// Alu reports whether the instruction dispatches through the ALU table.
func (op Opcode) Alu() bool {
	return (op>>5)&1 == 1
}

// Ident returns the 4-bit operation identifier.
func (op Opcode) Ident() int {
	return int(op & 0xf)
}

// Flag is the condition-code register. CMP sets exactly one bit; the
// conditional jumps read the equal bit.
type Flag uint8

//go:generate go tool stringer -linecomment -type=Flag
const (
	FL_EQ = Flag(0b001) // eq
	FL_GT = Flag(0b010) // gt
	FL_LT = Flag(0b100) // lt
)
