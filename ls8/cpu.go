// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package ls8

import (
	"errors"
	"fmt"
	"io"
	"iter"
	"log"
	"maps"
	"os"

	"github.com/ezrec/uls8/internal"
)

const (
	RAM_SIZE       = 256  // Addressable memory cells.
	REGISTER_COUNT = 8    // General purpose registers.
	REG_SP         = 7    // Register reserved as the stack pointer.
	SP_INIT        = 0xf4 // Stack pointer after reset; the stack grows down.
)

var _cpu_defines = map[string]string{
	"RAM_SIZE": fmt.Sprintf("%v", RAM_SIZE),
	"REG_SP":   fmt.Sprintf("%v", REG_SP),
	"SP_INIT":  fmt.Sprintf("%#02x", SP_INIT),
}

// Cpu is the simulation context for the LS-8 machine.
//
// All register values and memory cells are 8 bits wide; arithmetic wraps
// silently at that width. PC is an 8-bit index into memory, so every
// address is in range by construction. The representable faults (register
// index out of range, stack pointer leaving the address space) terminate
// execution with an error.
type Cpu struct {
	Verbose bool // Set to enable verbose logging.

	Ram      [RAM_SIZE]uint8       // Flat byte-addressable memory.
	Register [REGISTER_COUNT]uint8 // Register bank. Register 7 is the stack pointer.
	Pc       uint8                 // Program counter.
	Fl       Flag                  // Condition flags, written only by CMP.

	Output io.Writer // Sink for PRN output.

	Ticks int // Instruction cycles since reset.
}

// NewCpu creates a new CPU in its reset state, printing to stdout.
func NewCpu() (cpu *Cpu) {
	cpu = &Cpu{
		Output: os.Stdout,
	}
	cpu.Reset()

	return
}

// Defines for the machine model.
func (cpu *Cpu) Defines() iter.Seq2[string, string] {
	return internal.IterSeq2Concat(maps.All(_cpu_defines), maps.All(_opcode_defines))
}

// Reset the machine state.
// - Zero-fills memory and registers.
// - Sets the stack pointer to the top of the stack region.
// - Clears PC, flags, and the cycle counter.
func (cpu *Cpu) Reset() {
	if cpu.Verbose {
		log.Printf("cpu: reset")
	}

	clear(cpu.Ram[:])
	clear(cpu.Register[:])
	cpu.Register[REG_SP] = SP_INIT
	cpu.Pc = 0
	cpu.Fl = 0
	cpu.Ticks = 0
}

// Load writes the program bytes into memory starting at address 0.
func (cpu *Cpu) Load(prog *Program) {
	copy(cpu.Ram[:], prog.Binary())
}

// String returns the current machine state as a string: PC, the fixed
// three-byte instruction window, the register bank, and the flags.
func (cpu *Cpu) String() (text string) {
	text = fmt.Sprintf("%02X | %02X %02X %02X |",
		cpu.Pc,
		cpu.Ram[cpu.Pc],
		cpu.Ram[cpu.Pc+1],
		cpu.Ram[cpu.Pc+2])

	for _, reg := range cpu.Register {
		text += fmt.Sprintf(" %02X", reg)
	}

	text += fmt.Sprintf(" | fl:%03b", uint8(cpu.Fl))

	return
}

// getReg returns the value of the register named by an operand byte.
func (cpu *Cpu) getReg(index uint8) (value uint8, err error) {
	if index >= REGISTER_COUNT {
		err = ErrRegisterInvalid
		return
	}

	value = cpu.Register[index]
	return
}

// setReg stores a value into the register named by an operand byte.
func (cpu *Cpu) setReg(index uint8, value uint8) (err error) {
	if index >= REGISTER_COUNT {
		return ErrRegisterInvalid
	}

	cpu.Register[index] = value
	return
}

// push stores a value at the new top of the downward-growing stack.
func (cpu *Cpu) push(value uint8) (err error) {
	if cpu.Register[REG_SP] == 0 {
		return ErrStackOverflow
	}

	cpu.Register[REG_SP]--
	cpu.Ram[cpu.Register[REG_SP]] = value
	return
}

// pop removes and returns the value at the top of the stack.
func (cpu *Cpu) pop() (value uint8, err error) {
	if cpu.Register[REG_SP] == RAM_SIZE-1 {
		err = ErrStackUnderflow
		return
	}

	value = cpu.Ram[cpu.Register[REG_SP]]
	cpu.Register[REG_SP]++
	return
}

// Step executes a single instruction cycle.
//
// The two bytes after the opcode are always fetched, whether or not the
// instruction consumes them; the instruction window is fixed at three
// bytes. The engine advances PC only for instructions that do not assign
// PC themselves; CALL, RET, JMP, JEQ, and JNE own the entire PC update
// for their cycle, including the not-taken branches.
func (cpu *Cpu) Step() (err error) {
	ir := Opcode(cpu.Ram[cpu.Pc])
	operandA := cpu.Ram[cpu.Pc+1]
	operandB := cpu.Ram[cpu.Pc+2]

	if cpu.Verbose {
		log.Printf("%02x: %v %02x %02x", cpu.Pc, ir, operandA, operandB)
	}

	cpu.Ticks++

	if ir.Alu() {
		err = cpu.alu(ir, operandA, operandB)
	} else {
		err = cpu.execute(ir, operandA, operandB)
	}
	if err != nil {
		return
	}

	if !ir.SetsPc() {
		cpu.Pc += uint8(ir.Operands()) + 1
	}

	return
}

// Run executes instructions until a halt or a machine fault.
func (cpu *Cpu) Run() (err error) {
	for {
		err = cpu.Step()
		if err != nil {
			if errors.Is(err, ErrHalted) {
				err = nil
			}
			return
		}
	}
}

// execute dispatches one general-purpose instruction.
func (cpu *Cpu) execute(op Opcode, operandA, operandB uint8) (err error) {
	switch op {
	case OP_HLT:
		err = ErrHalted

	case OP_LDI:
		err = cpu.setReg(operandA, operandB)

	case OP_PRN:
		var value uint8
		value, err = cpu.getReg(operandA)
		if err != nil {
			return
		}
		_, err = fmt.Fprintln(cpu.Output, value)

	case OP_ST:
		var addr, value uint8
		addr, err = cpu.getReg(operandA)
		if err != nil {
			return
		}
		value, err = cpu.getReg(operandB)
		if err != nil {
			return
		}
		cpu.Ram[addr] = value

	case OP_PUSH:
		var value uint8
		value, err = cpu.getReg(operandA)
		if err != nil {
			return
		}
		err = cpu.push(value)

	case OP_POP:
		var value uint8
		value, err = cpu.pop()
		if err != nil {
			return
		}
		err = cpu.setReg(operandA, value)

	case OP_CALL:
		var target uint8
		target, err = cpu.getReg(operandA)
		if err != nil {
			return
		}
		err = cpu.push(cpu.Pc + 2)
		if err != nil {
			return
		}
		cpu.Pc = target

	case OP_RET:
		cpu.Pc, err = cpu.pop()

	case OP_JMP:
		cpu.Pc, err = cpu.getReg(operandA)

	case OP_JEQ:
		err = cpu.jumpIf(operandA, cpu.Fl&FL_EQ != 0)

	case OP_JNE:
		err = cpu.jumpIf(operandA, cpu.Fl&FL_EQ == 0)

	default:
		err = ErrOpcode(op)
	}

	return
}

// jumpIf assigns PC from a register when taken, and advances it past the
// two-byte instruction window when not.
func (cpu *Cpu) jumpIf(operandA uint8, taken bool) (err error) {
	if !taken {
		cpu.Pc += 2
		return
	}

	cpu.Pc, err = cpu.getReg(operandA)
	return
}

// alu dispatches one ALU instruction. Arithmetic wraps at the 8-bit
// register width.
func (cpu *Cpu) alu(op Opcode, operandA, operandB uint8) (err error) {
	switch op {
	case OP_ADD, OP_SUB, OP_MUL, OP_CMP, OP_ADDI:
	default:
		return ErrOpcodeAlu(op)
	}

	a, err := cpu.getReg(operandA)
	if err != nil {
		return
	}

	if op == OP_ADDI {
		// operandB is an immediate, not a register index.
		return cpu.setReg(operandA, a+operandB)
	}

	b, err := cpu.getReg(operandB)
	if err != nil {
		return
	}

	switch op {
	case OP_ADD:
		err = cpu.setReg(operandA, a+b)
	case OP_SUB:
		err = cpu.setReg(operandA, a-b)
	case OP_MUL:
		err = cpu.setReg(operandA, a*b)
	case OP_CMP:
		switch {
		case a == b:
			cpu.Fl = FL_EQ
		case a < b:
			cpu.Fl = FL_LT
		default:
			cpu.Fl = FL_GT
		}
	}

	return
}
