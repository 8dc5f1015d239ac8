package ls8

import (
	"errors"

	"github.com/ezrec/uls8/translate"
)

var f = translate.From

var (
	// Machine errors
	ErrHalted          = errors.New(f("halted"))
	ErrRegisterInvalid = errors.New(f("register invalid"))
	ErrStackOverflow   = errors.New(f("stack overflow"))
	ErrStackUnderflow  = errors.New(f("stack underflow"))

	// Loader errors
	ErrProgramEmpty    = errors.New(f("empty program"))
	ErrProgramTooLarge = errors.New(f("program too large"))
)

// ErrOpcode reports an opcode with no handler in the general table.
type ErrOpcode Opcode

func (eo ErrOpcode) Error() string {
	return f("unsupported operation 0b%08b", uint8(eo))
}

func (eo ErrOpcode) Is(err error) (ok bool) {
	_, ok = err.(ErrOpcode)
	return
}

// ErrOpcodeAlu reports an opcode with no handler in the ALU table.
type ErrOpcodeAlu Opcode

func (eo ErrOpcodeAlu) Error() string {
	return f("unsupported alu operation 0b%08b", uint8(eo))
}

func (eo ErrOpcodeAlu) Is(err error) (ok bool) {
	_, ok = err.(ErrOpcodeAlu)
	return
}

// ErrInstructionInvalid reports a program line that is not an 8-character
// binary literal.
type ErrInstructionInvalid string

func (err ErrInstructionInvalid) Error() string {
	return f("invalid instruction '%v'", string(err))
}

// ErrSyntax locates a loader error in the program file.
type ErrSyntax struct {
	LineNo int
	Line   string
	Err    error
}

func (err ErrSyntax) Error() string {
	return f("line %d '%v' %v", err.LineNo, err.Line, err.Err)
}

func (err ErrSyntax) Unwrap() error {
	return err.Err
}
