// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package emulator

import (
	"errors"
	"fmt"
	"io"
	"iter"
	"maps"

	"github.com/ezrec/uls8/internal"
	"github.com/ezrec/uls8/ls8"
)

const (
	PROGRAM_ORIGIN = 0 // Address the loader writes the first byte to.
)

var _emulator_defines = map[string]string{
	"PROGRAM_ORIGIN": fmt.Sprintf("%#02x", PROGRAM_ORIGIN),
}

// Emulator state: the machine plus the loaded program listing.
type Emulator struct {
	Verbose  bool // If set, enables verbose logging.
	*ls8.Cpu      // Reference to the machine simulation.

	Program *ls8.Program // Reference to the currently loaded program listing.
}

// NewEmulator creates a new emulator with an empty program.
func NewEmulator() (emu *Emulator) {
	emu = &Emulator{
		Cpu:     ls8.NewCpu(),
		Program: &ls8.Program{},
	}

	return
}

// Defines returns an iterator over all of the defines.
func (emu *Emulator) Defines() iter.Seq2[string, string] {
	return internal.IterSeq2Concat(
		maps.All(_emulator_defines),
		emu.Cpu.Defines(),
	)
}

// Load parses a program and prepares the machine to run it.
func (emu *Emulator) Load(in io.Reader) (err error) {
	ld := &ls8.Loader{Verbose: emu.Verbose}

	prog, err := ld.Parse(in)
	if err != nil {
		return
	}

	emu.Program = prog
	emu.Reset()

	return
}

// Reset the machine and reload the program image.
func (emu *Emulator) Reset() {
	emu.Cpu.Verbose = emu.Verbose
	emu.Cpu.Reset()
	emu.Cpu.Load(emu.Program)
}

// LineNo returns the program-file line for the current PC, or 0 when PC
// is outside the loaded image.
func (emu *Emulator) LineNo() int {
	if src := emu.Program.Debug(emu.Cpu.Pc); src != nil {
		return src.LineNo
	}

	return 0
}

// Tick performs a single instruction cycle of the emulator.
func (emu *Emulator) Tick() (done bool, err error) {
	// Set CPU verbosity
	emu.Cpu.Verbose = emu.Verbose

	pc := emu.Cpu.Pc
	lineno := emu.LineNo()
	defer func() {
		if err != nil {
			err = &ErrRuntime{Pc: pc, LineNo: lineno, Err: err}
		}
	}()

	err = emu.Cpu.Step()
	if errors.Is(err, ls8.ErrHalted) {
		err = nil
		done = true
		return
	}

	return
}

// Run executes the loaded program until it halts or faults.
func (emu *Emulator) Run() (err error) {
	for done := false; !done; {
		done, err = emu.Tick()
		if err != nil {
			return
		}
	}

	return
}
