package ls8

import (
	"bufio"
	"io"
	"log"
	"strconv"
	"strings"
)

// SourceLine is one program byte together with its origin in the
// program file.
type SourceLine struct {
	LineNo int    // Line number in the program file.
	Text   string // The binary literal as written.
	Byte   uint8  // The decoded instruction byte.
}

// Program is a parsed program image, ready to load into memory at
// address 0.
type Program struct {
	Lines []SourceLine
}

// Binary returns the program bytes in load order.
func (prog *Program) Binary() (bins []uint8) {
	for _, line := range prog.Lines {
		bins = append(bins, line.Byte)
	}

	return
}

// Debug maps a memory address back to the program line that produced it.
// Returns nil for addresses the loader did not write.
func (prog *Program) Debug(addr uint8) (src *SourceLine) {
	if int(addr) < len(prog.Lines) {
		src = &prog.Lines[addr]
	}

	return
}

// Loader parses the textual program format. Each non-blank, non-comment
// line holds one instruction byte as an 8-character binary literal, with
// anything after the literal ignored. Lines starting with '#' and blank
// lines are skipped.
type Loader struct {
	Verbose bool // If set, verbosely logs each decoded byte.
}

// Parse reads a program, one instruction byte per line.
func (ld *Loader) Parse(in io.Reader) (prog *Program, err error) {
	prog = &Program{}

	scanner := bufio.NewScanner(in)
	lineno := 0
	for scanner.Scan() {
		lineno++
		line := scanner.Text()

		words := strings.Fields(line)
		if len(words) == 0 {
			continue
		}

		word := words[0]
		if strings.HasPrefix(word, "#") {
			continue
		}

		value, perr := strconv.ParseUint(word, 2, 8)
		if perr != nil || len(word) != 8 {
			err = ErrSyntax{LineNo: lineno, Line: line, Err: ErrInstructionInvalid(word)}
			return
		}

		if len(prog.Lines) == RAM_SIZE {
			err = ErrSyntax{LineNo: lineno, Line: line, Err: ErrProgramTooLarge}
			return
		}

		if ld.Verbose {
			log.Printf("load %02x: %08b", len(prog.Lines), value)
		}

		prog.Lines = append(prog.Lines, SourceLine{
			LineNo: lineno,
			Text:   word,
			Byte:   uint8(value),
		})
	}
	if err = scanner.Err(); err != nil {
		return
	}

	if len(prog.Lines) == 0 {
		err = ErrProgramEmpty
	}

	return
}
