// Package ls8 implements the LS-8 byte machine: 256 bytes of flat memory,
// eight 8-bit general registers, and a fetch-decode-execute core driven by
// one-byte opcodes.
//
// Register 7 is the stack pointer. The stack lives at the high end of memory
// and grows downward. A condition-flags register holds the outcome of the
// most recent CMP for the conditional jumps.
//
// The loader consumes the textual program format: one 8-character binary
// literal per line, written to memory sequentially from address 0.
package ls8
