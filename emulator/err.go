package emulator

import (
	"github.com/ezrec/uls8/translate"
)

var f = translate.From

// ErrRuntime indicates the location of a machine fault.
type ErrRuntime struct {
	Pc     uint8
	LineNo int
	Err    error
}

func (err *ErrRuntime) Error() string {
	return f("pc %02x line %d %v", err.Pc, err.LineNo, err.Err)
}

func (err *ErrRuntime) Unwrap() error {
	return err.Err
}
