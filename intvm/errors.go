package intvm

import (
	"errors"
	"fmt"
)

var (
	ErrMalformed       = errors.New("malformed program")
	ErrUnknownOpcode   = fmt.Errorf("%w: unknown opcode", ErrMalformed)
	ErrUnknownMode     = fmt.Errorf("%w: unknown parameter mode", ErrMalformed)
	ErrImmediateOutput = fmt.Errorf("%w: immediate mode output parameter", ErrMalformed)
	ErrNegativeAddress = fmt.Errorf("%w: negative address", ErrMalformed)

	ErrNoOutput       = errors.New("read from empty output queue")
	ErrInputExhausted = errors.New("input exhausted")
)

// Fault is the error a machine reports after executing a malformed
// instruction. The machine stays faulted until Reset.
type Fault struct {
	PC    int64
	Value int64
	Err   error
}

func (f *Fault) Error() string {
	return fmt.Sprintf("fault at pc=%d (value %d): %v", f.PC, f.Value, f.Err)
}

func (f *Fault) Unwrap() error {
	return f.Err
}
