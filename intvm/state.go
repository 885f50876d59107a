package intvm

import (
	"errors"
	"fmt"
	"io"
	"slices"

	"github.com/fxamacker/cbor/v2"
)

var stateEncMode cbor.EncMode

func init() {
	em, err := cbor.CanonicalEncOptions().EncMode()
	if err != nil {
		panic(fmt.Sprintf("intvm: cbor enc mode: %v", err))
	}
	stateEncMode = em
}

var ErrBadState = errors.New("bad machine state")

type state struct {
	Program      []int64         `cbor:"1,keyasint"`
	PC           int64           `cbor:"2,keyasint"`
	RelativeBase int64           `cbor:"3,keyasint"`
	Dense        []int64         `cbor:"4,keyasint"`
	Sparse       map[int64]int64 `cbor:"5,keyasint,omitempty"`
	High         int64           `cbor:"6,keyasint"`
	Inputs       []int64         `cbor:"7,keyasint,omitempty"`
	Outputs      []int64         `cbor:"8,keyasint,omitempty"`
	Steps        int64           `cbor:"9,keyasint"`
}

// Save writes the complete machine state to w. A faulted machine cannot be
// saved.
func (v *VM) Save(w io.Writer) error {
	if v.err != nil {
		return fmt.Errorf("save: %w", v.err)
	}
	return stateEncMode.NewEncoder(w).Encode(state{
		Program:      v.program,
		PC:           v.PC,
		RelativeBase: v.RelativeBase,
		Dense:        v.Memory.dense,
		Sparse:       v.Memory.sparse,
		High:         v.Memory.high,
		Inputs:       v.inputs.items(),
		Outputs:      v.outputs.items(),
		Steps:        v.steps,
	})
}

// Restore replaces the machine state with one written by Save.
func (v *VM) Restore(r io.Reader) error {
	var s state
	if err := cbor.NewDecoder(r).Decode(&s); err != nil {
		return fmt.Errorf("restore: %w", err)
	}
	if s.PC < 0 {
		return fmt.Errorf("%w: pc %d", ErrBadState, s.PC)
	}
	if int64(len(s.Dense)) > denseLimit || s.High < int64(len(s.Dense)) {
		return fmt.Errorf("%w: dense memory size %d, high %d", ErrBadState, len(s.Dense), s.High)
	}
	for addr := range s.Sparse {
		if addr < denseLimit || addr >= s.High {
			return fmt.Errorf("%w: sparse address %d", ErrBadState, addr)
		}
	}

	v.program = s.Program
	v.PC = s.PC
	v.RelativeBase = s.RelativeBase
	v.Memory = &Memory{
		dense:  slices.Clip(s.Dense),
		sparse: s.Sparse,
		high:   s.High,
	}
	v.inputs.clear()
	v.WriteAll(s.Inputs...)
	v.outputs.clear()
	for _, value := range s.Outputs {
		v.outputs.push(value)
	}
	v.steps = s.Steps
	v.err = nil
	return nil
}
