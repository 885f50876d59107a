package intvm

import (
	"fmt"
	"slices"
)

// Program is the initial memory image of a machine.
type Program []int64

// VM is a single Intcode machine. It owns its memory and both queues; a VM
// never blocks and never starts goroutines, so any number of them can be
// interleaved by a caller that polls IsHalted and NeedsInput.
type VM struct {
	PC           int64
	RelativeBase int64
	Memory       *Memory

	program Program
	inputs  queue
	outputs queue
	steps   int64
	err     error
}

func New(program Program) *VM {
	v := &VM{
		program: slices.Clone(program),
	}
	v.Reset()
	return v
}

func (v *VM) Program() Program {
	return v.program
}

// Reset restores memory from the program and clears registers, queues and
// any fault.
func (v *VM) Reset() {
	if v.Memory == nil {
		v.Memory = NewMemory(v.program)
	} else {
		v.Memory.Load(v.program)
	}
	v.PC = 0
	v.RelativeBase = 0
	v.inputs.clear()
	v.outputs.clear()
	v.steps = 0
	v.err = nil
}

func (v *VM) opcode() OpCode {
	return OpCode(v.Memory.Read(v.PC) % 100)
}

func (v *VM) IsHalted() bool {
	return v.opcode() == OpHalt
}

// NeedsInput reports whether the next instruction reads input and the input
// queue is empty. Step is a no-op in that state.
func (v *VM) NeedsInput() bool {
	return v.inputs.len() == 0 && v.opcode() == OpInput
}

func (v *VM) Write(value int64) {
	v.inputs.push(value)
}

func (v *VM) WriteAll(values ...int64) {
	for _, value := range values {
		v.inputs.push(value)
	}
}

func (v *VM) NumInputs() int {
	return v.inputs.len()
}

func (v *VM) NumOutputs() int {
	return v.outputs.len()
}

func (v *VM) HasOutput() bool {
	return v.outputs.len() > 0
}

// Read pops the oldest output. Reading with no output pending is a caller
// bug and panics.
func (v *VM) Read() int64 {
	value, ok := v.outputs.pop()
	if !ok {
		panic(fmt.Errorf("pc=%d: %w", v.PC, ErrNoOutput))
	}
	return value
}

func (v *VM) TryRead() (int64, bool) {
	return v.outputs.pop()
}

// Outputs drains and returns all pending outputs.
func (v *VM) Outputs() []int64 {
	ret := slices.Clone(v.outputs.items())
	v.outputs.clear()
	return ret
}

// PendingOutputs returns a copy of the pending outputs without draining
// them.
func (v *VM) PendingOutputs() []int64 {
	return slices.Clone(v.outputs.items())
}

func (v *VM) ClearOutputs() {
	v.outputs.clear()
}

// Err returns the fault that stopped the machine, if any.
func (v *VM) Err() error {
	return v.err
}

// Steps returns the number of instructions executed since the last reset.
func (v *VM) Steps() int64 {
	return v.steps
}

func (v *VM) MemorySnapshot() []int64 {
	return v.Memory.Snapshot()
}
