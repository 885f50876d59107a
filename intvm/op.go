package intvm

import "strconv"

type OpCode int64

const (
	OpAdd OpCode = iota + 1
	OpMul
	OpInput
	OpOutput
	OpJumpIfTrue
	OpJumpIfFalse
	OpLessThan
	OpEquals
	OpAdjustBase

	OpHalt OpCode = 99
)

const maxParams = 3

// Arity returns the number of input and output parameters of the op.
// ok is false for values outside the instruction set.
func (o OpCode) Arity() (inputs, outputs int, ok bool) {
	switch o {
	case OpAdd, OpMul, OpLessThan, OpEquals:
		return 2, 1, true
	case OpInput:
		return 0, 1, true
	case OpOutput, OpAdjustBase:
		return 1, 0, true
	case OpJumpIfTrue, OpJumpIfFalse:
		return 2, 0, true
	case OpHalt:
		return 0, 0, true
	}
	return 0, 0, false
}

func (o OpCode) String() string {
	switch o {
	case OpAdd:
		return "add"
	case OpMul:
		return "mul"
	case OpInput:
		return "in"
	case OpOutput:
		return "out"
	case OpJumpIfTrue:
		return "jnz"
	case OpJumpIfFalse:
		return "jz"
	case OpLessThan:
		return "lt"
	case OpEquals:
		return "eq"
	case OpAdjustBase:
		return "arb"
	case OpHalt:
		return "halt"
	}
	return "op(" + strconv.FormatInt(int64(o), 10) + ")"
}
