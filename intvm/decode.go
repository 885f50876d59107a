package intvm

import "fmt"

// Instruction is a decoded opcode word. Modes holds one entry per parameter,
// inputs first.
type Instruction struct {
	Op      OpCode
	Modes   [maxParams]Mode
	Inputs  int
	Outputs int
}

// Decode splits an opcode word into the op and its parameter modes.
// Mode digits past the op's arity are ignored.
func Decode(value int64) (inst Instruction, err error) {
	inst.Op = OpCode(value % 100)
	var ok bool
	inst.Inputs, inst.Outputs, ok = inst.Op.Arity()
	if !ok {
		return inst, fmt.Errorf("%w %d", ErrUnknownOpcode, value%100)
	}
	digits := value / 100
	for i := range inst.Inputs + inst.Outputs {
		mode := Mode(digits % 10)
		digits /= 10
		switch mode {
		case ModePosition, ModeRelative:
		case ModeImmediate:
			if i >= inst.Inputs {
				return inst, fmt.Errorf("%w: %s parameter %d", ErrImmediateOutput, inst.Op, i+1)
			}
		default:
			return inst, fmt.Errorf("%w %d in parameter %d", ErrUnknownMode, mode, i+1)
		}
		inst.Modes[i] = mode
	}
	return inst, nil
}

func (i Instruction) ParamModes() []Mode {
	return i.Modes[:i.Inputs+i.Outputs]
}

// Width is the number of memory cells the instruction occupies.
func (i Instruction) Width() int64 {
	return int64(1 + i.Inputs + i.Outputs)
}
