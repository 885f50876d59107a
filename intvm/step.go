package intvm

// Step executes exactly one instruction. It is a no-op when the machine is
// halted or blocked on input. A malformed instruction faults the machine and
// the fault is returned from this and every later call until Reset.
func (v *VM) Step() error {
	if v.err != nil {
		return v.err
	}

	value := v.Memory.Read(v.PC)
	inst, err := Decode(value)
	if err != nil {
		return v.fault(value, err)
	}

	switch inst.Op {
	case OpHalt:
		return nil
	case OpInput:
		if v.inputs.len() == 0 {
			return nil
		}
	}

	var params [maxParams]int64
	for i := range inst.Inputs + inst.Outputs {
		param := v.Memory.Read(v.PC + 1 + int64(i))
		switch inst.Modes[i] {
		case ModeImmediate:
			params[i] = param
			continue
		case ModeRelative:
			param += v.RelativeBase
		}
		if param < 0 {
			return v.fault(value, ErrNegativeAddress)
		}
		if i < inst.Inputs {
			param = v.Memory.Read(param)
		}
		params[i] = param
	}

	next := v.PC + inst.Width()
	switch inst.Op {

	case OpAdd:
		v.Memory.Write(params[2], params[0]+params[1])

	case OpMul:
		v.Memory.Write(params[2], params[0]*params[1])

	case OpInput:
		in, _ := v.inputs.pop()
		v.Memory.Write(params[0], in)

	case OpOutput:
		v.outputs.push(params[0])

	case OpJumpIfTrue:
		if params[0] != 0 {
			next = params[1]
		}

	case OpJumpIfFalse:
		if params[0] == 0 {
			next = params[1]
		}

	case OpLessThan:
		var res int64
		if params[0] < params[1] {
			res = 1
		}
		v.Memory.Write(params[2], res)

	case OpEquals:
		var res int64
		if params[0] == params[1] {
			res = 1
		}
		v.Memory.Write(params[2], res)

	case OpAdjustBase:
		v.RelativeBase += params[0]

	}

	if next < 0 {
		return v.fault(value, ErrNegativeAddress)
	}
	v.PC = next
	v.steps++
	return nil
}

func (v *VM) fault(value int64, err error) error {
	v.err = &Fault{
		PC:    v.PC,
		Value: value,
		Err:   err,
	}
	return v.err
}
