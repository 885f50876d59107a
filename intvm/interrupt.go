package intvm

type Interrupt struct {
	NeedInput bool
	Output    bool
	Halt      bool
}

var (
	InterruptInput = &Interrupt{
		NeedInput: true,
	}
	InterruptOutput = &Interrupt{
		Output: true,
	}
	InterruptHalt = &Interrupt{
		Halt: true,
	}
)
