package scheds

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/reusee/intcode/intconfigs"
	"github.com/reusee/intcode/intvm"
	"github.com/reusee/intcode/logs"
)

// Packet is one (destination, x, y) output triple.
type Packet struct {
	Dest int
	X    int64
	Y    int64
}

// quantum bounds the instructions one machine runs in a single turn.
const quantum = 1 << 16

// Network runs Size machines that exchange packets. Packets addressed to
// NATAddress are held by the driver. Each machine owns an inbound FIFO that
// the driver feeds as paired inputs when the machine asks for input; an
// empty FIFO is answered with -1.
type Network struct {
	Program    intvm.Program
	Size       int
	NATAddress int
	IdleRounds int
	StepLimit  int64
	Logger     *slog.Logger
	// OnPacket observes every routed packet.
	OnPacket func(Packet)

	machines []*intvm.VM
	inbound  [][]Packet
	nat      *Packet
	firstNAT *Packet
	idle     int
	rounds   int64
	steps    int64
	lastWake int64
	woken    bool
}

// Boot creates the machines and gives each its address.
func (n *Network) Boot() {
	n.machines = make([]*intvm.VM, n.Size)
	n.inbound = make([][]Packet, n.Size)
	for i := range n.machines {
		vm := intvm.New(n.Program)
		vm.Write(int64(i))
		n.machines[i] = vm
	}
	n.nat = nil
	n.firstNAT = nil
	n.idle = 0
	n.rounds = 0
	n.steps = 0
	n.woken = false
}

func (n *Network) Machines() []*intvm.VM {
	return n.machines
}

// NAT returns the packet the NAT holder currently keeps.
func (n *Network) NAT() (Packet, bool) {
	if n.nat == nil {
		return Packet{}, false
	}
	return *n.nat, true
}

func (n *Network) Rounds() int64 {
	return n.rounds
}

func (n *Network) route(p Packet) error {
	if n.OnPacket != nil {
		n.OnPacket(p)
	}
	if p.Dest == n.NATAddress {
		n.nat = &p
		if n.firstNAT == nil {
			n.firstNAT = &p
		}
		return nil
	}
	if p.Dest < 0 || p.Dest >= len(n.inbound) {
		return fmt.Errorf("%w: %d", ErrUnknownAddress, p.Dest)
	}
	n.inbound[p.Dest] = append(n.inbound[p.Dest], p)
	return nil
}

// turn runs machine i until it asks for input, halts or uses its quantum,
// routes its output triples, then answers a pending input request. It
// reports whether the machine was idle: it sent nothing and got -1.
func (n *Network) turn(i int) (idle bool, err error) {
	vm := n.machines[i]
	before := vm.Steps()
	for j := 0; j < quantum && !vm.IsHalted() && !vm.NeedsInput(); j++ {
		if err := vm.Step(); err != nil {
			return false, fmt.Errorf("machine %d: %w", i, err)
		}
	}
	n.steps += vm.Steps() - before
	if n.StepLimit > 0 && n.steps > n.StepLimit {
		return false, fmt.Errorf("%w: %d", ErrStepLimit, n.StepLimit)
	}

	sent := 0
	for vm.NumOutputs() >= 3 {
		p := Packet{
			Dest: int(vm.Read()),
			X:    vm.Read(),
			Y:    vm.Read(),
		}
		if err := n.route(p); err != nil {
			return false, fmt.Errorf("machine %d: %w", i, err)
		}
		sent++
	}

	if !vm.NeedsInput() {
		return false, nil
	}
	if queue := n.inbound[i]; len(queue) > 0 {
		p := queue[0]
		n.inbound[i] = queue[1:]
		vm.WriteAll(p.X, p.Y)
		return false, nil
	}
	vm.Write(-1)
	return sent == 0, nil
}

// Round gives every machine one turn in index order. The round is idle when
// every machine was idle and no packet is queued.
func (n *Network) Round() (idle bool, err error) {
	if n.machines == nil {
		n.Boot()
	}
	n.rounds++
	idle = true
	halted := true
	for i, vm := range n.machines {
		machineIdle, err := n.turn(i)
		if err != nil {
			return false, err
		}
		if !machineIdle {
			idle = false
		}
		if !vm.IsHalted() {
			halted = false
		}
	}
	if halted {
		return false, fmt.Errorf("%w: all machines halted", ErrDeadlock)
	}
	for _, queue := range n.inbound {
		if len(queue) > 0 {
			idle = false
		}
	}
	if idle {
		n.idle++
	} else {
		n.idle = 0
	}
	return idle, nil
}

func (n *Network) isIdle() bool {
	return n.idle >= max(n.IdleRounds, 1)
}

// FirstNATPacket runs rounds until a packet reaches the NAT address.
func (n *Network) FirstNATPacket(ctx context.Context) (Packet, error) {
	logger := loggerOr(n.Logger)
	if n.machines == nil {
		n.Boot()
	}
	for n.firstNAT == nil {
		if err := ctx.Err(); err != nil {
			return Packet{}, logs.WrapSpan(ctx, err)
		}
		if _, err := n.Round(); err != nil {
			return Packet{}, logs.WrapSpan(ctx, err)
		}
		if n.firstNAT == nil && n.isIdle() {
			return Packet{}, logs.WrapSpan(ctx, fmt.Errorf("%w: network idle without NAT packet", ErrDeadlock))
		}
	}
	logger.InfoContext(ctx, "first NAT packet",
		"x", n.firstNAT.X,
		"y", n.firstNAT.Y,
		"rounds", n.rounds,
	)
	return *n.firstNAT, nil
}

// FirstRepeatedWake runs the network with the NAT holder waking machine 0
// whenever the network is idle, and returns the first Y delivered twice in a
// row.
func (n *Network) FirstRepeatedWake(ctx context.Context) (int64, error) {
	logger := loggerOr(n.Logger)
	if n.machines == nil {
		n.Boot()
	}
	for {
		if err := ctx.Err(); err != nil {
			return 0, logs.WrapSpan(ctx, err)
		}
		if _, err := n.Round(); err != nil {
			return 0, logs.WrapSpan(ctx, err)
		}
		if !n.isIdle() {
			continue
		}
		if n.nat == nil {
			return 0, logs.WrapSpan(ctx, fmt.Errorf("%w: network idle without NAT packet", ErrDeadlock))
		}
		wake := Packet{
			Dest: 0,
			X:    n.nat.X,
			Y:    n.nat.Y,
		}
		logger.DebugContext(logs.WithMachine(ctx, 0), "wake",
			"x", wake.X,
			"y", wake.Y,
			"rounds", n.rounds,
		)
		if n.woken && wake.Y == n.lastWake {
			logger.InfoContext(ctx, "repeated wake",
				"y", wake.Y,
				"rounds", n.rounds,
			)
			return wake.Y, nil
		}
		n.woken = true
		n.lastWake = wake.Y
		if err := n.route(wake); err != nil {
			return 0, logs.WrapSpan(ctx, err)
		}
		n.idle = 0
	}
}

type NewNetwork func(program intvm.Program) *Network

func (Module) NewNetwork(
	size intconfigs.NetworkSize,
	nat intconfigs.NATAddress,
	idleRounds intconfigs.IdleRounds,
	limit intconfigs.StepLimit,
	logger logs.Logger,
) NewNetwork {
	return func(program intvm.Program) *Network {
		return &Network{
			Program:    program,
			Size:       int(size),
			NATAddress: int(nat),
			IdleRounds: int(idleRounds),
			StepLimit:  int64(limit),
			Logger:     logger,
		}
	}
}
