package scheds

import (
	"context"
	"errors"
	"testing"

	"github.com/reusee/dscope"
	"github.com/reusee/intcode/configs"
	"github.com/reusee/intcode/intconfigs"
	"github.com/reusee/intcode/intvm"
	"github.com/reusee/intcode/modes"
)

// nodeProgram returns a node for a ring of size machines. Node 0 boots by
// sending (0, 42) to node 1. Every node adds its address to x and forwards
// the packet to the next node; the last node sends to 255.
func nodeProgram(size int64) intvm.Program {
	return intvm.Program{
		3, 100, // in addr
		1005, 100, 11, // jnz addr, loop
		104, 1, 104, 0, 104, 42, // out 1, 0, 42
		3, 101, // loop: in x
		1008, 101, -1, 104, // eq x, -1
		1005, 104, 11, // jnz, loop
		3, 102, // in y
		1, 101, 100, 101, // x += addr
		1001, 100, 1, 103, // dest = addr + 1
		1008, 103, size, 104, // eq dest, size
		1006, 104, 41, // jz, send
		1101, 255, 0, 103, // dest = 255
		4, 103, 4, 101, 4, 102, // send: out dest, x, y
		1105, 1, 11, // jmp loop
	}
}

func TestNetworkFirstNATPacket(t *testing.T) {
	var routed []Packet
	n := &Network{
		Program:    nodeProgram(4),
		Size:       4,
		NATAddress: 255,
		IdleRounds: 2,
		OnPacket: func(p Packet) {
			routed = append(routed, p)
		},
	}
	p, err := n.FirstNATPacket(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if p != (Packet{Dest: 255, X: 6, Y: 42}) {
		t.Fatalf("got %+v", p)
	}
	if len(routed) != 4 {
		t.Fatalf("got %v", routed)
	}
	for i, dest := range []int{1, 2, 3, 255} {
		if routed[i].Dest != dest {
			t.Fatalf("got %v", routed)
		}
	}
	nat, ok := n.NAT()
	if !ok || nat != p {
		t.Fatalf("got %v", nat)
	}
}

func TestNetworkFirstRepeatedWake(t *testing.T) {
	for _, idleRounds := range []int{1, 2, 5} {
		var wakes []Packet
		n := &Network{
			Program:    nodeProgram(4),
			Size:       4,
			NATAddress: 255,
			IdleRounds: idleRounds,
			OnPacket: func(p Packet) {
				if p.Dest == 0 {
					wakes = append(wakes, p)
				}
			},
		}
		y, err := n.FirstRepeatedWake(context.Background())
		if err != nil {
			t.Fatal(err)
		}
		if y != 42 {
			t.Fatalf("got %v", y)
		}
		// the second wake is detected as a repeat before delivery
		if len(wakes) != 1 || wakes[0].X != 6 {
			t.Fatalf("got %v", wakes)
		}
		nat, _ := n.NAT()
		if nat.X != 12 {
			t.Fatalf("got %+v", nat)
		}
	}
}

func TestNetworkUnknownAddress(t *testing.T) {
	n := &Network{
		Program:    intvm.Program{3, 100, 104, 9, 104, 0, 104, 0, 99},
		Size:       4,
		NATAddress: 255,
	}
	_, err := n.FirstNATPacket(context.Background())
	if !errors.Is(err, ErrUnknownAddress) {
		t.Fatalf("got %v", err)
	}
}

func TestNetworkIdleWithoutNAT(t *testing.T) {
	// reads forever
	program := intvm.Program{3, 100, 3, 101, 1105, 1, 2}
	n := &Network{
		Program:    program,
		Size:       3,
		NATAddress: 255,
		IdleRounds: 2,
	}
	_, err := n.FirstNATPacket(context.Background())
	if !errors.Is(err, ErrDeadlock) {
		t.Fatalf("got %v", err)
	}

	n.Boot()
	_, err = n.FirstRepeatedWake(context.Background())
	if !errors.Is(err, ErrDeadlock) {
		t.Fatalf("got %v", err)
	}
}

func TestNetworkAllHalted(t *testing.T) {
	n := &Network{
		Program:    intvm.Program{3, 100, 99},
		Size:       2,
		NATAddress: 255,
	}
	_, err := n.FirstNATPacket(context.Background())
	if !errors.Is(err, ErrDeadlock) {
		t.Fatalf("got %v", err)
	}
}

func TestNetworkStepLimit(t *testing.T) {
	n := &Network{
		Program:    intvm.Program{3, 100, 1105, 1, 2},
		Size:       2,
		NATAddress: 255,
		StepLimit:  1000,
	}
	_, err := n.FirstNATPacket(context.Background())
	if !errors.Is(err, ErrStepLimit) {
		t.Fatalf("got %v", err)
	}
}

func TestNetworkModule(t *testing.T) {
	dscope.New(
		new(Module),
		modes.ForTest(t),
	).Fork(
		dscope.Provide(configs.NewLoader(nil, "")),
		dscope.Provide(intconfigs.NetworkSize(4)),
	).Call(func(
		newNetwork NewNetwork,
	) {
		n := newNetwork(nodeProgram(4))
		if n.Size != 4 || n.NATAddress != 255 || n.IdleRounds != 2 {
			t.Fatalf("got %+v", n)
		}
		p, err := n.FirstNATPacket(context.Background())
		if err != nil {
			t.Fatal(err)
		}
		if p.Y != 42 {
			t.Fatalf("got %+v", p)
		}
		if len(n.Machines()) != 4 || n.Rounds() == 0 {
			t.Fatal()
		}
	})
}
