package main

import (
	"context"
	"fmt"

	"github.com/reusee/dscope"
	"github.com/reusee/intcode/cmds"
	"github.com/reusee/intcode/programs"
	"github.com/reusee/intcode/scheds"
)

var wakeFlag = cmds.Switch("-wake", "run until the NAT wakes machine 0 with the same y twice")

func init() {
	define("network", "FILE", "boot a packet network; prints the first NAT packet, or with -wake the first repeated wake value", func(path string) {
		selectAction("network", func(ctx context.Context, scope dscope.Scope) (err error) {
			scope.Call(func(
				load programs.LoadProgram,
				newNetwork scheds.NewNetwork,
			) {
				var program []int64
				program, err = load(path)
				if err != nil {
					return
				}
				network := newNetwork(program)
				if *wakeFlag {
					var y int64
					y, err = network.FirstRepeatedWake(ctx)
					if err == nil {
						fmt.Fprintln(stdout, y)
					}
					return
				}
				var p scheds.Packet
				p, err = network.FirstNATPacket(ctx)
				if err == nil {
					fmt.Fprintf(stdout, "%d %d\n", p.X, p.Y)
				}
			})
			return
		})
	})
}
