package searches

import (
	"github.com/reusee/dscope"
	"github.com/reusee/intcode/intconfigs"
	"github.com/reusee/intcode/logs"
	"github.com/reusee/intcode/scheds"
)

type Module struct {
	dscope.Module
	Configs intconfigs.Module
	Logs    logs.Module
	Scheds  scheds.Module
}
