package scheds

import (
	"github.com/reusee/dscope"
	"github.com/reusee/intcode/intconfigs"
	"github.com/reusee/intcode/logs"
)

type Module struct {
	dscope.Module
	Configs intconfigs.Module
	Logs    logs.Module
}
