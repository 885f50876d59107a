package programs

import (
	"github.com/reusee/dscope"
	"github.com/reusee/intcode/intconfigs"
	"github.com/reusee/intcode/logs"
	"github.com/reusee/intcode/nets"
)

type Module struct {
	dscope.Module
	Configs intconfigs.Module
	Nets    nets.Module
	Logs    logs.Module
}
