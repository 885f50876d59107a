package main

import (
	"github.com/reusee/dscope"
	"github.com/reusee/intcode/debugs"
	"github.com/reusee/intcode/programs"
	"github.com/reusee/intcode/scheds"
	"github.com/reusee/intcode/searches"
	"github.com/reusee/intcode/storages"
)

type Module struct {
	dscope.Module
	Programs programs.Module
	Scheds   scheds.Module
	Searches searches.Module
	Storages storages.Module
	Debugs   debugs.Module
}
