package scheds

import (
	"errors"
	"log/slog"

	"github.com/reusee/intcode/intvm"
)

// Machine is the stepping contract a scheduler drives.
type Machine interface {
	Step() error
	IsHalted() bool
	NeedsInput() bool
	NumOutputs() int
	Read() int64
	Write(value int64)
}

var _ Machine = (*intvm.VM)(nil)

var (
	ErrDeadlock       = errors.New("no machine can make progress")
	ErrStepLimit      = errors.New("step limit exceeded")
	ErrUnknownAddress = errors.New("packet to unknown address")
	ErrNoSignal       = errors.New("no signal produced")
	ErrPartialFrame   = errors.New("machine halted with a partial output frame")
)

var discardLogger = slog.New(slog.DiscardHandler)

func loggerOr(logger *slog.Logger) *slog.Logger {
	if logger == nil {
		return discardLogger
	}
	return logger
}
