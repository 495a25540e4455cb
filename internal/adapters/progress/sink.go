package progress

import (
	"context"
	"os"

	"github.com/trebuchet-org/evm-deployment-info/internal/usecase"
	"golang.org/x/term"
)

// NewSink picks the spinner when out is a terminal and output is meant for
// humans, and a silent sink otherwise (pipes, CI, --json/--csv).
func NewSink(out *os.File, machineOutput bool) usecase.ProgressSink {
	if machineOutput || !term.IsTerminal(int(out.Fd())) {
		return NewNopSink()
	}
	return NewSpinnerSink(out)
}

// NopSink discards all progress
type NopSink struct{}

// NewNopSink creates a new no-op progress sink
func NewNopSink() usecase.ProgressSink {
	return NopSink{}
}

func (NopSink) OnProgress(context.Context, usecase.ProgressEvent) {}
func (NopSink) Info(string)                                       {}
func (NopSink) Error(string)                                      {}
