package planner

import (
	"github.com/blockwise/scheduler/block"
	"github.com/blockwise/scheduler/diagnostic"
)

// Entry pairs one emitted Block with the Blocks that must complete
// before it may start (a dependency-graph node with its predecessors).
type Entry struct {
	Block    block.Block
	Upstream []block.Block
}

// Graph is the ordered sequence Plan returns: levels ascending, and
// within a level, Cartesian product order over axes.
type Graph []Entry

// Option configures optional Plan behavior.
type Option func(*options)

type options struct {
	sink diagnostic.Sink
}

func defaultOptions() options {
	return options{sink: diagnostic.NopSink()}
}

// WithSink installs sink to receive level-computed, block-emitted and
// block-filtered diagnostic events. A nil sink is
// ignored and the default NopSink is retained.
func WithSink(sink diagnostic.Sink) Option {
	return func(o *options) {
		if sink != nil {
			o.sink = sink
		}
	}
}
