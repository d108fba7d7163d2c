package executor

import (
	"context"

	"github.com/blockwise/scheduler/block"
)

// Outcome classifies how a block's dispatch concluded.
type Outcome int

const (
	// Skipped means PreCheck reported the block already done.
	Skipped Outcome = iota
	// Succeeded means Process ran without error and PostCheck passed.
	Succeeded
	// FailedCheck means Process ran without error but PostCheck failed.
	FailedCheck
	// Errored means Process returned an error, a PreCheck/PostCheck
	// call itself failed, or the block was never dispatched because an
	// upstream block reached FailedCheck or Errored.
	Errored
)

// String renders o for diagnostics and test failure messages.
func (o Outcome) String() string {
	switch o {
	case Skipped:
		return "skipped"
	case Succeeded:
		return "succeeded"
	case FailedCheck:
		return "failed-check"
	case Errored:
		return "errored"
	default:
		return "unknown"
	}
}

// ProcessFunc performs the user computation for one block.
type ProcessFunc func(ctx context.Context, b block.Block) error

// PreCheckFunc reports whether b is already done and may be skipped.
// The zero value behavior (when unset) always returns false.
type PreCheckFunc func(ctx context.Context, b block.Block) (bool, error)

// PostCheckFunc reports whether b's completion is verified. The zero
// value behavior (when unset) always returns true.
type PostCheckFunc func(ctx context.Context, b block.Block) (bool, error)

// BlockResult pairs a Block with the Outcome its dispatch reached.
type BlockResult struct {
	Block   block.Block
	Outcome Outcome
}

// Result is the aggregate outcome of one Run call.
type Result struct {
	// Blocks holds one BlockResult per graph entry, in the graph's
	// emission order.
	Blocks []BlockResult

	// Ok is true iff no block reached FailedCheck or Errored.
	Ok bool
}

// Option configures optional Run behavior.
type Option func(*options)

type options struct {
	preCheck    PreCheckFunc
	postCheck   PostCheckFunc
	concurrency int
}

func defaultOptions() options {
	return options{
		preCheck:    func(context.Context, block.Block) (bool, error) { return false, nil },
		postCheck:   func(context.Context, block.Block) (bool, error) { return true, nil },
		concurrency: -1,
	}
}

// WithPreCheck overrides the default pre_check (always false).
func WithPreCheck(fn PreCheckFunc) Option {
	return func(o *options) {
		if fn != nil {
			o.preCheck = fn
		}
	}
}

// WithPostCheck overrides the default post_check (always true).
func WithPostCheck(fn PostCheckFunc) Option {
	return func(o *options) {
		if fn != nil {
			o.postCheck = fn
		}
	}
}

// WithConcurrency bounds the number of blocks dispatched at once. A
// negative value (the default) means no limit, matching
// errgroup.Group's own zero-value behavior.
func WithConcurrency(n int) Option {
	return func(o *options) {
		o.concurrency = n
	}
}
