package executor

import (
	"context"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/blockwise/scheduler/block"
	"github.com/blockwise/scheduler/planner"
)

// Run dispatches every entry in graph to a worker pool (unbounded
// unless WithConcurrency sets a limit), gating each block on its
// upstream blocks reaching a terminal outcome: no downstream block
// launches while any upstream block is still pending. Run blocks until
// every entry has been classified; once ctx is cancelled, blocks not
// yet started are classified Errored without running, and blocks
// already running are allowed to finish.
//
// graph's ordering guarantee (an entry's Upstream always names blocks
// positioned earlier in graph, invariant 5) means every dependency's
// done channel already exists by the time a later entry needs it.
func Run(ctx context.Context, graph planner.Graph, process ProcessFunc, opts ...Option) (Result, error) {
	if process == nil {
		return Result{}, ErrNilProcess
	}
	if graph == nil {
		return Result{}, ErrNilGraph
	}

	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	done := make(map[block.ID]chan struct{}, len(graph))
	for _, e := range graph {
		done[e.Block.ID()] = make(chan struct{})
	}

	var mu sync.Mutex
	outcomes := make(map[block.ID]Outcome, len(graph))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(o.concurrency)

	for _, e := range graph {
		entry := e
		g.Go(func() error {
			dispatch(gctx, entry, process, o.preCheck, o.postCheck, done, &mu, outcomes)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Result{}, err
	}

	result := Result{Blocks: make([]BlockResult, 0, len(graph)), Ok: true}
	mu.Lock()
	defer mu.Unlock()
	for _, e := range graph {
		outcome := outcomes[e.Block.ID()]
		if outcome == FailedCheck || outcome == Errored {
			result.Ok = false
		}
		result.Blocks = append(result.Blocks, BlockResult{Block: e.Block, Outcome: outcome})
	}
	return result, nil
}

// dispatch runs the full lifecycle for one entry: wait on upstream,
// check for transitive failure, then pre_check/process/post_check.
// It always records an Outcome and closes its own done channel before
// returning.
func dispatch(
	ctx context.Context,
	entry planner.Entry,
	process ProcessFunc,
	preCheck PreCheckFunc,
	postCheck PostCheckFunc,
	done map[block.ID]chan struct{},
	mu *sync.Mutex,
	outcomes map[block.ID]Outcome,
) {
	id := entry.Block.ID()
	defer close(done[id])

	for _, up := range entry.Upstream {
		select {
		case <-done[up.ID()]:
		case <-ctx.Done():
			record(mu, outcomes, id, Errored)
			return
		}
	}

	if blocked(mu, outcomes, entry.Upstream) {
		record(mu, outcomes, id, Errored)
		return
	}
	if ctx.Err() != nil {
		record(mu, outcomes, id, Errored)
		return
	}

	skip, err := preCheck(ctx, entry.Block)
	if err != nil {
		record(mu, outcomes, id, Errored)
		return
	}
	if skip {
		record(mu, outcomes, id, Skipped)
		return
	}

	if err := process(ctx, entry.Block); err != nil {
		record(mu, outcomes, id, Errored)
		return
	}

	ok, err := postCheck(ctx, entry.Block)
	if err != nil {
		record(mu, outcomes, id, Errored)
		return
	}
	if !ok {
		record(mu, outcomes, id, FailedCheck)
		return
	}
	record(mu, outcomes, id, Succeeded)
}

// blocked reports whether any of upstream reached FailedCheck or
// Errored, which transitively blocks the current entry.
func blocked(mu *sync.Mutex, outcomes map[block.ID]Outcome, upstream []block.Block) bool {
	mu.Lock()
	defer mu.Unlock()
	for _, up := range upstream {
		switch outcomes[up.ID()] {
		case FailedCheck, Errored:
			return true
		}
	}
	return false
}

func record(mu *sync.Mutex, outcomes map[block.ID]Outcome, id block.ID, outcome Outcome) {
	mu.Lock()
	outcomes[id] = outcome
	mu.Unlock()
}
