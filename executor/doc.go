// Package executor is a reference adapter that runs a planner.Graph
// to completion: it dispatches each block once every block it depends
// on has reached a terminal outcome, using a worker pool
// (golang.org/x/sync/errgroup) that is unbounded by default and
// bounded with WithConcurrency.
//
// The adapter is a swappable collaborator, not a core dependency of
// package planner: planner.Plan never imports it, and any caller free
// to replace it with their own dispatcher as long as it honors the
// same four-outcome contract (Skipped, Succeeded, FailedCheck,
// Errored).
package executor
