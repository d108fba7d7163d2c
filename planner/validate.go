package planner

import "github.com/blockwise/scheduler/block"

// Validate cross-checks graph's acyclicity independently of Plan's own
// emission-order guarantee (invariant 5), via Kahn's algorithm over the
// upstream relation keyed by block.ID. It returns ErrCycleDetected if
// the relation contains a cycle — which would indicate a bug in Plan,
// since a correctly built graph is acyclic by construction.
//
// Validate is a diagnostic aid, not part of Plan's contract; callers
// that trust Plan's own ordering guarantee need not call it.
func Validate(graph Graph) error {
	indegree := make(map[block.ID]int, len(graph))
	downstream := make(map[block.ID][]block.ID, len(graph))

	for _, e := range graph {
		id := e.Block.ID()
		if _, ok := indegree[id]; !ok {
			indegree[id] = 0
		}
		for _, up := range e.Upstream {
			upID := up.ID()
			if _, ok := indegree[upID]; !ok {
				indegree[upID] = 0
			}
			indegree[id]++
			downstream[upID] = append(downstream[upID], id)
		}
	}

	queue := make([]block.ID, 0, len(indegree))
	for id, deg := range indegree {
		if deg == 0 {
			queue = append(queue, id)
		}
	}

	visited := 0
	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]
		visited++
		for _, next := range downstream[id] {
			indegree[next]--
			if indegree[next] == 0 {
				queue = append(queue, next)
			}
		}
	}

	if visited != len(indegree) {
		return ErrCycleDetected
	}
	return nil
}
