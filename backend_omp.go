package main

import (
	"sync/atomic"

	"golang.org/x/sync/errgroup"
)

/**
 * @file backend_omp.go
 * @brief Work-sharing parallel-loop backend.
 *
 * Semantically step_seq.go's walk, but dispatched to a fixed-size worker
 * pool via a shared index cursor rather than a static per-worker range, so
 * there is no ordering guarantee among agents within a tick. Same
 * fixed-worker-count/join-at-barrier style as backend_pthread.go but built
 * on golang.org/x/sync/errgroup's fan-out-then-Wait idiom, as
 * niceyeti-tabular's fastview client does for its own worker group.
 * Placement-free fast path only.
 */

// tickOMP dynamically distributes agents across te.Workers goroutines via a
// shared atomic cursor, mirroring an OpenMP "#pragma omp parallel for"
// dynamic schedule: whichever worker finishes its current agent first claims
// the next index.
func tickOMP(te *TickEngine, agents []*Agent) {
	workers := te.Workers
	if workers < 1 {
		workers = 1
	}

	var cursor atomic.Int64
	n := int64(len(agents))

	var g errgroup.Group
	for w := 0; w < workers; w++ {
		g.Go(func() error {
			for {
				i := cursor.Add(1) - 1
				if i >= n {
					return nil
				}
				a := agents[i]
				a.recomputeDesired()
				a.commit(a.DX, a.DY)
			}
		})
	}
	_ = g.Wait()
}
