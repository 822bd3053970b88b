package main

import "golang.org/x/sync/errgroup"

/**
 * @file backend_pthread.go
 * @brief Static thread-pool backend: each of a fixed number of workers owns
 * a disjoint, interleaved slice of agent indices.
 *
 * Ports step_par.go's fixed-worker partitioning, but the partition is by
 * index stride (i, i+T, 2T, ...) rather than row range, since pedestrian
 * agents have no grid-row locality to exploit the way Wa-Tor cells do.
 * Placement-free fast path only: each worker reads and writes only its own
 * agents, so no synchronisation is needed within the tick.
 */

// tickPthread partitions agents by index stride across te.Workers fixed
// goroutines, joined at the tick barrier via errgroup.Wait.
func tickPthread(te *TickEngine, agents []*Agent) {
	workers := te.Workers
	if workers < 1 {
		workers = 1
	}

	var g errgroup.Group
	for w := 0; w < workers; w++ {
		w := w
		g.Go(func() error {
			for i := w; i < len(agents); i += workers {
				a := agents[i]
				a.recomputeDesired()
				a.commit(a.DX, a.DY)
			}
			return nil
		})
	}
	_ = g.Wait()
}
