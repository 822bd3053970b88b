package main

import "sync"

/**
 * @file backend_region.go
 * @brief Region-parallel backend: the coordinated scheme that makes
 * Placement safe under parallelism.
 *
 * Generalises step_par.go's per-worker row strip into a per-worker region
 * (RegionMap), and replaces step_par.go's global row-level mutex array with
 * dragonfly's one-lock-per-partition idiom, used only during the migration
 * drain phase. Workers never contend on anything while processing their own
 * region.
 */

// tickRegion runs one tick of the region-parallel scheme:
//  1. snapshot RegionMap from the previous tick's committed positions,
//  2. one worker per region computes desired positions and resolves
//     Placement immediately for agents whose desired cell stays in-region,
//     collecting the rest into a per-worker outbox,
//  3. a barrier, then the outboxes drain into a shared migration queue,
//  4. the migration queue drains under per-destination-region locks,
//  5. RegionMap is rebuilt so it reflects committed positions.
func tickRegion(te *TickEngine, agents []*Agent) {
	rm := te.Regions
	rm.Rebuild(agents)

	var migrationMu sync.Mutex
	var migration []*Agent

	var wg sync.WaitGroup
	for region := 0; region < rm.K*rm.K; region++ {
		region := region
		wg.Add(1)
		go func() {
			defer wg.Done()
			var outbox []*Agent
			for _, a := range rm.Members(region) {
				a.recomputeDesired()
				if rm.RegionOf(a.DX, a.DY) == region {
					resolvePlacement(a, regionTaken(rm, region, a))
				} else {
					outbox = append(outbox, a)
				}
			}
			if len(outbox) == 0 {
				return
			}
			migrationMu.Lock()
			migration = append(migration, outbox...)
			migrationMu.Unlock()
		}()
	}
	wg.Wait() // tick barrier

	for _, a := range migration {
		dest := rm.RegionOf(a.DX, a.DY)
		rm.Lock(dest)
		rm.Insert(dest, a)
		resolvePlacement(a, regionTaken(rm, dest, a))
		rm.Unlock(dest)
	}

	rm.Rebuild(agents)
}
