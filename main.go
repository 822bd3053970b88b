// Package main is the entry point for the pedestrian crowd simulation
// benchmarking harness.
//
// It loads a scenario, builds a TickEngine for the chosen backend, and runs
// the Simulator either to completion with a throughput report (timing
// mode), to a binary trajectory trace (export-trace mode), or interactively
// under the ebiten viewer (the default).
package main

import (
	"flag"
	"fmt"
	"log"
	"runtime"
	"time"
)

func main() {
	run()
}

// run parses flags, loads the scenario, and dispatches to the selected run
// mode, following the teacher's own validation-block-then-log.Fatalf style:
// setup-phase errors abort the program with a diagnostic.
func run() {
	backendFlag := flag.String("backend", "seq", "per-tick backend: seq, pthread, omp, simd, region")
	maxSteps := flag.Int("max-steps", 10000, "maximum number of ticks to run")
	workers := flag.Int("workers", runtime.NumCPU(), "worker count for pthread/omp backends (region runs one worker per region)")
	placement := flag.Bool("placement", true, "enable Placement collision avoidance for the seq backend (region always applies it)")
	hashgrid := flag.Bool("hashgrid", false, "use the spatial hash grid NeighbourIndex instead of the global scan (seq only)")
	timingMode := flag.Bool("timing-mode", false, "run without GUI or trace export; report throughput only")
	exportTrace := flag.String("export-trace", "", "write a binary trajectory trace to this path instead of showing the viewer")
	worldW := flag.Int("world-width", 200, "world width in cells (region backend)")
	worldH := flag.Int("world-height", 200, "world height in cells (region backend)")
	regionK := flag.Int("region-k", 2, "region grid is region-k x region-k (region backend)")
	quiet := flag.Bool("quiet", false, "suppress stdout status lines")
	statsEvery := flag.Int("stats-every", 0, "print a status line every N ticks in timing mode (0 = never)")

	flag.Parse()

	if *maxSteps <= 0 {
		log.Fatalf("max-steps must be > 0, got %d", *maxSteps)
	}
	if *workers < 1 {
		log.Fatalf("workers must be >= 1, got %d", *workers)
	}
	backend, ok := ParseBackend(*backendFlag)
	if !ok {
		log.Fatalf("unknown backend %q: want one of seq, pthread, omp, simd, region", *backendFlag)
	}
	if *timingMode && *exportTrace != "" {
		log.Fatalf("-timing-mode and -export-trace are mutually exclusive")
	}
	if flag.NArg() > 1 {
		log.Fatalf("too many arguments: want at most one scenario file, got %v", flag.Args())
	}

	scenarioPath := "scenario.xml"
	if flag.NArg() == 1 {
		scenarioPath = flag.Arg(0)
	}

	agents, waypoints, err := LoadScenario(scenarioPath)
	if err != nil {
		log.Fatalf("%v", err)
	}

	if !*quiet {
		fmt.Printf("CFG backend=%s workers=%d placement=%t hashgrid=%t maxSteps=%d agents=%d scenario=%s\n",
			backend, *workers, *placement, *hashgrid, *maxSteps, len(agents), scenarioPath)
	}

	engine := NewTickEngine(backend, *workers, *placement, *hashgrid, *worldW, *worldH, *regionK, len(agents))
	sim := NewSimulator(agents, waypoints, engine, *maxSteps)

	switch {
	case *exportTrace != "":
		runExportTrace(sim, *exportTrace, *quiet)
	case *timingMode:
		runTiming(sim, *quiet, *statsEvery)
	default:
		if err := runGUI(sim); err != nil {
			log.Fatalf("viewer: %v", err)
		}
	}
}

// runExportTrace drives the simulation to completion, streaming every
// tick's positions to a TraceWriter at path.
func runExportTrace(sim *Simulator, path string, quiet bool) {
	tw, err := NewTraceWriter(path)
	if err != nil {
		log.Fatalf("%v", err)
	}

	sim.Subscribe(func(_ int, agents []*Agent) {
		positions := make([]P, len(agents))
		for i, a := range agents {
			positions[i] = P{a.X, a.Y}
		}
		// Tick-phase code paths have no fallible operations by design;
		// a write failure here is a programming bug, not a runtime
		// condition to recover from.
		if err := tw.WriteTick(positions); err != nil {
			panic(err)
		}
	})

	start := time.Now()
	sim.RunUntilDone()
	elapsed := time.Since(start)

	if err := tw.Close(); err != nil {
		log.Fatalf("%v", err)
	}
	if !quiet {
		fmt.Printf("exported %d ticks to %s in %v\n", sim.GetTickCount(), path, elapsed)
	}
}

// runTiming drives the simulation to completion and reports throughput in
// agents*ticks/second, the harness's primary backend-comparison metric.
func runTiming(sim *Simulator, quiet bool, statsEvery int) {
	if statsEvery > 0 && !quiet {
		sim.Subscribe(func(tick int, agents []*Agent) {
			if tick%statsEvery == 0 {
				fmt.Printf("tick=%06d agents=%d\n", tick, len(agents))
			}
		})
	}

	start := time.Now()
	sim.RunUntilDone()
	elapsed := time.Since(start)

	if !quiet {
		throughput := float64(sim.GetTickCount()*len(sim.Agents)) / elapsed.Seconds()
		fmt.Printf("backend=%s workers=%d agents=%d ticks=%d time=%v throughput=%.0f agents*ticks/s\n",
			sim.Engine.Backend, sim.Engine.Workers, len(sim.Agents), sim.GetTickCount(), elapsed, throughput)
	}
}
