package main

/**
 * @file tickengine.go
 * @brief Orchestrates one simulation tick under a chosen backend.
 *
 * Generalises world.go/step_seq.go/step_par.go's "one function per backend,
 * dispatched by a mode string" shape into a small struct that dispatches to
 * one tick function per backend file (backend_seq.go, backend_pthread.go, backend_omp.go,
 * backend_simd.go, backend_region.go).
 */

// Backend names an interchangeable per-tick update implementation.
type Backend int

const (
	BackendSeq Backend = iota
	BackendPthread
	BackendOMP
	BackendSIMD
	BackendRegion
)

// String renders the backend's CLI flag spelling.
func (b Backend) String() string {
	switch b {
	case BackendSeq:
		return "seq"
	case BackendPthread:
		return "pthread"
	case BackendOMP:
		return "omp"
	case BackendSIMD:
		return "simd"
	case BackendRegion:
		return "region"
	default:
		return "unknown"
	}
}

// ParseBackend maps a CLI flag value to a Backend. ok is false for an
// unrecognised name.
func ParseBackend(s string) (b Backend, ok bool) {
	switch s {
	case "seq":
		return BackendSeq, true
	case "pthread":
		return BackendPthread, true
	case "omp":
		return BackendOMP, true
	case "simd":
		return BackendSIMD, true
	case "region":
		return BackendRegion, true
	default:
		return 0, false
	}
}

// usesPlacement reports whether Placement collision avoidance applies for
// this backend: only the sequential and region-parallel backends support
// it. pthread, omp and simd only ever run the Placement-free fast path,
// regardless of what the caller asks for.
func (b Backend) usesPlacement() bool {
	return b == BackendSeq || b == BackendRegion
}

// TickEngine drives one tick of a fixed agent population under a chosen
// Backend. It owns the scratch state that persists across ticks (a RegionMap
// for region, an AgentStore for simd; seq builds its NeighbourIndex afresh
// each tick) so Simulator only has to call Tick once per step.
type TickEngine struct {
	Backend Backend
	Workers int

	// Placement requests collision avoidance for the seq backend. The region
	// backend always applies Placement whatever this says; pthread, omp and
	// simd ignore it.
	Placement bool

	UseHashGrid bool // seq only: NeighbourIndex implementation to use.

	Regions *RegionMap  // region only.
	Store   *AgentStore // simd only.

	tick int64 // number of Tick calls so far.
}

// NewTickEngine builds a TickEngine for the given backend. world and k are
// only consulted by the region backend; n is only consulted by the simd
// backend (to size the AgentStore).
func NewTickEngine(backend Backend, workers int, placement, useHashGrid bool, worldW, worldH, k, n int) *TickEngine {
	te := &TickEngine{
		Backend:     backend,
		Workers:     workers,
		Placement:   placement,
		UseHashGrid: useHashGrid,
	}
	if backend == BackendRegion {
		te.Regions = NewRegionMap(worldW, worldH, k)
	}
	if backend == BackendSIMD {
		te.Store = NewAgentStore(n)
	}
	return te
}

// Tick advances agents by exactly one tick using te.Backend.
func (te *TickEngine) Tick(agents []*Agent) {
	te.tick++
	switch te.Backend {
	case BackendSeq:
		tickSeq(te, agents)
	case BackendPthread:
		tickPthread(te, agents)
	case BackendOMP:
		tickOMP(te, agents)
	case BackendSIMD:
		tickSIMD(te, agents)
	case BackendRegion:
		tickRegion(te, agents)
	}
}
