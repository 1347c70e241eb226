package tabusearch

// Config carries every tunable of the tabu-search engine, in the
// Options-struct-with-defaults style the rest of this module follows.
type Config struct {
	// TabuCoefficient scales the current total conflict count into the base
	// tabu tenure: tenure = floor(TabuCoefficient * TotalConflict) + jitter.
	TabuCoefficient float64

	// JitterMin and JitterMax bound the uniform random jitter added to every
	// computed tenure, inclusive on both ends.
	JitterMin int
	JitterMax int

	// RestartThreshold is rt, the initial gap allowed between the current
	// and best total conflict before a restart fires: once
	// current.TotalConflict - best.TotalConflict exceeds rt, the engine
	// clears its tabu list and snaps current back to best.
	RestartThreshold int

	// RestartThresholdUpperBound caps how far rt is allowed to grow over
	// the course of a run.
	RestartThresholdUpperBound int

	// RestartsPerThresholdIncrement is the number of restarts that must
	// accumulate before rt is raised by one, up to RestartThresholdUpperBound.
	RestartsPerThresholdIncrement int

	// DeadlineCheckMask gates how often Run polls ctx.Done(): every
	// iteration whose low bits (iteration & DeadlineCheckMask) are zero.
	// Must be one less than a power of two.
	DeadlineCheckMask uint64

	// DebugAssertions enables the engine's internal invariant
	// cross-checks (conflict-counter recomputation vs. incremental
	// bookkeeping). Costs an O(n^2) recomputation per call; intended for
	// tests, not production runs.
	DebugAssertions bool
}

// DefaultConfig returns reasonable defaults: tenure scaled at 0.4 of current
// conflict with jitter in [1, 10], a restart gap threshold starting at 10
// and growing by one every 1000 restarts up to a ceiling of 15, and a
// deadline check every 1024 iterations.
func DefaultConfig() Config {
	return Config{
		TabuCoefficient:               0.4,
		JitterMin:                     1,
		JitterMax:                     10,
		RestartThreshold:              10,
		RestartThresholdUpperBound:    15,
		RestartsPerThresholdIncrement: 1000,
		DeadlineCheckMask:             1023,
		DebugAssertions:               false,
	}
}

func (c Config) validate() error {
	if c.JitterMin < 0 || c.JitterMax < c.JitterMin {
		return ErrInvalidConfig
	}
	if c.RestartThreshold <= 0 || c.RestartThresholdUpperBound < c.RestartThreshold {
		return ErrInvalidConfig
	}
	if c.RestartsPerThresholdIncrement <= 0 {
		return ErrInvalidConfig
	}
	if c.TabuCoefficient < 0 {
		return ErrInvalidConfig
	}
	return nil
}
