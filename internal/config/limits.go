package config

import "runtime"

// Limit resolution chain (highest priority first):
//   1. CLI flags (--max-shift, --workers)
//   2. Environment variables (BIGCALC_MAX_SHIFT, BIGCALC_WORKERS)
//   3. TOML profile (~/.bigcalc.toml)
//   4. Adaptive hardware estimation (this file)

// applyAdaptiveLimits fills in hardware-derived defaults for every limit the
// user left at zero, preserving explicit overrides from any source.
func applyAdaptiveLimits(cfg *AppConfig) {
	if cfg.MaxShift == 0 {
		cfg.MaxShift = EstimateShiftLimit()
	}
	if cfg.Workers == 0 {
		cfg.Workers = EstimateWorkerCount()
	}
}

// EstimateShiftLimit provides a heuristic bound on shift counts so a single
// shift cannot allocate beyond what the platform word size comfortably
// supports. The bound is in bits of result growth.
func EstimateShiftLimit() int64 {
	wordSize := 32 << (^uint(0) >> 63)

	if wordSize == 64 {
		return 1 << 27 // 128M bits, a 16 MiB magnitude on 64-bit hosts
	}
	return 1 << 24 // 16M bits on 32-bit hosts
}

// EstimateWorkerCount provides a heuristic bound on concurrent evaluations in
// server mode, balancing throughput against the memory footprint of large
// operands.
func EstimateWorkerCount() int {
	numCPU := runtime.NumCPU()

	switch {
	case numCPU <= 2:
		return 2
	case numCPU <= 8:
		return numCPU
	default:
		return 8 // beyond this, concurrent huge operands are memory-bound
	}
}
