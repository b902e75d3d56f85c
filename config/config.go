// Package config exposes the process-global, read-only configuration
// snapshot the arena core consults: whether logging is enabled, whether
// allocations and alignment loss are tracked, and an advisory log output
// path. The core never caches a Snapshot across calls — it reads one at the
// start of each operation so toggles (e.g. in a test) take effect promptly.
package config

import "github.com/kelseyhightower/envconfig"

// Snapshot is the configuration the core reads at the start of every
// operation. The zero value has every option disabled; Default returns the
// all-enabled snapshot.
type Snapshot struct {
	EnableLogging      bool   `envconfig:"ENABLE_LOGGING" default:"true"`
	TrackAllocations   bool   `envconfig:"TRACK_ALLOCATIONS" default:"true"`
	TrackAlignmentLoss bool   `envconfig:"TRACK_ALIGNMENT_LOSS" default:"true"`
	LogOutputPath      string `envconfig:"LOG_OUTPUT_PATH"`
}

// Default is the all-tracking-enabled snapshot, used whenever the process
// environment carries no ARENA_* overrides.
func Default() Snapshot {
	return Snapshot{
		EnableLogging:      true,
		TrackAllocations:   true,
		TrackAlignmentLoss: true,
	}
}

// Load reads a Snapshot from the process environment (prefix ARENA_),
// falling back to Default's field values for anything unset.
func Load() Snapshot {
	snap := Default()
	// envconfig.Process only overwrites fields whose env var is present (or
	// whose default tag fires), so a bad/missing environment degrades to
	// Default rather than zeroing the snapshot.
	_ = envconfig.Process("arena", &snap)
	return snap
}
