// Package host provides the platform the handedness utilities run on.
//
// World owns the live glove collection and serialises every access to it.
// Scheduler invokes registered callbacks once per fixed number of host ticks,
// never overlapping two runs of the same callback.
package host
