//go:build lowprec || tinygo

package renderer

// DefaultScheduler returns the strategy for this build: a single sequential loop
func DefaultScheduler() Scheduler {
	return SequentialScheduler{}
}
