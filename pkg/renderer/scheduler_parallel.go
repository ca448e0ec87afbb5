//go:build !lowprec && !tinygo

package renderer

// DefaultScheduler returns the strategy for this build: the worker pool
func DefaultScheduler() Scheduler {
	return ParallelScheduler{}
}
