package renderer

import (
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/df07/go-portable-raytracer/pkg/numeric"
)

// TileTask represents a tile rendering task for the worker pool
type TileTask struct {
	Tile Tile
	Seed uint64 // Seed for the tile's private generator
}

// TileResult contains the result from rendering a tile
type TileResult struct {
	TileID int
	Stats  RenderStats
}

// WorkerPool manages parallel tile rendering
type WorkerPool struct {
	renderer    *TileRenderer
	taskQueue   chan TileTask
	resultQueue chan TileResult
	numWorkers  int
	group       errgroup.Group
}

// NewWorkerPool creates a worker pool with the specified number of workers.
// The queues hold maxTasks entries, so submitting up to maxTasks tasks never blocks.
func NewWorkerPool(renderer *TileRenderer, numWorkers, maxTasks int) *WorkerPool {
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}
	return &WorkerPool{
		renderer:    renderer,
		taskQueue:   make(chan TileTask, maxTasks),
		resultQueue: make(chan TileResult, maxTasks),
		numWorkers:  numWorkers,
	}
}

// Start begins all workers
func (wp *WorkerPool) Start() {
	for i := 0; i < wp.numWorkers; i++ {
		id := i
		wp.group.Go(func() error {
			return wp.run(id)
		})
	}
}

// SubmitTask submits a tile task to the worker pool
func (wp *WorkerPool) SubmitTask(task TileTask) {
	wp.taskQueue <- task
}

// Stop closes the task queue, waits for the workers to drain it and closes the
// result queue. It returns the first worker failure.
func (wp *WorkerPool) Stop() error {
	close(wp.taskQueue) // No more tasks
	err := wp.group.Wait()
	close(wp.resultQueue)
	return err
}

// Results returns the completed tile results; the channel is closed by Stop
func (wp *WorkerPool) Results() <-chan TileResult {
	return wp.resultQueue
}

// GetNumWorkers returns the number of workers in the pool
func (wp *WorkerPool) GetNumWorkers() int {
	return wp.numWorkers
}

// run is the main worker loop. Each task gets a fresh generator seeded from the
// task, so the output does not depend on which worker picks up which tile.
func (wp *WorkerPool) run(id int) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("worker %d: %v", id, r)
			// Drain so Stop is not left waiting on a full queue
			for range wp.taskQueue {
			}
		}
	}()

	for task := range wp.taskQueue {
		rng := numeric.NewRand(task.Seed)
		stats := wp.renderer.RenderTile(task.Tile, &rng)
		wp.resultQueue <- TileResult{TileID: task.Tile.ID, Stats: stats}
	}
	return nil
}
