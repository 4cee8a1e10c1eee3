package renderer

import (
	"context"
	"runtime"
	"sync"
)

// TileTask represents a tile rendering task for the worker pool
type TileTask struct {
	Tile          *Tile
	PassNumber    int
	TargetSamples int
	TaskID        int    // Index of the tile, used to route the result
	Frame         *Frame // Shared frame to accumulate into
}

// TileResult contains the result from rendering a tile
type TileResult struct {
	TaskID int
	Stats  RenderStats
	Error  error
}

// WorkerPool manages parallel tile rendering
type WorkerPool struct {
	ctx         context.Context
	raytracer   *Raytracer
	taskQueue   chan TileTask
	resultQueue chan TileResult
	numWorkers  int
	wg          sync.WaitGroup
	startOnce   sync.Once
	stopOnce    sync.Once
}

// NewWorkerPool creates a worker pool with the specified number of workers.
// queueSize should be at least the number of tiles submitted per pass.
func NewWorkerPool(ctx context.Context, raytracer *Raytracer, numWorkers, queueSize int) *WorkerPool {
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}

	return &WorkerPool{
		ctx:         ctx,
		raytracer:   raytracer,
		taskQueue:   make(chan TileTask, queueSize),
		resultQueue: make(chan TileResult, queueSize),
		numWorkers:  numWorkers,
	}
}

// Start begins all workers
func (wp *WorkerPool) Start() {
	wp.startOnce.Do(func() {
		for i := 0; i < wp.numWorkers; i++ {
			wp.wg.Add(1)
			go wp.run()
		}
	})
}

// Stop gracefully shuts down all workers
func (wp *WorkerPool) Stop() {
	wp.stopOnce.Do(func() {
		close(wp.taskQueue) // No more tasks
		wp.wg.Wait()        // Wait for workers to finish
		close(wp.resultQueue)
	})
}

// SubmitTask submits a tile task to the worker pool
func (wp *WorkerPool) SubmitTask(task TileTask) {
	wp.taskQueue <- task
}

// GetResult retrieves a completed tile result
func (wp *WorkerPool) GetResult() (TileResult, bool) {
	result, ok := <-wp.resultQueue
	return result, ok
}

// GetNumWorkers returns the number of workers in the pool
func (wp *WorkerPool) GetNumWorkers() int {
	return wp.numWorkers
}

// run is the main worker loop. Once the context is cancelled the remaining
// tasks are answered with the context error instead of being rendered.
func (wp *WorkerPool) run() {
	defer wp.wg.Done()

	for task := range wp.taskQueue {
		if err := wp.ctx.Err(); err != nil {
			wp.resultQueue <- TileResult{TaskID: task.TaskID, Error: err}
			continue
		}

		// Tiles have non-overlapping bounds, so writing to the shared frame is safe
		stats := wp.raytracer.RenderBounds(task.Tile.Bounds, task.Frame, task.TargetSamples)
		wp.resultQueue <- TileResult{TaskID: task.TaskID, Stats: stats}
	}
}
