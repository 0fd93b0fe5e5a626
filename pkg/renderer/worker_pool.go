package renderer

import (
	"runtime"
	"sync"
)

// RowTask represents a contiguous band of scanlines to render.
// Tasks never overlap, so workers write to disjoint frame buffer slots.
type RowTask struct {
	MinRow int // Inclusive
	MaxRow int // Exclusive
}

// WorkerPool fans row tasks out to a fixed set of goroutines. The
// units of work communicate with nothing and block on nothing, so the
// pool carries no per-task results; Wait returns once every submitted
// task has completed.
type WorkerPool struct {
	taskQueue  chan RowTask
	numWorkers int
	wg         sync.WaitGroup
}

// NewWorkerPool creates a worker pool with the specified number of
// workers and room for queueDepth pending tasks
func NewWorkerPool(numWorkers, queueDepth int) *WorkerPool {
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}
	if queueDepth < 1 {
		queueDepth = 1
	}
	return &WorkerPool{
		taskQueue:  make(chan RowTask, queueDepth),
		numWorkers: numWorkers,
	}
}

// Start begins all workers, each draining the task queue with render
func (wp *WorkerPool) Start(render func(RowTask)) {
	for i := 0; i < wp.numWorkers; i++ {
		wp.wg.Add(1)
		go func() {
			defer wp.wg.Done()
			for task := range wp.taskQueue {
				render(task)
			}
		}()
	}
}

// Submit queues a row task for rendering
func (wp *WorkerPool) Submit(task RowTask) {
	wp.taskQueue <- task
}

// Wait closes the queue and blocks until all workers finish
func (wp *WorkerPool) Wait() {
	close(wp.taskQueue)
	wp.wg.Wait()
}

// NumWorkers returns the number of workers in the pool
func (wp *WorkerPool) NumWorkers() int {
	return wp.numWorkers
}
