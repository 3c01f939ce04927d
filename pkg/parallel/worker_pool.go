// Package parallel runs independent ontology queries on a bounded set of
// goroutines.
package parallel

import (
	"fmt"
	"math"
	"sync"
	"sync/atomic"

	"github.com/dd0wney/cluso-ontology/pkg/logging"
)

// WorkerPool manages a pool of worker goroutines
type WorkerPool struct {
	workers   int
	taskQueue chan func()
	wg        sync.WaitGroup
	once      sync.Once
	mu        sync.RWMutex // guards taskQueue against close during send
	closed    bool
	logger    logging.Logger
	panics    atomic.Int64
}

// ErrTooManyWorkers is returned when the worker count exceeds the maximum allowed.
var ErrTooManyWorkers = fmt.Errorf("worker count exceeds maximum")

// ErrTaskPanicked reports that Map recovered panics from some items.
var ErrTaskPanicked = fmt.Errorf("task panicked")

// MaxWorkers is the maximum number of workers allowed in a pool.
const MaxWorkers = math.MaxInt / 2

// NewWorkerPool starts a pool. Non-positive counts mean one worker; a nil
// logger discards recovered panics.
func NewWorkerPool(workers int, logger logging.Logger) (*WorkerPool, error) {
	if workers <= 0 {
		workers = 1
	}
	if workers > MaxWorkers {
		return nil, fmt.Errorf("%w: %d exceeds %d", ErrTooManyWorkers, workers, MaxWorkers)
	}
	if logger == nil {
		logger = logging.NewNopLogger()
	}

	pool := &WorkerPool{
		workers:   workers,
		taskQueue: make(chan func(), workers*2),
		logger:    logger,
	}
	for i := 0; i < workers; i++ {
		pool.wg.Add(1)
		go pool.worker()
	}
	return pool, nil
}

// Workers returns the pool size.
func (wp *WorkerPool) Workers() int { return wp.workers }

func (wp *WorkerPool) worker() {
	defer wp.wg.Done()
	for task := range wp.taskQueue {
		wp.runTask(task)
	}
}

func (wp *WorkerPool) runTask(task func()) {
	defer func() {
		if r := recover(); r != nil {
			wp.panics.Add(1)
			wp.logger.Warn("worker task panicked", logging.Any("panic", r))
		}
	}()
	task()
}

// Panics returns the number of tasks that panicked so far.
func (wp *WorkerPool) Panics() int { return int(wp.panics.Load()) }

// Submit queues a task. It returns false once the pool is closed.
func (wp *WorkerPool) Submit(task func()) bool {
	wp.mu.RLock()
	defer wp.mu.RUnlock()
	if wp.closed {
		return false
	}
	wp.taskQueue <- task
	return true
}

// Close stops accepting tasks and waits for queued ones to finish. It is
// safe to call more than once.
func (wp *WorkerPool) Close() {
	wp.once.Do(func() {
		wp.mu.Lock()
		wp.closed = true
		close(wp.taskQueue)
		wp.mu.Unlock()
	})
	wp.wg.Wait()
}

// Map applies fn to every item on a fresh pool and returns results in input
// order. Items whose fn panics keep the zero value; the error then wraps
// ErrTaskPanicked and names the first failed index.
func Map[T, R any](items []T, workers int, logger logging.Logger, fn func(T) R) ([]R, error) {
	out := make([]R, len(items))
	if len(items) == 0 {
		return out, nil
	}
	if workers > len(items) {
		workers = len(items)
	}
	pool, err := NewWorkerPool(workers, logger)
	if err != nil {
		return nil, err
	}
	done := make([]bool, len(items))
	for i, item := range items {
		pool.Submit(func() {
			out[i] = fn(item)
			done[i] = true
		})
	}
	pool.Close()

	if n := pool.Panics(); n > 0 {
		first := 0
		for first < len(done) && done[first] {
			first++
		}
		return out, fmt.Errorf("%w: %d of %d items, first at index %d", ErrTaskPanicked, n, len(items), first)
	}
	return out, nil
}
