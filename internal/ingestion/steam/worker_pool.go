package steam

import (
	"context"
	"log"
	"sync"
)

// Task is a unit of work executed by the pool.
type Task func(ctx context.Context) error

// WorkerPool runs tasks on a bounded set of goroutines. It adds pipeline
// depth to the sync, not request rate; the client's shared limiter keeps the
// detail-call spacing regardless of how many workers run.
type WorkerPool struct {
	workerCount int
	tasks       chan Task
	wg          sync.WaitGroup
	ctx         context.Context
	cancel      context.CancelFunc
	closed      bool
	closeMux    sync.Mutex
}

// NewWorkerPool creates a pool bound to ctx with the given worker count.
func NewWorkerPool(ctx context.Context, workerCount int) *WorkerPool {
	poolCtx, cancel := context.WithCancel(ctx)
	return &WorkerPool{
		workerCount: workerCount,
		tasks:       make(chan Task, workerCount*2),
		ctx:         poolCtx,
		cancel:      cancel,
	}
}

// Start launches the worker goroutines.
func (wp *WorkerPool) Start() {
	for i := 0; i < wp.workerCount; i++ {
		wp.wg.Add(1)
		go wp.worker(i)
	}
}

// Submit queues a task, dropping it if the pool is shutting down.
func (wp *WorkerPool) Submit(task Task) {
	select {
	case wp.tasks <- task:
	case <-wp.ctx.Done():
		log.Println("[WorkerPool] Pool shutting down, task not submitted")
	}
}

// Wait closes the queue and blocks until every queued task has finished.
func (wp *WorkerPool) Wait() {
	wp.closeMux.Lock()
	if !wp.closed {
		close(wp.tasks)
		wp.closed = true
	}
	wp.closeMux.Unlock()

	wp.wg.Wait()
}

// Shutdown cancels in-flight work and waits for the workers to exit.
func (wp *WorkerPool) Shutdown() {
	wp.cancel()
	wp.Wait()
}

func (wp *WorkerPool) worker(id int) {
	defer wp.wg.Done()

	for task := range wp.tasks {
		select {
		case <-wp.ctx.Done():
			return
		default:
		}

		if err := task(wp.ctx); err != nil {
			log.Printf("[Worker %d] Task error: %v", id, err)
		}
	}
}
