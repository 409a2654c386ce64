package renderer

import (
	"errors"
	"sync"

	"github.com/hackmad/raytracing-series/pkg/core"
)

// ErrZeroPoolSize is returned when a thread pool is created without
// any workers.
var ErrZeroPoolSize = errors.New("renderer: thread pool requires at least one worker")

// Worker is the per-goroutine state owned by one pool worker: its own
// sampler and a pixel buffer sized to one tile, allocated once and
// reused across jobs.
type Worker struct {
	ID      int
	Sampler core.Sampler
	Tile    []byte // RGBA scratch, reused for every tile this worker renders
}

// Job is a unit of work executed on one worker
type Job func(w *Worker)

// ThreadPool is a fixed set of worker goroutines consuming jobs from a
// bounded queue. The queue capacity equals the pool size, so Execute
// blocks the producer once the pool is saturated rather than growing an
// unbounded backlog.
type ThreadPool struct {
	jobs         chan Job
	wg           sync.WaitGroup
	mu           sync.Mutex
	shuttingDown bool
}

// NewThreadPool starts size workers, each initialized by newWorker
func NewThreadPool(size int, newWorker func(id int) *Worker) (*ThreadPool, error) {
	if size <= 0 {
		return nil, ErrZeroPoolSize
	}

	p := &ThreadPool{jobs: make(chan Job, size)}
	for i := 0; i < size; i++ {
		worker := newWorker(i)
		p.wg.Add(1)
		go func() {
			defer p.wg.Done()
			for job := range p.jobs {
				job(worker)
			}
		}()
	}
	return p, nil
}

// Execute submits a job, blocking while the queue is full. Jobs
// submitted after Shutdown has begun are discarded.
func (p *ThreadPool) Execute(job Job) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.shuttingDown {
		return
	}
	p.jobs <- job
}

// Shutdown stops accepting new jobs, lets the workers drain the queue
// and waits for them to exit. Safe to call more than once.
func (p *ThreadPool) Shutdown() {
	p.mu.Lock()
	if !p.shuttingDown {
		p.shuttingDown = true
		close(p.jobs)
	}
	p.mu.Unlock()

	p.wg.Wait()
}
