package worker

import (
	"errors"
	"sync"
)

var ErrPoolFull = errors.New("worker pool queue is full")
var ErrPoolClosed = errors.New("worker pool is closed")

type Job func()

// Pool runs submitted jobs on a fixed number of goroutines.
// Submit never blocks: when the queue is full the job is rejected.
type Pool struct {
	jobs   chan Job
	wg     sync.WaitGroup
	mu     sync.RWMutex
	closed bool
}

func NewPool(workerCount int, bufferSize int) *Pool {
	if workerCount < 1 {
		workerCount = 1
	}
	p := &Pool{
		jobs: make(chan Job, bufferSize),
	}

	p.wg.Add(workerCount)
	for i := 0; i < workerCount; i++ {
		go p.worker()
	}

	return p
}

func (p *Pool) worker() {
	defer p.wg.Done()
	for job := range p.jobs {
		job()
	}
}

func (p *Pool) Submit(fn Job) error {
	p.mu.RLock()
	defer p.mu.RUnlock()

	if p.closed {
		return ErrPoolClosed
	}

	select {
	case p.jobs <- fn:
		return nil
	default:
		return ErrPoolFull
	}
}

// Close stops accepting jobs and waits for queued ones to finish.
func (p *Pool) Close() {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return
	}
	p.closed = true
	close(p.jobs)
	p.mu.Unlock()

	p.wg.Wait()
}
