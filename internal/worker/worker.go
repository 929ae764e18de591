package worker

import "sync"

// Task represents a unit of work executed by the pool. Handlers use it to
// push cache writes off the request path.
type Task func()

// Pool defines a bounded worker pool.
type Pool interface {
	Submit(Task)
	Stop()
}

// NewPool creates a pool with n workers. n<=0 defaults to 1.
func NewPool(n int) Pool {
	if n <= 0 {
		n = 1
	}
	p := &pool{jobs: make(chan Task)}
	p.wg.Add(n)
	for i := 0; i < n; i++ {
		go p.work()
	}
	return p
}

type pool struct {
	jobs chan Task
	wg   sync.WaitGroup
}

func (p *pool) work() {
	defer p.wg.Done()
	for job := range p.jobs {
		if job != nil {
			job()
		}
	}
}

// Submit blocks until a worker accepts the task.
func (p *pool) Submit(t Task) {
	p.jobs <- t
}

// Stop closes the queue and waits for in-flight tasks to finish.
func (p *pool) Stop() {
	close(p.jobs)
	p.wg.Wait()
}
