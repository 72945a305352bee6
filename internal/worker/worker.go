package worker

import "sync"

// Task represents a unit of background work, e.g. an ML training run.
type Task func()

// Pool defines a simple worker pool with a bounded queue.
type Pool interface {
	Submit(Task)
	TrySubmit(Task) bool
	Stop()
}

// NewPool creates a pool with n workers and room for n queued tasks.
// n<=0 defaults to 1.
func NewPool(n int) Pool {
	if n <= 0 {
		n = 1
	}
	p := &pool{tasks: make(chan Task, n)}
	p.wg.Add(n)
	for i := 0; i < n; i++ {
		go func() {
			defer p.wg.Done()
			for task := range p.tasks {
				if task != nil {
					task()
				}
			}
		}()
	}
	return p
}

type pool struct {
	tasks chan Task
	wg    sync.WaitGroup
}

// Submit blocks until the task is queued or picked up by a worker.
func (p *pool) Submit(t Task) {
	p.tasks <- t
}

// TrySubmit enqueues the task without blocking. It returns false when
// every worker is busy and the queue is full.
func (p *pool) TrySubmit(t Task) bool {
	select {
	case p.tasks <- t:
		return true
	default:
		return false
	}
}

// Stop closes the queue and waits for in-flight tasks to finish.
func (p *pool) Stop() {
	close(p.tasks)
	p.wg.Wait()
}
