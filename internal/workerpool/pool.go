// Package workerpool provides a bounded goroutine pool. The repository uses
// it to fan profile decoding out across CPUs; decode results have no ordering
// requirement, so tasks complete in whatever order workers finish.
package workerpool

import (
	"context"
	"runtime/debug"
	"sync"
	"sync/atomic"

	"github.com/provkit/provkit/internal/logging"
)

var log = logging.L("workerpool")

// Task is a unit of work submitted to the pool.
type Task func()

// Pool is a bounded goroutine pool with a fixed-size task queue.
type Pool struct {
	queue     chan Task
	wg        sync.WaitGroup
	accepting atomic.Bool
	closeOnce sync.Once
}

// New creates a pool with maxWorkers goroutines and a task queue of queueSize.
func New(maxWorkers, queueSize int) *Pool {
	if maxWorkers < 1 {
		maxWorkers = 1
	}
	if queueSize < 1 {
		queueSize = 1
	}

	p := &Pool{
		queue: make(chan Task, queueSize),
	}
	p.accepting.Store(true)

	for i := 0; i < maxWorkers; i++ {
		go p.worker()
	}

	log.Debug("worker pool started", "workers", maxWorkers, "queueSize", queueSize)
	return p
}

// Submit enqueues a task. Returns false if the pool is draining or the queue
// is full. wg.Add is called before enqueue to prevent a race with Drain.
func (p *Pool) Submit(task Task) bool {
	if !p.accepting.Load() {
		return false
	}

	p.wg.Add(1)
	select {
	case p.queue <- task:
		return true
	default:
		p.wg.Done() // undo the Add since task was not enqueued
		log.Warn("worker pool queue full, task rejected")
		return false
	}
}

// Drain stops accepting new tasks and waits for all queued and in-flight
// tasks to complete, respecting the context deadline. After Drain returns,
// the queue channel is closed so worker goroutines exit.
func (p *Pool) Drain(ctx context.Context) {
	p.accepting.Store(false)

	done := make(chan struct{})
	go func() {
		p.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		log.Debug("worker pool drained")
	case <-ctx.Done():
		log.Warn("worker pool drain interrupted", logging.KeyError, ctx.Err())
	}

	p.closeOnce.Do(func() {
		close(p.queue)
	})
}

func (p *Pool) worker() {
	for task := range p.queue {
		p.runTask(task)
	}
}

// runTask executes a single task with panic recovery. wg.Done is called here
// to match the wg.Add in Submit.
func (p *Pool) runTask(task Task) {
	defer p.wg.Done()
	defer func() {
		if r := recover(); r != nil {
			log.Error("task panicked", "panic", r, "stack", string(debug.Stack()))
		}
	}()
	task()
}
