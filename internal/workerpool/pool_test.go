package workerpool

import (
	"context"
	"sync/atomic"
	"testing"
	"time"
)

func TestSubmitAndDrain(t *testing.T) {
	p := New(2, 10)
	var count atomic.Int32

	for i := 0; i < 5; i++ {
		ok := p.Submit(func() {
			count.Add(1)
		})
		if !ok {
			t.Fatalf("Submit %d failed", i)
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	p.Drain(ctx)

	if got := count.Load(); got != 5 {
		t.Fatalf("count = %d, want 5", got)
	}
}

func TestSubmitAfterDrainReturnsFalse(t *testing.T) {
	p := New(1, 1)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	p.Drain(ctx)

	if p.Submit(func() {}) {
		t.Fatal("Submit after Drain should return false")
	}
}

func TestQueueFullReturnsFalse(t *testing.T) {
	p := New(1, 1)
	// Block the worker
	blocker := make(chan struct{})
	p.Submit(func() { <-blocker })

	// Fill the queue
	time.Sleep(10 * time.Millisecond) // let worker pick up first task
	p.Submit(func() {})               // fills the queue (size 1)

	// This should fail — queue full
	if p.Submit(func() {}) {
		t.Fatal("Submit should return false when queue is full")
	}

	close(blocker)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	p.Drain(ctx)
}

func TestDrainRespectsContextDeadline(t *testing.T) {
	p := New(1, 10)
	blocker := make(chan struct{})
	p.Submit(func() { <-blocker })

	start := time.Now()
	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()
	p.Drain(ctx)
	elapsed := time.Since(start)

	if elapsed > 500*time.Millisecond {
		t.Fatalf("Drain should have timed out in ~100ms, took %v", elapsed)
	}

	close(blocker) // cleanup
}

func TestSingleWorkerDrainDoesNotDeadlock(t *testing.T) {
	p := New(1, 10)
	var count atomic.Int32

	for i := 0; i < 5; i++ {
		p.Submit(func() {
			time.Sleep(1 * time.Millisecond)
			count.Add(1)
		})
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	p.Drain(ctx)

	if got := count.Load(); got != 5 {
		t.Fatalf("single-worker drain: count = %d, want 5", got)
	}
}

func TestPanicRecovery(t *testing.T) {
	p := New(1, 10)
	var count atomic.Int32

	p.Submit(func() {
		panic("test panic")
	})
	p.Submit(func() {
		count.Add(1)
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	p.Drain(ctx)

	if got := count.Load(); got != 1 {
		t.Fatalf("task after panic: count = %d, want 1", got)
	}
}
