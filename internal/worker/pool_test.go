package worker

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"
)

type mockJob struct {
	id      int
	fail    bool
	counter *int64
}

type mockResult struct {
	id  int
	err error
}

func (r *mockResult) GetError() error { return r.err }

func (j *mockJob) Execute(ctx context.Context) Result {
	atomic.AddInt64(j.counter, 1)
	if j.fail {
		return &mockResult{id: j.id, err: errors.New("job failed")}
	}
	return &mockResult{id: j.id}
}

func TestPool_RunsAllJobs(t *testing.T) {
	pool := NewPool(3)
	pool.Start(context.Background())

	var executed int64
	for i := 0; i < 10; i++ {
		pool.Submit(&mockJob{id: i, counter: &executed})
	}

	results := pool.Wait()
	if len(results) != 10 {
		t.Fatalf("expected 10 results, got %d", len(results))
	}
	if executed != 10 {
		t.Errorf("expected 10 executions, got %d", executed)
	}
	for _, r := range results {
		if r.GetError() != nil {
			t.Errorf("unexpected error: %v", r.GetError())
		}
	}
}

func TestPool_ManyMoreJobsThanQueueCapacity(t *testing.T) {
	// Far more jobs than workers plus queue buffer: the submit loop must
	// keep draining because workers never block handing off results.
	pool := NewPool(4)
	pool.Start(context.Background())

	var executed int64
	done := make(chan []Result, 1)
	go func() {
		for i := 0; i < 200; i++ {
			pool.Submit(&mockJob{id: i, counter: &executed})
		}
		done <- pool.Wait()
	}()

	select {
	case results := <-done:
		if len(results) != 200 {
			t.Fatalf("expected 200 results, got %d", len(results))
		}
		if executed != 200 {
			t.Errorf("expected 200 executions, got %d", executed)
		}
	case <-time.After(10 * time.Second):
		t.Fatal("pool wedged: submission blocked before Wait could run")
	}
}

func TestPool_CollectsFailures(t *testing.T) {
	pool := NewPool(2)
	pool.Start(context.Background())

	var executed int64
	pool.Submit(&mockJob{id: 0, counter: &executed})
	pool.Submit(&mockJob{id: 1, fail: true, counter: &executed})
	pool.Submit(&mockJob{id: 2, counter: &executed})

	var failures int
	for _, r := range pool.Wait() {
		if r.GetError() != nil {
			failures++
		}
	}
	if failures != 1 {
		t.Errorf("expected 1 failure, got %d", failures)
	}
}

func TestPool_ZeroWorkersDefaultsToOne(t *testing.T) {
	pool := NewPool(0)
	pool.Start(context.Background())

	var executed int64
	pool.Submit(&mockJob{counter: &executed})

	if results := pool.Wait(); len(results) != 1 {
		t.Errorf("expected 1 result, got %d", len(results))
	}
}

type blockingJob struct {
	started chan struct{}
}

func (j *blockingJob) Execute(ctx context.Context) Result {
	close(j.started)
	<-ctx.Done()
	return &mockResult{err: ctx.Err()}
}

func TestPool_CallerContextCancelsJobs(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	pool := NewPool(2)
	pool.Start(ctx)

	job := &blockingJob{started: make(chan struct{})}
	pool.Submit(job)
	<-job.started
	cancel()

	done := make(chan []Result, 1)
	go func() { done <- pool.Wait() }()

	select {
	case results := <-done:
		if len(results) != 1 {
			t.Fatalf("expected 1 result, got %d", len(results))
		}
		if results[0].GetError() == nil {
			t.Error("cancelled job should report the context error")
		}
	case <-time.After(10 * time.Second):
		t.Fatal("cancelling the caller's context did not unblock the job")
	}
}

func TestPool_Shutdown(t *testing.T) {
	pool := NewPool(2)
	pool.Start(context.Background())
	pool.Shutdown()

	// Submissions after shutdown are dropped, not deadlocked.
	var executed int64
	for i := 0; i < 100; i++ {
		pool.Submit(&mockJob{id: i, counter: &executed})
	}
}

func TestResultCollector(t *testing.T) {
	c := NewResultCollector()
	c.Add(&mockResult{id: 1})
	c.Add(&mockResult{id: 2, err: errors.New("failed")})

	results := c.Results()
	if len(results) != 2 {
		t.Fatalf("expected 2 results, got %d", len(results))
	}
	if results[1].GetError() == nil {
		t.Error("expected second result to carry its error")
	}
}
