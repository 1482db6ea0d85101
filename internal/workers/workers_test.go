// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// mockWorker counts runs and blocks until its context is cancelled.
type mockWorker struct {
	runCount atomic.Int32
	started  chan struct{}
}

func newMockWorker() *mockWorker {
	return &mockWorker{started: make(chan struct{}, 1)}
}

func (m *mockWorker) Run(ctx context.Context) {
	m.runCount.Add(1)
	m.started <- struct{}{}
	<-ctx.Done()
}

func TestWorkers_Run_AllWorkersAreStarted(t *testing.T) {
	w1, w2, w3 := newMockWorker(), newMockWorker(), newMockWorker()
	ws := NewWorkers(w1, w2, w3)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		ws.Run(ctx)
		close(done)
	}()

	for _, w := range []*mockWorker{w1, w2, w3} {
		select {
		case <-w.started:
		case <-time.After(time.Second):
			t.Fatal("worker was not started")
		}
	}

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Run did not return after cancel")
	}

	for i, w := range []*mockWorker{w1, w2, w3} {
		assert.EqualValues(t, 1, w.runCount.Load(), "worker[%d]", i)
	}
}

func TestWorkers_Run_Empty(t *testing.T) {
	ws := NewWorkers()

	// returns immediately
	ws.Run(context.Background())
}

func TestWorkers_Run_Nil(t *testing.T) {
	ws := &Workers{}

	ws.Run(context.Background())
}
