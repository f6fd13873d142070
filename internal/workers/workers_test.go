// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// countingWorker records how many times Run started and blocks until ctx
// is done.
type countingWorker struct {
	started  atomic.Int64
	finished atomic.Int64
}

func (c *countingWorker) Run(ctx context.Context) {
	c.started.Add(1)
	<-ctx.Done()
	c.finished.Add(1)
}

// returningWorker exits right away.
type returningWorker struct {
	runs atomic.Int64
}

func (r *returningWorker) Run(context.Context) {
	r.runs.Add(1)
}

func TestWorkers_StartStop_AllWorkersRun(t *testing.T) {
	w1, w2, w3 := &countingWorker{}, &countingWorker{}, &countingWorker{}
	ws := NewWorkers(w1, w2, w3)

	ws.Start(context.Background())
	assert.Eventually(t, func() bool {
		return w1.started.Load() == 1 && w2.started.Load() == 1 && w3.started.Load() == 1
	}, time.Second, 5*time.Millisecond)

	ws.Stop()
	for i, w := range []*countingWorker{w1, w2, w3} {
		assert.Equal(t, int64(1), w.finished.Load(), "worker[%d] must finish on Stop", i)
	}
}

func TestWorkers_ParentContextCancel(t *testing.T) {
	w := &countingWorker{}
	ws := NewWorkers(w)

	ctx, cancel := context.WithCancel(context.Background())
	ws.Start(ctx)
	cancel()

	assert.Eventually(t, func() bool { return w.finished.Load() == 1 }, time.Second, 5*time.Millisecond)
	ws.Stop()
}

func TestWorkers_Restart(t *testing.T) {
	w := &countingWorker{}
	ws := NewWorkers(w)

	ws.Start(context.Background())
	ws.Start(context.Background())
	ws.Stop()

	assert.Equal(t, int64(2), w.started.Load())
	assert.Equal(t, int64(2), w.finished.Load())
}

func TestWorkers_ReturningWorker(t *testing.T) {
	w := &returningWorker{}
	ws := NewWorkers(w)

	ws.Start(context.Background())
	ws.Stop()

	assert.Equal(t, int64(1), w.runs.Load())
}

func TestWorkers_Empty(t *testing.T) {
	ws := NewWorkers()

	// Should not panic on empty workers list
	assert.NotPanics(t, func() {
		ws.Start(context.Background())
		ws.Stop()
	})
}

func TestWorkers_StopBeforeStart(t *testing.T) {
	ws := &Workers{}

	// Should not panic when nothing was started
	assert.NotPanics(t, ws.Stop)
}
