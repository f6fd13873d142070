// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/MKhiriev/go-fair-share/internal/workers"
	"github.com/MKhiriev/go-fair-share/models"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

// spyConnectionService counts Status calls and returns a fixed chain id.
type spyConnectionService struct {
	calls atomic.Int64
}

func (s *spyConnectionService) Status(context.Context) models.ConnectionStatus {
	n := s.calls.Add(1)
	return models.ConnectionStatus{Connected: true, ChainID: n}
}

type statusSink struct {
	mu       sync.Mutex
	statuses []models.ConnectionStatus
}

func (s *statusSink) publish(status models.ConnectionStatus) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.statuses = append(s.statuses, status)
}

func (s *statusSink) len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.statuses)
}

func TestConnectionWatchJob_ProbesImmediately(t *testing.T) {
	spy := &spyConnectionService{}
	sink := &statusSink{}
	ws := workers.NewWorkers(NewConnectionWatchJob(spy, time.Hour, sink.publish))

	ws.Start(context.Background())
	assert.Eventually(t, func() bool { return sink.len() == 1 }, time.Second, 5*time.Millisecond)
	ws.Stop()

	assert.Equal(t, int64(1), spy.calls.Load())
}

func TestConnectionWatchJob_PollsOnInterval(t *testing.T) {
	spy := &spyConnectionService{}
	sink := &statusSink{}
	ws := workers.NewWorkers(NewConnectionWatchJob(spy, 10*time.Millisecond, sink.publish))

	ws.Start(context.Background())
	assert.Eventually(t, func() bool { return sink.len() >= 3 }, time.Second, 5*time.Millisecond)
	ws.Stop()

	sink.mu.Lock()
	defer sink.mu.Unlock()
	for i, status := range sink.statuses {
		assert.Equal(t, int64(i+1), status.ChainID, "statuses are published in probe order")
	}
}

func TestConnectionWatchJob_StopsWithContext(t *testing.T) {
	spy := &spyConnectionService{}
	sink := &statusSink{}
	job := NewConnectionWatchJob(spy, 10*time.Millisecond, sink.publish)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		job.Run(ctx)
		close(done)
	}()

	require.Eventually(t, func() bool { return sink.len() >= 1 }, time.Second, 5*time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("job did not stop after context cancellation")
	}

	callsAfterStop := spy.calls.Load()
	time.Sleep(30 * time.Millisecond)
	assert.Equal(t, callsAfterStop, spy.calls.Load(), "no probes after stop")
}

func TestConnectionWatchJob_DefaultInterval(t *testing.T) {
	job := NewConnectionWatchJob(&spyConnectionService{}, 0, func(models.ConnectionStatus) {})
	assert.Equal(t, DefaultConnectionCheckInterval, job.(*connectionWatchJob).interval)
}
