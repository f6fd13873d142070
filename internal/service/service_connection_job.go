// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-fair-share/internal/workers"
	"github.com/MKhiriev/go-fair-share/models"
)

// DefaultConnectionCheckInterval is used when the job is built with a
// non-positive interval.
const DefaultConnectionCheckInterval = 15 * time.Second

type connectionWatchJob struct {
	connection ConnectionService
	interval   time.Duration
	publish    func(models.ConnectionStatus)
}

// NewConnectionWatchJob returns a worker that probes the connection right
// away and then every interval, handing each status to publish.
func NewConnectionWatchJob(connection ConnectionService, interval time.Duration, publish func(models.ConnectionStatus)) workers.Worker {
	if interval <= 0 {
		interval = DefaultConnectionCheckInterval
	}

	return &connectionWatchJob{
		connection: connection,
		interval:   interval,
		publish:    publish,
	}
}

func (j *connectionWatchJob) Run(ctx context.Context) {
	t := time.NewTicker(j.interval)
	defer t.Stop()

	j.check(ctx)
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			j.check(ctx)
		}
	}
}

func (j *connectionWatchJob) check(ctx context.Context) {
	status := j.connection.Status(ctx)
	if ctx.Err() != nil {
		return
	}
	j.publish(status)
}
