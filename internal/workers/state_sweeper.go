// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/intelli-scan/internal/logger"
	"github.com/MKhiriev/intelli-scan/internal/store"
)

const defaultSweepInterval = time.Minute

// stateSweeper removes expired OAuth states on a fixed interval.
type stateSweeper struct {
	states   store.StateStore
	interval time.Duration
	logger   *logger.Logger
}

// NewStateSweeper returns a [Worker] purging expired states from states
// every interval. A non-positive interval falls back to one minute.
func NewStateSweeper(states store.StateStore, interval time.Duration, logger *logger.Logger) Worker {
	if interval <= 0 {
		interval = defaultSweepInterval
	}
	return &stateSweeper{states: states, interval: interval, logger: logger}
}

func (s *stateSweeper) Run(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.logger.Info().Dur("interval", s.interval).Msg("oauth state sweeper started")
	for {
		select {
		case <-ctx.Done():
			s.logger.Info().Msg("oauth state sweeper stopped")
			return
		case <-ticker.C:
			s.sweep(ctx)
		}
	}
}

func (s *stateSweeper) sweep(ctx context.Context) {
	purged, err := s.states.PurgeExpired(ctx)
	if err != nil {
		s.logger.Err(err).Str("func", "stateSweeper.sweep").Msg("error purging expired oauth states")
		return
	}
	if purged > 0 {
		s.logger.Debug().Int("purged", purged).Msg("expired oauth states removed")
	}
}
