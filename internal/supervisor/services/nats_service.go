// Pasarela - Localized API Aggregation Backends
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/pasarela

package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/thejerf/suture/v4"
)

// EmbeddedBroker is satisfied by *events.EmbeddedServer.
type EmbeddedBroker interface {
	Running() bool
	Shutdown()
}

// ErrBrokerStopped is returned when the embedded broker exits on its own.
var ErrBrokerStopped = errors.New("embedded NATS server stopped")

// EmbeddedNATSService owns an embedded NATS server that was started before
// the event bus connected to it. It watches the server while the tree runs
// and shuts it down when ctx is canceled.
//
// A server that dies cannot be restarted in place (the bus holds its URL),
// so the service then returns suture.ErrDoNotRestart.
type EmbeddedNATSService struct {
	broker        EmbeddedBroker
	checkInterval time.Duration
	name          string
}

// NewEmbeddedNATSService wraps broker and checks it every 5 seconds.
func NewEmbeddedNATSService(broker EmbeddedBroker) *EmbeddedNATSService {
	return &EmbeddedNATSService{
		broker:        broker,
		checkInterval: 5 * time.Second,
		name:          "embedded-nats",
	}
}

// Serve implements suture.Service.
func (s *EmbeddedNATSService) Serve(ctx context.Context) error {
	ticker := time.NewTicker(s.checkInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.broker.Shutdown()
			return ctx.Err()
		case <-ticker.C:
			if !s.broker.Running() {
				return fmt.Errorf("%w: %w", ErrBrokerStopped, suture.ErrDoNotRestart)
			}
		}
	}
}

// String names the service in supervisor logs.
func (s *EmbeddedNATSService) String() string {
	return s.name
}
