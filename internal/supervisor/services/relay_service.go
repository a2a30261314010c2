// Pasarela - Localized API Aggregation Backends
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/pasarela

package services

import (
	"context"
	"fmt"

	"github.com/tomtom215/pasarela/internal/events"
)

// EventSource is satisfied by *events.Bus.
type EventSource interface {
	Run(ctx context.Context, handle func(events.Event)) error
}

// Broadcaster is satisfied by *websocket.Hub.
type Broadcaster interface {
	Broadcast(tipo string, datos interface{})
}

// EventRelayService forwards every chat event from the bus to the
// WebSocket hub. With the nats driver each instance runs its own relay,
// so clients on any instance see changes made through any other.
type EventRelayService struct {
	source EventSource
	sink   Broadcaster
	name   string
}

// NewEventRelayService relays events from source to sink.
func NewEventRelayService(source EventSource, sink Broadcaster) *EventRelayService {
	return &EventRelayService{
		source: source,
		sink:   sink,
		name:   "event-relay",
	}
}

// Serve implements suture.Service. A subscription failure is returned so
// the supervisor resubscribes with backoff.
func (s *EventRelayService) Serve(ctx context.Context) error {
	err := s.source.Run(ctx, func(ev events.Event) {
		s.sink.Broadcast(ev.Tipo, ev.Datos)
	})
	if err != nil && ctx.Err() == nil {
		return fmt.Errorf("%s: %w", s.name, err)
	}
	return err
}

// String names the service in supervisor logs.
func (s *EventRelayService) String() string {
	return s.name
}
