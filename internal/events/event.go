// Pasarela - Localized API Aggregation Backends
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/pasarela

package events

import (
	"fmt"
	"time"

	"github.com/goccy/go-json"
)

// MetadataType is the Watermill metadata key holding Event.Tipo.
const MetadataType = "tipo"

// Event is the payload of every bus message.
type Event struct {
	Tipo      string          `json:"tipo"`
	Datos     json.RawMessage `json:"datos"`
	Timestamp string          `json:"timestamp"`
}

// NewEvent encodes datos into an Event stamped with now.
func NewEvent(tipo string, datos interface{}, now time.Time) (Event, error) {
	if tipo == "" {
		return Event{}, fmt.Errorf("event type is required")
	}
	raw, err := json.Marshal(datos)
	if err != nil {
		return Event{}, fmt.Errorf("marshal %s event: %w", tipo, err)
	}
	return Event{
		Tipo:      tipo,
		Datos:     raw,
		Timestamp: now.UTC().Format(time.RFC3339),
	}, nil
}

// Decode unmarshals the event payload into dst.
func (e Event) Decode(dst interface{}) error {
	return json.Unmarshal(e.Datos, dst)
}
