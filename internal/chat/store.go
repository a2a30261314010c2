// Pasarela - Localized API Aggregation Backends
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/pasarela

package chat

import (
	"context"
	"errors"
	"sort"
)

// TimestampLayout is the ISO-8601 form of Mensaje.Timestamp. Timestamps are
// always UTC with a fixed number of fraction digits, so they sort
// lexicographically.
const TimestampLayout = "2006-01-02T15:04:05.000000Z07:00"

// ErrMessageNotFound is returned when deleting an unknown message id.
var ErrMessageNotFound = errors.New("message not found")

// Store persists chat messages and presence markers.
type Store interface {
	// Append stores m, assigning an id, and returns the stored message.
	Append(ctx context.Context, m Mensaje) (Mensaje, error)

	// Recent returns the last limit messages by timestamp, oldest first.
	Recent(ctx context.Context, limit int) ([]Mensaje, error)

	// Delete removes a message or returns ErrMessageNotFound.
	Delete(ctx context.Context, id string) error

	// SetPresence overwrites the marker for usuario.
	SetPresence(ctx context.Context, usuario string, p Presencia) error

	// Online returns the usernames whose marker is online, sorted.
	Online(ctx context.Context) ([]string, error)

	Ping(ctx context.Context) error
	Close() error
}

// sortByTimestamp orders messages oldest first. Equal timestamps fall back
// to id order.
func sortByTimestamp(msgs []Mensaje) {
	sort.SliceStable(msgs, func(i, j int) bool {
		if msgs[i].Timestamp != msgs[j].Timestamp {
			return msgs[i].Timestamp < msgs[j].Timestamp
		}
		return msgs[i].ID < msgs[j].ID
	})
}

// lastN keeps the newest n messages of an ascending slice.
func lastN(msgs []Mensaje, n int) []Mensaje {
	if n > 0 && len(msgs) > n {
		return msgs[len(msgs)-n:]
	}
	return msgs
}
