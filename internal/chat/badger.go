// Pasarela - Localized API Aggregation Backends
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/pasarela

package chat

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/dgraph-io/badger/v4"
	"github.com/goccy/go-json"
	"github.com/google/uuid"
)

// Key prefixes for BadgerDB storage
const (
	messageKeyPrefix   = "mensaje:"
	timestampKeyPrefix = "mensaje_ts:"
	presenceKeyPrefix  = "online:"
)

// BadgerStore keeps messages in BadgerDB with a timestamp index so Recent
// reads only the newest keys.
type BadgerStore struct {
	db *badger.DB
}

var _ Store = (*BadgerStore)(nil)

// OpenBadger opens the database at path. An empty path opens an in-memory
// database.
func OpenBadger(path string) (*BadgerStore, error) {
	opts := badger.DefaultOptions(path)
	if path == "" {
		opts = opts.WithInMemory(true)
	}
	opts.Logger = nil // Suppress BadgerDB logs

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open badger db for chat: %w", err)
	}
	return &BadgerStore{db: db}, nil
}

func timestampKey(m Mensaje) []byte {
	return []byte(timestampKeyPrefix + m.Timestamp + ":" + m.ID)
}

// Append stores a message under a new time-ordered id.
func (s *BadgerStore) Append(ctx context.Context, m Mensaje) (Mensaje, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return Mensaje{}, fmt.Errorf("generate message id: %w", err)
	}
	m.ID = id.String()

	data, err := json.Marshal(m)
	if err != nil {
		return Mensaje{}, fmt.Errorf("marshal message: %w", err)
	}

	err = s.db.Update(func(txn *badger.Txn) error {
		if err := txn.Set([]byte(messageKeyPrefix+m.ID), data); err != nil {
			return fmt.Errorf("set message: %w", err)
		}
		if err := txn.Set(timestampKey(m), []byte(m.ID)); err != nil {
			return fmt.Errorf("set timestamp index: %w", err)
		}
		return nil
	})
	if err != nil {
		return Mensaje{}, err
	}
	return m, nil
}

// Recent walks the timestamp index backwards and returns the newest limit
// messages, oldest first.
func (s *BadgerStore) Recent(ctx context.Context, limit int) ([]Mensaje, error) {
	msgs := make([]Mensaje, 0, max(limit, 0))

	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Reverse = true
		opts.PrefetchValues = false
		it := txn.NewIterator(opts)
		defer it.Close()

		prefix := []byte(timestampKeyPrefix)
		seek := append([]byte(timestampKeyPrefix), 0xFF)
		for it.Seek(seek); it.ValidForPrefix(prefix) && len(msgs) < limit; it.Next() {
			var id string
			if err := it.Item().Value(func(val []byte) error {
				id = string(val)
				return nil
			}); err != nil {
				return err
			}

			item, err := txn.Get([]byte(messageKeyPrefix + id))
			if errors.Is(err, badger.ErrKeyNotFound) {
				continue
			}
			if err != nil {
				return fmt.Errorf("get message %s: %w", id, err)
			}

			var m Mensaje
			if err := item.Value(func(val []byte) error {
				return json.Unmarshal(val, &m)
			}); err != nil {
				return fmt.Errorf("decode message %s: %w", id, err)
			}
			msgs = append(msgs, m)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("list messages: %w", err)
	}

	sortByTimestamp(msgs)
	return msgs, nil
}

// Delete removes the message and its index entry.
func (s *BadgerStore) Delete(ctx context.Context, id string) error {
	return s.db.Update(func(txn *badger.Txn) error {
		key := []byte(messageKeyPrefix + id)
		item, err := txn.Get(key)
		if errors.Is(err, badger.ErrKeyNotFound) {
			return ErrMessageNotFound
		}
		if err != nil {
			return fmt.Errorf("get message: %w", err)
		}

		var m Mensaje
		if err := item.Value(func(val []byte) error {
			return json.Unmarshal(val, &m)
		}); err != nil {
			return fmt.Errorf("decode message: %w", err)
		}

		if err := txn.Delete(key); err != nil {
			return fmt.Errorf("delete message: %w", err)
		}
		if err := txn.Delete(timestampKey(m)); err != nil {
			return fmt.Errorf("delete timestamp index: %w", err)
		}
		return nil
	})
}

// SetPresence overwrites the marker for usuario.
func (s *BadgerStore) SetPresence(ctx context.Context, usuario string, p Presencia) error {
	data, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("marshal presence: %w", err)
	}
	return s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(presenceKeyPrefix+usuario), data)
	})
}

// Online lists usernames whose marker is online.
func (s *BadgerStore) Online(ctx context.Context) ([]string, error) {
	usuarios := make([]string, 0)

	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = true
		it := txn.NewIterator(opts)
		defer it.Close()

		prefix := []byte(presenceKeyPrefix)
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			item := it.Item()
			var p Presencia
			if err := item.Value(func(val []byte) error {
				return json.Unmarshal(val, &p)
			}); err != nil {
				return err
			}
			if p.Online {
				usuarios = append(usuarios, strings.TrimPrefix(string(item.Key()), presenceKeyPrefix))
			}
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("list online users: %w", err)
	}

	sort.Strings(usuarios)
	return usuarios, nil
}

// Ping reports whether the database is open.
func (s *BadgerStore) Ping(ctx context.Context) error {
	if s.db.IsClosed() {
		return errors.New("badger db is closed")
	}
	return nil
}

// Close closes the database. Closing twice is a no-op.
func (s *BadgerStore) Close() error {
	if s.db.IsClosed() {
		return nil
	}
	return s.db.Close()
}
