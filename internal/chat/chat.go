// Pasarela - Localized API Aggregation Backends
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/pasarela

package chat

import (
	"context"
	"strings"
	"time"

	"github.com/tomtom215/pasarela/internal/config"
	"github.com/tomtom215/pasarela/internal/logging"
	"github.com/tomtom215/pasarela/internal/metrics"
)

// Publisher receives chat events. *events.Bus implements it.
type Publisher interface {
	Publish(ctx context.Context, tipo string, datos interface{}) error
}

// Service implements the chat operations on top of a Store and announces
// every change on the event bus.
type Service struct {
	store  Store
	events Publisher
	limit  int
	avatar string
	now    func() time.Time
}

// NewService creates the service. events may be nil to disable realtime
// notifications.
func NewService(store Store, events Publisher, cfg config.ChatConfig) *Service {
	limit := cfg.HistoryLimit
	if limit < 1 {
		limit = 50
	}
	avatar := cfg.DefaultAvatar
	if avatar == "" {
		avatar = "👤"
	}
	return &Service{
		store:  store,
		events: events,
		limit:  limit,
		avatar: avatar,
		now:    time.Now,
	}
}

func (s *Service) timestamp() string {
	return s.now().UTC().Format(TimestampLayout)
}

// publish announces an event. A bus failure is logged, never returned:
// the write has already succeeded.
func (s *Service) publish(ctx context.Context, tipo string, datos interface{}) {
	if s.events == nil {
		return
	}
	if err := s.events.Publish(ctx, tipo, datos); err != nil {
		logging.Ctx(ctx).Warn().Err(err).Str("tipo", tipo).Msg("failed to publish chat event")
	}
}

// Messages returns the latest messages, oldest first.
func (s *Service) Messages(ctx context.Context) ([]Mensaje, error) {
	return s.store.Recent(ctx, s.limit)
}

// Send stores a validated message with a server timestamp and the default
// avatar when none was given.
func (s *Service) Send(ctx context.Context, in MensajeInput) (Mensaje, error) {
	m := Mensaje{
		Usuario:   in.Usuario,
		Texto:     in.Texto,
		Timestamp: s.timestamp(),
		Avatar:    in.Avatar,
	}
	if strings.TrimSpace(m.Avatar) == "" {
		m.Avatar = s.avatar
	}

	stored, err := s.store.Append(ctx, m)
	if err != nil {
		return Mensaje{}, err
	}
	metrics.ChatMessagesTotal.WithLabelValues("send").Inc()

	s.publish(ctx, EventMessageCreated, stored)
	return stored, nil
}

// Delete removes a message by id.
func (s *Service) Delete(ctx context.Context, id string) error {
	if err := s.store.Delete(ctx, id); err != nil {
		return err
	}
	metrics.ChatMessagesTotal.WithLabelValues("delete").Inc()

	s.publish(ctx, EventMessageDeleted, MensajeEliminado{ID: id})
	return nil
}

// MarkOnline records usuario as online now.
func (s *Service) MarkOnline(ctx context.Context, usuario string) error {
	p := Presencia{UltimaActividad: s.timestamp(), Online: true}
	if err := s.store.SetPresence(ctx, usuario, p); err != nil {
		return err
	}

	s.publish(ctx, EventUserOnline, UsuarioOnline{Usuario: usuario, UltimaActividad: p.UltimaActividad})
	return nil
}

// Online returns the sorted usernames flagged online.
func (s *Service) Online(ctx context.Context) ([]string, error) {
	usuarios, err := s.store.Online(ctx)
	if err != nil {
		return nil, err
	}
	metrics.ChatOnlineUsers.Set(float64(len(usuarios)))
	return usuarios, nil
}

// Ping checks the store for /health.
func (s *Service) Ping(ctx context.Context) error {
	return s.store.Ping(ctx)
}
