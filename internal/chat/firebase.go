// Pasarela - Localized API Aggregation Backends
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/pasarela

package chat

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"sort"
	"strconv"

	"github.com/tomtom215/pasarela/internal/config"
	"github.com/tomtom215/pasarela/internal/upstream"
)

// Firebase Realtime Database paths.
const (
	firebaseMessages = "/mensajes"
	firebasePresence = "/usuarios_online"
)

// FirebaseStore talks to a Firebase Realtime Database through its REST
// API. Messages live under /mensajes keyed by push id, presence markers
// under /usuarios_online keyed by username.
type FirebaseStore struct {
	client *upstream.Client
}

var _ Store = (*FirebaseStore)(nil)

// firebaseMessage is a message as stored; the id is the node key.
type firebaseMessage struct {
	Usuario   string `json:"usuario"`
	Texto     string `json:"texto"`
	Timestamp string `json:"timestamp"`
	Avatar    string `json:"avatar"`
}

type pushResponse struct {
	Name string `json:"name"`
}

// NewFirebaseStore creates a store for the database at baseURL
// (https://<project>.firebaseio.com). auth, when set, is sent as the auth
// query parameter on every call.
func NewFirebaseStore(baseURL, auth string, up config.UpstreamConfig) *FirebaseStore {
	cfg := upstream.Defaults("firebase", baseURL, up)
	if auth != "" {
		cfg.Query = url.Values{"auth": {auth}}
	}
	return &FirebaseStore{client: upstream.New(cfg)}
}

func messagePath(id string) string {
	return firebaseMessages + "/" + url.PathEscape(id) + ".json"
}

// Append pushes the message; Firebase generates the id.
func (s *FirebaseStore) Append(ctx context.Context, m Mensaje) (Mensaje, error) {
	body := firebaseMessage{Usuario: m.Usuario, Texto: m.Texto, Timestamp: m.Timestamp, Avatar: m.Avatar}

	var resp pushResponse
	err := s.client.Do(ctx, upstream.Request{Method: http.MethodPost, Path: firebaseMessages + ".json", JSON: body}, &resp)
	if err != nil {
		return Mensaje{}, fmt.Errorf("push message: %w", err)
	}
	if resp.Name == "" {
		return Mensaje{}, fmt.Errorf("push message: empty key in response")
	}
	m.ID = resp.Name
	return m, nil
}

// Recent queries the last limit messages ordered by timestamp. Firebase
// returns them as an unordered object, so they are sorted here.
func (s *FirebaseStore) Recent(ctx context.Context, limit int) ([]Mensaje, error) {
	query := url.Values{
		"orderBy":     {`"timestamp"`},
		"limitToLast": {strconv.Itoa(limit)},
	}

	var nodes map[string]firebaseMessage
	if err := s.client.Get(ctx, firebaseMessages+".json", query, &nodes); err != nil {
		return nil, fmt.Errorf("list messages: %w", err)
	}

	msgs := make([]Mensaje, 0, len(nodes))
	for id, n := range nodes {
		msgs = append(msgs, Mensaje{ID: id, Usuario: n.Usuario, Texto: n.Texto, Timestamp: n.Timestamp, Avatar: n.Avatar})
	}
	sortByTimestamp(msgs)
	return lastN(msgs, limit), nil
}

// Delete checks the node exists, since Firebase deletes unknown paths
// without complaint, then removes it.
func (s *FirebaseStore) Delete(ctx context.Context, id string) error {
	var existing *firebaseMessage
	if err := s.client.Get(ctx, messagePath(id), nil, &existing); err != nil {
		return fmt.Errorf("get message: %w", err)
	}
	if existing == nil {
		return ErrMessageNotFound
	}

	if err := s.client.Do(ctx, upstream.Request{Method: http.MethodDelete, Path: messagePath(id)}, nil); err != nil {
		return fmt.Errorf("delete message: %w", err)
	}
	return nil
}

// SetPresence writes the marker with PUT, replacing any previous one.
func (s *FirebaseStore) SetPresence(ctx context.Context, usuario string, p Presencia) error {
	path := firebasePresence + "/" + url.PathEscape(usuario) + ".json"
	if err := s.client.Do(ctx, upstream.Request{Method: http.MethodPut, Path: path, JSON: p}, nil); err != nil {
		return fmt.Errorf("set presence: %w", err)
	}
	return nil
}

// Online reads every marker and keeps those flagged online.
func (s *FirebaseStore) Online(ctx context.Context) ([]string, error) {
	var markers map[string]Presencia
	if err := s.client.Get(ctx, firebasePresence+".json", nil, &markers); err != nil {
		return nil, fmt.Errorf("list online users: %w", err)
	}

	usuarios := make([]string, 0, len(markers))
	for usuario, p := range markers {
		if p.Online {
			usuarios = append(usuarios, usuario)
		}
	}
	sort.Strings(usuarios)
	return usuarios, nil
}

// Ping performs a shallow read of the database root.
func (s *FirebaseStore) Ping(ctx context.Context) error {
	return s.client.Get(ctx, "/.json", url.Values{"shallow": {"true"}}, nil)
}

// Close is a no-op; the HTTP client holds no resources.
func (s *FirebaseStore) Close() error {
	return nil
}
