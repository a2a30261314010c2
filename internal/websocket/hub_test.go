// Pasarela - Localized API Aggregation Backends
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/pasarela

package websocket

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/gorilla/websocket"
)

// startHub runs a hub until the test ends.
func startHub(t *testing.T) *Hub {
	t.Helper()
	hub := NewHub()
	ctx, cancel := context.WithCancel(context.Background())
	errCh := make(chan error, 1)
	go func() { errCh <- hub.RunWithContext(ctx) }()
	t.Cleanup(func() {
		cancel()
		<-errCh
	})
	return hub
}

// dial connects to a Handler served by an httptest server.
func dial(t *testing.T, server *httptest.Server, origin string) (*websocket.Conn, *http.Response, error) {
	t.Helper()
	wsURL := "ws" + strings.TrimPrefix(server.URL, "http")
	header := http.Header{}
	if origin != "" {
		header.Set("Origin", origin)
	}
	conn, resp, err := websocket.DefaultDialer.Dial(wsURL, header)
	if resp != nil && resp.Body != nil {
		defer resp.Body.Close()
	}
	if conn != nil {
		t.Cleanup(func() { _ = conn.Close() })
	}
	return conn, resp, err
}

// waitForClients polls until the hub has n clients.
func waitForClients(t *testing.T, hub *Hub, n int) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if hub.GetClientCount() == n {
			return
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatalf("client count = %d, want %d", hub.GetClientCount(), n)
}

func readMessage(t *testing.T, conn *websocket.Conn) Message {
	t.Helper()
	if err := conn.SetReadDeadline(time.Now().Add(2 * time.Second)); err != nil {
		t.Fatal(err)
	}
	var msg Message
	if err := conn.ReadJSON(&msg); err != nil {
		t.Fatalf("ReadJSON() error = %v", err)
	}
	return msg
}

func TestNewHub(t *testing.T) {
	t.Parallel()

	hub := NewHub()
	if hub.GetClientCount() != 0 {
		t.Errorf("new hub has %d clients", hub.GetClientCount())
	}
	if cap(hub.broadcast) != 256 {
		t.Errorf("broadcast capacity = %d, want 256", cap(hub.broadcast))
	}
	select {
	case <-hub.Done():
		t.Error("Done() should not be closed before the hub runs")
	default:
	}
}

func TestHub_BroadcastToConnectedClients(t *testing.T) {
	t.Parallel()

	hub := startHub(t)
	server := httptest.NewServer(NewHandler(hub, []string{"*"}))
	defer server.Close()

	first, _, err := dial(t, server, "http://localhost")
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	second, _, err := dial(t, server, "http://localhost")
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	waitForClients(t, hub, 2)

	hub.Broadcast("mensaje_nuevo", json.RawMessage(`{"id":"m1","texto":"hola"}`))

	for _, conn := range []*websocket.Conn{first, second} {
		msg := readMessage(t, conn)
		if msg.Tipo != "mensaje_nuevo" {
			t.Errorf("Tipo = %q, want mensaje_nuevo", msg.Tipo)
		}
		datos, ok := msg.Datos.(map[string]interface{})
		if !ok || datos["texto"] != "hola" {
			t.Errorf("Datos = %v", msg.Datos)
		}
	}
}

func TestHub_PingPong(t *testing.T) {
	t.Parallel()

	hub := startHub(t)
	server := httptest.NewServer(NewHandler(hub, []string{"*"}))
	defer server.Close()

	conn, _, err := dial(t, server, "http://localhost")
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	if err := conn.WriteJSON(Message{Tipo: MessageTypePing}); err != nil {
		t.Fatalf("WriteJSON() error = %v", err)
	}
	if msg := readMessage(t, conn); msg.Tipo != MessageTypePong {
		t.Errorf("Tipo = %q, want pong", msg.Tipo)
	}
}

func TestHub_UnregisterOnDisconnect(t *testing.T) {
	t.Parallel()

	hub := startHub(t)
	server := httptest.NewServer(NewHandler(hub, []string{"*"}))
	defer server.Close()

	conn, _, err := dial(t, server, "http://localhost")
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	waitForClients(t, hub, 1)

	_ = conn.Close()
	waitForClients(t, hub, 0)
}

func TestHandler_CheckOrigin(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		allowed []string
		origin  string
		wantOK  bool
	}{
		{"wildcard", []string{"*"}, "https://cualquiera.example", true},
		{"listed origin", []string{"https://chat.example"}, "https://chat.example", true},
		{"unlisted origin", []string{"https://chat.example"}, "https://evil.example", false},
		{"missing origin", []string{"*"}, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			hub := startHub(t)
			server := httptest.NewServer(NewHandler(hub, tt.allowed))
			defer server.Close()

			_, resp, err := dial(t, server, tt.origin)
			if tt.wantOK && err != nil {
				t.Fatalf("dial should succeed: %v", err)
			}
			if !tt.wantOK {
				if err == nil {
					t.Fatal("dial should be rejected")
				}
				if resp == nil || resp.StatusCode != http.StatusForbidden {
					t.Errorf("expected 403, got %+v", resp)
				}
			}
		})
	}
}

func TestHub_RunWithContext(t *testing.T) {
	t.Parallel()

	t.Run("shuts down on context cancellation", func(t *testing.T) {
		t.Parallel()

		hub := NewHub()
		ctx, cancel := context.WithCancel(context.Background())
		errCh := make(chan error, 1)
		go func() { errCh <- hub.RunWithContext(ctx) }()

		cancel()
		select {
		case err := <-errCh:
			if !errors.Is(err, context.Canceled) {
				t.Errorf("expected context.Canceled, got %v", err)
			}
		case <-time.After(time.Second):
			t.Fatal("RunWithContext did not return after context cancellation")
		}
		select {
		case <-hub.Done():
		default:
			t.Error("Done() should be closed after shutdown")
		}
	})

	t.Run("shuts down on context deadline", func(t *testing.T) {
		t.Parallel()

		hub := NewHub()
		ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
		defer cancel()

		if err := hub.RunWithContext(ctx); !errors.Is(err, context.DeadlineExceeded) {
			t.Errorf("expected context.DeadlineExceeded, got %v", err)
		}
	})
}

func TestHub_ShutdownClosesClients(t *testing.T) {
	t.Parallel()

	hub := NewHub()
	ctx, cancel := context.WithCancel(context.Background())
	errCh := make(chan error, 1)
	go func() { errCh <- hub.RunWithContext(ctx) }()

	server := httptest.NewServer(NewHandler(hub, []string{"*"}))
	defer server.Close()

	conn, _, err := dial(t, server, "http://localhost")
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	waitForClients(t, hub, 1)

	cancel()
	<-errCh

	_ = conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	if _, _, err := conn.ReadMessage(); err == nil {
		t.Error("expected the connection to be closed by the hub")
	}

	rec := httptest.NewRecorder()
	NewHandler(hub, []string{"*"}).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ws", nil))
	if rec.Code != http.StatusServiceUnavailable {
		t.Errorf("status after shutdown = %d, want 503", rec.Code)
	}
}

func TestHub_DropsSlowClient(t *testing.T) {
	t.Parallel()

	hub := NewHub()
	slow := &Client{id: clientIDCounter.Add(1), hub: hub, send: make(chan Message)}
	hub.clients[slow] = true

	hub.broadcastToClients(Message{Tipo: "mensaje_nuevo"})

	if hub.GetClientCount() != 0 {
		t.Error("a client that cannot accept a message should be dropped")
	}
	if _, ok := <-slow.send; ok {
		t.Error("dropped client's send channel should be closed")
	}
}

func TestHub_BroadcastChannelFull(t *testing.T) {
	t.Parallel()

	hub := NewHub()
	for i := 0; i < cap(hub.broadcast); i++ {
		hub.Broadcast("mensaje_nuevo", i)
	}
	done := make(chan struct{})
	go func() {
		hub.Broadcast("mensaje_nuevo", "overflow")
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Broadcast should not block when the channel is full")
	}
}

func TestMarshalMessage(t *testing.T) {
	t.Parallel()

	data, err := MarshalMessage(Message{Tipo: "mensaje_eliminado", Datos: map[string]string{"id": "m1"}})
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != `{"tipo":"mensaje_eliminado","datos":{"id":"m1"}}` {
		t.Errorf("MarshalMessage() = %s", data)
	}
}

func TestGetShutdownReason(t *testing.T) {
	t.Parallel()

	canceled, cancel := context.WithCancel(context.Background())
	cancel()
	expired, cancel2 := context.WithDeadline(context.Background(), time.Now().Add(-time.Second))
	defer cancel2()

	if got := getShutdownReason(canceled); got != ShutdownReasonContextCanceled {
		t.Errorf("canceled = %s", got)
	}
	if got := getShutdownReason(expired); got != ShutdownReasonContextDeadline {
		t.Errorf("expired = %s", got)
	}
}
