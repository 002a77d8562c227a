/*
 * Copyright (C) 2026 FraudShield Labs
 *
 * This file is part of fraudwatch.
 *
 * fraudwatch is free software: you can redistribute it and/or modify
 * it under the terms of the MIT License as described in the
 * LICENSE file distributed with this project.
 *
 * fraudwatch is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
 * MIT License for more details.
 *
 * You should have received a copy of the MIT License
 * along with fraudwatch. If not, see the LICENSE file in the project root.
 */

package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"runtime"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/gorilla/websocket"

	"github.com/fraudshield/fraudwatch/internal/models"
)

func TestWSURL(t *testing.T) {
	tests := []struct {
		base, path, want string
	}{
		{"http://127.0.0.1:8000", "/ws", "ws://127.0.0.1:8000/ws"},
		{"http://127.0.0.1:8000", "ws", "ws://127.0.0.1:8000/ws"},
		{"https://backend.example", "/ws", "wss://backend.example/ws"},
	}
	for _, tt := range tests {
		if got := wsURL(tt.base, tt.path); got != tt.want {
			t.Errorf("wsURL(%q, %q) = %q, want %q", tt.base, tt.path, got, tt.want)
		}
	}
}

func TestStreamDeliversMessages(t *testing.T) {
	upgrader := websocket.Upgrader{}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		defer conn.Close()
		conn.WriteJSON(StreamEvent{
			Type:    "a2a_message",
			Message: &models.A2AMessage{ID: "ws-1", FromAgent: "orchestrator", ToAgent: "pattern_detector"},
		})
		conn.WriteJSON(StreamEvent{Type: "heartbeat"})
		time.Sleep(200 * time.Millisecond)
	}))
	defer server.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	stream := &Stream{url: wsURL(server.URL, "/ws"), delay: 50 * time.Millisecond}
	ch := make(chan models.A2AMessage, 10)
	go stream.Run(ctx, ch)

	select {
	case msg := <-ch:
		if msg.ID != "ws-1" {
			t.Errorf("got message %q, want ws-1", msg.ID)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("no message delivered")
	}

	// The heartbeat event must not have been forwarded.
	select {
	case msg := <-ch:
		t.Errorf("unexpected extra message %+v", msg)
	case <-time.After(100 * time.Millisecond):
	}
}

func TestStreamReconnectIsDelayed(t *testing.T) {
	var dials int64
	upgrader := websocket.Upgrader{}
	// A backend that accepts the upgrade and immediately drops the
	// connection.
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt64(&dials, 1)
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		conn.Close()
	}))
	defer server.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	stream := &Stream{url: wsURL(server.URL, "/ws"), delay: 200 * time.Millisecond}
	ch := make(chan models.A2AMessage, 1)
	go stream.Run(ctx, ch)

	time.Sleep(700 * time.Millisecond)
	cancel()

	// With a 200ms delay after every disconnection, 700ms allows at most
	// four dials. A tight redial loop would rack up thousands.
	if n := atomic.LoadInt64(&dials); n > 5 {
		t.Errorf("%d dials in 700ms, reconnects are not delayed", n)
	}
}

func TestStreamWatcherExitsWithConnection(t *testing.T) {
	upgrader := websocket.Upgrader{}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		conn.Close()
	}))
	defer server.Close()

	ctx, cancel := context.WithCancel(context.Background())

	stream := &Stream{url: wsURL(server.URL, "/ws"), delay: 20 * time.Millisecond}
	ch := make(chan models.A2AMessage, 1)
	go stream.Run(ctx, ch)

	// Let several connect/drop cycles go by, then stop the stream and
	// give its goroutines time to wind down.
	time.Sleep(300 * time.Millisecond)
	cancel()
	time.Sleep(200 * time.Millisecond)

	buf := make([]byte, 1<<20)
	n := runtime.Stack(buf, true)
	stacks := strings.Count(string(buf[:n]), "stream.go")
	if stacks > 2 {
		t.Errorf("%d goroutine stacks still reference stream.go, per-connection watchers are leaking", stacks)
	}
}
