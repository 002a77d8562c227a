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
	"encoding/json"
	"net/url"
	"strings"
	"time"

	"github.com/gorilla/websocket"

	"github.com/fraudshield/fraudwatch/internal/models"
	"github.com/fraudshield/fraudwatch/pkg/logger"
)

// StreamEvent is the envelope pushed by the backend over /ws. Only
// a2a_message events carry a payload the dashboard cares about; anything
// else is dropped.
type StreamEvent struct {
	Type    string             `json:"type"`
	Message *models.A2AMessage `json:"message,omitempty"`
}

const streamReconnectDelay = 3 * time.Second

// Stream subscribes to the backend's websocket feed and forwards protocol
// messages over a channel the TUI model waits on.
type Stream struct {
	url   string
	delay time.Duration
}

func NewStream(baseURL, path string) *Stream {
	return &Stream{url: wsURL(baseURL, path), delay: streamReconnectDelay}
}

func wsURL(baseURL, path string) string {
	u, err := url.Parse(baseURL)
	if err != nil {
		return ""
	}
	switch u.Scheme {
	case "https":
		u.Scheme = "wss"
	default:
		u.Scheme = "ws"
	}
	u.Path = "/" + strings.TrimLeft(path, "/")
	return u.String()
}

// Run connects, reads events and pushes messages until ctx is cancelled.
// Every disconnection, failed dial or dropped connection alike, waits the
// fixed delay before redialing; a full channel drops the event rather
// than blocking the reader.
func (s *Stream) Run(ctx context.Context, ch chan<- models.A2AMessage) {
	if s.url == "" {
		return
	}
	for {
		if ctx.Err() != nil {
			return
		}

		conn, _, err := websocket.DefaultDialer.DialContext(ctx, s.url, nil)
		if err != nil {
			logger.Debug("[STREAM] dial %s: %v", s.url, err)
		} else {
			logger.Info("[STREAM] connected to %s", s.url)
			s.read(ctx, conn, ch)
			conn.Close()
		}

		select {
		case <-ctx.Done():
			return
		case <-time.After(s.delay):
		}
	}
}

func (s *Stream) read(ctx context.Context, conn *websocket.Conn, ch chan<- models.A2AMessage) {
	// The watcher lives only as long as this connection.
	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
			conn.Close()
		case <-done:
		}
	}()

	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			logger.Debug("[STREAM] read: %v", err)
			return
		}

		var ev StreamEvent
		if err := json.Unmarshal(data, &ev); err != nil {
			logger.Debug("[STREAM] bad event: %v", err)
			continue
		}
		if ev.Type != "a2a_message" || ev.Message == nil {
			continue
		}

		select {
		case ch <- *ev.Message:
		default:
		}
	}
}
