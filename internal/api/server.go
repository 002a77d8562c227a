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
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"

	"github.com/fraudshield/fraudwatch/internal/api/handlers"
	"github.com/fraudshield/fraudwatch/internal/api/middleware"
	"github.com/fraudshield/fraudwatch/internal/config"
	"github.com/fraudshield/fraudwatch/pkg/logger"
)

// Server is the embedded demo backend: it serves the same status routes
// the real FraudShield API exposes, backed by the local simulation, plus
// a websocket feed of emitted protocol messages.
type Server struct {
	cfg        *config.Config
	sim        *Simulation
	httpServer *http.Server

	mu      sync.Mutex
	clients map[*websocket.Conn]struct{}
	stop    chan struct{}
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

func NewServer(cfg *config.Config, sim *Simulation) *Server {
	return &Server{
		cfg:     cfg,
		sim:     sim,
		clients: make(map[*websocket.Conn]struct{}),
		stop:    make(chan struct{}),
	}
}

func (s *Server) Start() error {
	router := s.setupRoutes()
	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf("%s:%d", s.cfg.Demo.Host, s.cfg.Demo.Port),
		Handler:      router,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	logger.Info("[DEMO] Status API on %s", s.httpServer.Addr)

	go s.runSimulation()

	go func() {
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("[DEMO] %v", err)
		}
	}()

	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	close(s.stop)

	s.mu.Lock()
	for conn := range s.clients {
		conn.Close()
	}
	s.clients = make(map[*websocket.Conn]struct{})
	s.mu.Unlock()

	if s.httpServer != nil {
		return s.httpServer.Shutdown(ctx)
	}
	return nil
}

func (s *Server) setupRoutes() http.Handler {
	r := mux.NewRouter()
	status := handlers.NewStatusHandler(s.sim)
	r.HandleFunc("/api/agents/list", status.ListAgents).Methods("GET")
	r.HandleFunc("/api/agents/status", status.SystemStatus).Methods("GET")
	r.HandleFunc("/api/agents/a2a/status", status.A2AStatus).Methods("GET")
	r.HandleFunc("/api/agents/{agent_id}", status.Agent).Methods("GET")
	r.HandleFunc("/ws", s.handleWS)
	return middleware.Recovery(middleware.Logging(r))
}

func (s *Server) handleWS(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		logger.Warn("[DEMO] ws upgrade: %v", err)
		return
	}

	s.mu.Lock()
	s.clients[conn] = struct{}{}
	s.mu.Unlock()

	logger.Debug("[DEMO] ws client connected: %s", r.RemoteAddr)

	// Drain control frames; the feed is push-only.
	go func() {
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				s.dropClient(conn)
				return
			}
		}
	}()
}

func (s *Server) dropClient(conn *websocket.Conn) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.clients[conn]; ok {
		delete(s.clients, conn)
		conn.Close()
	}
}

func (s *Server) runSimulation() {
	ticker := time.NewTicker(3 * time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-s.stop:
			return
		case <-ticker.C:
			msg := s.sim.Step()
			s.broadcast(StreamEvent{Type: "a2a_message", Message: &msg})
		}
	}
}

func (s *Server) broadcast(ev StreamEvent) {
	s.mu.Lock()
	conns := make([]*websocket.Conn, 0, len(s.clients))
	for conn := range s.clients {
		conns = append(conns, conn)
	}
	s.mu.Unlock()

	for _, conn := range conns {
		if err := conn.WriteJSON(ev); err != nil {
			s.dropClient(conn)
		}
	}
}
