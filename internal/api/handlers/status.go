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

package handlers

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/fraudshield/fraudwatch/internal/models"
	"github.com/fraudshield/fraudwatch/pkg/helper"
)

// StatusSource is what the demo simulation exposes to the HTTP layer.
type StatusSource interface {
	Agents() []models.Agent
	A2AStatus() models.A2AStatus
	SystemStatus() models.SystemStatus
}

type StatusHandler struct {
	source StatusSource
}

func NewStatusHandler(source StatusSource) *StatusHandler {
	return &StatusHandler{source: source}
}

func (h *StatusHandler) ListAgents(w http.ResponseWriter, r *http.Request) {
	helper.WriteJSON(w, http.StatusOK, h.source.Agents())
}

func (h *StatusHandler) A2AStatus(w http.ResponseWriter, r *http.Request) {
	helper.WriteJSON(w, http.StatusOK, h.source.A2AStatus())
}

func (h *StatusHandler) SystemStatus(w http.ResponseWriter, r *http.Request) {
	helper.WriteJSON(w, http.StatusOK, h.source.SystemStatus())
}

func (h *StatusHandler) Agent(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["agent_id"]
	for _, a := range h.source.Agents() {
		if a.ID == id {
			helper.WriteJSON(w, http.StatusOK, a)
			return
		}
	}
	helper.WriteError(w, http.StatusNotFound, "agent not found")
}
