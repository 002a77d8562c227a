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
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/fraudshield/fraudwatch/internal/models"
)

// Client fetches status snapshots from the FraudShield backend. Each
// fetch is independent; the views treat any error the same as an empty
// payload and fall back to their sample dataset.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
}

func (c *Client) get(ctx context.Context, path string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request %s: %w", path, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status %d for %s", resp.StatusCode, path)
	}

	if len(body) == 0 {
		return fmt.Errorf("empty response for %s", path)
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("unmarshal response: %w", err)
	}
	return nil
}

func (c *Client) FetchAgents(ctx context.Context) ([]models.Agent, error) {
	var agents []models.Agent
	if err := c.get(ctx, "/api/agents/list", &agents); err != nil {
		return nil, err
	}
	return agents, nil
}

func (c *Client) FetchA2AStatus(ctx context.Context) (*models.A2AStatus, error) {
	var status models.A2AStatus
	if err := c.get(ctx, "/api/agents/a2a/status", &status); err != nil {
		return nil, err
	}
	return &status, nil
}

func (c *Client) FetchSystemStatus(ctx context.Context) (*models.SystemStatus, error) {
	var status models.SystemStatus
	if err := c.get(ctx, "/api/agents/status", &status); err != nil {
		return nil, err
	}
	return &status, nil
}
