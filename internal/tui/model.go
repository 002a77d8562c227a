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

package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/fraudshield/fraudwatch/internal/api"
	"github.com/fraudshield/fraudwatch/internal/config"
	"github.com/fraudshield/fraudwatch/internal/models"
	"github.com/fraudshield/fraudwatch/internal/storage"
	"github.com/fraudshield/fraudwatch/internal/tui/views"
)

type ViewState int

const (
	ViewDashboard ViewState = iota
	ViewAgents
	ViewProtocol
	ViewSystem
	ViewStats
	ViewHistory
)

// streamChannel carries protocol messages pushed by the websocket feed
// into the bubbletea loop.
var streamChannel = make(chan models.A2AMessage, 100)

func StreamChannel() chan<- models.A2AMessage {
	return streamChannel
}

func waitForStream() tea.Msg {
	return views.StreamMsg(<-streamChannel)
}

type Model struct {
	ActiveView ViewState
	Width      int
	Height     int
	Ready      bool

	Dashboard views.DashboardModel
	Agents    views.AgentsModel
	Protocol  views.ProtocolModel
	System    views.SystemModel
	Stats     views.StatsModel
	History   views.HistoryModel
}

func NewModel(client *api.Client, store storage.Store, cfg *config.Config) Model {
	refresh := time.Duration(cfg.Refresh.IntervalSeconds) * time.Second

	return Model{
		ActiveView: ViewDashboard,
		Dashboard:  views.NewDashboardModel(client, store, refresh),
		Agents:     views.NewAgentsModel(client),
		Protocol:   views.NewProtocolModel(client, store),
		System:     views.NewSystemModel(client, store),
		Stats:      views.NewStatsModel(),
		History:    views.NewHistoryModel(store),
	}
}

func (m *Model) Init() tea.Cmd {
	return tea.Batch(m.Dashboard.Init(), waitForStream)
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case views.StreamMsg:
		cmds = append(cmds, waitForStream)
		// The protocol view accumulates the live log even while another
		// view is on screen.
		var newModel tea.Model
		newModel, cmd = m.Protocol.Update(msg)
		m.Protocol = newModel.(views.ProtocolModel)
		cmds = append(cmds, cmd)
		return m, tea.Batch(cmds...)

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "q":
			if m.ActiveView == ViewAgents && m.Agents.ModalOpen() {
				break
			}
			return m, tea.Quit
		case "esc":
			if m.ActiveView == ViewAgents && m.Agents.ModalOpen() {
				break
			}
			if m.ActiveView != ViewDashboard {
				m.ActiveView = ViewDashboard
				return m, m.Dashboard.Init()
			}
		case "tab":
			switch m.ActiveView {
			case ViewDashboard:
				m.ActiveView = ViewAgents
				cmd = m.Agents.Init()
			case ViewAgents:
				m.ActiveView = ViewProtocol
				cmd = m.Protocol.Init()
			case ViewProtocol:
				m.ActiveView = ViewSystem
				cmd = m.System.Init()
			case ViewSystem:
				m.ActiveView = ViewStats
				cmd = m.Stats.Init()
			case ViewStats:
				m.ActiveView = ViewHistory
				cmd = m.History.Init()
			default:
				m.ActiveView = ViewDashboard
				cmd = m.Dashboard.Init()
			}
			return m, cmd
		case "a":
			if m.ActiveView == ViewDashboard {
				m.ActiveView = ViewAgents
				return m, m.Agents.Init()
			}
		case "p":
			if m.ActiveView == ViewDashboard {
				m.ActiveView = ViewProtocol
				return m, m.Protocol.Init()
			}
		case "s":
			if m.ActiveView == ViewDashboard {
				m.ActiveView = ViewSystem
				return m, m.System.Init()
			}
		case "t":
			if m.ActiveView == ViewDashboard {
				m.ActiveView = ViewStats
				return m, m.Stats.Init()
			}
		case "h":
			if m.ActiveView == ViewDashboard {
				m.ActiveView = ViewHistory
				return m, m.History.Init()
			}
		}

	case tea.WindowSizeMsg:
		m.Width = msg.Width
		m.Height = msg.Height
		m.Ready = true
		m.Dashboard.Width = msg.Width
		m.Dashboard.Height = msg.Height
		m.Agents.Width = msg.Width
		m.Agents.Height = msg.Height
		m.Protocol.Width = msg.Width
		m.Protocol.Height = msg.Height
		m.System.Width = msg.Width
		m.System.Height = msg.Height
		m.Stats.Width = msg.Width
		m.Stats.Height = msg.Height
		m.History.Width = msg.Width
		m.History.Height = msg.Height
	}

	switch m.ActiveView {
	case ViewDashboard:
		var newModel tea.Model
		newModel, cmd = m.Dashboard.Update(msg)
		m.Dashboard = newModel.(views.DashboardModel)
		cmds = append(cmds, cmd)
	case ViewAgents:
		var newModel tea.Model
		newModel, cmd = m.Agents.Update(msg)
		m.Agents = newModel.(views.AgentsModel)
		cmds = append(cmds, cmd)
	case ViewProtocol:
		var newModel tea.Model
		newModel, cmd = m.Protocol.Update(msg)
		m.Protocol = newModel.(views.ProtocolModel)
		cmds = append(cmds, cmd)
	case ViewSystem:
		var newModel tea.Model
		newModel, cmd = m.System.Update(msg)
		m.System = newModel.(views.SystemModel)
		cmds = append(cmds, cmd)
	case ViewStats:
		var newModel tea.Model
		newModel, cmd = m.Stats.Update(msg)
		m.Stats = newModel.(views.StatsModel)
		cmds = append(cmds, cmd)
	case ViewHistory:
		var newModel tea.Model
		newModel, cmd = m.History.Update(msg)
		m.History = newModel.(views.HistoryModel)
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

func (m *Model) View() string {
	if !m.Ready {
		return ""
	}
	switch m.ActiveView {
	case ViewAgents:
		return m.Agents.View()
	case ViewProtocol:
		return m.Protocol.View()
	case ViewSystem:
		return m.System.View()
	case ViewStats:
		return m.Stats.View()
	case ViewHistory:
		return m.History.View()
	default:
		return m.Dashboard.View()
	}
}
