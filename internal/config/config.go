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

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"
)

type Config struct {
	API     APIConfig     `yaml:"api"`
	Refresh RefreshConfig `yaml:"refresh"`
	Demo    DemoConfig    `yaml:"demo"`
	Data    DataConfig    `yaml:"data"`
	Log     LogConfig     `yaml:"log"`
}

type APIConfig struct {
	BaseURL        string `yaml:"base_url"`
	TimeoutSeconds int    `yaml:"timeout_seconds"`
	StreamPath     string `yaml:"stream_path"`
}

type RefreshConfig struct {
	IntervalSeconds int `yaml:"interval_seconds"`
}

type DemoConfig struct {
	Enabled bool   `yaml:"enabled"`
	Host    string `yaml:"host"`
	Port    int    `yaml:"port"`
}

type DataConfig struct {
	Dir string `yaml:"dir"`
}

type LogConfig struct {
	Path  string `yaml:"path"`
	Level string `yaml:"level"`
}

var (
	DefaultConfigPath = "/etc/fraudwatch/config.yaml"
	DefaultDataDir    = "/var/lib/fraudwatch"
)

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	cfg.setDefaults()
	cfg.ApplyEnv()
	return &cfg, nil
}

func (c *Config) setDefaults() {
	if c.API.BaseURL == "" {
		c.API.BaseURL = "http://127.0.0.1:8000"
	}
	if c.API.TimeoutSeconds == 0 {
		c.API.TimeoutSeconds = 5
	}
	if c.API.StreamPath == "" {
		c.API.StreamPath = "/ws"
	}
	if c.Refresh.IntervalSeconds == 0 {
		c.Refresh.IntervalSeconds = 5
	}
	if c.Demo.Host == "" {
		c.Demo.Host = "127.0.0.1"
	}
	if c.Demo.Port == 0 {
		c.Demo.Port = 8600
	}
	if c.Data.Dir == "" {
		c.Data.Dir = DefaultDataDir
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
}

// ApplyEnv lets environment variables (including ones loaded from a .env
// file) override the file-based settings.
func (c *Config) ApplyEnv() {
	if v := os.Getenv("FRAUDWATCH_API_URL"); v != "" {
		c.API.BaseURL = v
	}
	if v := os.Getenv("FRAUDWATCH_REFRESH"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			c.Refresh.IntervalSeconds = n
		}
	}
	if v := os.Getenv("FRAUDWATCH_DATA_DIR"); v != "" {
		c.Data.Dir = v
	}
	if v := os.Getenv("FRAUDWATCH_DEMO"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			c.Demo.Enabled = b
		}
	}
	if v := os.Getenv("FRAUDWATCH_LOG_LEVEL"); v != "" {
		c.Log.Level = v
	}
}

func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("write config: %w", err)
	}

	return nil
}

func Default() *Config {
	cfg := &Config{}
	cfg.setDefaults()
	return cfg
}
