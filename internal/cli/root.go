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

package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/fraudshield/fraudwatch/internal/api"
	"github.com/fraudshield/fraudwatch/internal/config"
	"github.com/fraudshield/fraudwatch/internal/storage/sqlite"
	"github.com/fraudshield/fraudwatch/internal/tui"
	"github.com/fraudshield/fraudwatch/pkg/helper"
	"github.com/fraudshield/fraudwatch/pkg/logger"
)

const version = "1.0.0"

var (
	cfgPath  string
	demoFlag bool
	cfg      *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "fraudwatch",
	Short: "FraudWatch - Fraud Detection Monitoring Dashboard",
	Long:  `FraudWatch is a terminal dashboard for monitoring a fraud detection agent fleet and its A2A protocol traffic.`,
	Run:   runApplication,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the fraudwatch version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("fraudwatch %s\n", version)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", "", "config file path")
	rootCmd.Flags().BoolVar(&demoFlag, "demo", false, "run against a built-in simulated backend")
	rootCmd.AddCommand(versionCmd)
}

func initConfig() {
	// Optional .env for local overrides, missing file is fine.
	_ = godotenv.Load()

	if cfgPath == "" {
		cfgPath = os.Getenv("FRAUDWATCH_CONFIG")
	}
	if cfgPath == "" {
		cfgPath = config.DefaultConfigPath
	}

	if helper.Exists(cfgPath) {
		var err error
		cfg, err = config.Load(cfgPath)
		if err != nil {
			fmt.Printf("Warning: Failed to load config: %v\n", err)
		}
	}
	if cfg == nil {
		cfg = config.Default()
	}
	cfg.ApplyEnv()

	// FRAUDWATCH_LOG, applied at startup, wins over the config file.
	if cfg.Log.Path != "" && os.Getenv("FRAUDWATCH_LOG") == "" {
		if err := logger.Init(cfg.Log.Path, cfg.Log.Level); err != nil {
			fmt.Printf("Warning: Failed to open log file: %v\n", err)
			logger.SetLevel(cfg.Log.Level)
		}
	} else {
		logger.SetLevel(cfg.Log.Level)
	}
}

func runApplication(cmd *cobra.Command, args []string) {
	if demoFlag {
		cfg.Demo.Enabled = true
	}

	store, err := sqlite.New(cfg.Data.Dir)
	if err != nil {
		fmt.Printf("Error initializing database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var server *api.Server
	if cfg.Demo.Enabled {
		server = api.NewServer(cfg, api.NewSimulation())
		go func() {
			if err := server.Start(); err != nil {
				logger.Error("demo backend: %v", err)
			}
		}()
		cfg.API.BaseURL = fmt.Sprintf("http://%s:%d", cfg.Demo.Host, cfg.Demo.Port)
		// Give the listener a moment before the first fetch.
		time.Sleep(100 * time.Millisecond)
	}

	client := api.NewClient(cfg.API.BaseURL, time.Duration(cfg.API.TimeoutSeconds)*time.Second)

	stream := api.NewStream(cfg.API.BaseURL, cfg.API.StreamPath)
	go stream.Run(ctx, tui.StreamChannel())

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-sigChan
		cancel()
		shutdown(server)
		os.Exit(0)
	}()

	if err := tui.Run(client, store, cfg); err != nil {
		fmt.Printf("TUI Error: %v\n", err)
		cancel()
		shutdown(server)
		os.Exit(1)
	}

	cancel()
	shutdown(server)
}

func shutdown(server *api.Server) {
	if server == nil {
		return
	}
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	server.Shutdown(shutdownCtx)
}
