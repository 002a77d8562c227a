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
package main

import (
	"fmt"
	"os"

	"github.com/fraudshield/fraudwatch/internal/cli"
	"github.com/fraudshield/fraudwatch/pkg/logger"
)

func main() {
	if err := logger.Init(os.Getenv("FRAUDWATCH_LOG"), "info"); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}

	logger.Info("Starting FraudWatch")

	if err := cli.Execute(); err != nil {
		logger.Error("Fatal error: %v", err)
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
