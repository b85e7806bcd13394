// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package server

import (
	"log/slog"
	"net/http"
	"os"
	"strconv"
	"time"

	"golang.org/x/time/rate"

	"github.com/NVIDIA/semvercmp/pkg/defaults"
)

// Environment variables read by NewConfig.
const (
	EnvVarPort            = "PORT"
	EnvVarShutdownTimeout = "SHUTDOWN_TIMEOUT_SECONDS"
	EnvVarMaxBulkRequests = "MAX_BULK_REQUESTS"
)

// Config holds server configuration
type Config struct {
	// Server identity
	Name    string
	Version string

	// Additional Handlers to be added to the server
	Handlers map[string]http.HandlerFunc

	// Server configuration
	Address string
	Port    int

	// Rate limiting configuration
	RateLimit      rate.Limit // requests per second
	RateLimitBurst int        // burst size

	// Request limits
	MaxBulkRequests int

	// Timeouts
	ReadTimeout       time.Duration
	ReadHeaderTimeout time.Duration
	WriteTimeout      time.Duration
	IdleTimeout       time.Duration
	ShutdownTimeout   time.Duration
}

// NewConfig returns a new Config with defaults and environment overrides applied.
// Use this when you want to customize config programmatically.
func NewConfig() *Config {
	return parseConfig()
}

func parseConfig() *Config {
	cfg := &Config{
		Name:              "server",
		Version:           "undefined",
		Address:           "",
		Port:              8080,
		RateLimit:         defaults.ServerRateLimit,
		RateLimitBurst:    defaults.ServerRateLimitBurst,
		MaxBulkRequests:   defaults.MaxBulkVersions,
		ReadTimeout:       defaults.ServerReadTimeout,
		ReadHeaderTimeout: defaults.ServerReadHeaderTimeout,
		WriteTimeout:      defaults.ServerWriteTimeout,
		IdleTimeout:       defaults.ServerIdleTimeout,
		ShutdownTimeout:   defaults.ServerShutdownTimeout,
	}

	if v := os.Getenv(EnvVarPort); v != "" {
		port, err := strconv.Atoi(v)
		if err == nil && port > 0 && port <= 65535 {
			cfg.Port = port
		} else {
			slog.Warn("ignoring invalid port", "env", EnvVarPort, "value", v)
		}
	}

	// Allows matching the shutdown window to the orchestrator's grace period.
	if v := os.Getenv(EnvVarShutdownTimeout); v != "" {
		seconds, err := strconv.Atoi(v)
		if err == nil && seconds > 0 {
			cfg.ShutdownTimeout = time.Duration(seconds) * time.Second
		} else {
			slog.Warn("ignoring invalid shutdown timeout", "env", EnvVarShutdownTimeout, "value", v)
		}
	}

	if v := os.Getenv(EnvVarMaxBulkRequests); v != "" {
		n, err := strconv.Atoi(v)
		if err == nil && n > 0 {
			cfg.MaxBulkRequests = n
		} else {
			slog.Warn("ignoring invalid bulk request limit", "env", EnvVarMaxBulkRequests, "value", v)
		}
	}

	return cfg
}
