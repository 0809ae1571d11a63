// Copyright (c) 2023 Arista Networks, Inc.
// Use of this source code is governed by the Apache License 2.0
// that can be found in the COPYING file.

package pipeline

import (
	"fmt"

	"gopkg.in/yaml.v2"
)

const (
	defaultBlockSize       = 64 * 1024
	defaultQueueSize       = 16
	defaultSymbolCacheSize = 1024
)

// Config is the representation of tickstream's YAML config file.
type Config struct {
	// BlockSize is the number of bytes read from the input per chunk
	// handed to the producer/consumer channel.
	BlockSize int `yaml:"block-size"`

	// QueueSize is the capacity of the channel connecting the producer
	// goroutine reading the input to the consumer goroutine parsing it.
	QueueSize int `yaml:"queue-size"`

	// SymbolCacheSize bounds the number of distinct symbols tracked by
	// the recency cache before the least-recently-seen is evicted.
	SymbolCacheSize int `yaml:"symbol-cache-size"`

	// ListenAddr is read from the config file, e.g. ":8080". The
	// tickstream command does not consult it: its metrics server always
	// listens on the address given by the -listenaddr flag.
	ListenAddr string `yaml:"listen-addr"`

	// MetricsPath is the URL path the metrics are served under.
	MetricsPath string `yaml:"metrics-path"`
}

// ParseConfig parses a YAML config file, filling in defaults for any
// field the file leaves unset.
func ParseConfig(data []byte) (*Config, error) {
	cfg := &Config{
		BlockSize:       defaultBlockSize,
		QueueSize:       defaultQueueSize,
		SymbolCacheSize: defaultSymbolCacheSize,
		MetricsPath:     "/metrics",
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %v", err)
	}
	if cfg.BlockSize <= 0 {
		return nil, fmt.Errorf("block-size must be positive, got %d", cfg.BlockSize)
	}
	if cfg.QueueSize <= 0 {
		return nil, fmt.Errorf("queue-size must be positive, got %d", cfg.QueueSize)
	}
	if cfg.SymbolCacheSize <= 0 {
		return nil, fmt.Errorf("symbol-cache-size must be positive, got %d", cfg.SymbolCacheSize)
	}
	return cfg, nil
}
