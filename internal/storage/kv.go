// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package storage

import (
	"errors"
	"fmt"
	"strings"
)

// =============================================================================
// KEY-VALUE STORE
// =============================================================================

// KV is the key-value store a NoteStore writes its slot into.
// Implementations must be safe for use from multiple goroutines.
type KV interface {
	// Get returns the value stored under key. A missing key is not an
	// error: found is false and err is nil.
	Get(key string) (value []byte, found bool, err error)

	// Set stores value under key, replacing any previous value.
	Set(key string, value []byte) error

	// Close releases the store. Further calls return ErrClosed.
	Close() error
}

// Backend names accepted by Open.
const (
	BackendFile   = "file"
	BackendSQLite = "sqlite"
	BackendBadger = "badger"
	BackendMemory = "memory"
)

// Backends lists every backend name Open understands.
var Backends = []string{BackendFile, BackendSQLite, BackendBadger, BackendMemory}

// ErrClosed is returned by a KV used after Close.
var ErrClosed = errors.New("storage closed")

// Config selects and locates a backend.
type Config struct {
	// Backend is one of the Backend* constants. Empty means file.
	Backend string

	// Dir is the data directory. Ignored by the memory backend.
	Dir string
}

// Open creates the KV described by cfg.
func Open(cfg Config) (KV, error) {
	backend := strings.ToLower(strings.TrimSpace(cfg.Backend))
	if backend == "" {
		backend = BackendFile
	}

	if backend != BackendMemory && cfg.Dir == "" {
		return nil, fmt.Errorf("open %s store: data directory not set", backend)
	}

	switch backend {
	case BackendFile:
		return NewFileKV(cfg.Dir)
	case BackendSQLite:
		return NewSQLiteKV(cfg.Dir)
	case BackendBadger:
		return NewBadgerKV(cfg.Dir)
	case BackendMemory:
		return NewMemoryKV(), nil
	default:
		return nil, fmt.Errorf("unknown storage backend %q (want one of %s)",
			cfg.Backend, strings.Join(Backends, ", "))
	}
}

// IsBackend reports whether name is a known backend.
func IsBackend(name string) bool {
	name = strings.ToLower(strings.TrimSpace(name))
	for _, b := range Backends {
		if b == name {
			return true
		}
	}
	return false
}
