// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package storage

import (
	"errors"
	"fmt"
	"path/filepath"
	"sync"

	"github.com/dgraph-io/badger/v4"
)

// BadgerDirName is the subdirectory of the data directory badger owns.
const BadgerDirName = "badger"

// BadgerKV stores slots in an embedded badger database.
type BadgerKV struct {
	db *badger.DB

	mu     sync.RWMutex
	closed bool
}

// NewBadgerKV opens (or creates) the database under <dir>/badger.
func NewBadgerKV(dir string) (*BadgerKV, error) {
	// Badger logs to stderr by default, which would draw over the TUI
	opts := badger.DefaultOptions(filepath.Join(dir, BadgerDirName)).WithLogger(nil)

	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open badger: %w", err)
	}
	return &BadgerKV{db: db}, nil
}

func (s *BadgerKV) Get(key string) ([]byte, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.closed {
		return nil, false, ErrClosed
	}

	var value []byte
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(key))
		if err != nil {
			return err
		}
		value, err = item.ValueCopy(nil)
		return err
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("read %s: %w", key, err)
	}
	return value, true, nil
}

func (s *BadgerKV) Set(key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return ErrClosed
	}

	err := s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(key), value)
	})
	if err != nil {
		return fmt.Errorf("write %s: %w", key, err)
	}
	// RELIABILITY: SyncWrites is off by default; flush the value log now
	if err := s.db.Sync(); err != nil {
		return fmt.Errorf("sync %s: %w", key, err)
	}
	return nil
}

func (s *BadgerKV) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil
	}
	s.closed = true
	return s.db.Close()
}
