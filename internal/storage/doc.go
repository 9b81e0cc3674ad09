// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package storage persists the note set for the cornell TUI.
//
// Notes live in a single slot of a small key-value store. The slot holds a
// JSON blob with the three text fields and the time of the last save.
//
// # Key Types
//
//   - KV: Minimal key-value store (file, sqlite, badger, memory backends)
//   - NoteStore: Loads and saves the note set in one slot of a KV
//   - StorageParseError: Returned when the stored blob cannot be decoded
//
// # Usage
//
// Open the configured backend and load the notes:
//
//	kv, err := storage.Open(storage.Config{Backend: storage.BackendFile, Dir: dataDir})
//	store := storage.NewNoteStore(kv, "cornell-notes")
//	set, found, err := store.Load()
//
// Save a snapshot:
//
//	saved, err := store.Save(set.Snapshot(time.Now()))
//
// # Storage Location
//
// By default the slot is stored in ~/.cornell/data/cornell-notes.json.
package storage
