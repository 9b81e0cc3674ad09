// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package storage

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"

	"github.com/jeranaias/cornell-tui/internal/notes"
)

// DefaultKey is the slot the note set is stored under.
const DefaultKey = "cornell-notes"

// TimestampLayout is RFC 3339 in UTC with millisecond precision.
const TimestampLayout = "2006-01-02T15:04:05.000Z"

// =============================================================================
// STORED RECORD
// =============================================================================

// record is the persisted blob. Field order is fixed so encoding is
// deterministic.
type record struct {
	Cues      string `json:"cues"`
	Notes     string `json:"notes"`
	Summary   string `json:"summary"`
	Timestamp string `json:"timestamp"`
}

// Encode serializes a snapshot stamped with savedAt.
func Encode(snap notes.Snapshot, savedAt time.Time) ([]byte, error) {
	rec := record{
		Cues:      snap.Cues(),
		Notes:     snap.Notes(),
		Summary:   snap.Summary(),
		Timestamp: savedAt.UTC().Format(TimestampLayout),
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	// Notes are prose; keep <, > and & readable in the file
	enc.SetEscapeHTML(false)
	if err := enc.Encode(rec); err != nil {
		return nil, err
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}

// Decode parses a stored blob. Missing text fields decode as empty and a
// missing or malformed timestamp leaves SavedAt zero. Anything that is not
// a JSON object is a *StorageParseError.
func Decode(key string, data []byte) (notes.NoteSet, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return notes.NoteSet{}, &StorageParseError{Key: key, Err: fmt.Errorf("stored value is not a JSON object")}
	}

	var rec record
	if err := json.Unmarshal(trimmed, &rec); err != nil {
		return notes.NoteSet{}, &StorageParseError{Key: key, Err: err}
	}

	set := notes.NoteSet{
		Cues:    rec.Cues,
		Notes:   rec.Notes,
		Summary: rec.Summary,
	}
	if rec.Timestamp != "" {
		if ts, err := time.Parse(time.RFC3339Nano, rec.Timestamp); err == nil {
			set.SavedAt = ts.UTC()
		}
	}
	return set, nil
}

// =============================================================================
// NOTE STORE
// =============================================================================

// NoteStore keeps the note set in one slot of a KV.
type NoteStore struct {
	kv  KV
	key string

	// Now stamps saves. Tests replace it.
	Now func() time.Time
}

// NewNoteStore returns a store for the given slot. An empty key selects
// DefaultKey.
func NewNoteStore(kv KV, key string) *NoteStore {
	if key == "" {
		key = DefaultKey
	}
	return &NoteStore{kv: kv, key: key, Now: time.Now}
}

// Key returns the slot name.
func (s *NoteStore) Key() string { return s.key }

// Load reads the slot. A missing slot returns found=false and no error.
// A corrupt slot returns an empty set and a *StorageParseError.
func (s *NoteStore) Load() (notes.NoteSet, bool, error) {
	data, found, err := s.kv.Get(s.key)
	if err != nil {
		return notes.NoteSet{}, false, fmt.Errorf("load notes: %w", err)
	}
	if !found {
		return notes.NoteSet{}, false, nil
	}

	set, err := Decode(s.key, data)
	if err != nil {
		return notes.NoteSet{}, true, err
	}
	return set, true, nil
}

// Save overwrites the slot with snap and returns the set as persisted.
func (s *NoteStore) Save(snap notes.Snapshot) (notes.NoteSet, error) {
	savedAt := s.Now().UTC().Truncate(time.Millisecond)

	data, err := Encode(snap, savedAt)
	if err != nil {
		return notes.NoteSet{}, fmt.Errorf("encode notes: %w", err)
	}
	if err := s.kv.Set(s.key, data); err != nil {
		return notes.NoteSet{}, fmt.Errorf("save notes: %w", err)
	}
	return snap.NoteSet(savedAt), nil
}

// Raw returns the stored blob as-is.
func (s *NoteStore) Raw() ([]byte, bool, error) {
	return s.kv.Get(s.key)
}

// Close closes the underlying KV.
func (s *NoteStore) Close() error {
	return s.kv.Close()
}

// =============================================================================
// ERRORS
// =============================================================================

// StorageParseError reports a stored blob that could not be decoded.
// Use errors.As to inspect it, or errors.Is(err, &StorageParseError{}).
type StorageParseError struct {
	Key string
	Err error
}

// Error implements the error interface.
func (e *StorageParseError) Error() string {
	return fmt.Sprintf("parse stored notes %q: %v", e.Key, e.Err)
}

// Unwrap returns the decode error.
func (e *StorageParseError) Unwrap() error { return e.Err }

// Is matches any *StorageParseError.
func (e *StorageParseError) Is(target error) bool {
	_, ok := target.(*StorageParseError)
	return ok
}
