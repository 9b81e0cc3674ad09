// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package storage

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// =============================================================================
// BACKEND CONFORMANCE
// =============================================================================

func TestKV_Backends(t *testing.T) {
	for _, backend := range Backends {
		backend := backend
		t.Run(backend, func(t *testing.T) {
			kv, err := Open(Config{Backend: backend, Dir: t.TempDir()})
			require.NoError(t, err)

			_, found, err := kv.Get(DefaultKey)
			require.NoError(t, err)
			assert.False(t, found, "fresh store should not have the slot")

			require.NoError(t, kv.Set(DefaultKey, []byte(`{"cues":"a"}`)))
			require.NoError(t, kv.Set(DefaultKey, []byte(`{"cues":"b"}`)))

			got, found, err := kv.Get(DefaultKey)
			require.NoError(t, err)
			require.True(t, found)
			assert.Equal(t, `{"cues":"b"}`, string(got))

			require.NoError(t, kv.Close())

			_, _, err = kv.Get(DefaultKey)
			assert.True(t, errors.Is(err, ErrClosed), "Get after Close = %v", err)
			assert.True(t, errors.Is(kv.Set(DefaultKey, nil), ErrClosed))
		})
	}
}

func TestKV_PersistsAcrossReopen(t *testing.T) {
	for _, backend := range []string{BackendFile, BackendSQLite, BackendBadger} {
		backend := backend
		t.Run(backend, func(t *testing.T) {
			dir := t.TempDir()

			kv, err := Open(Config{Backend: backend, Dir: dir})
			require.NoError(t, err)
			require.NoError(t, kv.Set("slot", []byte("kept")))
			require.NoError(t, kv.Close())

			kv, err = Open(Config{Backend: backend, Dir: dir})
			require.NoError(t, err)
			defer kv.Close()

			got, found, err := kv.Get("slot")
			require.NoError(t, err)
			require.True(t, found)
			assert.Equal(t, "kept", string(got))
		})
	}
}

func TestOpen_Errors(t *testing.T) {
	_, err := Open(Config{Backend: "floppy", Dir: t.TempDir()})
	assert.Error(t, err)

	_, err = Open(Config{Backend: BackendFile})
	assert.Error(t, err, "file backend without a directory")

	kv, err := Open(Config{Backend: " MEMORY "})
	require.NoError(t, err)
	assert.IsType(t, &MemoryKV{}, kv)
}

func TestOpen_DefaultsToFile(t *testing.T) {
	kv, err := Open(Config{Dir: t.TempDir()})
	require.NoError(t, err)
	assert.IsType(t, &FileKV{}, kv)
}

func TestIsBackend(t *testing.T) {
	tests := []struct {
		name string
		want bool
	}{
		{"file", true},
		{"SQLite", true},
		{"badger", true},
		{"memory", true},
		{"redis", false},
		{"", false},
	}
	for _, tt := range tests {
		if got := IsBackend(tt.name); got != tt.want {
			t.Errorf("IsBackend(%q) = %v, want %v", tt.name, got, tt.want)
		}
	}
}

// =============================================================================
// FILE BACKEND
// =============================================================================

func TestFileKV_Layout(t *testing.T) {
	dir := t.TempDir()
	kv, err := NewFileKV(dir)
	require.NoError(t, err)

	require.NoError(t, kv.Set("cornell-notes", []byte("{}")))

	data, err := os.ReadFile(filepath.Join(dir, "cornell-notes.json"))
	require.NoError(t, err)
	assert.Equal(t, "{}", string(data))
}

func TestFileKV_RejectsPathKeys(t *testing.T) {
	kv, err := NewFileKV(t.TempDir())
	require.NoError(t, err)

	for _, key := range []string{"", "..", "../escape", `a\b`, "a/b"} {
		if err := kv.Set(key, []byte("x")); err == nil {
			t.Errorf("Set(%q) should fail", key)
		}
	}
}

func TestMemoryKV_CopiesValues(t *testing.T) {
	kv := NewMemoryKV()
	value := []byte("abc")
	require.NoError(t, kv.Set("k", value))
	value[0] = 'x'

	got, _, _ := kv.Get("k")
	assert.Equal(t, "abc", string(got))
	assert.Equal(t, 1, kv.Writes())
}
