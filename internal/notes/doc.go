// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package notes contains the Cornell note set and its immutable snapshots.
//
// # Key Types
//
//   - NoteSet: the live cues/notes/summary text plus the last-saved time
//   - Snapshot: a value copy of the three fields taken at a point in time
//   - Field: enumeration of the three regions of a Cornell page
//
// # Usage
//
// Mutate the live set through setters and hand snapshots to effects:
//
//	var set notes.NoteSet
//	set.Set(notes.FieldCues, "photosynthesis?")
//	snap := set.Snapshot(time.Now())
//	store.Save(snap)
package notes
