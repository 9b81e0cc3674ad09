// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package notes

import (
	"testing"
	"time"
)

func TestNoteSet_SetReportsChange(t *testing.T) {
	var set NoteSet

	if !set.Set(FieldCues, "cell wall?") {
		t.Error("Set should report a change for new text")
	}
	if set.Set(FieldCues, "cell wall?") {
		t.Error("Set should not report a change for identical text")
	}
	if set.Get(FieldCues) != "cell wall?" {
		t.Errorf("Get(FieldCues) = %q, want %q", set.Get(FieldCues), "cell wall?")
	}
	if set.Set(Field(42), "x") {
		t.Error("Set on an unknown field should be a no-op")
	}
}

func TestNoteSet_ClearKeepsSavedAt(t *testing.T) {
	saved := time.Date(2026, 10, 19, 9, 30, 0, 0, time.UTC)
	set := NoteSet{Cues: "a", Notes: "b", Summary: "c", SavedAt: saved}

	set.Clear()

	if !set.IsEmpty() {
		t.Errorf("expected empty set after Clear, got %+v", set)
	}
	if !set.SavedAt.Equal(saved) {
		t.Errorf("SavedAt = %v, want %v", set.SavedAt, saved)
	}
}

func TestSnapshot_IsDetachedFromLiveSet(t *testing.T) {
	set := NoteSet{Cues: "before"}
	snap := set.Snapshot(time.Now())

	set.Set(FieldCues, "after")

	if snap.Cues() != "before" {
		t.Errorf("snapshot changed with live set: %q", snap.Cues())
	}
}

func TestSnapshot_FieldAndWordCount(t *testing.T) {
	snap := NewSnapshot("one two", "three", "four five six", time.Time{})

	for _, f := range Fields {
		if snap.Field(f) == "" {
			t.Errorf("Field(%s) should not be empty", f)
		}
	}
	if got := snap.WordCount(); got != 6 {
		t.Errorf("WordCount() = %d, want 6", got)
	}
	if snap.IsEmpty() {
		t.Error("snapshot with text should not be empty")
	}
}

func TestField_Cycle(t *testing.T) {
	if FieldSummary.Next() != FieldCues {
		t.Errorf("FieldSummary.Next() = %v, want FieldCues", FieldSummary.Next())
	}
	if FieldCues.Prev() != FieldSummary {
		t.Errorf("FieldCues.Prev() = %v, want FieldSummary", FieldCues.Prev())
	}
	if FieldNotes.String() != "notes" {
		t.Errorf("FieldNotes.String() = %q", FieldNotes.String())
	}
}

func TestNoteSet_EqualIgnoresSavedAt(t *testing.T) {
	a := NoteSet{Cues: "c", Notes: "n", Summary: "s", SavedAt: time.Now()}
	b := NoteSet{Cues: "c", Notes: "n", Summary: "s"}

	if !a.Equal(b) {
		t.Error("sets with the same text should be equal")
	}
	b.Summary = "other"
	if a.Equal(b) {
		t.Error("sets with different summaries should not be equal")
	}
}

func TestNoteSet_ReadersWorkOnReturnedValues(t *testing.T) {
	at := time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)
	saved := func() NoteSet {
		return NoteSet{Cues: "mitosis", SavedAt: at}
	}

	if saved().IsEmpty() {
		t.Error("IsEmpty() = true for a set with cues")
	}
	if !saved().HasBeenSaved() {
		t.Error("HasBeenSaved() = false with a timestamp")
	}
	if got := saved().Get(FieldCues); got != "mitosis" {
		t.Errorf("Get(FieldCues) = %q", got)
	}
	if !saved().Equal(NoteSet{Cues: "mitosis"}) {
		t.Error("Equal() should ignore SavedAt")
	}
	if got := saved().Snapshot(at).Cues(); got != "mitosis" {
		t.Errorf("Snapshot().Cues() = %q", got)
	}
}
