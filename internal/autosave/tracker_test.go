// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package autosave

import (
	"testing"
	"time"
)

func TestTracker_States(t *testing.T) {
	tr := NewTracker(time.Time{})
	if tr.State() != StateUnsaved {
		t.Fatalf("new tracker state = %v, want unsaved", tr.State())
	}

	gen := tr.Saved(epoch)
	if tr.State() != StateSaving || !tr.IsSaving() {
		t.Fatalf("state after save = %v, want saving", tr.State())
	}

	tr.SavingDone(gen)
	if tr.State() != StateSaved {
		t.Fatalf("state after done = %v, want saved", tr.State())
	}
	if !tr.LastSaved().Equal(epoch) {
		t.Errorf("LastSaved = %v, want %v", tr.LastSaved(), epoch)
	}
}

func TestTracker_StaleDoneIsIgnored(t *testing.T) {
	tr := NewTracker(time.Time{})

	first := tr.Saved(epoch)
	tr.Saved(epoch.Add(time.Second))
	tr.SavingDone(first)

	if !tr.IsSaving() {
		t.Error("an earlier write's done signal must not lower the newer badge")
	}
}

func TestTracker_Feedback(t *testing.T) {
	tr := NewTracker(epoch)
	if tr.State() != StateSaved {
		t.Errorf("tracker seeded with a timestamp should be saved, got %v", tr.State())
	}

	g1 := tr.ShowFeedback()
	g2 := tr.ShowFeedback()
	tr.FeedbackDone(g1)
	if !tr.FeedbackActive() {
		t.Error("stale feedback generation cleared the badge")
	}
	tr.FeedbackDone(g2)
	if tr.FeedbackActive() {
		t.Error("feedback should be cleared")
	}
}
