// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package autosave

import "time"

const (
	// DefaultIndicatorDuration is how long the "saving" badge stays up.
	// It is cosmetic and unrelated to how long the write takes.
	DefaultIndicatorDuration = time.Second

	// DefaultFeedbackDuration is how long "Saved!" shows after a manual save.
	DefaultFeedbackDuration = 1500 * time.Millisecond
)

// State is what the save indicator displays.
type State int

const (
	// StateUnsaved means nothing has been persisted this session or before.
	StateUnsaved State = iota
	// StateSaving is the transient badge after a write.
	StateSaving
	// StateSaved shows the time of the last write.
	StateSaved
)

// String returns a lowercase name for logs.
func (s State) String() string {
	switch s {
	case StateSaving:
		return "saving"
	case StateSaved:
		return "saved"
	default:
		return "unsaved"
	}
}

// Tracker holds the indicator state. Each write returns a generation so a
// late "done" signal from an earlier write cannot end a newer badge early.
type Tracker struct {
	lastSaved time.Time
	saving    bool
	gen       int

	feedback    bool
	feedbackGen int
}

// NewTracker starts from a previously persisted timestamp (zero if none).
func NewTracker(lastSaved time.Time) *Tracker {
	return &Tracker{lastSaved: lastSaved}
}

// Saved records a completed write and raises the saving badge.
func (t *Tracker) Saved(at time.Time) int {
	t.lastSaved = at
	t.saving = true
	t.gen++
	return t.gen
}

// SavingDone lowers the badge raised by generation gen.
func (t *Tracker) SavingDone(gen int) {
	if gen == t.gen {
		t.saving = false
	}
}

// ShowFeedback raises the manual-save confirmation.
func (t *Tracker) ShowFeedback() int {
	t.feedback = true
	t.feedbackGen++
	return t.feedbackGen
}

// FeedbackDone lowers the confirmation raised by generation gen.
func (t *Tracker) FeedbackDone(gen int) {
	if gen == t.feedbackGen {
		t.feedback = false
	}
}

// State returns the indicator state.
func (t *Tracker) State() State {
	switch {
	case t.saving:
		return StateSaving
	case !t.lastSaved.IsZero():
		return StateSaved
	default:
		return StateUnsaved
	}
}

// IsSaving reports whether the saving badge is up. The exit guard reads it.
func (t *Tracker) IsSaving() bool { return t.saving }

// FeedbackActive reports whether "Saved!" should be shown.
func (t *Tracker) FeedbackActive() bool { return t.feedback }

// LastSaved returns the time of the last write, zero if none.
func (t *Tracker) LastSaved() time.Time { return t.lastSaved }
