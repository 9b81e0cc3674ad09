// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package autosave implements debounced, last-write-wins save scheduling
// and the cosmetic save indicator shown by the editor.
//
// # Key Types
//
//   - Debouncer: cancellable delayed task; rescheduling cancels the pending run
//   - Clock: time source with AfterFunc, swappable for ManualClock in tests
//   - Tracker: unsaved / saving / saved indicator state
//
// # Usage
//
//	d := autosave.NewDebouncer(autosave.RealClock{}, 2*time.Second)
//	d.Schedule(func() { notify() }) // every keystroke
//	d.Flush()                       // on quit: run the pending save now
package autosave
