// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import "testing"

func TestFmtNumber(t *testing.T) {
	tests := []struct {
		input int
		want  string
	}{
		{0, "0"},
		{7, "7"},
		{999, "999"},
		{1000, "1,000"},
		{12345, "12,345"},
		{123456, "123,456"},
		{1234567, "1,234,567"},
		{-4200, "-4,200"},
	}

	for _, tc := range tests {
		if got := fmtNumber(tc.input); got != tc.want {
			t.Errorf("fmtNumber(%d) = %q, want %q", tc.input, got, tc.want)
		}
	}
}

func TestFormatCount(t *testing.T) {
	if got := formatCount(1, "word", "words"); got != "1 word" {
		t.Errorf("formatCount(1) = %q", got)
	}
	if got := formatCount(2048, "word", "words"); got != "2,048 words" {
		t.Errorf("formatCount(2048) = %q", got)
	}
}
