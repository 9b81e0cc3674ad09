// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package export

import (
	"reflect"
	"testing"
	"unicode/utf8"
)

func runeWidth(s string) float64 { return float64(utf8.RuneCountInString(s)) }

func TestWrapWords(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		width float64
		want  []string
	}{
		{"empty", "", 10, []string{""}},
		{"spaces only", "   ", 10, []string{""}},
		{"fits", "one two", 10, []string{"one two"}},
		{"exact width", "one two", 7, []string{"one two"}},
		{"breaks", "one two three", 7, []string{"one two", "three"}},
		{"collapses spaces", "a   b", 10, []string{"a b"}},
		{"long word", "abcdefghij", 4, []string{"abcd", "efgh", "ij"}},
		{"long word after text", "ab abcdefgh", 4, []string{"ab", "abcd", "efgh"}},
		{"multibyte", "日本語テキスト", 3, []string{"日本語", "テキス", "ト"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := wrapWords(tt.text, tt.width, runeWidth)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("wrapWords(%q, %v) = %q, want %q", tt.text, tt.width, got, tt.want)
			}
		})
	}
}

func TestWrapWords_NarrowerThanOneRune(t *testing.T) {
	got := wrapWords("abc", 0.5, runeWidth)
	want := []string{"a", "b", "c"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("wrapWords = %q, want %q", got, want)
	}
}
