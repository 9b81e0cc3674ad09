// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package export

import "strings"

// wrapWords breaks one paragraph into lines no wider than width.
// Words wider than a whole line are split between runes. An empty
// paragraph yields a single empty line.
func wrapWords(text string, width float64, measure func(string) float64) []string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return []string{""}
	}

	var lines []string
	var line string
	for _, word := range words {
		if line == "" {
			for measure(word) > width {
				head, tail := splitToWidth(word, width, measure)
				lines = append(lines, head)
				word = tail
			}
			line = word
			continue
		}

		candidate := line + " " + word
		if measure(candidate) <= width {
			line = candidate
			continue
		}

		lines = append(lines, line)
		for measure(word) > width {
			head, tail := splitToWidth(word, width, measure)
			lines = append(lines, head)
			word = tail
		}
		line = word
	}
	if line != "" {
		lines = append(lines, line)
	}
	return lines
}

// splitToWidth returns the longest rune prefix of word that fits, at
// least one rune, and the rest.
func splitToWidth(word string, width float64, measure func(string) float64) (string, string) {
	runes := []rune(word)
	n := 1
	for n < len(runes) && measure(string(runes[:n+1])) <= width {
		n++
	}
	return string(runes[:n]), string(runes[n:])
}
