// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package styles

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
)

// =============================================================================
// COLOR DEFINITION TESTS
// =============================================================================

func TestPaletteColorsDefined(t *testing.T) {
	colors := []struct {
		name  string
		color lipgloss.AdaptiveColor
	}{
		{"Purple", Purple},
		{"PurpleDeep", PurpleDeep},
		{"Cyan", Cyan},
		{"Emerald", Emerald},
		{"Rose", Rose},
		{"Amber", Amber},
		{"Surface", Surface},
		{"SurfaceDim", SurfaceDim},
		{"Overlay", Overlay},
		{"OverlayDim", OverlayDim},
		{"TextPrimary", TextPrimary},
		{"TextSecondary", TextSecondary},
		{"TextMuted", TextMuted},
		{"TextInverse", TextInverse},
		{"LinkColor", LinkColor},
	}

	for _, c := range colors {
		if c.color.Light == "" || c.color.Dark == "" {
			t.Errorf("%s should define both light and dark variants", c.name)
		}
		if !strings.HasPrefix(c.color.Light, "#") || !strings.HasPrefix(c.color.Dark, "#") {
			t.Errorf("%s should use hex colors, got %+v", c.name, c.color)
		}
	}
}

// =============================================================================
// STATUS INDICATOR TESTS
// =============================================================================

func TestStatusIndicatorsUniqueness(t *testing.T) {
	indicators := map[string]string{
		"Success": StatusIndicators.Success,
		"Error":   StatusIndicators.Error,
		"Warning": StatusIndicators.Warning,
		"Info":    StatusIndicators.Info,
		"Pending": StatusIndicators.Pending,
		"Active":  StatusIndicators.Active,
	}

	seen := make(map[string]string)
	for name, indicator := range indicators {
		if indicator == "" {
			t.Errorf("StatusIndicators.%s should be defined", name)
		}
		if existingName, exists := seen[indicator]; exists {
			t.Errorf("Duplicate indicator %q used for both %s and %s", indicator, name, existingName)
		}
		seen[indicator] = name
	}
}

// =============================================================================
// RENDER FUNCTION TESTS
// =============================================================================

func TestRenderFunctionsIncludeIndicator(t *testing.T) {
	msg := "Exported to cornell-notes-2026-10-19.pdf"

	tests := []struct {
		name      string
		result    string
		indicator string
	}{
		{"RenderSuccess", RenderSuccess(msg), StatusIndicators.Success},
		{"RenderError", RenderError(msg), StatusIndicators.Error},
		{"RenderWarning", RenderWarning(msg), StatusIndicators.Warning},
		{"RenderInfo", RenderInfo(msg), StatusIndicators.Info},
		{"RenderStatus(true)", RenderStatus(true, msg), StatusIndicators.Success},
		{"RenderStatus(false)", RenderStatus(false, msg), StatusIndicators.Error},
	}

	for _, tc := range tests {
		if !strings.Contains(tc.result, msg) {
			t.Errorf("%s = %q, should contain %q", tc.name, tc.result, msg)
		}
		if !strings.Contains(tc.result, tc.indicator) {
			t.Errorf("%s = %q, should contain indicator %q", tc.name, tc.result, tc.indicator)
		}
	}
}

func TestRenderFunctionsEmptyString(t *testing.T) {
	for name, result := range map[string]string{
		"RenderSuccess": RenderSuccess(""),
		"RenderError":   RenderError(""),
		"RenderWarning": RenderWarning(""),
		"RenderInfo":    RenderInfo(""),
	} {
		if result == "" {
			t.Errorf("%s(\"\") should still render the indicator", name)
		}
	}

	// No indicator here, only check it does not panic.
	_ = RenderLink("")
}

func TestRenderLinkKeepsText(t *testing.T) {
	path := "/home/student/notes/cornell-notes-2026-10-19.txt"
	if got := RenderLink(path); !strings.Contains(got, path) {
		t.Errorf("RenderLink() = %q, should contain %q", got, path)
	}
}
