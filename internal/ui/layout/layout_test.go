package layout

import (
	"strings"
	"testing"

	"charm.land/lipgloss/v2"
)

func TestSizeThresholds(t *testing.T) {
	tests := []struct {
		width, height                int
		tooSmall, compactW, compactH bool
	}{
		{79, 30, true, true, false},
		{80, 24, false, true, true},
		{120, 40, false, false, false},
		{100, 23, true, false, true},
	}
	for _, tt := range tests {
		if got := IsTooSmall(tt.width, tt.height); got != tt.tooSmall {
			t.Errorf("IsTooSmall(%d, %d) = %v", tt.width, tt.height, got)
		}
		if got := IsCompactWidth(tt.width); got != tt.compactW {
			t.Errorf("IsCompactWidth(%d) = %v", tt.width, got)
		}
		if got := IsCompactHeight(tt.height); got != tt.compactH {
			t.Errorf("IsCompactHeight(%d) = %v", tt.height, got)
		}
	}
}

func TestRenderHeader(t *testing.T) {
	header := RenderHeader("Cards 2025-05-10", 3, 12, 100)
	for _, want := range []string{"Hanzi", "Cards 2025-05-10", "✓ 3/12 days"} {
		if !strings.Contains(header, want) {
			t.Errorf("header missing %q", want)
		}
	}
}

func TestRenderFooter(t *testing.T) {
	footer := RenderFooter([]KeyHint{{Key: "Esc", Description: "Back"}, {Key: "Q", Description: "Quiz"}}, 80)
	if !strings.Contains(footer, "Esc") || !strings.Contains(footer, "Quiz") {
		t.Error("footer should list every hint")
	}
}

func TestRenderFooter_DropsHintsThatDoNotFit(t *testing.T) {
	hints := []KeyHint{
		{Key: "←/→", Description: "Card"},
		{Key: "D", Description: "Done"},
		{Key: "Q", Description: "Quiz"},
		{Key: "T", Description: "Typed quiz"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
	footer := RenderFooter(hints, 40)
	if !strings.Contains(footer, "Card") {
		t.Error("the first hint should be kept")
	}
	if !strings.Contains(footer, "Ctrl+C") {
		t.Error("the last hint should be kept")
	}
	if strings.Contains(footer, "Typed quiz") {
		t.Error("hints past the width should be dropped")
	}
}

func TestRenderHeader_Compact(t *testing.T) {
	header := RenderHeader("Home", 3, 12, 82)
	if strings.Contains(header, "Hanzi") || !strings.Contains(header, "✓ 3/12") {
		t.Errorf("compact header should shorten the brand and progress: %q", header)
	}
}

func TestRenderFrame(t *testing.T) {
	header := RenderHeader("Home", 0, 0, 80)
	footer := RenderFooter(nil, 80)
	frame := RenderFrame(header, "body", footer, 80, 24)
	if h := lipgloss.Height(frame); h != 24 {
		t.Errorf("frame height = %d, want 24", h)
	}
	if !strings.Contains(frame, "body") {
		t.Error("frame should contain the content")
	}
}

func TestRenderMinSizeMessage(t *testing.T) {
	msg := RenderMinSizeMessage(60, 20)
	if !strings.Contains(msg, "Current: 60 x 20") {
		t.Error("expected current size in message")
	}
}
