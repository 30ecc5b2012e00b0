package tui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-snake/internal/core"
)

func TestRenderScreenShape(t *testing.T) {
	s := core.NewScreen(6, 3)
	s.DrawText(0, 0, "ab")
	s.SetCell(2, 1, core.Cell{Rune: '[', Fg: core.ColorBrightCyan, Bg: core.ColorGreen})
	s.SetCell(3, 1, core.Cell{Rune: ']', Fg: core.ColorBrightCyan, Bg: core.ColorGreen})
	s.DrawTextColor(0, 2, "hud", core.ColorBrightWhite)

	out := RenderScreen(s)
	lines := strings.Split(out, "\n")
	if len(lines) != 3 {
		t.Fatalf("rendered %d lines, expected 3", len(lines))
	}
	for i, line := range lines {
		if w := lipgloss.Width(line); w != 6 {
			t.Errorf("line %d width = %d, expected 6", i, w)
		}
	}
	if !strings.Contains(lines[0], "ab") {
		t.Errorf("line 0 = %q, expected it to contain \"ab\"", lines[0])
	}
	if !strings.Contains(lines[1], "[]") {
		t.Errorf("line 1 = %q, expected the body cell", lines[1])
	}
}

func TestRenderScreenEmpty(t *testing.T) {
	if out := RenderScreen(core.NewScreen(0, 0)); out != "" {
		t.Errorf("empty screen rendered %q", out)
	}
}
