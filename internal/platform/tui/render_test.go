package tui

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/core"
	"github.com/vovakirdan/tui-breakout/internal/games/breakout"
	"github.com/vovakirdan/tui-breakout/internal/logging"
)

func TestHUD(t *testing.T) {
	got := HUD(150, 49.96)
	expected := "Player1 - BreakOut: Score = [   150] fps= 50.0"
	if got != expected {
		t.Errorf("HUD() = %q, expected %q", got, expected)
	}
	if got := HUD(-200, 0); !strings.Contains(got, "[  -200]") {
		t.Errorf("negative score should be padded, got %q", got)
	}
}

func TestStyleForCoversPalette(t *testing.T) {
	for _, c := range core.Colours() {
		if _, ok := colourStyles[c]; !ok {
			t.Errorf("no terminal style for %v", c)
		}
	}
}

func TestRenderScreenKeepsText(t *testing.T) {
	s := core.NewScreen(10, 2)
	s.DrawText(0, 0, "ab")
	s.SetCell(2, 0, '█', core.ColourPink)
	s.DrawText(0, 1, "cd")

	out := RenderScreen(s)
	if !strings.Contains(out, "ab") || !strings.Contains(out, "█") || !strings.Contains(out, "cd") {
		t.Errorf("rendered output lost content: %q", out)
	}
	if strings.Count(out, "\n") != 1 {
		t.Errorf("expected 2 lines, got %q", out)
	}
}

func TestViewportCells(t *testing.T) {
	v := NewViewport(1, 62, 42, 600, 800)
	if v.Cols != 60 || v.Rows != 40 {
		t.Fatalf("inner size = %dx%d, expected 60x40", v.Cols, v.Rows)
	}

	x0, y0, x1, y1 := v.Cells(core.NewRect(0, 0, 600, 800))
	if x0 != 1 || y0 != 2 || x1 != 61 || y1 != 42 {
		t.Errorf("whole arena = [%d,%d)-[%d,%d), expected [1,2)-[61,42)", x0, y0, x1, y1)
	}

	// A brick narrower than one row still gets a cell.
	x0, y0, x1, y1 = v.Cells(core.NewRect(42, 100, 48, 10))
	if x1-x0 < 1 || y1-y0 != 1 {
		t.Errorf("small rect should cover at least one cell, got [%d,%d)-[%d,%d)", x0, y0, x1, y1)
	}
}

func TestDrawSnapshot(t *testing.T) {
	cfg := config.DefaultBreakoutConfig()
	m := breakout.NewModel(cfg, logging.Discard())
	m.Initialize(cfg.Arena.Width, cfg.Arena.Height)

	s := core.NewScreen(62, 43)
	DrawSnapshot(s, m.Snapshot())

	if s.GetCell(0, 1).Rune != '┌' {
		t.Errorf("arena box should start below the HUD, got %q", s.GetCell(0, 1).Rune)
	}

	counts := map[rune]int{}
	colours := map[core.Colour]bool{}
	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			cell := s.GetCell(x, y)
			counts[cell.Rune]++
			if cell.Rune == BrickChar {
				colours[cell.Colour] = true
			}
		}
	}
	if counts[BallChar] != 1 {
		t.Errorf("expected one ball cell, got %d", counts[BallChar])
	}
	if counts[BatChar] == 0 {
		t.Error("bat not drawn")
	}
	if len(colours) != 7 {
		t.Errorf("expected 7 brick colours on screen, got %d", len(colours))
	}
	if !strings.Contains(s.String(), "PAUSED") {
		t.Error("stopped game should show the paused banner")
	}
}

func TestDrawSnapshotTinyScreen(t *testing.T) {
	s := core.NewScreen(2, 2)
	DrawSnapshot(s, breakout.Snapshot{Width: 600, Height: 800})
	if s.String() != "  \n  " {
		t.Errorf("tiny screen should stay blank, got %q", s.String())
	}
}

func TestDrawSnapshotClipsToBox(t *testing.T) {
	s := core.NewScreen(22, 13)
	snap := breakout.Snapshot{
		Width:  600,
		Height: 800,
		Bat:    breakout.NewGameObj(500, 780, 300, 100, core.ColourWhite),
		Ball:   breakout.NewGameObj(-50, -50, 18, 18, core.ColourRed),
	}
	DrawSnapshot(s, snap)

	v := NewViewport(1, 22, 12, 600, 800)
	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			r := s.GetCell(x, y).Rune
			if (r == BatChar || r == BallChar) && !v.Contains(x, y) {
				t.Errorf("%q drawn outside the arena box at (%d, %d)", r, x, y)
			}
		}
	}
	if s.GetCell(21, 12).Rune != '┘' {
		t.Errorf("box corner overwritten, got %q", s.GetCell(21, 12).Rune)
	}
	if s.GetCell(20, 11).Rune != BatChar {
		t.Errorf("bat should fill up to the inner corner, got %q", s.GetCell(20, 11).Rune)
	}
}

func TestViewportClip(t *testing.T) {
	v := NewViewport(1, 12, 7, 600, 800)
	x0, y0, x1, y1 := v.Clip(-3, 0, 40, 20)
	if x0 != 1 || y0 != 2 || x1 != 11 || y1 != 7 {
		t.Errorf("Clip = [%d,%d)-[%d,%d), expected [1,2)-[11,7)", x0, y0, x1, y1)
	}
}
