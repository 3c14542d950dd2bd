package tui

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-breakout/internal/core"
	"github.com/vovakirdan/tui-breakout/internal/games/breakout"
)

// Visual characters for rendering
const (
	BallChar  = '●'
	BatChar   = '▀'
	BrickChar = '█'
)

// HUDFormat is the header line shown above the arena.
const HUDFormat = "Player1 - BreakOut: Score = [%6d] fps=%5.1f"

// colourStyles maps palette tags to 256-colour terminal styles.
var colourStyles = map[core.Colour]lipgloss.Style{
	core.ColourRed:       lipgloss.NewStyle().Foreground(lipgloss.Color("196")),
	core.ColourBlue:      lipgloss.NewStyle().Foreground(lipgloss.Color("21")),
	core.ColourGray:      lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
	core.ColourCyan:      lipgloss.NewStyle().Foreground(lipgloss.Color("51")),
	core.ColourPink:      lipgloss.NewStyle().Foreground(lipgloss.Color("218")),
	core.ColourOrange:    lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
	core.ColourMagenta:   lipgloss.NewStyle().Foreground(lipgloss.Color("201")),
	core.ColourGreen:     lipgloss.NewStyle().Foreground(lipgloss.Color("46")),
	core.ColourWhite:     lipgloss.NewStyle().Foreground(lipgloss.Color("231")),
	core.ColourYellow:    lipgloss.NewStyle().Foreground(lipgloss.Color("226")),
	core.ColourBlack:     lipgloss.NewStyle().Foreground(lipgloss.Color("16")),
	core.ColourLightGray: lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
}

var hudStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("231"))

// StyleFor returns the terminal style for a palette tag.
func StyleFor(c core.Colour) lipgloss.Style {
	if style, ok := colourStyles[c]; ok {
		return style
	}
	return lipgloss.NewStyle()
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same colour to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	var run strings.Builder
	for y, h := 0, s.Height(); y < h; y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			colour := s.GetCell(x, y).Colour

			run.Reset()
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Colour != colour {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}
			sb.WriteString(StyleFor(colour).Render(run.String()))
		}
	}
	return sb.String()
}

// Viewport maps arena units onto the cells inside the arena box.
type Viewport struct {
	X, Y           int // Top-left inner cell
	Cols, Rows     int // Inner size in cells
	ScaleX, ScaleY float64
}

// NewViewport fits an arena of the given size into a screen area whose outer
// box starts at row top and spans cols x rows cells.
func NewViewport(top, cols, rows int, arenaW, arenaH float64) Viewport {
	v := Viewport{X: 1, Y: top + 1, Cols: cols - 2, Rows: rows - 2}
	if v.Cols < 1 {
		v.Cols = 1
	}
	if v.Rows < 1 {
		v.Rows = 1
	}
	if arenaW > 0 {
		v.ScaleX = float64(v.Cols) / arenaW
	}
	if arenaH > 0 {
		v.ScaleY = float64(v.Rows) / arenaH
	}
	return v
}

// Cells returns the half-open cell range covered by r. Every object covers
// at least one cell.
func (v Viewport) Cells(r core.Rect) (x0, y0, x1, y1 int) {
	x0 = v.X + int(math.Floor(r.X*v.ScaleX))
	y0 = v.Y + int(math.Floor(r.Y*v.ScaleY))
	x1 = v.X + int(math.Floor(r.Right()*v.ScaleX))
	y1 = v.Y + int(math.Floor(r.Bottom()*v.ScaleY))
	if x1 <= x0 {
		x1 = x0 + 1
	}
	if y1 <= y0 {
		y1 = y0 + 1
	}
	return x0, y0, x1, y1
}

// Contains reports whether cell (x, y) lies inside the arena box.
func (v Viewport) Contains(x, y int) bool {
	return x >= v.X && x < v.X+v.Cols && y >= v.Y && y < v.Y+v.Rows
}

// Clip limits a half-open cell range to the inside of the arena box.
func (v Viewport) Clip(x0, y0, x1, y1 int) (int, int, int, int) {
	return core.Max(x0, v.X), core.Max(y0, v.Y), core.Min(x1, v.X+v.Cols), core.Min(y1, v.Y+v.Rows)
}

// Point returns the cell containing the arena point (x, y).
func (v Viewport) Point(x, y float64) (int, int) {
	return v.X + int(math.Floor(x*v.ScaleX)), v.Y + int(math.Floor(y*v.ScaleY))
}

// DrawSnapshot draws the arena box, bricks, bat and ball below the HUD row.
func DrawSnapshot(s *core.Screen, snap breakout.Snapshot) {
	const top = 1 // Row 0 holds the HUD
	rows := s.Height() - top
	if rows < 3 || s.Width() < 3 {
		return
	}

	s.DrawBox(0, top, s.Width(), rows, core.ColourGray)
	v := NewViewport(top, s.Width(), rows, snap.Width, snap.Height)
	fill := func(o breakout.GameObj, r rune) {
		x0, y0, x1, y1 := v.Clip(v.Cells(o.Rect()))
		s.FillRect(x0, y0, x1, y1, r, o.Colour)
	}

	for _, b := range snap.Bricks {
		fill(b, BrickChar)
	}
	fill(snap.Bat, BatChar)

	cx, cy := snap.Ball.Rect().Center()
	if x, y := v.Point(cx, cy); v.Contains(x, y) {
		s.SetCell(x, y, BallChar, snap.Ball.Colour)
	}

	if !snap.Running {
		s.DrawTextCentered(v.Y+v.Rows/2, " PAUSED - press p ")
	}
}

// HUD formats the header line.
func HUD(score int, fps float64) string {
	return fmt.Sprintf(HUDFormat, score, fps)
}

// renderHUD styles the header line, appending the speed mode.
func renderHUD(score int, fps float64, fast bool) string {
	line := HUD(score, fps)
	if fast {
		line += "  [fast]"
	}
	return hudStyle.Render(line)
}
