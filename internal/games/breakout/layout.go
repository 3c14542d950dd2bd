package breakout

import (
	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/core"
)

// BuildBricks lays out the brick wall. Each colour band holds RowsPerBand rows
// of PerRow bricks, and bands follow each other with no extra gap, so the wall
// reads as one grid from YOffset downwards.
func BuildBricks(cfg config.BricksConfig) []GameObj {
	bricks := make([]GameObj, 0, cfg.BrickCount())
	stepX := cfg.Width + cfg.Separation
	stepY := cfg.Height + cfg.Separation

	for band, name := range cfg.Bands {
		colour := mustColour(name)
		for r := 0; r < cfg.RowsPerBand; r++ {
			y := cfg.YOffset + float64(band*cfg.RowsPerBand+r)*stepY
			for c := 0; c < cfg.PerRow; c++ {
				x := cfg.XOffset + float64(c)*stepX
				bricks = append(bricks, NewGameObj(x, y, cfg.Width, cfg.Height, colour))
			}
		}
	}
	return bricks
}

// mustColour resolves a colour name that config validation has already checked.
// Unknown names fall back to white.
func mustColour(name string) core.Colour {
	c, _ := core.ParseColour(name)
	return c
}
