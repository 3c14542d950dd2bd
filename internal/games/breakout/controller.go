package breakout

import "github.com/vovakirdan/tui-breakout/internal/core"

// Controller translates key codes into model commands.
type Controller struct {
	model *Model
}

// NewController creates a controller driving m.
func NewController(m *Model) *Controller {
	return &Controller{model: m}
}

// HandleKey applies the command bound to key. Returns false for unbound keys.
//
//	Left / Right  move the bat
//	f / F         fast mode on
//	n / N         fast mode off
//	p / P         pause or resume
//	r / R         new game
func (c *Controller) HandleKey(key core.KeyCode) bool {
	if key.IsSpecial() {
		switch key {
		case core.KeyLeft:
			c.model.MoveBat(-1)
		case core.KeyRight:
			c.model.MoveBat(1)
		default:
			return false
		}
		return true
	}

	switch key.Rune() {
	case 'f', 'F':
		c.model.SetFast(true)
	case 'n', 'N':
		c.model.SetFast(false)
	case 'p', 'P':
		if c.model.Running() {
			c.model.Stop()
		} else {
			c.model.Start()
		}
	case 'r', 'R':
		c.model.Restart()
	default:
		return false
	}
	return true
}
