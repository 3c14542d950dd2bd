// Package breakout implements the Breakout simulation engine: the ball, the
// bat and the brick wall, advanced by a background tick loop and observed by
// renderers.
package breakout

import "github.com/vovakirdan/tui-breakout/internal/core"

// GameObj is a positioned, sized, coloured rectangle that knows which way it
// is travelling on each axis. The ball, the bat and every brick are GameObjs.
type GameObj struct {
	X, Y          float64 // Top-left corner in arena units
	Width, Height float64
	Colour        core.Colour
	DirX, DirY    int // Direction signs, +1 or -1
}

// NewGameObj creates an object travelling right and down.
func NewGameObj(x, y, w, h float64, colour core.Colour) GameObj {
	return GameObj{
		X:      x,
		Y:      y,
		Width:  w,
		Height: h,
		Colour: colour,
		DirX:   1,
		DirY:   1,
	}
}

// Move translates the object. No bounds are applied.
func (o *GameObj) Move(dx, dy float64) {
	o.X += dx
	o.Y += dy
}

// Advance moves the object by speed along its direction signs.
func (o *GameObj) Advance(speed float64) {
	o.Move(speed*float64(o.DirX), speed*float64(o.DirY))
}

// ReverseX flips horizontal direction.
func (o *GameObj) ReverseX() {
	o.DirX = -o.DirX
}

// ReverseY flips vertical direction.
func (o *GameObj) ReverseY() {
	o.DirY = -o.DirY
}

// Rect returns the object's bounding box.
func (o GameObj) Rect() core.Rect {
	return core.NewRect(o.X, o.Y, o.Width, o.Height)
}

// CollidesWith reports whether the two bounding boxes overlap or touch.
func (o GameObj) CollidesWith(other GameObj) bool {
	return o.Rect().Intersects(other.Rect())
}
