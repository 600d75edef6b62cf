package game

import (
	"image/color"

	"github.com/denix666/space-invaders/pkg/types"
)

// Renderer is the drawing collaborator used by the game core.
// Coordinates are logical screen pixels (700x550); the core owns no pixels.
type Renderer interface {
	// ClearBackground fills the whole frame with c.
	ClearBackground(c color.Color)

	// DrawSprite draws a loaded texture with its top-left corner at (x, y).
	DrawSprite(id types.TextureID, x, y float64)

	// DrawText draws text with its baseline starting at (x, y).
	DrawText(text string, x, y, size float64, c color.Color, font types.FontID)

	// MeasureText returns the width and height text would occupy.
	MeasureText(text string, size float64, font types.FontID) (width, height float64)

	// DrawLine draws a straight line segment.
	DrawLine(x1, y1, x2, y2, thickness float64, c color.Color)
}

// Input reports the logical key state for the current frame.
type Input interface {
	// IsKeyDown reports whether key is held this frame.
	IsKeyDown(key types.Key) bool

	// IsKeyPressed reports whether key went down this frame.
	IsKeyPressed(key types.Key) bool
}

// Clock supplies time to the game core.
type Clock interface {
	// Now returns a monotonic reading in seconds.
	Now() float64

	// FrameDelta returns the seconds elapsed since the previous frame.
	FrameDelta() float32
}
