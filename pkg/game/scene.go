package game

// Scene represents a game scene driven by a backend frame loop.
// Each scene has its own update and rendering logic.
type Scene interface {
	// Update advances the scene by one frame.
	// Time is read from the scene's Clock, not passed in.
	Update()

	// Draw renders the scene through the provided renderer.
	Draw(r Renderer)
}
