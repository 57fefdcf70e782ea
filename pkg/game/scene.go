package game

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Scene represents a game scene (e.g., the play field of one level).
// Each scene has its own update and rendering logic.
type Scene interface {
	// Update updates the scene logic based on the elapsed time.
	// deltaTime is the time elapsed since the last update in seconds.
	// A non-nil error ends the game loop.
	Update(deltaTime float64) error

	// Draw renders the scene to the provided screen.
	// Draw must not change game state.
	Draw(screen *ebiten.Image)
}
