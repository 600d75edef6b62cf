package scenes

import (
	"github.com/denix666/space-invaders/pkg/game"
)

// Scene is a type alias for game.Scene so backends only import this package.
type Scene = game.Scene

var _ Scene = (*GameScene)(nil)
