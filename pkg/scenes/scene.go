package scenes

import (
	"github.com/decker502/loadinganim/pkg/game"
)

// Scene is a type alias for game.Scene.
// All scene implementations should implement the game.Scene interface.
type Scene = game.Scene

var (
	_ Scene       = (*LoadingScene)(nil)
	_ game.Closer = (*LoadingScene)(nil)
	_ Scene       = (*SketchScene)(nil)
)
