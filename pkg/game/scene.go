package game

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Scene represents one phase of the application (loading, running sketch).
// Each scene has its own update and rendering logic.
type Scene interface {
	// Update advances the scene by one tick.
	// deltaTime is the time elapsed since the last update in seconds.
	// A non-nil error ends the game loop.
	Update(deltaTime float64) error

	// Draw renders the scene to the provided screen.
	Draw(screen *ebiten.Image)
}

// Closer 是一个可选接口，用于在应用关闭时释放场景持有的资源
//
// 实现此接口的场景会在以下时机被调用 Close()：
//   - 游戏窗口关闭
//   - 场景被 SwitchTo 替换
type Closer interface {
	Close()
}
