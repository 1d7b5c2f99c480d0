package game

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Scene represents one screen of the application.
// Each scene has its own layout, update and rendering logic.
type Scene interface {
	// Layout is called with the logical screen size before Update and Draw.
	// Scenes reposition their controls here when the size changes.
	Layout(width, height int)

	// Update updates the scene logic based on the elapsed time.
	// deltaTime is the time elapsed since the last update in seconds.
	Update(deltaTime float64)

	// Draw renders the scene to the provided screen.
	Draw(screen *ebiten.Image)
}

// Saveable 是一个可选接口，用于支持场景在退出时保存状态
//
// 实现此接口的场景会在以下时机被调用 SaveOnExit()：
//   - 桌面窗口关闭
//   - 移动端应用进入后台前由宿主显式调用
type Saveable interface {
	// SaveOnExit 在场景退出时保存状态
	// 返回 true 表示保存成功或无需保存
	// 返回 false 表示保存失败（但程序仍会正常退出）
	SaveOnExit() bool
}
