// Package utils 提供平台相关的工具函数
package utils

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// GetPointerState 获取指针的完整状态
// 返回：是否按下、X坐标、Y坐标（屏幕坐标）
//
// 有触摸时只取第一个触摸点（单点拖拽），否则使用鼠标左键和光标位置。
func GetPointerState() (pressed bool, x, y int) {
	if touchIDs := ebiten.AppendTouchIDs(nil); len(touchIDs) > 0 {
		x, y = ebiten.TouchPosition(touchIDs[0])
		return true, x, y
	}

	x, y = ebiten.CursorPosition()
	return ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft), x, y
}
