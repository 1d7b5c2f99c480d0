package components

import "github.com/decker502/rangeslider/pkg/ecs"

// ThumbRole 滑块在区间滑动条中的角色
type ThumbRole int

const (
	// ThumbLower 下限滑块
	ThumbLower ThumbRole = iota
	// ThumbUpper 上限滑块
	ThumbUpper
)

// String 返回角色名称（用于日志）
func (r ThumbRole) String() string {
	switch r {
	case ThumbLower:
		return "lower"
	case ThumbUpper:
		return "upper"
	default:
		return "unknown"
	}
}

// ThumbComponent 区间滑动条的一个可拖动滑块
//
// 纯数据，所有修改都由所属滑动条的系统驱动。
// Slider 是指向所属滑动条实体的非拥有引用，仅供渲染时查询几何信息（如滑块直径），
// 滑块实体随滑动条一起创建和销毁。
type ThumbComponent struct {
	Slider      ecs.EntityID // 所属滑动条实体（非拥有）
	Role        ThumbRole    // 下限或上限
	Highlighted bool         // 是否为当前拖拽目标
	Frame       Rect         // 滑块矩形（滑动条本地坐标）
}
