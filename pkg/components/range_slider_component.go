package components

import (
	"image/color"

	"github.com/decker502/rangeslider/pkg/ecs"
)

// TrackingState 触摸跟踪状态
type TrackingState int

const (
	// TrackingIdle 未跟踪
	TrackingIdle TrackingState = iota
	// TrackingLower 正在拖动下限滑块
	TrackingLower
	// TrackingUpper 正在拖动上限滑块
	TrackingUpper
)

// String 返回状态名称（用于日志）
func (s TrackingState) String() string {
	switch s {
	case TrackingIdle:
		return "idle"
	case TrackingLower:
		return "draggingLower"
	case TrackingUpper:
		return "draggingUpper"
	default:
		return "unknown"
	}
}

// ValueChangedFunc 值改变回调，参数为当前的下限值和上限值
type ValueChangedFunc func(lower, upper float64)

// RangeSliderStyle 区间滑动条的绘制颜色
type RangeSliderStyle struct {
	TrackColor          color.RGBA // 滑轨颜色
	ThumbColor          color.RGBA // 滑块颜色
	ThumbHighlightColor color.RGBA // 拖拽中的滑块颜色
	ThumbBorderColor    color.RGBA // 滑块描边颜色
	ThumbBorderWidth    float32    // 滑块描边宽度
}

// RangeSliderComponent 双滑块区间滑动条
//
// 值模型满足 MinimumValue <= LowerValue <= UpperValue <= MaximumValue，
// 拖拽时由 RangeSliderSystem 通过钳制维持。
// 通过 Set* 方法修改值或边界会标记需要重新布局，下一次布局过程（RangeSliderSystem.Update）
// 会重新计算滑轨和滑块矩形。
type RangeSliderComponent struct {
	MinimumValue float64
	MaximumValue float64
	LowerValue   float64
	UpperValue   float64

	// Bounds 控件在屏幕坐标中的矩形，本地坐标以其左上角为原点
	Bounds Rect

	// 触摸跟踪
	State            TrackingState
	PreviousLocation Point // 上一次触摸点（本地坐标），仅用于计算增量

	// 子图层
	TrackFrame Rect         // 滑轨矩形（本地坐标）
	LowerThumb ecs.EntityID // 下限滑块实体（拥有）
	UpperThumb ecs.EntityID // 上限滑块实体（拥有）

	Style RangeSliderStyle

	observers   []ValueChangedFunc
	needsLayout bool
}

// NewRangeSliderComponent 创建使用默认值域 [0,1]、默认选区 [0.2,0.8] 的滑动条组件
func NewRangeSliderComponent(bounds Rect) *RangeSliderComponent {
	return &RangeSliderComponent{
		MinimumValue: 0.0,
		MaximumValue: 1.0,
		LowerValue:   0.2,
		UpperValue:   0.8,
		Bounds:       bounds,
		State:        TrackingIdle,
		needsLayout:  true,
	}
}

// SetMinimumValue 设置值域下界
func (c *RangeSliderComponent) SetMinimumValue(v float64) {
	c.MinimumValue = v
	c.needsLayout = true
}

// SetMaximumValue 设置值域上界
func (c *RangeSliderComponent) SetMaximumValue(v float64) {
	c.MaximumValue = v
	c.needsLayout = true
}

// SetLowerValue 设置下限值（不钳制，由宿主保证有效）
func (c *RangeSliderComponent) SetLowerValue(v float64) {
	c.LowerValue = v
	c.needsLayout = true
}

// SetUpperValue 设置上限值（不钳制，由宿主保证有效）
func (c *RangeSliderComponent) SetUpperValue(v float64) {
	c.UpperValue = v
	c.needsLayout = true
}

// SetBounds 设置控件矩形
// 矩形未变化时不触发重新布局
func (c *RangeSliderComponent) SetBounds(bounds Rect) {
	if c.Bounds == bounds {
		return
	}
	c.Bounds = bounds
	c.needsLayout = true
}

// SetNeedsLayout 标记需要重新布局
func (c *RangeSliderComponent) SetNeedsLayout() {
	c.needsLayout = true
}

// NeedsLayout 返回是否等待重新布局
func (c *RangeSliderComponent) NeedsLayout() bool {
	return c.needsLayout
}

// ClearNeedsLayout 清除布局标记（由布局提交调用）
func (c *RangeSliderComponent) ClearNeedsLayout() {
	c.needsLayout = false
}

// Subscribe 注册值改变回调
func (c *RangeSliderComponent) Subscribe(fn ValueChangedFunc) {
	if fn == nil {
		return
	}
	c.observers = append(c.observers, fn)
}

// NotifyValueChanged 同步通知所有观察者
func (c *RangeSliderComponent) NotifyValueChanged() {
	for _, fn := range c.observers {
		fn(c.LowerValue, c.UpperValue)
	}
}
