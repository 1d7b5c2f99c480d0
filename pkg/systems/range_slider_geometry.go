package systems

import (
	"errors"
	"fmt"
	"math"

	"github.com/decker502/rangeslider/pkg/components"
)

var (
	// ErrInvalidRange 值域无效（MinimumValue 必须小于 MaximumValue）
	ErrInvalidRange = errors.New("invalid value range")
	// ErrDegenerateBounds 控件尺寸无法布局（高度必须为正，宽度必须大于滑块直径）
	ErrDegenerateBounds = errors.New("degenerate slider bounds")
)

// LayerFrames 一次布局计算出的全部图层矩形（滑动条本地坐标）
type LayerFrames struct {
	Track components.Rect
	Lower components.Rect
	Upper components.Rect
}

// Clamp 将 x 限制在 [lo, hi] 范围内
func Clamp(x, lo, hi float64) float64 {
	return math.Min(math.Max(x, lo), hi)
}

// ThumbWidth 返回滑块直径，等于控件高度（滑块为正方形）
func ThumbWidth(slider *components.RangeSliderComponent) float64 {
	return slider.Bounds.H
}

// CheckGeometry 检查布局前置条件
func CheckGeometry(slider *components.RangeSliderComponent) error {
	// 写成取反形式以同时拒绝 NaN
	if !(slider.MinimumValue < slider.MaximumValue) {
		return fmt.Errorf("%w: minimum %g must be less than maximum %g",
			ErrInvalidRange, slider.MinimumValue, slider.MaximumValue)
	}
	if !(slider.Bounds.H > 0) || !(slider.Bounds.W > ThumbWidth(slider)) {
		return fmt.Errorf("%w: %gx%g (width must exceed height)",
			ErrDegenerateBounds, slider.Bounds.W, slider.Bounds.H)
	}
	return nil
}

// PositionForValue 将值域中的值映射为水平像素坐标（本地坐标）
//
// 在 (宽度 - 滑块直径) 上线性插值，并偏移半个滑块直径，
// 使得两端的滑块中心仍位于控件内部：
//
//	pixel = (W - thumbWidth) * (v - min) / (max - min) + thumbWidth/2
func PositionForValue(slider *components.RangeSliderComponent, value float64) (float64, error) {
	if err := CheckGeometry(slider); err != nil {
		return 0, err
	}
	return positionForValue(slider, value), nil
}

func positionForValue(slider *components.RangeSliderComponent, value float64) float64 {
	thumbWidth := ThumbWidth(slider)
	span := slider.MaximumValue - slider.MinimumValue
	return (slider.Bounds.W-thumbWidth)*(value-slider.MinimumValue)/span + thumbWidth/2.0
}

// ValueDelta 将水平像素增量换算为值域增量（PositionForValue 的逆映射）
//
//	deltaValue = (max - min) * deltaPixels / (W - thumbWidth)
func ValueDelta(slider *components.RangeSliderComponent, deltaPixels float64) (float64, error) {
	if err := CheckGeometry(slider); err != nil {
		return 0, err
	}
	span := slider.MaximumValue - slider.MinimumValue
	return span * deltaPixels / (slider.Bounds.W - ThumbWidth(slider)), nil
}

// ComputeLayerFrames 计算滑轨和两个滑块的矩形
//
// 滑轨占满宽度，上下各内缩三分之一高度；
// 滑块为 thumbWidth x thumbWidth 的正方形，水平中心位于各自值的 PositionForValue。
func ComputeLayerFrames(slider *components.RangeSliderComponent) (LayerFrames, error) {
	if err := CheckGeometry(slider); err != nil {
		return LayerFrames{}, err
	}

	w, h := slider.Bounds.W, slider.Bounds.H
	thumbWidth := ThumbWidth(slider)

	thumbFrame := func(value float64) components.Rect {
		center := positionForValue(slider, value)
		return components.Rect{
			X: center - thumbWidth/2.0,
			Y: 0,
			W: thumbWidth,
			H: thumbWidth,
		}
	}

	return LayerFrames{
		Track: components.Rect{X: 0, Y: h / 3, W: w, H: h / 3},
		Lower: thumbFrame(slider.LowerValue),
		Upper: thumbFrame(slider.UpperValue),
	}, nil
}
