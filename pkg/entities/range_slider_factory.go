package entities

import (
	"fmt"
	"image/color"

	"github.com/decker502/rangeslider/pkg/components"
	"github.com/decker502/rangeslider/pkg/config"
	"github.com/decker502/rangeslider/pkg/ecs"
)

// NewRangeSliderEntity 创建区间滑动条实体及其两个滑块实体
//
// 参数：
//   - em: 实体管理器
//   - bounds: 控件矩形（屏幕坐标）
//   - cfg: 值域、初始选区和颜色配置，nil 时使用内置默认配置
//
// 返回：
//   - 滑动条实体ID
//   - 错误信息（配置无效时）
//
// 创建后控件处于待布局状态，首次 RangeSliderSystem.Update 时计算图层矩形。
func NewRangeSliderEntity(em *ecs.EntityManager, bounds components.Rect, cfg *config.RangeSliderConfig) (ecs.EntityID, error) {
	if cfg == nil {
		cfg = config.DefaultRangeSliderConfig()
	}
	if err := cfg.Validate(); err != nil {
		return ecs.InvalidEntity, fmt.Errorf("failed to create range slider: %w", err)
	}

	sliderID := em.CreateEntity()

	slider := components.NewRangeSliderComponent(bounds)
	slider.MinimumValue = cfg.Slider.MinimumValue
	slider.MaximumValue = cfg.Slider.MaximumValue
	slider.LowerValue = cfg.Slider.LowerValue
	slider.UpperValue = cfg.Slider.UpperValue
	slider.Style = StyleFromConfig(cfg.Style)

	slider.LowerThumb = newThumbEntity(em, sliderID, components.ThumbLower)
	slider.UpperThumb = newThumbEntity(em, sliderID, components.ThumbUpper)

	ecs.AddComponent(em, sliderID, slider)
	return sliderID, nil
}

// newThumbEntity 创建滑块实体，反向引用所属滑动条
func newThumbEntity(em *ecs.EntityManager, sliderID ecs.EntityID, role components.ThumbRole) ecs.EntityID {
	id := em.CreateEntity()
	ecs.AddComponent(em, id, &components.ThumbComponent{
		Slider: sliderID,
		Role:   role,
	})
	return id
}

// DestroyRangeSliderEntity 标记滑动条及其滑块待删除
// 滑块没有独立生命周期，总是随滑动条一起销毁
func DestroyRangeSliderEntity(em *ecs.EntityManager, sliderID ecs.EntityID) {
	slider, ok := ecs.GetComponent[*components.RangeSliderComponent](em, sliderID)
	if ok {
		em.DestroyEntity(slider.LowerThumb)
		em.DestroyEntity(slider.UpperThumb)
	}
	em.DestroyEntity(sliderID)
}

// StyleFromConfig 将颜色配置转换为绘制样式
func StyleFromConfig(style config.StyleConfig) components.RangeSliderStyle {
	black := color.RGBA{A: 0xFF}
	return components.RangeSliderStyle{
		TrackColor:          config.HexColorOr(style.TrackColor, black),
		ThumbColor:          config.HexColorOr(style.ThumbColor, black),
		ThumbHighlightColor: config.HexColorOr(style.ThumbHighlightColor, black),
		ThumbBorderColor:    config.HexColorOr(style.ThumbBorderColor, black),
		ThumbBorderWidth:    float32(style.ThumbBorderWidth),
	}
}
