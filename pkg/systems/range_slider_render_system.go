package systems

import (
	"image/color"

	"github.com/decker502/rangeslider/pkg/components"
	"github.com/decker502/rangeslider/pkg/ecs"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// RangeSliderRenderSystem 区间滑动条渲染系统
// 绘制滑轨（填充矩形）和两个滑块（带描边的圆）
type RangeSliderRenderSystem struct {
	entityManager *ecs.EntityManager
}

// NewRangeSliderRenderSystem 创建渲染系统
func NewRangeSliderRenderSystem(em *ecs.EntityManager) *RangeSliderRenderSystem {
	return &RangeSliderRenderSystem{entityManager: em}
}

// Draw 渲染所有区间滑动条
func (s *RangeSliderRenderSystem) Draw(screen *ebiten.Image) {
	for _, id := range ecs.GetEntitiesWith1[*components.RangeSliderComponent](s.entityManager) {
		slider, ok := ecs.GetComponent[*components.RangeSliderComponent](s.entityManager, id)
		if !ok {
			continue
		}

		s.drawTrack(screen, slider)

		// 先画上限滑块，下限滑块在重叠时位于上层（与命中测试优先级一致）
		for _, thumbID := range []ecs.EntityID{slider.UpperThumb, slider.LowerThumb} {
			thumb, ok := ecs.GetComponent[*components.ThumbComponent](s.entityManager, thumbID)
			if !ok {
				continue
			}
			s.drawThumb(screen, thumb)
		}
	}
}

// drawTrack 绘制滑轨
func (s *RangeSliderRenderSystem) drawTrack(screen *ebiten.Image, slider *components.RangeSliderComponent) {
	track := slider.TrackFrame.Offset(slider.Bounds.X, slider.Bounds.Y)
	if track.W <= 0 || track.H <= 0 {
		return
	}
	vector.DrawFilledRect(
		screen,
		float32(track.X),
		float32(track.Y),
		float32(track.W),
		float32(track.H),
		slider.Style.TrackColor,
		true,
	)
}

// drawThumb 绘制单个滑块
// 直径通过滑块对所属滑动条的引用查询
func (s *RangeSliderRenderSystem) drawThumb(screen *ebiten.Image, thumb *components.ThumbComponent) {
	owner, ok := ecs.GetComponent[*components.RangeSliderComponent](s.entityManager, thumb.Slider)
	if !ok {
		return
	}

	diameter := ThumbWidth(owner)
	if diameter <= 0 {
		return
	}

	center := thumb.Frame.Offset(owner.Bounds.X, owner.Bounds.Y).Center()
	border := owner.Style.ThumbBorderWidth
	radius := float32(diameter/2) - border/2

	vector.DrawFilledCircle(screen, float32(center.X), float32(center.Y), radius, ThumbFillColor(owner.Style, thumb.Highlighted), true)
	if border > 0 {
		vector.StrokeCircle(screen, float32(center.X), float32(center.Y), radius, border, owner.Style.ThumbBorderColor, true)
	}
}

// ThumbFillColor 返回滑块填充颜色，拖拽中使用高亮色
func ThumbFillColor(style components.RangeSliderStyle, highlighted bool) color.RGBA {
	if highlighted {
		return style.ThumbHighlightColor
	}
	return style.ThumbColor
}
