package systems

import (
	"github.com/decker502/rangeslider/pkg/components"
	"github.com/decker502/rangeslider/pkg/ecs"
	log "github.com/sirupsen/logrus"
)

var sliderLog = log.WithField("component", "RangeSliderSystem")

// RangeSliderSystem 区间滑动条的布局与触摸跟踪系统
//
// 职责：
//   - 布局：值或边界改变后重新计算滑轨和滑块矩形，并一次性提交
//   - 触摸跟踪：Begin / Continue / End 三个状态迁移，与具体输入事件 API 无关
//   - 拖拽中同步通知值改变
//
// 坐标参数均为滑动条本地坐标（以 Bounds 左上角为原点）。
type RangeSliderSystem struct {
	entityManager *ecs.EntityManager
}

// NewRangeSliderSystem 创建区间滑动条系统
func NewRangeSliderSystem(em *ecs.EntityManager) *RangeSliderSystem {
	return &RangeSliderSystem{entityManager: em}
}

// Update 布局过程：为所有标记了需要布局的滑动条重新计算图层矩形
// 应在每帧绘制前调用
func (s *RangeSliderSystem) Update(deltaTime float64) {
	for _, id := range ecs.GetEntitiesWith1[*components.RangeSliderComponent](s.entityManager) {
		slider, ok := ecs.GetComponent[*components.RangeSliderComponent](s.entityManager, id)
		if !ok || !slider.NeedsLayout() {
			continue
		}
		if err := s.UpdateLayerFrames(id); err != nil {
			sliderLog.WithField("entity", id).Warnf("layout skipped: %v", err)
		}
	}
}

// UpdateLayerFrames 立即重新计算并提交指定滑动条的图层矩形
//
// 三个矩形先全部计算完成，再一次性写入组件，渲染系统不会看到只更新了一部分的中间状态。
// 前置条件不满足时保留旧矩形并保持布局标记，返回错误。
func (s *RangeSliderSystem) UpdateLayerFrames(id ecs.EntityID) error {
	slider, ok := ecs.GetComponent[*components.RangeSliderComponent](s.entityManager, id)
	if !ok {
		return nil
	}

	frames, err := ComputeLayerFrames(slider)
	if err != nil {
		slider.SetNeedsLayout()
		return err
	}

	s.commitLayerFrames(slider, frames)
	return nil
}

// commitLayerFrames 布局事务：一次性写入滑轨和两个滑块的矩形
func (s *RangeSliderSystem) commitLayerFrames(slider *components.RangeSliderComponent, frames LayerFrames) {
	lower, upper := s.thumbs(slider)

	slider.TrackFrame = frames.Track
	if lower != nil {
		lower.Frame = frames.Lower
	}
	if upper != nil {
		upper.Frame = frames.Upper
	}
	slider.ClearNeedsLayout()
}

// thumbs 返回滑动条拥有的两个滑块组件（不存在时为 nil）
func (s *RangeSliderSystem) thumbs(slider *components.RangeSliderComponent) (lower, upper *components.ThumbComponent) {
	lower, _ = ecs.GetComponent[*components.ThumbComponent](s.entityManager, slider.LowerThumb)
	upper, _ = ecs.GetComponent[*components.ThumbComponent](s.entityManager, slider.UpperThumb)
	return lower, upper
}

// BeginTracking 开始一次触摸跟踪
//
// 记录触摸点后依次命中测试下限、上限滑块（两者重叠时下限优先）。
// 命中则高亮该滑块并进入对应拖拽状态，返回 true；否则保持空闲并返回 false。
func (s *RangeSliderSystem) BeginTracking(id ecs.EntityID, location components.Point) bool {
	slider, ok := ecs.GetComponent[*components.RangeSliderComponent](s.entityManager, id)
	if !ok {
		return false
	}

	// 命中测试必须基于当前值对应的矩形
	if slider.NeedsLayout() {
		if err := s.UpdateLayerFrames(id); err != nil {
			sliderLog.WithField("entity", id).Warnf("begin tracking rejected: %v", err)
			return false
		}
	}

	slider.PreviousLocation = location
	slider.State = components.TrackingIdle

	lower, upper := s.thumbs(slider)
	if lower != nil {
		lower.Highlighted = false
	}
	if upper != nil {
		upper.Highlighted = false
	}

	switch {
	case lower != nil && lower.Frame.Contains(location):
		lower.Highlighted = true
		slider.State = components.TrackingLower
	case upper != nil && upper.Frame.Contains(location):
		upper.Highlighted = true
		slider.State = components.TrackingUpper
	default:
		return false
	}

	sliderLog.WithField("entity", id).Debugf("begin tracking: %s", slider.State)
	return true
}

// ContinueTracking 处理一次拖动
//
// 将水平像素增量换算为值增量并钳制：下限不超过当前上限，上限不低于当前下限。
// 随后立即重新布局并同步通知观察者。空闲状态下返回 false。
// 前置条件不满足时结束本次跟踪并返回 false，值保持不变且不通知。
func (s *RangeSliderSystem) ContinueTracking(id ecs.EntityID, location components.Point) bool {
	slider, ok := ecs.GetComponent[*components.RangeSliderComponent](s.entityManager, id)
	if !ok || slider.State == components.TrackingIdle {
		return false
	}

	deltaValue, err := ValueDelta(slider, location.X-slider.PreviousLocation.X)
	if err != nil {
		sliderLog.WithField("entity", id).Warnf("tracking aborted: %v", err)
		s.EndTracking(id)
		return false
	}
	slider.PreviousLocation = location

	switch slider.State {
	case components.TrackingLower:
		slider.LowerValue = Clamp(slider.LowerValue+deltaValue, slider.MinimumValue, slider.UpperValue)
	case components.TrackingUpper:
		slider.UpperValue = Clamp(slider.UpperValue+deltaValue, slider.LowerValue, slider.MaximumValue)
	}

	if err := s.UpdateLayerFrames(id); err != nil {
		sliderLog.WithField("entity", id).Warnf("layout skipped: %v", err)
	}

	slider.NotifyValueChanged()
	return true
}

// EndTracking 结束触摸跟踪
// 无论哪个滑块处于拖拽中，都清除两个滑块的高亮
func (s *RangeSliderSystem) EndTracking(id ecs.EntityID) {
	slider, ok := ecs.GetComponent[*components.RangeSliderComponent](s.entityManager, id)
	if !ok {
		return
	}

	lower, upper := s.thumbs(slider)
	if lower != nil {
		lower.Highlighted = false
	}
	if upper != nil {
		upper.Highlighted = false
	}

	if slider.State != components.TrackingIdle {
		sliderLog.WithField("entity", id).Debugf("end tracking: lower=%g upper=%g", slider.LowerValue, slider.UpperValue)
	}
	slider.State = components.TrackingIdle
}
