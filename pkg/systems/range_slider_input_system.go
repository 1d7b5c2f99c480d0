package systems

import (
	"github.com/decker502/rangeslider/pkg/components"
	"github.com/decker502/rangeslider/pkg/ecs"
	"github.com/decker502/rangeslider/pkg/utils"
)

// PointerInput 指针输入接口
// 用于依赖注入，支持测试时 mock
type PointerInput interface {
	// PointerState 返回指针是否按下及其屏幕坐标
	PointerState() (pressed bool, x, y int)
}

// ebitenPointerInput Ebitengine 默认实现（触摸优先，其次鼠标左键）
type ebitenPointerInput struct{}

func (e *ebitenPointerInput) PointerState() (bool, int, int) {
	return utils.GetPointerState()
}

// defaultPointerInput 默认指针输入实例
var defaultPointerInput PointerInput = &ebitenPointerInput{}

// RangeSliderInputSystem 将指针事件转换为区间滑动条的触摸跟踪调用
//
// 按下（上一帧未按下）且落在控件矩形内 → BeginTracking；
// 按住且位置变化 → ContinueTracking；
// 松开 → EndTracking。
// 未命中滑块的按下在本次按压期间不再产生任何跟踪。
type RangeSliderInputSystem struct {
	entityManager *ecs.EntityManager
	sliderSystem  *RangeSliderSystem
	input         PointerInput

	wasPressed  bool
	lastPointer components.Point
	active      ecs.EntityID // 正在跟踪的滑动条，InvalidEntity 表示无
}

// NewRangeSliderInputSystem 创建输入系统
func NewRangeSliderInputSystem(em *ecs.EntityManager, sliderSystem *RangeSliderSystem) *RangeSliderInputSystem {
	return NewRangeSliderInputSystemWithInput(em, sliderSystem, defaultPointerInput)
}

// NewRangeSliderInputSystemWithInput 创建带自定义指针输入的输入系统（用于测试）
func NewRangeSliderInputSystemWithInput(em *ecs.EntityManager, sliderSystem *RangeSliderSystem, input PointerInput) *RangeSliderInputSystem {
	return &RangeSliderInputSystem{
		entityManager: em,
		sliderSystem:  sliderSystem,
		input:         input,
		active:        ecs.InvalidEntity,
	}
}

// ActiveSlider 返回当前正在跟踪的滑动条
func (s *RangeSliderInputSystem) ActiveSlider() ecs.EntityID {
	return s.active
}

// Update 读取本帧指针状态并驱动状态迁移
func (s *RangeSliderInputSystem) Update(deltaTime float64) {
	pressed, x, y := s.input.PointerState()
	pointer := components.Point{X: float64(x), Y: float64(y)}

	switch {
	case pressed && !s.wasPressed:
		s.begin(pointer)

	case pressed && s.active != ecs.InvalidEntity:
		if pointer != s.lastPointer {
			s.forward(pointer)
		}

	case !pressed && s.active != ecs.InvalidEntity:
		s.sliderSystem.EndTracking(s.active)
		s.active = ecs.InvalidEntity
	}

	s.wasPressed = pressed
	s.lastPointer = pointer
}

// begin 在指针下的滑动条上尝试开始跟踪
func (s *RangeSliderInputSystem) begin(pointer components.Point) {
	s.active = ecs.InvalidEntity

	for _, id := range ecs.GetEntitiesWith1[*components.RangeSliderComponent](s.entityManager) {
		slider, ok := ecs.GetComponent[*components.RangeSliderComponent](s.entityManager, id)
		if !ok || !slider.Bounds.Contains(pointer) {
			continue
		}
		if s.sliderSystem.BeginTracking(id, toLocal(slider, pointer)) {
			s.active = id
		}
		// 控件矩形内的按下只交给最上层（第一个命中的）控件
		return
	}
}

// forward 将拖动转发给正在跟踪的滑动条
func (s *RangeSliderInputSystem) forward(pointer components.Point) {
	slider, ok := ecs.GetComponent[*components.RangeSliderComponent](s.entityManager, s.active)
	if !ok {
		s.active = ecs.InvalidEntity
		return
	}
	if !s.sliderSystem.ContinueTracking(s.active, toLocal(slider, pointer)) {
		s.active = ecs.InvalidEntity
	}
}

// toLocal 屏幕坐标 → 滑动条本地坐标
func toLocal(slider *components.RangeSliderComponent, p components.Point) components.Point {
	return components.Point{X: p.X - slider.Bounds.X, Y: p.Y - slider.Bounds.Y}
}
