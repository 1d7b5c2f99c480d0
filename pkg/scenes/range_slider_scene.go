// Package scenes 提供宿主界面
package scenes

import (
	"fmt"
	"image/color"

	"github.com/decker502/rangeslider/pkg/components"
	"github.com/decker502/rangeslider/pkg/config"
	"github.com/decker502/rangeslider/pkg/ecs"
	"github.com/decker502/rangeslider/pkg/entities"
	"github.com/decker502/rangeslider/pkg/game"
	"github.com/decker502/rangeslider/pkg/systems"
	"github.com/hajimehoshi/ebiten/v2"
	log "github.com/sirupsen/logrus"
)

var sceneLog = log.WithField("component", "RangeSliderScene")

// RangeSliderScene 宿主界面：放置一个区间滑动条并记录值改变
type RangeSliderScene struct {
	entityManager *ecs.EntityManager
	sliderSystem  *systems.RangeSliderSystem
	inputSystem   *systems.RangeSliderInputSystem
	renderSystem  *systems.RangeSliderRenderSystem

	sliderID   ecs.EntityID
	cfg        *config.RangeSliderConfig
	store      *game.RangeStore // 可为 nil（不持久化）
	background color.RGBA
}

// NewRangeSliderScene 创建宿主界面，使用 Ebitengine 的指针输入
func NewRangeSliderScene(cfg *config.RangeSliderConfig, store *game.RangeStore) (*RangeSliderScene, error) {
	return NewRangeSliderSceneWithInput(cfg, store, nil)
}

// NewRangeSliderSceneWithInput 创建带自定义指针输入的宿主界面（用于测试）
//
// 参数：
//   - cfg: 配置，nil 时使用内置默认配置
//   - store: 选区存储，nil 表示不恢复也不保存选区
//   - input: 指针输入，nil 时使用 Ebitengine 默认实现
func NewRangeSliderSceneWithInput(cfg *config.RangeSliderConfig, store *game.RangeStore, input systems.PointerInput) (*RangeSliderScene, error) {
	if cfg == nil {
		cfg = config.DefaultRangeSliderConfig()
	}

	em := ecs.NewEntityManager()
	sliderSystem := systems.NewRangeSliderSystem(em)

	var inputSystem *systems.RangeSliderInputSystem
	if input != nil {
		inputSystem = systems.NewRangeSliderInputSystemWithInput(em, sliderSystem, input)
	} else {
		inputSystem = systems.NewRangeSliderInputSystem(em, sliderSystem)
	}

	// 首次 Layout 之前控件尺寸未知，先用配置的窗口尺寸计算初始矩形
	frame := SliderFrame(cfg.Window.Width, cfg.Layout)
	sliderID, err := entities.NewRangeSliderEntity(em, frame, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create scene: %w", err)
	}

	scene := &RangeSliderScene{
		entityManager: em,
		sliderSystem:  sliderSystem,
		inputSystem:   inputSystem,
		renderSystem:  systems.NewRangeSliderRenderSystem(em),
		sliderID:      sliderID,
		cfg:           cfg,
		store:         store,
		background:    config.HexColorOr(cfg.Style.BackgroundColor, color.RGBA{R: 255, G: 255, B: 255, A: 255}),
	}

	slider := scene.Slider()
	scene.restoreRange(slider)
	slider.Subscribe(scene.onValueChanged)

	sceneLog.Debugf("scene created: frame=%+v", frame)
	return scene, nil
}

// SliderFrame 计算控件矩形：左、右、上留白 margin，宽度随屏幕变化，高度固定
func SliderFrame(screenWidth int, layout config.LayoutConfig) components.Rect {
	return components.Rect{
		X: layout.Margin,
		Y: layout.Margin,
		W: float64(screenWidth) - 2*layout.Margin,
		H: layout.Height,
	}
}

// Slider 返回界面中的滑动条组件
func (s *RangeSliderScene) Slider() *components.RangeSliderComponent {
	slider, _ := ecs.GetComponent[*components.RangeSliderComponent](s.entityManager, s.sliderID)
	return slider
}

// restoreRange 从存储恢复上一次的选区（限制在当前值域内）
func (s *RangeSliderScene) restoreRange(slider *components.RangeSliderComponent) {
	if s.store == nil {
		return
	}

	saved, ok, err := s.store.Load()
	if err != nil {
		sceneLog.Warnf("failed to restore range, using defaults: %v", err)
		return
	}
	if !ok {
		return
	}

	saved = saved.ClampTo(slider.MinimumValue, slider.MaximumValue)
	slider.SetLowerValue(saved.Lower)
	slider.SetUpperValue(saved.Upper)
	sceneLog.Infof("restored range: (%g %g)", saved.Lower, saved.Upper)
}

// onValueChanged 值改变回调
func (s *RangeSliderScene) onValueChanged(lower, upper float64) {
	sceneLog.WithFields(log.Fields{
		"lower": lower,
		"upper": upper,
	}).Infof("Range slider value changed: (%g %g)", lower, upper)
}

// Layout 屏幕尺寸变化时重新放置控件
func (s *RangeSliderScene) Layout(width, height int) {
	slider := s.Slider()
	if slider == nil {
		return
	}
	slider.SetBounds(SliderFrame(width, s.cfg.Layout))
}

// Update 更新界面逻辑
// 先处理输入，再执行布局过程，保证绘制前图层矩形已是最新
func (s *RangeSliderScene) Update(deltaTime float64) {
	s.inputSystem.Update(deltaTime)
	s.sliderSystem.Update(deltaTime)
	s.entityManager.RemoveMarkedEntities()
}

// Draw 绘制界面
func (s *RangeSliderScene) Draw(screen *ebiten.Image) {
	screen.Fill(s.background)
	s.renderSystem.Draw(screen)
}

// SaveOnExit 保存当前选区
func (s *RangeSliderScene) SaveOnExit() bool {
	if s.store == nil {
		return true
	}

	slider := s.Slider()
	if slider == nil {
		return true
	}

	if err := s.store.Save(game.SavedRange{Lower: slider.LowerValue, Upper: slider.UpperValue}); err != nil {
		sceneLog.Errorf("failed to save range: %v", err)
		return false
	}
	return true
}
