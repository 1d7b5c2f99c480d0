package systems

import (
	"testing"

	"github.com/decker502/rangeslider/pkg/components"
	"github.com/decker502/rangeslider/pkg/ecs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockPointerInput 用于测试的 mock 指针输入
type mockPointerInput struct {
	pressed bool
	x, y    int
}

func (m *mockPointerInput) PointerState() (bool, int, int) {
	return m.pressed, m.x, m.y
}

func (m *mockPointerInput) press(x, y int) {
	m.pressed, m.x, m.y = true, x, y
}

func (m *mockPointerInput) move(x, y int) {
	m.x, m.y = x, y
}

func (m *mockPointerInput) release() {
	m.pressed = false
}

// 控件位于 (20, 20)，300x31；下限滑块屏幕 X 范围 [73.8, 104.8)，上限 [235.2, 266.2)
func newInputFixture(t *testing.T) (*sliderFixture, *RangeSliderInputSystem, *mockPointerInput) {
	t.Helper()
	f := newSliderFixture(t, components.Rect{X: 20, Y: 20, W: 300, H: 31})
	input := &mockPointerInput{}
	return f, NewRangeSliderInputSystemWithInput(f.em, f.system, input), input
}

func TestRangeSliderInputSystem_DragLowerThumb(t *testing.T) {
	f, sys, input := newInputFixture(t)

	input.press(89, 35)
	sys.Update(1.0 / 60.0)
	require.Equal(t, f.id, sys.ActiveSlider())
	assert.Equal(t, components.TrackingLower, f.slider.State)
	// 本地坐标 = 屏幕坐标 - 控件原点
	assert.Equal(t, pt(69, 15), f.slider.PreviousLocation)

	input.move(116, 35)
	sys.Update(1.0 / 60.0)
	assert.InDelta(t, 0.2+27.0/269.0, f.slider.LowerValue, geometryEpsilon)
	assert.Len(t, f.changes, 1)

	// 按住不动不产生拖动
	sys.Update(1.0 / 60.0)
	assert.Len(t, f.changes, 1)

	input.move(143, 35)
	sys.Update(1.0 / 60.0)
	assert.Len(t, f.changes, 2)

	input.release()
	sys.Update(1.0 / 60.0)
	assert.Equal(t, ecs.InvalidEntity, sys.ActiveSlider())
	assert.Equal(t, components.TrackingIdle, f.slider.State)
	assert.False(t, f.lower.Highlighted)
	assert.False(t, f.upper.Highlighted)
}

func TestRangeSliderInputSystem_DragUpperThumb(t *testing.T) {
	f, sys, input := newInputFixture(t)

	input.press(250, 30)
	sys.Update(1.0 / 60.0)
	require.Equal(t, components.TrackingUpper, f.slider.State)
	assert.True(t, f.upper.Highlighted)

	input.move(0, 30)
	sys.Update(1.0 / 60.0)
	assert.Equal(t, 0.2, f.slider.UpperValue)
	assert.Equal(t, 0.2, f.slider.LowerValue)
}

func TestRangeSliderInputSystem_MissProducesNoTracking(t *testing.T) {
	tests := []struct {
		name string
		x, y int
	}{
		{"滑轨中间", 170, 35},
		{"控件外", 5, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, sys, input := newInputFixture(t)

			input.press(tt.x, tt.y)
			sys.Update(1.0 / 60.0)
			assert.Equal(t, ecs.InvalidEntity, sys.ActiveSlider())

			// 按住滑过滑块也不会开始跟踪
			input.move(89, 35)
			sys.Update(1.0 / 60.0)
			input.move(200, 35)
			sys.Update(1.0 / 60.0)
			input.release()
			sys.Update(1.0 / 60.0)

			assert.Empty(t, f.changes)
			assert.Equal(t, 0.2, f.slider.LowerValue)
			assert.Equal(t, components.TrackingIdle, f.slider.State)
		})
	}
}

func TestRangeSliderInputSystem_NewPressAfterRelease(t *testing.T) {
	f, sys, input := newInputFixture(t)

	input.press(170, 35)
	sys.Update(1.0 / 60.0)
	input.release()
	sys.Update(1.0 / 60.0)

	input.press(89, 35)
	sys.Update(1.0 / 60.0)
	assert.Equal(t, f.id, sys.ActiveSlider())
}

func TestRangeSliderInputSystem_SliderDestroyedWhileTracking(t *testing.T) {
	f, sys, input := newInputFixture(t)

	input.press(89, 35)
	sys.Update(1.0 / 60.0)
	require.Equal(t, f.id, sys.ActiveSlider())

	f.em.DestroyEntity(f.id)
	f.em.RemoveMarkedEntities()

	input.move(120, 35)
	sys.Update(1.0 / 60.0)
	assert.Equal(t, ecs.InvalidEntity, sys.ActiveSlider())
	assert.Empty(t, f.changes)
}
