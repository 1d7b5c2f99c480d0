package components

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewRangeSliderComponent_Defaults(t *testing.T) {
	c := NewRangeSliderComponent(Rect{X: 20, Y: 20, W: 300, H: 31})

	assert.Equal(t, 0.0, c.MinimumValue)
	assert.Equal(t, 1.0, c.MaximumValue)
	assert.Equal(t, 0.2, c.LowerValue)
	assert.Equal(t, 0.8, c.UpperValue)
	assert.Equal(t, TrackingIdle, c.State)
	// 新建控件需要首次布局
	assert.True(t, c.NeedsLayout())
}

func TestRangeSliderComponent_SettersMarkLayout(t *testing.T) {
	setters := map[string]func(c *RangeSliderComponent){
		"minimum": func(c *RangeSliderComponent) { c.SetMinimumValue(-1) },
		"maximum": func(c *RangeSliderComponent) { c.SetMaximumValue(2) },
		"lower":   func(c *RangeSliderComponent) { c.SetLowerValue(0.3) },
		"upper":   func(c *RangeSliderComponent) { c.SetUpperValue(0.7) },
		"bounds":  func(c *RangeSliderComponent) { c.SetBounds(Rect{W: 600, H: 31}) },
	}

	for name, set := range setters {
		t.Run(name, func(t *testing.T) {
			c := NewRangeSliderComponent(Rect{W: 300, H: 31})
			c.ClearNeedsLayout()

			set(c)
			assert.True(t, c.NeedsLayout())
		})
	}
}

func TestRangeSliderComponent_SetBoundsUnchanged(t *testing.T) {
	bounds := Rect{X: 20, Y: 20, W: 300, H: 31}
	c := NewRangeSliderComponent(bounds)
	c.ClearNeedsLayout()

	c.SetBounds(bounds)
	assert.False(t, c.NeedsLayout())
}

func TestRangeSliderComponent_NotifyValueChanged(t *testing.T) {
	c := NewRangeSliderComponent(Rect{W: 300, H: 31})

	var got [][2]float64
	c.Subscribe(func(lower, upper float64) { got = append(got, [2]float64{lower, upper}) })
	c.Subscribe(func(lower, upper float64) { got = append(got, [2]float64{upper, lower}) })
	c.Subscribe(nil)

	c.NotifyValueChanged()

	assert.Equal(t, [][2]float64{{0.2, 0.8}, {0.8, 0.2}}, got)
}

func TestRect_Contains(t *testing.T) {
	r := Rect{X: 10, Y: 0, W: 31, H: 31}

	tests := []struct {
		name     string
		p        Point
		expected bool
	}{
		{"中心", Point{X: 25.5, Y: 15.5}, true},
		{"左上角", Point{X: 10, Y: 0}, true},
		{"右边界外", Point{X: 41, Y: 10}, false},
		{"下边界外", Point{X: 20, Y: 31}, false},
		{"左边界外", Point{X: 9.9, Y: 10}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, r.Contains(tt.p))
		})
	}
}

func TestRect_Center(t *testing.T) {
	r := Rect{X: 54.3, Y: 0, W: 31, H: 31}
	c := r.Center()
	assert.InDelta(t, 69.8, c.X, 1e-9)
	assert.InDelta(t, 15.5, c.Y, 1e-9)
}
