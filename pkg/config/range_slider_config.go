package config

import (
	"errors"
	"fmt"
	"image/color"
	"os"
	"strconv"
	"strings"

	"github.com/decker502/rangeslider/pkg/embedded"
	"gopkg.in/yaml.v3"
)

// DefaultConfigPath 内置默认配置在嵌入文件系统中的路径
const DefaultConfigPath = "data/range_slider.yaml"

// ErrInvalidConfig 配置校验失败
var ErrInvalidConfig = errors.New("invalid range slider config")

// WindowConfig 桌面窗口配置（移动端忽略）
type WindowConfig struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
}

// LayoutConfig 宿主界面布局配置
type LayoutConfig struct {
	Margin float64 `yaml:"margin"` // 控件左、右、上留白（像素）
	Height float64 `yaml:"height"` // 控件高度，即滑块直径（像素）
}

// SliderConfig 值域和初始选区
type SliderConfig struct {
	MinimumValue float64 `yaml:"minimumValue"`
	MaximumValue float64 `yaml:"maximumValue"`
	LowerValue   float64 `yaml:"lowerValue"`
	UpperValue   float64 `yaml:"upperValue"`
}

// StyleConfig 颜色配置，格式为 #RRGGBB 或 #RRGGBBAA
type StyleConfig struct {
	BackgroundColor     string  `yaml:"backgroundColor"`
	TrackColor          string  `yaml:"trackColor"`
	ThumbColor          string  `yaml:"thumbColor"`
	ThumbHighlightColor string  `yaml:"thumbHighlightColor"`
	ThumbBorderColor    string  `yaml:"thumbBorderColor"`
	ThumbBorderWidth    float64 `yaml:"thumbBorderWidth"`
}

// RangeSliderConfig 应用的完整配置
type RangeSliderConfig struct {
	Window WindowConfig `yaml:"window"`
	Layout LayoutConfig `yaml:"layout"`
	Slider SliderConfig `yaml:"slider"`
	Style  StyleConfig  `yaml:"style"`
}

// DefaultRangeSliderConfig 返回代码内置的默认配置
// 与 data/range_slider.yaml 保持一致，嵌入资源不可用时（如单元测试）使用
func DefaultRangeSliderConfig() *RangeSliderConfig {
	return &RangeSliderConfig{
		Window: WindowConfig{Width: 480, Height: 320, Title: "Range Slider"},
		Layout: LayoutConfig{Margin: 20, Height: 31},
		Slider: SliderConfig{
			MinimumValue: 0.0,
			MaximumValue: 1.0,
			LowerValue:   0.2,
			UpperValue:   0.8,
		},
		Style: StyleConfig{
			BackgroundColor:     "#FFFFFF",
			TrackColor:          "#BFBFBF",
			ThumbColor:          "#FFFFFF",
			ThumbHighlightColor: "#808080",
			ThumbBorderColor:    "#7F7F7F",
			ThumbBorderWidth:    1.0,
		},
	}
}

// ParseRangeSliderConfig 解析 YAML 配置
// 未出现的字段保留 base 中的值；base 为 nil 时以内置默认配置为基础
func ParseRangeSliderConfig(data []byte, base *RangeSliderConfig) (*RangeSliderConfig, error) {
	cfg := DefaultRangeSliderConfig()
	if base != nil {
		copied := *base
		cfg = &copied
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadRangeSliderConfig 加载配置文件
//
// 以 "data/" 开头的路径从嵌入资源读取，其余路径从文件系统读取。
// 文件中的字段覆盖 base（nil 表示内置默认配置）。
func LoadRangeSliderConfig(path string, base *RangeSliderConfig) (*RangeSliderConfig, error) {
	var (
		data []byte
		err  error
	)
	if strings.HasPrefix(path, "data/") {
		data, err = embedded.ReadFile(path)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	cfg, err := ParseRangeSliderConfig(data, base)
	if err != nil {
		return nil, fmt.Errorf("config file %s: %w", path, err)
	}
	return cfg, nil
}

// Validate 校验配置
func (c *RangeSliderConfig) Validate() error {
	s := c.Slider
	if !(s.MinimumValue < s.MaximumValue) {
		return fmt.Errorf("%w: minimumValue (%g) must be less than maximumValue (%g)",
			ErrInvalidConfig, s.MinimumValue, s.MaximumValue)
	}
	if !(s.MinimumValue <= s.LowerValue && s.LowerValue <= s.UpperValue && s.UpperValue <= s.MaximumValue) {
		return fmt.Errorf("%w: selection must satisfy minimum <= lower <= upper <= maximum (got %g <= %g <= %g <= %g)",
			ErrInvalidConfig, s.MinimumValue, s.LowerValue, s.UpperValue, s.MaximumValue)
	}
	if !(c.Layout.Height > 0) {
		return fmt.Errorf("%w: layout.height must be positive (got %g)", ErrInvalidConfig, c.Layout.Height)
	}
	if c.Layout.Margin < 0 {
		return fmt.Errorf("%w: layout.margin must not be negative (got %g)", ErrInvalidConfig, c.Layout.Margin)
	}
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("%w: window size must be positive (got %dx%d)", ErrInvalidConfig, c.Window.Width, c.Window.Height)
	}
	if c.Style.ThumbBorderWidth < 0 {
		return fmt.Errorf("%w: style.thumbBorderWidth must not be negative", ErrInvalidConfig)
	}

	colors := map[string]string{
		"backgroundColor":     c.Style.BackgroundColor,
		"trackColor":          c.Style.TrackColor,
		"thumbColor":          c.Style.ThumbColor,
		"thumbHighlightColor": c.Style.ThumbHighlightColor,
		"thumbBorderColor":    c.Style.ThumbBorderColor,
	}
	for name, value := range colors {
		if _, err := ParseHexColor(value); err != nil {
			return fmt.Errorf("%w: style.%s: %v", ErrInvalidConfig, name, err)
		}
	}
	return nil
}

// ParseHexColor 解析 #RRGGBB 或 #RRGGBBAA 格式的颜色
func ParseHexColor(s string) (color.RGBA, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(hex) != 6 && len(hex) != 8 {
		return color.RGBA{}, fmt.Errorf("color %q must be #RRGGBB or #RRGGBBAA", s)
	}

	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("color %q is not hexadecimal", s)
	}

	if len(hex) == 6 {
		v = v<<8 | 0xFF
	}
	// 配置中的颜色为非预乘 alpha，ebiten 使用预乘的 color.RGBA
	nrgba := color.NRGBA{
		R: uint8(v >> 24),
		G: uint8(v >> 16),
		B: uint8(v >> 8),
		A: uint8(v),
	}
	return color.RGBAModel.Convert(nrgba).(color.RGBA), nil
}

// HexColorOr 解析颜色，失败时返回 fallback
func HexColorOr(s string, fallback color.RGBA) color.RGBA {
	c, err := ParseHexColor(s)
	if err != nil {
		return fallback
	}
	return c
}
