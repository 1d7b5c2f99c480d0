package config

import (
	"image/color"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/decker502/rangeslider/pkg/embedded"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultRangeSliderConfig(t *testing.T) {
	cfg := DefaultRangeSliderConfig()

	require.NoError(t, cfg.Validate())
	assert.Equal(t, 0.0, cfg.Slider.MinimumValue)
	assert.Equal(t, 1.0, cfg.Slider.MaximumValue)
	assert.Equal(t, 0.2, cfg.Slider.LowerValue)
	assert.Equal(t, 0.8, cfg.Slider.UpperValue)
	assert.Equal(t, 31.0, cfg.Layout.Height)
	assert.Equal(t, 20.0, cfg.Layout.Margin)
}

// TestDefaultConfigFileMatchesCode 验证 data/range_slider.yaml 与内置默认值一致
func TestDefaultConfigFileMatchesCode(t *testing.T) {
	data, err := os.ReadFile(filepath.Join("..", "..", DefaultConfigPath))
	require.NoError(t, err)

	cfg, err := ParseRangeSliderConfig(data, &RangeSliderConfig{})
	require.NoError(t, err)
	assert.Equal(t, DefaultRangeSliderConfig(), cfg)
}

func TestParseRangeSliderConfig_PartialOverride(t *testing.T) {
	cfg, err := ParseRangeSliderConfig([]byte(`
slider:
  minimumValue: 10
  maximumValue: 110
  lowerValue: 30
  upperValue: 90
layout:
  height: 44
`), nil)
	require.NoError(t, err)

	assert.Equal(t, 10.0, cfg.Slider.MinimumValue)
	assert.Equal(t, 110.0, cfg.Slider.MaximumValue)
	assert.Equal(t, 44.0, cfg.Layout.Height)
	// 未覆盖的字段保留默认值
	assert.Equal(t, 20.0, cfg.Layout.Margin)
	assert.Equal(t, "#BFBFBF", cfg.Style.TrackColor)
}

func TestParseRangeSliderConfig_Invalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"值域为空", "slider: {minimumValue: 1, maximumValue: 1, lowerValue: 1, upperValue: 1}"},
		{"值域反转", "slider: {minimumValue: 2, maximumValue: 1}"},
		{"选区越界", "slider: {lowerValue: -0.5}"},
		{"选区反转", "slider: {lowerValue: 0.9, upperValue: 0.1}"},
		{"高度为零", "layout: {height: 0}"},
		{"负留白", "layout: {margin: -1}"},
		{"窗口尺寸无效", "window: {width: 0}"},
		{"颜色格式错误", "style: {trackColor: 'grey'}"},
		{"负描边宽度", "style: {thumbBorderWidth: -2}"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseRangeSliderConfig([]byte(tt.yaml), nil)
			assert.ErrorIs(t, err, ErrInvalidConfig)
		})
	}
}

func TestParseRangeSliderConfig_BadYAML(t *testing.T) {
	_, err := ParseRangeSliderConfig([]byte("slider: [1, 2"), nil)
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrInvalidConfig)
}

func TestLoadRangeSliderConfig_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("layout:\n  margin: 8\n"), 0644))

	cfg, err := LoadRangeSliderConfig(path, nil)
	require.NoError(t, err)
	assert.Equal(t, 8.0, cfg.Layout.Margin)

	_, err = LoadRangeSliderConfig(filepath.Join(t.TempDir(), "missing.yaml"), nil)
	assert.Error(t, err)
}

func TestLoadRangeSliderConfig_Embedded(t *testing.T) {
	embedded.Init(fstest.MapFS{
		DefaultConfigPath: &fstest.MapFile{Data: []byte("window:\n  title: Embedded\n")},
	})

	cfg, err := LoadRangeSliderConfig(DefaultConfigPath, nil)
	require.NoError(t, err)
	assert.Equal(t, "Embedded", cfg.Window.Title)
}

func TestParseHexColor(t *testing.T) {
	tests := []struct {
		in      string
		want    color.RGBA
		wantErr bool
	}{
		{in: "#BFBFBF", want: color.RGBA{R: 0xBF, G: 0xBF, B: 0xBF, A: 0xFF}},
		{in: "ff0000", want: color.RGBA{R: 0xFF, A: 0xFF}},
		{in: "#00000000", want: color.RGBA{}},
		{in: "#FFFFFF00", want: color.RGBA{}}, // 全透明预乘后为零
		{in: "#12345", wantErr: true},
		{in: "#GGGGGG", wantErr: true},
		{in: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseHexColor(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestHexColorOr(t *testing.T) {
	fallback := color.RGBA{R: 1, G: 2, B: 3, A: 4}
	assert.Equal(t, fallback, HexColorOr("nope", fallback))
	assert.Equal(t, color.RGBA{G: 0xFF, A: 0xFF}, HexColorOr("#00FF00", fallback))
}
