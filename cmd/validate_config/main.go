// Package main 提供配置文件校验工具
//
// 用法:
//
//	go run ./cmd/validate_config --width 390 path/to/config.yaml
//
// 功能:
//   - 校验 YAML 格式和字段约束
//   - 按给定屏幕宽度计算控件矩形和两个滑块的中心位置
package main

import (
	"fmt"
	"os"

	"github.com/decker502/rangeslider/pkg/components"
	"github.com/decker502/rangeslider/pkg/config"
	"github.com/decker502/rangeslider/pkg/scenes"
	"github.com/decker502/rangeslider/pkg/systems"
	"github.com/jessevdk/go-flags"
)

type Options struct {
	Width int `long:"width" short:"w" description:"screen width used to compute the slider frame (defaults to window.width)"`
	Args  struct {
		Path string `positional-arg-name:"config" description:"config file to validate" required:"yes"`
	} `positional-args:"yes"`
}

func main() {
	if err := execute(); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		fmt.Printf("❌ %v\n", err)
		os.Exit(1)
	}
}

func execute() error {
	opts := Options{}
	if _, err := flags.Parse(&opts); err != nil {
		return err
	}

	data, err := os.ReadFile(opts.Args.Path)
	if err != nil {
		return fmt.Errorf("读取文件失败: %w", err)
	}

	cfg, err := config.ParseRangeSliderConfig(data, nil)
	if err != nil {
		return fmt.Errorf("配置无效: %w", err)
	}
	fmt.Printf("✅ 配置有效: %s\n", opts.Args.Path)

	width := opts.Width
	if width == 0 {
		width = cfg.Window.Width
	}

	slider := components.NewRangeSliderComponent(scenes.SliderFrame(width, cfg.Layout))
	slider.MinimumValue = cfg.Slider.MinimumValue
	slider.MaximumValue = cfg.Slider.MaximumValue
	slider.LowerValue = cfg.Slider.LowerValue
	slider.UpperValue = cfg.Slider.UpperValue

	frames, err := systems.ComputeLayerFrames(slider)
	if err != nil {
		return fmt.Errorf("屏幕宽度 %d 下无法布局: %w", width, err)
	}

	b := slider.Bounds
	fmt.Printf("✅ 控件矩形: x=%.1f y=%.1f w=%.1f h=%.1f\n", b.X, b.Y, b.W, b.H)
	fmt.Printf("✅ 滑块直径: %.1f\n", systems.ThumbWidth(slider))
	fmt.Printf("✅ 下限滑块中心: %.1f (值 %g)\n", frames.Lower.Center().X, slider.LowerValue)
	fmt.Printf("✅ 上限滑块中心: %.1f (值 %g)\n", frames.Upper.Center().X, slider.UpperValue)
	return nil
}
