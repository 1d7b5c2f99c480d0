// Package app 提供应用的核心包装器
//
// 该包将初始化逻辑从 main 包提取出来，使其可以被桌面端和移动端共用。
// 桌面端通过 main.go 调用 NewApp()，移动端通过 mobile/mobile.go 调用。
package app

import (
	"fmt"
	"os"

	"github.com/decker502/rangeslider/pkg/config"
	"github.com/decker502/rangeslider/pkg/game"
	"github.com/decker502/rangeslider/pkg/scenes"
	"github.com/decker502/rangeslider/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	log "github.com/sirupsen/logrus"
)

// AppName gdata 存储使用的应用名
const AppName = "rangeslider"

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出
	Verbose bool
	// ConfigPath 用户配置文件路径，为空则只使用内置默认配置
	ConfigPath string
	// Persist 启动时恢复、退出时保存上一次的选区（移动端始终启用）
	Persist bool
}

// App 是应用的核心包装器，实现 ebiten.Game 接口
type App struct {
	scene   game.Scene
	cfg     *config.RangeSliderConfig
	verbose bool

	width, height int // 逻辑屏幕尺寸，首次 Layout 前为配置的窗口尺寸
}

// SetupLogging 配置全局日志
// verbose 时输出 Debug 级别，否则只输出 Info 及以上
func SetupLogging(verbose bool) {
	log.SetOutput(os.Stderr)
	log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	if verbose {
		log.SetLevel(log.DebugLevel)
	} else {
		log.SetLevel(log.InfoLevel)
	}
}

// LoadConfig 加载内置默认配置，并用 path 指向的用户配置覆盖
//
// 调用此函数前，必须先调用 embedded.Init() 初始化嵌入资源。
func LoadConfig(path string) (*config.RangeSliderConfig, error) {
	cfg, err := config.LoadRangeSliderConfig(config.DefaultConfigPath, nil)
	if err != nil {
		return nil, fmt.Errorf("内置配置加载失败: %w", err)
	}

	if path == "" {
		return cfg, nil
	}

	cfg, err = config.LoadRangeSliderConfig(path, cfg)
	if err != nil {
		return nil, fmt.Errorf("用户配置加载失败: %w", err)
	}
	log.WithField("component", "App").Infof("loaded config: %s", path)
	return cfg, nil
}

// NewApp 创建并初始化应用
//
// 调用此函数前，必须先调用 embedded.Init() 初始化嵌入资源。
func NewApp(appCfg Config) (*App, error) {
	SetupLogging(appCfg.Verbose)
	appLog := log.WithField("component", "App")

	cfg, err := LoadConfig(appCfg.ConfigPath)
	if err != nil {
		return nil, err
	}

	// 移动端没有命令行参数，总是恢复上一次的选区
	persist := appCfg.Persist || utils.IsMobile()

	var store *game.RangeStore
	if persist {
		store, err = game.OpenRangeStore(AppName)
		if err != nil {
			// 存储不可用不是致命错误，降级为仅内存保存
			appLog.Warnf("range persistence unavailable: %v", err)
		}
	}

	scene, err := scenes.NewRangeSliderScene(cfg, store)
	if err != nil {
		return nil, fmt.Errorf("界面创建失败: %w", err)
	}
	appLog.Debugf("app initialized (persist=%v)", persist)

	return NewAppWithScene(scene, cfg, appCfg.Verbose), nil
}

// NewAppWithScene 使用已创建的界面构造应用（用于测试）
func NewAppWithScene(scene game.Scene, cfg *config.RangeSliderConfig, verbose bool) *App {
	if cfg == nil {
		cfg = config.DefaultRangeSliderConfig()
	}
	return &App{
		scene:   scene,
		cfg:     cfg,
		verbose: verbose,
		width:   cfg.Window.Width,
		height:  cfg.Window.Height,
	}
}

// Update 更新应用逻辑
// 每个 tick 调用一次（通常每秒 60 次）
func (a *App) Update() error {
	deltaTime := 1.0 / float64(ebiten.TPS())
	a.scene.Update(deltaTime)
	return nil
}

// Draw 绘制画面
// 每帧调用一次
func (a *App) Draw(screen *ebiten.Image) {
	a.scene.Draw(screen)
}

// Layout 返回逻辑屏幕尺寸
// 逻辑尺寸跟随窗口（或移动端视图）尺寸，尺寸变化时通知界面重新放置控件
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	a.width, a.height = outsideWidth, outsideHeight
	a.scene.Layout(a.width, a.height)
	return a.width, a.height
}

// WindowConfig 返回桌面窗口配置
func (a *App) WindowConfig() config.WindowConfig {
	return a.cfg.Window
}

// SaveOnExit 在退出时保存界面状态
func (a *App) SaveOnExit() bool {
	if saveable, ok := a.scene.(game.Saveable); ok {
		return saveable.SaveOnExit()
	}
	return true
}

// IsVerbose 返回是否启用了详细日志
func (a *App) IsVerbose() bool {
	return a.verbose
}
