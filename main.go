package main

import (
	"os"

	"github.com/adrg/xdg"
	"github.com/decker502/rangeslider/pkg/app"
	"github.com/decker502/rangeslider/pkg/embedded"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/jessevdk/go-flags"
	log "github.com/sirupsen/logrus"
)

// userConfigFile 用户配置文件在 XDG 配置目录中的相对路径
const userConfigFile = "rangeslider/config.yaml"

// Options 命令行参数
type Options struct {
	Verbose bool   `long:"verbose" short:"v" description:"enable debug logging"`
	Config  string `long:"config" short:"c" description:"config file overriding the built-in defaults (default: $XDG_CONFIG_HOME/rangeslider/config.yaml if present)"`
	Persist bool   `long:"persist" short:"p" description:"restore the last selected range at startup and save it on exit"`
}

// resolveConfigPath 未指定 --config 时在 XDG 配置目录中查找用户配置
func resolveConfigPath(opts Options) string {
	if opts.Config != "" {
		return opts.Config
	}
	path, err := xdg.SearchConfigFile(userConfigFile)
	if err != nil {
		return ""
	}
	return path
}

func execute() error {
	opts := Options{}
	if _, err := flags.Parse(&opts); err != nil {
		return err
	}

	// 初始化嵌入资源
	embedded.Init(dataFS)

	gameApp, err := app.NewApp(app.Config{
		Verbose:    opts.Verbose,
		ConfigPath: resolveConfigPath(opts),
		Persist:    opts.Persist,
	})
	if err != nil {
		return err
	}

	window := gameApp.WindowConfig()
	ebiten.SetWindowSize(window.Width, window.Height)
	ebiten.SetWindowTitle(window.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	runErr := ebiten.RunGame(gameApp)

	// 窗口关闭后保存选区
	if !gameApp.SaveOnExit() {
		log.Warn("range was not saved")
	}
	return runErr
}

func main() {
	if err := execute(); err != nil {
		if flagsErr, ok := err.(*flags.Error); ok && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		log.Fatal(err)
	}
}
