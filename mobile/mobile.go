//go:build mobile

// Package mobile 提供 ebitenmobile 绑定入口
//
// 此包用于构建 Android (.aar) 和 iOS (.xcframework) 包。
// 使用 ebitenmobile 工具构建时会自动调用 init() 函数。
//
// 此文件仅在使用 -tags mobile 构建时编译。
// 使用 Makefile 构建（推荐）：
//
//	make build-android    # Android
//	make build-ios        # iOS (仅 macOS)
package mobile

import (
	"github.com/hajimehoshi/ebiten/v2/mobile"
	log "github.com/sirupsen/logrus"

	"github.com/decker502/rangeslider/pkg/app"
	"github.com/decker502/rangeslider/pkg/embedded"
)

var gameApp *app.App

func init() {
	embedded.Init(dataFS)

	var err error
	gameApp, err = app.NewApp(app.Config{Verbose: true})
	if err != nil {
		log.Fatalf("应用初始化失败: %v", err)
	}

	// 注册到 ebitenmobile
	mobile.SetGame(gameApp)
}

// SaveState 保存当前选区
// 由原生宿主在应用进入后台时调用（ebitenmobile 不提供退出回调）
func SaveState() bool {
	if gameApp == nil {
		return false
	}
	return gameApp.SaveOnExit()
}

// Dummy 是一个空导出函数，确保包被 ebitenmobile 正确识别
func Dummy() {}
