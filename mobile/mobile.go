//go:build mobile

// Package mobile 提供 ebitenmobile 绑定入口
//
// 此包用于构建 Android (.aar) 和 iOS (.xcframework) 包，运行基础示例。
// 使用 ebitenmobile 工具构建时会自动调用 init() 函数。
//
// 此文件仅在使用 -tags mobile 构建时编译。
//
//	# Android
//	cp -r data mobile/ && ebitenmobile bind -target android -tags mobile -androidapi 23 -javapkg com.decker.loadinganim -o build/android/loadinganim.aar -v ./mobile
//
//	# iOS (仅 macOS)
//	cp -r data mobile/ && ebitenmobile bind -target ios -tags mobile -o build/ios/LoadingAnim.xcframework -v ./mobile
package mobile

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2/mobile"

	"github.com/decker502/loadinganim/pkg/app"
	"github.com/decker502/loadinganim/pkg/config"
	"github.com/decker502/loadinganim/pkg/demos"
	"github.com/decker502/loadinganim/pkg/embedded"
)

func init() {
	// 初始化嵌入资源（dataFS 在 embed.go 中声明）
	embedded.Init(dataFS)

	cfg, err := config.LoadLoaderConfig(config.DefaultConfigPath)
	if err != nil {
		log.Printf("[Mobile] 配置加载失败，使用默认配置: %v", err)
		cfg = config.DefaultLoaderConfig()
	}
	// 触摸设备上没有悬停，徽标只在手指按下时出现
	cfg.Animation.UseLogo = true

	sketch := demos.NewBasic(demos.SettingsFromConfig(cfg))
	gameApp, err := app.NewApp(app.Config{Verbose: true, Loader: *cfg}, sketch)
	if err != nil {
		log.Fatalf("初始化失败: %v", err)
	}

	// 注册游戏到 ebitenmobile
	mobile.SetGame(gameApp)
}

// Dummy 是一个空导出函数，确保包被 ebitenmobile 正确识别
func Dummy() {}
