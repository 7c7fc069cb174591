// Command loadinganim runs the basic demo: a sketch whose setup takes a few
// seconds while the default loading animation plays.
//
// Usage:
//
//	go run . [flags]
//
// Flags:
//
//	-config <path>   Loader config YAML (default data/loader.yaml, embedded)
//	-verbose         Enable verbose logging
//	-logo            Show the spinning logo that follows the pointer
//	-delay <ticks>   Ticks to wait before the animation is drawn
//	-load <seconds>  Duration of the simulated load
//
// Controls:
//
//	F11 - Toggle fullscreen
package main

import (
	"flag"
	"log"

	"github.com/decker502/loadinganim/internal/cli"
	"github.com/decker502/loadinganim/pkg/app"
	"github.com/decker502/loadinganim/pkg/demos"
	"github.com/decker502/loadinganim/pkg/embedded"
)

func main() {
	flags := cli.Register(flag.CommandLine)
	flag.Parse()

	// 初始化嵌入资源（dataFS 在 embed.go 中声明）
	embedded.Init(dataFS)

	cfg, err := flags.LoadConfig(nil)
	if err != nil {
		log.Fatalf("配置加载失败: %v", err)
	}

	sketch := demos.NewBasic(demos.SettingsFromConfig(cfg))
	a, err := app.NewApp(app.Config{Verbose: flags.Verbose, Loader: *cfg}, sketch)
	if err != nil {
		log.Fatalf("初始化失败: %v", err)
	}

	if err := a.Run(); err != nil {
		log.Fatal(err)
	}
}
